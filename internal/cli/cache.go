package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mazeroute/pkg/cache"
	"github.com/matzehuels/mazeroute/pkg/config"
	mrerrors "github.com/matzehuels/mazeroute/pkg/errors"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the result cache",
		Long: `Solved answers and rendered artifacts are cached by the content hash of
the maze text. The file cache lives under $XDG_CACHE_HOME/mazeroute. Set
$MAZEROUTE_CACHE to a redis:// or mongodb:// URL to share a cache between
machines, or to "none" to disable it.`,
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached results and artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			pr := newPrinter(cmd.OutOrStdout())
			if spec := os.Getenv(config.EnvCache); spec != "" && spec != "file" {
				return mrerrors.New(mrerrors.ErrCodeUnsupported, "cache clear only supports the file cache (%s=%s)", config.EnvCache, spec)
			}

			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}

			if _, err := os.Stat(dir); os.IsNotExist(err) {
				pr.info("Cache is empty")
				return nil
			}

			count := countEntries(dir)
			fc, err := cache.NewFileCache(dir)
			if err != nil {
				return err
			}
			if err := fc.Clear(); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}

			pr.success("Cleared %d cached entries", count)
			pr.detail("Directory: %s", fc.Dir())
			return nil
		},
	}
}

// countEntries counts the files below dir.
func countEntries(dir string) int {
	count := 0
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip errors, continue walking
		}
		if !d.IsDir() {
			count++
		}
		return nil
	})
	return count
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}
