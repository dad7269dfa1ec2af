package routegraph

import "container/heap"

// queueItem is one route in the priority queue. seq records insertion order
// and breaks ties between equal priorities so popping is deterministic.
type queueItem struct {
	id    RouteID
	prio  int64
	seq   int
	index int
}

// routeHeap implements heap.Interface as a min-heap on (prio, seq).
type routeHeap []*queueItem

func (h routeHeap) Len() int { return len(h) }

func (h routeHeap) Less(i, j int) bool {
	if h[i].prio != h[j].prio {
		return h[i].prio < h[j].prio
	}
	return h[i].seq < h[j].seq
}

func (h routeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *routeHeap) Push(x any) {
	item := x.(*queueItem)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *routeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

// routeQueue is a min-priority queue of routes with in-place priority
// changes (decrease-key). Each route is present at most once.
type routeQueue struct {
	heap routeHeap
	byID map[RouteID]*queueItem
	seq  int
}

func newRouteQueue(capacity int) *routeQueue {
	return &routeQueue{
		heap: make(routeHeap, 0, capacity),
		byID: make(map[RouteID]*queueItem, capacity),
	}
}

// Len returns the number of queued routes.
func (q *routeQueue) Len() int { return q.heap.Len() }

// Push queues id with priority prio. A route already queued has its priority
// replaced instead.
func (q *routeQueue) Push(id RouteID, prio int64) {
	if q.ChangePriority(id, prio) {
		return
	}
	item := &queueItem{id: id, prio: prio, seq: q.seq}
	q.seq++
	q.byID[id] = item
	heap.Push(&q.heap, item)
}

// PopMin removes and returns the route with the lowest priority.
func (q *routeQueue) PopMin() (RouteID, int64, bool) {
	if q.heap.Len() == 0 {
		return RouteID{}, 0, false
	}
	item := heap.Pop(&q.heap).(*queueItem)
	delete(q.byID, item.id)
	return item.id, item.prio, true
}

// ChangePriority sets the priority of a queued route and restores heap
// order. It reports false if id is not queued.
func (q *routeQueue) ChangePriority(id RouteID, prio int64) bool {
	item, ok := q.byID[id]
	if !ok {
		return false
	}
	item.prio = prio
	heap.Fix(&q.heap, item.index)
	return true
}
