package scheduler

import "container/heap"

// queueItem is one admitted run waiting for dispatch.
type queueItem struct {
	runID    string
	priority int
	seq      uint64
	index    int

	// cancelled items stay in the heap and are skipped on pop.
	cancelled bool
}

// runQueue is a priority queue: higher priority first, FIFO within equal
// priority via the monotonic sequence number.
type runQueue []*queueItem

func (q runQueue) Len() int { return len(q) }

func (q runQueue) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority > q[j].priority
	}
	return q[i].seq < q[j].seq
}

func (q runQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *runQueue) Push(x any) {
	item := x.(*queueItem)
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *runQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

// popNext removes and returns the highest-priority live item, skipping
// cancelled entries. Returns nil when the queue is empty.
func popNext(q *runQueue) *queueItem {
	for q.Len() > 0 {
		item := heap.Pop(q).(*queueItem)
		if item.cancelled {
			continue
		}
		return item
	}
	return nil
}
