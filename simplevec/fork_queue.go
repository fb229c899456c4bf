package simplevec

import (
	"runtime"
	"sync/atomic"
)

// forkQueueBuffer is the number of pending halves per worker. Beyond this,
// Fork evaluates both halves on the calling Goroutine.
const forkQueueBuffer = 64

type forkTask[R any] struct {
	claimed int32
	run     func() R
	result  chan R
}

// A forkQueue evaluates divide-and-conquer reductions on a fixed number of
// Goroutines.
//
// Reduce splits an index range in half until it reaches the grain size, and
// idle workers steal pending halves through the queue.
type forkQueue[R any] struct {
	tasks chan *forkTask[R]
}

func newForkQueue[R any](numWorkers int) *forkQueue[R] {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	q := &forkQueue[R]{
		tasks: make(chan *forkTask[R], numWorkers*forkQueueBuffer),
	}
	for i := 0; i < numWorkers; i++ {
		go q.worker()
	}
	return q
}

// Reduce combines get(start), ..., get(end-1) with reduce and stops the
// workers. The range must not be empty, and the queue cannot be used again
// afterwards.
func (q *forkQueue[R]) Reduce(start, end, grain int, reduce func(R, R) R, get func(int) R) R {
	defer close(q.tasks)
	root := &forkTask[R]{
		run: func() R {
			return q.reduceRange(start, end, grain, reduce, get)
		},
		result: make(chan R, 1),
	}
	q.tasks <- root
	return <-root.result
}

func (q *forkQueue[R]) reduceRange(start, end, grain int, reduce func(R, R) R,
	get func(int) R) R {
	if end-start <= grain {
		return reduceLanes(start, end, reduce, get)
	}
	mid := (start + end) / 2
	left, right := q.fork(
		func() R {
			return q.reduceRange(start, mid, grain, reduce, get)
		},
		func() R {
			return q.reduceRange(mid, end, grain, reduce, get)
		},
	)
	return reduce(left, right)
}

// fork evaluates left on the calling Goroutine while offering right to the
// workers. If nobody claimed right by the time left is done, it is run
// locally.
func (q *forkQueue[R]) fork(left, right func() R) (R, R) {
	task := &forkTask[R]{run: right, result: make(chan R, 1)}
	select {
	case q.tasks <- task:
	default:
		task.claimed = 1
		task.result <- task.run()
	}
	leftResult := left()
	if atomic.SwapInt32(&task.claimed, 1) == 0 {
		return leftResult, right()
	}
	return leftResult, <-task.result
}

func (q *forkQueue[R]) worker() {
	for task := range q.tasks {
		if atomic.SwapInt32(&task.claimed, 1) != 0 {
			continue
		}
		task.result <- task.run()
	}
}
