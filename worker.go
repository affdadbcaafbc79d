package easylog

import "sync"

// worker drains the async task queue on a single background goroutine. The
// queue is unbounded FIFO: callers never block on enqueue, and each task is
// dequeued exactly once. Stop is best effort and may drop tasks still queued
// when it is called, while drain delivers everything enqueued so far
// before the goroutine exits.
type worker struct {
	mu       sync.Mutex
	cond     *sync.Cond
	queue    []record
	running  bool
	draining bool
	done     chan struct{}
	dispatch func(record)
}

func newWorker(dispatch func(record)) *worker {
	w := &worker{dispatch: dispatch}
	w.cond = sync.NewCond(&w.mu)
	return w
}

// start spawns the worker goroutine. Starting a running worker is a no-op.
func (w *worker) start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}
	w.running = true
	w.draining = false
	w.done = make(chan struct{})
	go w.run(w.done)
}

// stop requests the goroutine to exit and blocks until it has. Records still
// queued are not delivered. Stopping a stopped worker is a no-op.
func (w *worker) stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	done := w.done
	w.cond.Broadcast()
	w.mu.Unlock()
	<-done
}

// drain blocks until every record enqueued so far has been dispatched, then
// stops the goroutine. Draining a stopped worker returns immediately.
func (w *worker) drain() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.draining = true
	done := w.done
	w.cond.Broadcast()
	w.mu.Unlock()
	<-done

	w.mu.Lock()
	w.running = false
	w.mu.Unlock()
}

// push enqueues rec and wakes the goroutine. There is no backpressure; the
// queue grows as needed.
func (w *worker) push(rec record) {
	w.mu.Lock()
	w.queue = append(w.queue, rec)
	w.cond.Signal()
	w.mu.Unlock()
}

func (w *worker) isRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *worker) run(done chan struct{}) {
	defer close(done)
	for {
		w.mu.Lock()
		for len(w.queue) == 0 && w.running && !w.draining {
			w.cond.Wait()
		}
		if len(w.queue) == 0 {
			// Woken with nothing to do: either stop dropped the queue's
			// future, or a drain ran dry.
			w.mu.Unlock()
			return
		}
		if !w.running && !w.draining {
			// Stop was requested; abandon what is left.
			w.queue = nil
			w.mu.Unlock()
			return
		}
		rec := w.queue[0]
		w.queue = w.queue[1:]
		w.mu.Unlock()

		w.dispatch(rec)
	}
}
