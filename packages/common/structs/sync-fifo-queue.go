package structs

import (
	"sync"
	"time"

	Error "registry/packages/common/errors"
)

// Concurrency-safe first-in-first-out queue
type SyncFifoQueue[T any] struct {
    elems []T
    mut   sync.Mutex
    cond  *sync.Cond
}

func NewSyncFifoQueue[T any]() *SyncFifoQueue[T] {
    q := new(SyncFifoQueue[T])

    q.cond = sync.NewCond(&q.mut)

    return q
}

// Appends v to the end of queue
func (q *SyncFifoQueue[T]) Push(v T) {
    q.mut.Lock()

    wasEmpty := len(q.elems) == 0

    q.elems = append(q.elems, v)

    q.mut.Unlock()

    if wasEmpty {
        q.cond.Broadcast()
    }
}

// If queue isn't empty - deletes and returns first element of queue and true.
// If queue is empty - returns zero-value of T and false.
func (q *SyncFifoQueue[T]) Pop() (T, bool) {
    q.mut.Lock()
    defer q.mut.Unlock()

    var v T

    if len(q.elems) == 0 {
        return v, false
    }

    v = q.elems[0]
    q.elems = q.elems[1:]

    if len(q.elems) == 0 {
        q.cond.Broadcast()
    }

    return v, true
}

// Returns amount of elements in queue.
//
// Do not call inside other methods of this struct, that will cause deadlock.
func (q *SyncFifoQueue[T]) Size() int {
    q.mut.Lock()
    l := len(q.elems)
    q.mut.Unlock()
    return l
}

// Deletes and returns all elements currently in the queue.
func (q *SyncFifoQueue[T]) UnwrapAndFlush() []T {
    q.mut.Lock()

    r := q.elems
    q.elems = nil

    wasNotEmpty := len(r) != 0

    q.mut.Unlock()

    if wasNotEmpty {
        q.cond.Broadcast()
    }

    return r
}

// Waits till queue size is equal to 0.
// To disable timeout set it to <= 0.
// Returns Error.StatusTimeout if timeout exceeded, nil otherwise.
func (q *SyncFifoQueue[T]) WaitTillEmpty(timeout time.Duration) *Error.Status {
    q.mut.Lock()
    defer q.mut.Unlock()

    if timeout <= 0 {
        for len(q.elems) > 0 {
            q.cond.Wait()
        }
        return nil
    }

    timer := time.NewTimer(timeout)
    defer timer.Stop()

    for len(q.elems) > 0 {
        done := make(chan struct{})

        go func() {
            q.cond.Wait()
            close(done)
        }()

        select {
        case <-done:
        case <-timer.C:
            q.cond.Broadcast()
            // cond.Wait() unlocks the mutex while waiting and locks it back
            // before returning, so returning before it finished would either
            // unlock an unlocked mutex or deadlock on the next Lock()
            <-done
            return Error.StatusTimeout
        }
    }

    return nil
}
