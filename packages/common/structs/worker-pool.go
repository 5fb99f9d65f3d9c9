package structs

import (
	"context"
	"fmt"
	"sync/atomic"
)

type Task interface {
    Process()
}

// Single-consumer task pool.
// Tasks are processed in FIFO order, one at a time.
type WorkerPool struct {
    canceled atomic.Bool
    queue    *SyncFifoQueue[Task]
    waiter   Waiter
    ctx      context.Context
    cancel   context.CancelFunc
    done     chan struct{}
}

// Creates new worker pool with specified waiter and parent context.
func NewWorkerPool(ctx context.Context, waiter Waiter) *WorkerPool {
    ctx, cancel := context.WithCancel(ctx)

    return &WorkerPool{
        queue: NewSyncFifoQueue[Task](),
        waiter: waiter,
        ctx: ctx,
        cancel: cancel,
        done: make(chan struct{}),
    }
}

// Starts worker pool. Blocks until the pool is canceled.
func (wp *WorkerPool) Start() error {
    if wp.canceled.Load() {
        return fmt.Errorf("worker pool is canceled")
    }

    for {
        select {
        case <-wp.ctx.Done():
            // Process all remain tasks before stopping.
            for {
                task, ok := wp.queue.Pop()
                if !ok {
                    break
                }
                task.Process()
            }

            close(wp.done)

            return nil
        default:
            wp.processOne()
        }
    }
}

// Proccesses one task from worker pool queue.
// If there are no task, then it will wait till task appears and return.
func (wp *WorkerPool) processOne() {
    task, ok := wp.queue.Pop()
    if !ok {
        wp.waiter.Wait()

        // Must return, cuz this function isn't tracking was context canceled or not.
        // (It's done in for-select inside of Start() method)
        return
    }

    task.Process()
}

// Cancels worker pool.
// Worker pool will finish all its tasks before stopping.
// Once canceled, worker pool can't be started again.
func (wp *WorkerPool) Cancel() error {
    if wp.canceled.Load() {
        return fmt.Errorf("worker pool already canceled")
    }

    wp.cancel()
    wp.canceled.Store(true)
    wp.waiter.Wake()

    <-wp.done

    return nil
}

func (wp *WorkerPool) IsCanceled() bool {
    return wp.canceled.Load()
}

// Pushes a new task into a worker pool.
// Returns error on trying to push into a canceled worker pool
func (wp *WorkerPool) Push(t Task) error {
    if wp.canceled.Load() {
        return fmt.Errorf("can't push in canceled worker pool")
    }

    wp.queue.Push(t)
    wp.waiter.Wake()

    return nil
}
