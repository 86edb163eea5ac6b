// Package worker runs background jobs that must not block a request,
// such as thumbnail generation after an image upload.
package worker

import "sync"

// Task is a queued unit of background work.
type Task func()

// Pool accepts tasks and runs them on a fixed set of goroutines. Stop
// drains the queue and waits for in-flight tasks to finish.
type Pool interface {
	Submit(Task)
	Stop()
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

// NewPool starts n worker goroutines; n<=0 falls back to a single worker.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.work()
	}
	return p
}

func (p *pool) work() {
	defer p.wg.Done()
	for job := range p.jobs {
		if job == nil {
			continue
		}
		job()
	}
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
