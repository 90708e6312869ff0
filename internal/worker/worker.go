// File: internal/worker/worker.go
package worker

import "sync"

// Dispatcher 抽象化背景工作的送出，測試可用 SyncDispatcher 直接執行
type Dispatcher interface {
	Submit(job func())
}

// Pool 固定數量的背景工作池，用於不需等待結果的寫入
type Pool struct {
	jobs    chan func()
	wg      sync.WaitGroup
	mu      sync.RWMutex
	stopped bool
}

// NewPool 啟動 workers 個 goroutine 消化佇列
func NewPool(workers int, queueSize int) *Pool {
	p := &Pool{jobs: make(chan func(), queueSize)}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				job()
			}
		}()
	}
	return p
}

// Submit 送出工作，佇列滿時阻塞
// 工作池停止後送出的工作直接捨棄，不會恐慌
func (p *Pool) Submit(job func()) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return
	}
	p.jobs <- job
}

// Stop 關閉佇列並等待所有已送出的工作完成，可重複呼叫
func (p *Pool) Stop() {
	p.mu.Lock()
	if !p.stopped {
		p.stopped = true
		close(p.jobs)
	}
	p.mu.Unlock()
	p.wg.Wait()
}

// SyncDispatcher 同步執行送出的工作
type SyncDispatcher struct{}

func (SyncDispatcher) Submit(job func()) { job() }
