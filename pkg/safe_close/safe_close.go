// Package safe_close coordinates graceful shutdown of attached goroutines.
// Package safe_close 协调已注册协程的优雅关闭
package safe_close

import (
	"sync"
)

// SafeClose fans a single close signal out to every attached goroutine and
// waits for all of them to finish.
type SafeClose struct {
	closeOnce   sync.Once
	closeSignal chan struct{}
	wg          sync.WaitGroup

	mu  sync.Mutex
	err error
}

func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeSignal: make(chan struct{}),
	}
}

// Attach starts f in its own goroutine. f must call done() when it has fully
// stopped, and must return promptly after closeSignal fires.
// Attach 启动 f；f 停止后必须调用 done()，并在收到 closeSignal 后尽快返回
func (s *SafeClose) Attach(f func(done func(), closeSignal <-chan struct{})) {
	s.wg.Add(1)
	done := func() { s.wg.Done() }
	go f(done, s.closeSignal)
}

// SendCloseSignal requests shutdown. The first non-nil error wins; later
// calls are no-ops.
// SendCloseSignal 发送关闭信号，只有第一个非 nil 错误会被保留
func (s *SafeClose) SendCloseSignal(err error) {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
		close(s.closeSignal)
	})
}

// CloseSignal exposes the signal channel for select loops.
func (s *SafeClose) CloseSignal() <-chan struct{} {
	return s.closeSignal
}

// WaitClosed blocks until every attached goroutine has called done, then
// returns the error passed to SendCloseSignal, if any.
// WaitClosed 等待所有已注册协程退出，返回关闭时携带的错误
func (s *SafeClose) WaitClosed() error {
	s.wg.Wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
