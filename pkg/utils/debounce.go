package utils

import (
	"context"
	"errors"
	"sync"
	"time"
)

// 防抖结果
var (
	// ErrSuperseded 等待期间来了更新的调用，本次应被丢弃
	ErrSuperseded = errors.New("debounce: superseded by a newer call")
	// ErrStopped 防抖器已随组件销毁而停止
	ErrStopped = errors.New("debounce: stopped")
)

// Debouncer 尾沿防抖器
// 快速连续的调用只放行最后一次，把密集输入合并为一次真正的请求
// Stop 之后所有挂起与后续的等待立即失败，避免销毁后的陈旧请求继续改状态
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	gen     uint64
	stopped chan struct{}
	once    sync.Once
}

// NewDebouncer 创建防抖器
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{
		delay:   delay,
		stopped: make(chan struct{}),
	}
}

// Wait 登记一次调用并等待防抖窗口
// 返回 nil 表示本次调用是窗口内的最后一次，可以发起请求；
// 返回 ErrSuperseded 表示已被更新的调用覆盖
func (d *Debouncer) Wait(ctx context.Context) error {
	select {
	case <-d.stopped:
		return ErrStopped
	default:
	}

	d.mu.Lock()
	d.gen++
	mine := d.gen
	d.mu.Unlock()

	timer := time.NewTimer(d.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		return ctx.Err()
	case <-d.stopped:
		return ErrStopped
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.gen != mine {
		return ErrSuperseded
	}
	return nil
}

// Stop 停止防抖器并取消所有挂起的等待
func (d *Debouncer) Stop() {
	d.once.Do(func() {
		close(d.stopped)
	})
}
