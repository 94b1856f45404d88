package utils

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestDebouncer_CoalescesRapidCalls(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)
	defer d.Stop()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		passed   int
		dropped  int
	)

	// 两次快速连续调用：只有最后一次放行
	wg.Add(1)
	go func() {
		defer wg.Done()
		err := d.Wait(context.Background())
		mu.Lock()
		defer mu.Unlock()
		if err == nil {
			passed++
		} else if errors.Is(err, ErrSuperseded) {
			dropped++
		}
	}()

	time.Sleep(10 * time.Millisecond)

	if err := d.Wait(context.Background()); err != nil {
		t.Fatalf("最后一次调用应放行: %v", err)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if passed != 0 || dropped != 1 {
		t.Fatalf("第一次调用应被覆盖: passed=%d dropped=%d", passed, dropped)
	}
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	d := NewDebouncer(time.Minute)

	done := make(chan error, 1)
	go func() {
		done <- d.Wait(context.Background())
	}()

	time.Sleep(10 * time.Millisecond)
	d.Stop()

	select {
	case err := <-done:
		if !errors.Is(err, ErrStopped) {
			t.Fatalf("期望 ErrStopped, 实际 %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Stop 后挂起的等待应立即返回")
	}

	// 停止后的新调用也立即失败
	if err := d.Wait(context.Background()); !errors.Is(err, ErrStopped) {
		t.Fatalf("停止后的调用期望 ErrStopped, 实际 %v", err)
	}
}

func TestDebouncer_ContextCancel(t *testing.T) {
	d := NewDebouncer(time.Minute)
	defer d.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- d.Wait(ctx)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("期望 context.Canceled, 实际 %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("取消后等待应立即返回")
	}
}
