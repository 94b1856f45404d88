package store

import (
	"testing"
	"time"

	"pca_admin_v1/internal/model"
)

func sampleOrders() []model.Order {
	return []model.Order{
		{ID: "o1", CustomerName: "张三", Status: model.OrderStatusPending, Amount: 100},
		{ID: "o2", CustomerName: "李四", Status: model.OrderStatusCompleted, Amount: 250},
		{ID: "o3", CustomerName: "王五", Status: model.OrderStatusInProgress, Amount: 80},
	}
}

func TestOrderCache_ReplaceAllAndFindByID(t *testing.T) {
	c := NewOrderCache()
	c.ReplaceAll(sampleOrders())

	order, ok := c.FindByID("o2")
	if !ok {
		t.Fatal("应命中缓存中的订单 o2")
	}
	if order.CustomerName != "李四" || order.Amount != 250 {
		t.Fatalf("命中记录内容错误: %+v", order)
	}
}

func TestOrderCache_MissWhenEmpty(t *testing.T) {
	c := NewOrderCache()

	// 缓存为空（刷新/深链直达场景）必须返回未命中，不能造空记录
	if _, ok := c.FindByID("o1"); ok {
		t.Fatal("空缓存不应命中任何 ID")
	}
}

func TestOrderCache_Remove(t *testing.T) {
	c := NewOrderCache()
	c.ReplaceAll(sampleOrders())

	c.Remove("o2")
	if _, ok := c.FindByID("o2"); ok {
		t.Fatal("删除后不应再命中 o2")
	}
	if c.Len() != 2 {
		t.Fatalf("删除后应剩 2 条, 实际 %d", c.Len())
	}
}

func TestOrderCache_ReplaceAllOverwrites(t *testing.T) {
	c := NewOrderCache()
	c.ReplaceAll(sampleOrders())

	c.ReplaceAll([]model.Order{{ID: "o9", CustomerName: "赵六"}})
	if _, ok := c.FindByID("o1"); ok {
		t.Fatal("整体替换后旧集合应全部失效")
	}
	if _, ok := c.FindByID("o9"); !ok {
		t.Fatal("整体替换后应只见新集合")
	}
}

func TestOrderCache_ClearIfIdle(t *testing.T) {
	c := NewOrderCache()
	c.ReplaceAll(sampleOrders())

	if c.ClearIfIdle(time.Hour) {
		t.Fatal("刚写入的缓存不应被判定为闲置")
	}
	if !c.ClearIfIdle(0) {
		t.Fatal("ttl 为 0 时应立即清理")
	}
	if c.Len() != 0 {
		t.Fatalf("清理后应为空, 实际 %d 条", c.Len())
	}
	if c.ClearIfIdle(0) {
		t.Fatal("空缓存无需重复清理")
	}
}
