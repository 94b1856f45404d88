package store

import (
	"sync"
	"time"

	"pca_admin_v1/internal/model"
)

// OrderCache 会话级订单缓存
// 列表页整单拉取后暂存全量集合，编辑页直接取用，省掉一次网络往返
// 非权威副本：整体替换、按 ID 删除，不做任何局部原地修改，也不落盘
type OrderCache struct {
	mu      sync.RWMutex
	orders  []model.Order
	touched time.Time
}

// NewOrderCache 创建订单缓存
func NewOrderCache() *OrderCache {
	return &OrderCache{}
}

// ReplaceAll 整体替换缓存集合（每次全量拉取后调用）
func (c *OrderCache) ReplaceAll(orders []model.Order) {
	cp := make([]model.Order, len(orders))
	copy(cp, orders)

	c.mu.Lock()
	c.orders = cp
	c.touched = time.Now()
	c.mu.Unlock()
}

// FindByID 按 ID 线性查找
// 缓存为空（例如刷新或深链直达）时返回未命中，调用方必须按"数据不可用"
// 处理——跳回列表页重取，绝不能凭空造一条空记录
func (c *OrderCache) FindByID(id string) (model.Order, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, o := range c.orders {
		if o.ID == id {
			return o, true
		}
	}
	return model.Order{}, false
}

// Remove 删除成功后剔除单条记录，列表与看板无需重取即可保持一致
func (c *OrderCache) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.orders[:0]
	for _, o := range c.orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	c.orders = kept
	c.touched = time.Now()
}

// All 当前缓存集合的副本
func (c *OrderCache) All() []model.Order {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cp := make([]model.Order, len(c.orders))
	copy(cp, c.orders)
	return cp
}

// Len 缓存条数
func (c *OrderCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.orders)
}

// Clear 清空缓存（登出或强制下线时调用）
func (c *OrderCache) Clear() {
	c.mu.Lock()
	c.orders = nil
	c.touched = time.Time{}
	c.mu.Unlock()
}

// ClearIfIdle 闲置超过 ttl 则清空，返回是否执行了清理
func (c *OrderCache) ClearIfIdle(ttl time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.orders == nil || c.touched.IsZero() {
		return false
	}
	if time.Since(c.touched) < ttl {
		return false
	}
	c.orders = nil
	c.touched = time.Time{}
	return true
}
