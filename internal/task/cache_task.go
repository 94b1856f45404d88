package task

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"pca_admin_v1/internal/store"
)

// CacheSweepTask 订单缓存巡检任务
// 缓存只是会话内的接力副本，闲置过久就整体清掉，给陈旧数据兜底
type CacheSweepTask struct {
	Cache *store.OrderCache
	Cron  *cron.Cron

	ttl time.Duration
}

// NewCacheSweepTask 创建缓存巡检任务
func NewCacheSweepTask(cache *store.OrderCache, ttl time.Duration) *CacheSweepTask {
	return &CacheSweepTask{
		Cache: cache,
		Cron:  cron.New(cron.WithSeconds()), // 支持秒级控制
		ttl:   ttl,
	}
}

// Start 启动定时任务
func (t *CacheSweepTask) Start() {
	// 每 10 分钟巡检一次
	_, err := t.Cron.AddFunc("0 0/10 * * * *", func() {
		if t.Cache.ClearIfIdle(t.ttl) {
			log.Printf("[Cron] 订单缓存闲置超过 %s，已清空", t.ttl)
		}
	})
	if err != nil {
		log.Fatalf("无法启动缓存巡检任务: %v", err)
	}

	t.Cron.Start()
	log.Println("缓存巡检任务已启动 (每10分钟检查一次)")
}

// Stop 停止定时任务
func (t *CacheSweepTask) Stop() {
	t.Cron.Stop()
}
