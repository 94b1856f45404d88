package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config 运行配置
type Config struct {
	ServerPort    string        // 监听端口
	APIBaseURL    string        // 远端订单服务地址
	SessionDBPath string        // 会话落盘文件
	PageSize      int           // 列表页大小
	SearchDelay   time.Duration // 公开搜索防抖窗口
	CacheTTL      time.Duration // 订单缓存闲置上限
}

// Load 从环境变量加载配置（带默认值）
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("API_BASE_URL", "http://localhost:3000")
	v.SetDefault("SESSION_DB_PATH", "pca_admin_session.db")
	v.SetDefault("PAGE_SIZE", 10)
	v.SetDefault("PUBLIC_SEARCH_DEBOUNCE_MS", 500)
	v.SetDefault("CACHE_TTL_MIN", 30)

	return &Config{
		ServerPort:    v.GetString("SERVER_PORT"),
		APIBaseURL:    v.GetString("API_BASE_URL"),
		SessionDBPath: v.GetString("SESSION_DB_PATH"),
		PageSize:      v.GetInt("PAGE_SIZE"),
		SearchDelay:   time.Duration(v.GetInt("PUBLIC_SEARCH_DEBOUNCE_MS")) * time.Millisecond,
		CacheTTL:      time.Duration(v.GetInt("CACHE_TTL_MIN")) * time.Minute,
	}
}
