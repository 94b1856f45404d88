package service

import (
	"context"
	"math"
	"sort"
	"time"

	"pca_admin_v1/internal/api/dto"
	"pca_admin_v1/internal/client"
	"pca_admin_v1/internal/model"
	"pca_admin_v1/pkg/utils"
)

// recentShopCount 看板展示的最近店铺数
const recentShopCount = 5

// ShopService 店铺服务（超管侧）
// 统计、搜索、分页全部在整单拉取的全量集合上本地完成，
// 与远端的约定就是 fetch-all-then-filter；集合规模的天花板由该约定决定
type ShopService struct {
	api      *client.APIClient
	pageSize int
}

// NewShopService 创建店铺服务
func NewShopService(api *client.APIClient, pageSize int) *ShopService {
	return &ShopService{api: api, pageSize: pageSize}
}

// ==================== 看板 ====================

// Dashboard 超管看板：店铺统计 + 最近店铺
func (s *ShopService) Dashboard(ctx context.Context) (*dto.ShopDashboard, error) {
	shops, err := s.api.ListShops(ctx)
	if err != nil {
		return nil, err
	}

	recent := make([]model.Shop, len(shops))
	copy(recent, shops)
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentShopCount {
		recent = recent[:recentShopCount]
	}

	return &dto.ShopDashboard{
		Stats:       CalcShopStats(shops, time.Now()),
		RecentShops: recent,
	}, nil
}

// CalcShopStats 店铺统计
// 增长率 = 近一个自然月新增 ÷ 总数 × 100，四舍五入；总数为 0 时恒为 0
func CalcShopStats(shops []model.Shop, now time.Time) dto.ShopStats {
	oneMonthAgo := now.AddDate(0, -1, 0)

	stats := dto.ShopStats{TotalShops: len(shops)}
	for _, shop := range shops {
		if shop.IsActive {
			stats.ActiveShops++
		} else {
			stats.InactiveShops++
		}
		if shop.CreatedAt.After(oneMonthAgo) {
			stats.NewShopsThisMonth++
		}
	}

	if stats.TotalShops > 0 {
		rate := float64(stats.NewShopsThisMonth) / float64(stats.TotalShops) * 100
		stats.ShopGrowthRate = int(math.Round(rate))
	}
	return stats
}

// ==================== 列表 ====================

// List 店铺列表：本地过滤（名称/地址搜索 + 启停筛选）后分页
func (s *ShopService) List(ctx context.Context, query *dto.ShopListQuery) (*dto.ShopListResponse, error) {
	shops, err := s.api.ListShops(ctx)
	if err != nil {
		return nil, err
	}

	filtered := FilterShops(shops, query.Search, query.Active)
	pageShops, page, totalPages := utils.Paginate(filtered, query.Page, s.pageSize)

	return &dto.ShopListResponse{
		Shops:      pageShops,
		TotalCount: len(filtered),
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// FilterShops 过滤店铺集合
// 搜索对名称/地址做大小写不敏感子串匹配；active 为 "true"/"false" 时按启停筛选
func FilterShops(shops []model.Shop, search, active string) []model.Shop {
	out := make([]model.Shop, 0, len(shops))
	for _, shop := range shops {
		if search != "" &&
			!utils.MatchFold(shop.Name, search) &&
			!utils.MatchFold(shop.Address, search) {
			continue
		}
		if active == "true" && !shop.IsActive {
			continue
		}
		if active == "false" && shop.IsActive {
			continue
		}
		out = append(out, shop)
	}
	return out
}

// ==================== CRUD 透传 ====================

// Get 店铺详情（不缓存，随取随用）
func (s *ShopService) Get(ctx context.Context, id string) (*model.Shop, error) {
	return s.api.GetShop(ctx, id)
}

// Create 创建店铺
func (s *ShopService) Create(ctx context.Context, req *dto.CreateShopRequest) (*model.Shop, error) {
	return s.api.CreateShop(ctx, req)
}

// Update 更新店铺
func (s *ShopService) Update(ctx context.Context, id string, req *dto.UpdateShopRequest) (*model.Shop, error) {
	return s.api.UpdateShop(ctx, id, req)
}

// Delete 删除店铺
func (s *ShopService) Delete(ctx context.Context, id string) error {
	return s.api.DeleteShop(ctx, id)
}
