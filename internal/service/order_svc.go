package service

import (
	"context"
	"sort"

	"pca_admin_v1/internal/api/dto"
	"pca_admin_v1/internal/client"
	"pca_admin_v1/internal/model"
	"pca_admin_v1/internal/store"
	"pca_admin_v1/pkg/utils"
)

// recentOrderCount 看板展示的最近订单数
const recentOrderCount = 5

// OrderService 订单服务（店铺管理员侧）
// 每次全量拉取后整体刷新订单缓存，列表页与编辑页共享同一份会话级副本
type OrderService struct {
	api      *client.APIClient
	cache    *store.OrderCache
	pageSize int
}

// NewOrderService 创建订单服务
func NewOrderService(api *client.APIClient, cache *store.OrderCache, pageSize int) *OrderService {
	return &OrderService{
		api:      api,
		cache:    cache,
		pageSize: pageSize,
	}
}

// refresh 全量拉取并整体替换缓存
func (s *OrderService) refresh(ctx context.Context, shopID string) ([]model.Order, error) {
	orders, err := s.api.ListOrders(ctx, shopID)
	if err != nil {
		return nil, err
	}
	s.cache.ReplaceAll(orders)
	return orders, nil
}

// ==================== 看板 ====================

// Dashboard 店铺看板：订单统计 + 最近订单
func (s *OrderService) Dashboard(ctx context.Context, shopID string) (*dto.OrderDashboard, error) {
	orders, err := s.refresh(ctx, shopID)
	if err != nil {
		return nil, err
	}

	recent := make([]model.Order, len(orders))
	copy(recent, orders)
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentOrderCount {
		recent = recent[:recentOrderCount]
	}

	return &dto.OrderDashboard{
		Stats:        CalcOrderStats(orders),
		RecentOrders: recent,
	}, nil
}

// CalcOrderStats 订单统计（单趟遍历）
// 营收只累计 COMPLETED 订单金额；空集合各项均为 0
func CalcOrderStats(orders []model.Order) dto.OrderStats {
	stats := dto.OrderStats{TotalOrders: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case model.OrderStatusPending:
			stats.PendingOrders++
		case model.OrderStatusInProgress:
			stats.InProgressOrders++
		case model.OrderStatusCompleted:
			stats.CompletedOrders++
			stats.TotalRevenue += o.Amount
		case model.OrderStatusCancelled:
			stats.CancelledOrders++
		}
	}
	return stats
}

// ==================== 列表 ====================

// List 订单列表：本地过滤（客户名搜索 + 状态筛选）后分页
func (s *OrderService) List(ctx context.Context, shopID string, query *dto.OrderListQuery) (*dto.OrderListResponse, error) {
	orders, err := s.refresh(ctx, shopID)
	if err != nil {
		return nil, err
	}

	filtered := FilterOrders(orders, query.Search, query.Status)
	pageOrders, page, totalPages := utils.Paginate(filtered, query.Page, s.pageSize)

	return &dto.OrderListResponse{
		Orders:     pageOrders,
		TotalCount: len(filtered),
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// FilterOrders 过滤订单集合
// 搜索对客户名做大小写不敏感子串匹配
func FilterOrders(orders []model.Order, search, status string) []model.Order {
	out := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if search != "" && !utils.MatchFold(o.CustomerName, search) {
			continue
		}
		if status != "" && string(o.Status) != status {
			continue
		}
		out = append(out, o)
	}
	return out
}

// ==================== 编辑页取数 ====================

// GetCached 编辑页从缓存取单条订单
// 未命中（刷新/深链直达后缓存为空）时调用方必须跳回列表页，不得凭空补一条空记录
func (s *OrderService) GetCached(id string) (model.Order, bool) {
	return s.cache.FindByID(id)
}

// ==================== 变更操作 ====================

// Create 创建订单并重新同步缓存
// 成功后整单重取替换缓存，保证 FindByID 能立即取到远端返回的新记录
func (s *OrderService) Create(ctx context.Context, shopID string, req *dto.CreateOrderRequest) (*model.Order, error) {
	created, err := s.api.CreateOrder(ctx, shopID, req)
	if err != nil {
		return nil, err
	}
	if _, err := s.refresh(ctx, shopID); err != nil {
		return nil, err
	}
	return created, nil
}

// Update 更新订单并重新同步缓存
func (s *OrderService) Update(ctx context.Context, shopID, orderID string, req *dto.UpdateOrderRequest) (*model.Order, error) {
	updated, err := s.api.UpdateOrder(ctx, shopID, orderID, req)
	if err != nil {
		return nil, err
	}
	if _, err := s.refresh(ctx, shopID); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete 删除订单，缓存就地剔除该条，无需整单重取
func (s *OrderService) Delete(ctx context.Context, shopID, orderID string) error {
	if err := s.api.DeleteOrder(ctx, shopID, orderID); err != nil {
		return err
	}
	s.cache.Remove(orderID)
	return nil
}
