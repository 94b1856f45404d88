package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"pca_admin_v1/internal/client"
	"pca_admin_v1/internal/model"
	"pca_admin_v1/pkg/utils"
)

// PublicService 公开页服务（顾客免登录访问）
type PublicService struct {
	api      *client.APIClient
	debounce *utils.Debouncer
	logger   *zap.Logger
}

// NewPublicService 创建公开页服务
func NewPublicService(api *client.APIClient, debounce *utils.Debouncer, logger *zap.Logger) *PublicService {
	return &PublicService{
		api:      api,
		debounce: debounce,
		logger:   logger,
	}
}

// GetShop 公开店铺信息（收款信息页）
func (s *PublicService) GetShop(ctx context.Context, shopID string) (*model.Shop, error) {
	return s.api.GetPublicShop(ctx, shopID)
}

// SearchOrders 公开订单搜索
// 搜索触发的重取经过约 500ms 防抖：密集输入只放行最后一次，
// 被更新输入覆盖的调用返回 ErrSuperseded，由调用方丢弃
func (s *PublicService) SearchOrders(ctx context.Context, shopID, search string) ([]model.Order, error) {
	if err := s.debounce.Wait(ctx); err != nil {
		if errors.Is(err, utils.ErrSuperseded) {
			s.logger.Debug("搜索请求已被更新输入覆盖",
				zap.String("shop_id", shopID),
				zap.String("search", search))
		}
		return nil, err
	}
	return s.api.ListPublicOrders(ctx, shopID, search)
}

// Shutdown 组件销毁时取消挂起的防抖定时器，阻止陈旧请求继续改状态
func (s *PublicService) Shutdown() {
	s.debounce.Stop()
}
