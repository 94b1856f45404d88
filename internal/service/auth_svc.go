package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"pca_admin_v1/internal/client"
	"pca_admin_v1/internal/model"
	"pca_admin_v1/internal/store"
)

// AuthService 认证服务
type AuthService struct {
	api     *client.APIClient
	session *store.SessionStore
	orders  *store.OrderCache
	logger  *zap.Logger
}

// NewAuthService 创建认证服务
func NewAuthService(api *client.APIClient, session *store.SessionStore, orders *store.OrderCache, logger *zap.Logger) *AuthService {
	return &AuthService{
		api:     api,
		session: session,
		orders:  orders,
		logger:  logger,
	}
}

// Login 登录
// 成功后整体写入会话：token、角色、租户（仅 SHOPADMIN）、用户档案一次落位
func (s *AuthService) Login(ctx context.Context, phone, password string) (*model.User, error) {
	resp, err := s.api.Login(ctx, phone, password)
	if err != nil {
		return nil, err
	}

	user := resp.User
	switch user.Role {
	case model.RoleSuperAdmin:
		if err := s.session.SetAuth(resp.AccessToken, user.Role, "", user); err != nil {
			return nil, err
		}
	case model.RoleShopAdmin:
		// 远端的 shopId 可能是裸 ID 也可能是内嵌对象，ShopRef 已归一化
		shopID := user.ShopID.ID
		if shopID == "" {
			return nil, fmt.Errorf("店铺管理员账号缺少店铺归属")
		}
		if err := s.session.SetAuth(resp.AccessToken, user.Role, shopID, user); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("未知的用户角色: %s", user.Role)
	}

	s.logger.Info("登录成功",
		zap.String("role", string(user.Role)),
		zap.String("shop_id", s.session.ShopID()))
	return user, nil
}

// Logout 登出
// 会话与订单缓存一并清空
func (s *AuthService) Logout() error {
	s.orders.Clear()
	if err := s.session.ClearAuth(); err != nil {
		return err
	}
	s.logger.Info("已登出")
	return nil
}
