package store

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pca_admin_v1/internal/model"
)

// ==================== 测试辅助 ====================

func setupSessionDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	return db
}

func testUser() *model.User {
	return &model.User{
		ID:    "u1",
		Name:  "测试店长",
		Phone: "13800000000",
		Role:  model.RoleShopAdmin,
	}
}

// ==================== 单元测试 ====================

func TestSessionStore_SetAuthAtomic(t *testing.T) {
	db := setupSessionDB(t)
	s, err := NewSessionStore(db)
	if err != nil {
		t.Fatalf("创建会话存储失败: %v", err)
	}

	if err := s.SetAuth("tok-1", model.RoleShopAdmin, "shop-1", testUser()); err != nil {
		t.Fatalf("写入会话失败: %v", err)
	}

	sess := s.Current()
	if sess.Token != "tok-1" || sess.Role != model.RoleShopAdmin || sess.ShopID != "shop-1" {
		t.Fatalf("会话四项应整体落位: %+v", sess)
	}
	if sess.User == nil || sess.User.ID != "u1" {
		t.Fatalf("用户档案缺失: %+v", sess.User)
	}
}

func TestSessionStore_ClearAuthAtomic(t *testing.T) {
	db := setupSessionDB(t)
	s, _ := NewSessionStore(db)

	s.SetAuth("tok-1", model.RoleSuperAdmin, "", testUser())
	if err := s.ClearAuth(); err != nil {
		t.Fatalf("清除会话失败: %v", err)
	}

	// 清除后任何读取都必须返回空
	if s.Token() != "" || s.Role() != "" || s.ShopID() != "" {
		t.Fatalf("清除后仍能读到旧值: %+v", s.Current())
	}
	if !s.Current().Empty() {
		t.Fatal("清除后会话应整体为空")
	}
}

func TestSessionStore_RehydrateAcrossRestart(t *testing.T) {
	db := setupSessionDB(t)

	first, err := NewSessionStore(db)
	if err != nil {
		t.Fatalf("创建会话存储失败: %v", err)
	}
	if err := first.SetAuth("tok-9", model.RoleShopAdmin, "shop-9", testUser()); err != nil {
		t.Fatalf("写入会话失败: %v", err)
	}

	// 同一份磁盘记录上重建存储，相当于进程重启后的回灌
	second, err := NewSessionStore(db)
	if err != nil {
		t.Fatalf("回灌会话失败: %v", err)
	}

	sess := second.Current()
	if sess.Token != "tok-9" || sess.Role != model.RoleShopAdmin || sess.ShopID != "shop-9" {
		t.Fatalf("重启后会话应完整恢复: %+v", sess)
	}
	if sess.User == nil || sess.User.Name != "测试店长" {
		t.Fatalf("重启后用户档案应完整恢复: %+v", sess.User)
	}
}

func TestSessionStore_RehydrateEmpty(t *testing.T) {
	db := setupSessionDB(t)
	s, err := NewSessionStore(db)
	if err != nil {
		t.Fatalf("创建会话存储失败: %v", err)
	}
	if !s.Current().Empty() {
		t.Fatalf("无历史记录时会话应为空: %+v", s.Current())
	}
}
