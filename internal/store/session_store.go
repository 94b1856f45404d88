package store

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"pca_admin_v1/internal/model"
)

// ==================== 持久化记录 ====================

// sessionRecord 会话落盘记录（单行表，id 恒为 1）
// 按约定明文存储，不加密不校验——真正的授权边界在远端服务
type sessionRecord struct {
	ID        int64  `gorm:"primaryKey"`
	Token     string `gorm:"type:text"`
	Role      string `gorm:"size:32"`
	ShopID    string `gorm:"size:64"`
	UserJSON  string `gorm:"type:text"`
	UpdatedAt time.Time
}

func (sessionRecord) TableName() string { return "session" }

const sessionRowID = 1

// ==================== SessionStore ====================

// SessionStore 本地会话存储
// token、角色、租户、用户档案四项整体替换、整体清空，任何读方看到的都是完整会话
// 每次变更都落盘，启动时先回灌再做路由判定，避免刷新后被误判为未登录
type SessionStore struct {
	db *gorm.DB

	mu  sync.RWMutex
	cur model.Session
}

// NewSessionStore 创建会话存储并从磁盘回灌
func NewSessionStore(db *gorm.DB) (*SessionStore, error) {
	if err := db.AutoMigrate(&sessionRecord{}); err != nil {
		return nil, fmt.Errorf("初始化会话表失败: %w", err)
	}

	s := &SessionStore{db: db}
	if err := s.rehydrate(); err != nil {
		return nil, err
	}
	return s, nil
}

// rehydrate 从磁盘恢复会话
func (s *SessionStore) rehydrate() error {
	var rec sessionRecord
	err := s.db.First(&rec, sessionRowID).Error
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	if err != nil {
		return fmt.Errorf("读取会话记录失败: %w", err)
	}

	sess := model.Session{
		Token:  rec.Token,
		Role:   model.Role(rec.Role),
		ShopID: rec.ShopID,
	}
	if rec.UserJSON != "" {
		var user model.User
		if err := json.Unmarshal([]byte(rec.UserJSON), &user); err == nil {
			sess.User = &user
		}
	}

	s.mu.Lock()
	s.cur = sess
	s.mu.Unlock()
	return nil
}

// ==================== 读操作 ====================

// Current 当前会话快照
func (s *SessionStore) Current() model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Token 当前 token（每次请求时实时读取，不做任何快照）
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.Token
}

// Role 当前角色
func (s *SessionStore) Role() model.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.Role
}

// ShopID 当前租户 ID（仅 SHOPADMIN 会话持有）
func (s *SessionStore) ShopID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.ShopID
}

// ==================== 写操作 ====================

// SetAuth 整体替换会话
// 不对 token 内容做任何校验或解析
func (s *SessionStore) SetAuth(token string, role model.Role, shopID string, user *model.User) error {
	sess := model.Session{
		Token:  token,
		Role:   role,
		ShopID: shopID,
		User:   user,
	}

	s.mu.Lock()
	s.cur = sess
	s.mu.Unlock()

	return s.persist(sess)
}

// ClearAuth 整体清空会话
// 内存先清、磁盘后清：即使落盘失败，任何后续读取也已看不到旧会话
func (s *SessionStore) ClearAuth() error {
	s.mu.Lock()
	s.cur = model.Session{}
	s.mu.Unlock()

	return s.persist(model.Session{})
}

// persist 会话落盘
func (s *SessionStore) persist(sess model.Session) error {
	userJSON := ""
	if sess.User != nil {
		if b, err := json.Marshal(sess.User); err == nil {
			userJSON = string(b)
		}
	}

	rec := sessionRecord{
		ID:       sessionRowID,
		Token:    sess.Token,
		Role:     string(sess.Role),
		ShopID:   sess.ShopID,
		UserJSON: userJSON,
	}
	if err := s.db.Save(&rec).Error; err != nil {
		return fmt.Errorf("会话落盘失败: %w", err)
	}
	return nil
}
