package model

import (
	"encoding/json"
	"time"
)

// ==================== 角色常量 ====================

// Role 用户角色
type Role string

const (
	RoleSuperAdmin Role = "SUPERADMIN" // 平台管理员
	RoleShopAdmin  Role = "SHOPADMIN"  // 店铺管理员
)

// ==================== 用户 ====================

// ShopRef 用户的店铺归属
// 远端在不同接口里时而返回裸 ID 字符串、时而返回内嵌对象，这里统一归一化
type ShopRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// UnmarshalJSON 兼容裸字符串与 {_id,name} 两种形态
func (r *ShopRef) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		r.ID = id
		r.Name = ""
		return nil
	}

	type shopRefAlias ShopRef
	var v shopRefAlias
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = ShopRef(v)
	return nil
}

// MarshalJSON 序列化为裸 ID，与远端请求体约定一致
func (r ShopRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

// User 用户档案
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Role      Role      `json:"role"`
	ShopID    ShopRef   `json:"shopId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ==================== 会话 ====================

// Session 本地会话
// 四项整体写入、整体清空，不存在只有 token 没有角色的中间态
type Session struct {
	Token  string
	Role   Role
	ShopID string
	User   *User
}

// Empty 会话是否为空（未登录或已登出）
func (s Session) Empty() bool {
	return s.Token == "" && s.Role == "" && s.ShopID == "" && s.User == nil
}
