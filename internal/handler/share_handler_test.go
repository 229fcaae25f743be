package handler

import (
	"fmt"
	"net/http"
	"testing"

	"fotoshare-server/internal/model"
)

// 测试内容：验证分享接口——按用户名授权、权限门槛、撤销。
func TestShareEndpoints(t *testing.T) {
	r, gdb := setupRouterTest(t)
	owner := seedUser(t, gdb, "alice", model.RoleUser)
	grantee := seedUser(t, gdb, "bob", model.RoleUser)
	photo := seedPhoto(t, gdb, owner.ID, model.VisibilityPrivate)

	sharePath := fmt.Sprintf("/api/photos/%d/shares", photo.ID)

	// 未认证请求被拒
	w := doJSON(t, r, http.MethodPost, sharePath, "", map[string]interface{}{
		"username": "bob", "permission": "READ",
	})
	assertStatus(t, w, http.StatusUnauthorized)

	// 非所有者无权分享
	w = doJSON(t, r, http.MethodPost, sharePath, loginToken(t, grantee), map[string]interface{}{
		"username": "bob", "permission": "READ",
	})
	assertStatus(t, w, http.StatusForbidden)

	// 所有者按用户名分享
	w = doJSON(t, r, http.MethodPost, sharePath, loginToken(t, owner), map[string]interface{}{
		"username": "bob", "permission": "COMMENT",
	})
	assertStatus(t, w, http.StatusOK)

	// 目标用户不存在
	w = doJSON(t, r, http.MethodPost, sharePath, loginToken(t, owner), map[string]interface{}{
		"username": "ghost", "permission": "READ",
	})
	assertStatus(t, w, http.StatusNotFound)

	// 非法权限等级
	w = doJSON(t, r, http.MethodPost, sharePath, loginToken(t, owner), map[string]interface{}{
		"username": "bob", "permission": "SUPER",
	})
	assertStatus(t, w, http.StatusBadRequest)

	// 分享列表要求管理能力
	w = doJSON(t, r, http.MethodGet, sharePath, loginToken(t, grantee), nil)
	assertStatus(t, w, http.StatusForbidden)

	w = doJSON(t, r, http.MethodGet, sharePath, loginToken(t, owner), nil)
	assertStatus(t, w, http.StatusOK)

	// 撤销后权限立即失效
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("%s/%d", sharePath, grantee.ID), loginToken(t, owner), nil)
	assertStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/photos/%d", photo.ID), loginToken(t, grantee), nil)
	assertStatus(t, w, http.StatusNotFound)
}
