package handler

import (
	"fmt"
	"net/http"
	"testing"

	"fotoshare-server/internal/model"
)

// 测试内容：验证照片查看接口的可见性——公开匿名可见，私有对外 404。
func TestGetPhoto_Visibility(t *testing.T) {
	r, gdb := setupRouterTest(t)
	owner := seedUser(t, gdb, "alice", model.RoleUser)
	stranger := seedUser(t, gdb, "bob", model.RoleUser)
	public := seedPhoto(t, gdb, owner.ID, model.VisibilityPublic)
	private := seedPhoto(t, gdb, owner.ID, model.VisibilityPrivate)

	// 匿名访问公开照片
	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/photos/%d", public.ID), "", nil)
	assertStatus(t, w, http.StatusOK)
	body := decodeBody(t, w)
	if body["visibility"] != "PUBLIC" {
		t.Fatalf("期望返回公开照片: %v", body)
	}

	// 私有照片对匿名与陌生人一律 404，不泄露存在性
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/photos/%d", private.ID), "", nil)
	assertStatus(t, w, http.StatusNotFound)
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/photos/%d", private.ID), loginToken(t, stranger), nil)
	assertStatus(t, w, http.StatusNotFound)

	// 所有者可见
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/photos/%d", private.ID), loginToken(t, owner), nil)
	assertStatus(t, w, http.StatusOK)

	// 不存在的 ID 同样 404
	w = doJSON(t, r, http.MethodGet, "/api/photos/99999", "", nil)
	assertStatus(t, w, http.StatusNotFound)

	// 非数字 ID 为 400
	w = doJSON(t, r, http.MethodGet, "/api/photos/abc", "", nil)
	assertStatus(t, w, http.StatusBadRequest)
}

// 测试内容：验证有效权限接口——所有者 ADMIN、匿名公开 READ、私有无权限为 null。
func TestEffectivePermissionEndpoint(t *testing.T) {
	r, gdb := setupRouterTest(t)
	owner := seedUser(t, gdb, "alice", model.RoleUser)
	public := seedPhoto(t, gdb, owner.ID, model.VisibilityPublic)
	private := seedPhoto(t, gdb, owner.ID, model.VisibilityPrivate)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/photos/%d/permission", private.ID), loginToken(t, owner), nil)
	assertStatus(t, w, http.StatusOK)
	if body := decodeBody(t, w); body["permission"] != "ADMIN" {
		t.Fatalf("期望所有者权限为 ADMIN: %v", body)
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/photos/%d/permission", public.ID), "", nil)
	assertStatus(t, w, http.StatusOK)
	if body := decodeBody(t, w); body["permission"] != "READ" {
		t.Fatalf("期望匿名公开权限为 READ: %v", body)
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/photos/%d/permission", private.ID), "", nil)
	assertStatus(t, w, http.StatusOK)
	if body := decodeBody(t, w); body["permission"] != nil {
		t.Fatalf("期望无权限时返回 null: %v", body)
	}
}

// 测试内容：验证删除接口——非所有者（含 ADMIN 分享持有者）403，所有者删除成功。
func TestDeletePhotoEndpoint(t *testing.T) {
	r, gdb := setupRouterTest(t)
	owner := seedUser(t, gdb, "alice", model.RoleUser)
	manager := seedUser(t, gdb, "bob", model.RoleUser)
	photo := seedPhoto(t, gdb, owner.ID, model.VisibilityPrivate)

	if err := gdb.Create(&model.Share{PhotoID: photo.ID, UserID: manager.ID, Permission: model.PermissionAdmin}).Error; err != nil {
		t.Fatalf("创建分享失败: %v", err)
	}

	path := fmt.Sprintf("/api/photos/%d", photo.ID)

	w := doJSON(t, r, http.MethodDelete, path, loginToken(t, manager), nil)
	assertStatus(t, w, http.StatusForbidden)

	w = doJSON(t, r, http.MethodDelete, path, loginToken(t, owner), nil)
	assertStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodDelete, path, loginToken(t, owner), nil)
	assertStatus(t, w, http.StatusNotFound)
}

// 测试内容：验证评论接口的权限与校验路径。
func TestCommentEndpoints(t *testing.T) {
	r, gdb := setupRouterTest(t)
	owner := seedUser(t, gdb, "alice", model.RoleUser)
	visitor := seedUser(t, gdb, "bob", model.RoleUser)
	photo := seedPhoto(t, gdb, owner.ID, model.VisibilityPublic)

	commentPath := fmt.Sprintf("/api/photos/%d/comments", photo.ID)

	// 公开照片只授予 READ，评论仍被拒绝
	w := doJSON(t, r, http.MethodPost, commentPath, loginToken(t, visitor), map[string]interface{}{"text": "想评论"})
	assertStatus(t, w, http.StatusForbidden)

	// 所有者评论成功
	w = doJSON(t, r, http.MethodPost, commentPath, loginToken(t, owner), map[string]interface{}{"text": "自己的照片"})
	assertStatus(t, w, http.StatusOK)

	// 空白文本 400
	w = doJSON(t, r, http.MethodPost, commentPath, loginToken(t, owner), map[string]interface{}{"text": "   "})
	assertStatus(t, w, http.StatusBadRequest)

	// 匿名可以读取公开照片的评论
	w = doJSON(t, r, http.MethodGet, commentPath, "", nil)
	assertStatus(t, w, http.StatusOK)
}
