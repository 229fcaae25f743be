package handler

import (
	"net/http"

	"fotoshare-server/internal/common/httpx"

	"github.com/gin-gonic/gin"
)

func (h *UserHandler) GetSelfInfo(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取用户信息失败")
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteSelf 注销当前账号，级联删除全部个人数据。
func (h *UserHandler) DeleteSelf(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUserWithCascade(uid); err != nil {
		httpx.WriteServiceError(c, err, "注销账号失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "账号已注销"})
}

// AdminDeleteUser 管理员删除指定用户，级联删除其全部数据。
func (h *UserHandler) AdminDeleteUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.userService.DeleteUserWithCascade(userID); err != nil {
		httpx.WriteServiceError(c, err, "删除用户失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "用户已删除"})
}

type setEnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// AdminSetEnabled 管理员启用/停用用户。
func (h *UserHandler) AdminSetEnabled(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req setEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数错误"})
		return
	}

	if err := h.userService.SetEnabled(userID, *req.Enabled); err != nil {
		httpx.WriteServiceError(c, err, "更新用户状态失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "已更新"})
}
