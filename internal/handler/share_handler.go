package handler

import (
	"net/http"

	"fotoshare-server/internal/common/httpx"
	"fotoshare-server/internal/model"

	"github.com/gin-gonic/gin"
)

type grantRequest struct {
	UserID     uint             `json:"user_id"`
	Username   string           `json:"username"`
	Permission model.Permission `json:"permission" binding:"required"`
}

// Grant 将照片分享给指定用户，可以按 user_id 或 username 指定对象。
func (h *ShareHandler) Grant(c *gin.Context) {
	photoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	var req grantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数错误"})
		return
	}

	var share interface{}
	var err error
	if req.Username != "" {
		share, err = h.shareService.GrantByUsername(photoID, req.Username, req.Permission, uid)
	} else if req.UserID != 0 {
		share, err = h.shareService.Grant(photoID, req.UserID, req.Permission, uid)
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"error": "必须指定 user_id 或 username"})
		return
	}
	if err != nil {
		httpx.WriteServiceError(c, err, "分享失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":   "分享成功",
		"share": share,
	})
}

func (h *ShareHandler) Revoke(c *gin.Context) {
	photoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	granteeID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.shareService.Revoke(photoID, granteeID, uid); err != nil {
		httpx.WriteServiceError(c, err, "撤销分享失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "已撤销分享"})
}

// ListForPhoto 列出照片的全部分享记录。
func (h *ShareHandler) ListForPhoto(c *gin.Context) {
	photoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	shares, err := h.shareService.ListForPhoto(photoID, uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取分享列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"list": shares})
}

// ListMine 列出分享给当前用户的全部记录。
func (h *ShareHandler) ListMine(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	shares, err := h.shareService.ListForUser(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取分享列表失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"list": shares})
}
