package handler

import (
	"net/http"
	"strconv"

	"fotoshare-server/internal/common/httpx"
	"fotoshare-server/internal/model"

	"github.com/gin-gonic/gin"
)

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的 ID"})
		return 0, false
	}
	return uint(id), true
}

func (h *PhotoHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请选择文件"})
		return
	}

	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")
	visibility := model.Visibility(c.PostForm("visibility"))

	photo, err := h.photoService.Upload(file, title, description, visibility, uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "上传失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":   "上传成功",
		"photo": photo,
	})
}

func (h *PhotoHandler) GetPhoto(c *gin.Context) {
	photoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	photo, err := h.photoService.GetPhoto(photoID, optionalUserID(c))
	if err != nil {
		httpx.WriteServiceError(c, err, "获取照片失败")
		return
	}

	c.JSON(http.StatusOK, photo)
}

// GetPhotoFile 下载照片文件，权限与元数据查看一致。
func (h *PhotoHandler) GetPhotoFile(c *gin.Context) {
	photoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	path, contentType, err := h.photoService.GetPhotoFile(photoID, optionalUserID(c))
	if err != nil {
		httpx.WriteServiceError(c, err, "获取照片文件失败")
		return
	}

	c.Header("Content-Type", contentType)
	c.File(path)
}

type updatePhotoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (h *PhotoHandler) Update(c *gin.Context) {
	photoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	var req updatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数错误"})
		return
	}

	photo, err := h.photoService.UpdatePhoto(photoID, req.Title, req.Description, uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新照片失败")
		return
	}

	c.JSON(http.StatusOK, photo)
}

type changeVisibilityRequest struct {
	Visibility model.Visibility `json:"visibility" binding:"required"`
}

func (h *PhotoHandler) ChangeVisibility(c *gin.Context) {
	photoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	var req changeVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数错误"})
		return
	}

	photo, err := h.photoService.ChangeVisibility(photoID, req.Visibility, uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "修改可见性失败")
		return
	}

	c.JSON(http.StatusOK, photo)
}

// ListMine 列出当前用户自己的照片。
func (h *PhotoHandler) ListMine(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	photos, err := h.photoService.ListByOwner(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取照片列表失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"list": photos})
}

// ListAccessible 列出当前用户（或匿名访客）可见的全部照片。
func (h *PhotoHandler) ListAccessible(c *gin.Context) {
	photos, err := h.photoService.ListAccessible(optionalUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取照片列表失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"list": photos})
}

// EffectivePermission 返回当前用户在照片上的有效权限。
func (h *PhotoHandler) EffectivePermission(c *gin.Context) {
	photoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	permission, hasAccess := h.photoService.EffectivePermission(photoID, optionalUserID(c))
	if !hasAccess {
		c.JSON(http.StatusOK, gin.H{"permission": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"permission": permission})
}

func (h *PhotoHandler) Delete(c *gin.Context) {
	photoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.photoService.DeletePhoto(photoID, uid); err != nil {
		httpx.WriteServiceError(c, err, "删除照片失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "删除成功"})
}
