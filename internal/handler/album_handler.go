package handler

import (
	"net/http"

	"fotoshare-server/internal/common/httpx"

	"github.com/gin-gonic/gin"
)

type createAlbumRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *AlbumHandler) Create(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数错误"})
		return
	}

	album, err := h.albumService.CreateAlbum(req.Name, req.Description, uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "创建相册失败")
		return
	}

	c.JSON(http.StatusOK, album)
}

func (h *AlbumHandler) Get(c *gin.Context) {
	albumID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	album, err := h.albumService.GetAlbum(albumID, uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取相册失败")
		return
	}

	c.JSON(http.StatusOK, album)
}

type updateAlbumRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *AlbumHandler) Update(c *gin.Context) {
	albumID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	var req updateAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数错误"})
		return
	}

	album, err := h.albumService.UpdateAlbum(albumID, req.Name, req.Description, uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新相册失败")
		return
	}

	c.JSON(http.StatusOK, album)
}

func (h *AlbumHandler) Delete(c *gin.Context) {
	albumID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.albumService.DeleteAlbum(albumID, uid); err != nil {
		httpx.WriteServiceError(c, err, "删除相册失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "删除成功"})
}

func (h *AlbumHandler) ListMine(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	albums, err := h.albumService.ListByOwner(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取相册列表失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"list": albums})
}

func (h *AlbumHandler) AddPhoto(c *gin.Context) {
	albumID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	photoID, ok := parseIDParam(c, "photo_id")
	if !ok {
		return
	}
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.albumService.AddPhoto(albumID, photoID, uid); err != nil {
		httpx.WriteServiceError(c, err, "添加照片失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "已添加到相册"})
}

func (h *AlbumHandler) RemovePhoto(c *gin.Context) {
	albumID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	photoID, ok := parseIDParam(c, "photo_id")
	if !ok {
		return
	}
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.albumService.RemovePhoto(albumID, photoID, uid); err != nil {
		httpx.WriteServiceError(c, err, "移除照片失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "已从相册移除"})
}

func (h *AlbumHandler) ListPhotos(c *gin.Context) {
	albumID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	photos, err := h.albumService.GetPhotos(albumID, uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取相册照片失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"list": photos})
}
