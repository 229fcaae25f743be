package handler

import (
	"net/http"

	"fotoshare-server/internal/common/httpx"

	"github.com/gin-gonic/gin"
)

type commentRequest struct {
	Text string `json:"text" binding:"required"`
}

func (h *CommentaryHandler) Add(c *gin.Context) {
	photoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数错误"})
		return
	}

	comment, err := h.commentaryService.AddComment(photoID, req.Text, uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "评论失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":     "评论成功",
		"comment": comment,
	})
}

func (h *CommentaryHandler) ListForPhoto(c *gin.Context) {
	photoID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	comments, err := h.commentaryService.GetCommentsForPhoto(photoID, optionalUserID(c))
	if err != nil {
		httpx.WriteServiceError(c, err, "获取评论失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"list": comments})
}

func (h *CommentaryHandler) Update(c *gin.Context) {
	commentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数错误"})
		return
	}

	comment, err := h.commentaryService.UpdateComment(commentID, req.Text, uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "修改评论失败")
		return
	}

	c.JSON(http.StatusOK, comment)
}

func (h *CommentaryHandler) Delete(c *gin.Context) {
	commentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.commentaryService.DeleteComment(commentID, uid); err != nil {
		httpx.WriteServiceError(c, err, "删除评论失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "删除成功"})
}
