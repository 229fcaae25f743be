package service

import (
	"errors"
	"strings"
	"time"

	"fotoshare-server/internal/common"
	"fotoshare-server/internal/model"
	"fotoshare-server/internal/repository"

	"gorm.io/gorm"
)

const maxCommentLength = 2000

// CommentaryService 照片评论管理，操作前检查权限。
type CommentaryService struct {
	comments repository.CommentaryStore
	photos   repository.PhotoStore
	perm     *PermissionService
}

func NewCommentaryService(comments repository.CommentaryStore, photos repository.PhotoStore, perm *PermissionService) *CommentaryService {
	return &CommentaryService{comments: comments, photos: photos, perm: perm}
}

func validateCommentText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", common.NewValidationError("评论不能为空")
	}
	if len([]rune(text)) > maxCommentLength {
		return "", common.NewValidationError("评论不能超过 2000 字")
	}
	return trimmed, nil
}

// AddComment 在照片下添加评论，要求 COMMENT 能力。
func (s *CommentaryService) AddComment(photoID uint, text string, authorID uint) (*model.Commentary, error) {
	exists, err := s.photos.ExistsByID(photoID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.NewNotFoundError("照片不存在")
	}
	if !s.perm.CanComment(photoID, &authorID) {
		return nil, common.NewForbiddenError("您没有评论这张照片的权限")
	}

	trimmed, err := validateCommentText(text)
	if err != nil {
		return nil, err
	}

	comment := &model.Commentary{
		Text:      trimmed,
		PhotoID:   photoID,
		AuthorID:  authorID,
		CreatedAt: time.Now(),
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetCommentsForPhoto 列出照片的评论，要求照片对用户可见。
func (s *CommentaryService) GetCommentsForPhoto(photoID uint, userID *uint) ([]model.Commentary, error) {
	if !s.perm.CanView(photoID, userID) {
		return nil, common.NewNotFoundError("照片不存在")
	}
	return s.comments.FindByPhoto(photoID)
}

// UpdateComment 修改评论，仅作者本人可以修改。
func (s *CommentaryService) UpdateComment(commentID uint, newText string, userID uint) (*model.Commentary, error) {
	comment, err := s.comments.FindByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("评论不存在")
		}
		return nil, err
	}
	if comment.AuthorID != userID {
		return nil, common.NewForbiddenError("您没有修改这条评论的权限")
	}

	trimmed, err := validateCommentText(newText)
	if err != nil {
		return nil, err
	}

	comment.Text = trimmed
	if err := s.comments.Save(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment 删除评论。评论作者或照片管理者可以删除。
func (s *CommentaryService) DeleteComment(commentID, userID uint) error {
	comment, err := s.comments.FindByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("评论不存在")
		}
		return err
	}

	isAuthor := comment.AuthorID == userID
	canAdminPhoto := s.perm.CanAdmin(comment.PhotoID, &userID)
	if !isAuthor && !canAdminPhoto {
		return common.NewForbiddenError("您没有删除这条评论的权限")
	}

	return s.comments.Delete(comment)
}

// CountComments 统计照片的评论数量。
func (s *CommentaryService) CountComments(photoID uint) (int64, error) {
	return s.comments.CountByPhoto(photoID)
}
