package service

import (
	"time"

	"fotoshare-server/internal/common"
	"fotoshare-server/internal/model"
	"fotoshare-server/internal/repository"
)

// ShareService 照片分享授权管理。
// 授权是 upsert 语义：同一 (photo, user) 至多一条记录，重复授权覆盖权限等级。
type ShareService struct {
	shares repository.ShareStore
	users  repository.UserStore
	photos repository.PhotoStore
	perm   *PermissionService
}

func NewShareService(shares repository.ShareStore, users repository.UserStore, photos repository.PhotoStore, perm *PermissionService) *ShareService {
	return &ShareService{shares: shares, users: users, photos: photos, perm: perm}
}

// Grant 将照片分享给指定用户。
// 仅所有者或持有 ADMIN 分享的用户可以授权；存量分享仅覆盖权限等级。
func (s *ShareService) Grant(photoID, granteeID uint, permission model.Permission, requesterID uint) (*model.Share, error) {
	if !permission.Valid() {
		return nil, common.NewValidationError("无效的权限等级")
	}
	if !s.perm.CanAdmin(photoID, &requesterID) {
		return nil, common.NewForbiddenError("您没有分享这张照片的权限")
	}
	exists, err := s.photos.ExistsByID(photoID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.NewNotFoundError("照片不存在")
	}
	granteeExists, err := s.users.ExistsByID(granteeID)
	if err != nil {
		return nil, err
	}
	if !granteeExists {
		return nil, common.NewNotFoundError("目标用户不存在")
	}

	share := &model.Share{
		PhotoID:    photoID,
		UserID:     granteeID,
		Permission: permission,
		CreatedAt:  time.Now(),
	}
	if err := s.shares.Save(share); err != nil {
		return nil, err
	}
	// upsert 命中已有记录时返回当前行，保持 ID 与创建时间稳定
	return s.shares.FindByPhotoAndUser(photoID, granteeID)
}

// GrantByUsername 按用户名分享照片。
func (s *ShareService) GrantByUsername(photoID uint, username string, permission model.Permission, requesterID uint) (*model.Share, error) {
	grantee, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, common.NewNotFoundError("用户 '" + username + "' 不存在")
	}
	return s.Grant(photoID, grantee.ID, permission, requesterID)
}

// Revoke 撤销分享。授权检查与 Grant 一致；分享不存在时为幂等成功。
func (s *ShareService) Revoke(photoID, granteeID, requesterID uint) error {
	if !s.perm.CanAdmin(photoID, &requesterID) {
		return common.NewForbiddenError("您没有撤销这个分享的权限")
	}
	return s.shares.DeleteByPhotoAndUser(photoID, granteeID)
}

// ListForPhoto 列出照片的全部分享，要求 ADMIN 能力。
func (s *ShareService) ListForPhoto(photoID, requesterID uint) ([]model.Share, error) {
	if !s.perm.CanAdmin(photoID, &requesterID) {
		return nil, common.NewForbiddenError("您没有查看这张照片分享列表的权限")
	}
	return s.shares.FindByPhoto(photoID)
}

// ListForUser 列出分享给某用户的全部记录。用户始终可以查看自己名下的分享。
func (s *ShareService) ListForUser(userID uint) ([]model.Share, error) {
	return s.shares.FindByUser(userID)
}
