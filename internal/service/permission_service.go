package service

import (
	"fotoshare-server/internal/model"
	"fotoshare-server/internal/repository"
)

// PermissionService 照片访问权限解析。
// 三级可见性来源：所有者（隐式 ADMIN，不落库）、公开照片、显式分享。
// 所有判定方法不返回错误：照片不存在或查询失败一律视为"无权限"，
// 避免通过错误通道泄露照片是否存在。
type PermissionService struct {
	photos repository.PhotoStore
	shares repository.ShareStore
}

func NewPermissionService(photos repository.PhotoStore, shares repository.ShareStore) *PermissionService {
	return &PermissionService{photos: photos, shares: shares}
}

// CanView 判断用户是否可以查看照片。
// 允许条件：照片公开；用户是所有者；照片已分享给该用户（任意等级，READ 为下限）。
// userID 为 nil 表示匿名访问。
func (s *PermissionService) CanView(photoID uint, userID *uint) bool {
	photo, err := s.photos.FindByID(photoID)
	if err != nil {
		return false
	}
	if photo.Visibility == model.VisibilityPublic {
		return true
	}
	if userID == nil {
		return false
	}
	if photo.OwnerID == *userID {
		return true
	}
	return s.HasPermission(photoID, *userID, model.PermissionRead)
}

// CanComment 判断用户是否可以评论照片。
// 允许条件：用户是所有者，或分享权限满足 COMMENT。
func (s *PermissionService) CanComment(photoID uint, userID *uint) bool {
	if userID == nil {
		return false
	}
	photo, err := s.photos.FindByID(photoID)
	if err != nil {
		return false
	}
	if photo.OwnerID == *userID {
		return true
	}
	return s.HasPermission(photoID, *userID, model.PermissionComment)
}

// CanAdmin 判断用户是否可以管理照片（修改、分享）。
// 允许条件：用户是所有者，或分享权限为 ADMIN。
func (s *PermissionService) CanAdmin(photoID uint, userID *uint) bool {
	if userID == nil {
		return false
	}
	photo, err := s.photos.FindByID(photoID)
	if err != nil {
		return false
	}
	if photo.OwnerID == *userID {
		return true
	}
	return s.HasPermission(photoID, *userID, model.PermissionAdmin)
}

// IsOwner 判断用户是否为照片所有者。
func (s *PermissionService) IsOwner(photoID uint, userID *uint) bool {
	if userID == nil {
		return false
	}
	photo, err := s.photos.FindByID(photoID)
	if err != nil {
		return false
	}
	return photo.OwnerID == *userID
}

// HasPermission 判断用户的分享权限是否满足要求的等级（READ < COMMENT < ADMIN）。
func (s *PermissionService) HasPermission(photoID, userID uint, required model.Permission) bool {
	share, err := s.shares.FindByPhotoAndUser(photoID, userID)
	if err != nil {
		return false
	}
	return share.Permission.Satisfies(required)
}

// EffectivePermission 计算用户在照片上的单一有效权限。
// 所有者恒为 ADMIN；公开照片上无分享的访问者（含匿名）得到合成 READ；
// 私有照片上无分享则无权限，返回 (zero, false)。
func (s *PermissionService) EffectivePermission(photoID uint, userID *uint) (model.Permission, bool) {
	photo, err := s.photos.FindByID(photoID)
	if err != nil {
		return "", false
	}

	if userID == nil {
		if photo.Visibility == model.VisibilityPublic {
			return model.PermissionRead, true
		}
		return "", false
	}

	if photo.OwnerID == *userID {
		return model.PermissionAdmin, true
	}

	share, shareErr := s.shares.FindByPhotoAndUser(photoID, *userID)
	if photo.Visibility == model.VisibilityPublic {
		if shareErr == nil {
			return share.Permission, true
		}
		return model.PermissionRead, true
	}

	if shareErr == nil {
		return share.Permission, true
	}
	return "", false
}
