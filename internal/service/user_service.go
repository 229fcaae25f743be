package service

import (
	"errors"
	"log"
	"time"

	"fotoshare-server/internal/common"
	"fotoshare-server/internal/model"
	"fotoshare-server/internal/repository"
	"fotoshare-server/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService 用户注册、状态管理与账号级联删除。
type UserService struct {
	db    *gorm.DB
	users repository.UserStore
	files FileStore
}

func NewUserService(db *gorm.DB, users repository.UserStore, files FileStore) *UserService {
	return &UserService{db: db, users: users, files: files}
}

// Register 注册新用户。用户名与邮箱唯一，密码需确认一致。
func (s *UserService) Register(username, email, password, confirmPassword string) (*model.User, error) {
	if ok, msg := utils.ValidateUsername(username); !ok {
		return nil, common.NewValidationError(msg)
	}
	if ok, msg := utils.ValidateEmail(email); !ok {
		return nil, common.NewValidationError(msg)
	}
	if ok, msg := utils.ValidatePassword(password); !ok {
		return nil, common.NewValidationError(msg)
	}
	if password != confirmPassword {
		return nil, common.NewValidationError("两次输入的密码不一致")
	}

	if _, err := s.users.FindByUsername(username); err == nil {
		return nil, common.NewConflictError("用户名已存在")
	}
	if _, err := s.users.FindByEmail(email); err == nil {
		return nil, common.NewConflictError("邮箱已被使用")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewInternalError("密码处理失败")
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         model.RoleUser,
		Enabled:      true,
		CreatedAt:    time.Now(),
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID 按 ID 获取用户。
func (s *UserService) GetByID(id uint) (*model.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("用户不存在")
		}
		return nil, err
	}
	return user, nil
}

// GetByUsername 按用户名获取用户。
func (s *UserService) GetByUsername(username string) (*model.User, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("用户不存在")
		}
		return nil, err
	}
	return user, nil
}

// SetEnabled 启用或停用用户。
func (s *UserService) SetEnabled(userID uint, enabled bool) error {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("用户不存在")
		}
		return err
	}
	user.Enabled = enabled
	return s.users.Save(user)
}

// DeleteUserWithCascade 删除用户及其全部数据。
// 授权由调用方负责（管理员或用户本人）。整体在一个事务内执行，顺序：
//  1. 用户的每张照片：评论 → 分享 → 相册关联 → 文件（尽力而为）→ 照片记录
//  2. 用户在他人照片下留下的评论
//  3. 用户的相册及其关联
//  4. 分享给该用户的全部授权（使其从他人的分享列表中消失）
//  5. 用户记录本身
//
// 用户不存在时返回 NotFound 且不产生任何副作用。
// 不触碰任何其他用户拥有或撰写的数据。
func (s *UserService) DeleteUserWithCascade(userID uint) error {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("用户不存在")
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		repos := repository.NewRepositories(tx)

		owned, err := repos.Photo.FindByOwner(userID)
		if err != nil {
			return err
		}
		for i := range owned {
			photo := &owned[i]
			if err := repos.Commentary.DeleteByPhoto(photo.ID); err != nil {
				return err
			}
			if err := repos.Share.DeleteByPhoto(photo.ID); err != nil {
				return err
			}
			if err := repos.AlbumPhoto.DeleteByPhoto(photo.ID); err != nil {
				return err
			}
			if !s.files.Delete(photo.StorageFilename) {
				log.Printf("⚠️ 无法删除照片文件: %s", photo.StorageFilename)
			}
			if err := repos.Photo.Delete(photo); err != nil {
				return err
			}
		}

		// 自有照片的评论已随照片删除，这里清理留在他人照片下的评论
		if err := repos.Commentary.DeleteByAuthor(userID); err != nil {
			return err
		}

		albums, err := repos.Album.FindByOwner(userID)
		if err != nil {
			return err
		}
		for _, album := range albums {
			if err := repos.AlbumPhoto.DeleteByAlbum(album.ID); err != nil {
				return err
			}
		}
		if err := repos.Album.DeleteByOwner(userID); err != nil {
			return err
		}

		// 他人照片上授予该用户的分享；该用户在自己照片上授出的分享已随照片删除，
		// 其在他人照片上创建的授权属于对方照片的访问控制，保持不动
		if err := repos.Share.DeleteByUser(userID); err != nil {
			return err
		}

		return repos.User.Delete(user)
	})
}
