package service

import (
	"errors"
	"time"

	"fotoshare-server/internal/common"
	"fotoshare-server/internal/config"
	"fotoshare-server/internal/model"
	"fotoshare-server/internal/repository"
	"fotoshare-server/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService 登录认证，签发 JWT。
type AuthService struct {
	users repository.UserStore
}

func NewAuthService(users repository.UserStore) *AuthService {
	return &AuthService{users: users}
}

// Login 校验用户名与密码，成功时返回登录令牌。
// 用户不存在与密码错误返回同一错误，避免枚举用户名。
func (s *AuthService) Login(username, password string) (string, *model.User, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, common.NewUnauthorizedError("用户名或密码错误")
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, common.NewUnauthorizedError("用户名或密码错误")
	}

	if !user.Enabled {
		return "", nil, common.NewForbiddenError("账号已被停用")
	}

	hours := config.Get().JWT.ExpirationHours
	if hours <= 0 {
		hours = 24
	}
	token, err := utils.GenerateLoginToken(user.ID, user.Username, user.Role == model.RoleAdmin, time.Duration(hours)*time.Hour)
	if err != nil {
		return "", nil, common.NewInternalError("签发登录令牌失败")
	}
	return token, user, nil
}
