package service

import (
	"Civix/config"
	"Civix/dao"
	"Civix/models"
	"Civix/pkg/encrypt"
	"Civix/pkg/jwt"
	"Civix/pkg/response"
	"Civix/types"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, opt *types.RegisterRequest) (*models.Users, error)
	Login(ctx context.Context, email string, password string) (*types.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*types.TokenPair, error)
}

type AuthService struct {
	UsersRepo *dao.Users
	Config    *config.Config
}

// Register 注册用户，默认角色为 citizen
func (s *AuthService) Register(ctx context.Context, opt *types.RegisterRequest) (*models.Users, error) {
	if s.UsersRepo.IsEmailExist(ctx, opt.Email) {
		return nil, response.Conflict("邮箱已注册")
	}

	hash, err := encrypt.HashPassword(opt.Password)
	if err != nil {
		return nil, err
	}

	user := &models.Users{
		Name:      opt.Name,
		Email:     opt.Email,
		Password:  hash,
		Role:      models.RoleCitizen,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.UsersRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login 登录处理
func (s *AuthService) Login(ctx context.Context, email string, password string) (*types.LoginResponse, error) {
	user, err := s.UsersRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("登录账号不存在! ")
		}
		return nil, err
	}

	if !encrypt.VerifyPassword(user.Password, password) {
		return nil, errors.New("登录密码填写错误! ")
	}

	pair, err := s.issueTokens(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &types.LoginResponse{
		UserID:    user.ID,
		Name:      user.Name,
		Role:      user.Role,
		TokenPair: *pair,
	}, nil
}

// Refresh 用刷新令牌换取新令牌对
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*types.TokenPair, error) {
	claims, err := jwt.ParseToken([]byte(s.Config.Jwt.Secret), "refresh", refreshToken)
	if err != nil {
		return nil, response.NewError(401, "刷新令牌无效")
	}
	return s.issueTokens(claims.UserID, claims.Role)
}

func (s *AuthService) issueTokens(userID int64, role string) (*types.TokenPair, error) {
	secret := []byte(s.Config.Jwt.Secret)
	accessExpire := time.Duration(s.Config.Jwt.AccessExpire) * time.Second
	refreshExpire := time.Duration(s.Config.Jwt.RefreshExpire) * time.Second

	access, err := jwt.GenerateToken(secret, userID, role, "access", accessExpire)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.GenerateToken(secret, userID, role, "refresh", refreshExpire)
	if err != nil {
		return nil, err
	}

	return &types.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    s.Config.Jwt.AccessExpire,
	}, nil
}
