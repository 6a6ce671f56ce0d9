package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/config"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/errs"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/model"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/repository"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/pkg/auth"
)

const tokenTTL = 24 * time.Hour

type AuthService struct {
	log  *zap.Logger
	repo repository.UserRepository
	cfg  config.Auth
}

func newAuthService(repo repository.UserRepository, cfg config.Auth, log *zap.Logger) *AuthService {
	return &AuthService{
		log:  log,
		repo: repo,
		cfg:  cfg,
	}
}

func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.LoginResponse{}, errs.ErrInvalidCredentials
		}
		return model.LoginResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return model.LoginResponse{}, errs.ErrInvalidCredentials
	}

	expirationTime := time.Now().Add(tokenTTL)
	claims := &auth.Claims{
		Profile: struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		}{
			Username: user.Username,
			Role:     string(user.Role),
		},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(auth.JWTKey)
	if err != nil {
		return model.LoginResponse{}, errors.Wrap(err, "sign token")
	}

	return model.LoginResponse{
		Token: tokenString,
		User:  user,
	}, nil
}

func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, errors.Wrap(err, "hash password")
	}
	return s.repo.Create(ctx, model.User{
		UserUid:      uuid.NewString(),
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         req.Role,
	})
}

func (s *AuthService) Me(ctx context.Context, username string) (model.User, error) {
	return s.repo.GetByUsername(ctx, username)
}

// EnsureAdmin seeds the back-office admin account on first start.
func (s *AuthService) EnsureAdmin(ctx context.Context) error {
	_, err := s.repo.GetByUsername(ctx, s.cfg.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash admin password")
	}
	if _, err := s.repo.Create(ctx, model.User{
		UserUid:      uuid.NewString(),
		Username:     s.cfg.AdminUsername,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}); err != nil {
		return errors.Wrap(err, "seed admin")
	}
	s.log.Info("admin account created", zap.String("username", s.cfg.AdminUsername))
	return nil
}
