package services

import (
	"context"

	"chatkeep/dto"
	"chatkeep/models"
	"chatkeep/repository"
	"chatkeep/services/logger"
	"chatkeep/validator"

	"github.com/redis/go-redis/v9"
)

// UserServiceInterface là mặt cắt cho controller (mock được trong test)
type UserServiceInterface interface {
	RegisterUser(ctx context.Context, req *dto.RegisterUserRequest) (bool, *models.UserProfile, error)
	GetLicense(ctx context.Context, email string) (string, error)
	GetUserInfo(ctx context.Context, email string) (*models.UserProfile, error)
}

type UserService struct {
	repo   repository.UserRepository
	cache  *licenseCache
	logger logger.Logger
}

type UserServiceOptions struct {
	Repo   repository.UserRepository
	Redis  *redis.Client
	Logger logger.Logger
}

func NewUserService(opts UserServiceOptions) *UserService {
	return &UserService{
		repo:   opts.Repo,
		cache:  newLicenseCache(opts.Redis),
		logger: opts.Logger,
	}
}

// RegisterUser upsert profile theo email. Trả về true khi tạo mới,
// false khi chỉ cập nhật tên/license.
func (s *UserService) RegisterUser(ctx context.Context, req *dto.RegisterUserRequest) (bool, *models.UserProfile, error) {
	if err := validator.ValidateRegisterUser(req); err != nil {
		return false, nil, err
	}

	profile := &models.UserProfile{
		Email:         req.Email,
		UserName:      req.UserName,
		LicenseNumber: req.LicenseNumber,
	}

	created, err := s.repo.UpsertProfile(ctx, profile)
	if err != nil {
		return false, nil, err
	}

	// License có thể vừa đổi, bỏ cache cũ
	if err := s.cache.Drop(ctx, req.Email); err != nil {
		s.logger.Error("Lỗi xóa cache license cho %s: %v", req.Email, err)
	}

	s.logger.Info("Đã đăng ký profile cho %s (created=%v)", req.Email, created)
	return created, profile, nil
}

// GetLicense trả về license number đã lưu, "" khi chưa có profile.
// Không có profile không phải là lỗi.
func (s *UserService) GetLicense(ctx context.Context, email string) (string, error) {
	if err := validator.ValidateEmail(email); err != nil {
		return "", err
	}

	if license, ok := s.cache.Get(ctx, email); ok {
		return license, nil
	}

	profile, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if profile == nil {
		return "", nil
	}

	if err := s.cache.Set(ctx, email, profile.LicenseNumber); err != nil {
		s.logger.Error("Lỗi lưu cache license cho %s: %v", email, err)
	}

	return profile.LicenseNumber, nil
}

// GetUserInfo trả về profile, nil khi không tồn tại
func (s *UserService) GetUserInfo(ctx context.Context, email string) (*models.UserProfile, error) {
	if err := validator.ValidateEmail(email); err != nil {
		return nil, err
	}
	return s.repo.GetByEmail(ctx, email)
}
