package repository

import (
	"context"
	goerrors "errors"

	"chatkeep/errors"
	"chatkeep/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository là cổng truy cập collection user_profiles
type UserRepository interface {
	UpsertProfile(ctx context.Context, profile *models.UserProfile) (bool, error)
	GetByEmail(ctx context.Context, email string) (*models.UserProfile, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// UpsertProfile đăng ký hoặc cập nhật profile theo email. Đăng ký lại
// cùng email chỉ cập nhật tên/license, không tạo bản ghi mới.
// Trả về true khi profile được tạo mới.
func (r *userRepository) UpsertProfile(ctx context.Context, profile *models.UserProfile) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.UserProfile{}).
		Where("email = ?", profile.Email).Count(&count).Error; err != nil {
		return false, errors.FromDBError("lỗi kiểm tra profile tồn tại", err)
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"user_name":      profile.UserName,
			"license_number": profile.LicenseNumber,
			"updated_at":     gorm.Expr("NOW()"),
		}),
	}).Create(profile).Error
	if err != nil {
		return false, errors.FromDBError("lỗi upsert profile", err)
	}

	return count == 0, nil
}

// GetByEmail trả về (nil, nil) khi chưa có profile: không có license
// trong hồ sơ là kết quả hợp lệ, không phải lỗi.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&profile).Error
	if err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.FromDBError("lỗi truy vấn profile", err)
	}
	return &profile, nil
}
