package repository

import (
	"context"
	goerrors "errors"
	"time"

	"chatkeep/errors"
	"chatkeep/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ChatFilter gom các điều kiện lọc cho báo cáo chat.
// Start/End là instant UTC đã được normalize từ tầng trên.
type ChatFilter struct {
	Start         time.Time
	End           time.Time
	Email         string
	ExcludeEmails []string
}

// ChatAggregate là tổng hợp trên toàn bộ tập đã lọc
type ChatAggregate struct {
	TotalCount        int64 `gorm:"column:total_count"`
	TotalInputTokens  int64 `gorm:"column:total_input_tokens"`
	TotalOutputTokens int64 `gorm:"column:total_output_tokens"`
}

// ChatRepository là cổng truy cập collection chat_records
type ChatRepository interface {
	Exists(ctx context.Context, email string, chatDate time.Time) (bool, error)
	Accumulate(ctx context.Context, record *models.ChatRecord) error
	GetByEmailAndDate(ctx context.Context, email string, chatDate time.Time) (*models.ChatRecord, error)
	GetByID(ctx context.Context, id uint) (*models.ChatRecord, error)
	FindByEmail(ctx context.Context, email string) ([]models.ChatRecord, error)
	FindPage(ctx context.Context, filter ChatFilter, offset, limit int) ([]models.ChatRecordSummary, error)
	Aggregate(ctx context.Context, filter ChatFilter) (*ChatAggregate, error)
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) Exists(ctx context.Context, email string, chatDate time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ChatRecord{}).
		Where("email = ? AND chat_date = ?", email, chatDate).
		Count(&count).Error
	if err != nil {
		return false, errors.FromDBError("lỗi kiểm tra chat record tồn tại", err)
	}
	return count > 0, nil
}

// Accumulate vừa tạo vừa merge trong đúng một câu lệnh: insert khi chưa
// có record cho (email, chat_date), ngược lại cộng dồn token và nối
// message mới vào cuối chat_list. Hai request cùng ghi một ngày không
// làm mất dữ liệu của nhau vì toàn bộ merge nằm trong một statement.
func (r *chatRepository) Accumulate(ctx context.Context, record *models.ChatRecord) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}, {Name: "chat_date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"input_token":  gorm.Expr("chat_records.input_token + excluded.input_token"),
			"output_token": gorm.Expr("chat_records.output_token + excluded.output_token"),
			"chat_list":    gorm.Expr("chat_records.chat_list || excluded.chat_list"),
			"updated_at":   gorm.Expr("NOW()"),
		}),
	}).Create(record).Error
	if err != nil {
		return errors.FromDBError("lỗi ghi chat record", err)
	}
	return nil
}

func (r *chatRepository) GetByEmailAndDate(ctx context.Context, email string, chatDate time.Time) (*models.ChatRecord, error) {
	var record models.ChatRecord
	err := r.db.WithContext(ctx).
		Where("email = ? AND chat_date = ?", email, chatDate).
		First(&record).Error
	if err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeRecordNotFound, "không tìm thấy chat record", err)
		}
		return nil, errors.FromDBError("lỗi truy vấn chat record", err)
	}
	return &record, nil
}

func (r *chatRepository) GetByID(ctx context.Context, id uint) (*models.ChatRecord, error) {
	var record models.ChatRecord
	err := r.db.WithContext(ctx).First(&record, id).Error
	if err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeRecordNotFound, "không tìm thấy chat record", err)
		}
		return nil, errors.FromDBError("lỗi truy vấn chat record", err)
	}
	return &record, nil
}

// FindByEmail trả về toàn bộ record của một user, mới nhất trước
func (r *chatRepository) FindByEmail(ctx context.Context, email string) ([]models.ChatRecord, error) {
	var records []models.ChatRecord
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("chat_date DESC").
		Find(&records).Error
	if err != nil {
		return nil, errors.FromDBError("lỗi truy vấn lịch sử chat", err)
	}
	return records, nil
}

func (r *chatRepository) applyFilter(ctx context.Context, filter ChatFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.ChatRecord{}).
		Where("chat_date BETWEEN ? AND ?", filter.Start, filter.End)
	if filter.Email != "" {
		query = query.Where("email = ?", filter.Email)
	}
	if len(filter.ExcludeEmails) > 0 {
		query = query.Where("email NOT IN (?)", filter.ExcludeEmails)
	}
	return query
}

// FindPage lấy một trang summary (không kèm chat_list) sắp theo
// chat_date giảm dần.
func (r *chatRepository) FindPage(ctx context.Context, filter ChatFilter, offset, limit int) ([]models.ChatRecordSummary, error) {
	var summaries []models.ChatRecordSummary
	err := r.applyFilter(ctx, filter).
		Select("id, email, chat_date, input_token, output_token").
		Order("chat_date DESC").
		Offset(offset).
		Limit(limit).
		Scan(&summaries).Error
	if err != nil {
		return nil, errors.FromDBError("lỗi truy vấn trang báo cáo", err)
	}
	return summaries, nil
}

// Aggregate đếm và cộng token trên toàn bộ tập đã lọc, độc lập với
// trang đang hiển thị.
func (r *chatRepository) Aggregate(ctx context.Context, filter ChatFilter) (*ChatAggregate, error) {
	var agg ChatAggregate
	err := r.applyFilter(ctx, filter).
		Select("COUNT(*) AS total_count, COALESCE(SUM(input_token), 0) AS total_input_tokens, COALESCE(SUM(output_token), 0) AS total_output_tokens").
		Scan(&agg).Error
	if err != nil {
		return nil, errors.FromDBError("lỗi tổng hợp báo cáo", err)
	}
	return &agg, nil
}
