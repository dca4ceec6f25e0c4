package services

import (
	"context"
	"sort"
	"time"

	"chatkeep/errors"
	"chatkeep/models"
	"chatkeep/repository"

	"github.com/goccy/go-json"
)

// memoryChatRepo là store thay thế trong test, mô phỏng đúng semantics
// merge của câu upsert thật: cộng dồn token và nối chat_list theo thứ tự.
type memoryChatRepo struct {
	nextID  uint
	records []*models.ChatRecord
}

func newMemoryChatRepo() *memoryChatRepo {
	return &memoryChatRepo{nextID: 1}
}

func (r *memoryChatRepo) find(email string, chatDate time.Time) *models.ChatRecord {
	for _, rec := range r.records {
		if rec.Email == email && rec.ChatDate.Equal(chatDate) {
			return rec
		}
	}
	return nil
}

func (r *memoryChatRepo) Exists(_ context.Context, email string, chatDate time.Time) (bool, error) {
	return r.find(email, chatDate) != nil, nil
}

func (r *memoryChatRepo) Accumulate(_ context.Context, record *models.ChatRecord) error {
	existing := r.find(record.Email, record.ChatDate)
	if existing == nil {
		stored := *record
		stored.ID = r.nextID
		r.nextID++
		r.records = append(r.records, &stored)
		return nil
	}

	existing.InputToken += record.InputToken
	existing.OutputToken += record.OutputToken

	var oldList, newList []models.ChatMessage
	if err := json.Unmarshal(existing.ChatList, &oldList); err != nil {
		return err
	}
	if err := json.Unmarshal(record.ChatList, &newList); err != nil {
		return err
	}
	merged, err := json.Marshal(append(oldList, newList...))
	if err != nil {
		return err
	}
	existing.ChatList = merged
	return nil
}

func (r *memoryChatRepo) GetByEmailAndDate(_ context.Context, email string, chatDate time.Time) (*models.ChatRecord, error) {
	if rec := r.find(email, chatDate); rec != nil {
		copied := *rec
		return &copied, nil
	}
	return nil, errors.NewAppError(errors.ErrCodeRecordNotFound, "không tìm thấy chat record", nil)
}

func (r *memoryChatRepo) GetByID(_ context.Context, id uint) (*models.ChatRecord, error) {
	for _, rec := range r.records {
		if rec.ID == id {
			copied := *rec
			return &copied, nil
		}
	}
	return nil, errors.NewAppError(errors.ErrCodeRecordNotFound, "không tìm thấy chat record", nil)
}

func (r *memoryChatRepo) FindByEmail(_ context.Context, email string) ([]models.ChatRecord, error) {
	var out []models.ChatRecord
	for _, rec := range r.records {
		if rec.Email == email {
			out = append(out, *rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ChatDate.After(out[j].ChatDate) })
	return out, nil
}

func (r *memoryChatRepo) matches(rec *models.ChatRecord, filter repository.ChatFilter) bool {
	if rec.ChatDate.Before(filter.Start) || rec.ChatDate.After(filter.End) {
		return false
	}
	if filter.Email != "" && rec.Email != filter.Email {
		return false
	}
	for _, excluded := range filter.ExcludeEmails {
		if rec.Email == excluded {
			return false
		}
	}
	return true
}

func (r *memoryChatRepo) filtered(filter repository.ChatFilter) []*models.ChatRecord {
	var out []*models.ChatRecord
	for _, rec := range r.records {
		if r.matches(rec, filter) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ChatDate.Equal(out[j].ChatDate) {
			return out[i].ChatDate.After(out[j].ChatDate)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r *memoryChatRepo) FindPage(_ context.Context, filter repository.ChatFilter, offset, limit int) ([]models.ChatRecordSummary, error) {
	matched := r.filtered(filter)

	summaries := make([]models.ChatRecordSummary, 0)
	for i := offset; i < len(matched) && i < offset+limit; i++ {
		rec := matched[i]
		summaries = append(summaries, models.ChatRecordSummary{
			ID:          rec.ID,
			Email:       rec.Email,
			ChatDate:    rec.ChatDate,
			InputToken:  rec.InputToken,
			OutputToken: rec.OutputToken,
		})
	}
	return summaries, nil
}

func (r *memoryChatRepo) Aggregate(_ context.Context, filter repository.ChatFilter) (*repository.ChatAggregate, error) {
	agg := &repository.ChatAggregate{}
	for _, rec := range r.filtered(filter) {
		agg.TotalCount++
		agg.TotalInputTokens += rec.InputToken
		agg.TotalOutputTokens += rec.OutputToken
	}
	return agg, nil
}
