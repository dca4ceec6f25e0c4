package services

import (
	"context"
	"time"

	"chatkeep/dto"
	"chatkeep/errors"
	"chatkeep/models"
	"chatkeep/repository"
	"chatkeep/services/logger"
	"chatkeep/utils"
	"chatkeep/validator"

	"github.com/goccy/go-json"
)

// ChatServiceInterface là mặt cắt cho controller (mock được trong test)
type ChatServiceInterface interface {
	AppendChat(ctx context.Context, req *dto.UpdateChatRequest) (bool, *models.ChatRecord, error)
	GetUserChatHistory(ctx context.Context, email string) ([]models.ChatRecord, error)
	GetChatList(ctx context.Context, id uint) ([]models.ChatMessage, error)
}

type ChatService struct {
	repo   repository.ChatRepository
	logger logger.Logger
	now    func() time.Time
}

type ChatServiceOptions struct {
	Repo   repository.ChatRepository
	Logger logger.Logger
	Now    func() time.Time
}

func NewChatService(opts ChatServiceOptions) *ChatService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &ChatService{
		repo:   opts.Repo,
		logger: opts.Logger,
		now:    now,
	}
}

// AppendChat gom một đợt message + token count vào record của
// (email, ngày). Chưa có record thì tạo, có rồi thì cộng dồn token và
// nối message vào cuối; dữ liệu cũ không bao giờ bị ghi đè.
func (s *ChatService) AppendChat(ctx context.Context, req *dto.UpdateChatRequest) (bool, *models.ChatRecord, error) {
	if err := validator.ValidateUpdateChat(req); err != nil {
		return false, nil, err
	}

	chatDate, err := utils.DayStart(req.ChatDate)
	if err != nil {
		return false, nil, err
	}

	messages := make([]models.ChatMessage, 0, len(req.ChatList))
	for _, m := range req.ChatList {
		msgDate := s.now().UTC()
		if m.Date != nil {
			msgDate = m.Date.UTC()
		}
		messages = append(messages, models.ChatMessage{
			Sender:  m.Sender,
			Date:    msgDate,
			Message: m.Message,
		})
	}

	listJSON, err := json.Marshal(messages)
	if err != nil {
		return false, nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "không serialize được chat_list", err)
	}

	// Probe chỉ để quyết định status code; bản thân merge là một
	// statement atomic nên không có lost update
	exists, err := s.repo.Exists(ctx, req.Email, chatDate)
	if err != nil {
		return false, nil, err
	}

	record := &models.ChatRecord{
		Email:       req.Email,
		ChatDate:    chatDate,
		ChatList:    listJSON,
		InputToken:  *req.InputToken,
		OutputToken: *req.OutputToken,
	}
	if err := s.repo.Accumulate(ctx, record); err != nil {
		return false, nil, err
	}

	stored, err := s.repo.GetByEmailAndDate(ctx, req.Email, chatDate)
	if err != nil {
		return false, nil, err
	}

	s.logger.Info("Đã gom chat cho %s ngày %s (+%d/+%d token, %d message)",
		req.Email, req.ChatDate, *req.InputToken, *req.OutputToken, len(messages))
	return !exists, stored, nil
}

// GetUserChatHistory trả về toàn bộ record của một user, mới nhất trước
func (s *ChatService) GetUserChatHistory(ctx context.Context, email string) ([]models.ChatRecord, error) {
	if err := validator.ValidateEmail(email); err != nil {
		return nil, err
	}
	records, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.NewAppError(errors.ErrCodeRecordNotFound, "không có lịch sử chat cho "+email, nil)
	}
	return records, nil
}

// GetChatList trả về danh sách message của một record theo id
func (s *ChatService) GetChatList(ctx context.Context, id uint) ([]models.ChatMessage, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var messages []models.ChatMessage
	if len(record.ChatList) > 0 {
		if err := json.Unmarshal(record.ChatList, &messages); err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "chat_list bị hỏng", err)
		}
	}
	if messages == nil {
		messages = []models.ChatMessage{}
	}
	return messages, nil
}
