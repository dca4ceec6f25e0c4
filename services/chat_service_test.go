package services

import (
	"context"
	"testing"
	"time"

	"chatkeep/dto"
	"chatkeep/errors"
	"chatkeep/models"
	"chatkeep/repository"
	"chatkeep/services/logger"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockChatRepository là mock cho repository.ChatRepository
type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) Exists(ctx context.Context, email string, chatDate time.Time) (bool, error) {
	args := m.Called(ctx, email, chatDate)
	return args.Bool(0), args.Error(1)
}

func (m *MockChatRepository) Accumulate(ctx context.Context, record *models.ChatRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockChatRepository) GetByEmailAndDate(ctx context.Context, email string, chatDate time.Time) (*models.ChatRecord, error) {
	args := m.Called(ctx, email, chatDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatRecord), args.Error(1)
}

func (m *MockChatRepository) GetByID(ctx context.Context, id uint) (*models.ChatRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatRecord), args.Error(1)
}

func (m *MockChatRepository) FindByEmail(ctx context.Context, email string) ([]models.ChatRecord, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatRecord), args.Error(1)
}

func (m *MockChatRepository) FindPage(ctx context.Context, filter repository.ChatFilter, offset, limit int) ([]models.ChatRecordSummary, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatRecordSummary), args.Error(1)
}

func (m *MockChatRepository) Aggregate(ctx context.Context, filter repository.ChatFilter) (*repository.ChatAggregate, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ChatAggregate), args.Error(1)
}

func int64Ptr(v int64) *int64 {
	return &v
}

func testChatService(repo repository.ChatRepository, now time.Time) *ChatService {
	return NewChatService(ChatServiceOptions{
		Repo:   repo,
		Logger: logger.NewDefaultLogger(logger.ErrorLevel),
		Now:    func() time.Time { return now },
	})
}

func TestAppendChatCreatesRecord(t *testing.T) {
	repo := newMemoryChatRepo()
	now := time.Date(2024, 3, 10, 5, 0, 0, 0, time.UTC)
	service := testChatService(repo, now)

	created, record, err := service.AppendChat(context.Background(), &dto.UpdateChatRequest{
		Email:    "user@example.com",
		ChatDate: "2024-03-10",
		ChatList: []dto.IncomingChatMessage{
			{Sender: "user", Message: "안녕하세요"},
		},
		InputToken:  int64Ptr(5),
		OutputToken: int64Ptr(3),
	})

	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "user@example.com", record.Email)
	// 2024-03-10 theo Seoul bắt đầu lúc 2024-03-09T15:00:00Z
	assert.Equal(t, time.Date(2024, 3, 9, 15, 0, 0, 0, time.UTC), record.ChatDate)
	assert.Equal(t, int64(5), record.InputToken)
	assert.Equal(t, int64(3), record.OutputToken)

	var messages []models.ChatMessage
	assert.NoError(t, json.Unmarshal(record.ChatList, &messages))
	assert.Len(t, messages, 1)
	// Message không có date thì lấy thời điểm hiện tại
	assert.Equal(t, now, messages[0].Date)
}

func TestAppendChatAccumulates(t *testing.T) {
	repo := newMemoryChatRepo()
	now := time.Date(2024, 3, 10, 5, 0, 0, 0, time.UTC)
	service := testChatService(repo, now)

	_, _, err := service.AppendChat(context.Background(), &dto.UpdateChatRequest{
		Email:       "user@example.com",
		ChatDate:    "2024-03-10",
		ChatList:    []dto.IncomingChatMessage{{Sender: "user", Message: "m1"}},
		InputToken:  int64Ptr(5),
		OutputToken: int64Ptr(3),
	})
	assert.NoError(t, err)

	created, record, err := service.AppendChat(context.Background(), &dto.UpdateChatRequest{
		Email:       "user@example.com",
		ChatDate:    "2024-03-10",
		ChatList:    []dto.IncomingChatMessage{{Sender: "bot", Message: "m2"}},
		InputToken:  int64Ptr(2),
		OutputToken: int64Ptr(1),
	})
	assert.NoError(t, err)
	assert.False(t, created)

	// Token cộng dồn, message nối đúng thứ tự, dữ liệu cũ còn nguyên
	assert.Equal(t, int64(7), record.InputToken)
	assert.Equal(t, int64(4), record.OutputToken)

	var messages []models.ChatMessage
	assert.NoError(t, json.Unmarshal(record.ChatList, &messages))
	assert.Len(t, messages, 2)
	assert.Equal(t, "m1", messages[0].Message)
	assert.Equal(t, "m2", messages[1].Message)
}

func TestAppendChatSeparateDaysSeparateRecords(t *testing.T) {
	repo := newMemoryChatRepo()
	service := testChatService(repo, time.Now())

	_, _, err := service.AppendChat(context.Background(), &dto.UpdateChatRequest{
		Email:       "user@example.com",
		ChatDate:    "2024-03-10",
		InputToken:  int64Ptr(5),
		OutputToken: int64Ptr(3),
	})
	assert.NoError(t, err)

	created, _, err := service.AppendChat(context.Background(), &dto.UpdateChatRequest{
		Email:       "user@example.com",
		ChatDate:    "2024-03-11",
		InputToken:  int64Ptr(2),
		OutputToken: int64Ptr(1),
	})
	assert.NoError(t, err)
	assert.True(t, created)

	records, err := service.GetUserChatHistory(context.Background(), "user@example.com")
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	// Mới nhất trước
	assert.True(t, records[0].ChatDate.After(records[1].ChatDate))
}

func TestAppendChatRejectsMalformedDateWithoutTouchingStore(t *testing.T) {
	mockRepo := new(MockChatRepository)
	service := testChatService(mockRepo, time.Now())

	_, _, err := service.AppendChat(context.Background(), &dto.UpdateChatRequest{
		Email:       "user@example.com",
		ChatDate:    "not-a-date",
		InputToken:  int64Ptr(5),
		OutputToken: int64Ptr(3),
	})

	assert.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	mockRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "Accumulate", mock.Anything, mock.Anything)
}

func TestAppendChatRejectsNegativeTokens(t *testing.T) {
	mockRepo := new(MockChatRepository)
	service := testChatService(mockRepo, time.Now())

	_, _, err := service.AppendChat(context.Background(), &dto.UpdateChatRequest{
		Email:       "user@example.com",
		ChatDate:    "2024-03-10",
		InputToken:  int64Ptr(-1),
		OutputToken: int64Ptr(3),
	})

	assert.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	mockRepo.AssertNotCalled(t, "Accumulate", mock.Anything, mock.Anything)
}

func TestAppendChatKeepsSuppliedMessageDate(t *testing.T) {
	repo := newMemoryChatRepo()
	now := time.Date(2024, 3, 10, 5, 0, 0, 0, time.UTC)
	service := testChatService(repo, now)

	supplied := time.Date(2024, 3, 10, 1, 2, 3, 0, time.UTC)
	_, record, err := service.AppendChat(context.Background(), &dto.UpdateChatRequest{
		Email:       "user@example.com",
		ChatDate:    "2024-03-10",
		ChatList:    []dto.IncomingChatMessage{{Sender: "user", Date: &supplied, Message: "m1"}},
		InputToken:  int64Ptr(1),
		OutputToken: int64Ptr(1),
	})

	assert.NoError(t, err)
	var messages []models.ChatMessage
	assert.NoError(t, json.Unmarshal(record.ChatList, &messages))
	assert.Equal(t, supplied, messages[0].Date)
}

func TestGetChatListByID(t *testing.T) {
	repo := newMemoryChatRepo()
	service := testChatService(repo, time.Now())

	_, record, err := service.AppendChat(context.Background(), &dto.UpdateChatRequest{
		Email:       "user@example.com",
		ChatDate:    "2024-03-10",
		ChatList:    []dto.IncomingChatMessage{{Sender: "user", Message: "m1"}},
		InputToken:  int64Ptr(1),
		OutputToken: int64Ptr(1),
	})
	assert.NoError(t, err)

	messages, err := service.GetChatList(context.Background(), record.ID)
	assert.NoError(t, err)
	assert.Len(t, messages, 1)
	assert.Equal(t, "m1", messages[0].Message)
}

func TestGetChatListUnknownID(t *testing.T) {
	repo := newMemoryChatRepo()
	service := testChatService(repo, time.Now())

	_, err := service.GetChatList(context.Background(), 9999)
	assert.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestGetUserChatHistoryEmpty(t *testing.T) {
	repo := newMemoryChatRepo()
	service := testChatService(repo, time.Now())

	_, err := service.GetUserChatHistory(context.Background(), "nobody@example.com")
	assert.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
