package dto

import "time"

// IncomingChatMessage là một message trong body cập nhật chat.
// Date để pointer: thiếu thì service tự gán thời điểm hiện tại.
type IncomingChatMessage struct {
	Sender  string     `json:"sender"`
	Date    *time.Time `json:"date"`
	Message string     `json:"message"`
}

// UpdateChatRequest là body của PUT /api/update-chat. Token count để
// pointer để phân biệt "thiếu field" với "bằng 0".
type UpdateChatRequest struct {
	Email       string                `json:"email" binding:"required"`
	ChatDate    string                `json:"chat_date" binding:"required"`
	ChatList    []IncomingChatMessage `json:"chat_list"`
	InputToken  *int64                `json:"input_token" binding:"required"`
	OutputToken *int64                `json:"output_token" binding:"required"`
}

// ChatHistorySummary là một dòng trong báo cáo phân trang, không kèm
// nội dung chat. ChatDate đã được đổi về ngày theo timezone chuẩn.
type ChatHistorySummary struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	ChatDate    string `json:"chat_date"`
	InputToken  int64  `json:"input_token"`
	OutputToken int64  `json:"output_token"`
}

// ChatHistoriesResponse là kết quả của GET /api/get-chat-histories.
// Các total* tính trên toàn bộ tập đã lọc, không phải trên trang hiện tại.
type ChatHistoriesResponse struct {
	Data              []ChatHistorySummary `json:"data"`
	CurrentPage       int                  `json:"currentPage"`
	TotalPages        int                  `json:"totalPages"`
	TotalCount        int64                `json:"totalCount"`
	TotalInputTokens  int64                `json:"totalInputTokens"`
	TotalOutputTokens int64                `json:"totalOutputTokens"`
	StartDate         string               `json:"startDate"`
	EndDate           string               `json:"endDate"`
}

// ChatHistoriesQuery gom các filter đã parse từ query string
type ChatHistoriesQuery struct {
	Page          int
	PageSize      int
	Email         string
	StartDate     string
	EndDate       string
	ExcludeEmails []string
}
