package models

import (
	"encoding/json"
	"time"
)

// ChatMessage là một phần tử trong chat_list (lưu dạng jsonb)
type ChatMessage struct {
	Sender  string    `json:"sender"`
	Date    time.Time `json:"date"`
	Message string    `json:"message"`
}

// ChatRecord gom toàn bộ chat của một user trong một ngày (theo
// timezone chuẩn). Mỗi cặp (email, chat_date) chỉ có đúng một record.
type ChatRecord struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Email       string          `gorm:"not null;uniqueIndex:idx_chat_records_email_date" json:"email"`
	ChatDate    time.Time       `gorm:"not null;uniqueIndex:idx_chat_records_email_date" json:"chat_date"`
	ChatList    json.RawMessage `gorm:"type:jsonb;default:'[]'" json:"chat_list"`
	InputToken  int64           `gorm:"default:0" json:"input_token"`
	OutputToken int64           `gorm:"default:0" json:"output_token"`
}

// ChatRecordSummary là projection cho màn hình báo cáo, không kèm
// nội dung chat.
type ChatRecordSummary struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email"`
	ChatDate    time.Time `json:"-"`
	InputToken  int64     `json:"input_token"`
	OutputToken int64     `json:"output_token"`
}
