package validator

import (
	"regexp"

	"chatkeep/dto"
	"chatkeep/errors"
	"chatkeep/utils"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateEmail kiểm tra email hợp lệ
func ValidateEmail(email string) error {
	if email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	return nil
}

// ValidateRegisterUser validate body đăng ký user
func ValidateRegisterUser(req *dto.RegisterUserRequest) error {
	if err := ValidateEmail(req.Email); err != nil {
		return err
	}
	if req.UserName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên người dùng không được để trống", nil)
	}
	return nil
}

// ValidateUpdateChat validate body cập nhật chat. Ngày sai định dạng
// bị chặn ở đây, trước khi chạm tới store.
func ValidateUpdateChat(req *dto.UpdateChatRequest) error {
	if err := ValidateEmail(req.Email); err != nil {
		return err
	}

	if req.ChatDate == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "chat_date không được để trống", nil)
	}
	if _, err := utils.DayStart(req.ChatDate); err != nil {
		return err
	}

	// Token count cho phép 0 (một lượt chat không tốn token vẫn là
	// request hợp lệ), chỉ chặn thiếu field và giá trị âm.
	if req.InputToken == nil {
		return errors.NewAppError(errors.ErrCodeRequiredField, "input_token không được để trống", nil)
	}
	if req.OutputToken == nil {
		return errors.NewAppError(errors.ErrCodeRequiredField, "output_token không được để trống", nil)
	}
	if *req.InputToken < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidTokenCount, "input_token không được âm", nil)
	}
	if *req.OutputToken < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidTokenCount, "output_token không được âm", nil)
	}

	return nil
}

// ValidateDateRange kiểm tra cặp ngày lọc của báo cáo (cho phép rỗng)
func ValidateDateRange(startDate, endDate string) error {
	var err error
	var start, end int64

	if startDate != "" {
		s, e := utils.DayStart(startDate)
		if e != nil {
			return e
		}
		start = s.Unix()
	}
	if endDate != "" {
		s, e := utils.DayEnd(endDate)
		if e != nil {
			return e
		}
		end = s.Unix()
	}
	if startDate != "" && endDate != "" && end < start {
		err = errors.NewAppError(errors.ErrCodeValidation, "endDate phải sau startDate", nil)
	}
	return err
}
