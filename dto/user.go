package dto

// RegisterUserRequest là body của POST /api/regist_user_info
type RegisterUserRequest struct {
	Email         string `json:"email" binding:"required"`
	UserName      string `json:"user_name" binding:"required"`
	LicenseNumber string `json:"license_number"`
}

type LicenseResponse struct {
	LicenseNumber string `json:"license_number"`
}
