package controllers

import (
	"chatkeep/dto"
	"chatkeep/response"
	"chatkeep/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Service services.UserServiceInterface
}

func NewUserController(service services.UserServiceInterface) UserController {
	return UserController{Service: service}
}

// RegisterUserInfo godoc
// @Summary Đăng ký hoặc cập nhật thông tin user
// @Accept json
// @Produce json
// @Router /api/regist_user_info [post]
func (u UserController) RegisterUserInfo(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, profile, err := u.Service.RegisterUser(c.Request.Context(), &req)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	if created {
		response.Created(c, gin.H{"user": profile})
		return
	}
	response.Success(c, gin.H{"user": profile})
}

// CheckLicense godoc
// @Summary Tra cứu license number theo email
// @Produce json
// @Router /api/check-license [get]
func (u UserController) CheckLicense(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.BadRequest(c, "email là bắt buộc")
		return
	}

	license, err := u.Service.GetLicense(c.Request.Context(), email)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	// Chưa có license trong hồ sơ vẫn là 200 với chuỗi rỗng
	response.Success(c, dto.LicenseResponse{LicenseNumber: license})
}

// CheckUserInfo godoc
// @Summary Tra cứu profile theo email
// @Produce json
// @Router /api/check-userinfo [get]
func (u UserController) CheckUserInfo(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.BadRequest(c, "email là bắt buộc")
		return
	}

	profile, err := u.Service.GetUserInfo(c.Request.Context(), email)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, gin.H{"user": profile})
}
