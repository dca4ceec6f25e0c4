package response

import (
	"net/http"

	"chatkeep/errors"
	"chatkeep/services/logger"

	"github.com/gin-gonic/gin"
)

var errLog = logger.NewDefaultLogger(logger.ErrorLevel).Named("http")

// ErrorBody định nghĩa cấu trúc response lỗi
type ErrorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created trả về response khi tạo mới resource
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// BadRequest trả về response lỗi validation
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: message})
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorBody{Error: message})
}

// Conflict trả về response trùng dữ liệu (409)
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, ErrorBody{Error: message})
}

// ServerError trả về response lỗi server, kèm detail để vận hành
func ServerError(c *gin.Context, detail string) {
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: "Lỗi server", Detail: detail})
}

// FromAppError map lỗi của service/repository sang HTTP status.
// Lỗi store không bao giờ được để crash process, luôn dừng ở đây.
func FromAppError(c *gin.Context, err error) {
	switch {
	case errors.IsValidation(err):
		BadRequest(c, err.Error())
	case errors.IsNotFound(err):
		NotFound(c, err.Error())
	case errors.IsDuplicate(err):
		Conflict(c, err.Error())
	default:
		errLog.Error("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		ServerError(c, err.Error())
	}
}
