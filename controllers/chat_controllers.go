package controllers

import (
	"strconv"
	"strings"

	"chatkeep/constants"
	"chatkeep/dto"
	"chatkeep/response"
	"chatkeep/services"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService   services.ChatServiceInterface
	ReportService services.ReportServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface, reportService services.ReportServiceInterface) ChatController {
	return ChatController{
		ChatService:   chatService,
		ReportService: reportService,
	}
}

// UpdateChat godoc
// @Summary Gom một đợt chat + token count vào record theo (email, ngày)
// @Accept json
// @Produce json
// @Router /api/update-chat [put]
func (h ChatController) UpdateChat(c *gin.Context) {
	var req dto.UpdateChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, record, err := h.ChatService.AppendChat(c.Request.Context(), &req)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	if created {
		response.Created(c, gin.H{"record": record})
		return
	}
	response.Success(c, gin.H{"record": record})
}

// GetChatHistory godoc
// @Summary Toàn bộ record chat của một user, mới nhất trước
// @Produce json
// @Router /api/chat-history [get]
func (h ChatController) GetChatHistory(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.BadRequest(c, "email là bắt buộc")
		return
	}

	records, err := h.ChatService.GetUserChatHistory(c.Request.Context(), email)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, gin.H{"data": records})
}

// GetChatHistories godoc
// @Summary Báo cáo chat phân trang theo window ngày (timezone chuẩn)
// @Produce json
// @Router /api/get-chat-histories [get]
func (h ChatController) GetChatHistories(c *gin.Context) {
	// Paging không parse được thì giữ giá trị mặc định
	page := constants.DefaultPage
	if parsed, err := strconv.Atoi(c.Query("page")); err == nil {
		page = parsed
	}
	pageSize := constants.DefaultPageSize
	if parsed, err := strconv.Atoi(c.Query("pageSize")); err == nil {
		pageSize = parsed
	}

	// adminEmails chỉ có hiệu lực khi excludeAdminData bật;
	// danh sách encode dạng comma-separated
	var excludeEmails []string
	if exclude, _ := strconv.ParseBool(c.Query("excludeAdminData")); exclude {
		for _, email := range strings.Split(c.Query("adminEmails"), ",") {
			if trimmed := strings.TrimSpace(email); trimmed != "" {
				excludeEmails = append(excludeEmails, trimmed)
			}
		}
	}

	query := &dto.ChatHistoriesQuery{
		Page:          page,
		PageSize:      pageSize,
		Email:         c.Query("email"),
		StartDate:     c.Query("startDate"),
		EndDate:       c.Query("endDate"),
		ExcludeEmails: excludeEmails,
	}

	result, err := h.ReportService.QueryChatHistories(c.Request.Context(), query)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, result)
}

// GetChatList godoc
// @Summary Danh sách message của một record
// @Produce json
// @Router /api/get-chat-list/{id} [get]
func (h ChatController) GetChatList(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "id không hợp lệ")
		return
	}

	messages, err := h.ChatService.GetChatList(c.Request.Context(), uint(id))
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, gin.H{"chat_list": messages})
}
