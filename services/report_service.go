package services

import (
	"context"
	"time"

	"chatkeep/constants"
	"chatkeep/dto"
	"chatkeep/repository"
	"chatkeep/services/logger"
	"chatkeep/utils"
	"chatkeep/validator"
)

// ReportServiceInterface là mặt cắt cho controller và cron job
type ReportServiceInterface interface {
	QueryChatHistories(ctx context.Context, query *dto.ChatHistoriesQuery) (*dto.ChatHistoriesResponse, error)
	DailyUsage(ctx context.Context, date string) (*repository.ChatAggregate, error)
}

type ReportService struct {
	repo   repository.ChatRepository
	logger logger.Logger
	now    func() time.Time
}

type ReportServiceOptions struct {
	Repo   repository.ChatRepository
	Logger logger.Logger
	Now    func() time.Time
}

func NewReportService(opts ReportServiceOptions) *ReportService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &ReportService{
		repo:   opts.Repo,
		logger: opts.Logger,
		now:    now,
	}
}

// resolveWindow tính window UTC từ cặp ngày client truyền lên, thiếu
// bên nào thì lấy mặc định [một tháng trước, hôm nay] theo timezone chuẩn.
func (s *ReportService) resolveWindow(startDate, endDate string) (time.Time, time.Time, error) {
	defStart, defEnd, err := utils.DefaultRange(s.now())
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	start := defStart
	if startDate != "" {
		if start, err = utils.DayStart(startDate); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	end := defEnd
	if endDate != "" {
		if end, err = utils.DayEnd(endDate); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	return start, end, nil
}

// QueryChatHistories trả về một trang báo cáo sắp theo chat_date giảm
// dần, kèm tổng số record và tổng token của toàn bộ tập đã lọc (không
// phải chỉ trang hiện tại). Tập rỗng trả về trang rỗng với total bằng 0.
func (s *ReportService) QueryChatHistories(ctx context.Context, query *dto.ChatHistoriesQuery) (*dto.ChatHistoriesResponse, error) {
	page := query.Page
	if page < 1 {
		page = constants.DefaultPage
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}

	// Cặp ngày lộn ngược bị chặn ở đây, không lặng lẽ trả trang rỗng
	if err := validator.ValidateDateRange(query.StartDate, query.EndDate); err != nil {
		return nil, err
	}

	start, end, err := s.resolveWindow(query.StartDate, query.EndDate)
	if err != nil {
		return nil, err
	}

	filter := repository.ChatFilter{
		Start:         start,
		End:           end,
		Email:         query.Email,
		ExcludeEmails: query.ExcludeEmails,
	}

	summaries, err := s.repo.FindPage(ctx, filter, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	agg, err := s.repo.Aggregate(ctx, filter)
	if err != nil {
		return nil, err
	}

	data := make([]dto.ChatHistorySummary, 0, len(summaries))
	for _, rec := range summaries {
		data = append(data, dto.ChatHistorySummary{
			ID:          rec.ID,
			Email:       rec.Email,
			ChatDate:    utils.FormatCivil(rec.ChatDate),
			InputToken:  rec.InputToken,
			OutputToken: rec.OutputToken,
		})
	}

	totalPages := int((agg.TotalCount + int64(pageSize) - 1) / int64(pageSize))

	return &dto.ChatHistoriesResponse{
		Data:              data,
		CurrentPage:       page,
		TotalPages:        totalPages,
		TotalCount:        agg.TotalCount,
		TotalInputTokens:  agg.TotalInputTokens,
		TotalOutputTokens: agg.TotalOutputTokens,
		StartDate:         utils.FormatWithOffset(start),
		EndDate:           utils.FormatWithOffset(end),
	}, nil
}

// DailyUsage tổng hợp token usage của đúng một ngày (cho cron report)
func (s *ReportService) DailyUsage(ctx context.Context, date string) (*repository.ChatAggregate, error) {
	start, err := utils.DayStart(date)
	if err != nil {
		return nil, err
	}
	end, err := utils.DayEnd(date)
	if err != nil {
		return nil, err
	}
	return s.repo.Aggregate(ctx, repository.ChatFilter{Start: start, End: end})
}
