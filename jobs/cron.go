package jobs

import (
	"context"
	"log"
	"time"

	"chatkeep/repository"
	"chatkeep/utils"

	"github.com/robfig/cron/v3"
)

// UsageReporter định nghĩa interface cho việc tổng hợp token usage theo ngày
type UsageReporter interface {
	DailyUsage(ctx context.Context, date string) (*repository.ChatAggregate, error)
}

var usageReporter UsageReporter

// SetUsageReporter thiết lập implementation cho UsageReporter
func SetUsageReporter(reporter UsageReporter) {
	usageReporter = reporter
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Cron job chạy lúc 0h mỗi ngày: ghi log tổng token usage của ngày hôm qua
	_, err := c.AddFunc("0 0 * * *", func() {
		if usageReporter == nil {
			log.Printf("Lỗi: UsageReporter chưa được thiết lập")
			return
		}

		date := utils.FormatCivil(time.Now().AddDate(0, 0, -1))
		agg, err := usageReporter.DailyUsage(context.Background(), date)
		if err != nil {
			log.Printf("Lỗi tổng hợp usage ngày %s: %v", date, err)
			return
		}
		log.Printf("Usage ngày %s: %d record, %d input token, %d output token",
			date, agg.TotalCount, agg.TotalInputTokens, agg.TotalOutputTokens)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
