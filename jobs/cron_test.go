package jobs

import (
	"testing"
	"time"

	"chatkeep/utils"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
)

func TestDailyScheduleFiresAtReferenceMidnight(t *testing.T) {
	loc, err := utils.Location()
	assert.NoError(t, err)

	sched, err := cron.ParseStandard("0 0 * * *")
	assert.NoError(t, err)

	// Cron được dựng với cron.WithLocation(loc) nên "now" mà scheduler
	// đưa vào Next luôn mang timezone chuẩn, như mô phỏng ở đây.
	// 23:00Z ngày 10/03 là 08:00 ngày 11/03 theo Seoul; lần chạy kế
	// tiếp phải là nửa đêm 12/03 Seoul, không phải nửa đêm UTC.
	now := time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC).In(loc)
	next := sched.Next(now)

	assert.Equal(t, time.Date(2024, 3, 11, 15, 0, 0, 0, time.UTC), next.UTC())
}

func TestInitCronJobsRegistersDailyJob(t *testing.T) {
	loc, err := utils.Location()
	assert.NoError(t, err)

	c := cron.New(cron.WithLocation(loc))
	assert.NoError(t, InitCronJobs(c))
	defer c.Stop()

	assert.Len(t, c.Entries(), 1)
}
