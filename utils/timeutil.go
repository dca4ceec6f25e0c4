package utils

import (
	"sync"
	"time"
	_ "time/tzdata"

	"chatkeep/constants"
	"chatkeep/errors"
)

var (
	locOnce sync.Once
	loc     *time.Location
	locErr  error
)

// Location trả về timezone chuẩn dùng để gom chat theo ngày.
// tzdata được embed nên container không có zoneinfo vẫn chạy được.
func Location() (*time.Location, error) {
	locOnce.Do(func() {
		loc, locErr = time.LoadLocation(constants.DefaultTimezone)
	})
	if locErr != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "timezone không hợp lệ", locErr)
	}
	return loc, nil
}

// DayStart parse chuỗi ngày YYYY-MM-DD (theo timezone chuẩn) thành
// instant UTC đầu ngày. Ngày sai định dạng bị từ chối, không bao giờ
// tự đổi thành "now" hay epoch.
func DayStart(dateStr string) (time.Time, error) {
	l, err := Location()
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.ParseInLocation(constants.CivilDateLayout, dateStr, l)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "định dạng ngày không hợp lệ: "+dateStr, err)
	}
	return t.UTC(), nil
}

// DayEnd parse chuỗi ngày thành instant UTC cuối ngày (23:59:59.999),
// để cận trên của range bao trọn cả ngày đó.
func DayEnd(dateStr string) (time.Time, error) {
	start, err := DayStart(dateStr)
	if err != nil {
		return time.Time{}, err
	}
	l, _ := Location()
	d := start.In(l)
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 999*int(time.Millisecond), l).UTC(), nil
}

// DayStartAt cắt một instant bất kỳ về đầu ngày theo timezone chuẩn.
func DayStartAt(t time.Time) (time.Time, error) {
	l, err := Location()
	if err != nil {
		return time.Time{}, err
	}
	d := t.In(l)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, l).UTC(), nil
}

// DayEndAt kéo một instant bất kỳ về cuối ngày theo timezone chuẩn.
func DayEndAt(t time.Time) (time.Time, error) {
	l, err := Location()
	if err != nil {
		return time.Time{}, err
	}
	d := t.In(l)
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 999*int(time.Millisecond), l).UTC(), nil
}

// monthBefore lùi một tháng, kẹp về ngày cuối của tháng trước khi ngày
// hiện tại không tồn tại ở tháng đó (31/03 thành 28 hoặc 29/02, không
// để AddDate tràn sang đầu tháng 3).
func monthBefore(t time.Time) time.Time {
	firstOfMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	prev := firstOfMonth.AddDate(0, -1, 0)
	day := t.Day()
	if last := firstOfMonth.AddDate(0, 0, -1).Day(); day > last {
		day = last
	}
	return time.Date(prev.Year(), prev.Month(), day, 0, 0, 0, 0, t.Location())
}

// DefaultRange trả về window mặc định khi client không truyền ngày:
// [đầu ngày của một tháng trước, cuối ngày hôm nay] theo timezone chuẩn.
func DefaultRange(now time.Time) (time.Time, time.Time, error) {
	l, err := Location()
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	localNow := now.In(l)
	start, err := DayStartAt(monthBefore(localNow))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := DayEndAt(localNow)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// FormatCivil hiển thị một instant UTC dưới dạng ngày theo timezone chuẩn.
func FormatCivil(t time.Time) string {
	l, err := Location()
	if err != nil {
		return t.Format(constants.CivilDateLayout)
	}
	return t.In(l).Format(constants.CivilDateLayout)
}

// FormatWithOffset hiển thị timestamp đầy đủ kèm offset của timezone chuẩn.
func FormatWithOffset(t time.Time) string {
	l, err := Location()
	if err != nil {
		return t.Format(time.RFC3339)
	}
	return t.In(l).Format(time.RFC3339)
}
