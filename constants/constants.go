package constants

// Timezone chuẩn để gom chat theo ngày (UTC+9)
const (
	DefaultTimezone = "Asia/Seoul"
	CivilDateLayout = "2006-01-02"
)

// Paging
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Chat sender
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// Cache
const (
	LicenseCachePrefix = "license:"
)
