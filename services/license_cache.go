package services

import (
	"context"
	"time"

	"chatkeep/constants"
	"chatkeep/dto"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const licenseCacheTTL = 10 * time.Minute

// licenseCache là cache read-through cho tra cứu license theo email.
// Client nil nghĩa là chạy không cache: mọi thao tác thành no-op nên
// tầng service không phải kiểm tra Redis có hay không.
type licenseCache struct {
	rdb *redis.Client
}

func newLicenseCache(rdb *redis.Client) *licenseCache {
	return &licenseCache{rdb: rdb}
}

func (c *licenseCache) key(email string) string {
	return constants.LicenseCachePrefix + email
}

// Get trả về license đã cache. ok=false khi miss, cache tắt, hoặc
// payload hỏng; caller rơi xuống DB trong mọi trường hợp đó.
func (c *licenseCache) Get(ctx context.Context, email string) (string, bool) {
	if c.rdb == nil {
		return "", false
	}

	data, err := c.rdb.Get(ctx, c.key(email)).Result()
	if err != nil {
		return "", false
	}

	var cached dto.LicenseResponse
	if err := json.Unmarshal([]byte(data), &cached); err != nil {
		return "", false
	}
	if cached.LicenseNumber == "" {
		return "", false
	}
	return cached.LicenseNumber, true
}

// Set lưu license vào cache. Chỉ cache license khác rỗng để cache miss
// và "chưa có license" đều đi cùng một đường xuống DB.
func (c *licenseCache) Set(ctx context.Context, email, license string) error {
	if c.rdb == nil || license == "" {
		return nil
	}

	data, err := json.Marshal(dto.LicenseResponse{LicenseNumber: license})
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key(email), data, licenseCacheTTL).Err()
}

// Drop bỏ entry của một email, gọi khi profile vừa được upsert
func (c *licenseCache) Drop(ctx context.Context, email string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, c.key(email)).Err()
}
