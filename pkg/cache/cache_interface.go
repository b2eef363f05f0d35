package cache

import (
	"context"
	"time"
)

// Cache là key/value store có TTL mà repository decorator dùng cho cache-aside.
// Values được encode khi Set và decode vào dest khi Get.
type Cache interface {
	// Get decodes the value under key into dest.
	// A miss is (false, nil) and leaves dest untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete xóa keys; key không tồn tại không phải lỗi
	Delete(ctx context.Context, keys ...string) error

	Exists(ctx context.Context, key string) (bool, error)

	// Ping dùng cho health check
	Ping(ctx context.Context) error
}
