package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const blacklistKeyPrefix = "auth:blacklist:"

// BlacklistToken 将令牌 ID 加入黑名单，过期时间与令牌剩余有效期一致
func BlacklistToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if Client == nil || ttl <= 0 {
		// 令牌已自然过期，无需记录
		return nil
	}
	return Client.Set(ctx, blacklistKeyPrefix+tokenID, 1, ttl).Err()
}

// IsTokenBlacklisted 检查令牌 ID 是否在黑名单中
func IsTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	if Client == nil {
		return false, nil
	}
	err := Client.Get(ctx, blacklistKeyPrefix+tokenID).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
