package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 未读计数过期时间 - 30天，过期后回源通知表重建
const unreadExpireAt = 30 * 24 * time.Hour

type UnreadStorage struct {
	redis *redis.Client
}

func NewUnreadStorage(rds *redis.Client) *UnreadStorage {
	return &UnreadStorage{rds}
}

// Incr 未读通知数自增
// @params uid 用户ID
func (u *UnreadStorage) Incr(ctx context.Context, uid int64) {
	pipe := u.redis.Pipeline()
	pipe.Incr(ctx, u.name(uid))
	pipe.Expire(ctx, u.name(uid), unreadExpireAt)
	_, _ = pipe.Exec(ctx)
}

// Get 获取未读通知数，缓存未命中返回 -1 由调用方回源
func (u *UnreadStorage) Get(ctx context.Context, uid int64) int64 {
	i, err := u.redis.Get(ctx, u.name(uid)).Int64()
	if err != nil {
		return -1
	}
	return i
}

// Set 回源后回填
func (u *UnreadStorage) Set(ctx context.Context, uid int64, count int64) {
	u.redis.Set(ctx, u.name(uid), count, unreadExpireAt)
}

// Reset 全部已读后清零
func (u *UnreadStorage) Reset(ctx context.Context, uid int64) {
	u.redis.Del(ctx, u.name(uid))
}

// 未读数缓存
// civix:notify:unread:uid
func (u *UnreadStorage) name(uid int64) string {
	return fmt.Sprintf("civix:notify:unread:%d", uid)
}
