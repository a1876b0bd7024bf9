package middleware

import (
	"Civix/pkg/context"
	"fmt"
	"net/http"
	"time"

	"Civix/pkg/response"

	"github.com/gin-gonic/gin"
	cmap "github.com/orcaman/concurrent-map/v2"
)

type window struct {
	count   int
	resetAt time.Time
}

// VoteRateLimit 单用户投票限频，防止脚本刷票
// 窗口内超过 limit 次直接 429，窗口过期后重置
func VoteRateLimit(limit int, per time.Duration) gin.HandlerFunc {
	buckets := cmap.New[*window]()

	return func(c *gin.Context) {
		uid, err := context.GetUserID(c)
		if err != nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("%d", uid)
		now := time.Now()

		allowed := true
		buckets.Upsert(key, nil, func(exist bool, cur, _ *window) *window {
			if !exist || now.After(cur.resetAt) {
				return &window{count: 1, resetAt: now.Add(per)}
			}
			cur.count++
			if cur.count > limit {
				allowed = false
			}
			return cur
		})

		if !allowed {
			response.Abort(c, http.StatusTooManyRequests, "操作过于频繁，请稍后再试")
			return
		}

		c.Next()
	}
}
