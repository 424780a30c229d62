// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/time/rate"
)

// RateLimitBuilder 按客户端 IP 限流, 用在公开接口上
type RateLimitBuilder struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	// 超过上限时整体清空
	maxKeys int
	logger  *elog.Component
}

func NewRateLimitBuilder(requestsPerSecond float64, burst int) *RateLimitBuilder {
	return &RateLimitBuilder{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(requestsPerSecond),
		burst:    burst,
		maxKeys:  10000,
		logger:   elog.DefaultLogger,
	}
}

func (b *RateLimitBuilder) limiter(key string) *rate.Limiter {
	b.mu.Lock()
	defer b.mu.Unlock()
	l, ok := b.limiters[key]
	if ok {
		return l
	}
	if len(b.limiters) >= b.maxKeys {
		b.limiters = make(map[string]*rate.Limiter)
	}
	l = rate.NewLimiter(b.limit, b.burst)
	b.limiters[key] = l
	return l
}

func (b *RateLimitBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := ctx.ClientIP()
		if b.limiter(key).Allow() {
			return
		}
		b.logger.Warn("rate limit exceeded",
			elog.String("ip", key),
			elog.String("path", ctx.Request.URL.Path))
		ctx.AbortWithStatus(http.StatusTooManyRequests)
	}
}
