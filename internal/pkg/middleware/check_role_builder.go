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
	"context"
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// ClaimRole JWT 中存放用户角色的键
const ClaimRole = "role"

//go:generate mockgen -source=./check_role_builder.go -package=middlewaremocks -destination=./mocks/role_finder.mock.go RoleFinder
type RoleFinder interface {
	FindRole(ctx context.Context, uid int64) (string, error)
}

// CheckRoleMiddlewareBuilder 只放行指定角色的用户.
// JWT 里没有角色时 (刚完成引导, token 还是旧的) 会回源查询一次并刷新 claims
type CheckRoleMiddlewareBuilder struct {
	finder RoleFinder
	logger *elog.Component
	sp     session.Provider
}

func NewCheckRoleMiddlewareBuilder(finder RoleFinder) *CheckRoleMiddlewareBuilder {
	return &CheckRoleMiddlewareBuilder{
		finder: finder,
		logger: elog.DefaultLogger,
	}
}

func (c *CheckRoleMiddlewareBuilder) Build(roles ...string) gin.HandlerFunc {
	if c.sp == nil {
		c.sp = session.DefaultProvider()
	}
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := c.sp.Get(gctx)
		if err != nil {
			gctx.AbortWithStatus(http.StatusForbidden)
			c.logger.Debug("user not logged in", elog.FieldErr(err))
			return
		}

		claims := sess.Claims()
		role := claims.Get(ClaimRole).StringOrDefault("")
		if role != "" {
			if !slice.Contains(roles, role) {
				gctx.AbortWithStatus(http.StatusForbidden)
				c.logger.Debug("role not allowed", elog.Int64("uid", claims.Uid), elog.String("role", role))
			}
			return
		}

		role, err = c.finder.FindRole(ctx.Request.Context(), claims.Uid)
		if err != nil {
			gctx.AbortWithStatus(http.StatusForbidden)
			c.logger.Error("find role failed", elog.Int64("uid", claims.Uid), elog.FieldErr(err))
			return
		}
		if !slice.Contains(roles, role) {
			gctx.AbortWithStatus(http.StatusForbidden)
			c.logger.Debug("role not allowed", elog.Int64("uid", claims.Uid), elog.String("role", role))
			return
		}

		jwtData := claims.Data
		if jwtData == nil {
			jwtData = make(map[string]string, 1)
		}
		jwtData[ClaimRole] = role
		claims.Data = jwtData
		err = c.sp.UpdateClaims(gctx, claims)
		if err != nil {
			// 刷新失败不影响本次请求
			c.logger.Error("refresh claims failed", elog.Int64("uid", claims.Uid), elog.FieldErr(err))
		}
	}
}
