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

package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/robertobolla/talkme-sub001/internal/availability"
	"github.com/robertobolla/talkme-sub001/internal/booking"
	"github.com/robertobolla/talkme-sub001/internal/notification"
	"github.com/robertobolla/talkme-sub001/internal/offer"
	"github.com/robertobolla/talkme-sub001/internal/payment"
	"github.com/robertobolla/talkme-sub001/internal/pkg/middleware"
	"github.com/robertobolla/talkme-sub001/internal/user"
	"github.com/robertobolla/talkme-sub001/internal/wallet"
)

func initGinxServer(sp session.Provider,
	userModule *user.Module,
	walletModule *wallet.Module,
	availModule *availability.Module,
	offerModule *offer.Module,
	bookingModule *booking.Module,
	paymentModule *payment.Module,
	notificationModule *notification.Module,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	allowOrigins := econf.GetStringSlice("web.allowOrigins")
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return slice.Contains(allowOrigins, origin)
		},
	}))
	res.Use(middleware.NewMetricsBuilder("talkme").Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})

	res.Use(initRateLimiter())
	userModule.Hdl.PublicRoutes(res.Engine)
	availModule.Hdl.PublicRoutes(res.Engine)
	bookingModule.Hdl.PublicRoutes(res.Engine)
	paymentModule.Hdl.PublicRoutes(res.Engine)

	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userModule.Hdl.PrivateRoutes(res.Engine)
	walletModule.Hdl.PrivateRoutes(res.Engine)
	offerModule.Hdl.PrivateRoutes(res.Engine)
	bookingModule.Hdl.PrivateRoutes(res.Engine)
	paymentModule.Hdl.PrivateRoutes(res.Engine)
	notificationModule.Hdl.PrivateRoutes(res.Engine)

	// 角色校验
	roles := middleware.NewCheckRoleMiddlewareBuilder(userModule.Svc)
	clients := res.Group("", roles.Build(user.RoleClient.String()))
	offerModule.Hdl.ClientRoutes(clients)
	bookingModule.Hdl.ClientRoutes(clients)
	companions := res.Group("", roles.Build(user.RoleCompanion.String()))
	availModule.Hdl.CompanionRoutes(companions)
	offerModule.Hdl.CompanionRoutes(companions)
	bookingModule.Hdl.CompanionRoutes(companions)
	return res
}

func initRateLimiter() gin.HandlerFunc {
	type Config struct {
		RequestsPerSecond float64 `yaml:"requestsPerSecond"`
		Burst             int     `yaml:"burst"`
	}
	cfg := Config{RequestsPerSecond: 20, Burst: 40}
	err := econf.UnmarshalKey("web.rateLimit", &cfg)
	if err != nil {
		panic(err)
	}
	return middleware.NewRateLimitBuilder(cfg.RequestsPerSecond, cfg.Burst).Build()
}
