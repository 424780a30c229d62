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

//go:build wireinject

package booking

import (
	"context"
	"sync"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/robertobolla/talkme-sub001/internal/availability"
	"github.com/robertobolla/talkme-sub001/internal/booking/internal/event"
	"github.com/robertobolla/talkme-sub001/internal/booking/internal/job"
	"github.com/robertobolla/talkme-sub001/internal/booking/internal/repository"
	"github.com/robertobolla/talkme-sub001/internal/booking/internal/repository/dao"
	"github.com/robertobolla/talkme-sub001/internal/booking/internal/service"
	"github.com/robertobolla/talkme-sub001/internal/booking/internal/web"
	"github.com/robertobolla/talkme-sub001/internal/pkg/sequencenumber"
	"github.com/robertobolla/talkme-sub001/internal/user"
	"github.com/robertobolla/talkme-sub001/internal/wallet"
)

var ProviderSet = wire.NewSet(
	initDAO,
	repository.NewSessionRepository,
	initProducer,
	sequencenumber.NewGenerator,
	service.NewService,
	web.NewHandler,
	initExpirePendingSessionsJob,
	initCompleteFinishedSessionsJob,
	initOfferConsumer)

func InitModule(db *egorm.Component,
	q mq.MQ,
	availSvc availability.Service,
	userSvc user.Service,
	walletSvc wallet.Service,
	rooms RoomProvider) (*Module, error) {
	wire.Build(ProviderSet, wire.Struct(new(Module), "*"))
	return new(Module), nil
}

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.SessionDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMSessionDAO(db)
}

func initProducer(q mq.MQ) event.BookingEventProducer {
	p, err := event.NewBookingEventProducer(q)
	if err != nil {
		panic(err)
	}
	return p
}

func initExpirePendingSessionsJob(svc service.Service) *job.ExpirePendingSessionsJob {
	const limit = 100
	return job.NewExpirePendingSessionsJob(svc, limit)
}

func initCompleteFinishedSessionsJob(svc service.Service) *job.CompleteFinishedSessionsJob {
	const (
		grace = 30 * time.Minute
		limit = 100
	)
	return job.NewCompleteFinishedSessionsJob(svc, grace, limit)
}

func initOfferConsumer(svc service.Service, q mq.MQ) *event.OfferConsumer {
	c, err := event.NewOfferConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}

// InitRoomProvider 从配置中读取视频房间的地址和签名密钥
func InitRoomProvider() RoomProvider {
	type Config struct {
		BaseURL string `yaml:"baseURL"`
		Secret  string `yaml:"secret"`
	}
	var cfg Config
	err := econf.UnmarshalKey("room", &cfg)
	if err != nil {
		panic(err)
	}
	return service.NewJWTRoomProvider(cfg.BaseURL, cfg.Secret)
}
