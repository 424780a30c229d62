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

package offer

import (
	"context"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/robertobolla/talkme-sub001/internal/offer/internal/event"
	"github.com/robertobolla/talkme-sub001/internal/offer/internal/job"
	"github.com/robertobolla/talkme-sub001/internal/offer/internal/repository"
	"github.com/robertobolla/talkme-sub001/internal/offer/internal/repository/dao"
	"github.com/robertobolla/talkme-sub001/internal/offer/internal/service"
	"github.com/robertobolla/talkme-sub001/internal/offer/internal/web"
	"github.com/robertobolla/talkme-sub001/internal/pkg/sequencenumber"
	"github.com/robertobolla/talkme-sub001/internal/wallet"
)

var ProviderSet = wire.NewSet(
	initDAO,
	repository.NewOfferRepository,
	initProducer,
	sequencenumber.NewGenerator,
	service.NewService,
	web.NewHandler,
	initExpireOffersJob,
	initBookingConsumer)

func InitModule(db *egorm.Component, q mq.MQ, walletSvc wallet.Service) (*Module, error) {
	wire.Build(ProviderSet, wire.Struct(new(Module), "*"))
	return new(Module), nil
}

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.OfferDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMOfferDAO(db)
}

func initProducer(q mq.MQ) event.OfferEventProducer {
	p, err := event.NewOfferEventProducer(q)
	if err != nil {
		panic(err)
	}
	return p
}

func initExpireOffersJob(svc service.Service) *job.ExpireOffersJob {
	const limit = 100
	return job.NewExpireOffersJob(svc, limit)
}

func initBookingConsumer(svc service.Service, q mq.MQ) *event.BookingConsumer {
	c, err := event.NewBookingConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}
