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

package notification

import (
	"context"
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/robertobolla/talkme-sub001/internal/notification/internal/event"
	"github.com/robertobolla/talkme-sub001/internal/notification/internal/repository"
	"github.com/robertobolla/talkme-sub001/internal/notification/internal/repository/cache"
	"github.com/robertobolla/talkme-sub001/internal/notification/internal/repository/dao"
	"github.com/robertobolla/talkme-sub001/internal/notification/internal/service"
	"github.com/robertobolla/talkme-sub001/internal/notification/internal/web"
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ) (*Module, error) {
	wire.Build(ProviderSet, wire.Struct(new(Module), "*"))
	return new(Module), nil
}

var ProviderSet = wire.NewSet(
	initDAO,
	cache.NewUnreadECache,
	repository.NewNotificationRepository,
	service.NewService,
	web.NewHandler,
	initOfferConsumer,
	initBookingConsumer,
	initPaymentConsumer)

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.NotificationDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewNotificationGORMDAO(db)
}

func initOfferConsumer(svc service.Service, q mq.MQ) *event.OfferConsumer {
	c, err := event.NewOfferConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}

func initBookingConsumer(svc service.Service, q mq.MQ) *event.BookingConsumer {
	c, err := event.NewBookingConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}

func initPaymentConsumer(svc service.Service, q mq.MQ) *event.PaymentConsumer {
	c, err := event.NewPaymentConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}
