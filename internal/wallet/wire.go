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

package wallet

import (
	"context"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/robertobolla/talkme-sub001/internal/wallet/internal/event"
	"github.com/robertobolla/talkme-sub001/internal/wallet/internal/repository"
	"github.com/robertobolla/talkme-sub001/internal/wallet/internal/repository/dao"
	"github.com/robertobolla/talkme-sub001/internal/wallet/internal/service"
	"github.com/robertobolla/talkme-sub001/internal/wallet/internal/web"
)

func InitModule(db *egorm.Component, q mq.MQ) (*Module, error) {
	wire.Build(
		InitService,
		web.NewHandler,
		initPaymentConsumer,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var (
	once = &sync.Once{}
	svc  service.Service
)

func InitService(db *egorm.Component) Service {
	once.Do(func() {
		_ = dao.InitTables(db)
		d := dao.NewWalletGORMDAO(db)
		r := repository.NewWalletRepository(d)
		svc = service.NewWalletService(r)
	})
	return svc
}

func initPaymentConsumer(svc service.Service, q mq.MQ) *event.PaymentConsumer {
	c, err := event.NewPaymentConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}
