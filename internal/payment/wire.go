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

package payment

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/robertobolla/talkme-sub001/internal/payment/internal/event"
	"github.com/robertobolla/talkme-sub001/internal/payment/internal/job"
	"github.com/robertobolla/talkme-sub001/internal/payment/internal/repository"
	"github.com/robertobolla/talkme-sub001/internal/payment/internal/repository/dao"
	"github.com/robertobolla/talkme-sub001/internal/payment/internal/service"
	"github.com/robertobolla/talkme-sub001/internal/payment/internal/web"
	"github.com/robertobolla/talkme-sub001/internal/pkg/sequencenumber"
	"github.com/robertobolla/talkme-sub001/internal/pkg/snowflake"
	"github.com/robertobolla/talkme-sub001/internal/wallet"
)

var ProviderSet = wire.NewSet(
	initDAO,
	repository.NewPaymentRepository,
	initProducer,
	sequencenumber.NewGenerator,
	service.NewAddressGenerator,
	service.NewService,
	web.NewHandler,
	initCloseExpiredDepositsJob)

func InitModule(db *egorm.Component,
	q mq.MQ,
	walletSvc wallet.Service,
	idGen snowflake.IDGenerator,
	cfg Config) (*Module, error) {
	wire.Build(ProviderSet, wire.Struct(new(Module), "*"))
	return new(Module), nil
}

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.PaymentDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewPaymentGORMDAO(db)
}

func initProducer(q mq.MQ) event.PaymentEventProducer {
	p, err := event.NewPaymentEventProducer(q)
	if err != nil {
		panic(err)
	}
	return p
}

func initCloseExpiredDepositsJob(svc service.Service) *job.CloseExpiredDepositsJob {
	const limit = 100
	return job.NewCloseExpiredDepositsJob(svc, limit)
}

// InitConfig 支持的币种, 网络, 金额上下限以及充值有效期
func InitConfig() Config {
	var cfg Config
	err := econf.UnmarshalKey("payment", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}
