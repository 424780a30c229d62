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

package ioc

import (
	"github.com/google/wire"
	"github.com/robertobolla/talkme-sub001/internal/availability"
	"github.com/robertobolla/talkme-sub001/internal/booking"
	"github.com/robertobolla/talkme-sub001/internal/notification"
	"github.com/robertobolla/talkme-sub001/internal/offer"
	"github.com/robertobolla/talkme-sub001/internal/payment"
	"github.com/robertobolla/talkme-sub001/internal/user"
	"github.com/robertobolla/talkme-sub001/internal/wallet"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitIDGenerator)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		user.InitIdentityProvider,
		user.InitModule,
		wire.FieldsOf(new(*user.Module), "Svc"),
		wallet.InitModule,
		wire.FieldsOf(new(*wallet.Module), "Svc"),
		availability.InitModule,
		wire.FieldsOf(new(*availability.Module), "Svc"),
		offer.InitModule,
		booking.InitRoomProvider,
		booking.InitModule,
		payment.InitConfig,
		payment.InitModule,
		notification.InitModule,
		initGinxServer,
		initCronJobs)
	return new(App), nil
}
