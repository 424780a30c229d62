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

package startup

import (
	"time"

	"github.com/google/wire"
	"github.com/robertobolla/talkme-sub001/internal/payment"
	testioc "github.com/robertobolla/talkme-sub001/internal/test/ioc"
	"github.com/robertobolla/talkme-sub001/internal/wallet"
)

func InitModule() (*payment.Module, error) {
	wire.Build(testioc.BaseSet,
		wallet.InitModule,
		wire.FieldsOf(new(*wallet.Module), "Svc"),
		initConfig,
		payment.InitModule)
	return new(payment.Module), nil
}

func initConfig() payment.Config {
	return payment.Config{
		Assets: []payment.Asset{
			{Symbol: "USDT", Networks: []string{"ethereum", "tron"}, MinAmount: 1000, MaxAmount: 1000000},
		},
		DepositTTL: 30 * time.Minute,
	}
}
