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
	"github.com/google/wire"
	"github.com/robertobolla/talkme-sub001/internal/availability"
	"github.com/robertobolla/talkme-sub001/internal/booking"
	testioc "github.com/robertobolla/talkme-sub001/internal/test/ioc"
	"github.com/robertobolla/talkme-sub001/internal/user"
	"github.com/robertobolla/talkme-sub001/internal/wallet"
)

func InitModule(userSvc user.Service, rooms booking.RoomProvider) (*booking.Module, error) {
	wire.Build(testioc.BaseSet,
		wallet.InitService,
		availability.InitModule,
		wire.FieldsOf(new(*availability.Module), "Svc"),
		booking.InitModule)
	return new(booking.Module), nil
}
