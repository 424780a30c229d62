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

package availability

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/robertobolla/talkme-sub001/internal/availability/internal/repository"
	"github.com/robertobolla/talkme-sub001/internal/availability/internal/repository/cache"
	"github.com/robertobolla/talkme-sub001/internal/availability/internal/repository/dao"
	"github.com/robertobolla/talkme-sub001/internal/availability/internal/service"
	"github.com/robertobolla/talkme-sub001/internal/availability/internal/web"
)

var ProviderSet = wire.NewSet(
	initDAO,
	cache.NewSlotECache,
	repository.NewCachedAvailabilityRepository,
	service.NewService,
	web.NewHandler,
)

func InitModule(db *egorm.Component, ec ecache.Cache) *Module {
	wire.Build(ProviderSet, wire.Struct(new(Module), "*"))
	return new(Module)
}

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.SlotDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMSlotDAO(db)
}
