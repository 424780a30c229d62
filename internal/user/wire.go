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

package user

import (
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/robertobolla/talkme-sub001/internal/pkg/snowflake"
	"github.com/robertobolla/talkme-sub001/internal/user/internal/repository"
	"github.com/robertobolla/talkme-sub001/internal/user/internal/repository/cache"
	"github.com/robertobolla/talkme-sub001/internal/user/internal/repository/dao"
	"github.com/robertobolla/talkme-sub001/internal/user/internal/service"
	"github.com/robertobolla/talkme-sub001/internal/user/internal/web"
)

var ProviderSet = wire.NewSet(
	web.NewHandler,
	cache.NewUserECache,
	initDAO,
	service.NewUserService,
	repository.NewCachedUserRepository)

func InitModule(db *egorm.Component, ec ecache.Cache,
	idMaker snowflake.IDGenerator, idp IdentityProvider) (*Module, error) {
	wire.Build(ProviderSet, wire.Struct(new(Module), "*"))
	return new(Module), nil
}

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component, idMaker snowflake.IDGenerator) dao.UserDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db, idMaker)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMUserDAO(db)
}

// InitIdentityProvider 从配置中读取身份提供方的 userinfo 地址
func InitIdentityProvider() IdentityProvider {
	type Config struct {
		UserinfoURL string        `yaml:"userinfoURL"`
		Timeout     time.Duration `yaml:"timeout"`
	}
	var cfg Config
	err := econf.UnmarshalKey("identity", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return service.NewHTTPIdentityProvider(cfg.UserinfoURL, cfg.Timeout)
}
