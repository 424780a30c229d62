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

package ioc

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ego-component/egorm"
	_ "github.com/go-sql-driver/mysql"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/robertobolla/talkme-sub001/internal/pkg/database"
)

func InitDB() *egorm.Component {
	type Config struct {
		DSN          string        `yaml:"dsn"`
		MaxRetries   int32         `yaml:"maxRetries"`
		PingInterval time.Duration `yaml:"pingInterval"`
	}
	cfg := Config{MaxRetries: 10, PingInterval: time.Second}
	if err := econf.UnmarshalKey("mysql", &cfg); err != nil {
		panic(err)
	}
	if err := waitForDB(cfg.DSN, cfg.PingInterval, cfg.MaxRetries); err != nil {
		panic(err)
	}
	db := egorm.Load("mysql").Build()
	if err := db.Use(database.NewGormTracingPlugin()); err != nil {
		panic(err)
	}
	return db
}

// waitForDB 用 docker compose 拉起时 MySQL 比应用慢, 按指数退避 ping 到可用为止
func waitForDB(dsn string, initial time.Duration, maxRetries int32) error {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return err
	}
	defer sqlDB.Close()
	strategy, err := retry.NewExponentialBackoffRetryStrategy(initial, 10*initial, maxRetries)
	if err != nil {
		return err
	}
	for {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = sqlDB.PingContext(ctx)
		cancel()
		if err == nil {
			return nil
		}
		next, ok := strategy.Next()
		if !ok {
			return fmt.Errorf("mysql not ready after %d retries: %w", maxRetries, err)
		}
		elog.DefaultLogger.Warn("waiting for mysql", elog.FieldErr(err), elog.FieldCost(next))
		time.Sleep(next)
	}
}
