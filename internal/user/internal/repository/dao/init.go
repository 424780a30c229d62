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

package dao

import (
	"github.com/ego-component/egorm"
	"github.com/robertobolla/talkme-sub001/internal/pkg/snowflake"
)

func InitTables(db *egorm.Component, idMaker snowflake.IDGenerator) error {
	err := db.Callback().Create().Before("gorm:create").
		Register("user_create_id", NewUserInsertCallBackBuilder(idMaker).Build())
	if err != nil {
		return err
	}
	return db.AutoMigrate(&User{})
}
