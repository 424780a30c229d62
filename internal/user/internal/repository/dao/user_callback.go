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
	"github.com/gotomicro/ego/core/elog"
	"github.com/robertobolla/talkme-sub001/internal/pkg/snowflake"
	"gorm.io/gorm"
)

const UserTableName = "users"

// UserInsertCallBackBuilder 插入用户前用雪花算法分配 ID
type UserInsertCallBackBuilder struct {
	logger  *elog.Component
	idMaker snowflake.IDGenerator
}

func NewUserInsertCallBackBuilder(idMaker snowflake.IDGenerator) *UserInsertCallBackBuilder {
	return &UserInsertCallBackBuilder{
		logger:  elog.DefaultLogger,
		idMaker: idMaker,
	}
}

func (u *UserInsertCallBackBuilder) Build() func(db *gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement.Table != UserTableName {
			return
		}
		switch dest := db.Statement.Dest.(type) {
		case *User:
			u.assign(dest)
		case *[]User:
			for i := range *dest {
				u.assign(&(*dest)[i])
			}
		default:
			u.logger.Warn("unexpected insert dest for users", elog.Any("dest", db.Statement.Dest))
		}
	}
}

func (u *UserInsertCallBackBuilder) assign(us *User) {
	if us.Id == 0 {
		us.Id = u.idMaker.Generate()
	}
}
