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
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

var (
	ErrUserDuplicate     = errors.New("user already registered")
	ErrRoleAlreadyChosen = errors.New("role already chosen")
)

const roleUnknown uint8 = 0

//go:generate mockgen -source=./user.go -package=daomocks -destination=./mocks/user.mock.go UserDAO
type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	UpdateNonZeroFields(ctx context.Context, u User) error
	// UpdateRole 仅在尚未选择角色时生效
	UpdateRole(ctx context.Context, u User) error
	FindByExternalID(ctx context.Context, externalID string) (User, error)
	FindById(ctx context.Context, id int64) (User, error)
	FindByIds(ctx context.Context, ids []int64) ([]User, error)
	ListCompanions(ctx context.Context, specialty, language string, offset, limit int) ([]User, error)
	CountCompanions(ctx context.Context, specialty, language string) (int64, error)
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{
		db: db,
	}
}

func (ud *GORMUserDAO) UpdateNonZeroFields(ctx context.Context, u User) error {
	u.Utime = time.Now().UnixMilli()
	return ud.db.WithContext(ctx).Updates(&u).Error
}

func (ud *GORMUserDAO) UpdateRole(ctx context.Context, u User) error {
	u.Utime = time.Now().UnixMilli()
	res := ud.db.WithContext(ctx).Model(&u).
		Where("role = ?", roleUnknown).
		Select("Role", "Name", "Bio", "Timezone", "Languages", "Specialties", "HourlyRate", "Utime").
		Updates(&u)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRoleAlreadyChosen
	}
	return nil
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := ud.db.WithContext(ctx).Create(&u).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrUserDuplicate
		}
	}
	return u.Id, err
}

func (ud *GORMUserDAO) FindByExternalID(ctx context.Context, externalID string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "external_id = ?", externalID).Error
	return u, err
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (ud *GORMUserDAO) FindByIds(ctx context.Context, ids []int64) ([]User, error) {
	var us []User
	if len(ids) == 0 {
		return us, nil
	}
	err := ud.db.WithContext(ctx).Find(&us, "id IN ?", ids).Error
	return us, err
}

func (ud *GORMUserDAO) ListCompanions(ctx context.Context, specialty, language string, offset, limit int) ([]User, error) {
	var us []User
	err := ud.companionQuery(ctx, specialty, language).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&us).Error
	return us, err
}

func (ud *GORMUserDAO) CountCompanions(ctx context.Context, specialty, language string) (int64, error) {
	var res int64
	err := ud.companionQuery(ctx, specialty, language).Count(&res).Error
	return res, err
}

func (ud *GORMUserDAO) companionQuery(ctx context.Context, specialty, language string) *gorm.DB {
	const roleCompanion uint8 = 2
	db := ud.db.WithContext(ctx).Model(&User{}).Where("role = ?", roleCompanion)
	if specialty != "" {
		db = db.Where("JSON_CONTAINS(specialties, ?)", jsonString(specialty))
	}
	if language != "" {
		db = db.Where("JSON_CONTAINS(languages, ?)", jsonString(language))
	}
	return db
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

type User struct {
	Id         int64  `gorm:"primaryKey,autoIncrement"`
	ExternalID string `gorm:"type:varchar(256);not null;uniqueIndex:unq_user_external_id"`
	Email      string `gorm:"type:varchar(256)"`
	Name       string `gorm:"type:varchar(128)"`
	Avatar     string `gorm:"type:varchar(512)"`
	// 0 未选择 1 客户 2 陪护者
	Role     uint8  `gorm:"type:tinyint unsigned;not null;default:0;index:idx_user_role"`
	Bio      string `gorm:"type:varchar(1024)"`
	Timezone string `gorm:"type:varchar(64)"`
	// JSON 数组, 便于 JSON_CONTAINS 过滤
	Languages   []string `gorm:"type:json;serializer:json"`
	Specialties []string `gorm:"type:json;serializer:json"`
	HourlyRate  int64
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}
