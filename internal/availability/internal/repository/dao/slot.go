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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./slot.go -package=daomocks -destination=./mocks/slot.mock.go SlotDAO
type SlotDAO interface {
	// ReplaceWeekly 删除旧的时间段并写入新的, 在一个事务里完成
	ReplaceWeekly(ctx context.Context, companionID int64, slots []Slot) error
	FindByCompanionID(ctx context.Context, companionID int64) ([]Slot, error)
}

type GORMSlotDAO struct {
	db *egorm.Component
}

func NewGORMSlotDAO(db *egorm.Component) SlotDAO {
	return &GORMSlotDAO{db: db}
}

func (d *GORMSlotDAO) ReplaceWeekly(ctx context.Context, companionID int64, slots []Slot) error {
	now := time.Now().UnixMilli()
	for i := range slots {
		slots[i].CompanionID = companionID
		slots[i].Ctime = now
		slots[i].Utime = now
	}
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("companion_id = ?", companionID).Delete(&Slot{}).Error
		if err != nil {
			return err
		}
		if len(slots) == 0 {
			return nil
		}
		return tx.Create(&slots).Error
	})
}

func (d *GORMSlotDAO) FindByCompanionID(ctx context.Context, companionID int64) ([]Slot, error) {
	var res []Slot
	err := d.db.WithContext(ctx).
		Where("companion_id = ?", companionID).
		Order("weekday ASC, start_minute ASC").
		Find(&res).Error
	return res, err
}

type Slot struct {
	ID          int64 `gorm:"primaryKey,autoIncrement"`
	CompanionID int64 `gorm:"not null;index:idx_slot_companion_weekday,priority:1"`
	// 0 是周日
	Weekday     uint8 `gorm:"type:tinyint unsigned;not null;index:idx_slot_companion_weekday,priority:2"`
	StartMinute int   `gorm:"not null"`
	EndMinute   int   `gorm:"not null"`
	Ctime       int64
	Utime       int64
}

func (Slot) TableName() string {
	return "availability_slots"
}
