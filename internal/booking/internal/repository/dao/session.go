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
	"errors"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrSlotConflict 陪护者或者客户在该时间段已经有会话
	ErrSlotConflict      = errors.New("session time conflicts with an existing session")
	ErrInvalidTransition = errors.New("invalid status transition")
)

const (
	statusPending   uint8 = 1
	statusConfirmed uint8 = 2
)

// activeStatuses 用 []int 而不是 []uint8, 后者会被当成 []byte 处理
var activeStatuses = []int{int(statusPending), int(statusConfirmed)}

//go:generate mockgen -source=./session.go -package=daomocks -destination=./mocks/session.mock.go SessionDAO
type SessionDAO interface {
	// InsertExclusive 锁住双方重叠的有效会话后插入, 有重叠返回 ErrSlotConflict
	InsertExclusive(ctx context.Context, s Session) (int64, error)
	Insert(ctx context.Context, s Session) (int64, error)
	FindByID(ctx context.Context, id int64) (Session, error)
	FindByOfferID(ctx context.Context, offerID int64) (Session, error)
	UpdateStatus(ctx context.Context, id int64, from []uint8, to uint8, rejectReason string) error
	ListByClient(ctx context.Context, clientID int64, status uint8, offset, limit int) ([]Session, error)
	CountByClient(ctx context.Context, clientID int64, status uint8) (int64, error)
	ListByCompanion(ctx context.Context, companionID int64, status uint8, offset, limit int) ([]Session, error)
	CountByCompanion(ctx context.Context, companionID int64, status uint8) (int64, error)
	// FindBusy 陪护者在 [start, end) 内的有效会话
	FindBusy(ctx context.Context, companionID int64, start, end int64) ([]Session, error)
	FindPendingStarted(ctx context.Context, now int64, limit int) ([]Session, error)
	FindConfirmedEnded(ctx context.Context, before int64, limit int) ([]Session, error)
}

type GORMSessionDAO struct {
	db *egorm.Component
}

func NewGORMSessionDAO(db *egorm.Component) SessionDAO {
	return &GORMSessionDAO{db: db}
}

func (d *GORMSessionDAO) InsertExclusive(ctx context.Context, s Session) (int64, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var conflicts []Session
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("status IN ? AND start_at < ? AND end_at > ? AND (companion_id IN ? OR client_id IN ?)",
				activeStatuses, s.EndAt, s.StartAt,
				[]int64{s.CompanionID, s.ClientID}, []int64{s.CompanionID, s.ClientID}).
			Find(&conflicts).Error
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return ErrSlotConflict
		}
		return d.create(tx, &s)
	})
	return s.Id, err
}

func (d *GORMSessionDAO) Insert(ctx context.Context, s Session) (int64, error) {
	err := d.create(d.db.WithContext(ctx), &s)
	return s.Id, err
}

func (d *GORMSessionDAO) create(tx *gorm.DB, s *Session) error {
	now := time.Now().UnixMilli()
	s.Ctime, s.Utime = now, now
	return tx.Create(s).Error
}

func (d *GORMSessionDAO) FindByID(ctx context.Context, id int64) (Session, error) {
	var s Session
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	return s, err
}

func (d *GORMSessionDAO) FindByOfferID(ctx context.Context, offerID int64) (Session, error) {
	var s Session
	err := d.db.WithContext(ctx).
		Where("offer_id = ?", offerID).
		Order("id DESC").
		First(&s).Error
	return s, err
}

func (d *GORMSessionDAO) UpdateStatus(ctx context.Context, id int64, from []uint8, to uint8, rejectReason string) error {
	fields := map[string]any{
		"status": to,
		"utime":  time.Now().UnixMilli(),
	}
	if rejectReason != "" {
		fields["reject_reason"] = rejectReason
	}
	res := d.db.WithContext(ctx).Model(&Session{}).
		Where("id = ? AND status IN ?", id, slice.Map(from, func(idx int, src uint8) int { return int(src) })).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidTransition
	}
	return nil
}

func (d *GORMSessionDAO) ListByClient(ctx context.Context, clientID int64, status uint8, offset, limit int) ([]Session, error) {
	var res []Session
	err := d.userQuery(ctx, "client_id", clientID, status).
		Order("start_at DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *GORMSessionDAO) CountByClient(ctx context.Context, clientID int64, status uint8) (int64, error) {
	var res int64
	err := d.userQuery(ctx, "client_id", clientID, status).Count(&res).Error
	return res, err
}

func (d *GORMSessionDAO) ListByCompanion(ctx context.Context, companionID int64, status uint8, offset, limit int) ([]Session, error) {
	var res []Session
	err := d.userQuery(ctx, "companion_id", companionID, status).
		Order("start_at DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *GORMSessionDAO) CountByCompanion(ctx context.Context, companionID int64, status uint8) (int64, error) {
	var res int64
	err := d.userQuery(ctx, "companion_id", companionID, status).Count(&res).Error
	return res, err
}

func (d *GORMSessionDAO) userQuery(ctx context.Context, column string, uid int64, status uint8) *gorm.DB {
	query := d.db.WithContext(ctx).Model(&Session{}).Where(column+" = ?", uid)
	if status != 0 {
		query = query.Where("status = ?", status)
	}
	return query
}

func (d *GORMSessionDAO) FindBusy(ctx context.Context, companionID int64, start, end int64) ([]Session, error) {
	var res []Session
	err := d.db.WithContext(ctx).
		Where("companion_id = ? AND status IN ? AND start_at < ? AND end_at > ?",
			companionID, activeStatuses, end, start).
		Order("start_at ASC").
		Find(&res).Error
	return res, err
}

func (d *GORMSessionDAO) FindPendingStarted(ctx context.Context, now int64, limit int) ([]Session, error) {
	var res []Session
	err := d.db.WithContext(ctx).
		Where("status = ? AND start_at <= ?", statusPending, now).
		Order("id ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *GORMSessionDAO) FindConfirmedEnded(ctx context.Context, before int64, limit int) ([]Session, error) {
	var res []Session
	err := d.db.WithContext(ctx).
		Where("status = ? AND end_at <= ?", statusConfirmed, before).
		Order("id ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

type Session struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	SN          string `gorm:"type:varchar(64);not null;uniqueIndex:unq_session_sn"`
	ClientID    int64  `gorm:"not null;index:idx_session_client_start,priority:1"`
	CompanionID int64  `gorm:"not null;index:idx_session_companion_start,priority:1"`
	OfferID     int64  `gorm:"not null;default:0;index:idx_session_offer"`
	StartAt     int64  `gorm:"not null;index:idx_session_client_start,priority:2;index:idx_session_companion_start,priority:2"`
	EndAt       int64  `gorm:"not null"`
	// 单位为分
	Price  int64 `gorm:"not null"`
	LockID int64 `gorm:"not null;default:0"`
	// 1=待确认 2=已确认 3=已拒绝 4=已取消 5=已完成 6=已过期
	Status       uint8  `gorm:"type:tinyint unsigned;not null;index:idx_session_status_start"`
	Note         string `gorm:"type:varchar(1024)"`
	RejectReason string `gorm:"type:varchar(512)"`
	RoomName     string `gorm:"type:varchar(128)"`
	Ctime        int64
	Utime        int64
}

func (Session) TableName() string {
	return "booking_sessions"
}
