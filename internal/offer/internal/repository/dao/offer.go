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

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	ErrAlreadyApplied = errors.New("companion already applied to this offer")
	// ErrInvalidTransition 状态已经被别人改掉了, 或者本来就不允许这次流转
	ErrInvalidTransition = errors.New("invalid status transition")
)

const (
	offerStatusPublished uint8 = 1
	offerStatusAccepted  uint8 = 2

	applicantStatusPending  uint8 = 1
	applicantStatusAccepted uint8 = 2
	applicantStatusRejected uint8 = 3
)

//go:generate mockgen -source=./offer.go -package=daomocks -destination=./mocks/offer.mock.go OfferDAO
type OfferDAO interface {
	Create(ctx context.Context, o Offer) (int64, error)
	FindByID(ctx context.Context, id int64) (Offer, error)
	ListPublished(ctx context.Context, specialty string, now int64, offset, limit int) ([]Offer, error)
	CountPublished(ctx context.Context, specialty string, now int64) (int64, error)
	ListByClient(ctx context.Context, clientID int64, status uint8, offset, limit int) ([]Offer, error)
	CountByClient(ctx context.Context, clientID int64, status uint8) (int64, error)
	// UpdateStatus CAS 更新, 只有当前状态是 from 时才会更新
	UpdateStatus(ctx context.Context, id int64, from, to uint8) error
	// Accept 在一个事务里接受一个申请者并拒绝其他待处理的申请者
	Accept(ctx context.Context, offerID, applicantID, companionID, lockID int64) error
	// Close 关闭需求, 同时拒绝所有待处理的申请者
	Close(ctx context.Context, id int64, from, to uint8) error
	FindExpired(ctx context.Context, now int64, limit int) ([]Offer, error)

	CreateApplicant(ctx context.Context, a Applicant) (int64, error)
	FindApplicantByID(ctx context.Context, id int64) (Applicant, error)
	ListApplicantsByOffer(ctx context.Context, offerID int64) ([]Applicant, error)
	ListApplicationsByCompanion(ctx context.Context, companionID int64, offset, limit int) ([]Applicant, error)
	CountApplicationsByCompanion(ctx context.Context, companionID int64) (int64, error)
	UpdateApplicantStatus(ctx context.Context, id int64, from, to uint8) error
}

type GORMOfferDAO struct {
	db *egorm.Component
}

func NewGORMOfferDAO(db *egorm.Component) OfferDAO {
	return &GORMOfferDAO{db: db}
}

func (d *GORMOfferDAO) Create(ctx context.Context, o Offer) (int64, error) {
	now := time.Now().UnixMilli()
	o.Ctime, o.Utime = now, now
	err := d.db.WithContext(ctx).Create(&o).Error
	return o.Id, err
}

func (d *GORMOfferDAO) FindByID(ctx context.Context, id int64) (Offer, error) {
	var o Offer
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	return o, err
}

func (d *GORMOfferDAO) ListPublished(ctx context.Context, specialty string, now int64, offset, limit int) ([]Offer, error) {
	var res []Offer
	err := d.publishedQuery(ctx, specialty, now).
		Order("start_at ASC, id ASC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *GORMOfferDAO) CountPublished(ctx context.Context, specialty string, now int64) (int64, error) {
	var res int64
	err := d.publishedQuery(ctx, specialty, now).Count(&res).Error
	return res, err
}

func (d *GORMOfferDAO) publishedQuery(ctx context.Context, specialty string, now int64) *gorm.DB {
	db := d.db.WithContext(ctx).Model(&Offer{}).
		Where("status = ? AND start_at > ?", offerStatusPublished, now)
	if specialty != "" {
		db = db.Where("specialty = ?", specialty)
	}
	return db
}

func (d *GORMOfferDAO) ListByClient(ctx context.Context, clientID int64, status uint8, offset, limit int) ([]Offer, error) {
	var res []Offer
	err := d.clientQuery(ctx, clientID, status).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *GORMOfferDAO) CountByClient(ctx context.Context, clientID int64, status uint8) (int64, error) {
	var res int64
	err := d.clientQuery(ctx, clientID, status).Count(&res).Error
	return res, err
}

func (d *GORMOfferDAO) clientQuery(ctx context.Context, clientID int64, status uint8) *gorm.DB {
	db := d.db.WithContext(ctx).Model(&Offer{}).Where("client_id = ?", clientID)
	if status != 0 {
		db = db.Where("status = ?", status)
	}
	return db
}

func (d *GORMOfferDAO) UpdateStatus(ctx context.Context, id int64, from, to uint8) error {
	return d.updateStatus(d.db.WithContext(ctx), id, from, to)
}

func (d *GORMOfferDAO) updateStatus(tx *gorm.DB, id int64, from, to uint8) error {
	res := tx.Model(&Offer{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status": to,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidTransition
	}
	return nil
}

func (d *GORMOfferDAO) Accept(ctx context.Context, offerID, applicantID, companionID, lockID int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		res := tx.Model(&Offer{}).
			Where("id = ? AND status = ?", offerID, offerStatusPublished).
			Updates(map[string]any{
				"status":       offerStatusAccepted,
				"companion_id": companionID,
				"lock_id":      lockID,
				"utime":        now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidTransition
		}
		res = tx.Model(&Applicant{}).
			Where("id = ? AND offer_id = ? AND status = ?", applicantID, offerID, applicantStatusPending).
			Updates(map[string]any{
				"status": applicantStatusAccepted,
				"utime":  now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidTransition
		}
		return d.rejectPending(tx, offerID, now)
	})
}

func (d *GORMOfferDAO) Close(ctx context.Context, id int64, from, to uint8) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := d.updateStatus(tx, id, from, to)
		if err != nil {
			return err
		}
		return d.rejectPending(tx, id, time.Now().UnixMilli())
	})
}

func (d *GORMOfferDAO) rejectPending(tx *gorm.DB, offerID, now int64) error {
	return tx.Model(&Applicant{}).
		Where("offer_id = ? AND status = ?", offerID, applicantStatusPending).
		Updates(map[string]any{
			"status": applicantStatusRejected,
			"utime":  now,
		}).Error
}

func (d *GORMOfferDAO) FindExpired(ctx context.Context, now int64, limit int) ([]Offer, error) {
	var res []Offer
	err := d.db.WithContext(ctx).
		Where("status = ? AND start_at <= ?", offerStatusPublished, now).
		Order("id ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *GORMOfferDAO) CreateApplicant(ctx context.Context, a Applicant) (int64, error) {
	now := time.Now().UnixMilli()
	a.Ctime, a.Utime = now, now
	err := d.db.WithContext(ctx).Create(&a).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrAlreadyApplied
		}
	}
	return a.Id, err
}

func (d *GORMOfferDAO) FindApplicantByID(ctx context.Context, id int64) (Applicant, error) {
	var a Applicant
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	return a, err
}

func (d *GORMOfferDAO) ListApplicantsByOffer(ctx context.Context, offerID int64) ([]Applicant, error) {
	var res []Applicant
	err := d.db.WithContext(ctx).
		Where("offer_id = ?", offerID).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (d *GORMOfferDAO) ListApplicationsByCompanion(ctx context.Context, companionID int64, offset, limit int) ([]Applicant, error) {
	var res []Applicant
	err := d.db.WithContext(ctx).
		Where("companion_id = ?", companionID).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *GORMOfferDAO) CountApplicationsByCompanion(ctx context.Context, companionID int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Applicant{}).
		Where("companion_id = ?", companionID).
		Count(&res).Error
	return res, err
}

func (d *GORMOfferDAO) UpdateApplicantStatus(ctx context.Context, id int64, from, to uint8) error {
	res := d.db.WithContext(ctx).Model(&Applicant{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status": to,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidTransition
	}
	return nil
}

type Offer struct {
	Id              int64  `gorm:"primaryKey,autoIncrement"`
	SN              string `gorm:"type:varchar(64);not null;uniqueIndex:unq_offer_sn"`
	ClientID        int64  `gorm:"not null;index:idx_offer_client_status,priority:1"`
	CompanionID     int64  `gorm:"not null;default:0"`
	Title           string `gorm:"type:varchar(256);not null"`
	Description     string `gorm:"type:text"`
	Specialty       string `gorm:"type:varchar(64);index:idx_offer_specialty"`
	StartAt         int64  `gorm:"not null;index:idx_offer_status_start,priority:2"`
	DurationMinutes int    `gorm:"not null"`
	// 单位为分
	Budget int64 `gorm:"not null"`
	// 1=已发布 2=已接单 3=已取消 4=已完成 5=已过期
	Status uint8 `gorm:"type:tinyint unsigned;not null;index:idx_offer_client_status,priority:2;index:idx_offer_status_start,priority:1"`
	LockID int64 `gorm:"not null;default:0"`
	Ctime  int64
	Utime  int64
}

type Applicant struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	OfferID     int64  `gorm:"not null;uniqueIndex:unq_applicant_offer_companion,priority:1"`
	CompanionID int64  `gorm:"not null;uniqueIndex:unq_applicant_offer_companion,priority:2;index:idx_applicant_companion"`
	Message     string `gorm:"type:varchar(1024)"`
	// 1=待处理 2=已接受 3=已拒绝 4=已撤回
	Status uint8 `gorm:"type:tinyint unsigned;not null"`
	Ctime  int64
	Utime  int64
}

func (Applicant) TableName() string {
	return "offer_applicants"
}
