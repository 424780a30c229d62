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
	"database/sql"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound    = gorm.ErrRecordNotFound
	ErrInvalidTransition = errors.New("invalid payment status transition")
	// ErrDuplicatedTxHash 同一笔链上交易不能确认两笔支付
	ErrDuplicatedTxHash = errors.New("transaction hash already used")
)

const (
	typeDeposit    uint8 = 1
	statusPending  uint8 = 1
	uniqueConflict       = 1062
)

//go:generate mockgen -source=./payment.go -package=daomocks -destination=./mocks/payment.mock.go PaymentDAO
type PaymentDAO interface {
	Insert(ctx context.Context, p Payment) (int64, error)
	FindBySN(ctx context.Context, sn string) (Payment, error)
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Payment, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
	// UpdateStatus 只更新 pending 状态的支付, 没有更新到返回 ErrInvalidTransition
	UpdateStatus(ctx context.Context, sn string, to uint8, txHash string, paidAt int64) error
	FindExpiredDeposits(ctx context.Context, now int64, limit int) ([]Payment, error)
}

type PaymentGORMDAO struct {
	db *egorm.Component
}

func NewPaymentGORMDAO(db *egorm.Component) PaymentDAO {
	return &PaymentGORMDAO{db: db}
}

func (g *PaymentGORMDAO) Insert(ctx context.Context, p Payment) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := g.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (g *PaymentGORMDAO) FindBySN(ctx context.Context, sn string) (Payment, error) {
	var res Payment
	err := g.db.WithContext(ctx).Where("sn = ?", sn).First(&res).Error
	return res, err
}

func (g *PaymentGORMDAO) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Payment, error) {
	var res []Payment
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *PaymentGORMDAO) CountByUid(ctx context.Context, uid int64) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Payment{}).Where("uid = ?", uid).Count(&res).Error
	return res, err
}

func (g *PaymentGORMDAO) UpdateStatus(ctx context.Context, sn string, to uint8, txHash string, paidAt int64) error {
	fields := map[string]any{
		"status": to,
		"utime":  time.Now().UnixMilli(),
	}
	if txHash != "" {
		fields["tx_hash"] = sql.NullString{String: txHash, Valid: true}
	}
	if paidAt > 0 {
		fields["paid_at"] = paidAt
	}
	res := g.db.WithContext(ctx).Model(&Payment{}).
		Where("sn = ? AND status = ?", sn, statusPending).
		Updates(fields)
	if res.Error != nil {
		var me *mysql.MySQLError
		if errors.As(res.Error, &me) && me.Number == uniqueConflict {
			return ErrDuplicatedTxHash
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidTransition
	}
	return nil
}

func (g *PaymentGORMDAO) FindExpiredDeposits(ctx context.Context, now int64, limit int) ([]Payment, error) {
	var res []Payment
	err := g.db.WithContext(ctx).
		Where("type = ? AND status = ? AND expired_at <= ?", typeDeposit, statusPending, now).
		Order("id ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

type Payment struct {
	Id      int64  `gorm:"primaryKey;autoIncrement;comment:支付自增ID"`
	SN      string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_payment_sn;comment:支付序列号"`
	Uid     int64  `gorm:"not null;index:idx_payment_uid;comment:用户ID"`
	Type    uint8  `gorm:"type:tinyint unsigned;not null;index:idx_payment_type_status_expired,priority:1;comment:1=充值 2=提现"`
	Asset   string `gorm:"type:varchar(32);not null;comment:币种"`
	Network string `gorm:"type:varchar(32);not null;comment:链"`
	Amount  int64  `gorm:"not null;comment:金额, 单位为分"`
	Address string `gorm:"type:varchar(128);not null;comment:充值收款地址或者提现地址"`
	// 允许为 NULL, 唯一索引只约束已经确认的交易
	TxHash    sql.NullString `gorm:"type:varchar(128);uniqueIndex:uniq_payment_tx_hash;comment:链上交易哈希"`
	LockID    int64          `gorm:"not null;default:0;comment:提现时钱包预扣流水ID"`
	Status    uint8          `gorm:"type:tinyint unsigned;not null;default:1;index:idx_payment_type_status_expired,priority:2;comment:1=处理中 2=成功 3=失败 4=已过期"`
	ExpiredAt int64          `gorm:"not null;default:0;index:idx_payment_type_status_expired,priority:3;comment:充值过期时间"`
	PaidAt    int64          `gorm:"not null;default:0;comment:到账时间"`
	Ctime     int64
	Utime     int64
}
