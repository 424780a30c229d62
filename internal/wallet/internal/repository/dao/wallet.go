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
	"fmt"
	"strings"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound            = gorm.ErrRecordNotFound
	ErrDuplicatedWalletLog       = errors.New("duplicated wallet log")
	ErrInsufficientFunds         = errors.New("insufficient funds")
	ErrRecordChangedConcurrently = errors.New("record changed concurrently")
	ErrInvalidLockStatus         = errors.New("wallet lock in invalid status")
)

const (
	WalletLogStatusActive    uint8 = 1
	WalletLogStatusLocked    uint8 = 2
	WalletLogStatusCancelled uint8 = 3
)

const (
	uniqueConflictsErrNo uint16 = 1062
	walletLogKeyIndex           = "unq_wallet_log_key"
	walletUIDIndex              = "unq_wallet_uid"
)

type WalletDAO interface {
	FindWalletByUID(ctx context.Context, uid int64) (Wallet, error)
	FindLogsByUID(ctx context.Context, uid int64, offset, limit int) ([]WalletLog, error)
	CountLogsByUID(ctx context.Context, uid int64) (int64, error)
	// Upsert 入账, 钱包不存在时创建
	Upsert(ctx context.Context, uid, amount int64, l WalletLog) (int64, error)
	CreateLockLog(ctx context.Context, l WalletLog) (int64, error)
	ConfirmLockLog(ctx context.Context, uid, lockID, payeeID int64) error
	CancelLockLog(ctx context.Context, uid, lockID int64) error
}

type walletDAO struct {
	db *egorm.Component
}

func NewWalletGORMDAO(db *egorm.Component) WalletDAO {
	return &walletDAO{db: db}
}

func (d *walletDAO) FindWalletByUID(ctx context.Context, uid int64) (Wallet, error) {
	var res Wallet
	err := d.db.WithContext(ctx).Where("uid = ?", uid).First(&res).Error
	return res, err
}

func (d *walletDAO) FindLogsByUID(ctx context.Context, uid int64, offset, limit int) ([]WalletLog, error) {
	var res []WalletLog
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *walletDAO) CountLogsByUID(ctx context.Context, uid int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&WalletLog{}).Where("uid = ?", uid).Count(&res).Error
	return res, err
}

func (d *walletDAO) Upsert(ctx context.Context, uid, amount int64, l WalletLog) (int64, error) {
	var id int64
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		id, err = d.credit(tx, uid, amount, l)
		return err
	})
	return id, d.convertDuplicated(err)
}

// credit 给 uid 的钱包入账并写一条已生效流水
func (d *walletDAO) credit(tx *gorm.DB, uid, amount int64, l WalletLog) (int64, error) {
	now := time.Now().UnixMilli()
	var w Wallet
	err := tx.Where("uid = ?", uid).First(&w).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		w = Wallet{Uid: uid, Balance: amount, Version: 1, Ctime: now, Utime: now}
		if err = tx.Create(&w).Error; err != nil {
			return 0, err
		}
	case err != nil:
		return 0, err
	default:
		// 已有钱包, 基于版本号更新余额
		balance := w.Balance + amount
		if err = d.updateWallet(tx, w, balance, w.Locked, now); err != nil {
			return 0, err
		}
		w.Balance = balance
	}
	l.Uid = uid
	l.Change = amount
	l.Balance = w.Balance
	l.Status = WalletLogStatusActive
	l.Ctime, l.Utime = now, now
	if err := tx.Create(&l).Error; err != nil {
		return 0, err
	}
	return l.Id, nil
}

func (d *walletDAO) updateWallet(tx *gorm.DB, w Wallet, balance, locked, now int64) error {
	res := tx.Model(&Wallet{}).
		Where("uid = ? AND version = ?", w.Uid, w.Version).
		Updates(map[string]any{
			"balance": balance,
			"locked":  locked,
			"version": w.Version + 1,
			"utime":   now,
		})
	if res.Error != nil {
		return fmt.Errorf("update wallet failed: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: uid %d", ErrRecordChangedConcurrently, w.Uid)
	}
	return nil
}

func (d *walletDAO) CreateLockLog(ctx context.Context, l WalletLog) (int64, error) {
	var id int64
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing WalletLog
		err := tx.Where("`key` = ?", l.Key).First(&existing).Error
		if err == nil {
			// 同一个 key 重复预扣, 仍处于预扣中视为成功
			if existing.Uid == l.Uid && existing.Status == WalletLogStatusLocked {
				id = existing.Id
				return nil
			}
			return ErrDuplicatedWalletLog
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		amount := -l.Change
		var w Wallet
		err = tx.Where("uid = ?", l.Uid).First(&w).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: uid %d has no wallet", ErrInsufficientFunds, l.Uid)
		}
		if err != nil {
			return err
		}
		if w.Balance-w.Locked < amount {
			return fmt.Errorf("%w: available %d, need %d", ErrInsufficientFunds, w.Balance-w.Locked, amount)
		}
		now := time.Now().UnixMilli()
		if err = d.updateWallet(tx, w, w.Balance, w.Locked+amount, now); err != nil {
			return err
		}
		l.Balance = w.Balance
		l.Status = WalletLogStatusLocked
		l.Ctime, l.Utime = now, now
		if err = tx.Create(&l).Error; err != nil {
			return err
		}
		id = l.Id
		return nil
	})
	return id, d.convertDuplicated(err)
}

func (d *walletDAO) findLockLog(tx *gorm.DB, uid, lockID int64) (WalletLog, error) {
	var l WalletLog
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND uid = ?", lockID, uid).
		First(&l).Error
	return l, err
}

func (d *walletDAO) ConfirmLockLog(ctx context.Context, uid, lockID, payeeID int64) error {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		l, err := d.findLockLog(tx, uid, lockID)
		if err != nil {
			return err
		}
		switch l.Status {
		case WalletLogStatusActive:
			return nil
		case WalletLogStatusLocked:
		default:
			return fmt.Errorf("%w: lock %d status %d", ErrInvalidLockStatus, lockID, l.Status)
		}

		amount := -l.Change
		var w Wallet
		if err = tx.Where("uid = ?", uid).First(&w).Error; err != nil {
			return err
		}
		now := time.Now().UnixMilli()
		balance := w.Balance - amount
		if err = d.updateWallet(tx, w, balance, w.Locked-amount, now); err != nil {
			return err
		}
		if err = tx.Model(&WalletLog{}).
			Where("id = ? AND status = ?", lockID, WalletLogStatusLocked).
			Updates(map[string]any{
				"status":  WalletLogStatusActive,
				"balance": balance,
				"utime":   now,
			}).Error; err != nil {
			return err
		}
		if payeeID == 0 {
			return nil
		}
		_, err = d.credit(tx, payeeID, amount, WalletLog{
			Key:   fmt.Sprintf("payout:%d", lockID),
			Biz:   l.Biz,
			BizId: l.BizId,
			Desc:  l.Desc,
		})
		return err
	})
	return d.convertDuplicated(err)
}

func (d *walletDAO) CancelLockLog(ctx context.Context, uid, lockID int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		l, err := d.findLockLog(tx, uid, lockID)
		if err != nil {
			return err
		}
		switch l.Status {
		case WalletLogStatusCancelled:
			return nil
		case WalletLogStatusLocked:
		default:
			return fmt.Errorf("%w: lock %d status %d", ErrInvalidLockStatus, lockID, l.Status)
		}

		var w Wallet
		if err = tx.Where("uid = ?", uid).First(&w).Error; err != nil {
			return err
		}
		now := time.Now().UnixMilli()
		if err = d.updateWallet(tx, w, w.Balance, w.Locked+l.Change, now); err != nil {
			return err
		}
		return tx.Model(&WalletLog{}).
			Where("id = ? AND status = ?", lockID, WalletLogStatusLocked).
			Updates(map[string]any{
				"status": WalletLogStatusCancelled,
				"utime":  now,
			}).Error
	})
}

// convertDuplicated 流水幂等键冲突是重复请求, 钱包 uid 冲突是并发创建了同一个钱包, 可以重试
func (d *walletDAO) convertDuplicated(err error) error {
	var me *mysql.MySQLError
	if !errors.As(err, &me) || me.Number != uniqueConflictsErrNo {
		return err
	}
	switch {
	case strings.Contains(me.Message, walletLogKeyIndex):
		return fmt.Errorf("%w: %w", ErrDuplicatedWalletLog, err)
	case strings.Contains(me.Message, walletUIDIndex):
		return fmt.Errorf("%w: %w", ErrRecordChangedConcurrently, err)
	default:
		return err
	}
}

type Wallet struct {
	Id      int64 `gorm:"primaryKey;autoIncrement;comment:钱包自增ID"`
	Uid     int64 `gorm:"not null;uniqueIndex:unq_wallet_uid;comment:用户ID"`
	Balance int64 `gorm:"not null;default:0;comment:余额,单位分"`
	Locked  int64 `gorm:"not null;default:0;comment:预扣中的金额,单位分"`
	Version int64 `gorm:"not null;default:1;comment:版本号"`
	Ctime   int64
	Utime   int64
}

type WalletLog struct {
	Id      int64  `gorm:"primaryKey;autoIncrement;comment:钱包流水自增ID"`
	Key     string `gorm:"type:varchar(128);not null;uniqueIndex:unq_wallet_log_key;comment:幂等键"`
	Uid     int64  `gorm:"not null;index:idx_wallet_log_uid;comment:用户ID"`
	Biz     string `gorm:"type:varchar(64);not null;default:'';comment:业务类型"`
	BizId   int64  `gorm:"not null;default:0;comment:业务ID"`
	Change  int64  `gorm:"not null;comment:变动金额,正数入账,负数扣减"`
	Balance int64  `gorm:"not null;comment:变动后的余额"`
	Status  uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:流水状态 1=已生效 2=预扣中 3=已取消"`
	Desc    string `gorm:"type:varchar(255);not null;default:'';comment:流水描述"`
	Ctime   int64
	Utime   int64
}
