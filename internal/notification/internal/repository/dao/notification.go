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

// ErrDuplicatedKey 同一个 key 的通知已经存在, 一般是消息重复投递
var ErrDuplicatedKey = errors.New("notification already exists")

const uniqueConflict = 1062

//go:generate mockgen -source=./notification.go -package=daomocks -destination=./mocks/notification.mock.go NotificationDAO
type NotificationDAO interface {
	Insert(ctx context.Context, n Notification) (int64, error)
	List(ctx context.Context, uid int64, unreadOnly bool, offset, limit int) ([]Notification, error)
	Count(ctx context.Context, uid int64, unreadOnly bool) (int64, error)
	// MarkRead 只会更新属于 uid 的通知, 返回更新的行数
	MarkRead(ctx context.Context, uid int64, ids []int64) (int64, error)
	MarkAllRead(ctx context.Context, uid int64) (int64, error)
}

type NotificationGORMDAO struct {
	db *egorm.Component
}

func NewNotificationGORMDAO(db *egorm.Component) NotificationDAO {
	return &NotificationGORMDAO{db: db}
}

func (g *NotificationGORMDAO) Insert(ctx context.Context, n Notification) (int64, error) {
	now := time.Now().UnixMilli()
	n.Ctime, n.Utime = now, now
	err := g.db.WithContext(ctx).Create(&n).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == uniqueConflict {
		return 0, ErrDuplicatedKey
	}
	return n.Id, err
}

func (g *NotificationGORMDAO) List(ctx context.Context, uid int64, unreadOnly bool, offset, limit int) ([]Notification, error) {
	var res []Notification
	err := g.where(ctx, uid, unreadOnly).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *NotificationGORMDAO) Count(ctx context.Context, uid int64, unreadOnly bool) (int64, error) {
	var res int64
	err := g.where(ctx, uid, unreadOnly).Count(&res).Error
	return res, err
}

func (g *NotificationGORMDAO) where(ctx context.Context, uid int64, unreadOnly bool) *gorm.DB {
	db := g.db.WithContext(ctx).Model(&Notification{}).Where("uid = ?", uid)
	if unreadOnly {
		db = db.Where("`read` = ?", false)
	}
	return db
}

func (g *NotificationGORMDAO) MarkRead(ctx context.Context, uid int64, ids []int64) (int64, error) {
	res := g.db.WithContext(ctx).Model(&Notification{}).
		Where("uid = ? AND id IN ? AND `read` = ?", uid, ids, false).
		Updates(map[string]any{
			"read":  true,
			"utime": time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (g *NotificationGORMDAO) MarkAllRead(ctx context.Context, uid int64) (int64, error) {
	res := g.db.WithContext(ctx).Model(&Notification{}).
		Where("uid = ? AND `read` = ?", uid, false).
		Updates(map[string]any{
			"read":  true,
			"utime": time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

type Notification struct {
	Id      int64  `gorm:"primaryKey;autoIncrement;comment:通知自增ID"`
	Key     string `gorm:"type:varchar(191);not null;uniqueIndex:uniq_notification_key;comment:业务唯一键, 用于消息去重"`
	Uid     int64  `gorm:"not null;index:idx_notification_uid_read,priority:1;comment:接收人ID"`
	Type    string `gorm:"type:varchar(32);not null;comment:事件动作"`
	Title   string `gorm:"type:varchar(255);not null;comment:标题"`
	Content string `gorm:"type:varchar(1024);not null;comment:内容"`
	Biz     string `gorm:"type:varchar(32);not null;comment:业务类型 offer, session, payment"`
	BizID   int64  `gorm:"not null;default:0;comment:业务ID"`
	Read    bool   `gorm:"not null;default:false;index:idx_notification_uid_read,priority:2;comment:是否已读"`
	Ctime   int64
	Utime   int64
}
