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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/robertobolla/talkme-sub001/internal/notification/internal/domain"
	"github.com/robertobolla/talkme-sub001/internal/notification/internal/repository/cache"
	"github.com/robertobolla/talkme-sub001/internal/notification/internal/repository/dao"
)

var ErrDuplicatedKey = dao.ErrDuplicatedKey

//go:generate mockgen -source=./notification.go -package=repomocks -destination=./mocks/notification.mock.go NotificationRepository
type NotificationRepository interface {
	Create(ctx context.Context, n domain.Notification) (int64, error)
	List(ctx context.Context, uid int64, unreadOnly bool, offset, limit int) ([]domain.Notification, error)
	Count(ctx context.Context, uid int64, unreadOnly bool) (int64, error)
	// UnreadCount 优先读缓存
	UnreadCount(ctx context.Context, uid int64) (int64, error)
	MarkRead(ctx context.Context, uid int64, ids []int64) (int64, error)
	MarkAllRead(ctx context.Context, uid int64) (int64, error)
}

type notificationRepository struct {
	dao    dao.NotificationDAO
	cache  cache.UnreadCache
	logger *elog.Component
}

func NewNotificationRepository(d dao.NotificationDAO, c cache.UnreadCache) NotificationRepository {
	return &notificationRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *notificationRepository) Create(ctx context.Context, n domain.Notification) (int64, error) {
	id, err := r.dao.Insert(ctx, r.toEntity(n))
	if err != nil {
		return 0, err
	}
	r.invalidate(ctx, n.Uid)
	return id, nil
}

func (r *notificationRepository) List(ctx context.Context, uid int64, unreadOnly bool, offset, limit int) ([]domain.Notification, error) {
	ns, err := r.dao.List(ctx, uid, unreadOnly, offset, limit)
	return slice.Map(ns, func(idx int, src dao.Notification) domain.Notification {
		return r.toDomain(src)
	}), err
}

func (r *notificationRepository) Count(ctx context.Context, uid int64, unreadOnly bool) (int64, error) {
	return r.dao.Count(ctx, uid, unreadOnly)
}

func (r *notificationRepository) UnreadCount(ctx context.Context, uid int64) (int64, error) {
	cnt, err := r.cache.GetUnread(ctx, uid)
	if err == nil {
		return cnt, nil
	}
	cnt, err = r.dao.Count(ctx, uid, true)
	if err != nil {
		return 0, err
	}
	if er := r.cache.SetUnread(ctx, uid, cnt); er != nil {
		r.logger.Error("set unread count cache failed", elog.FieldErr(er), elog.Int64("uid", uid))
	}
	return cnt, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, uid int64, ids []int64) (int64, error) {
	cnt, err := r.dao.MarkRead(ctx, uid, ids)
	if err != nil {
		return 0, err
	}
	if cnt > 0 {
		r.invalidate(ctx, uid)
	}
	return cnt, nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, uid int64) (int64, error) {
	cnt, err := r.dao.MarkAllRead(ctx, uid)
	if err != nil {
		return 0, err
	}
	if cnt > 0 {
		r.invalidate(ctx, uid)
	}
	return cnt, nil
}

func (r *notificationRepository) invalidate(ctx context.Context, uid int64) {
	if err := r.cache.DeleteUnread(ctx, uid); err != nil {
		r.logger.Error("delete unread count cache failed", elog.FieldErr(err), elog.Int64("uid", uid))
	}
}

func (r *notificationRepository) toEntity(n domain.Notification) dao.Notification {
	return dao.Notification{
		Id:      n.ID,
		Key:     n.Key,
		Uid:     n.Uid,
		Type:    n.Type,
		Title:   n.Title,
		Content: n.Content,
		Biz:     n.Biz,
		BizID:   n.BizID,
		Read:    n.Read,
	}
}

func (r *notificationRepository) toDomain(n dao.Notification) domain.Notification {
	return domain.Notification{
		ID:      n.Id,
		Key:     n.Key,
		Uid:     n.Uid,
		Type:    n.Type,
		Title:   n.Title,
		Content: n.Content,
		Biz:     n.Biz,
		BizID:   n.BizID,
		Read:    n.Read,
		Ctime:   time.UnixMilli(n.Ctime),
	}
}
