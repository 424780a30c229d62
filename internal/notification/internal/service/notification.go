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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gotomicro/ego/core/elog"
	"github.com/robertobolla/talkme-sub001/internal/notification/internal/domain"
	"github.com/robertobolla/talkme-sub001/internal/notification/internal/repository"
	"golang.org/x/sync/errgroup"
)

const (
	maxTitleBytes   = 255
	maxContentBytes = 1024
)

//go:generate mockgen -source=./notification.go -package=svcmocks -destination=./mocks/notification.mock.go Service
type Service interface {
	// Notify 逐条写入, 已经存在的 key 直接跳过
	Notify(ctx context.Context, ns ...domain.Notification) error
	List(ctx context.Context, uid int64, unreadOnly bool, offset, limit int) ([]domain.Notification, int64, error)
	UnreadCount(ctx context.Context, uid int64) (int64, error)
	// MarkRead 返回实际标记的数量, 不属于 uid 的通知会被忽略
	MarkRead(ctx context.Context, uid int64, ids []int64) (int64, error)
	MarkAllRead(ctx context.Context, uid int64) (int64, error)
}

type service struct {
	repo   repository.NotificationRepository
	logger *elog.Component
}

func NewService(repo repository.NotificationRepository) Service {
	return &service{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (s *service) Notify(ctx context.Context, ns ...domain.Notification) error {
	for _, n := range ns {
		if n.Uid <= 0 {
			continue
		}
		n.Title = truncate(n.Title, maxTitleBytes)
		n.Content = truncate(n.Content, maxContentBytes)
		_, err := s.repo.Create(ctx, n)
		if errors.Is(err, repository.ErrDuplicatedKey) {
			s.logger.Warn("notification already exists", elog.String("key", n.Key))
			continue
		}
		if err != nil {
			return fmt.Errorf("create notification failed: key %s: %w", n.Key, err)
		}
	}
	return nil
}

func (s *service) List(ctx context.Context, uid int64, unreadOnly bool, offset, limit int) ([]domain.Notification, int64, error) {
	var (
		eg    errgroup.Group
		ns    []domain.Notification
		total int64
	)
	eg.Go(func() error {
		var err error
		ns, err = s.repo.List(ctx, uid, unreadOnly, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, uid, unreadOnly)
		return err
	})
	return ns, total, eg.Wait()
}

func (s *service) UnreadCount(ctx context.Context, uid int64) (int64, error) {
	return s.repo.UnreadCount(ctx, uid)
}

func (s *service) MarkRead(ctx context.Context, uid int64, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return s.repo.MarkRead(ctx, uid, ids)
}

func (s *service) MarkAllRead(ctx context.Context, uid int64) (int64, error) {
	return s.repo.MarkAllRead(ctx, uid)
}
