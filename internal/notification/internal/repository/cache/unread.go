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

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
)

//go:generate mockgen -source=./unread.go -package=cachemocks -destination=./mocks/unread.mock.go UnreadCache
type UnreadCache interface {
	GetUnread(ctx context.Context, uid int64) (int64, error)
	SetUnread(ctx context.Context, uid int64, cnt int64) error
	DeleteUnread(ctx context.Context, uid int64) error
}

// UnreadECache 未读数量, 任何写操作之后直接删除
type UnreadECache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewUnreadECache(ec ecache.Cache) UnreadCache {
	return &UnreadECache{
		ec: &ecache.NamespaceCache{
			Namespace: "notification:",
			C:         ec,
		},
		expiration: 10 * time.Minute,
	}
}

func (u *UnreadECache) GetUnread(ctx context.Context, uid int64) (int64, error) {
	return u.ec.Get(ctx, u.key(uid)).AsInt64()
}

func (u *UnreadECache) SetUnread(ctx context.Context, uid int64, cnt int64) error {
	return u.ec.Set(ctx, u.key(uid), cnt, u.expiration)
}

func (u *UnreadECache) DeleteUnread(ctx context.Context, uid int64) error {
	_, err := u.ec.Delete(ctx, u.key(uid))
	return err
}

func (u *UnreadECache) key(uid int64) string {
	return fmt.Sprintf("unread:%d", uid)
}
