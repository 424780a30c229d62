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
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
	"github.com/robertobolla/talkme-sub001/internal/availability/internal/domain"
)

//go:generate mockgen -source=./slot.go -package=cachemocks -destination=./mocks/slot.mock.go SlotCache
type SlotCache interface {
	Get(ctx context.Context, companionID int64) ([]domain.Slot, error)
	Set(ctx context.Context, companionID int64, slots []domain.Slot) error
	Delete(ctx context.Context, companionID int64) error
}

// SlotECache 每周时间段读多写少, 预约页面会反复读取
type SlotECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

func NewSlotECache(c ecache.Cache) SlotCache {
	return &SlotECache{
		cache: &ecache.NamespaceCache{
			Namespace: "availability:",
			C:         c,
		},
		expiration: time.Hour,
	}
}

func (s *SlotECache) Get(ctx context.Context, companionID int64) ([]domain.Slot, error) {
	var res []domain.Slot
	err := s.cache.Get(ctx, s.key(companionID)).JSONScan(&res)
	return res, err
}

func (s *SlotECache) Set(ctx context.Context, companionID int64, slots []domain.Slot) error {
	data, err := json.Marshal(slots)
	if err != nil {
		return errors.Wrapf(err, "marshal weekly slots of companion %d failed", companionID)
	}
	return s.cache.Set(ctx, s.key(companionID), data, s.expiration)
}

func (s *SlotECache) Delete(ctx context.Context, companionID int64) error {
	_, err := s.cache.Delete(ctx, s.key(companionID))
	return err
}

func (s *SlotECache) key(companionID int64) string {
	return fmt.Sprintf("weekly:%d", companionID)
}
