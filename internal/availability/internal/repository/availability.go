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
	"github.com/robertobolla/talkme-sub001/internal/availability/internal/domain"
	"github.com/robertobolla/talkme-sub001/internal/availability/internal/repository/cache"
	"github.com/robertobolla/talkme-sub001/internal/availability/internal/repository/dao"
)

//go:generate mockgen -source=./availability.go -package=repomocks -destination=./mocks/availability.mock.go AvailabilityRepository
type AvailabilityRepository interface {
	ReplaceWeekly(ctx context.Context, companionID int64, slots []domain.Slot) error
	FindWeekly(ctx context.Context, companionID int64) ([]domain.Slot, error)
}

type CachedAvailabilityRepository struct {
	dao    dao.SlotDAO
	cache  cache.SlotCache
	logger *elog.Component
}

func NewCachedAvailabilityRepository(d dao.SlotDAO, c cache.SlotCache) AvailabilityRepository {
	return &CachedAvailabilityRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *CachedAvailabilityRepository) ReplaceWeekly(ctx context.Context, companionID int64, slots []domain.Slot) error {
	err := r.dao.ReplaceWeekly(ctx, companionID, slice.Map(slots, func(idx int, src domain.Slot) dao.Slot {
		return r.toEntity(src)
	}))
	if err != nil {
		return err
	}
	return r.cache.Delete(ctx, companionID)
}

func (r *CachedAvailabilityRepository) FindWeekly(ctx context.Context, companionID int64) ([]domain.Slot, error) {
	res, err := r.cache.Get(ctx, companionID)
	if err == nil {
		return res, nil
	}
	slots, err := r.dao.FindByCompanionID(ctx, companionID)
	if err != nil {
		return nil, err
	}
	res = slice.Map(slots, func(idx int, src dao.Slot) domain.Slot {
		return r.toDomain(src)
	})
	if err = r.cache.Set(ctx, companionID, res); err != nil {
		r.logger.Warn("cache weekly slots failed", elog.Int64("companionID", companionID), elog.FieldErr(err))
	}
	return res, nil
}

func (r *CachedAvailabilityRepository) toEntity(s domain.Slot) dao.Slot {
	return dao.Slot{
		ID:          s.ID,
		CompanionID: s.CompanionID,
		Weekday:     uint8(s.Weekday),
		StartMinute: s.StartMinute,
		EndMinute:   s.EndMinute,
	}
}

func (r *CachedAvailabilityRepository) toDomain(s dao.Slot) domain.Slot {
	return domain.Slot{
		ID:          s.ID,
		CompanionID: s.CompanionID,
		Weekday:     time.Weekday(s.Weekday),
		StartMinute: s.StartMinute,
		EndMinute:   s.EndMinute,
	}
}
