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
	"fmt"
	"time"

	"github.com/robertobolla/talkme-sub001/internal/availability/internal/domain"
	"github.com/robertobolla/talkme-sub001/internal/availability/internal/repository"
)

var ErrInvalidSlot = domain.ErrInvalidSlot

//go:generate mockgen -source=./service.go -package=availabilitymocks -destination=../../mocks/availability.mock.go Service
type Service interface {
	// SaveWeekly 整体替换陪护者的每周时间段
	SaveWeekly(ctx context.Context, companionID int64, slots []domain.Slot) error
	ListWeekly(ctx context.Context, companionID int64) ([]domain.Slot, error)
	// Covers 判断 [start, end) 是否在陪护者的某个时间段之内, tz 是陪护者的时区
	Covers(ctx context.Context, companionID int64, tz string, start, end time.Time) (bool, error)
	// Windows 生成 [from, to) 内可预约的窗口, busy 是已被占用的区间
	Windows(ctx context.Context, companionID int64, tz string, from, to time.Time, duration time.Duration, busy []domain.Window) ([]domain.Window, error)
}

type service struct {
	repo repository.AvailabilityRepository
	now  func() time.Time
}

func NewService(repo repository.AvailabilityRepository) Service {
	return &service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *service) SaveWeekly(ctx context.Context, companionID int64, slots []domain.Slot) error {
	if err := domain.ValidateWeekly(slots); err != nil {
		return err
	}
	return s.repo.ReplaceWeekly(ctx, companionID, domain.SortSlots(slots))
}

func (s *service) ListWeekly(ctx context.Context, companionID int64) ([]domain.Slot, error) {
	return s.repo.FindWeekly(ctx, companionID)
}

func (s *service) Covers(ctx context.Context, companionID int64, tz string, start, end time.Time) (bool, error) {
	loc, err := loadLocation(tz)
	if err != nil {
		return false, err
	}
	slots, err := s.repo.FindWeekly(ctx, companionID)
	if err != nil {
		return false, err
	}
	return domain.Covers(slots, loc, start, end), nil
}

func (s *service) Windows(ctx context.Context, companionID int64, tz string, from, to time.Time,
	duration time.Duration, busy []domain.Window) ([]domain.Window, error) {
	loc, err := loadLocation(tz)
	if err != nil {
		return nil, err
	}
	slots, err := s.repo.FindWeekly(ctx, companionID)
	if err != nil {
		return nil, err
	}
	return domain.Generate(slots, loc, from, to, duration, busy, s.now()), nil
}

func loadLocation(tz string) (*time.Location, error) {
	if tz == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", tz, err)
	}
	return loc, nil
}
