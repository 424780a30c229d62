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

	"github.com/ecodeclub/ekit/slice"
	"github.com/robertobolla/talkme-sub001/internal/booking/internal/domain"
	"github.com/robertobolla/talkme-sub001/internal/booking/internal/repository/dao"
)

var (
	ErrRecordNotFound    = dao.ErrRecordNotFound
	ErrSlotConflict      = dao.ErrSlotConflict
	ErrInvalidTransition = dao.ErrInvalidTransition
)

//go:generate mockgen -source=./session.go -package=repomocks -destination=./mocks/session.mock.go SessionRepository
type SessionRepository interface {
	CreateExclusive(ctx context.Context, s domain.Session) (int64, error)
	Create(ctx context.Context, s domain.Session) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Session, error)
	FindByOfferID(ctx context.Context, offerID int64) (domain.Session, error)
	UpdateStatus(ctx context.Context, id int64, from []domain.SessionStatus, to domain.SessionStatus) error
	Reject(ctx context.Context, id int64, reason string) error
	List(ctx context.Context, uid int64, p domain.Perspective, status domain.SessionStatus, offset, limit int) ([]domain.Session, error)
	Count(ctx context.Context, uid int64, p domain.Perspective, status domain.SessionStatus) (int64, error)
	FindBusy(ctx context.Context, companionID int64, start, end int64) ([]domain.Session, error)
	FindPendingStarted(ctx context.Context, now int64, limit int) ([]domain.Session, error)
	FindConfirmedEnded(ctx context.Context, before int64, limit int) ([]domain.Session, error)
}

type sessionRepository struct {
	dao dao.SessionDAO
}

func NewSessionRepository(d dao.SessionDAO) SessionRepository {
	return &sessionRepository{dao: d}
}

func (r *sessionRepository) CreateExclusive(ctx context.Context, s domain.Session) (int64, error) {
	return r.dao.InsertExclusive(ctx, r.toEntity(s))
}

func (r *sessionRepository) Create(ctx context.Context, s domain.Session) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(s))
}

func (r *sessionRepository) FindByID(ctx context.Context, id int64) (domain.Session, error) {
	s, err := r.dao.FindByID(ctx, id)
	return r.toDomain(s), err
}

func (r *sessionRepository) FindByOfferID(ctx context.Context, offerID int64) (domain.Session, error) {
	s, err := r.dao.FindByOfferID(ctx, offerID)
	return r.toDomain(s), err
}

func (r *sessionRepository) UpdateStatus(ctx context.Context, id int64, from []domain.SessionStatus, to domain.SessionStatus) error {
	return r.dao.UpdateStatus(ctx, id, slice.Map(from, func(idx int, src domain.SessionStatus) uint8 {
		return src.ToUint8()
	}), to.ToUint8(), "")
}

func (r *sessionRepository) Reject(ctx context.Context, id int64, reason string) error {
	return r.dao.UpdateStatus(ctx, id,
		[]uint8{domain.SessionStatusPending.ToUint8()},
		domain.SessionStatusRejected.ToUint8(), reason)
}

func (r *sessionRepository) List(ctx context.Context, uid int64, p domain.Perspective, status domain.SessionStatus, offset, limit int) ([]domain.Session, error) {
	var (
		ss  []dao.Session
		err error
	)
	if p == domain.PerspectiveCompanion {
		ss, err = r.dao.ListByCompanion(ctx, uid, status.ToUint8(), offset, limit)
	} else {
		ss, err = r.dao.ListByClient(ctx, uid, status.ToUint8(), offset, limit)
	}
	return r.toDomains(ss), err
}

func (r *sessionRepository) Count(ctx context.Context, uid int64, p domain.Perspective, status domain.SessionStatus) (int64, error) {
	if p == domain.PerspectiveCompanion {
		return r.dao.CountByCompanion(ctx, uid, status.ToUint8())
	}
	return r.dao.CountByClient(ctx, uid, status.ToUint8())
}

func (r *sessionRepository) FindBusy(ctx context.Context, companionID int64, start, end int64) ([]domain.Session, error) {
	ss, err := r.dao.FindBusy(ctx, companionID, start, end)
	return r.toDomains(ss), err
}

func (r *sessionRepository) FindPendingStarted(ctx context.Context, now int64, limit int) ([]domain.Session, error) {
	ss, err := r.dao.FindPendingStarted(ctx, now, limit)
	return r.toDomains(ss), err
}

func (r *sessionRepository) FindConfirmedEnded(ctx context.Context, before int64, limit int) ([]domain.Session, error) {
	ss, err := r.dao.FindConfirmedEnded(ctx, before, limit)
	return r.toDomains(ss), err
}

func (r *sessionRepository) toEntity(s domain.Session) dao.Session {
	return dao.Session{
		Id:           s.ID,
		SN:           s.SN,
		ClientID:     s.ClientID,
		CompanionID:  s.CompanionID,
		OfferID:      s.OfferID,
		StartAt:      s.StartAt,
		EndAt:        s.EndAt,
		Price:        s.Price,
		LockID:       s.LockID,
		Status:       s.Status.ToUint8(),
		Note:         s.Note,
		RejectReason: s.RejectReason,
		RoomName:     s.RoomName,
	}
}

func (r *sessionRepository) toDomain(s dao.Session) domain.Session {
	return domain.Session{
		ID:           s.Id,
		SN:           s.SN,
		ClientID:     s.ClientID,
		CompanionID:  s.CompanionID,
		OfferID:      s.OfferID,
		StartAt:      s.StartAt,
		EndAt:        s.EndAt,
		Price:        s.Price,
		LockID:       s.LockID,
		Status:       domain.SessionStatus(s.Status),
		Note:         s.Note,
		RejectReason: s.RejectReason,
		RoomName:     s.RoomName,
		Ctime:        s.Ctime,
		Utime:        s.Utime,
	}
}

func (r *sessionRepository) toDomains(ss []dao.Session) []domain.Session {
	return slice.Map(ss, func(idx int, src dao.Session) domain.Session {
		return r.toDomain(src)
	})
}
