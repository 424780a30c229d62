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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/robertobolla/talkme-sub001/internal/availability"
	"github.com/robertobolla/talkme-sub001/internal/booking/internal/domain"
	"github.com/robertobolla/talkme-sub001/internal/booking/internal/event"
	"github.com/robertobolla/talkme-sub001/internal/booking/internal/repository"
	"github.com/robertobolla/talkme-sub001/internal/pkg/sequencenumber"
	"github.com/robertobolla/talkme-sub001/internal/user"
	"github.com/robertobolla/talkme-sub001/internal/wallet"
	"golang.org/x/sync/errgroup"
)

const maxSlotDays = 31

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrSlotConflict        = repository.ErrSlotConflict
	ErrInvalidTransition   = repository.ErrInvalidTransition
	ErrInvalidBooking      = errors.New("invalid booking")
	ErrOutsideAvailability = errors.New("requested time is outside the companion's availability")
	ErrCompanionNotFound   = user.ErrCompanionNotFound
	ErrPermissionDenied    = errors.New("permission denied")
	ErrTooLate             = errors.New("session has already started")
	ErrTooEarly            = errors.New("session has not started yet")
	ErrRoomUnavailable     = errors.New("room is not open")
	ErrInsufficientFunds   = wallet.ErrInsufficientFunds
)

//go:generate mockgen -source=./session.go -package=svcmocks -destination=./mocks/session.mock.go Service
type Service interface {
	// Slots 陪护者在 [from, from + days) 内还能预约的时间窗口
	Slots(ctx context.Context, companionID int64, from time.Time, days, durationMinutes int) ([]availability.Window, error)
	// Book 客户预约, 价格先在客户钱包中预扣
	Book(ctx context.Context, clientID, companionID, startAt int64, durationMinutes int, note string) (domain.Session, error)
	Confirm(ctx context.Context, uid, id int64) error
	Reject(ctx context.Context, uid, id int64, reason string) error
	Cancel(ctx context.Context, uid, id int64) error
	// Complete 完成会话并把预扣的钱付给陪护者
	Complete(ctx context.Context, uid, id int64) error
	List(ctx context.Context, uid int64, p domain.Perspective, status domain.SessionStatus, offset, limit int) ([]domain.Session, int64, error)
	Detail(ctx context.Context, uid, id int64) (domain.Session, error)
	JoinRoom(ctx context.Context, uid, id int64) (domain.Room, error)
	HandleOfferEvent(ctx context.Context, evt event.OfferEvent) error
	// ExpirePending 开始时间已过仍未确认的会话置为过期, 返回处理的数量
	ExpirePending(ctx context.Context, limit int) (int, error)
	// CompleteFinished 结束时间早于 before 的已确认会话自动完成
	CompleteFinished(ctx context.Context, before time.Time, limit int) (int, error)
}

type service struct {
	repo      repository.SessionRepository
	availSvc  availability.Service
	userSvc   user.Service
	walletSvc wallet.Service
	producer  event.BookingEventProducer
	rooms     RoomProvider
	snGen     *sequencenumber.Generator
	now       func() time.Time
	logger    *elog.Component
}

func NewService(repo repository.SessionRepository,
	availSvc availability.Service,
	userSvc user.Service,
	walletSvc wallet.Service,
	producer event.BookingEventProducer,
	rooms RoomProvider,
	snGen *sequencenumber.Generator) Service {
	return &service{
		repo:      repo,
		availSvc:  availSvc,
		userSvc:   userSvc,
		walletSvc: walletSvc,
		producer:  producer,
		rooms:     rooms,
		snGen:     snGen,
		now:       time.Now,
		logger:    elog.DefaultLogger,
	}
}

func (s *service) Slots(ctx context.Context, companionID int64, from time.Time, days, durationMinutes int) ([]availability.Window, error) {
	if err := validateDuration(durationMinutes); err != nil {
		return nil, err
	}
	if days <= 0 || days > maxSlotDays {
		return nil, fmt.Errorf("%w: days %d", ErrInvalidBooking, days)
	}
	companion, err := s.userSvc.CompanionDetail(ctx, companionID)
	if err != nil {
		return nil, err
	}
	to := from.Add(time.Duration(days) * 24 * time.Hour)
	sessions, err := s.repo.FindBusy(ctx, companionID, from.UnixMilli(), to.UnixMilli())
	if err != nil {
		return nil, err
	}
	busy := slice.Map(sessions, func(idx int, src domain.Session) availability.Window {
		return availability.Window{Start: src.StartTime(), End: src.EndTime()}
	})
	return s.availSvc.Windows(ctx, companionID, companion.Timezone, from, to,
		time.Duration(durationMinutes)*time.Minute, busy)
}

func (s *service) Book(ctx context.Context, clientID, companionID, startAt int64, durationMinutes int, note string) (domain.Session, error) {
	if err := validateDuration(durationMinutes); err != nil {
		return domain.Session{}, err
	}
	start := time.UnixMilli(startAt)
	if !start.After(s.now()) {
		return domain.Session{}, fmt.Errorf("%w: start time %d is not in the future", ErrInvalidBooking, startAt)
	}
	if clientID == companionID {
		return domain.Session{}, fmt.Errorf("%w: cannot book yourself", ErrInvalidBooking)
	}
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	companion, err := s.userSvc.CompanionDetail(ctx, companionID)
	if err != nil {
		return domain.Session{}, err
	}
	ok, err := s.availSvc.Covers(ctx, companionID, companion.Timezone, start, end)
	if err != nil {
		return domain.Session{}, err
	}
	if !ok {
		return domain.Session{}, fmt.Errorf("%w: companion %d, %s - %s", ErrOutsideAvailability,
			companionID, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	price := domain.Price(companion.HourlyRate, durationMinutes)
	if price <= 0 {
		return domain.Session{}, fmt.Errorf("%w: companion %d has no hourly rate", ErrInvalidBooking, companionID)
	}

	sn, err := s.snGen.Generate(sequencenumber.PrefixSession, clientID)
	if err != nil {
		return domain.Session{}, err
	}
	lockID, err := s.walletSvc.TryDeduct(ctx, wallet.Funds{
		Uid:    clientID,
		Amount: price,
		Key:    "booking:" + sn,
		Biz:    "booking",
		Desc:   "session " + sn,
	})
	if err != nil {
		return domain.Session{}, err
	}

	sess := domain.Session{
		SN:          sn,
		ClientID:    clientID,
		CompanionID: companionID,
		StartAt:     startAt,
		EndAt:       end.UnixMilli(),
		Price:       price,
		LockID:      lockID,
		Status:      domain.SessionStatusPending,
		Note:        note,
		RoomName:    s.rooms.RoomName(sn),
	}
	id, err := s.repo.CreateExclusive(ctx, sess)
	if err != nil {
		if er := s.release(ctx, sess); er != nil {
			s.logger.Error("release booking lock failed",
				elog.FieldErr(er),
				elog.String("sn", sn),
				elog.Int64("lockID", lockID))
		}
		return domain.Session{}, err
	}
	sess.ID = id
	s.produce(ctx, event.ActionBooked, sess, "")
	return s.repo.FindByID(ctx, id)
}

func (s *service) Confirm(ctx context.Context, uid, id int64) error {
	sess, err := s.findAsCompanion(ctx, uid, id)
	if err != nil {
		return err
	}
	// 开始之后只能过期, 不能再确认
	if !s.now().Before(sess.StartTime()) {
		return fmt.Errorf("%w: session %d", ErrTooLate, id)
	}
	err = s.repo.UpdateStatus(ctx, id, []domain.SessionStatus{domain.SessionStatusPending}, domain.SessionStatusConfirmed)
	if err != nil {
		return err
	}
	s.produce(ctx, event.ActionConfirmed, sess, "")
	return nil
}

func (s *service) Reject(ctx context.Context, uid, id int64, reason string) error {
	sess, err := s.findAsCompanion(ctx, uid, id)
	if err != nil {
		return err
	}
	if sess.Status != domain.SessionStatusPending {
		return fmt.Errorf("%w: session %d is %s", ErrInvalidTransition, id, sess.Status)
	}
	if err = s.release(ctx, sess); err != nil {
		return err
	}
	err = s.repo.Reject(ctx, id, reason)
	if err != nil {
		return err
	}
	s.produce(ctx, event.ActionRejected, sess, reason)
	return nil
}

func (s *service) Cancel(ctx context.Context, uid, id int64) error {
	sess, err := s.Detail(ctx, uid, id)
	if err != nil {
		return err
	}
	if !s.now().Before(sess.StartTime()) {
		return fmt.Errorf("%w: session %d", ErrTooLate, id)
	}
	return s.cancel(ctx, sess)
}

// cancel 先释放预扣再改状态, 释放失败时会话保持原状态, 调用方可以重试
func (s *service) cancel(ctx context.Context, sess domain.Session) error {
	if !sess.Active() {
		return fmt.Errorf("%w: session %d is %s", ErrInvalidTransition, sess.ID, sess.Status)
	}
	if err := s.release(ctx, sess); err != nil {
		return err
	}
	err := s.repo.UpdateStatus(ctx, sess.ID,
		[]domain.SessionStatus{domain.SessionStatusPending, domain.SessionStatusConfirmed},
		domain.SessionStatusCancelled)
	if err != nil {
		return err
	}
	s.produce(ctx, event.ActionCancelled, sess, "")
	return nil
}

func (s *service) Complete(ctx context.Context, uid, id int64) error {
	sess, err := s.Detail(ctx, uid, id)
	if err != nil {
		return err
	}
	if s.now().Before(sess.StartTime()) {
		return fmt.Errorf("%w: session %d", ErrTooEarly, id)
	}
	return s.complete(ctx, sess)
}

// complete 先付款再改状态, 付款失败时会话仍是已确认, 自动完成的任务会再次付款
func (s *service) complete(ctx context.Context, sess domain.Session) error {
	if sess.Status != domain.SessionStatusConfirmed {
		return fmt.Errorf("%w: session %d is %s", ErrInvalidTransition, sess.ID, sess.Status)
	}
	if sess.LockID != 0 {
		err := s.walletSvc.ConfirmDeduct(ctx, sess.ClientID, sess.LockID, sess.CompanionID)
		if err != nil {
			return fmt.Errorf("pay session %d failed: lock %d: %w", sess.ID, sess.LockID, err)
		}
	}
	err := s.repo.UpdateStatus(ctx, sess.ID,
		[]domain.SessionStatus{domain.SessionStatusConfirmed},
		domain.SessionStatusCompleted)
	if err != nil {
		return err
	}
	s.produce(ctx, event.ActionCompleted, sess, "")
	return nil
}

func (s *service) List(ctx context.Context, uid int64, p domain.Perspective, status domain.SessionStatus, offset, limit int) ([]domain.Session, int64, error) {
	var (
		eg    errgroup.Group
		ss    []domain.Session
		total int64
	)
	eg.Go(func() error {
		var err error
		ss, err = s.repo.List(ctx, uid, p, status, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, uid, p, status)
		return err
	})
	return ss, total, eg.Wait()
}

func (s *service) Detail(ctx context.Context, uid, id int64) (domain.Session, error) {
	sess, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Session{}, fmt.Errorf("%w: session %d", ErrSessionNotFound, id)
	}
	if err != nil {
		return domain.Session{}, err
	}
	if !sess.IsParticipant(uid) {
		return domain.Session{}, fmt.Errorf("%w: user %d is not a participant of session %d", ErrPermissionDenied, uid, id)
	}
	return sess, nil
}

func (s *service) JoinRoom(ctx context.Context, uid, id int64) (domain.Room, error) {
	sess, err := s.Detail(ctx, uid, id)
	if err != nil {
		return domain.Room{}, err
	}
	if sess.Status != domain.SessionStatusConfirmed {
		return domain.Room{}, fmt.Errorf("%w: session %d is %s", ErrRoomUnavailable, id, sess.Status)
	}
	now := s.now()
	if now.Before(sess.StartTime().Add(-domain.JoinAheadDuration)) || !now.Before(sess.EndTime()) {
		return domain.Room{}, fmt.Errorf("%w: session %d", ErrRoomUnavailable, id)
	}
	return s.rooms.Issue(sess, uid, sess.EndTime())
}

func (s *service) HandleOfferEvent(ctx context.Context, evt event.OfferEvent) error {
	switch evt.Action {
	case event.OfferActionAccepted:
		return s.createFromOffer(ctx, evt)
	case event.OfferActionCancelled:
		sess, ok, err := s.findByOffer(ctx, evt.OfferID)
		if err != nil || !ok || !sess.Active() {
			return err
		}
		cancelledAt := s.now()
		if evt.OccurredAt > 0 {
			cancelledAt = time.UnixMilli(evt.OccurredAt)
		}
		if !cancelledAt.Before(sess.StartTime()) {
			s.logger.Warn("offer cancelled after the session started, keep the session",
				elog.Int64("offerID", evt.OfferID),
				elog.Int64("sessionID", sess.ID))
			return nil
		}
		err = s.cancel(ctx, sess)
		if errors.Is(err, ErrInvalidTransition) {
			return nil
		}
		return err
	case event.OfferActionCompleted:
		sess, ok, err := s.findByOffer(ctx, evt.OfferID)
		if err != nil || !ok || sess.Status != domain.SessionStatusConfirmed {
			return err
		}
		err = s.complete(ctx, sess)
		if errors.Is(err, ErrInvalidTransition) {
			return nil
		}
		return err
	default:
		return nil
	}
}

// createFromOffer 需求接单后双方已经确认过时间, 不再校验可预约时间和冲突
func (s *service) createFromOffer(ctx context.Context, evt event.OfferEvent) error {
	_, ok, err := s.findByOffer(ctx, evt.OfferID)
	if err != nil || ok {
		return err
	}
	sn, err := s.snGen.Generate(sequencenumber.PrefixSession, evt.ClientID)
	if err != nil {
		return err
	}
	start := time.UnixMilli(evt.StartAt)
	sess := domain.Session{
		SN:          sn,
		ClientID:    evt.ClientID,
		CompanionID: evt.CompanionID,
		OfferID:     evt.OfferID,
		StartAt:     evt.StartAt,
		EndAt:       start.Add(time.Duration(evt.DurationMinutes) * time.Minute).UnixMilli(),
		Price:       evt.Budget,
		LockID:      evt.LockID,
		Status:      domain.SessionStatusConfirmed,
		RoomName:    s.rooms.RoomName(sn),
	}
	id, err := s.repo.Create(ctx, sess)
	if err != nil {
		return err
	}
	sess.ID = id
	s.produce(ctx, event.ActionConfirmed, sess, "")
	return nil
}

func (s *service) findByOffer(ctx context.Context, offerID int64) (domain.Session, bool, error) {
	sess, err := s.repo.FindByOfferID(ctx, offerID)
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		return domain.Session{}, false, nil
	case err != nil:
		return domain.Session{}, false, err
	default:
		return sess, true, nil
	}
}

func (s *service) ExpirePending(ctx context.Context, limit int) (int, error) {
	ss, err := s.repo.FindPendingStarted(ctx, s.now().UnixMilli(), limit)
	if err != nil {
		return 0, err
	}
	cnt := 0
	var errs []error
	for _, sess := range ss {
		if err = s.release(ctx, sess); err != nil {
			errs = append(errs, err)
			continue
		}
		err = s.repo.UpdateStatus(ctx, sess.ID, []domain.SessionStatus{domain.SessionStatusPending}, domain.SessionStatusExpired)
		if errors.Is(err, ErrInvalidTransition) {
			continue
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("expire session %d failed: %w", sess.ID, err))
			continue
		}
		cnt++
		s.produce(ctx, event.ActionExpired, sess, "")
	}
	return cnt, errors.Join(errs...)
}

func (s *service) CompleteFinished(ctx context.Context, before time.Time, limit int) (int, error) {
	ss, err := s.repo.FindConfirmedEnded(ctx, before.UnixMilli(), limit)
	if err != nil {
		return 0, err
	}
	cnt := 0
	var errs []error
	// 单个会话付款失败不影响其他会话, 下一轮任务会重试
	for _, sess := range ss {
		err = s.complete(ctx, sess)
		if errors.Is(err, ErrInvalidTransition) {
			continue
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("complete session %d failed: %w", sess.ID, err))
			continue
		}
		cnt++
	}
	return cnt, errors.Join(errs...)
}

func (s *service) findAsCompanion(ctx context.Context, uid, id int64) (domain.Session, error) {
	sess, err := s.Detail(ctx, uid, id)
	if err != nil {
		return domain.Session{}, err
	}
	if sess.CompanionID != uid {
		return domain.Session{}, fmt.Errorf("%w: only the companion can answer session %d", ErrPermissionDenied, id)
	}
	return sess, nil
}

// release 释放客户钱包中的预扣, 已经释放过的预扣再次释放是安全的
func (s *service) release(ctx context.Context, sess domain.Session) error {
	if sess.LockID == 0 {
		return nil
	}
	err := s.walletSvc.CancelDeduct(ctx, sess.ClientID, sess.LockID)
	if err != nil {
		return fmt.Errorf("release session %d failed: lock %d: %w", sess.ID, sess.LockID, err)
	}
	return nil
}

func (s *service) produce(ctx context.Context, action string, sess domain.Session, reason string) {
	err := s.producer.Produce(ctx, event.BookingEvent{
		Action:      action,
		SessionID:   sess.ID,
		SN:          sess.SN,
		OfferID:     sess.OfferID,
		ClientID:    sess.ClientID,
		CompanionID: sess.CompanionID,
		StartAt:     sess.StartAt,
		EndAt:       sess.EndAt,
		Price:       sess.Price,
		Reason:      reason,
	})
	if err != nil {
		s.logger.Error("send booking event failed",
			elog.FieldErr(err),
			elog.String("action", action),
			elog.Int64("sessionID", sess.ID))
	}
}

func validateDuration(minutes int) error {
	if minutes < domain.MinDurationMinutes || minutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: duration %d minutes", ErrInvalidBooking, minutes)
	}
	return nil
}
