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
	"strings"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/robertobolla/talkme-sub001/internal/offer/internal/domain"
	"github.com/robertobolla/talkme-sub001/internal/offer/internal/event"
	"github.com/robertobolla/talkme-sub001/internal/offer/internal/repository"
	"github.com/robertobolla/talkme-sub001/internal/pkg/sequencenumber"
	"github.com/robertobolla/talkme-sub001/internal/wallet"
	"golang.org/x/sync/errgroup"
)

const maxTitleLength = 256

var (
	ErrOfferNotFound     = errors.New("offer not found")
	ErrApplicantNotFound = errors.New("applicant not found")
	ErrAlreadyApplied    = repository.ErrAlreadyApplied
	ErrInvalidTransition = repository.ErrInvalidTransition
	ErrInvalidOffer      = errors.New("invalid offer")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrOwnOffer          = errors.New("cannot apply to own offer")
	ErrTooEarly          = errors.New("offer has not started yet")
	ErrTooLate           = errors.New("offer has already started")
	ErrInsufficientFunds = wallet.ErrInsufficientFunds
)

//go:generate mockgen -source=./offer.go -package=svcmocks -destination=./mocks/offer.mock.go Service
type Service interface {
	Create(ctx context.Context, o domain.Offer) (domain.Offer, error)
	ListPublished(ctx context.Context, specialty string, offset, limit int) ([]domain.Offer, int64, error)
	ListMine(ctx context.Context, clientID int64, status domain.OfferStatus, offset, limit int) ([]domain.Offer, int64, error)
	ListApplications(ctx context.Context, companionID int64, offset, limit int) ([]domain.Applicant, int64, error)
	// Detail 发布者能看到申请列表, 其余人只能看已发布的需求或者自己接下的需求
	Detail(ctx context.Context, uid, id int64) (domain.Offer, error)
	Apply(ctx context.Context, a domain.Applicant) (domain.Applicant, error)
	Withdraw(ctx context.Context, uid, applicantID int64) error
	ListApplicants(ctx context.Context, uid, offerID int64) ([]domain.Applicant, error)
	// AcceptApplicant 先在客户钱包中预扣预算, 再流转需求和申请
	// 重复接受同一个申请会重新发送接单事件
	AcceptApplicant(ctx context.Context, uid, applicantID int64) (domain.Offer, error)
	RejectApplicant(ctx context.Context, uid, applicantID int64) error
	// Cancel 已接单的需求只能在开始前取消, 重复取消会重新发送取消事件
	Cancel(ctx context.Context, uid, offerID int64) error
	Complete(ctx context.Context, uid, offerID int64) error
	// SyncFromBooking 关联会话完成或取消后同步需求状态, 重复调用是安全的
	SyncFromBooking(ctx context.Context, offerID int64, action string) error
	// ExpireOffers 把开始时间已过仍未接单的需求置为过期, 返回处理的数量
	ExpireOffers(ctx context.Context, limit int) (int, error)
}

type service struct {
	repo      repository.OfferRepository
	walletSvc wallet.Service
	producer  event.OfferEventProducer
	snGen     *sequencenumber.Generator
	now       func() time.Time
	logger    *elog.Component
}

func NewService(repo repository.OfferRepository,
	walletSvc wallet.Service,
	producer event.OfferEventProducer,
	snGen *sequencenumber.Generator) Service {
	return &service{
		repo:      repo,
		walletSvc: walletSvc,
		producer:  producer,
		snGen:     snGen,
		now:       time.Now,
		logger:    elog.DefaultLogger,
	}
}

func (s *service) Create(ctx context.Context, o domain.Offer) (domain.Offer, error) {
	o.Title = strings.TrimSpace(o.Title)
	if err := s.validate(o); err != nil {
		return domain.Offer{}, err
	}
	sn, err := s.snGen.Generate(sequencenumber.PrefixOffer, o.ClientID)
	if err != nil {
		return domain.Offer{}, err
	}
	o.SN = sn
	o.Status = domain.OfferStatusPublished
	o.CompanionID = 0
	o.LockID = 0
	id, err := s.repo.Create(ctx, o)
	if err != nil {
		return domain.Offer{}, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *service) validate(o domain.Offer) error {
	switch {
	case o.Title == "" || len(o.Title) > maxTitleLength:
		return fmt.Errorf("%w: title length %d", ErrInvalidOffer, len(o.Title))
	case o.StartAt <= s.now().UnixMilli():
		return fmt.Errorf("%w: start time %d is not in the future", ErrInvalidOffer, o.StartAt)
	case o.DurationMinutes < domain.MinDurationMinutes || o.DurationMinutes > domain.MaxDurationMinutes:
		return fmt.Errorf("%w: duration %d minutes", ErrInvalidOffer, o.DurationMinutes)
	case o.Budget <= 0:
		return fmt.Errorf("%w: budget %d", ErrInvalidOffer, o.Budget)
	}
	return nil
}

func (s *service) ListPublished(ctx context.Context, specialty string, offset, limit int) ([]domain.Offer, int64, error) {
	now := s.now().UnixMilli()
	var (
		eg    errgroup.Group
		os    []domain.Offer
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListPublished(ctx, specialty, now, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountPublished(ctx, specialty, now)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) ListMine(ctx context.Context, clientID int64, status domain.OfferStatus, offset, limit int) ([]domain.Offer, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Offer
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListByClient(ctx, clientID, status, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByClient(ctx, clientID, status)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) ListApplications(ctx context.Context, companionID int64, offset, limit int) ([]domain.Applicant, int64, error) {
	var (
		eg    errgroup.Group
		as    []domain.Applicant
		total int64
	)
	eg.Go(func() error {
		var err error
		as, err = s.repo.ListApplications(ctx, companionID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountApplications(ctx, companionID)
		return err
	})
	return as, total, eg.Wait()
}

func (s *service) Detail(ctx context.Context, uid, id int64) (domain.Offer, error) {
	o, err := s.findOffer(ctx, id)
	if err != nil {
		return domain.Offer{}, err
	}
	switch {
	case o.ClientID == uid:
		o.Applicants, err = s.repo.ListApplicants(ctx, id)
		return o, err
	case o.Status == domain.OfferStatusPublished || o.CompanionID == uid:
		return o, nil
	default:
		return domain.Offer{}, fmt.Errorf("%w: offer %d", ErrOfferNotFound, id)
	}
}

func (s *service) Apply(ctx context.Context, a domain.Applicant) (domain.Applicant, error) {
	o, err := s.findOffer(ctx, a.OfferID)
	if err != nil {
		return domain.Applicant{}, err
	}
	if o.ClientID == a.CompanionID {
		return domain.Applicant{}, fmt.Errorf("%w: offer %d", ErrOwnOffer, o.ID)
	}
	if o.Status != domain.OfferStatusPublished {
		return domain.Applicant{}, fmt.Errorf("%w: offer %d is %s", ErrInvalidTransition, o.ID, o.Status)
	}
	a.Status = domain.ApplicantStatusPending
	id, err := s.repo.CreateApplicant(ctx, a)
	if err != nil {
		return domain.Applicant{}, err
	}
	a.ID = id
	s.produce(ctx, s.newEvent(event.ActionApplied, o, a))
	return s.repo.FindApplicantByID(ctx, id)
}

func (s *service) Withdraw(ctx context.Context, uid, applicantID int64) error {
	a, err := s.findApplicant(ctx, applicantID)
	if err != nil {
		return err
	}
	if a.CompanionID != uid {
		return fmt.Errorf("%w: applicant %d does not belong to %d", ErrPermissionDenied, applicantID, uid)
	}
	err = s.repo.UpdateApplicantStatus(ctx, applicantID, domain.ApplicantStatusPending, domain.ApplicantStatusWithdrawn)
	if err != nil {
		return err
	}
	o, err := s.findOffer(ctx, a.OfferID)
	if err != nil {
		return err
	}
	s.produce(ctx, s.newEvent(event.ActionWithdrawn, o, a))
	return nil
}

func (s *service) ListApplicants(ctx context.Context, uid, offerID int64) ([]domain.Applicant, error) {
	if _, err := s.findOwnOffer(ctx, uid, offerID); err != nil {
		return nil, err
	}
	return s.repo.ListApplicants(ctx, offerID)
}

func (s *service) AcceptApplicant(ctx context.Context, uid, applicantID int64) (domain.Offer, error) {
	a, err := s.findApplicant(ctx, applicantID)
	if err != nil {
		return domain.Offer{}, err
	}
	o, err := s.findOwnOffer(ctx, uid, a.OfferID)
	if err != nil {
		return domain.Offer{}, err
	}
	if o.Status == domain.OfferStatusAccepted &&
		a.Status == domain.ApplicantStatusAccepted &&
		o.CompanionID == a.CompanionID {
		// 上次接单的事件可能没有发出去
		if err = s.publish(ctx, s.newEvent(event.ActionAccepted, o, a)); err != nil {
			return domain.Offer{}, err
		}
		return o, nil
	}
	if o.Status != domain.OfferStatusPublished || a.Status != domain.ApplicantStatusPending {
		return domain.Offer{}, fmt.Errorf("%w: offer %d is %s, applicant %d is %s",
			ErrInvalidTransition, o.ID, o.Status, a.ID, a.Status)
	}

	lockID, err := s.walletSvc.TryDeduct(ctx, wallet.Funds{
		Uid:    o.ClientID,
		Amount: o.Budget,
		Key:    fmt.Sprintf("offer:%s:%d", o.SN, a.ID),
		Biz:    "offer",
		BizID:  o.ID,
		Desc:   o.Title,
	})
	if err != nil {
		return domain.Offer{}, err
	}

	err = s.repo.Accept(ctx, o.ID, a.ID, a.CompanionID, lockID)
	if err != nil {
		if err1 := s.walletSvc.CancelDeduct(ctx, o.ClientID, lockID); err1 != nil {
			s.logger.Error("release offer budget lock failed",
				elog.FieldErr(err1),
				elog.Int64("offerID", o.ID),
				elog.Int64("lockID", lockID))
		}
		return domain.Offer{}, err
	}

	o.Status = domain.OfferStatusAccepted
	o.CompanionID = a.CompanionID
	o.LockID = lockID
	// 预约模块靠这个事件创建会话, 发送失败要让客户端重试
	if err = s.publish(ctx, s.newEvent(event.ActionAccepted, o, a)); err != nil {
		return domain.Offer{}, err
	}
	return s.repo.FindByID(ctx, o.ID)
}

func (s *service) RejectApplicant(ctx context.Context, uid, applicantID int64) error {
	a, err := s.findApplicant(ctx, applicantID)
	if err != nil {
		return err
	}
	o, err := s.findOwnOffer(ctx, uid, a.OfferID)
	if err != nil {
		return err
	}
	err = s.repo.UpdateApplicantStatus(ctx, applicantID, domain.ApplicantStatusPending, domain.ApplicantStatusRejected)
	if err != nil {
		return err
	}
	s.produce(ctx, s.newEvent(event.ActionRejected, o, a))
	return nil
}

func (s *service) Cancel(ctx context.Context, uid, offerID int64) error {
	o, err := s.findOwnOffer(ctx, uid, offerID)
	if err != nil {
		return err
	}
	switch o.Status {
	case domain.OfferStatusCancelled:
		evt := s.newEvent(event.ActionCancelled, o, domain.Applicant{})
		if o.Utime > 0 {
			evt.OccurredAt = o.Utime
		}
		return s.publish(ctx, evt)
	case domain.OfferStatusPublished:
	case domain.OfferStatusAccepted:
		if !s.now().Before(o.StartTime()) {
			return fmt.Errorf("%w: offer %d started at %d", ErrTooLate, o.ID, o.StartAt)
		}
		// 先释放预扣, 失败时需求仍是已接单, 客户可以重试
		err = s.walletSvc.CancelDeduct(ctx, o.ClientID, o.LockID)
		if err != nil {
			return fmt.Errorf("release offer budget lock failed: offer %d: %w", o.ID, err)
		}
	default:
		return fmt.Errorf("%w: offer %d is %s", ErrInvalidTransition, o.ID, o.Status)
	}
	err = s.repo.Close(ctx, o.ID, o.Status, domain.OfferStatusCancelled)
	if err != nil {
		return err
	}
	return s.publish(ctx, s.newEvent(event.ActionCancelled, o, domain.Applicant{}))
}

func (s *service) Complete(ctx context.Context, uid, offerID int64) error {
	o, err := s.findOwnOffer(ctx, uid, offerID)
	if err != nil {
		return err
	}
	if o.Status != domain.OfferStatusAccepted {
		return fmt.Errorf("%w: offer %d is %s", ErrInvalidTransition, o.ID, o.Status)
	}
	if s.now().Before(o.StartTime()) {
		return fmt.Errorf("%w: offer %d starts at %d", ErrTooEarly, o.ID, o.StartAt)
	}
	err = s.repo.UpdateStatus(ctx, o.ID, domain.OfferStatusAccepted, domain.OfferStatusCompleted)
	if err != nil {
		return err
	}
	s.produce(ctx, s.newEvent(event.ActionCompleted, o, domain.Applicant{}))
	return nil
}

func (s *service) SyncFromBooking(ctx context.Context, offerID int64, action string) error {
	var to domain.OfferStatus
	switch action {
	case event.ActionCompleted:
		to = domain.OfferStatusCompleted
	case event.ActionCancelled:
		to = domain.OfferStatusCancelled
	default:
		return nil
	}
	o, err := s.findOffer(ctx, offerID)
	if err != nil {
		return err
	}
	if o.Status == to {
		return nil
	}
	err = s.repo.UpdateStatus(ctx, o.ID, domain.OfferStatusAccepted, to)
	if errors.Is(err, ErrInvalidTransition) {
		s.logger.Warn("offer is no longer accepted, skip booking sync",
			elog.Int64("offerID", o.ID),
			elog.String("status", o.Status.String()),
			elog.String("action", action))
		return nil
	}
	if err != nil {
		return err
	}
	s.produce(ctx, s.newEvent(action, o, domain.Applicant{}))
	return nil
}

func (s *service) ExpireOffers(ctx context.Context, limit int) (int, error) {
	os, err := s.repo.FindExpired(ctx, s.now().UnixMilli(), limit)
	if err != nil {
		return 0, err
	}
	cnt := 0
	for _, o := range os {
		err = s.repo.Close(ctx, o.ID, domain.OfferStatusPublished, domain.OfferStatusExpired)
		if errors.Is(err, ErrInvalidTransition) {
			// 在这期间被接单或者被取消了
			continue
		}
		if err != nil {
			return cnt, fmt.Errorf("expire offer %d failed: %w", o.ID, err)
		}
		cnt++
		s.produce(ctx, s.newEvent(event.ActionExpired, o, domain.Applicant{}))
	}
	return cnt, nil
}

func (s *service) findOffer(ctx context.Context, id int64) (domain.Offer, error) {
	o, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Offer{}, fmt.Errorf("%w: offer %d", ErrOfferNotFound, id)
	}
	return o, err
}

func (s *service) findOwnOffer(ctx context.Context, uid, id int64) (domain.Offer, error) {
	o, err := s.findOffer(ctx, id)
	if err != nil {
		return domain.Offer{}, err
	}
	if o.ClientID != uid {
		return domain.Offer{}, fmt.Errorf("%w: offer %d does not belong to %d", ErrPermissionDenied, id, uid)
	}
	return o, nil
}

func (s *service) findApplicant(ctx context.Context, id int64) (domain.Applicant, error) {
	a, err := s.repo.FindApplicantByID(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Applicant{}, fmt.Errorf("%w: applicant %d", ErrApplicantNotFound, id)
	}
	return a, err
}

func (s *service) newEvent(action string, o domain.Offer, a domain.Applicant) event.OfferEvent {
	companionID := o.CompanionID
	if a.CompanionID != 0 {
		companionID = a.CompanionID
	}
	return event.OfferEvent{
		Action:          action,
		OfferID:         o.ID,
		SN:              o.SN,
		Title:           o.Title,
		ClientID:        o.ClientID,
		CompanionID:     companionID,
		ApplicantID:     a.ID,
		StartAt:         o.StartAt,
		DurationMinutes: o.DurationMinutes,
		Budget:          o.Budget,
		LockID:          o.LockID,
		OccurredAt:      s.now().UnixMilli(),
	}
}

// produce 只用于通知类的事件, 发送失败只记录日志
func (s *service) produce(ctx context.Context, evt event.OfferEvent) {
	_ = s.publish(ctx, evt)
}

// publish 涉及资金的事件发送失败要返回给调用方, 状态已经提交, 重试时会重新发送
func (s *service) publish(ctx context.Context, evt event.OfferEvent) error {
	err := s.producer.Produce(ctx, evt)
	if err != nil {
		s.logger.Error("send offer event failed",
			elog.FieldErr(err),
			elog.String("action", evt.Action),
			elog.Int64("offerID", evt.OfferID))
		return fmt.Errorf("send offer event failed: offer %d %s: %w", evt.OfferID, evt.Action, err)
	}
	return nil
}
