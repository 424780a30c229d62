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
	"github.com/robertobolla/talkme-sub001/internal/payment/internal/domain"
	"github.com/robertobolla/talkme-sub001/internal/payment/internal/event"
	"github.com/robertobolla/talkme-sub001/internal/payment/internal/repository"
	"github.com/robertobolla/talkme-sub001/internal/pkg/sequencenumber"
	"github.com/robertobolla/talkme-sub001/internal/wallet"
	"golang.org/x/sync/errgroup"
)

const defaultDepositTTL = 30 * time.Minute

var (
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrInvalidPayment    = errors.New("invalid payment")
	ErrInvalidTransition = repository.ErrInvalidTransition
	ErrDuplicatedTxHash  = repository.ErrDuplicatedTxHash
	ErrInsufficientFunds = wallet.ErrInsufficientFunds
)

//go:generate mockgen -source=./payment.go -package=svcmocks -destination=./mocks/payment.mock.go Service
type Service interface {
	// Assets 支持的币种和网络
	Assets(ctx context.Context) []domain.Asset
	CreateDeposit(ctx context.Context, uid, amount int64, asset, network string) (domain.Payment, error)
	// RequestWithdrawal 先在钱包中预扣, 到账回调成功后结算, 失败后释放
	RequestWithdrawal(ctx context.Context, uid, amount int64, asset, network, address string) (domain.Payment, error)
	// HandleWebhook 支付渠道回调, 重复回调同一个终态直接返回当前记录
	HandleWebhook(ctx context.Context, sn, txHash string, status domain.PaymentStatus) (domain.Payment, error)
	Detail(ctx context.Context, uid int64, sn string) (domain.Payment, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Payment, int64, error)
	// CloseExpiredDeposits 关闭超时未到账的充值, 返回处理的数量
	CloseExpiredDeposits(ctx context.Context, limit int) (int, error)
}

type service struct {
	repo      repository.PaymentRepository
	walletSvc wallet.Service
	producer  event.PaymentEventProducer
	snGen     *sequencenumber.Generator
	addrGen   *AddressGenerator
	cfg       domain.Config
	now       func() time.Time
	logger    *elog.Component
}

func NewService(repo repository.PaymentRepository,
	walletSvc wallet.Service,
	producer event.PaymentEventProducer,
	snGen *sequencenumber.Generator,
	addrGen *AddressGenerator,
	cfg domain.Config) Service {
	if cfg.DepositTTL <= 0 {
		cfg.DepositTTL = defaultDepositTTL
	}
	return &service{
		repo:      repo,
		walletSvc: walletSvc,
		producer:  producer,
		snGen:     snGen,
		addrGen:   addrGen,
		cfg:       cfg,
		now:       time.Now,
		logger:    elog.DefaultLogger,
	}
}

func (s *service) Assets(_ context.Context) []domain.Asset {
	return s.cfg.Assets
}

func (s *service) CreateDeposit(ctx context.Context, uid, amount int64, asset, network string) (domain.Payment, error) {
	a, err := s.checkAsset(amount, asset, network)
	if err != nil {
		return domain.Payment{}, err
	}
	sn, err := s.snGen.Generate(sequencenumber.PrefixDeposit, uid)
	if err != nil {
		return domain.Payment{}, err
	}
	network = strings.ToLower(network)
	p := domain.Payment{
		SN:        sn,
		Uid:       uid,
		Type:      domain.PaymentTypeDeposit,
		Asset:     a.Symbol,
		Network:   network,
		Amount:    amount,
		Address:   s.addrGen.Generate(network),
		Status:    domain.PaymentStatusPending,
		ExpiredAt: s.now().Add(s.cfg.DepositTTL).UnixMilli(),
	}
	p.ID, err = s.repo.Create(ctx, p)
	if err != nil {
		return domain.Payment{}, err
	}
	return p, nil
}

func (s *service) RequestWithdrawal(ctx context.Context, uid, amount int64, asset, network, address string) (domain.Payment, error) {
	a, err := s.checkAsset(amount, asset, network)
	if err != nil {
		return domain.Payment{}, err
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return domain.Payment{}, fmt.Errorf("%w: empty withdrawal address", ErrInvalidPayment)
	}
	sn, err := s.snGen.Generate(sequencenumber.PrefixWithdrawal, uid)
	if err != nil {
		return domain.Payment{}, err
	}
	lockID, err := s.walletSvc.TryDeduct(ctx, wallet.Funds{
		Uid:    uid,
		Amount: amount,
		Key:    "withdrawal:" + sn,
		Biz:    "withdrawal",
		Desc:   "withdrawal " + sn,
	})
	if err != nil {
		return domain.Payment{}, err
	}
	p := domain.Payment{
		SN:      sn,
		Uid:     uid,
		Type:    domain.PaymentTypeWithdrawal,
		Asset:   a.Symbol,
		Network: strings.ToLower(network),
		Amount:  amount,
		Address: address,
		LockID:  lockID,
		Status:  domain.PaymentStatusPending,
	}
	p.ID, err = s.repo.Create(ctx, p)
	if err != nil {
		if er := s.walletSvc.CancelDeduct(ctx, uid, lockID); er != nil {
			s.logger.Error("release withdrawal lock failed",
				elog.FieldErr(er),
				elog.String("sn", sn),
				elog.Int64("lockID", lockID))
		}
		return domain.Payment{}, err
	}
	return p, nil
}

func (s *service) checkAsset(amount int64, asset, network string) (domain.Asset, error) {
	a, ok := s.cfg.FindAsset(asset)
	if !ok {
		return domain.Asset{}, fmt.Errorf("%w: unsupported asset %s", ErrInvalidPayment, asset)
	}
	if !a.Supports(network) {
		return domain.Asset{}, fmt.Errorf("%w: asset %s does not support network %s", ErrInvalidPayment, asset, network)
	}
	if !a.InRange(amount) {
		return domain.Asset{}, fmt.Errorf("%w: amount %d out of range [%d, %d]", ErrInvalidPayment, amount, a.MinAmount, a.MaxAmount)
	}
	return a, nil
}

func (s *service) HandleWebhook(ctx context.Context, sn, txHash string, status domain.PaymentStatus) (domain.Payment, error) {
	if status != domain.PaymentStatusPaid && status != domain.PaymentStatusFailed {
		return domain.Payment{}, fmt.Errorf("%w: webhook status %s", ErrInvalidPayment, status)
	}
	p, err := s.findBySN(ctx, sn)
	if err != nil {
		return domain.Payment{}, err
	}
	if p.Status == status {
		// 重复回调, 上次的事件可能没有发出去, 入账按流水幂等
		if err = s.publish(ctx, p); err != nil {
			return domain.Payment{}, err
		}
		return p, nil
	}
	if p.Status != domain.PaymentStatusPending {
		return domain.Payment{}, fmt.Errorf("%w: payment %s is %s, webhook %s", ErrInvalidTransition, sn, p.Status, status)
	}
	if p.Type == domain.PaymentTypeDeposit && status == domain.PaymentStatusPaid && p.ExpiredAt <= s.now().UnixMilli() {
		return domain.Payment{}, fmt.Errorf("%w: deposit %s expired", ErrInvalidTransition, sn)
	}

	var paidAt int64
	if status == domain.PaymentStatusPaid {
		paidAt = s.now().UnixMilli()
	}
	err = s.repo.UpdateStatus(ctx, sn, status, txHash, paidAt)
	if errors.Is(err, ErrInvalidTransition) {
		// 并发回调, 以先到的为准
		latest, er := s.findBySN(ctx, sn)
		if er == nil && latest.Status == status {
			return latest, nil
		}
		return domain.Payment{}, err
	}
	if err != nil {
		return domain.Payment{}, err
	}
	p.Status, p.TxHash, p.PaidAt = status, txHash, paidAt
	// 发送失败返回错误, 服务商会重新回调
	if err = s.publish(ctx, p); err != nil {
		return domain.Payment{}, err
	}
	return p, nil
}

func (s *service) Detail(ctx context.Context, uid int64, sn string) (domain.Payment, error) {
	p, err := s.findBySN(ctx, sn)
	if err != nil {
		return domain.Payment{}, err
	}
	if p.Uid != uid {
		return domain.Payment{}, fmt.Errorf("%w: %s", ErrPaymentNotFound, sn)
	}
	return p, nil
}

func (s *service) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Payment, int64, error) {
	var (
		eg    errgroup.Group
		ps    []domain.Payment
		total int64
	)
	eg.Go(func() error {
		var err error
		ps, err = s.repo.List(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, uid)
		return err
	})
	return ps, total, eg.Wait()
}

func (s *service) CloseExpiredDeposits(ctx context.Context, limit int) (int, error) {
	ps, err := s.repo.FindExpiredDeposits(ctx, s.now().UnixMilli(), limit)
	if err != nil {
		return 0, err
	}
	cnt := 0
	for _, p := range ps {
		err = s.repo.UpdateStatus(ctx, p.SN, domain.PaymentStatusExpired, "", 0)
		if errors.Is(err, ErrInvalidTransition) {
			continue
		}
		if err != nil {
			return cnt, fmt.Errorf("close deposit %s failed: %w", p.SN, err)
		}
		cnt++
		p.Status = domain.PaymentStatusExpired
		s.produce(ctx, p)
	}
	return cnt, nil
}

func (s *service) findBySN(ctx context.Context, sn string) (domain.Payment, error) {
	p, err := s.repo.FindBySN(ctx, sn)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Payment{}, fmt.Errorf("%w: %s", ErrPaymentNotFound, sn)
	}
	return p, err
}

// produce 发送失败只记录日志
func (s *service) produce(ctx context.Context, p domain.Payment) {
	_ = s.publish(ctx, p)
}

func (s *service) publish(ctx context.Context, p domain.Payment) error {
	err := s.producer.Produce(ctx, event.PaymentEvent{
		SN:     p.SN,
		Uid:    p.Uid,
		Type:   p.Type.ToUint8(),
		Asset:  p.Asset,
		Amount: p.Amount,
		LockID: p.LockID,
		Status: p.Status.ToUint8(),
	})
	if err != nil {
		s.logger.Error("send payment event failed",
			elog.FieldErr(err),
			elog.String("sn", p.SN),
			elog.String("status", p.Status.String()))
		return fmt.Errorf("send payment event failed: %s: %w", p.SN, err)
	}
	return nil
}
