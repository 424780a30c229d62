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

	"github.com/ecodeclub/ekit/retry"
	"github.com/gotomicro/ego/core/elog"
	"github.com/robertobolla/talkme-sub001/internal/wallet/internal/domain"
	"github.com/robertobolla/talkme-sub001/internal/wallet/internal/repository"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInsufficientFunds   = repository.ErrInsufficientFunds
	ErrDuplicatedWalletLog = repository.ErrDuplicatedWalletLog
	ErrInvalidLockStatus   = repository.ErrInvalidLockStatus
	ErrRecordNotFound      = repository.ErrRecordNotFound
	ErrInvalidFunds        = errors.New("invalid funds request")
	// ErrRecordChangedConcurrently 重试之后仍然冲突
	ErrRecordChangedConcurrently = repository.ErrRecordChangedConcurrently
)

//go:generate mockgen -source=./service.go -destination=../../mocks/wallet.mock.go -package=walletmocks Service
type Service interface {
	// GetWallet 钱包不存在时返回零余额
	GetWallet(ctx context.Context, uid int64) (domain.Wallet, error)
	ListLogs(ctx context.Context, uid int64, offset, limit int) ([]domain.WalletLog, int64, error)
	AddFunds(ctx context.Context, f domain.Funds) error
	// TryDeduct 预扣, 返回预扣流水ID
	TryDeduct(ctx context.Context, f domain.Funds) (int64, error)
	// ConfirmDeduct 确认预扣, payeeID 非 0 时同一事务内给收款方入账
	ConfirmDeduct(ctx context.Context, uid, lockID, payeeID int64) error
	CancelDeduct(ctx context.Context, uid, lockID int64) error
}

type retryStrategy interface {
	Next() (time.Duration, bool)
}

type service struct {
	repo repository.WalletRepository
	// newRetry 每次写操作新建一个退避策略, 版本号冲突时整个事务重做
	newRetry func() (retryStrategy, error)
	logger   *elog.Component
}

func NewWalletService(repo repository.WalletRepository) Service {
	return &service{
		repo: repo,
		newRetry: func() (retryStrategy, error) {
			return retry.NewExponentialBackoffRetryStrategy(10*time.Millisecond, 200*time.Millisecond, 5)
		},
		logger: elog.DefaultLogger,
	}
}

// withRetry 只重试并发冲突, 其余错误直接返回, 每次重做的都是一个完整事务
func (s *service) withRetry(ctx context.Context, op string, uid int64, fn func() error) error {
	strategy, err := s.newRetry()
	if err != nil {
		return err
	}
	for {
		err = fn()
		if !errors.Is(err, ErrRecordChangedConcurrently) {
			return err
		}
		next, ok := strategy.Next()
		if !ok {
			return err
		}
		if ctx.Err() != nil {
			return errors.Join(err, ctx.Err())
		}
		s.logger.Warn("wallet changed concurrently, retrying",
			elog.String("op", op),
			elog.Int64("uid", uid),
			elog.FieldCost(next))
		timer := time.NewTimer(next)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.Join(err, ctx.Err())
		case <-timer.C:
		}
	}
}

func (s *service) GetWallet(ctx context.Context, uid int64) (domain.Wallet, error) {
	w, err := s.repo.GetWallet(ctx, uid)
	if errors.Is(err, ErrRecordNotFound) {
		return domain.Wallet{Uid: uid}, nil
	}
	return w, err
}

func (s *service) ListLogs(ctx context.Context, uid int64, offset, limit int) ([]domain.WalletLog, int64, error) {
	var (
		eg    errgroup.Group
		logs  []domain.WalletLog
		total int64
	)
	eg.Go(func() error {
		var err error
		logs, err = s.repo.ListLogs(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalLogs(ctx, uid)
		return err
	})
	return logs, total, eg.Wait()
}

func (s *service) AddFunds(ctx context.Context, f domain.Funds) error {
	if err := s.validate(f); err != nil {
		return err
	}
	return s.withRetry(ctx, "AddFunds", f.Uid, func() error {
		_, err := s.repo.AddFunds(ctx, f)
		return err
	})
}

func (s *service) TryDeduct(ctx context.Context, f domain.Funds) (int64, error) {
	if err := s.validate(f); err != nil {
		return 0, err
	}
	var id int64
	err := s.withRetry(ctx, "TryDeduct", f.Uid, func() error {
		var err error
		id, err = s.repo.TryDeduct(ctx, f)
		return err
	})
	return id, err
}

func (s *service) validate(f domain.Funds) error {
	if f.Uid <= 0 || f.Amount <= 0 || f.Key == "" {
		return fmt.Errorf("%w: uid %d, amount %d, key %q", ErrInvalidFunds, f.Uid, f.Amount, f.Key)
	}
	return nil
}

func (s *service) ConfirmDeduct(ctx context.Context, uid, lockID, payeeID int64) error {
	if payeeID == uid {
		return fmt.Errorf("%w: payee is the payer %d", ErrInvalidFunds, uid)
	}
	return s.withRetry(ctx, "ConfirmDeduct", uid, func() error {
		return s.repo.ConfirmDeduct(ctx, uid, lockID, payeeID)
	})
}

func (s *service) CancelDeduct(ctx context.Context, uid, lockID int64) error {
	return s.withRetry(ctx, "CancelDeduct", uid, func() error {
		return s.repo.CancelDeduct(ctx, uid, lockID)
	})
}
