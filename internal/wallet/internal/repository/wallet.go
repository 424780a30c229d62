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
	"github.com/robertobolla/talkme-sub001/internal/wallet/internal/domain"
	"github.com/robertobolla/talkme-sub001/internal/wallet/internal/repository/dao"
)

var (
	ErrDuplicatedWalletLog = dao.ErrDuplicatedWalletLog
	ErrInsufficientFunds   = dao.ErrInsufficientFunds
	ErrInvalidLockStatus   = dao.ErrInvalidLockStatus
	ErrRecordNotFound      = dao.ErrRecordNotFound
	// ErrRecordChangedConcurrently 钱包被并发修改, 整个操作可以重试
	ErrRecordChangedConcurrently = dao.ErrRecordChangedConcurrently
)

//go:generate mockgen -source=./wallet.go -destination=./mocks/wallet.mock.go -package=repomocks WalletRepository
type WalletRepository interface {
	GetWallet(ctx context.Context, uid int64) (domain.Wallet, error)
	ListLogs(ctx context.Context, uid int64, offset, limit int) ([]domain.WalletLog, error)
	TotalLogs(ctx context.Context, uid int64) (int64, error)
	AddFunds(ctx context.Context, f domain.Funds) (int64, error)
	TryDeduct(ctx context.Context, f domain.Funds) (int64, error)
	ConfirmDeduct(ctx context.Context, uid, lockID, payeeID int64) error
	CancelDeduct(ctx context.Context, uid, lockID int64) error
}

type walletRepository struct {
	dao dao.WalletDAO
}

func NewWalletRepository(d dao.WalletDAO) WalletRepository {
	return &walletRepository{dao: d}
}

func (r *walletRepository) GetWallet(ctx context.Context, uid int64) (domain.Wallet, error) {
	w, err := r.dao.FindWalletByUID(ctx, uid)
	if err != nil {
		return domain.Wallet{}, err
	}
	return domain.Wallet{
		Uid:     w.Uid,
		Balance: w.Balance,
		Locked:  w.Locked,
	}, nil
}

func (r *walletRepository) ListLogs(ctx context.Context, uid int64, offset, limit int) ([]domain.WalletLog, error) {
	logs, err := r.dao.FindLogsByUID(ctx, uid, offset, limit)
	return slice.Map(logs, func(idx int, src dao.WalletLog) domain.WalletLog {
		return r.toDomainLog(src)
	}), err
}

func (r *walletRepository) TotalLogs(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountLogsByUID(ctx, uid)
}

func (r *walletRepository) AddFunds(ctx context.Context, f domain.Funds) (int64, error) {
	return r.dao.Upsert(ctx, f.Uid, f.Amount, r.toEntity(f, f.Amount))
}

func (r *walletRepository) TryDeduct(ctx context.Context, f domain.Funds) (int64, error) {
	return r.dao.CreateLockLog(ctx, r.toEntity(f, -f.Amount))
}

func (r *walletRepository) ConfirmDeduct(ctx context.Context, uid, lockID, payeeID int64) error {
	return r.dao.ConfirmLockLog(ctx, uid, lockID, payeeID)
}

func (r *walletRepository) CancelDeduct(ctx context.Context, uid, lockID int64) error {
	return r.dao.CancelLockLog(ctx, uid, lockID)
}

func (r *walletRepository) toEntity(f domain.Funds, change int64) dao.WalletLog {
	return dao.WalletLog{
		Key:    f.Key,
		Uid:    f.Uid,
		Biz:    f.Biz,
		BizId:  f.BizID,
		Change: change,
		Desc:   f.Desc,
	}
}

func (r *walletRepository) toDomainLog(l dao.WalletLog) domain.WalletLog {
	return domain.WalletLog{
		ID:      l.Id,
		Key:     l.Key,
		Uid:     l.Uid,
		Biz:     l.Biz,
		BizID:   l.BizId,
		Change:  l.Change,
		Balance: l.Balance,
		Status:  domain.WalletLogStatus(l.Status),
		Desc:    l.Desc,
		Ctime:   l.Ctime,
	}
}
