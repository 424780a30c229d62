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
	"database/sql"

	"github.com/ecodeclub/ekit/slice"
	"github.com/robertobolla/talkme-sub001/internal/payment/internal/domain"
	"github.com/robertobolla/talkme-sub001/internal/payment/internal/repository/dao"
)

var (
	ErrRecordNotFound    = dao.ErrRecordNotFound
	ErrInvalidTransition = dao.ErrInvalidTransition
	ErrDuplicatedTxHash  = dao.ErrDuplicatedTxHash
)

//go:generate mockgen -source=./payment.go -package=repomocks -destination=./mocks/payment.mock.go PaymentRepository
type PaymentRepository interface {
	Create(ctx context.Context, p domain.Payment) (int64, error)
	FindBySN(ctx context.Context, sn string) (domain.Payment, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Payment, error)
	Count(ctx context.Context, uid int64) (int64, error)
	// UpdateStatus pending -> to, 同时记录交易哈希和到账时间
	UpdateStatus(ctx context.Context, sn string, to domain.PaymentStatus, txHash string, paidAt int64) error
	FindExpiredDeposits(ctx context.Context, now int64, limit int) ([]domain.Payment, error)
}

type paymentRepository struct {
	dao dao.PaymentDAO
}

func NewPaymentRepository(d dao.PaymentDAO) PaymentRepository {
	return &paymentRepository{dao: d}
}

func (r *paymentRepository) Create(ctx context.Context, p domain.Payment) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(p))
}

func (r *paymentRepository) FindBySN(ctx context.Context, sn string) (domain.Payment, error) {
	p, err := r.dao.FindBySN(ctx, sn)
	return r.toDomain(p), err
}

func (r *paymentRepository) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Payment, error) {
	ps, err := r.dao.ListByUid(ctx, uid, offset, limit)
	return slice.Map(ps, func(idx int, src dao.Payment) domain.Payment {
		return r.toDomain(src)
	}), err
}

func (r *paymentRepository) Count(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountByUid(ctx, uid)
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, sn string, to domain.PaymentStatus, txHash string, paidAt int64) error {
	return r.dao.UpdateStatus(ctx, sn, to.ToUint8(), txHash, paidAt)
}

func (r *paymentRepository) FindExpiredDeposits(ctx context.Context, now int64, limit int) ([]domain.Payment, error) {
	ps, err := r.dao.FindExpiredDeposits(ctx, now, limit)
	return slice.Map(ps, func(idx int, src dao.Payment) domain.Payment {
		return r.toDomain(src)
	}), err
}

func (r *paymentRepository) toEntity(p domain.Payment) dao.Payment {
	return dao.Payment{
		Id:      p.ID,
		SN:      p.SN,
		Uid:     p.Uid,
		Type:    p.Type.ToUint8(),
		Asset:   p.Asset,
		Network: p.Network,
		Amount:  p.Amount,
		Address: p.Address,
		TxHash: sql.NullString{
			String: p.TxHash,
			Valid:  p.TxHash != "",
		},
		LockID:    p.LockID,
		Status:    p.Status.ToUint8(),
		ExpiredAt: p.ExpiredAt,
		PaidAt:    p.PaidAt,
	}
}

func (r *paymentRepository) toDomain(p dao.Payment) domain.Payment {
	return domain.Payment{
		ID:        p.Id,
		SN:        p.SN,
		Uid:       p.Uid,
		Type:      domain.PaymentType(p.Type),
		Asset:     p.Asset,
		Network:   p.Network,
		Amount:    p.Amount,
		Address:   p.Address,
		TxHash:    p.TxHash.String,
		LockID:    p.LockID,
		Status:    domain.PaymentStatus(p.Status),
		ExpiredAt: p.ExpiredAt,
		PaidAt:    p.PaidAt,
		Ctime:     p.Ctime,
		Utime:     p.Utime,
	}
}
