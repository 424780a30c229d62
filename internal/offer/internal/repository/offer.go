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
	"github.com/robertobolla/talkme-sub001/internal/offer/internal/domain"
	"github.com/robertobolla/talkme-sub001/internal/offer/internal/repository/dao"
)

var (
	ErrRecordNotFound    = dao.ErrRecordNotFound
	ErrAlreadyApplied    = dao.ErrAlreadyApplied
	ErrInvalidTransition = dao.ErrInvalidTransition
)

//go:generate mockgen -source=./offer.go -package=repomocks -destination=./mocks/offer.mock.go OfferRepository
type OfferRepository interface {
	Create(ctx context.Context, o domain.Offer) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Offer, error)
	ListPublished(ctx context.Context, specialty string, now int64, offset, limit int) ([]domain.Offer, error)
	CountPublished(ctx context.Context, specialty string, now int64) (int64, error)
	ListByClient(ctx context.Context, clientID int64, status domain.OfferStatus, offset, limit int) ([]domain.Offer, error)
	CountByClient(ctx context.Context, clientID int64, status domain.OfferStatus) (int64, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.OfferStatus) error
	Accept(ctx context.Context, offerID, applicantID, companionID, lockID int64) error
	Close(ctx context.Context, id int64, from, to domain.OfferStatus) error
	FindExpired(ctx context.Context, now int64, limit int) ([]domain.Offer, error)

	CreateApplicant(ctx context.Context, a domain.Applicant) (int64, error)
	FindApplicantByID(ctx context.Context, id int64) (domain.Applicant, error)
	ListApplicants(ctx context.Context, offerID int64) ([]domain.Applicant, error)
	ListApplications(ctx context.Context, companionID int64, offset, limit int) ([]domain.Applicant, error)
	CountApplications(ctx context.Context, companionID int64) (int64, error)
	UpdateApplicantStatus(ctx context.Context, id int64, from, to domain.ApplicantStatus) error
}

type offerRepository struct {
	dao dao.OfferDAO
}

func NewOfferRepository(d dao.OfferDAO) OfferRepository {
	return &offerRepository{dao: d}
}

func (r *offerRepository) Create(ctx context.Context, o domain.Offer) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(o))
}

func (r *offerRepository) FindByID(ctx context.Context, id int64) (domain.Offer, error) {
	o, err := r.dao.FindByID(ctx, id)
	return r.toDomain(o), err
}

func (r *offerRepository) ListPublished(ctx context.Context, specialty string, now int64, offset, limit int) ([]domain.Offer, error) {
	os, err := r.dao.ListPublished(ctx, specialty, now, offset, limit)
	return r.toDomains(os), err
}

func (r *offerRepository) CountPublished(ctx context.Context, specialty string, now int64) (int64, error) {
	return r.dao.CountPublished(ctx, specialty, now)
}

func (r *offerRepository) ListByClient(ctx context.Context, clientID int64, status domain.OfferStatus, offset, limit int) ([]domain.Offer, error) {
	os, err := r.dao.ListByClient(ctx, clientID, status.ToUint8(), offset, limit)
	return r.toDomains(os), err
}

func (r *offerRepository) CountByClient(ctx context.Context, clientID int64, status domain.OfferStatus) (int64, error) {
	return r.dao.CountByClient(ctx, clientID, status.ToUint8())
}

func (r *offerRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.OfferStatus) error {
	return r.dao.UpdateStatus(ctx, id, from.ToUint8(), to.ToUint8())
}

func (r *offerRepository) Accept(ctx context.Context, offerID, applicantID, companionID, lockID int64) error {
	return r.dao.Accept(ctx, offerID, applicantID, companionID, lockID)
}

func (r *offerRepository) Close(ctx context.Context, id int64, from, to domain.OfferStatus) error {
	return r.dao.Close(ctx, id, from.ToUint8(), to.ToUint8())
}

func (r *offerRepository) FindExpired(ctx context.Context, now int64, limit int) ([]domain.Offer, error) {
	os, err := r.dao.FindExpired(ctx, now, limit)
	return r.toDomains(os), err
}

func (r *offerRepository) CreateApplicant(ctx context.Context, a domain.Applicant) (int64, error) {
	return r.dao.CreateApplicant(ctx, dao.Applicant{
		Id:          a.ID,
		OfferID:     a.OfferID,
		CompanionID: a.CompanionID,
		Message:     a.Message,
		Status:      a.Status.ToUint8(),
	})
}

func (r *offerRepository) FindApplicantByID(ctx context.Context, id int64) (domain.Applicant, error) {
	a, err := r.dao.FindApplicantByID(ctx, id)
	return r.toApplicant(a), err
}

func (r *offerRepository) ListApplicants(ctx context.Context, offerID int64) ([]domain.Applicant, error) {
	as, err := r.dao.ListApplicantsByOffer(ctx, offerID)
	return r.toApplicants(as), err
}

func (r *offerRepository) ListApplications(ctx context.Context, companionID int64, offset, limit int) ([]domain.Applicant, error) {
	as, err := r.dao.ListApplicationsByCompanion(ctx, companionID, offset, limit)
	return r.toApplicants(as), err
}

func (r *offerRepository) CountApplications(ctx context.Context, companionID int64) (int64, error) {
	return r.dao.CountApplicationsByCompanion(ctx, companionID)
}

func (r *offerRepository) UpdateApplicantStatus(ctx context.Context, id int64, from, to domain.ApplicantStatus) error {
	return r.dao.UpdateApplicantStatus(ctx, id, from.ToUint8(), to.ToUint8())
}

func (r *offerRepository) toEntity(o domain.Offer) dao.Offer {
	return dao.Offer{
		Id:              o.ID,
		SN:              o.SN,
		ClientID:        o.ClientID,
		CompanionID:     o.CompanionID,
		Title:           o.Title,
		Description:     o.Description,
		Specialty:       o.Specialty,
		StartAt:         o.StartAt,
		DurationMinutes: o.DurationMinutes,
		Budget:          o.Budget,
		Status:          o.Status.ToUint8(),
		LockID:          o.LockID,
	}
}

func (r *offerRepository) toDomain(o dao.Offer) domain.Offer {
	return domain.Offer{
		ID:              o.Id,
		SN:              o.SN,
		ClientID:        o.ClientID,
		CompanionID:     o.CompanionID,
		Title:           o.Title,
		Description:     o.Description,
		Specialty:       o.Specialty,
		StartAt:         o.StartAt,
		DurationMinutes: o.DurationMinutes,
		Budget:          o.Budget,
		Status:          domain.OfferStatus(o.Status),
		LockID:          o.LockID,
		Ctime:           o.Ctime,
		Utime:           o.Utime,
	}
}

func (r *offerRepository) toDomains(os []dao.Offer) []domain.Offer {
	return slice.Map(os, func(idx int, src dao.Offer) domain.Offer {
		return r.toDomain(src)
	})
}

func (r *offerRepository) toApplicant(a dao.Applicant) domain.Applicant {
	return domain.Applicant{
		ID:          a.Id,
		OfferID:     a.OfferID,
		CompanionID: a.CompanionID,
		Message:     a.Message,
		Status:      domain.ApplicantStatus(a.Status),
		Ctime:       a.Ctime,
		Utime:       a.Utime,
	}
}

func (r *offerRepository) toApplicants(as []dao.Applicant) []domain.Applicant {
	return slice.Map(as, func(idx int, src dao.Applicant) domain.Applicant {
		return r.toApplicant(src)
	})
}
