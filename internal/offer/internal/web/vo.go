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

package web

import (
	"github.com/robertobolla/talkme-sub001/internal/offer/internal/domain"
)

type Offer struct {
	ID              int64       `json:"id"`
	SN              string      `json:"sn"`
	ClientID        int64       `json:"clientId"`
	CompanionID     int64       `json:"companionId"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Specialty       string      `json:"specialty"`
	StartAt         int64       `json:"startAt"`
	DurationMinutes int         `json:"durationMinutes"`
	Budget          int64       `json:"budget"`
	Status          string      `json:"status"`
	Applicants      []Applicant `json:"applicants,omitempty"`
	Ctime           int64       `json:"ctime"`
	Utime           int64       `json:"utime"`
}

func newOffer(o domain.Offer) Offer {
	res := Offer{
		ID:              o.ID,
		SN:              o.SN,
		ClientID:        o.ClientID,
		CompanionID:     o.CompanionID,
		Title:           o.Title,
		Description:     o.Description,
		Specialty:       o.Specialty,
		StartAt:         o.StartAt,
		DurationMinutes: o.DurationMinutes,
		Budget:          o.Budget,
		Status:          o.Status.String(),
		Ctime:           o.Ctime,
		Utime:           o.Utime,
	}
	for _, a := range o.Applicants {
		res.Applicants = append(res.Applicants, newApplicant(a))
	}
	return res
}

type Applicant struct {
	ID          int64  `json:"id"`
	OfferID     int64  `json:"offerId"`
	CompanionID int64  `json:"companionId"`
	Message     string `json:"message"`
	Status      string `json:"status"`
	Ctime       int64  `json:"ctime"`
}

func newApplicant(a domain.Applicant) Applicant {
	return Applicant{
		ID:          a.ID,
		OfferID:     a.OfferID,
		CompanionID: a.CompanionID,
		Message:     a.Message,
		Status:      a.Status.String(),
		Ctime:       a.Ctime,
	}
}

type CreateReq struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Specialty       string `json:"specialty"`
	StartAt         int64  `json:"startAt"`
	DurationMinutes int    `json:"durationMinutes"`
	Budget          int64  `json:"budget"`
}

type ListPublishedReq struct {
	Specialty string `json:"specialty"`
	Offset    int    `json:"offset"`
	Limit     int    `json:"limit"`
}

type ListMineReq struct {
	// Status 为空时返回全部
	Status string `json:"status"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type ApplyReq struct {
	OfferID int64  `json:"offerId"`
	Message string `json:"message"`
}
