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
	"github.com/robertobolla/talkme-sub001/internal/availability"
	"github.com/robertobolla/talkme-sub001/internal/booking/internal/domain"
)

type Session struct {
	ID           int64  `json:"id"`
	SN           string `json:"sn"`
	ClientID     int64  `json:"clientId"`
	CompanionID  int64  `json:"companionId"`
	OfferID      int64  `json:"offerId,omitempty"`
	StartAt      int64  `json:"startAt"`
	EndAt        int64  `json:"endAt"`
	Price        int64  `json:"price"`
	Status       string `json:"status"`
	Note         string `json:"note"`
	RejectReason string `json:"rejectReason,omitempty"`
	Ctime        int64  `json:"ctime"`
	Utime        int64  `json:"utime"`
}

func newSession(s domain.Session) Session {
	return Session{
		ID:           s.ID,
		SN:           s.SN,
		ClientID:     s.ClientID,
		CompanionID:  s.CompanionID,
		OfferID:      s.OfferID,
		StartAt:      s.StartAt,
		EndAt:        s.EndAt,
		Price:        s.Price,
		Status:       s.Status.String(),
		Note:         s.Note,
		RejectReason: s.RejectReason,
		Ctime:        s.Ctime,
		Utime:        s.Utime,
	}
}

type Slot struct {
	StartAt int64 `json:"startAt"`
	EndAt   int64 `json:"endAt"`
}

func newSlot(w availability.Window) Slot {
	return Slot{StartAt: w.Start.UnixMilli(), EndAt: w.End.UnixMilli()}
}

type Room struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type SlotsReq struct {
	CompanionID int64 `json:"companionId"`
	// From 毫秒时间戳, 为 0 时从当前时间开始
	From            int64 `json:"from"`
	Days            int   `json:"days"`
	DurationMinutes int   `json:"durationMinutes"`
}

type BookReq struct {
	CompanionID     int64  `json:"companionId"`
	StartAt         int64  `json:"startAt"`
	DurationMinutes int    `json:"durationMinutes"`
	Note            string `json:"note"`
}

type RejectReq struct {
	ID     int64  `json:"id"`
	Reason string `json:"reason"`
}

type ListReq struct {
	// Role 按 client 还是 companion 身份查询, 为空时取登录身份
	Role   string `json:"role"`
	Status string `json:"status"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type IDReq struct {
	ID int64 `json:"id"`
}
