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

package event

import "strconv"

const (
	bookingEvents = "booking_events"
	offerEvents   = "offer_events"
)

const (
	ActionBooked    = "booked"
	ActionConfirmed = "confirmed"
	ActionRejected  = "rejected"
	ActionCancelled = "cancelled"
	ActionCompleted = "completed"
	ActionExpired   = "expired"
)

// 需求事件中会话关心的动作
const (
	OfferActionAccepted  = "accepted"
	OfferActionCancelled = "cancelled"
	OfferActionCompleted = "completed"
)

// BookingEvent 会话每次状态变化都会发送, 需求模块和通知模块消费
type BookingEvent struct {
	Action      string `json:"action"`
	SessionID   int64  `json:"session_id"`
	SN          string `json:"sn"`
	OfferID     int64  `json:"offer_id"`
	ClientID    int64  `json:"client_id"`
	CompanionID int64  `json:"companion_id"`
	StartAt     int64  `json:"start_at"`
	EndAt       int64  `json:"end_at"`
	Price       int64  `json:"price"`
	Reason      string `json:"reason,omitempty"`
}

func (e BookingEvent) MessageKey() string {
	return strconv.FormatInt(e.SessionID, 10)
}

// OfferEvent 需求模块发出的事件, 这里只解析会话需要的字段
type OfferEvent struct {
	Action          string `json:"action"`
	OfferID         int64  `json:"offer_id"`
	SN              string `json:"sn"`
	ClientID        int64  `json:"client_id"`
	CompanionID     int64  `json:"companion_id"`
	StartAt         int64  `json:"start_at"`
	DurationMinutes int    `json:"duration_minutes"`
	Budget          int64  `json:"budget"`
	LockID          int64  `json:"lock_id"`
	// OccurredAt 需求状态变化的时间, 毫秒
	OccurredAt      int64  `json:"occurred_at"`
}
