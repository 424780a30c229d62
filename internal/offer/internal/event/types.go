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
	offerEvents   = "offer_events"
	bookingEvents = "booking_events"
)

const (
	ActionApplied   = "applied"
	ActionWithdrawn = "withdrawn"
	ActionAccepted  = "accepted"
	ActionRejected  = "rejected"
	ActionCancelled = "cancelled"
	ActionCompleted = "completed"
	ActionExpired   = "expired"
)

// OfferEvent 需求状态变化, 预约模块和通知模块都会消费
type OfferEvent struct {
	Action          string `json:"action"`
	OfferID         int64  `json:"offer_id"`
	SN              string `json:"sn"`
	Title           string `json:"title"`
	ClientID        int64  `json:"client_id"`
	CompanionID     int64  `json:"companion_id"`
	ApplicantID     int64  `json:"applicant_id"`
	StartAt         int64  `json:"start_at"`
	DurationMinutes int    `json:"duration_minutes"`
	Budget          int64  `json:"budget"`
	LockID          int64  `json:"lock_id"`
	// OccurredAt 状态变化的时间, 毫秒
	OccurredAt      int64  `json:"occurred_at"`
}

func (e OfferEvent) MessageKey() string {
	return strconv.FormatInt(e.OfferID, 10)
}

// BookingEvent 只关心和需求关联的会话
type BookingEvent struct {
	Action    string `json:"action"`
	SessionID int64  `json:"session_id"`
	OfferID   int64  `json:"offer_id"`
}
