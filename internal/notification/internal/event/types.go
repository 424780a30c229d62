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

const (
	offerEvents   = "offer_events"
	bookingEvents = "booking_events"
	paymentEvents = "payment_events"
)

// OfferEvent 只解析通知需要的字段
type OfferEvent struct {
	Action      string `json:"action"`
	OfferID     int64  `json:"offer_id"`
	SN          string `json:"sn"`
	Title       string `json:"title"`
	ClientID    int64  `json:"client_id"`
	CompanionID int64  `json:"companion_id"`
	ApplicantID int64  `json:"applicant_id"`
	StartAt     int64  `json:"start_at"`
	Budget      int64  `json:"budget"`
}

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

const (
	PaymentTypeDeposit    uint8 = 1
	PaymentTypeWithdrawal uint8 = 2

	PaymentStatusPaid    uint8 = 2
	PaymentStatusFailed  uint8 = 3
	PaymentStatusExpired uint8 = 4
)

type PaymentEvent struct {
	SN     string `json:"sn"`
	Uid    int64  `json:"uid"`
	Type   uint8  `json:"type"`
	Asset  string `json:"asset"`
	Amount int64  `json:"amount"`
	Status uint8  `json:"status"`
}
