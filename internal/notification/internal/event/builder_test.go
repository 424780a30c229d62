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

import (
	"testing"
	"time"

	"github.com/robertobolla/talkme-sub001/internal/notification/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestOfferNotifications(t *testing.T) {
	startAt := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC).UnixMilli()
	testCases := []struct {
		name string
		evt  OfferEvent
		want []domain.Notification
	}{
		{
			name: "申请通知发布人",
			evt:  OfferEvent{Action: "applied", OfferID: 1, Title: "Walk", ClientID: 10, CompanionID: 20, ApplicantID: 3},
			want: []domain.Notification{{
				Key:     "offer:1:applied:10",
				Uid:     10,
				Type:    "applied",
				Title:   "New application",
				Content: `A companion applied to your offer "Walk".`,
				Biz:     domain.BizOffer,
				BizID:   1,
			}},
		},
		{
			name: "接受通知陪伴者",
			evt:  OfferEvent{Action: "accepted", OfferID: 1, Title: "Walk", ClientID: 10, CompanionID: 20, StartAt: startAt},
			want: []domain.Notification{{
				Key:     "offer:1:accepted:20",
				Uid:     20,
				Type:    "accepted",
				Title:   "Application accepted",
				Content: `Your application to "Walk" was accepted. The session starts at 2026-03-02 10:00 UTC.`,
				Biz:     domain.BizOffer,
				BizID:   1,
			}},
		},
		{
			name: "完成通知双方",
			evt:  OfferEvent{Action: "completed", OfferID: 2, Title: "Chat", ClientID: 10, CompanionID: 20, Budget: 12345},
			want: []domain.Notification{
				{
					Key:     "offer:2:completed:10",
					Uid:     10,
					Type:    "completed",
					Title:   "Offer completed",
					Content: `The offer "Chat" is completed.`,
					Biz:     domain.BizOffer,
					BizID:   2,
				},
				{
					Key:     "offer:2:completed:20",
					Uid:     20,
					Type:    "completed",
					Title:   "Offer completed",
					Content: `The offer "Chat" is completed. 123.45 has been paid to your wallet.`,
					Biz:     domain.BizOffer,
					BizID:   2,
				},
			},
		},
		{
			name: "未知动作",
			evt:  OfferEvent{Action: "unknown", OfferID: 1},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, offerNotifications(tc.evt))
		})
	}
}

func TestBookingNotifications(t *testing.T) {
	startAt := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC).UnixMilli()
	testCases := []struct {
		name string
		evt  BookingEvent
		want []domain.Notification
	}{
		{
			name: "预约通知陪伴者",
			evt:  BookingEvent{Action: "booked", SessionID: 7, ClientID: 10, CompanionID: 20, StartAt: startAt},
			want: []domain.Notification{{
				Key:     "session:7:booked:20",
				Uid:     20,
				Type:    "booked",
				Title:   "New booking request",
				Content: "You have a new session request at 2026-03-02 10:00 UTC.",
				Biz:     domain.BizSession,
				BizID:   7,
			}},
		},
		{
			name: "拒绝带原因",
			evt:  BookingEvent{Action: "rejected", SessionID: 7, ClientID: 10, CompanionID: 20, StartAt: startAt, Reason: "busy"},
			want: []domain.Notification{{
				Key:     "session:7:rejected:10",
				Uid:     10,
				Type:    "rejected",
				Title:   "Session rejected",
				Content: "Your session request at 2026-03-02 10:00 UTC was rejected. Reason: busy",
				Biz:     domain.BizSession,
				BizID:   7,
			}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, bookingNotifications(tc.evt))
		})
	}
}

func TestPaymentNotifications(t *testing.T) {
	testCases := []struct {
		name string
		evt  PaymentEvent
		want []domain.Notification
	}{
		{
			name: "充值到账",
			evt:  PaymentEvent{SN: "DP1", Uid: 3, Type: PaymentTypeDeposit, Asset: "USDT", Amount: 5000, Status: PaymentStatusPaid},
			want: []domain.Notification{{
				Key:     "payment:DP1:deposit_paid:3",
				Uid:     3,
				Type:    "deposit_paid",
				Title:   "Deposit received",
				Content: "Your deposit DP1 of 50.00 USDT was credited.",
				Biz:     domain.BizPayment,
			}},
		},
		{
			name: "提现失败",
			evt:  PaymentEvent{SN: "WD1", Uid: 3, Type: PaymentTypeWithdrawal, Asset: "USDT", Amount: 105, Status: PaymentStatusFailed},
			want: []domain.Notification{{
				Key:     "payment:WD1:withdrawal_failed:3",
				Uid:     3,
				Type:    "withdrawal_failed",
				Title:   "Withdrawal failed",
				Content: "Your withdrawal WD1 of 1.05 USDT failed. The funds were returned to your wallet.",
				Biz:     domain.BizPayment,
			}},
		},
		{
			name: "处理中忽略",
			evt:  PaymentEvent{SN: "DP2", Uid: 3, Type: PaymentTypeDeposit, Status: 1},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, paymentNotifications(tc.evt))
		})
	}
}
