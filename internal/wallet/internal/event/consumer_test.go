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
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/robertobolla/talkme-sub001/internal/wallet/internal/domain"
	"github.com/robertobolla/talkme-sub001/internal/wallet/internal/service"
	walletmocks "github.com/robertobolla/talkme-sub001/internal/wallet/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPaymentConsumer_Consume(t *testing.T) {
	testCases := []struct {
		name    string
		evt     PaymentEvent
		mock    func(ctrl *gomock.Controller) service.Service
		wantErr error
	}{
		{
			name: "充值成功入账",
			evt:  PaymentEvent{SN: "DP1", Uid: 3, Type: PaymentTypeDeposit, Amount: 1000, Status: PaymentStatusPaid},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := walletmocks.NewMockService(ctrl)
				svc.EXPECT().AddFunds(gomock.Any(), domain.Funds{
					Uid:    3,
					Amount: 1000,
					Key:    "payment:DP1",
					Biz:    "deposit",
					Desc:   "deposit DP1",
				}).Return(nil)
				return svc
			},
		},
		{
			name: "重复的充值消息",
			evt:  PaymentEvent{SN: "DP2", Uid: 3, Type: PaymentTypeDeposit, Amount: 1000, Status: PaymentStatusPaid},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := walletmocks.NewMockService(ctrl)
				svc.EXPECT().AddFunds(gomock.Any(), gomock.Any()).Return(service.ErrDuplicatedWalletLog)
				return svc
			},
		},
		{
			name: "提现成功确认预扣",
			evt:  PaymentEvent{SN: "WD1", Uid: 4, Type: PaymentTypeWithdrawal, Amount: 500, LockID: 7, Status: PaymentStatusPaid},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := walletmocks.NewMockService(ctrl)
				svc.EXPECT().ConfirmDeduct(gomock.Any(), int64(4), int64(7), int64(0)).Return(nil)
				return svc
			},
		},
		{
			name: "提现失败取消预扣",
			evt:  PaymentEvent{SN: "WD2", Uid: 4, Type: PaymentTypeWithdrawal, Amount: 500, LockID: 8, Status: PaymentStatusFailed},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := walletmocks.NewMockService(ctrl)
				svc.EXPECT().CancelDeduct(gomock.Any(), int64(4), int64(8)).Return(nil)
				return svc
			},
		},
		{
			name: "取消预扣失败",
			evt:  PaymentEvent{SN: "WD3", Uid: 4, Type: PaymentTypeWithdrawal, Amount: 500, LockID: 9, Status: PaymentStatusFailed},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := walletmocks.NewMockService(ctrl)
				svc.EXPECT().CancelDeduct(gomock.Any(), int64(4), int64(9)).Return(service.ErrInvalidLockStatus)
				return svc
			},
			wantErr: service.ErrInvalidLockStatus,
		},
		{
			name: "充值失败忽略",
			evt:  PaymentEvent{SN: "DP3", Uid: 3, Type: PaymentTypeDeposit, Amount: 1000, Status: PaymentStatusFailed},
			mock: func(ctrl *gomock.Controller) service.Service {
				return walletmocks.NewMockService(ctrl)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			q := memory.NewMQ()
			require.NoError(t, q.CreateTopic(ctx, paymentEvents, 1))
			c, err := NewPaymentConsumer(tc.mock(ctrl), q)
			require.NoError(t, err)

			producer, err := q.Producer(paymentEvents)
			require.NoError(t, err)
			val, err := json.Marshal(tc.evt)
			require.NoError(t, err)
			_, err = producer.Produce(ctx, &mq.Message{Value: val})
			require.NoError(t, err)

			err = c.Consume(ctx)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
