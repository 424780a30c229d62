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

package job

import (
	"context"
	"errors"
	"testing"

	svcmocks "github.com/robertobolla/talkme-sub001/internal/payment/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCloseExpiredDepositsJob_Run(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(svc *svcmocks.MockService)
		wantErr bool
	}{
		{
			name: "分页直到不足一页",
			mock: func(svc *svcmocks.MockService) {
				gomock.InOrder(
					svc.EXPECT().CloseExpiredDeposits(gomock.Any(), 5).Return(5, nil),
					svc.EXPECT().CloseExpiredDeposits(gomock.Any(), 5).Return(2, nil),
				)
			},
		},
		{
			name: "出错",
			mock: func(svc *svcmocks.MockService) {
				svc.EXPECT().CloseExpiredDeposits(gomock.Any(), 5).Return(0, errors.New("mock db error"))
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := svcmocks.NewMockService(ctrl)
			tc.mock(svc)
			j := NewCloseExpiredDepositsJob(svc, 5)
			assert.Equal(t, "close_expired_deposits_job", j.Name())
			err := j.Run(context.Background())
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
