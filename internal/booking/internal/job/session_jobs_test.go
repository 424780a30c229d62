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
	"time"

	svcmocks "github.com/robertobolla/talkme-sub001/internal/booking/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExpirePendingSessionsJob_Run(t *testing.T) {
	t.Run("分页处理", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := svcmocks.NewMockService(ctrl)
		gomock.InOrder(
			svc.EXPECT().ExpirePending(gomock.Any(), 3).Return(3, nil),
			svc.EXPECT().ExpirePending(gomock.Any(), 3).Return(0, nil),
		)
		j := NewExpirePendingSessionsJob(svc, 3)
		assert.Equal(t, "ExpirePendingSessionsJob", j.Name())
		require.NoError(t, j.Run(context.Background()))
	})

	t.Run("出错", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := svcmocks.NewMockService(ctrl)
		svc.EXPECT().ExpirePending(gomock.Any(), 3).Return(1, errors.New("mock db error"))
		assert.Error(t, NewExpirePendingSessionsJob(svc, 3).Run(context.Background()))
	})
}

func TestCompleteFinishedSessionsJob_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := svcmocks.NewMockService(ctrl)
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	before := now.Add(-30 * time.Minute)
	gomock.InOrder(
		svc.EXPECT().CompleteFinished(gomock.Any(), before, 2).Return(2, nil),
		svc.EXPECT().CompleteFinished(gomock.Any(), before, 2).Return(1, nil),
	)
	j := NewCompleteFinishedSessionsJob(svc, 30*time.Minute, 2)
	j.now = func() time.Time { return now }
	assert.Equal(t, "CompleteFinishedSessionsJob", j.Name())
	require.NoError(t, j.Run(context.Background()))
}
