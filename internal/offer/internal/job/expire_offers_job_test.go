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

	svcmocks "github.com/robertobolla/talkme-sub001/internal/offer/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExpireOffersJob_Run(t *testing.T) {
	t.Run("分页处理", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := svcmocks.NewMockService(ctrl)
		gomock.InOrder(
			svc.EXPECT().ExpireOffers(gomock.Any(), 2).Return(2, nil),
			svc.EXPECT().ExpireOffers(gomock.Any(), 2).Return(1, nil),
		)
		j := NewExpireOffersJob(svc, 2)
		assert.Equal(t, "ExpireOffersJob", j.Name())
		require.NoError(t, j.Run(context.Background()))
	})

	t.Run("出错", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := svcmocks.NewMockService(ctrl)
		svc.EXPECT().ExpireOffers(gomock.Any(), 2).Return(0, errors.New("mock db error"))
		err := NewExpireOffersJob(svc, 2).Run(context.Background())
		assert.Error(t, err)
	})
}
