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

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/robertobolla/talkme-sub001/internal/notification/internal/domain"
	"github.com/robertobolla/talkme-sub001/internal/notification/internal/repository"
	repomocks "github.com/robertobolla/talkme-sub001/internal/notification/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Notify(t *testing.T) {
	testCases := []struct {
		name    string
		ns      []domain.Notification
		mock    func(ctrl *gomock.Controller) repository.NotificationRepository
		wantErr error
	}{
		{
			name: "全部写入",
			ns: []domain.Notification{
				{Key: "k1", Uid: 1, Title: "t1", Content: "c1"},
				{Key: "k2", Uid: 2, Title: "t2", Content: "c2"},
			},
			mock: func(ctrl *gomock.Controller) repository.NotificationRepository {
				repo := repomocks.NewMockNotificationRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), domain.Notification{Key: "k1", Uid: 1, Title: "t1", Content: "c1"}).Return(int64(1), nil)
				repo.EXPECT().Create(gomock.Any(), domain.Notification{Key: "k2", Uid: 2, Title: "t2", Content: "c2"}).Return(int64(2), nil)
				return repo
			},
		},
		{
			name: "重复的key跳过",
			ns: []domain.Notification{
				{Key: "k1", Uid: 1},
				{Key: "k2", Uid: 2},
			},
			mock: func(ctrl *gomock.Controller) repository.NotificationRepository {
				repo := repomocks.NewMockNotificationRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), domain.Notification{Key: "k1", Uid: 1}).Return(int64(0), repository.ErrDuplicatedKey)
				repo.EXPECT().Create(gomock.Any(), domain.Notification{Key: "k2", Uid: 2}).Return(int64(2), nil)
				return repo
			},
		},
		{
			name: "没有接收人跳过",
			ns:   []domain.Notification{{Key: "k1"}},
			mock: func(ctrl *gomock.Controller) repository.NotificationRepository {
				return repomocks.NewMockNotificationRepository(ctrl)
			},
		},
		{
			name: "内容过长截断",
			ns:   []domain.Notification{{Key: "k1", Uid: 1, Content: strings.Repeat("a", maxContentBytes+10)}},
			mock: func(ctrl *gomock.Controller) repository.NotificationRepository {
				repo := repomocks.NewMockNotificationRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), domain.Notification{
					Key:     "k1",
					Uid:     1,
					Content: strings.Repeat("a", maxContentBytes),
				}).Return(int64(1), nil)
				return repo
			},
		},
		{
			name: "写入失败",
			ns:   []domain.Notification{{Key: "k1", Uid: 1}, {Key: "k2", Uid: 2}},
			mock: func(ctrl *gomock.Controller) repository.NotificationRepository {
				repo := repomocks.NewMockNotificationRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("mock db error"))
				return repo
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			err := svc.Notify(context.Background(), tc.ns...)
			if tc.wantErr != nil {
				assert.ErrorContains(t, err, tc.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockNotificationRepository(ctrl)
	repo.EXPECT().List(gomock.Any(), int64(1), true, 0, 20).
		Return([]domain.Notification{{ID: 3, Uid: 1}}, nil)
	repo.EXPECT().Count(gomock.Any(), int64(1), true).Return(int64(5), nil)

	ns, total, err := NewService(repo).List(context.Background(), 1, true, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Equal(t, []domain.Notification{{ID: 3, Uid: 1}}, ns)
}

func TestService_MarkRead(t *testing.T) {
	t.Run("空的ID列表", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cnt, err := NewService(repomocks.NewMockNotificationRepository(ctrl)).MarkRead(context.Background(), 1, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(0), cnt)
	})
	t.Run("标记已读", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockNotificationRepository(ctrl)
		repo.EXPECT().MarkRead(gomock.Any(), int64(1), []int64{3, 4}).Return(int64(1), nil)
		cnt, err := NewService(repo).MarkRead(context.Background(), 1, []int64{3, 4})
		require.NoError(t, err)
		assert.Equal(t, int64(1), cnt)
	})
}
