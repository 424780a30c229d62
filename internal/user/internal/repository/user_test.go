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

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/robertobolla/talkme-sub001/internal/user/internal/domain"
	"github.com/robertobolla/talkme-sub001/internal/user/internal/repository/cache"
	cachemocks "github.com/robertobolla/talkme-sub001/internal/user/internal/repository/cache/mocks"
	"github.com/robertobolla/talkme-sub001/internal/user/internal/repository/dao"
	daomocks "github.com/robertobolla/talkme-sub001/internal/user/internal/repository/dao/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCachedUserRepository_FindById(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) (dao.UserDAO, cache.UserCache)
		wantUser domain.User
		wantErr  error
	}{
		{
			name: "命中缓存",
			mock: func(ctrl *gomock.Controller) (dao.UserDAO, cache.UserCache) {
				d := daomocks.NewMockUserDAO(ctrl)
				c := cachemocks.NewMockUserCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(1)).Return(domain.User{Id: 1, Name: "cached"}, nil)
				return d, c
			},
			wantUser: domain.User{Id: 1, Name: "cached"},
		},
		{
			name: "未命中回源并回写",
			mock: func(ctrl *gomock.Controller) (dao.UserDAO, cache.UserCache) {
				d := daomocks.NewMockUserDAO(ctrl)
				c := cachemocks.NewMockUserCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(1)).Return(domain.User{}, cache.ErrKeyNotExist)
				d.EXPECT().FindById(gomock.Any(), int64(1)).Return(dao.User{
					Id:          1,
					Name:        "db",
					Role:        2,
					Specialties: []string{"dementia"},
					HourlyRate:  1500,
				}, nil)
				c.EXPECT().Set(gomock.Any(), domain.User{
					Id:          1,
					Name:        "db",
					Role:        domain.RoleCompanion,
					Specialties: []string{"dementia"},
					HourlyRate:  1500,
				}).Return(errors.New("redis down"))
				return d, c
			},
			wantUser: domain.User{
				Id:          1,
				Name:        "db",
				Role:        domain.RoleCompanion,
				Specialties: []string{"dementia"},
				HourlyRate:  1500,
			},
		},
		{
			name: "用户不存在",
			mock: func(ctrl *gomock.Controller) (dao.UserDAO, cache.UserCache) {
				d := daomocks.NewMockUserDAO(ctrl)
				c := cachemocks.NewMockUserCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(1)).Return(domain.User{}, cache.ErrKeyNotExist)
				d.EXPECT().FindById(gomock.Any(), int64(1)).Return(dao.User{}, dao.ErrDataNotFound)
				return d, c
			},
			wantErr: ErrUserNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewCachedUserRepository(tc.mock(ctrl))
			u, err := repo.FindById(context.Background(), 1)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantUser, u)
		})
	}
}

func TestCachedUserRepository_UpdateRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := daomocks.NewMockUserDAO(ctrl)
	c := cachemocks.NewMockUserCache(ctrl)
	d.EXPECT().UpdateRole(gomock.Any(), dao.User{Id: 1, Role: 1, Timezone: "UTC"}).Return(nil)
	c.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
	repo := NewCachedUserRepository(d, c)
	err := repo.UpdateRole(context.Background(), domain.User{Id: 1, Role: domain.RoleClient, Timezone: "UTC"})
	assert.NoError(t, err)

	d.EXPECT().UpdateRole(gomock.Any(), gomock.Any()).Return(dao.ErrRoleAlreadyChosen)
	err = repo.UpdateRole(context.Background(), domain.User{Id: 1, Role: domain.RoleCompanion})
	assert.Equal(t, ErrRoleAlreadyChosen, err)
}
