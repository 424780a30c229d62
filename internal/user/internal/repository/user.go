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

	"github.com/ecodeclub/ekit/slice"
	"github.com/robertobolla/talkme-sub001/internal/user/internal/domain"
	"github.com/robertobolla/talkme-sub001/internal/user/internal/repository/cache"
	"github.com/robertobolla/talkme-sub001/internal/user/internal/repository/dao"
)

var (
	ErrUserNotFound      = dao.ErrDataNotFound
	ErrUserDuplicate     = dao.ErrUserDuplicate
	ErrRoleAlreadyChosen = dao.ErrRoleAlreadyChosen
)

//go:generate mockgen -source=./user.go -package=repomocks -destination=./mocks/user.mock.go UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	// Update 更新数据，只有非 0 值才会更新
	Update(ctx context.Context, u domain.User) error
	UpdateRole(ctx context.Context, u domain.User) error
	FindByExternalID(ctx context.Context, externalID string) (domain.User, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
	ListCompanions(ctx context.Context, specialty, language string, offset, limit int) ([]domain.User, error)
	CountCompanions(ctx context.Context, specialty, language string) (int64, error)
}

// CachedUserRepository 使用了缓存的 repository 实现
type CachedUserRepository struct {
	dao   dao.UserDAO
	cache cache.UserCache
}

// NewCachedUserRepository 支持缓存的实现
func NewCachedUserRepository(d dao.UserDAO,
	c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:   d,
		cache: c,
	}
}

func (ur *CachedUserRepository) Update(ctx context.Context, u domain.User) error {
	err := ur.dao.UpdateNonZeroFields(ctx, ur.domainToEntity(u))
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, u.Id)
}

func (ur *CachedUserRepository) UpdateRole(ctx context.Context, u domain.User) error {
	err := ur.dao.UpdateRole(ctx, ur.domainToEntity(u))
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, u.Id)
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, ur.domainToEntity(u))
}

func (ur *CachedUserRepository) FindByExternalID(ctx context.Context,
	externalID string) (domain.User, error) {
	u, err := ur.dao.FindByExternalID(ctx, externalID)
	return ur.entityToDomain(u), err
}

func (ur *CachedUserRepository) FindById(ctx context.Context,
	id int64) (domain.User, error) {
	u, err := ur.cache.Get(ctx, id)
	if err == nil {
		return u, err
	}
	ue, err := ur.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u = ur.entityToDomain(ue)
	// 忽略掉这里的错误
	_ = ur.cache.Set(ctx, u)
	return u, nil
}

func (ur *CachedUserRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	us, err := ur.dao.FindByIds(ctx, ids)
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		return ur.entityToDomain(src)
	}), err
}

func (ur *CachedUserRepository) ListCompanions(ctx context.Context, specialty, language string, offset, limit int) ([]domain.User, error) {
	us, err := ur.dao.ListCompanions(ctx, specialty, language, offset, limit)
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		return ur.entityToDomain(src)
	}), err
}

func (ur *CachedUserRepository) CountCompanions(ctx context.Context, specialty, language string) (int64, error) {
	return ur.dao.CountCompanions(ctx, specialty, language)
}

func (ur *CachedUserRepository) domainToEntity(u domain.User) dao.User {
	return dao.User{
		Id:          u.Id,
		ExternalID:  u.ExternalID,
		Email:       u.Email,
		Name:        u.Name,
		Avatar:      u.Avatar,
		Role:        u.Role.ToUint8(),
		Bio:         u.Bio,
		Timezone:    u.Timezone,
		Languages:   u.Languages,
		Specialties: u.Specialties,
		HourlyRate:  u.HourlyRate,
	}
}

func (ur *CachedUserRepository) entityToDomain(ue dao.User) domain.User {
	return domain.User{
		Id:          ue.Id,
		ExternalID:  ue.ExternalID,
		Email:       ue.Email,
		Name:        ue.Name,
		Avatar:      ue.Avatar,
		Role:        domain.Role(ue.Role),
		Bio:         ue.Bio,
		Timezone:    ue.Timezone,
		Languages:   ue.Languages,
		Specialties: ue.Specialties,
		HourlyRate:  ue.HourlyRate,
		Ctime:       ue.Ctime,
		Utime:       ue.Utime,
	}
}
