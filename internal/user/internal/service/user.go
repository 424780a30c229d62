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
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/robertobolla/talkme-sub001/internal/user/internal/domain"
	"github.com/robertobolla/talkme-sub001/internal/user/internal/repository"
	"golang.org/x/sync/errgroup"
)

const defaultTimezone = "UTC"

var (
	ErrUserNotFound      = repository.ErrUserNotFound
	ErrRoleAlreadyChosen = repository.ErrRoleAlreadyChosen
	ErrInvalidProfile    = errors.New("invalid profile")
	ErrCompanionNotFound = errors.New("companion not found")
)

//go:generate mockgen -source=./user.go -package=svcmocks -destination=./mocks/user.mock.go UserService
type UserService interface {
	// FindOrCreateByIdentity 登录时调用, 第一次登录的用户还没有角色
	FindOrCreateByIdentity(ctx context.Context, identity domain.Identity) (domain.User, error)
	Profile(ctx context.Context, id int64) (domain.User, error)
	// Onboard 选择角色, 每个用户只能选一次
	Onboard(ctx context.Context, u domain.User) (domain.User, error)
	// UpdateNonSensitiveInfo 更新非敏感数据, 角色和外部身份不能修改
	UpdateNonSensitiveInfo(ctx context.Context, u domain.User) error
	ListCompanions(ctx context.Context, specialty, language string, offset, limit int) ([]domain.User, int64, error)
	CompanionDetail(ctx context.Context, id int64) (domain.User, error)
	FindByIDs(ctx context.Context, ids []int64) (map[int64]domain.User, error)
	// FindRole 返回 JWT 中使用的角色名
	FindRole(ctx context.Context, uid int64) (string, error)
}

type userService struct {
	repo   repository.UserRepository
	logger *elog.Component
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (svc *userService) FindOrCreateByIdentity(ctx context.Context,
	identity domain.Identity) (domain.User, error) {
	u, err := svc.repo.FindByExternalID(ctx, identity.ExternalID)
	if !errors.Is(err, repository.ErrUserNotFound) {
		return u, err
	}
	u = domain.User{
		ExternalID: identity.ExternalID,
		Email:      identity.Email,
		Name:       identity.Name,
		Avatar:     identity.Avatar,
		Timezone:   defaultTimezone,
	}
	id, err := svc.repo.Create(ctx, u)
	if errors.Is(err, repository.ErrUserDuplicate) {
		// 并发登录, 别人已经创建好了
		return svc.repo.FindByExternalID(ctx, identity.ExternalID)
	}
	if err != nil {
		return domain.User{}, err
	}
	u.Id = id
	return u, nil
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *userService) Onboard(ctx context.Context, u domain.User) (domain.User, error) {
	switch u.Role {
	case domain.RoleClient:
		u.HourlyRate = 0
		u.Specialties = nil
	case domain.RoleCompanion:
		if u.HourlyRate <= 0 {
			return domain.User{}, fmt.Errorf("%w: hourly rate must be positive", ErrInvalidProfile)
		}
		if len(u.Specialties) == 0 {
			return domain.User{}, fmt.Errorf("%w: at least one specialty is required", ErrInvalidProfile)
		}
	default:
		return domain.User{}, fmt.Errorf("%w: unknown role %d", ErrInvalidProfile, u.Role)
	}
	if u.Timezone == "" {
		u.Timezone = defaultTimezone
	}
	if err := validateTimezone(u.Timezone); err != nil {
		return domain.User{}, err
	}
	err := svc.repo.UpdateRole(ctx, u)
	if err != nil {
		return domain.User{}, err
	}
	return svc.repo.FindById(ctx, u.Id)
}

func (svc *userService) UpdateNonSensitiveInfo(ctx context.Context, u domain.User) error {
	if u.Timezone != "" {
		if err := validateTimezone(u.Timezone); err != nil {
			return err
		}
	}
	if u.HourlyRate < 0 {
		return fmt.Errorf("%w: hourly rate must be positive", ErrInvalidProfile)
	}
	old, err := svc.repo.FindById(ctx, u.Id)
	if err != nil {
		return err
	}
	if !old.IsCompanion() {
		u.HourlyRate = 0
		u.Specialties = nil
	}
	u.Role = domain.RoleUnknown
	u.ExternalID = ""
	u.Email = ""
	return svc.repo.Update(ctx, u)
}

func (svc *userService) ListCompanions(ctx context.Context, specialty, language string,
	offset, limit int) ([]domain.User, int64, error) {
	var (
		eg    errgroup.Group
		users []domain.User
		total int64
	)
	eg.Go(func() error {
		var err error
		users, err = svc.repo.ListCompanions(ctx, specialty, language, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = svc.repo.CountCompanions(ctx, specialty, language)
		return err
	})
	return users, total, eg.Wait()
}

func (svc *userService) CompanionDetail(ctx context.Context, id int64) (domain.User, error) {
	u, err := svc.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, ErrCompanionNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	if !u.IsCompanion() {
		return domain.User{}, ErrCompanionNotFound
	}
	return u, nil
}

func (svc *userService) FindByIDs(ctx context.Context, ids []int64) (map[int64]domain.User, error) {
	users, err := svc.repo.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.ToMap(users, func(u domain.User) int64 {
		return u.Id
	}), nil
}

func (svc *userService) FindRole(ctx context.Context, uid int64) (string, error) {
	u, err := svc.repo.FindById(ctx, uid)
	if err != nil {
		return "", err
	}
	return u.Role.String(), nil
}

func validateTimezone(tz string) error {
	if _, err := time.LoadLocation(tz); err != nil {
		return fmt.Errorf("%w: unknown timezone %s", ErrInvalidProfile, tz)
	}
	return nil
}
