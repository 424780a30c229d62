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

package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/robertobolla/talkme-sub001/internal/user/internal/domain"
	"github.com/robertobolla/talkme-sub001/internal/user/internal/errs"
	"github.com/robertobolla/talkme-sub001/internal/user/internal/service"
)

var _ ginx.Handler = &Handler{}

const roleKey = "role"

type Handler struct {
	idp     service.IdentityProvider
	userSvc service.UserService
}

func NewHandler(idp service.IdentityProvider, userSvc service.UserService) *Handler {
	return &Handler{
		idp:     idp,
		userSvc: userSvc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/profile", ginx.S(h.Profile))
	users.POST("/profile/edit", ginx.BS[EditReq](h.Edit))
	users.POST("/onboard", ginx.BS[OnboardReq](h.Onboard))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/login", ginx.B[LoginReq](h.Login))
	users.Any("/token/refresh", ginx.W(h.RefreshAccessToken))

	companions := server.Group("/companions")
	companions.POST("/list", ginx.B[ListCompanionsReq](h.ListCompanions))
	companions.POST("/detail", ginx.B[CompanionDetailReq](h.CompanionDetail))
}

// Login 用身份提供方的 token 换本系统的 session
func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	identity, err := h.idp.Verify(ctx, req.Token)
	if errors.Is(err, service.ErrInvalidToken) {
		return errorResult(errs.LoginFailed), nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	user, err := h.userSvc.FindOrCreateByIdentity(ctx, identity)
	if err != nil {
		return systemErrorResult, err
	}
	err = h.newSession(ctx, user)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toProfile(user),
	}, nil
}

func (h *Handler) newSession(ctx *ginx.Context, user domain.User) error {
	_, err := session.NewSessionBuilder(ctx, user.Id).
		SetJwtData(map[string]string{
			roleKey: user.Role.String(),
		}).Build()
	return err
}

func (h *Handler) RefreshAccessToken(ctx *ginx.Context) (ginx.Result, error) {
	err := session.RenewAccessToken(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toProfile(u),
	}, nil
}

// Onboard 选择角色, 成功后重新签发 session 让 JWT 带上角色
func (h *Handler) Onboard(ctx *ginx.Context, req OnboardReq, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Onboard(ctx, domain.User{
		Id:          sess.Claims().Uid,
		Role:        domain.RoleFromString(req.Role),
		Name:        req.Name,
		Bio:         req.Bio,
		Timezone:    req.Timezone,
		Languages:   req.Languages,
		Specialties: req.Specialties,
		HourlyRate:  req.HourlyRate,
	})
	switch {
	case errors.Is(err, service.ErrInvalidProfile):
		return errorResult(errs.InvalidProfile), nil
	case errors.Is(err, service.ErrRoleAlreadyChosen):
		return errorResult(errs.RoleAlreadyChosen), nil
	case err != nil:
		return systemErrorResult, err
	}
	err = h.newSession(ctx, u)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toProfile(u),
	}, nil
}

// Edit 用户编辑信息
func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	err := h.userSvc.UpdateNonSensitiveInfo(ctx, domain.User{
		Id:          sess.Claims().Uid,
		Name:        req.Name,
		Avatar:      req.Avatar,
		Bio:         req.Bio,
		Timezone:    req.Timezone,
		Languages:   req.Languages,
		Specialties: req.Specialties,
		HourlyRate:  req.HourlyRate,
	})
	if errors.Is(err, service.ErrInvalidProfile) {
		return errorResult(errs.InvalidProfile), nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *Handler) ListCompanions(ctx *ginx.Context, req ListCompanionsReq) (ginx.Result, error) {
	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	users, total, err := h.userSvc.ListCompanions(ctx, req.Specialty, req.Language, req.Offset, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[Profile]{
			List: slice.Map(users, func(idx int, src domain.User) Profile {
				return h.toPublicProfile(src)
			}),
			Total: int(total),
		},
	}, nil
}

func (h *Handler) CompanionDetail(ctx *ginx.Context, req CompanionDetailReq) (ginx.Result, error) {
	u, err := h.userSvc.CompanionDetail(ctx, req.Id)
	if errors.Is(err, service.ErrCompanionNotFound) {
		return errorResult(errs.CompanionNotFound), nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toPublicProfile(u),
	}, nil
}

func (h *Handler) toProfile(u domain.User) Profile {
	return Profile{
		Id:          u.Id,
		Email:       u.Email,
		Name:        u.Name,
		Avatar:      u.Avatar,
		Role:        u.Role.String(),
		Bio:         u.Bio,
		Timezone:    u.Timezone,
		Languages:   u.Languages,
		Specialties: u.Specialties,
		HourlyRate:  u.HourlyRate,
	}
}

// toPublicProfile 公开资料不带邮箱
func (h *Handler) toPublicProfile(u domain.User) Profile {
	p := h.toProfile(u)
	p.Email = ""
	return p
}
