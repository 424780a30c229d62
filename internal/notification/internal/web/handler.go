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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/robertobolla/talkme-sub001/internal/notification/internal/domain"
	"github.com/robertobolla/talkme-sub001/internal/notification/internal/errs"
	"github.com/robertobolla/talkme-sub001/internal/notification/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/notifications")
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/unread", ginx.S(h.UnreadCount))
	g.POST("/read", ginx.BS[ReadReq](h.MarkRead))
	g.POST("/read_all", ginx.S(h.MarkAllRead))
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	ns, total, err := h.svc.List(ctx, sess.Claims().Uid, req.UnreadOnly, req.Offset, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[Notification]{
			List: slice.Map(ns, func(idx int, src domain.Notification) Notification {
				return newNotification(src)
			}),
			Total: int(total),
		},
	}, nil
}

func (h *Handler) UnreadCount(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	cnt, err := h.svc.UnreadCount(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: Count{Count: cnt}}, nil
}

func (h *Handler) MarkRead(ctx *ginx.Context, req ReadReq, sess session.Session) (ginx.Result, error) {
	if len(req.IDs) == 0 || len(req.IDs) > 100 {
		return ginx.Result{Code: errs.InvalidArguments.Code, Msg: errs.InvalidArguments.Msg}, nil
	}
	cnt, err := h.svc.MarkRead(ctx, sess.Claims().Uid, req.IDs)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: Count{Count: cnt}}, nil
}

func (h *Handler) MarkAllRead(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	cnt, err := h.svc.MarkAllRead(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: Count{Count: cnt}}, nil
}

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}
