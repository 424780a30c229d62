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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/robertobolla/talkme-sub001/internal/availability"
	"github.com/robertobolla/talkme-sub001/internal/booking/internal/domain"
	"github.com/robertobolla/talkme-sub001/internal/booking/internal/service"
	"github.com/robertobolla/talkme-sub001/internal/pkg/middleware"
)

const defaultSlotDays = 7

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/sessions/slots", ginx.B[SlotsReq](h.Slots))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/sessions")
	g.POST("/cancel", ginx.BS[IDReq](h.Cancel))
	g.POST("/complete", ginx.BS[IDReq](h.Complete))
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/detail", ginx.BS[IDReq](h.Detail))
	g.POST("/room", ginx.BS[IDReq](h.JoinRoom))
}

func (h *Handler) ClientRoutes(server *gin.RouterGroup) {
	server.POST("/sessions/book", ginx.BS[BookReq](h.Book))
}

func (h *Handler) CompanionRoutes(server *gin.RouterGroup) {
	g := server.Group("/sessions")
	g.POST("/confirm", ginx.BS[IDReq](h.Confirm))
	g.POST("/reject", ginx.BS[RejectReq](h.Reject))
}

func (h *Handler) Slots(ctx *ginx.Context, req SlotsReq) (ginx.Result, error) {
	from := time.Now()
	if req.From > 0 {
		from = time.UnixMilli(req.From)
	}
	days := req.Days
	if days == 0 {
		days = defaultSlotDays
	}
	ws, err := h.svc.Slots(ctx, req.CompanionID, from, days, req.DurationMinutes)
	if err != nil {
		return toResult(err)
	}
	return ginx.Result{
		Data: slice.Map(ws, func(idx int, src availability.Window) Slot { return newSlot(src) }),
	}, nil
}

func (h *Handler) Book(ctx *ginx.Context, req BookReq, sess session.Session) (ginx.Result, error) {
	s, err := h.svc.Book(ctx, sess.Claims().Uid, req.CompanionID, req.StartAt, req.DurationMinutes, req.Note)
	if err != nil {
		return toResult(err)
	}
	return ginx.Result{Data: newSession(s)}, nil
}

func (h *Handler) Confirm(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Confirm(ctx, sess.Claims().Uid, req.ID)
	if err != nil {
		return toResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Reject(ctx *ginx.Context, req RejectReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Reject(ctx, sess.Claims().Uid, req.ID, req.Reason)
	if err != nil {
		return toResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Cancel(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Cancel(ctx, sess.Claims().Uid, req.ID)
	if err != nil {
		return toResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Complete(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Complete(ctx, sess.Claims().Uid, req.ID)
	if err != nil {
		return toResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	role := req.Role
	if role == "" {
		role = sess.Claims().Get(middleware.ClaimRole).StringOrDefault("")
	}
	p := domain.PerspectiveClient
	if role == string(domain.PerspectiveCompanion) {
		p = domain.PerspectiveCompanion
	}
	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	ss, total, err := h.svc.List(ctx, sess.Claims().Uid, p, domain.SessionStatusFromString(req.Status), req.Offset, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[Session]{
			List:  slice.Map(ss, func(idx int, src domain.Session) Session { return newSession(src) }),
			Total: int(total),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	s, err := h.svc.Detail(ctx, sess.Claims().Uid, req.ID)
	if err != nil {
		return toResult(err)
	}
	return ginx.Result{Data: newSession(s)}, nil
}

func (h *Handler) JoinRoom(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	r, err := h.svc.JoinRoom(ctx, sess.Claims().Uid, req.ID)
	if err != nil {
		return toResult(err)
	}
	return ginx.Result{Data: Room{
		Name:      r.Name,
		URL:       r.URL,
		Token:     r.Token,
		ExpiresAt: r.ExpiresAt,
	}}, nil
}
