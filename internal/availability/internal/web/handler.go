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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/robertobolla/talkme-sub001/internal/availability/internal/domain"
	"github.com/robertobolla/talkme-sub001/internal/availability/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/availability")
	g.POST("/weekly", ginx.B[WeeklyReq](h.Weekly))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

// CompanionRoutes 只有陪护者能访问
func (h *Handler) CompanionRoutes(server *gin.RouterGroup) {
	g := server.Group("/availability")
	g.POST("/save", ginx.BS[SaveReq](h.Save))
	g.POST("/mine", ginx.S(h.Mine))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	slots := slice.Map(req.Slots, func(idx int, src Slot) domain.Slot {
		return domain.Slot{
			Weekday:     time.Weekday(src.Weekday),
			StartMinute: src.StartMinute,
			EndMinute:   src.EndMinute,
		}
	})
	err := h.svc.SaveWeekly(ctx, sess.Claims().Uid, slots)
	if errors.Is(err, service.ErrInvalidSlot) {
		return invalidSlotResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Mine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	return h.weekly(ctx, sess.Claims().Uid)
}

func (h *Handler) Weekly(ctx *ginx.Context, req WeeklyReq) (ginx.Result, error) {
	return h.weekly(ctx, req.CompanionID)
}

func (h *Handler) weekly(ctx *ginx.Context, companionID int64) (ginx.Result, error) {
	slots, err := h.svc.ListWeekly(ctx, companionID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(slots, func(idx int, src domain.Slot) Slot {
			return Slot{
				Weekday:     int(src.Weekday),
				StartMinute: src.StartMinute,
				EndMinute:   src.EndMinute,
			}
		}),
	}, nil
}
