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
	"github.com/robertobolla/talkme-sub001/internal/offer/internal/domain"
	"github.com/robertobolla/talkme-sub001/internal/offer/internal/service"
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
	g := server.Group("/offers")
	g.POST("/detail", ginx.BS[IDReq](h.Detail))
	g.POST("/applicants", ginx.BS[IDReq](h.ListApplicants))
}

// ClientRoutes 只有客户能访问
func (h *Handler) ClientRoutes(server *gin.RouterGroup) {
	g := server.Group("/offers")
	g.POST("/create", ginx.BS[CreateReq](h.Create))
	g.POST("/mine", ginx.BS[ListMineReq](h.ListMine))
	g.POST("/accept", ginx.BS[IDReq](h.Accept))
	g.POST("/reject", ginx.BS[IDReq](h.Reject))
	g.POST("/cancel", ginx.BS[IDReq](h.Cancel))
	g.POST("/complete", ginx.BS[IDReq](h.Complete))
}

// CompanionRoutes 只有陪护者能访问
func (h *Handler) CompanionRoutes(server *gin.RouterGroup) {
	g := server.Group("/offers")
	g.POST("/published", ginx.B[ListPublishedReq](h.ListPublished))
	g.POST("/apply", ginx.BS[ApplyReq](h.Apply))
	g.POST("/withdraw", ginx.BS[IDReq](h.Withdraw))
	g.POST("/applications", ginx.BS[Page](h.ListApplications))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.Create(ctx, domain.Offer{
		ClientID:        sess.Claims().Uid,
		Title:           req.Title,
		Description:     req.Description,
		Specialty:       req.Specialty,
		StartAt:         req.StartAt,
		DurationMinutes: req.DurationMinutes,
		Budget:          req.Budget,
	})
	if err != nil {
		return toResult(err)
	}
	return ginx.Result{Data: newOffer(o)}, nil
}

func (h *Handler) ListPublished(ctx *ginx.Context, req ListPublishedReq) (ginx.Result, error) {
	os, total, err := h.svc.ListPublished(ctx, req.Specialty, req.Offset, pageLimit(req.Limit))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newOfferList(os, total)}, nil
}

func (h *Handler) ListMine(ctx *ginx.Context, req ListMineReq, sess session.Session) (ginx.Result, error) {
	status := domain.OfferStatusFromString(req.Status)
	os, total, err := h.svc.ListMine(ctx, sess.Claims().Uid, status, req.Offset, pageLimit(req.Limit))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newOfferList(os, total)}, nil
}

func (h *Handler) ListApplications(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	as, total, err := h.svc.ListApplications(ctx, sess.Claims().Uid, req.Offset, pageLimit(req.Limit))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[Applicant]{
			List:  slice.Map(as, func(idx int, src domain.Applicant) Applicant { return newApplicant(src) }),
			Total: int(total),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.Detail(ctx, sess.Claims().Uid, req.ID)
	if err != nil {
		return toResult(err)
	}
	return ginx.Result{Data: newOffer(o)}, nil
}

func (h *Handler) Apply(ctx *ginx.Context, req ApplyReq, sess session.Session) (ginx.Result, error) {
	a, err := h.svc.Apply(ctx, domain.Applicant{
		OfferID:     req.OfferID,
		CompanionID: sess.Claims().Uid,
		Message:     req.Message,
	})
	if err != nil {
		return toResult(err)
	}
	return ginx.Result{Data: newApplicant(a)}, nil
}

func (h *Handler) Withdraw(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Withdraw(ctx, sess.Claims().Uid, req.ID)
	if err != nil {
		return toResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ListApplicants(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	as, err := h.svc.ListApplicants(ctx, sess.Claims().Uid, req.ID)
	if err != nil {
		return toResult(err)
	}
	return ginx.Result{
		Data: slice.Map(as, func(idx int, src domain.Applicant) Applicant { return newApplicant(src) }),
	}, nil
}

func (h *Handler) Accept(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.AcceptApplicant(ctx, sess.Claims().Uid, req.ID)
	if err != nil {
		return toResult(err)
	}
	return ginx.Result{Data: newOffer(o)}, nil
}

func (h *Handler) Reject(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.RejectApplicant(ctx, sess.Claims().Uid, req.ID)
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

func newOfferList(os []domain.Offer, total int64) ginx.DataList[Offer] {
	return ginx.DataList[Offer]{
		List:  slice.Map(os, func(idx int, src domain.Offer) Offer { return newOffer(src) }),
		Total: int(total),
	}
}

func pageLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 20
	}
	return limit
}
