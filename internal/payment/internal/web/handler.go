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
	"github.com/gotomicro/ego/core/elog"
	"github.com/robertobolla/talkme-sub001/internal/payment/internal/domain"
	"github.com/robertobolla/talkme-sub001/internal/payment/internal/errs"
	"github.com/robertobolla/talkme-sub001/internal/payment/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
	l   *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc: svc,
		l:   elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/payments/assets", ginx.W(h.Assets))
	// 模拟支付渠道的回调, 不校验签名
	server.POST("/payments/webhook", ginx.B[WebhookReq](h.Webhook))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/payments")
	g.POST("/deposit", ginx.BS[DepositReq](h.Deposit))
	g.POST("/withdraw", ginx.BS[WithdrawReq](h.Withdraw))
	g.POST("/detail", ginx.BS[SNReq](h.Detail))
	g.POST("/list", ginx.BS[Page](h.List))
}

func (h *Handler) Assets(ctx *ginx.Context) (ginx.Result, error) {
	return ginx.Result{
		Data: slice.Map(h.svc.Assets(ctx), func(idx int, src domain.Asset) Asset {
			return Asset{
				Symbol:    src.Symbol,
				Networks:  src.Networks,
				MinAmount: src.MinAmount,
				MaxAmount: src.MaxAmount,
			}
		}),
	}, nil
}

func (h *Handler) Deposit(ctx *ginx.Context, req DepositReq, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.CreateDeposit(ctx, sess.Claims().Uid, req.Amount, req.Asset, req.Network)
	if err != nil {
		return h.toResult(err)
	}
	return ginx.Result{Data: newPayment(p)}, nil
}

func (h *Handler) Withdraw(ctx *ginx.Context, req WithdrawReq, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.RequestWithdrawal(ctx, sess.Claims().Uid, req.Amount, req.Asset, req.Network, req.Address)
	if err != nil {
		return h.toResult(err)
	}
	return ginx.Result{Data: newPayment(p)}, nil
}

func (h *Handler) Webhook(ctx *ginx.Context, req WebhookReq) (ginx.Result, error) {
	p, err := h.svc.HandleWebhook(ctx, req.SN, req.TxHash, domain.PaymentStatusFromString(req.Status))
	if err != nil {
		h.l.Warn("handle payment webhook failed",
			elog.FieldErr(err),
			elog.String("sn", req.SN),
			elog.String("status", req.Status))
		return h.toResult(err)
	}
	return ginx.Result{Data: newPayment(p)}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req SNReq, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.Detail(ctx, sess.Claims().Uid, req.SN)
	if err != nil {
		return h.toResult(err)
	}
	return ginx.Result{Data: newPayment(p)}, nil
}

func (h *Handler) List(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	ps, total, err := h.svc.List(ctx, sess.Claims().Uid, req.Offset, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[Payment]{
			List:  slice.Map(ps, func(idx int, src domain.Payment) Payment { return newPayment(src) }),
			Total: int(total),
		},
	}, nil
}

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

func (h *Handler) toResult(err error) (ginx.Result, error) {
	var code errs.ErrorCode
	switch {
	case errors.Is(err, service.ErrInvalidPayment):
		code = errs.InvalidPayment
	case errors.Is(err, service.ErrPaymentNotFound):
		code = errs.PaymentNotFound
	case errors.Is(err, service.ErrInvalidTransition):
		code = errs.InvalidTransition
	case errors.Is(err, service.ErrInsufficientFunds):
		code = errs.InsufficientFunds
	case errors.Is(err, service.ErrDuplicatedTxHash):
		code = errs.DuplicatedTxHash
	default:
		return systemErrorResult, err
	}
	return ginx.Result{Code: code.Code, Msg: code.Msg}, nil
}
