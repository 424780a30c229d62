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
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/robertobolla/talkme-sub001/internal/wallet/internal/domain"
	"github.com/robertobolla/talkme-sub001/internal/wallet/internal/service"
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
	g := server.Group("/wallet")
	g.POST("/detail", ginx.S(h.Detail))
	g.POST("/logs", ginx.BS[Page](h.Logs))
}

func (h *Handler) Detail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	w, err := h.svc.GetWallet(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("get wallet failed: %w", err)
	}
	return ginx.Result{
		Data: Wallet{
			Balance:   w.Balance,
			Locked:    w.Locked,
			Available: w.Available(),
		},
	}, nil
}

func (h *Handler) Logs(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	logs, total, err := h.svc.ListLogs(ctx.Request.Context(), sess.Claims().Uid, req.Offset, limit)
	if err != nil {
		return systemErrorResult, fmt.Errorf("list wallet logs failed: %w", err)
	}
	return ginx.Result{
		Data: ginx.DataList[WalletLog]{
			List: slice.Map(logs, func(idx int, src domain.WalletLog) WalletLog {
				return WalletLog{
					ID:      src.ID,
					Biz:     src.Biz,
					BizID:   src.BizID,
					Change:  src.Change,
					Balance: src.Balance,
					Status:  src.Status.ToUint8(),
					Desc:    src.Desc,
					Ctime:   src.Ctime,
				}
			}),
			Total: int(total),
		},
	}, nil
}
