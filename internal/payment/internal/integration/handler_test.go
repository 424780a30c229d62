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

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/robertobolla/talkme-sub001/internal/payment/internal/errs"
	"github.com/robertobolla/talkme-sub001/internal/payment/internal/integration/startup"
	"github.com/robertobolla/talkme-sub001/internal/payment/internal/web"
	"github.com/robertobolla/talkme-sub001/internal/test"
	testioc "github.com/robertobolla/talkme-sub001/internal/test/ioc"
	"github.com/robertobolla/talkme-sub001/internal/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(1001)

func TestPaymentModule(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

type HandlerTestSuite struct {
	suite.Suite
	db        *egorm.Component
	server    *egin.Component
	walletSvc wallet.Service
}

func (s *HandlerTestSuite) SetupSuite() {
	m, err := startup.InitModule()
	require.NoError(s.T(), err)
	s.db = testioc.InitDB()
	s.walletSvc = wallet.InitService(s.db)
	econf.Set("server", map[string]any{"debug": true})
	server := egin.Load("server").Build()
	m.Hdl.PublicRoutes(server.Engine)
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	m.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{"payments", "wallets", "wallet_logs"} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) TestDeposit() {
	t := s.T()
	assets := post[[]web.Asset](t, s.server, "/payments/assets", nil)
	require.Len(t, assets.Data, 1)
	assert.Equal(t, "USDT", assets.Data[0].Symbol)

	created := post[web.Payment](t, s.server, "/payments/deposit", web.DepositReq{
		Amount: 5000, Asset: "USDT", Network: "ethereum",
	})
	require.Equal(t, 0, created.Code)
	assert.Equal(t, "pending", created.Data.Status)
	assert.Equal(t, "deposit", created.Data.Type)
	assert.Len(t, created.Data.Address, 42)

	paid := post[web.Payment](t, s.server, "/payments/webhook", web.WebhookReq{
		SN: created.Data.SN, TxHash: "0xdeposit-tx", Status: "paid",
	})
	require.Equal(t, 0, paid.Code)
	assert.Equal(t, "paid", paid.Data.Status)

	// 重复回调不会重复入账
	again := post[web.Payment](t, s.server, "/payments/webhook", web.WebhookReq{
		SN: created.Data.SN, TxHash: "0xdeposit-tx", Status: "paid",
	})
	assert.Equal(t, 0, again.Code)
	conflict := post[any](t, s.server, "/payments/webhook", web.WebhookReq{
		SN: created.Data.SN, Status: "failed",
	})
	assert.Equal(t, errs.InvalidTransition.Code, conflict.Code)

	require.Eventually(t, func() bool {
		w, err := s.walletSvc.GetWallet(context.Background(), uid)
		return err == nil && w.Balance == 5000
	}, 3*time.Second, 50*time.Millisecond)

	list := post[ginx.DataList[web.Payment]](t, s.server, "/payments/list", web.Page{})
	assert.Equal(t, 1, list.Data.Total)
	detail := post[web.Payment](t, s.server, "/payments/detail", web.SNReq{SN: created.Data.SN})
	assert.Equal(t, "0xdeposit-tx", detail.Data.TxHash)
}

func (s *HandlerTestSuite) TestWithdrawalFailed() {
	t := s.T()
	err := s.walletSvc.AddFunds(context.Background(), wallet.Funds{
		Uid: uid, Amount: 8000, Key: "payment:DP-withdraw-test", Biz: "deposit",
	})
	require.NoError(t, err)

	created := post[web.Payment](t, s.server, "/payments/withdraw", web.WithdrawReq{
		Amount: 3000, Asset: "USDT", Network: "tron", Address: "TXYZ",
	})
	require.Equal(t, 0, created.Code)
	w, err := s.walletSvc.GetWallet(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, int64(3000), w.Locked)

	failed := post[web.Payment](t, s.server, "/payments/webhook", web.WebhookReq{
		SN: created.Data.SN, Status: "failed",
	})
	require.Equal(t, 0, failed.Code)
	require.Eventually(t, func() bool {
		w, err := s.walletSvc.GetWallet(context.Background(), uid)
		return err == nil && w.Locked == 0 && w.Balance == 8000
	}, 3*time.Second, 50*time.Millisecond)
}

func (s *HandlerTestSuite) TestInvalid() {
	t := s.T()
	resp := post[any](t, s.server, "/payments/deposit", web.DepositReq{Amount: 10, Asset: "USDT", Network: "ethereum"})
	assert.Equal(t, errs.InvalidPayment.Code, resp.Code)
	resp = post[any](t, s.server, "/payments/withdraw", web.WithdrawReq{
		Amount: 3000, Asset: "USDT", Network: "tron", Address: "TXYZ",
	})
	assert.Equal(t, errs.InsufficientFunds.Code, resp.Code)
	resp = post[any](t, s.server, "/payments/detail", web.SNReq{SN: "DP-not-exist"})
	assert.Equal(t, errs.PaymentNotFound.Code, resp.Code)
}

func post[T any](t *testing.T, server *egin.Component, path string, body any) test.Result[T] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[T]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	return recorder.MustScan()
}
