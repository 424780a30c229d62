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
	"github.com/robertobolla/talkme-sub001/internal/offer/internal/errs"
	"github.com/robertobolla/talkme-sub001/internal/offer/internal/integration/startup"
	"github.com/robertobolla/talkme-sub001/internal/offer/internal/web"
	"github.com/robertobolla/talkme-sub001/internal/test"
	testioc "github.com/robertobolla/talkme-sub001/internal/test/ioc"
	"github.com/robertobolla/talkme-sub001/internal/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	clientID    = int64(1001)
	companionID = int64(2001)
)

func TestOfferModule(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

type HandlerTestSuite struct {
	suite.Suite
	db        *egorm.Component
	server    *egin.Component
	walletSvc wallet.Service
	uid       int64
}

func (s *HandlerTestSuite) SetupSuite() {
	m, err := startup.InitModule()
	require.NoError(s.T(), err)
	s.db = testioc.InitDB()
	s.walletSvc = wallet.InitService(s.db)
	econf.Set("server", map[string]any{"debug": true})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: s.uid,
		}))
	})
	m.Hdl.PrivateRoutes(server.Engine)
	m.Hdl.ClientRoutes(server.Engine.Group(""))
	m.Hdl.CompanionRoutes(server.Engine.Group(""))
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{"offers", "offer_applicants", "wallets", "wallet_logs"} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) TestOfferLifecycle() {
	t := s.T()
	err := s.walletSvc.AddFunds(context.Background(), wallet.Funds{
		Uid: clientID, Amount: 10000, Key: "payment:DP-offer-test", Biz: "deposit",
	})
	require.NoError(t, err)

	s.uid = clientID
	created := post[web.Offer](t, s.server, "/offers/create", web.CreateReq{
		Title:           "周末陪伴散步",
		Specialty:       "walking",
		StartAt:         time.Now().Add(48 * time.Hour).UnixMilli(),
		DurationMinutes: 60,
		Budget:          3000,
	})
	require.Equal(t, 0, created.Code)
	assert.Equal(t, "published", created.Data.Status)
	offerID := created.Data.ID

	s.uid = companionID
	published := post[ginx.DataList[web.Offer]](t, s.server, "/offers/published", web.ListPublishedReq{Specialty: "walking"})
	assert.Equal(t, 1, published.Data.Total)

	applied := post[web.Applicant](t, s.server, "/offers/apply", web.ApplyReq{OfferID: offerID, Message: "我周末有空"})
	require.Equal(t, 0, applied.Code)
	assert.Equal(t, "pending", applied.Data.Status)

	again := post[any](t, s.server, "/offers/apply", web.ApplyReq{OfferID: offerID})
	assert.Equal(t, errs.AlreadyApplied.Code, again.Code)

	s.uid = clientID
	detail := post[web.Offer](t, s.server, "/offers/detail", web.IDReq{ID: offerID})
	require.Len(t, detail.Data.Applicants, 1)

	accepted := post[web.Offer](t, s.server, "/offers/accept", web.IDReq{ID: applied.Data.ID})
	require.Equal(t, 0, accepted.Code)
	assert.Equal(t, "accepted", accepted.Data.Status)
	assert.Equal(t, companionID, accepted.Data.CompanionID)

	// 重复接受同一个申请只会重新发送事件, 不会再次预扣
	replayed := post[web.Offer](t, s.server, "/offers/accept", web.IDReq{ID: applied.Data.ID})
	require.Equal(t, 0, replayed.Code)
	assert.Equal(t, "accepted", replayed.Data.Status)

	w, err := s.walletSvc.GetWallet(context.Background(), clientID)
	require.NoError(t, err)
	assert.Equal(t, int64(3000), w.Locked)

	// 还没开始不能完成
	early := post[any](t, s.server, "/offers/complete", web.IDReq{ID: offerID})
	assert.Equal(t, errs.TooEarly.Code, early.Code)

	cancelled := post[any](t, s.server, "/offers/cancel", web.IDReq{ID: offerID})
	assert.Equal(t, "OK", cancelled.Msg)
	w, err = s.walletSvc.GetWallet(context.Background(), clientID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), w.Locked)
	assert.Equal(t, int64(10000), w.Balance)

	cancelledAgain := post[any](t, s.server, "/offers/cancel", web.IDReq{ID: offerID})
	assert.Equal(t, "OK", cancelledAgain.Msg)
	w, err = s.walletSvc.GetWallet(context.Background(), clientID)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), w.Balance)
}

func (s *HandlerTestSuite) TestAcceptWithoutFunds() {
	t := s.T()
	s.uid = clientID
	created := post[web.Offer](t, s.server, "/offers/create", web.CreateReq{
		Title:           "陪同就医",
		StartAt:         time.Now().Add(48 * time.Hour).UnixMilli(),
		DurationMinutes: 120,
		Budget:          8000,
	})
	require.Equal(t, 0, created.Code)

	s.uid = companionID
	applied := post[web.Applicant](t, s.server, "/offers/apply", web.ApplyReq{OfferID: created.Data.ID})
	require.Equal(t, 0, applied.Code)

	s.uid = clientID
	resp := post[any](t, s.server, "/offers/accept", web.IDReq{ID: applied.Data.ID})
	assert.Equal(t, errs.InsufficientFunds.Code, resp.Code)

	detail := post[web.Offer](t, s.server, "/offers/detail", web.IDReq{ID: created.Data.ID})
	assert.Equal(t, "published", detail.Data.Status)
}

func (s *HandlerTestSuite) TestCreateInvalid() {
	t := s.T()
	s.uid = clientID
	resp := post[any](t, s.server, "/offers/create", web.CreateReq{
		Title:           "过去的时间",
		StartAt:         time.Now().Add(-time.Hour).UnixMilli(),
		DurationMinutes: 60,
		Budget:          100,
	})
	assert.Equal(t, errs.InvalidOffer.Code, resp.Code)
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
