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
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/robertobolla/talkme-sub001/internal/test"
	testioc "github.com/robertobolla/talkme-sub001/internal/test/ioc"
	"github.com/robertobolla/talkme-sub001/internal/wallet"
	"github.com/robertobolla/talkme-sub001/internal/wallet/internal/integration/startup"
	"github.com/robertobolla/talkme-sub001/internal/wallet/internal/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(3001)

func TestWalletModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

type ModuleTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	svc    wallet.Service
}

func (s *ModuleTestSuite) SetupSuite() {
	m, err := startup.InitModule()
	require.NoError(s.T(), err)
	s.svc = m.Svc

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	m.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
}

func (s *ModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `wallets`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `wallet_logs`").Error
	require.NoError(s.T(), err)
}

func (s *ModuleTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `wallets`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("DROP TABLE `wallet_logs`").Error
	require.NoError(s.T(), err)
}

func (s *ModuleTestSuite) addFunds(uid, amount int64, key string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := s.svc.AddFunds(ctx, wallet.Funds{Uid: uid, Amount: amount, Key: key, Biz: "deposit"})
	require.NoError(s.T(), err)
}

func (s *ModuleTestSuite) assertWallet(uid, balance, locked int64) {
	w, err := s.svc.GetWallet(context.Background(), uid)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), balance, w.Balance)
	assert.Equal(s.T(), locked, w.Locked)
}

func (s *ModuleTestSuite) TestAddFunds_Idempotent() {
	t := s.T()
	s.addFunds(uid, 1000, "payment:DP100")
	err := s.svc.AddFunds(context.Background(), wallet.Funds{Uid: uid, Amount: 1000, Key: "payment:DP100", Biz: "deposit"})
	assert.ErrorIs(t, err, wallet.ErrDuplicatedWalletLog)
	s.assertWallet(uid, 1000, 0)

	s.addFunds(uid, 500, "payment:DP101")
	s.assertWallet(uid, 1500, 0)
	logs, total, err := s.svc.ListLogs(context.Background(), uid, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, int64(1500), logs[0].Balance)
}

func (s *ModuleTestSuite) TestTryDeduct_ConfirmWithPayee() {
	t := s.T()
	ctx := context.Background()
	const payee = int64(3002)
	s.addFunds(uid, 1000, "payment:DP200")

	_, err := s.svc.TryDeduct(ctx, wallet.Funds{Uid: uid, Amount: 1200, Key: "booking:SS200"})
	assert.ErrorIs(t, err, wallet.ErrInsufficientFunds)

	lockID, err := s.svc.TryDeduct(ctx, wallet.Funds{Uid: uid, Amount: 600, Key: "booking:SS201", Biz: "booking", BizID: 1})
	require.NoError(t, err)
	s.assertWallet(uid, 1000, 600)

	// 同一个 key 重复预扣返回同一个预扣
	again, err := s.svc.TryDeduct(ctx, wallet.Funds{Uid: uid, Amount: 600, Key: "booking:SS201", Biz: "booking", BizID: 1})
	require.NoError(t, err)
	assert.Equal(t, lockID, again)
	s.assertWallet(uid, 1000, 600)

	require.NoError(t, s.svc.ConfirmDeduct(ctx, uid, lockID, payee))
	s.assertWallet(uid, 400, 0)
	s.assertWallet(payee, 600, 0)

	// 重复确认不会重复付款
	require.NoError(t, s.svc.ConfirmDeduct(ctx, uid, lockID, payee))
	s.assertWallet(uid, 400, 0)
	s.assertWallet(payee, 600, 0)

	err = s.svc.CancelDeduct(ctx, uid, lockID)
	assert.ErrorIs(t, err, wallet.ErrInvalidLockStatus)
}

func (s *ModuleTestSuite) TestTryDeduct_Cancel() {
	t := s.T()
	ctx := context.Background()
	s.addFunds(uid, 1000, "payment:DP300")

	lockID, err := s.svc.TryDeduct(ctx, wallet.Funds{Uid: uid, Amount: 700, Key: "withdrawal:WD300"})
	require.NoError(t, err)
	require.NoError(t, s.svc.CancelDeduct(ctx, uid, lockID))
	s.assertWallet(uid, 1000, 0)
	require.NoError(t, s.svc.CancelDeduct(ctx, uid, lockID))
	s.assertWallet(uid, 1000, 0)

	err = s.svc.ConfirmDeduct(ctx, uid, lockID, 0)
	assert.ErrorIs(t, err, wallet.ErrInvalidLockStatus)
	s.assertWallet(uid, 1000, 0)
}

func (s *ModuleTestSuite) TestTryDeduct_Concurrent() {
	t := s.T()
	s.addFunds(uid, 500, "payment:DP400")

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int64
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.svc.TryDeduct(context.Background(), wallet.Funds{
				Uid:    uid,
				Amount: 100,
				Key:    fmt.Sprintf("booking:SS40%d", i),
			})
			if err == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	w, err := s.svc.GetWallet(context.Background(), uid)
	require.NoError(t, err)
	assert.LessOrEqual(t, success, int64(5))
	assert.Equal(t, success*100, w.Locked)
	assert.Equal(t, int64(500), w.Balance)
}

func (s *ModuleTestSuite) TestHandler_Detail() {
	t := s.T()
	s.addFunds(uid, 900, "payment:DP500")
	_, err := s.svc.TryDeduct(context.Background(), wallet.Funds{Uid: uid, Amount: 200, Key: "offer:OF500:1"})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, "/wallet/detail", iox.NewJSONReader(nil))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Wallet]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, web.Wallet{Balance: 900, Locked: 200, Available: 700}, recorder.MustScan().Data)
}

func (s *ModuleTestSuite) TestHandler_Logs() {
	t := s.T()
	s.addFunds(uid, 100, "payment:DP600")
	s.addFunds(uid, 200, "payment:DP601")

	req, err := http.NewRequest(http.MethodPost, "/wallet/logs", iox.NewJSONReader(web.Page{Limit: 1}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[ginx.DataList[web.WalletLog]]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan().Data
	assert.Equal(t, 2, res.Total)
	require.Len(t, res.List, 1)
	assert.Equal(t, int64(200), res.List[0].Change)
	assert.Equal(t, int64(300), res.List[0].Balance)
}
