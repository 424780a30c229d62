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
	"github.com/robertobolla/talkme-sub001/internal/availability"
	"github.com/robertobolla/talkme-sub001/internal/booking"
	"github.com/robertobolla/talkme-sub001/internal/booking/internal/errs"
	"github.com/robertobolla/talkme-sub001/internal/booking/internal/integration/startup"
	"github.com/robertobolla/talkme-sub001/internal/booking/internal/web"
	"github.com/robertobolla/talkme-sub001/internal/test"
	testioc "github.com/robertobolla/talkme-sub001/internal/test/ioc"
	"github.com/robertobolla/talkme-sub001/internal/user"
	usermocks "github.com/robertobolla/talkme-sub001/internal/user/mocks"
	"github.com/robertobolla/talkme-sub001/internal/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	clientID    = int64(1001)
	companionID = int64(2001)
)

func TestBookingModule(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

type HandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	db        *egorm.Component
	server    *egin.Component
	walletSvc wallet.Service
	uid       int64
}

func (s *HandlerTestSuite) SetupSuite() {
	s.ctrl = gomock.NewController(s.T())
	userSvc := usermocks.NewMockUserService(s.ctrl)
	userSvc.EXPECT().CompanionDetail(gomock.Any(), companionID).Return(user.User{
		Id:         companionID,
		Role:       user.RoleCompanion,
		Timezone:   "UTC",
		HourlyRate: 3000,
	}, nil).AnyTimes()
	userSvc.EXPECT().CompanionDetail(gomock.Any(), gomock.Not(companionID)).
		Return(user.User{}, user.ErrCompanionNotFound).AnyTimes()

	m, err := startup.InitModule(userSvc, booking.NewJWTRoomProvider("https://meet.talkme.test", "e2e-secret"))
	require.NoError(s.T(), err)
	s.db = testioc.InitDB()
	s.walletSvc = wallet.InitService(s.db)

	// 陪护者每天全天可预约
	slots := make([]availability.Slot, 0, 7)
	for wd := 0; wd < 7; wd++ {
		slots = append(slots, availability.Slot{Weekday: time.Weekday(wd), StartMinute: 0, EndMinute: 1440})
	}
	availSvc := availability.InitModule(s.db, testioc.InitCache()).Svc
	require.NoError(s.T(), availSvc.SaveWeekly(context.Background(), companionID, slots))

	econf.Set("server", map[string]any{"debug": true})
	server := egin.Load("server").Build()
	m.Hdl.PublicRoutes(server.Engine)
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

func (s *HandlerTestSuite) TearDownSuite() {
	err := s.db.Exec("TRUNCATE TABLE `availability_slots`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{"booking_sessions", "wallets", "wallet_logs"} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) fund(t *testing.T, amount int64) {
	err := s.walletSvc.AddFunds(context.Background(), wallet.Funds{
		Uid: clientID, Amount: amount, Key: "payment:DP-booking-test", Biz: "deposit",
	})
	require.NoError(t, err)
}

func (s *HandlerTestSuite) TestBookConfirmCancel() {
	t := s.T()
	s.fund(t, 10000)
	start := futureStart(2)

	s.uid = clientID
	booked := post[web.Session](t, s.server, "/sessions/book", web.BookReq{
		CompanionID:     companionID,
		StartAt:         start.UnixMilli(),
		DurationMinutes: 90,
		Note:            "想聊聊老电影",
	})
	require.Equal(t, 0, booked.Code)
	assert.Equal(t, "pending", booked.Data.Status)
	assert.Equal(t, int64(4500), booked.Data.Price)
	assert.Equal(t, start.Add(90*time.Minute).UnixMilli(), booked.Data.EndAt)

	w, err := s.walletSvc.GetWallet(context.Background(), clientID)
	require.NoError(t, err)
	assert.Equal(t, int64(4500), w.Locked)

	// 同一时间段不能重复预约
	conflict := post[any](t, s.server, "/sessions/book", web.BookReq{
		CompanionID:     companionID,
		StartAt:         start.Add(30 * time.Minute).UnixMilli(),
		DurationMinutes: 60,
	})
	assert.Equal(t, errs.SlotConflict.Code, conflict.Code)
	w, err = s.walletSvc.GetWallet(context.Background(), clientID)
	require.NoError(t, err)
	assert.Equal(t, int64(4500), w.Locked)

	// 已预约的时间不再出现在可预约列表中
	slots := post[[]web.Slot](t, s.server, "/sessions/slots", web.SlotsReq{
		CompanionID:     companionID,
		From:            start.UnixMilli(),
		Days:            1,
		DurationMinutes: 60,
	})
	require.Equal(t, 0, slots.Code)
	for _, sl := range slots.Data {
		overlap := sl.StartAt < booked.Data.EndAt && sl.EndAt > booked.Data.StartAt
		assert.False(t, overlap)
	}

	s.uid = companionID
	confirmed := post[any](t, s.server, "/sessions/confirm", web.IDReq{ID: booked.Data.ID})
	assert.Equal(t, 0, confirmed.Code)

	list := post[ginx.DataList[web.Session]](t, s.server, "/sessions/list", web.ListReq{Role: "companion", Status: "confirmed"})
	require.Equal(t, 1, list.Data.Total)
	assert.Equal(t, booked.Data.ID, list.Data.List[0].ID)

	// 还没到开放时间
	room := post[any](t, s.server, "/sessions/room", web.IDReq{ID: booked.Data.ID})
	assert.Equal(t, errs.RoomUnavailable.Code, room.Code)

	s.uid = clientID
	cancelled := post[any](t, s.server, "/sessions/cancel", web.IDReq{ID: booked.Data.ID})
	assert.Equal(t, 0, cancelled.Code)

	detail := post[web.Session](t, s.server, "/sessions/detail", web.IDReq{ID: booked.Data.ID})
	assert.Equal(t, "cancelled", detail.Data.Status)
	w, err = s.walletSvc.GetWallet(context.Background(), clientID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), w.Locked)
	assert.Equal(t, int64(10000), w.Balance)
}

func (s *HandlerTestSuite) TestRejectAndPermission() {
	t := s.T()
	s.fund(t, 10000)
	s.uid = clientID
	booked := post[web.Session](t, s.server, "/sessions/book", web.BookReq{
		CompanionID:     companionID,
		StartAt:         futureStart(3).UnixMilli(),
		DurationMinutes: 60,
	})
	require.Equal(t, 0, booked.Code)

	// 客户不能确认自己的预约
	resp := post[any](t, s.server, "/sessions/confirm", web.IDReq{ID: booked.Data.ID})
	assert.Equal(t, errs.PermissionDenied.Code, resp.Code)

	s.uid = 3001
	resp = post[any](t, s.server, "/sessions/detail", web.IDReq{ID: booked.Data.ID})
	assert.Equal(t, errs.PermissionDenied.Code, resp.Code)

	s.uid = companionID
	resp = post[any](t, s.server, "/sessions/reject", web.RejectReq{ID: booked.Data.ID, Reason: "那天有事"})
	assert.Equal(t, 0, resp.Code)
	resp = post[any](t, s.server, "/sessions/confirm", web.IDReq{ID: booked.Data.ID})
	assert.Equal(t, errs.InvalidTransition.Code, resp.Code)

	w, err := s.walletSvc.GetWallet(context.Background(), clientID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), w.Locked)
}

func (s *HandlerTestSuite) TestBookInvalid() {
	t := s.T()
	s.uid = clientID
	start := futureStart(2).UnixMilli()

	resp := post[any](t, s.server, "/sessions/book", web.BookReq{
		CompanionID: companionID, StartAt: start, DurationMinutes: 60,
	})
	assert.Equal(t, errs.InsufficientFunds.Code, resp.Code)

	resp = post[any](t, s.server, "/sessions/book", web.BookReq{
		CompanionID: companionID, StartAt: start, DurationMinutes: 10,
	})
	assert.Equal(t, errs.InvalidBooking.Code, resp.Code)

	resp = post[any](t, s.server, "/sessions/book", web.BookReq{
		CompanionID: 9999, StartAt: start, DurationMinutes: 60,
	})
	assert.Equal(t, errs.CompanionNotFound.Code, resp.Code)
}

// futureStart days 天后 UTC 10 点, 避免会话跨天
func futureStart(days int) time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour).Add(time.Duration(days)*24*time.Hour + 10*time.Hour)
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
