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

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/robertobolla/talkme-sub001/internal/test"
	testioc "github.com/robertobolla/talkme-sub001/internal/test/ioc"
	"github.com/robertobolla/talkme-sub001/internal/user/internal/domain"
	"github.com/robertobolla/talkme-sub001/internal/user/internal/errs"
	"github.com/robertobolla/talkme-sub001/internal/user/internal/integration/startup"
	"github.com/robertobolla/talkme-sub001/internal/user/internal/repository/dao"
	"github.com/robertobolla/talkme-sub001/internal/user/internal/service"
	svcmocks "github.com/robertobolla/talkme-sub001/internal/user/internal/service/mocks"
	"github.com/robertobolla/talkme-sub001/internal/user/internal/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const uid = int64(123)

func TestUserHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

type HandlerTestSuite struct {
	suite.Suite
	db     *egorm.Component
	server *egin.Component
	idp    *svcmocks.MockIdentityProvider
}

func (s *HandlerTestSuite) SetupSuite() {
	ctrl := gomock.NewController(s.T())
	s.idp = svcmocks.NewMockIdentityProvider(ctrl)
	m, err := startup.InitModule(s.idp)
	require.NoError(s.T(), err)
	s.db = testioc.InitDB()

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
	err := s.db.Exec("TRUNCATE table `users`").Error
	require.NoError(s.T(), err)
	// 清理用户缓存
	_, _ = testioc.InitCache().Delete(context.Background(), "user:info:123")
}

func (s *HandlerTestSuite) TestLogin() {
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		after    func(t *testing.T)
		req      web.LoginReq
		wantCode int
		wantResp test.Result[web.Profile]
	}{
		{
			name: "首次登录创建用户",
			before: func(t *testing.T) {
				s.idp.EXPECT().Verify(gomock.Any(), "token-1").Return(domain.Identity{
					ExternalID: "idp|1",
					Email:      "ana@talkme.dev",
					Name:       "Ana",
				}, nil)
			},
			after: func(t *testing.T) {
				var u dao.User
				err := s.db.Where("external_id = ?", "idp|1").First(&u).Error
				require.NoError(t, err)
				assert.True(t, u.Id > 0)
				assert.Equal(t, uint8(0), u.Role)
				assert.Equal(t, "UTC", u.Timezone)
			},
			req:      web.LoginReq{Token: "token-1"},
			wantCode: 200,
			wantResp: test.Result[web.Profile]{
				Data: web.Profile{
					Email:    "ana@talkme.dev",
					Name:     "Ana",
					Timezone: "UTC",
				},
			},
		},
		{
			name: "老用户登录",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.User{
					Id:          456,
					ExternalID:  "idp|2",
					Name:        "Luis",
					Role:        domain.RoleCompanion.ToUint8(),
					Timezone:    "Europe/Madrid",
					Specialties: []string{"dementia"},
					HourlyRate:  2500,
				}).Error
				require.NoError(t, err)
				s.idp.EXPECT().Verify(gomock.Any(), "token-2").Return(domain.Identity{
					ExternalID: "idp|2",
				}, nil)
			},
			after:    func(t *testing.T) {},
			req:      web.LoginReq{Token: "token-2"},
			wantCode: 200,
			wantResp: test.Result[web.Profile]{
				Data: web.Profile{
					Id:          456,
					Name:        "Luis",
					Role:        "companion",
					Timezone:    "Europe/Madrid",
					Specialties: []string{"dementia"},
					HourlyRate:  2500,
				},
			},
		},
		{
			name: "凭证无效",
			before: func(t *testing.T) {
				s.idp.EXPECT().Verify(gomock.Any(), "bad").Return(domain.Identity{}, service.ErrInvalidToken)
			},
			after:    func(t *testing.T) {},
			req:      web.LoginReq{Token: "bad"},
			wantCode: 200,
			wantResp: test.Result[web.Profile]{
				Code: errs.LoginFailed.Code,
				Msg:  errs.LoginFailed.Msg,
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/users/login", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Profile]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			resp := recorder.MustScan()
			if tc.wantResp.Data.Id == 0 {
				// 新用户的 id 由 snowflake 生成
				resp.Data.Id = 0
			}
			assert.Equal(t, tc.wantResp, resp)
			tc.after(t)
			err = s.db.Exec("TRUNCATE table `users`").Error
			require.NoError(t, err)
		})
	}
}

func (s *HandlerTestSuite) TestOnboard() {
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		after    func(t *testing.T)
		req      web.OnboardReq
		wantCode int
		wantResp test.Result[web.Profile]
	}{
		{
			name: "成为陪护者",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.User{Id: uid, ExternalID: "idp|123", Timezone: "UTC"}).Error
				require.NoError(t, err)
			},
			after: func(t *testing.T) {
				var u dao.User
				err := s.db.Where("id = ?", uid).First(&u).Error
				require.NoError(t, err)
				assert.Equal(t, domain.RoleCompanion.ToUint8(), u.Role)
				assert.Equal(t, []string{"dementia", "mobility"}, u.Specialties)
				assert.Equal(t, int64(3000), u.HourlyRate)
			},
			req: web.OnboardReq{
				Role:        "companion",
				Name:        "Marta",
				Timezone:    "Europe/Madrid",
				Languages:   []string{"es"},
				Specialties: []string{"dementia", "mobility"},
				HourlyRate:  3000,
			},
			wantCode: 200,
			wantResp: test.Result[web.Profile]{
				Data: web.Profile{
					Id:          uid,
					Name:        "Marta",
					Role:        "companion",
					Timezone:    "Europe/Madrid",
					Languages:   []string{"es"},
					Specialties: []string{"dementia", "mobility"},
					HourlyRate:  3000,
				},
			},
		},
		{
			name: "角色已经选过",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.User{Id: uid, ExternalID: "idp|123", Role: domain.RoleClient.ToUint8()}).Error
				require.NoError(t, err)
			},
			after: func(t *testing.T) {
				var u dao.User
				err := s.db.Where("id = ?", uid).First(&u).Error
				require.NoError(t, err)
				assert.Equal(t, domain.RoleClient.ToUint8(), u.Role)
			},
			req: web.OnboardReq{
				Role:        "companion",
				Specialties: []string{"dementia"},
				HourlyRate:  3000,
			},
			wantCode: 200,
			wantResp: test.Result[web.Profile]{
				Code: errs.RoleAlreadyChosen.Code,
				Msg:  errs.RoleAlreadyChosen.Msg,
			},
		},
		{
			name:     "陪护者缺少价格",
			before:   func(t *testing.T) {},
			after:    func(t *testing.T) {},
			req:      web.OnboardReq{Role: "companion", Specialties: []string{"dementia"}},
			wantCode: 200,
			wantResp: test.Result[web.Profile]{
				Code: errs.InvalidProfile.Code,
				Msg:  errs.InvalidProfile.Msg,
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/users/onboard", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Profile]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
			tc.after(t)
			s.TearDownTest()
		})
	}
}

func (s *HandlerTestSuite) TestEditProfile() {
	t := s.T()
	err := s.db.Create(&dao.User{
		Id:         uid,
		ExternalID: "idp|123",
		Name:       "old name",
		Role:       domain.RoleClient.ToUint8(),
		Timezone:   "UTC",
	}).Error
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost,
		"/users/profile/edit", iox.NewJSONReader(web.EditReq{
			Name:       "new name",
			Timezone:   "America/Bogota",
			HourlyRate: 1000,
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, test.Result[any]{Msg: "OK"}, recorder.MustScan())

	var u dao.User
	err = s.db.Where("id = ?", uid).First(&u).Error
	require.NoError(t, err)
	assert.Equal(t, "new name", u.Name)
	assert.Equal(t, "America/Bogota", u.Timezone)
	// 客户不能设置价格
	assert.Equal(t, int64(0), u.HourlyRate)

	req, err = http.NewRequest(http.MethodPost, "/users/profile", nil)
	require.NoError(t, err)
	profileRecorder := test.NewJSONResponseRecorder[web.Profile]()
	s.server.ServeHTTP(profileRecorder, req)
	require.Equal(t, 200, profileRecorder.Code)
	assert.Equal(t, web.Profile{
		Id:       uid,
		Name:     "new name",
		Role:     "client",
		Timezone: "America/Bogota",
	}, profileRecorder.MustScan().Data)
}

func (s *HandlerTestSuite) TestCompanions() {
	t := s.T()
	users := []dao.User{
		{Id: 1, ExternalID: "idp|c1", Name: "c1", Email: "c1@talkme.dev", Role: 2,
			Specialties: []string{"dementia"}, Languages: []string{"es"}, HourlyRate: 1000},
		{Id: 2, ExternalID: "idp|c2", Name: "c2", Role: 2,
			Specialties: []string{"mobility"}, Languages: []string{"en"}, HourlyRate: 2000},
		{Id: 3, ExternalID: "idp|c3", Name: "c3", Role: 2,
			Specialties: []string{"dementia", "mobility"}, Languages: []string{"en", "es"}, HourlyRate: 3000},
		{Id: 4, ExternalID: "idp|u4", Name: "client", Role: 1},
	}
	err := s.db.Create(&users).Error
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost,
		"/companions/list", iox.NewJSONReader(web.ListCompanionsReq{
			Specialty: "dementia",
			Language:  "es",
			Limit:     10,
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[ginx.DataList[web.Profile]]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	list := recorder.MustScan().Data
	assert.Equal(t, 2, list.Total)
	require.Len(t, list.List, 2)
	assert.Equal(t, int64(3), list.List[0].Id)
	assert.Equal(t, int64(1), list.List[1].Id)
	// 公开资料不返回邮箱
	assert.Equal(t, "", list.List[1].Email)

	testCases := []struct {
		name     string
		id       int64
		wantResp test.Result[web.Profile]
	}{
		{
			name: "陪护者详情",
			id:   2,
			wantResp: test.Result[web.Profile]{
				Data: web.Profile{
					Id:          2,
					Name:        "c2",
					Role:        "companion",
					Languages:   []string{"en"},
					Specialties: []string{"mobility"},
					HourlyRate:  2000,
				},
			},
		},
		{
			name: "客户不是陪护者",
			id:   4,
			wantResp: test.Result[web.Profile]{
				Code: errs.CompanionNotFound.Code,
				Msg:  errs.CompanionNotFound.Msg,
			},
		},
		{
			name: "不存在",
			id:   99,
			wantResp: test.Result[web.Profile]{
				Code: errs.CompanionNotFound.Code,
				Msg:  errs.CompanionNotFound.Msg,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/companions/detail", iox.NewJSONReader(web.CompanionDetailReq{Id: tc.id}))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Profile]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}
