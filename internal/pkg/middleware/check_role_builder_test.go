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

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx/session"
	middlewaremocks "github.com/robertobolla/talkme-sub001/internal/pkg/middleware/mocks"
	sessmocks "github.com/robertobolla/talkme-sub001/internal/test/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCheckRoleMiddlewareBuilder_Build(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) (RoleFinder, session.Provider)
		roles    []string
		wantCode int
	}{
		{
			name: "not logged in",
			mock: func(ctrl *gomock.Controller) (RoleFinder, session.Provider) {
				p := sessmocks.NewMockProvider(ctrl)
				p.EXPECT().Get(gomock.Any()).Return(nil, errors.New("mock no jwt"))
				return nil, p
			},
			roles:    []string{"client"},
			wantCode: http.StatusForbidden,
		},
		{
			name: "role in claims allowed",
			mock: func(ctrl *gomock.Controller) (RoleFinder, session.Provider) {
				p := sessmocks.NewMockProvider(ctrl)
				p.EXPECT().Get(gomock.Any()).Return(session.NewMemorySession(session.Claims{
					Uid:  11,
					Data: map[string]string{ClaimRole: "client"},
				}), nil)
				return nil, p
			},
			roles:    []string{"client"},
			wantCode: http.StatusOK,
		},
		{
			name: "role in claims rejected",
			mock: func(ctrl *gomock.Controller) (RoleFinder, session.Provider) {
				p := sessmocks.NewMockProvider(ctrl)
				p.EXPECT().Get(gomock.Any()).Return(session.NewMemorySession(session.Claims{
					Uid:  12,
					Data: map[string]string{ClaimRole: "client"},
				}), nil)
				return nil, p
			},
			roles:    []string{"companion"},
			wantCode: http.StatusForbidden,
		},
		{
			name: "role missing in claims, found and refreshed",
			mock: func(ctrl *gomock.Controller) (RoleFinder, session.Provider) {
				p := sessmocks.NewMockProvider(ctrl)
				p.EXPECT().Get(gomock.Any()).Return(session.NewMemorySession(session.Claims{
					Uid:  13,
					SSID: "ssid-13",
					Data: map[string]string{},
				}), nil)
				p.EXPECT().UpdateClaims(gomock.Any(), session.Claims{
					Uid:  13,
					SSID: "ssid-13",
					Data: map[string]string{ClaimRole: "companion"},
				}).Return(nil)
				finder := middlewaremocks.NewMockRoleFinder(ctrl)
				finder.EXPECT().FindRole(gomock.Any(), int64(13)).Return("companion", nil)
				return finder, p
			},
			roles:    []string{"companion"},
			wantCode: http.StatusOK,
		},
		{
			name: "role missing in claims, refresh failed still allowed",
			mock: func(ctrl *gomock.Controller) (RoleFinder, session.Provider) {
				p := sessmocks.NewMockProvider(ctrl)
				p.EXPECT().Get(gomock.Any()).Return(session.NewMemorySession(session.Claims{
					Uid:  14,
					Data: map[string]string{},
				}), nil)
				p.EXPECT().UpdateClaims(gomock.Any(), gomock.Any()).Return(errors.New("mock redis error"))
				finder := middlewaremocks.NewMockRoleFinder(ctrl)
				finder.EXPECT().FindRole(gomock.Any(), int64(14)).Return("client", nil)
				return finder, p
			},
			roles:    []string{"client", "companion"},
			wantCode: http.StatusOK,
		},
		{
			name: "role missing in claims, user not onboarded",
			mock: func(ctrl *gomock.Controller) (RoleFinder, session.Provider) {
				p := sessmocks.NewMockProvider(ctrl)
				p.EXPECT().Get(gomock.Any()).Return(session.NewMemorySession(session.Claims{
					Uid:  15,
					Data: map[string]string{},
				}), nil)
				finder := middlewaremocks.NewMockRoleFinder(ctrl)
				finder.EXPECT().FindRole(gomock.Any(), int64(15)).Return("", nil)
				return finder, p
			},
			roles:    []string{"client"},
			wantCode: http.StatusForbidden,
		},
		{
			name: "role missing in claims, lookup failed",
			mock: func(ctrl *gomock.Controller) (RoleFinder, session.Provider) {
				p := sessmocks.NewMockProvider(ctrl)
				p.EXPECT().Get(gomock.Any()).Return(session.NewMemorySession(session.Claims{
					Uid:  16,
					Data: map[string]string{},
				}), nil)
				finder := middlewaremocks.NewMockRoleFinder(ctrl)
				finder.EXPECT().FindRole(gomock.Any(), int64(16)).Return("", errors.New("mock db error"))
				return finder, p
			},
			roles:    []string{"client"},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			finder, provider := tc.mock(ctrl)
			builder := NewCheckRoleMiddlewareBuilder(finder)
			builder.sp = provider

			server := gin.New()
			server.POST("/check", builder.Build(tc.roles...), func(ctx *gin.Context) {
				ctx.Status(http.StatusOK)
			})
			req := httptest.NewRequest(http.MethodPost, "/check", nil)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}
