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

package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/robertobolla/talkme-sub001/internal/user/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestHTTPIdentityProvider_Verify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_token"})
			return
		}
		_ = json.NewEncoder(w).Encode(UserInfo{
			Sub:     "idp|42",
			Email:   "ana@talkme.dev",
			Name:    "Ana",
			Picture: "https://cdn.talkme.dev/ana.png",
		})
	}))
	defer server.Close()

	testCases := []struct {
		name         string
		token        string
		wantIdentity domain.Identity
		wantErr      error
	}{
		{
			name:  "验证成功",
			token: "good-token",
			wantIdentity: domain.Identity{
				ExternalID: "idp|42",
				Email:      "ana@talkme.dev",
				Name:       "Ana",
				Avatar:     "https://cdn.talkme.dev/ana.png",
			},
		},
		{
			name:    "凭证无效",
			token:   "bad-token",
			wantErr: ErrInvalidToken,
		},
		{
			name:    "空凭证",
			wantErr: ErrInvalidToken,
		},
	}
	p := NewHTTPIdentityProvider(server.URL, time.Second)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			identity, err := p.Verify(context.Background(), tc.token)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantIdentity, identity)
		})
	}
}
