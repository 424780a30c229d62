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
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ecodeclub/ekit/net/httpx"
	"github.com/gotomicro/ego/core/elog"
	"github.com/robertobolla/talkme-sub001/internal/user/internal/domain"
)

var ErrInvalidToken = errors.New("invalid identity token")

// IdentityProvider 外部身份提供方, 本系统不负责签发和校验凭证本身
//
//go:generate mockgen -source=./identity.go -package=svcmocks -destination=./mocks/identity.mock.go IdentityProvider
type IdentityProvider interface {
	Verify(ctx context.Context, token string) (domain.Identity, error)
}

// UserInfo 标准 OIDC userinfo 响应
type UserInfo struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// HTTPIdentityProvider 拿着前端给的 token 调用 userinfo 接口
type HTTPIdentityProvider struct {
	userinfoURL string
	client      *http.Client
	logger      *elog.Component
}

func NewHTTPIdentityProvider(userinfoURL string, timeout time.Duration) *HTTPIdentityProvider {
	return &HTTPIdentityProvider{
		userinfoURL: userinfoURL,
		client:      &http.Client{Timeout: timeout},
		logger:      elog.DefaultLogger,
	}
}

func (p *HTTPIdentityProvider) Verify(ctx context.Context, token string) (domain.Identity, error) {
	if token == "" {
		return domain.Identity{}, ErrInvalidToken
	}
	var res UserInfo
	err := httpx.NewRequest(ctx, http.MethodGet, p.userinfoURL).
		Client(p.client).
		AddHeader("Authorization", "Bearer "+token).
		AddHeader("Accept", "application/json").
		Do().
		JSONScan(&res)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("call userinfo endpoint: %w", err)
	}
	// 凭证无效时 IdP 返回的错误体里没有 sub
	if res.Sub == "" {
		return domain.Identity{}, ErrInvalidToken
	}
	return domain.Identity{
		ExternalID: res.Sub,
		Email:      res.Email,
		Name:       res.Name,
		Avatar:     res.Picture,
	}, nil
}
