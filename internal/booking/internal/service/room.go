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
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/robertobolla/talkme-sub001/internal/booking/internal/domain"
)

var ErrInvalidRoomToken = errors.New("invalid room token")

// RoomProvider 生成视频房间的地址和入场凭证, 不对接第三方服务
//
//go:generate mockgen -source=./room.go -package=svcmocks -destination=./mocks/room.mock.go RoomProvider
type RoomProvider interface {
	RoomName(sn string) string
	Issue(s domain.Session, uid int64, expiresAt time.Time) (domain.Room, error)
}

type RoomClaims struct {
	jwt.RegisteredClaims
	Room string `json:"room"`
	Uid  int64  `json:"uid"`
}

type JWTRoomProvider struct {
	baseURL string
	secret  []byte
}

func NewJWTRoomProvider(baseURL, secret string) *JWTRoomProvider {
	return &JWTRoomProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		secret:  []byte(secret),
	}
}

func (p *JWTRoomProvider) RoomName(sn string) string {
	return "talkme-" + strings.ToLower(sn)
}

func (p *JWTRoomProvider) Issue(s domain.Session, uid int64, expiresAt time.Time) (domain.Room, error) {
	name := s.RoomName
	if name == "" {
		name = p.RoomName(s.SN)
	}
	claims := RoomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(uid, 10),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Room: name,
		Uid:  uid,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return domain.Room{}, fmt.Errorf("sign room token failed: %w", err)
	}
	return domain.Room{
		Name:      name,
		URL:       p.baseURL + "/" + name,
		Token:     token,
		ExpiresAt: expiresAt.UnixMilli(),
	}, nil
}

// Verify 解析入场凭证, 给视频服务端回调使用
func (p *JWTRoomProvider) Verify(token string) (RoomClaims, error) {
	var claims RoomClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return RoomClaims{}, fmt.Errorf("%w: %w", ErrInvalidRoomToken, err)
	}
	return claims, nil
}
