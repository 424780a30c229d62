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

package sequencenumber

import (
	"errors"
	"fmt"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

// Prefix 业务前缀, 一眼就能看出 SN 属于哪个模块
type Prefix string

const (
	PrefixOffer      Prefix = "OF"
	PrefixSession    Prefix = "SS"
	PrefixDeposit    Prefix = "DP"
	PrefixWithdrawal Prefix = "WD"
)

const snLength = 32

var ErrInvalidPrefix = errors.New("invalid sequence number prefix")

type TimestampGenerateFunc func(time.Time) int64

type ShortUUIDGenerateFunc func() string

type Generator struct {
	timestampGenFunc TimestampGenerateFunc
	shortUUIDGenFunc ShortUUIDGenerateFunc
}

func NewGeneratorWith(timestampGen TimestampGenerateFunc, uuidGen ShortUUIDGenerateFunc) *Generator {
	return &Generator{
		timestampGenFunc: timestampGen,
		shortUUIDGenFunc: uuidGen,
	}
}

func NewGenerator() *Generator {
	return NewGeneratorWith(func(t time.Time) int64 { return t.UnixMilli() }, func() string { return shortuuid.New() })
}

// Generate 前缀 + 毫秒时间戳 + uid 后四位 + shortuuid, 截断为 32 位
func (s *Generator) Generate(prefix Prefix, uid int64) (string, error) {
	if len(prefix) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidPrefix, prefix)
	}
	timestamp := s.timestampGenFunc(time.Now())
	lastFour := fmt.Sprintf("%04d", uid%10000)
	uuid := s.shortUUIDGenFunc()
	return fmt.Sprintf("%s%d%s%s", prefix, timestamp, lastFour, uuid)[:snLength], nil
}
