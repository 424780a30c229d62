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

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_FindAsset(t *testing.T) {
	cfg := Config{Assets: []Asset{
		{Symbol: "USDT", Networks: []string{"ethereum", "tron"}, MinAmount: 1000, MaxAmount: 100000},
		{Symbol: "USDC", Networks: []string{"polygon"}, MinAmount: 500},
	}}

	usdt, ok := cfg.FindAsset("usdt")
	assert.True(t, ok)
	assert.True(t, usdt.Supports("TRON"))
	assert.False(t, usdt.Supports("polygon"))
	assert.True(t, usdt.InRange(1000))
	assert.False(t, usdt.InRange(999))
	assert.False(t, usdt.InRange(100001))

	usdc, ok := cfg.FindAsset("USDC")
	assert.True(t, ok)
	// 没有配置上限
	assert.True(t, usdc.InRange(1_000_000_00))

	_, ok = cfg.FindAsset("BTC")
	assert.False(t, ok)
}

func TestPaymentStatus(t *testing.T) {
	assert.Equal(t, PaymentStatusPaid, PaymentStatusFromString("paid"))
	assert.Equal(t, PaymentStatusUnknown, PaymentStatusFromString("done"))
	assert.False(t, PaymentStatusPending.Final())
	assert.True(t, PaymentStatusExpired.Final())
	assert.Equal(t, "withdrawal", PaymentTypeWithdrawal.String())
}
