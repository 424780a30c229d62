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
	"slices"
	"strings"
	"time"
)

type PaymentType uint8

func (t PaymentType) ToUint8() uint8 {
	return uint8(t)
}

const (
	PaymentTypeUnknown PaymentType = iota
	PaymentTypeDeposit
	PaymentTypeWithdrawal
)

func (t PaymentType) String() string {
	switch t {
	case PaymentTypeDeposit:
		return "deposit"
	case PaymentTypeWithdrawal:
		return "withdrawal"
	default:
		return "unknown"
	}
}

type PaymentStatus uint8

func (s PaymentStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	PaymentStatusUnknown PaymentStatus = iota
	PaymentStatusPending
	PaymentStatusPaid
	PaymentStatusFailed
	// PaymentStatusExpired 充值超时未到账
	PaymentStatusExpired
)

func (s PaymentStatus) String() string {
	switch s {
	case PaymentStatusPending:
		return "pending"
	case PaymentStatusPaid:
		return "paid"
	case PaymentStatusFailed:
		return "failed"
	case PaymentStatusExpired:
		return "expired"
	default:
		return "unknown"
	}
}

func PaymentStatusFromString(s string) PaymentStatus {
	for st := PaymentStatusPending; st <= PaymentStatusExpired; st++ {
		if st.String() == s {
			return st
		}
	}
	return PaymentStatusUnknown
}

// Final 终态不会再变化
func (s PaymentStatus) Final() bool {
	return s == PaymentStatusPaid || s == PaymentStatusFailed || s == PaymentStatusExpired
}

// Payment 金额和钱包一致, 单位为分, 资产按 1:1 计价
type Payment struct {
	ID      int64
	SN      string
	Uid     int64
	Type    PaymentType
	Asset   string
	Network string
	Amount  int64
	// Address 充值时是平台生成的收款地址, 提现时是用户的地址
	Address   string
	TxHash    string
	LockID    int64
	Status    PaymentStatus
	ExpiredAt int64
	PaidAt    int64
	Ctime     int64
	Utime     int64
}

// Asset 支持的币种, 金额上下限单位为分
type Asset struct {
	Symbol    string   `yaml:"symbol"`
	Networks  []string `yaml:"networks"`
	MinAmount int64    `yaml:"minAmount"`
	MaxAmount int64    `yaml:"maxAmount"`
}

func (a Asset) Supports(network string) bool {
	return slices.Contains(a.Networks, strings.ToLower(network))
}

func (a Asset) InRange(amount int64) bool {
	return amount >= a.MinAmount && (a.MaxAmount <= 0 || amount <= a.MaxAmount)
}

type Config struct {
	Assets     []Asset       `yaml:"assets"`
	DepositTTL time.Duration `yaml:"depositTTL"`
}

func (c Config) FindAsset(symbol string) (Asset, bool) {
	idx := slices.IndexFunc(c.Assets, func(a Asset) bool {
		return strings.EqualFold(a.Symbol, symbol)
	})
	if idx < 0 {
		return Asset{}, false
	}
	return c.Assets[idx], true
}
