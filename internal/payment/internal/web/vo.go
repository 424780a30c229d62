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

package web

import (
	"github.com/robertobolla/talkme-sub001/internal/payment/internal/domain"
)

type Payment struct {
	SN        string `json:"sn"`
	Type      string `json:"type"`
	Asset     string `json:"asset"`
	Network   string `json:"network"`
	Amount    int64  `json:"amount"`
	Address   string `json:"address"`
	TxHash    string `json:"txHash,omitempty"`
	Status    string `json:"status"`
	ExpiredAt int64  `json:"expiredAt,omitempty"`
	PaidAt    int64  `json:"paidAt,omitempty"`
	Ctime     int64  `json:"ctime"`
}

func newPayment(p domain.Payment) Payment {
	return Payment{
		SN:        p.SN,
		Type:      p.Type.String(),
		Asset:     p.Asset,
		Network:   p.Network,
		Amount:    p.Amount,
		Address:   p.Address,
		TxHash:    p.TxHash,
		Status:    p.Status.String(),
		ExpiredAt: p.ExpiredAt,
		PaidAt:    p.PaidAt,
		Ctime:     p.Ctime,
	}
}

type Asset struct {
	Symbol    string   `json:"symbol"`
	Networks  []string `json:"networks"`
	MinAmount int64    `json:"minAmount"`
	MaxAmount int64    `json:"maxAmount"`
}

type DepositReq struct {
	Amount  int64  `json:"amount"`
	Asset   string `json:"asset"`
	Network string `json:"network"`
}

type WithdrawReq struct {
	Amount  int64  `json:"amount"`
	Asset   string `json:"asset"`
	Network string `json:"network"`
	Address string `json:"address"`
}

// WebhookReq 模拟支付渠道的回调, status 为 paid 或者 failed
type WebhookReq struct {
	SN     string `json:"sn"`
	TxHash string `json:"txHash"`
	Status string `json:"status"`
}

type SNReq struct {
	SN string `json:"sn"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
