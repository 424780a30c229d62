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

package event

const paymentEvents = "payment_events"

// PaymentEvent 每次状态变化发送一次, 钱包按 sn 和 lock_id 入账或者结算预扣
type PaymentEvent struct {
	SN     string `json:"sn"`
	Uid    int64  `json:"uid"`
	Type   uint8  `json:"type"`
	Asset  string `json:"asset"`
	Amount int64  `json:"amount"`
	LockID int64  `json:"lock_id"`
	Status uint8  `json:"status"`
}

func (e PaymentEvent) MessageKey() string {
	return e.SN
}
