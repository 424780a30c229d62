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

type WalletLogStatus uint8

func (s WalletLogStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	WalletLogStatusUnknown WalletLogStatus = iota
	// WalletLogStatusActive 已生效
	WalletLogStatusActive
	// WalletLogStatusLocked 预扣中
	WalletLogStatusLocked
	// WalletLogStatusCancelled 预扣已取消
	WalletLogStatusCancelled
)

// Wallet 金额单位均为分
type Wallet struct {
	Uid     int64
	Balance int64
	Locked  int64
	Logs    []WalletLog
}

// Available 可用余额, 预扣部分不可用
func (w Wallet) Available() int64 {
	return w.Balance - w.Locked
}

type WalletLog struct {
	ID    int64
	Key   string
	Uid   int64
	Biz   string
	BizID int64
	// Change 正数为入账, 负数为扣减
	Change  int64
	Balance int64
	Status  WalletLogStatus
	Desc    string
	Ctime   int64
}

// Funds 一次入账或预扣请求, Amount 恒为正
type Funds struct {
	Uid    int64
	Amount int64
	Key    string
	Biz    string
	BizID  int64
	Desc   string
}
