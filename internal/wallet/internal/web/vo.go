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

type Wallet struct {
	Balance   int64 `json:"balance"`
	Locked    int64 `json:"locked"`
	Available int64 `json:"available"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type WalletLog struct {
	ID      int64  `json:"id"`
	Biz     string `json:"biz"`
	BizID   int64  `json:"bizId"`
	Change  int64  `json:"change"`
	Balance int64  `json:"balance"`
	Status  uint8  `json:"status"`
	Desc    string `json:"desc"`
	Ctime   int64  `json:"ctime"`
}
