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

import "time"

const (
	BizOffer   = "offer"
	BizSession = "session"
	BizPayment = "payment"
)

type Notification struct {
	ID int64
	// Key 同一个事件对同一个用户只会生成一条通知
	Key     string
	Uid     int64
	Type    string
	Title   string
	Content string
	Biz     string
	BizID   int64
	Read    bool
	Ctime   time.Time
}
