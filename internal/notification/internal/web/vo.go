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

import "github.com/robertobolla/talkme-sub001/internal/notification/internal/domain"

type Notification struct {
	ID      int64  `json:"id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Biz     string `json:"biz"`
	BizID   int64  `json:"bizId,omitempty"`
	Read    bool   `json:"read"`
	Ctime   int64  `json:"ctime"`
}

func newNotification(n domain.Notification) Notification {
	return Notification{
		ID:      n.ID,
		Type:    n.Type,
		Title:   n.Title,
		Content: n.Content,
		Biz:     n.Biz,
		BizID:   n.BizID,
		Read:    n.Read,
		Ctime:   n.Ctime.UnixMilli(),
	}
}

type ListReq struct {
	UnreadOnly bool `json:"unreadOnly"`
	Offset     int  `json:"offset"`
	Limit      int  `json:"limit"`
}

type ReadReq struct {
	IDs []int64 `json:"ids"`
}

type Count struct {
	Count int64 `json:"count"`
}
