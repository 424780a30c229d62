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
	MinDurationMinutes = 15
	MaxDurationMinutes = 240
	// JoinAheadDuration 开始前 10 分钟可以进入房间
	JoinAheadDuration = 10 * time.Minute
)

type SessionStatus uint8

func (s SessionStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	SessionStatusUnknown SessionStatus = iota
	// SessionStatusPending 等待陪护者确认
	SessionStatusPending
	SessionStatusConfirmed
	SessionStatusRejected
	SessionStatusCancelled
	SessionStatusCompleted
	// SessionStatusExpired 开始前一直没有被确认
	SessionStatusExpired
)

func (s SessionStatus) String() string {
	switch s {
	case SessionStatusPending:
		return "pending"
	case SessionStatusConfirmed:
		return "confirmed"
	case SessionStatusRejected:
		return "rejected"
	case SessionStatusCancelled:
		return "cancelled"
	case SessionStatusCompleted:
		return "completed"
	case SessionStatusExpired:
		return "expired"
	default:
		return "unknown"
	}
}

func SessionStatusFromString(s string) SessionStatus {
	for st := SessionStatusPending; st <= SessionStatusExpired; st++ {
		if st.String() == s {
			return st
		}
	}
	return SessionStatusUnknown
}

// Perspective 列表按哪一方的身份查询
type Perspective string

const (
	PerspectiveClient    Perspective = "client"
	PerspectiveCompanion Perspective = "companion"
)

// Session 一次陪护会话, 时间为毫秒时间戳, 金额单位为分
type Session struct {
	ID          int64
	SN          string
	ClientID    int64
	CompanionID int64
	// OfferID 由需求接单生成的会话才有
	OfferID      int64
	StartAt      int64
	EndAt        int64
	Price        int64
	LockID       int64
	Status       SessionStatus
	Note         string
	RejectReason string
	RoomName     string
	Ctime        int64
	Utime        int64
}

func (s Session) StartTime() time.Time {
	return time.UnixMilli(s.StartAt)
}

func (s Session) EndTime() time.Time {
	return time.UnixMilli(s.EndAt)
}

func (s Session) IsParticipant(uid int64) bool {
	return uid != 0 && (s.ClientID == uid || s.CompanionID == uid)
}

// Active 待确认和已确认的会话会占用时间
func (s Session) Active() bool {
	return s.Status == SessionStatusPending || s.Status == SessionStatusConfirmed
}

// Price 按小时价格折算, 不足一分的部分舍去
func Price(hourlyRate int64, durationMinutes int) int64 {
	return hourlyRate * int64(durationMinutes) / 60
}

type Room struct {
	Name      string
	URL       string
	Token     string
	ExpiresAt int64
}
