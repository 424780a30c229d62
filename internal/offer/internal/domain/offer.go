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
	MaxDurationMinutes = 480
)

type OfferStatus uint8

func (s OfferStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	OfferStatusUnknown OfferStatus = iota
	// OfferStatusPublished 已发布, 等待陪护者申请
	OfferStatusPublished
	// OfferStatusAccepted 客户已经选定了陪护者
	OfferStatusAccepted
	OfferStatusCancelled
	OfferStatusCompleted
	// OfferStatusExpired 开始时间已过仍无人接单
	OfferStatusExpired
)

func (s OfferStatus) String() string {
	switch s {
	case OfferStatusPublished:
		return "published"
	case OfferStatusAccepted:
		return "accepted"
	case OfferStatusCancelled:
		return "cancelled"
	case OfferStatusCompleted:
		return "completed"
	case OfferStatusExpired:
		return "expired"
	default:
		return "unknown"
	}
}

func OfferStatusFromString(s string) OfferStatus {
	for st := OfferStatusPublished; st <= OfferStatusExpired; st++ {
		if st.String() == s {
			return st
		}
	}
	return OfferStatusUnknown
}

type ApplicantStatus uint8

func (s ApplicantStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	ApplicantStatusUnknown ApplicantStatus = iota
	ApplicantStatusPending
	ApplicantStatusAccepted
	ApplicantStatusRejected
	ApplicantStatusWithdrawn
)

func (s ApplicantStatus) String() string {
	switch s {
	case ApplicantStatusPending:
		return "pending"
	case ApplicantStatusAccepted:
		return "accepted"
	case ApplicantStatusRejected:
		return "rejected"
	case ApplicantStatusWithdrawn:
		return "withdrawn"
	default:
		return "unknown"
	}
}

// Offer 客户发布的陪护需求, 金额单位为分
type Offer struct {
	ID              int64
	SN              string
	ClientID        int64
	CompanionID     int64
	Title           string
	Description     string
	Specialty       string
	StartAt         int64
	DurationMinutes int
	Budget          int64
	Status          OfferStatus
	// LockID 接单后客户钱包中预扣记录的 ID
	LockID     int64
	Applicants []Applicant
	Ctime      int64
	Utime      int64
}

func (o Offer) StartTime() time.Time {
	return time.UnixMilli(o.StartAt)
}

func (o Offer) EndTime() time.Time {
	return o.StartTime().Add(time.Duration(o.DurationMinutes) * time.Minute)
}

type Applicant struct {
	ID          int64
	OfferID     int64
	CompanionID int64
	Message     string
	Status      ApplicantStatus
	Ctime       int64
	Utime       int64
}
