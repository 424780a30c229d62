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

package errs

var (
	SystemError       = ErrorCode{Code: 503001, Msg: "系统错误"}
	InvalidOffer      = ErrorCode{Code: 503002, Msg: "需求信息不合法"}
	OfferNotFound     = ErrorCode{Code: 503003, Msg: "需求不存在"}
	ApplicantNotFound = ErrorCode{Code: 503004, Msg: "申请不存在"}
	AlreadyApplied    = ErrorCode{Code: 503005, Msg: "已经申请过了"}
	InvalidTransition = ErrorCode{Code: 503006, Msg: "当前状态不允许该操作"}
	PermissionDenied  = ErrorCode{Code: 503007, Msg: "没有权限"}
	OwnOffer          = ErrorCode{Code: 503008, Msg: "不能申请自己的需求"}
	TooEarly          = ErrorCode{Code: 503009, Msg: "需求还没有开始"}
	InsufficientFunds = ErrorCode{Code: 503010, Msg: "余额不足"}
	TooLate           = ErrorCode{Code: 503011, Msg: "需求已经开始"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
