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
	SystemError         = ErrorCode{Code: 504001, Msg: "系统错误"}
	InvalidBooking      = ErrorCode{Code: 504002, Msg: "预约信息不合法"}
	SessionNotFound     = ErrorCode{Code: 504003, Msg: "会话不存在"}
	SlotConflict        = ErrorCode{Code: 504004, Msg: "该时间段已被预约"}
	OutsideAvailability = ErrorCode{Code: 504005, Msg: "不在陪护者的可预约时间内"}
	CompanionNotFound   = ErrorCode{Code: 504006, Msg: "陪护者不存在"}
	InvalidTransition   = ErrorCode{Code: 504007, Msg: "当前状态不允许该操作"}
	PermissionDenied    = ErrorCode{Code: 504008, Msg: "没有权限"}
	TooLate             = ErrorCode{Code: 504009, Msg: "会话已经开始"}
	TooEarly            = ErrorCode{Code: 504010, Msg: "会话还没有开始"}
	RoomUnavailable     = ErrorCode{Code: 504011, Msg: "房间还没有开放"}
	InsufficientFunds   = ErrorCode{Code: 504012, Msg: "余额不足"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
