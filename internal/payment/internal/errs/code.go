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
	SystemError       = ErrorCode{Code: 505001, Msg: "系统错误"}
	InvalidPayment    = ErrorCode{Code: 505002, Msg: "支付信息不合法"}
	PaymentNotFound   = ErrorCode{Code: 505003, Msg: "支付记录不存在"}
	InvalidTransition = ErrorCode{Code: 505004, Msg: "支付状态不允许该操作"}
	InsufficientFunds = ErrorCode{Code: 505005, Msg: "余额不足"}
	DuplicatedTxHash  = ErrorCode{Code: 505006, Msg: "交易已经被使用"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
