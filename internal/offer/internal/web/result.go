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

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/robertobolla/talkme-sub001/internal/offer/internal/errs"
	"github.com/robertobolla/talkme-sub001/internal/offer/internal/service"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

var bizErrors = []struct {
	err  error
	code errs.ErrorCode
}{
	{err: service.ErrInvalidOffer, code: errs.InvalidOffer},
	{err: service.ErrOfferNotFound, code: errs.OfferNotFound},
	{err: service.ErrApplicantNotFound, code: errs.ApplicantNotFound},
	{err: service.ErrAlreadyApplied, code: errs.AlreadyApplied},
	{err: service.ErrInvalidTransition, code: errs.InvalidTransition},
	{err: service.ErrPermissionDenied, code: errs.PermissionDenied},
	{err: service.ErrOwnOffer, code: errs.OwnOffer},
	{err: service.ErrTooEarly, code: errs.TooEarly},
	{err: service.ErrTooLate, code: errs.TooLate},
	{err: service.ErrInsufficientFunds, code: errs.InsufficientFunds},
}

// toResult 业务错误转成错误码返回, 其余按系统错误处理
func toResult(err error) (ginx.Result, error) {
	for _, be := range bizErrors {
		if errors.Is(err, be.err) {
			return ginx.Result{Code: be.code.Code, Msg: be.code.Msg}, nil
		}
	}
	return systemErrorResult, err
}
