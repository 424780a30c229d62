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
	"github.com/robertobolla/talkme-sub001/internal/booking/internal/errs"
	"github.com/robertobolla/talkme-sub001/internal/booking/internal/service"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

func bizResult(code errs.ErrorCode) (ginx.Result, error) {
	return ginx.Result{Code: code.Code, Msg: code.Msg}, nil
}

func toResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrInvalidBooking):
		return bizResult(errs.InvalidBooking)
	case errors.Is(err, service.ErrSessionNotFound):
		return bizResult(errs.SessionNotFound)
	case errors.Is(err, service.ErrSlotConflict):
		return bizResult(errs.SlotConflict)
	case errors.Is(err, service.ErrOutsideAvailability):
		return bizResult(errs.OutsideAvailability)
	case errors.Is(err, service.ErrCompanionNotFound):
		return bizResult(errs.CompanionNotFound)
	case errors.Is(err, service.ErrInvalidTransition):
		return bizResult(errs.InvalidTransition)
	case errors.Is(err, service.ErrPermissionDenied):
		return bizResult(errs.PermissionDenied)
	case errors.Is(err, service.ErrTooLate):
		return bizResult(errs.TooLate)
	case errors.Is(err, service.ErrTooEarly):
		return bizResult(errs.TooEarly)
	case errors.Is(err, service.ErrRoomUnavailable):
		return bizResult(errs.RoomUnavailable)
	case errors.Is(err, service.ErrInsufficientFunds):
		return bizResult(errs.InsufficientFunds)
	default:
		return systemErrorResult, err
	}
}
