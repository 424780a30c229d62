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

package booking

import (
	"github.com/robertobolla/talkme-sub001/internal/booking/internal/domain"
	"github.com/robertobolla/talkme-sub001/internal/booking/internal/event"
	"github.com/robertobolla/talkme-sub001/internal/booking/internal/job"
	"github.com/robertobolla/talkme-sub001/internal/booking/internal/service"
	"github.com/robertobolla/talkme-sub001/internal/booking/internal/web"
)

type (
	Handler                     = web.Handler
	Service                     = service.Service
	Session                     = domain.Session
	SessionStatus               = domain.SessionStatus
	BookingEvent                = event.BookingEvent
	RoomProvider                = service.RoomProvider
	ExpirePendingSessionsJob    = job.ExpirePendingSessionsJob
	CompleteFinishedSessionsJob = job.CompleteFinishedSessionsJob
)

var NewJWTRoomProvider = service.NewJWTRoomProvider

type Module struct {
	Svc         Service
	Hdl         *Handler
	ExpireJob   *ExpirePendingSessionsJob
	CompleteJob *CompleteFinishedSessionsJob
	c           *event.OfferConsumer
}
