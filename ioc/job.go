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

package ioc

import (
	"github.com/gotomicro/ego/task/ecron"
	"github.com/robertobolla/talkme-sub001/internal/booking"
	"github.com/robertobolla/talkme-sub001/internal/job"
	"github.com/robertobolla/talkme-sub001/internal/offer"
	"github.com/robertobolla/talkme-sub001/internal/payment"
)

func initCronJobs(
	offerModule *offer.Module,
	bookingModule *booking.Module,
	paymentModule *payment.Module,
) []ecron.Ecron {
	b := job.NewCronJobBuilder()
	return []ecron.Ecron{
		ecron.Load("cron.expireOffers").Build(ecron.WithJob(b.Build(offerModule.ExpireJob))),
		ecron.Load("cron.expireSessions").Build(ecron.WithJob(b.Build(bookingModule.ExpireJob))),
		ecron.Load("cron.completeSessions").Build(ecron.WithJob(b.Build(bookingModule.CompleteJob))),
		ecron.Load("cron.closeDeposits").Build(ecron.WithJob(b.Build(paymentModule.CloseJob))),
	}
}
