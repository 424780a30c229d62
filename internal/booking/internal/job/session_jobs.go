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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
	"github.com/robertobolla/talkme-sub001/internal/booking/internal/service"
)

var (
	_ ecron.NamedJob = (*ExpirePendingSessionsJob)(nil)
	_ ecron.NamedJob = (*CompleteFinishedSessionsJob)(nil)
)

// ExpirePendingSessionsJob 到了开始时间陪护者还没确认的预约置为过期并退还预扣
type ExpirePendingSessionsJob struct {
	svc    service.Service
	limit  int
	logger *elog.Component
}

func NewExpirePendingSessionsJob(svc service.Service, limit int) *ExpirePendingSessionsJob {
	return &ExpirePendingSessionsJob{
		svc:    svc,
		limit:  limit,
		logger: elog.DefaultLogger.With(elog.FieldComponent("booking.ExpirePendingSessionsJob")),
	}
}

func (j *ExpirePendingSessionsJob) Name() string {
	return "ExpirePendingSessionsJob"
}

func (j *ExpirePendingSessionsJob) Run(ctx context.Context) error {
	total := 0
	for {
		cnt, err := j.svc.ExpirePending(ctx, j.limit)
		total += cnt
		if err != nil {
			return fmt.Errorf("expire pending sessions failed: %w", err)
		}
		if cnt < j.limit {
			break
		}
	}
	if total > 0 {
		j.logger.Info("pending sessions expired", elog.Int("count", total))
	}
	return nil
}

// CompleteFinishedSessionsJob 结束超过 grace 仍未被双方标记完成的会话自动完成并付款
type CompleteFinishedSessionsJob struct {
	svc    service.Service
	grace  time.Duration
	limit  int
	now    func() time.Time
	logger *elog.Component
}

func NewCompleteFinishedSessionsJob(svc service.Service, grace time.Duration, limit int) *CompleteFinishedSessionsJob {
	return &CompleteFinishedSessionsJob{
		svc:    svc,
		grace:  grace,
		limit:  limit,
		now:    time.Now,
		logger: elog.DefaultLogger.With(elog.FieldComponent("booking.CompleteFinishedSessionsJob")),
	}
}

func (j *CompleteFinishedSessionsJob) Name() string {
	return "CompleteFinishedSessionsJob"
}

func (j *CompleteFinishedSessionsJob) Run(ctx context.Context) error {
	before := j.now().Add(-j.grace)
	total := 0
	for {
		cnt, err := j.svc.CompleteFinished(ctx, before, j.limit)
		total += cnt
		if err != nil {
			return fmt.Errorf("complete finished sessions failed: %w", err)
		}
		if cnt < j.limit {
			break
		}
	}
	if total > 0 {
		j.logger.Info("finished sessions completed", elog.Int("count", total))
	}
	return nil
}
