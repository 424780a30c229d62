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

	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
	"github.com/robertobolla/talkme-sub001/internal/payment/internal/service"
)

var _ ecron.NamedJob = (*CloseExpiredDepositsJob)(nil)

type CloseExpiredDepositsJob struct {
	svc   service.Service
	limit int
	l     *elog.Component
}

func NewCloseExpiredDepositsJob(svc service.Service, limit int) *CloseExpiredDepositsJob {
	return &CloseExpiredDepositsJob{
		svc:   svc,
		limit: limit,
		l:     elog.DefaultLogger.With(elog.FieldComponent("payment.CloseExpiredDepositsJob")),
	}
}

func (j *CloseExpiredDepositsJob) Name() string {
	return "close_expired_deposits_job"
}

func (j *CloseExpiredDepositsJob) Run(ctx context.Context) error {
	for {
		cnt, err := j.svc.CloseExpiredDeposits(ctx, j.limit)
		if err != nil {
			return fmt.Errorf("close expired deposits failed: %w", err)
		}
		if cnt > 0 {
			j.l.Info("expired deposits closed", elog.Int("count", cnt))
		}
		if cnt < j.limit {
			return nil
		}
	}
}
