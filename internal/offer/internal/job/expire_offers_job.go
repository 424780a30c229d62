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
	"github.com/robertobolla/talkme-sub001/internal/offer/internal/service"
)

var _ ecron.NamedJob = (*ExpireOffersJob)(nil)

// ExpireOffersJob 开始时间已过仍无人接单的需求置为过期
type ExpireOffersJob struct {
	svc    service.Service
	limit  int
	logger *elog.Component
}

func NewExpireOffersJob(svc service.Service, limit int) *ExpireOffersJob {
	return &ExpireOffersJob{
		svc:    svc,
		limit:  limit,
		logger: elog.DefaultLogger.With(elog.FieldComponent("offer.ExpireOffersJob")),
	}
}

func (j *ExpireOffersJob) Name() string {
	return "ExpireOffersJob"
}

func (j *ExpireOffersJob) Run(ctx context.Context) error {
	total := 0
	for {
		cnt, err := j.svc.ExpireOffers(ctx, j.limit)
		total += cnt
		if err != nil {
			return fmt.Errorf("expire offers failed: %w", err)
		}
		// 被并发修改跳过的记录不会再被查出来, 不足一页说明处理完了
		if cnt < j.limit {
			break
		}
	}
	if total > 0 {
		j.logger.Info("offers expired", elog.Int("count", total))
	}
	return nil
}
