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
	"errors"
	"strconv"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
	"github.com/prometheus/client_golang/prometheus"
)

// CronJobBuilder 把定时任务包装成 ecron.FuncJob, 统一记录日志和耗时
type CronJobBuilder struct {
	l      *elog.Component
	vector *prometheus.SummaryVec
}

func NewCronJobBuilder() *CronJobBuilder {
	return NewCronJobBuilderWithRegisterer(prometheus.DefaultRegisterer)
}

func NewCronJobBuilderWithRegisterer(reg prometheus.Registerer) *CronJobBuilder {
	vector := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: "talkme",
		Subsystem: "cron",
		Name:      "job_duration_seconds",
		Help:      "定时任务执行耗时",
		Objectives: map[float64]float64{
			0.5:  0.01,
			0.9:  0.01,
			0.99: 0.001,
		},
	}, []string{"name", "success"})
	if err := reg.Register(vector); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			panic(err)
		}
		vector = are.ExistingCollector.(*prometheus.SummaryVec)
	}
	return &CronJobBuilder{
		l:      elog.DefaultLogger,
		vector: vector,
	}
}

func (b *CronJobBuilder) Build(job ecron.NamedJob) ecron.FuncJob {
	name := job.Name()
	return func(ctx context.Context) error {
		start := time.Now()
		b.l.Debug("cron job started", elog.String("cronjob", name))
		err := job.Run(ctx)
		duration := time.Since(start)
		b.vector.WithLabelValues(name, strconv.FormatBool(err == nil)).
			Observe(duration.Seconds())
		if err != nil {
			b.l.Error("cron job failed",
				elog.FieldErr(err),
				elog.String("cronjob", name),
				elog.FieldCost(duration))
			return err
		}
		b.l.Debug("cron job finished",
			elog.String("cronjob", name),
			elog.FieldCost(duration))
		return nil
	}
}
