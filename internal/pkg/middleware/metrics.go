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

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsBuilder struct {
	duration *prometheus.SummaryVec
	total    *prometheus.CounterVec
	inflight prometheus.Gauge
}

func NewMetricsBuilder(namespace string) *MetricsBuilder {
	return NewMetricsBuilderWithRegisterer(namespace, prometheus.DefaultRegisterer)
}

func NewMetricsBuilderWithRegisterer(namespace string, reg prometheus.Registerer) *MetricsBuilder {
	factory := promauto.With(reg)
	labels := []string{"method", "path", "status_code"}
	return &MetricsBuilder{
		duration: factory.NewSummaryVec(prometheus.SummaryOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
		}, labels),
		total: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		}, labels),
		inflight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "HTTP requests being served",
		}),
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		b.inflight.Inc()
		defer b.inflight.Dec()

		ctx.Next()

		// 未匹配的路由统一归为 unknown
		path := ctx.FullPath()
		if path == "" {
			path = "unknown"
		}
		status := strconv.Itoa(ctx.Writer.Status())
		b.duration.WithLabelValues(ctx.Request.Method, path, status).Observe(time.Since(start).Seconds())
		b.total.WithLabelValues(ctx.Request.Method, path, status).Inc()
	}
}
