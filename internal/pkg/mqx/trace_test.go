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

package mqx

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestTraceMq(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	q := NewTraceMqWithProvider(memory.NewMQ(), tp)
	require.NoError(t, q.CreateTopic(ctx, "booking_events", 1))

	c, err := q.Consumer("booking_events", "notification")
	require.NoError(t, err)
	p, err := q.Producer("booking_events")
	require.NoError(t, err)

	_, err = p.Produce(ctx, &mq.Message{Key: []byte("BK1"), Value: []byte(`{"sn":"BK1"}`)})
	require.NoError(t, err)
	msg, err := c.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"sn":"BK1"}`), msg.Value)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "booking_events publish", spans[0].Name())
	assert.Equal(t, trace.SpanKindProducer, spans[0].SpanKind())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
	assert.Equal(t, "booking_events receive", spans[1].Name())
	assert.Equal(t, trace.SpanKindConsumer, spans[1].SpanKind())
}
