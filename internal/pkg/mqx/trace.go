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

	"github.com/ecodeclub/mq-api"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/robertobolla/talkme-sub001/internal/pkg/mqx"

// TraceMq 给收发消息打点, 事件发布和通知消费都走这里
type TraceMq struct {
	mq.MQ
	tracer trace.Tracer
}

func NewTraceMq(q mq.MQ) *TraceMq {
	return NewTraceMqWithProvider(q, otel.GetTracerProvider())
}

func NewTraceMqWithProvider(q mq.MQ, tp trace.TracerProvider) *TraceMq {
	return &TraceMq{MQ: q, tracer: tp.Tracer(instrumentationName)}
}

func (t *TraceMq) Producer(topic string) (mq.Producer, error) {
	pro, err := t.MQ.Producer(topic)
	if err != nil {
		return nil, err
	}
	return &TraceProducer{Producer: pro, topic: topic, tracer: t.tracer}, nil
}

func (t *TraceMq) Consumer(topic, groupID string) (mq.Consumer, error) {
	con, err := t.MQ.Consumer(topic, groupID)
	if err != nil {
		return nil, err
	}
	return &TraceConsumer{Consumer: con, topic: topic, group: groupID, tracer: t.tracer}, nil
}

type TraceProducer struct {
	mq.Producer
	topic  string
	tracer trace.Tracer
}

func (t *TraceProducer) Produce(ctx context.Context, m *mq.Message) (*mq.ProducerResult, error) {
	ctx, span := t.tracer.Start(ctx, t.topic+" publish", trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()
	span.SetAttributes(messageAttributes(t.topic, "publish", m)...)

	res, err := t.Producer.Produce(ctx, m)
	endSpan(span, err)
	return res, err
}

func (t *TraceProducer) ProduceWithPartition(ctx context.Context, m *mq.Message, partition int) (*mq.ProducerResult, error) {
	ctx, span := t.tracer.Start(ctx, t.topic+" publish", trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()
	span.SetAttributes(messageAttributes(t.topic, "publish", m)...)
	span.SetAttributes(attribute.Int("messaging.destination.partition.id", partition))

	res, err := t.Producer.ProduceWithPartition(ctx, m, partition)
	endSpan(span, err)
	return res, err
}

// TraceConsumer 只给 Consume 打点, ConsumeChan 原样透传
type TraceConsumer struct {
	mq.Consumer
	topic  string
	group  string
	tracer trace.Tracer
}

func (t *TraceConsumer) Consume(ctx context.Context) (*mq.Message, error) {
	msg, err := t.Consumer.Consume(ctx)
	// 阻塞等待的时间不计入 span
	_, span := t.tracer.Start(ctx, t.topic+" receive", trace.WithSpanKind(trace.SpanKindConsumer))
	defer span.End()
	span.SetAttributes(attribute.String("messaging.consumer.group.name", t.group))
	span.SetAttributes(messageAttributes(t.topic, "receive", msg)...)
	endSpan(span, err)
	return msg, err
}

func messageAttributes(topic, operation string, m *mq.Message) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("messaging.system", "kafka"),
		attribute.String("messaging.operation", operation),
		attribute.String("messaging.destination.name", topic),
	}
	if m == nil {
		return attrs
	}
	if len(m.Key) > 0 {
		attrs = append(attrs, attribute.String("messaging.kafka.message.key", string(m.Key)))
	}
	return append(attrs, attribute.Int("messaging.message.body.size", len(m.Value)))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
