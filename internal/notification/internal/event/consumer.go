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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
	"github.com/robertobolla/talkme-sub001/internal/notification/internal/domain"
	"github.com/robertobolla/talkme-sub001/internal/notification/internal/service"
)

const groupID = "notification"

// Consumer 把业务事件转换成通知, 不关心的事件直接丢弃
type Consumer[T any] struct {
	svc      service.Service
	consumer mq.Consumer
	build    func(evt T) []domain.Notification
	logger   *elog.Component
}

type (
	OfferConsumer   = Consumer[OfferEvent]
	BookingConsumer = Consumer[BookingEvent]
	PaymentConsumer = Consumer[PaymentEvent]
)

func NewOfferConsumer(svc service.Service, q mq.MQ) (*OfferConsumer, error) {
	return newConsumer(svc, q, offerEvents, offerNotifications)
}

func NewBookingConsumer(svc service.Service, q mq.MQ) (*BookingConsumer, error) {
	return newConsumer(svc, q, bookingEvents, bookingNotifications)
}

func NewPaymentConsumer(svc service.Service, q mq.MQ) (*PaymentConsumer, error) {
	return newConsumer(svc, q, paymentEvents, paymentNotifications)
}

func newConsumer[T any](svc service.Service, q mq.MQ, topic string,
	build func(evt T) []domain.Notification) (*Consumer[T], error) {
	consumer, err := q.Consumer(topic, groupID)
	if err != nil {
		return nil, err
	}
	return &Consumer[T]{
		svc:      svc,
		consumer: consumer,
		build:    build,
		logger: elog.DefaultLogger.With(
			elog.FieldComponent("notification.Consumer"),
			elog.String("topic", topic)),
	}, nil
}

func (c *Consumer[T]) Start(ctx context.Context) {
	go func() {
		for {
			if ctx.Err() != nil {
				return
			}
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("consume event failed", elog.FieldErr(err))
			}
		}
	}()
}

func (c *Consumer[T]) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("get message failed: %w", err)
	}

	var evt T
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("unmarshal message failed: %w", err)
	}
	ns := c.build(evt)
	if len(ns) == 0 {
		return nil
	}
	return c.svc.Notify(ctx, ns...)
}

func (c *Consumer[T]) Stop(_ context.Context) error {
	return c.consumer.Close()
}
