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
)

// BookingSyncer 由需求服务实现, 避免事件包反向依赖服务包
type BookingSyncer interface {
	SyncFromBooking(ctx context.Context, offerID int64, action string) error
}

type BookingConsumer struct {
	svc      BookingSyncer
	consumer mq.Consumer
	logger   *elog.Component
}

func NewBookingConsumer(svc BookingSyncer, q mq.MQ) (*BookingConsumer, error) {
	const groupID = "offer"
	consumer, err := q.Consumer(bookingEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &BookingConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("offer.BookingConsumer")),
	}, nil
}

func (c *BookingConsumer) Start(ctx context.Context) {
	go func() {
		for {
			if ctx.Err() != nil {
				return
			}
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("consume booking event failed", elog.FieldErr(err))
			}
		}
	}()
}

func (c *BookingConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("get message failed: %w", err)
	}
	var evt BookingEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("unmarshal message failed: %w", err)
	}
	if evt.OfferID == 0 {
		return nil
	}
	err = c.svc.SyncFromBooking(ctx, evt.OfferID, evt.Action)
	if err != nil {
		return fmt.Errorf("sync offer from booking failed: session %d, offer %d: %w", evt.SessionID, evt.OfferID, err)
	}
	return nil
}

func (c *BookingConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
