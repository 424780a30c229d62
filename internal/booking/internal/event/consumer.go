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

// OfferHandler 由会话服务实现
type OfferHandler interface {
	HandleOfferEvent(ctx context.Context, evt OfferEvent) error
}

type OfferConsumer struct {
	svc      OfferHandler
	consumer mq.Consumer
	logger   *elog.Component
}

func NewOfferConsumer(svc OfferHandler, q mq.MQ) (*OfferConsumer, error) {
	const groupID = "booking"
	consumer, err := q.Consumer(offerEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &OfferConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("booking.OfferConsumer")),
	}, nil
}

func (c *OfferConsumer) Start(ctx context.Context) {
	go func() {
		for {
			if ctx.Err() != nil {
				return
			}
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("consume offer event failed", elog.FieldErr(err))
			}
		}
	}()
}

func (c *OfferConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("get message failed: %w", err)
	}
	var evt OfferEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("unmarshal message failed: %w", err)
	}
	err = c.svc.HandleOfferEvent(ctx, evt)
	if err != nil {
		return fmt.Errorf("handle offer event failed: offer %d, action %s: %w", evt.OfferID, evt.Action, err)
	}
	return nil
}

func (c *OfferConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
