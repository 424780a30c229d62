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
	"errors"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
	"github.com/robertobolla/talkme-sub001/internal/wallet/internal/domain"
	"github.com/robertobolla/talkme-sub001/internal/wallet/internal/service"
)

type PaymentConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewPaymentConsumer(svc service.Service, q mq.MQ) (*PaymentConsumer, error) {
	const groupID = "wallet"
	consumer, err := q.Consumer(paymentEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &PaymentConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("wallet.PaymentConsumer")),
	}, nil
}

func (c *PaymentConsumer) Start(ctx context.Context) {
	go func() {
		for {
			if ctx.Err() != nil {
				return
			}
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("consume payment event failed", elog.FieldErr(err))
			}
		}
	}()
}

func (c *PaymentConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("get message failed: %w", err)
	}

	var evt PaymentEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("unmarshal message failed: %w", err)
	}

	switch {
	case evt.Type == PaymentTypeDeposit && evt.Status == PaymentStatusPaid:
		err = c.svc.AddFunds(ctx, domain.Funds{
			Uid:    evt.Uid,
			Amount: evt.Amount,
			Key:    fmt.Sprintf("payment:%s", evt.SN),
			Biz:    "deposit",
			Desc:   fmt.Sprintf("deposit %s", evt.SN),
		})
		if errors.Is(err, service.ErrDuplicatedWalletLog) {
			// 重复投递
			c.logger.Warn("deposit already credited", elog.String("sn", evt.SN))
			return nil
		}
	case evt.Type == PaymentTypeWithdrawal && evt.Status == PaymentStatusPaid:
		err = c.svc.ConfirmDeduct(ctx, evt.Uid, evt.LockID, 0)
	case evt.Type == PaymentTypeWithdrawal && evt.Status == PaymentStatusFailed:
		err = c.svc.CancelDeduct(ctx, evt.Uid, evt.LockID)
	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("apply payment event failed: sn %s: %w", evt.SN, err)
	}
	return nil
}

func (c *PaymentConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
