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

package ioc

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/kafka"
	"github.com/gotomicro/ego/core/econf"
	"github.com/robertobolla/talkme-sub001/internal/pkg/mqx"
)

type topicConfig struct {
	Name       string `yaml:"name"`
	Partitions int    `yaml:"partitions"`
}

func InitMQ() mq.MQ {
	type Config struct {
		Network   string        `yaml:"network"`
		Addresses []string      `yaml:"addresses"`
		Topics    []topicConfig `yaml:"topics"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("kafka", &cfg); err != nil {
		panic(err)
	}
	q, err := kafka.NewMQ(cfg.Network, cfg.Addresses)
	if err != nil {
		panic(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err = createTopics(ctx, q, cfg.Topics); err != nil {
		panic(err)
	}
	return mqx.NewTraceMq(q)
}

// createTopics 需求, 会话, 支付三类事件各占一个 topic
func createTopics(ctx context.Context, q mq.MQ, topics []topicConfig) error {
	for _, t := range topics {
		if t.Partitions <= 0 {
			t.Partitions = 1
		}
		if err := q.CreateTopic(ctx, t.Name, t.Partitions); err != nil {
			return fmt.Errorf("create topic %s with %d partitions failed: %w", t.Name, t.Partitions, err)
		}
	}
	return nil
}
