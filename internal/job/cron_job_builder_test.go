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
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubJob struct {
	name string
	err  error
	runs int
}

func (s *stubJob) Name() string {
	return s.name
}

func (s *stubJob) Run(ctx context.Context) error {
	s.runs++
	return s.err
}

func TestCronJobBuilder_Build(t *testing.T) {
	reg := prometheus.NewRegistry()
	b := NewCronJobBuilderWithRegisterer(reg)

	ok := &stubJob{name: "ExpireOffersJob"}
	bad := &stubJob{name: "CloseExpiredDepositsJob", err: errors.New("mock db error")}

	require.NoError(t, b.Build(ok)(context.Background()))
	require.NoError(t, b.Build(ok)(context.Background()))
	assert.Equal(t, bad.err, b.Build(bad)(context.Background()))
	assert.Equal(t, 2, ok.runs)
	assert.Equal(t, 1, bad.runs)

	// 每个 name 和 success 的组合一条序列
	assert.Equal(t, 2, testutil.CollectAndCount(b.vector))

	// 重复注册时复用已有的 collector
	again := NewCronJobBuilderWithRegisterer(reg)
	assert.Same(t, b.vector, again.vector)
}
