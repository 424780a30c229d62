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

package snowflake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNodeGenerator(t *testing.T) {
	testCases := []struct {
		name        string
		nodeID      int64
		wantErrFunc require.ErrorAssertionFunc
	}{
		{
			name:   "nodeID超出限制",
			nodeID: 1024,
			wantErrFunc: func(t require.TestingT, err error, _ ...interface{}) {
				require.ErrorIs(t, err, ErrExceedNode)
			},
		},
		{
			name:   "nodeID为负数",
			nodeID: -1,
			wantErrFunc: func(t require.TestingT, err error, _ ...interface{}) {
				require.ErrorIs(t, err, ErrExceedNode)
			},
		},
		{
			name:        "生成正常",
			nodeID:      1,
			wantErrFunc: require.NoError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewNodeGenerator(tc.nodeID)
			tc.wantErrFunc(t, err)
		})
	}
}

func TestNodeGenerator_Generate(t *testing.T) {
	gen, err := NewNodeGenerator(3)
	require.NoError(t, err)
	const total = 100000
	seen := make(map[int64]struct{}, total)
	prev := int64(0)
	for i := 0; i < total; i++ {
		id := gen.Generate()
		assert.Greater(t, id, prev)
		prev = id
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, total)
}
