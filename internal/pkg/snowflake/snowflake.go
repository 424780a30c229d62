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
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// +--------------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp | 10 Bit NodeID | 12 Bit Sequence |
// +--------------------------------------------------------------------+

const maxNode int64 = 1<<10 - 1

var ErrExceedNode = errors.New("snowflake node id out of range")

//go:generate mockgen -source=./snowflake.go -destination=./mocks/snowflake.mock.go -package=snowflakemocks IDGenerator
type IDGenerator interface {
	Generate() int64
}

type NodeGenerator struct {
	node *snowflake.Node
}

// NewNodeGenerator 每个实例需要不同的 nodeID
func NewNodeGenerator(nodeID int64) (*NodeGenerator, error) {
	if nodeID < 0 || nodeID > maxNode {
		return nil, fmt.Errorf("%w: %d", ErrExceedNode, nodeID)
	}
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}
	return &NodeGenerator{node: n}, nil
}

func (g *NodeGenerator) Generate() int64 {
	return g.node.Generate().Int64()
}
