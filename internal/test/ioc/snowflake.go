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

package testioc

import (
	"sync"

	"github.com/robertobolla/talkme-sub001/internal/pkg/snowflake"
)

var (
	idGen     snowflake.IDGenerator
	idGenOnce sync.Once
)

func InitIDGenerator() snowflake.IDGenerator {
	idGenOnce.Do(func() {
		g, err := snowflake.NewNodeGenerator(1)
		if err != nil {
			panic(err)
		}
		idGen = g
	})
	return idGen
}
