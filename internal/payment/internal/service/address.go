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

package service

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/robertobolla/talkme-sub001/internal/pkg/snowflake"
)

// AddressGenerator 生成模拟的充值收款地址, 不对接真实的链
type AddressGenerator struct {
	idGen snowflake.IDGenerator
}

func NewAddressGenerator(idGen snowflake.IDGenerator) *AddressGenerator {
	return &AddressGenerator{idGen: idGen}
}

// Generate tron 网络是 T 开头的 34 位地址, 其余按 EVM 地址生成
func (g *AddressGenerator) Generate(network string) string {
	sum := sha256.Sum256([]byte(strconv.FormatInt(g.idGen.Generate(), 10)))
	h := hex.EncodeToString(sum[:20])
	if strings.EqualFold(network, "tron") {
		return "T" + h[:33]
	}
	return "0x" + h
}
