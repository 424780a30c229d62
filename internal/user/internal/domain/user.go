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

package domain

type Role uint8

const (
	RoleUnknown Role = iota
	RoleClient
	RoleCompanion
)

func (r Role) ToUint8() uint8 {
	return uint8(r)
}

// String 写进 JWT 的角色名, 未选择角色时为空
func (r Role) String() string {
	switch r {
	case RoleClient:
		return "client"
	case RoleCompanion:
		return "companion"
	default:
		return ""
	}
}

func RoleFromString(s string) Role {
	switch s {
	case "client":
		return RoleClient
	case "companion":
		return RoleCompanion
	default:
		return RoleUnknown
	}
}

type User struct {
	Id         int64
	ExternalID string
	Email      string
	Name       string
	Avatar     string
	Role       Role
	Bio        string
	// Timezone IANA 时区名, 例如 Europe/Madrid
	Timezone    string
	Languages   []string
	Specialties []string
	// HourlyRate 每小时价格, 单位分, 只对陪护者有意义
	HourlyRate int64
	Ctime      int64
	Utime      int64
}

func (u User) IsCompanion() bool {
	return u.Role == RoleCompanion
}

// Identity 外部身份提供方返回的用户信息
type Identity struct {
	ExternalID string
	Email      string
	Name       string
	Avatar     string
}
