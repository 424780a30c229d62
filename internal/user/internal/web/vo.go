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

package web

type Profile struct {
	Id          int64    `json:"id"`
	Email       string   `json:"email,omitempty"`
	Name        string   `json:"name"`
	Avatar      string   `json:"avatar"`
	Role        string   `json:"role"`
	Bio         string   `json:"bio"`
	Timezone    string   `json:"timezone"`
	Languages   []string `json:"languages"`
	Specialties []string `json:"specialties"`
	HourlyRate  int64    `json:"hourlyRate"`
}

type LoginReq struct {
	// Token 身份提供方签发的 access token
	Token string `json:"token"`
}

type OnboardReq struct {
	Role        string   `json:"role"`
	Name        string   `json:"name"`
	Bio         string   `json:"bio"`
	Timezone    string   `json:"timezone"`
	Languages   []string `json:"languages"`
	Specialties []string `json:"specialties"`
	HourlyRate  int64    `json:"hourlyRate"`
}

type EditReq struct {
	Name        string   `json:"name"`
	Avatar      string   `json:"avatar"`
	Bio         string   `json:"bio"`
	Timezone    string   `json:"timezone"`
	Languages   []string `json:"languages"`
	Specialties []string `json:"specialties"`
	HourlyRate  int64    `json:"hourlyRate"`
}

type ListCompanionsReq struct {
	Specialty string `json:"specialty"`
	Language  string `json:"language"`
	Offset    int    `json:"offset"`
	Limit     int    `json:"limit"`
}

type CompanionDetailReq struct {
	Id int64 `json:"id"`
}
