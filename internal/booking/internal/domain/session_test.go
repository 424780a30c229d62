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

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	assert.Equal(t, int64(3000), Price(3000, 60))
	assert.Equal(t, int64(750), Price(3000, 15))
	assert.Equal(t, int64(4500), Price(3000, 90))
	assert.Equal(t, int64(16), Price(33, 30))
}

func TestSession(t *testing.T) {
	s := Session{
		ClientID:    1,
		CompanionID: 2,
		StartAt:     time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC).UnixMilli(),
		EndAt:       time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC).UnixMilli(),
		Status:      SessionStatusConfirmed,
	}
	assert.True(t, s.IsParticipant(1))
	assert.True(t, s.IsParticipant(2))
	assert.False(t, s.IsParticipant(3))
	assert.False(t, s.IsParticipant(0))
	assert.True(t, s.Active())
	assert.Equal(t, time.Hour, s.EndTime().Sub(s.StartTime()))

	s.Status = SessionStatusCancelled
	assert.False(t, s.Active())
	assert.Equal(t, SessionStatusExpired, SessionStatusFromString("expired"))
	assert.Equal(t, SessionStatusUnknown, SessionStatusFromString("bogus"))
}
