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

package dao

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGORMSlotDAO_ReplaceWeekly(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		slots   []Slot
		wantErr error
	}{
		{
			name: "替换",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM `availability_slots` WHERE companion_id = ?").
					WithArgs(int64(7)).
					WillReturnResult(sqlmock.NewResult(0, 3))
				mock.ExpectExec("INSERT INTO `availability_slots` .*").
					WillReturnResult(sqlmock.NewResult(10, 2))
				mock.ExpectCommit()
				return mockDB
			},
			slots: []Slot{
				{Weekday: 1, StartMinute: 540, EndMinute: 600},
				{Weekday: 2, StartMinute: 540, EndMinute: 600},
			},
		},
		{
			name: "清空",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM `availability_slots` WHERE companion_id = ?").
					WillReturnResult(sqlmock.NewResult(0, 3))
				mock.ExpectCommit()
				return mockDB
			},
		},
		{
			name: "插入失败回滚",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM `availability_slots` WHERE companion_id = ?").
					WillReturnResult(sqlmock.NewResult(0, 3))
				mock.ExpectExec("INSERT INTO `availability_slots` .*").
					WillReturnError(errors.New("mock db error"))
				mock.ExpectRollback()
				return mockDB
			},
			slots:   []Slot{{Weekday: 1, StartMinute: 540, EndMinute: 600}},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, err := gorm.Open(gormMysql.New(gormMysql.Config{
				Conn:                      tc.mock(t),
				SkipInitializeWithVersion: true,
			}), &gorm.Config{
				DisableAutomaticPing:   true,
				SkipDefaultTransaction: true,
			})
			require.NoError(t, err)
			err = NewGORMSlotDAO(db).ReplaceWeekly(context.Background(), 7, tc.slots)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}
