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

func newTestDAO(t *testing.T, mockDB *sql.DB) SessionDAO {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return NewGORMSessionDAO(db)
}

func TestGORMSessionDAO_InsertExclusive(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantID  int64
		wantErr error
	}{
		{
			name: "没有冲突",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT `id` FROM `booking_sessions` WHERE .* FOR UPDATE").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectExec("INSERT INTO `booking_sessions` .*").
					WillReturnResult(sqlmock.NewResult(12, 1))
				mock.ExpectCommit()
				return mockDB
			},
			wantID: 12,
		},
		{
			name: "时间冲突",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT `id` FROM `booking_sessions` WHERE .* FOR UPDATE").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: ErrSlotConflict,
		},
		{
			name: "查询出错",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT `id` FROM `booking_sessions` WHERE .* FOR UPDATE").
					WillReturnError(errors.New("mock db error"))
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDAO(t, tc.mock(t))
			id, err := d.InsertExclusive(context.Background(), Session{
				SN:          "SS1",
				ClientID:    10,
				CompanionID: 20,
				StartAt:     1000,
				EndAt:       2000,
				Price:       3000,
				Status:      statusPending,
			})
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestGORMSessionDAO_UpdateStatus(t *testing.T) {
	testCases := []struct {
		name    string
		rows    int64
		wantErr error
	}{
		{name: "更新成功", rows: 1},
		{name: "状态已经变化", rows: 0, wantErr: ErrInvalidTransition},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			mock.ExpectExec("UPDATE `booking_sessions` SET .*").
				WillReturnResult(sqlmock.NewResult(0, tc.rows))
			d := newTestDAO(t, mockDB)
			err = d.UpdateStatus(context.Background(), 1, []uint8{statusPending}, 3, "没空")
			assert.ErrorIs(t, err, tc.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
