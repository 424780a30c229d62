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
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestPaymentGORMDAO_UpdateStatus(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "更新成功",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE `payments` SET .* WHERE sn = \\? AND status = \\?").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "已经不是处理中",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE `payments` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrInvalidTransition,
		},
		{
			name: "交易哈希重复",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE `payments` SET .*").
					WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
			},
			wantErr: ErrDuplicatedTxHash,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			tc.mock(mock)
			db, err := gorm.Open(gormMysql.New(gormMysql.Config{
				Conn:                      mockDB,
				SkipInitializeWithVersion: true,
			}), &gorm.Config{
				DisableAutomaticPing:   true,
				SkipDefaultTransaction: true,
			})
			require.NoError(t, err)
			err = NewPaymentGORMDAO(db).UpdateStatus(context.Background(), "DP1", 2, "0xtx", 1000)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
