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
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestNotificationGORMDAO_Insert(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr error
	}{
		{
			name: "插入成功",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO `notifications`").
					WillReturnResult(sqlmock.NewResult(5, 1))
			},
			wantID: 5,
		},
		{
			name: "key重复",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO `notifications`").
					WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
			},
			wantErr: ErrDuplicatedKey,
		},
		{
			name: "其他错误",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO `notifications`").
					WillReturnError(errors.New("mock db error"))
			},
			wantErr: errors.New("mock db error"),
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
			id, err := NewNotificationGORMDAO(db).Insert(context.Background(), Notification{
				Key: "offer:1:applied:2",
				Uid: 2,
			})
			if tc.wantErr != nil {
				assert.ErrorContains(t, err, tc.wantErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.wantID, id)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
