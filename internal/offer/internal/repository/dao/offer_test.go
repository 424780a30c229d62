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
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newTestDAO(t *testing.T, mockDB *sql.DB) OfferDAO {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return NewGORMOfferDAO(db)
}

func TestGORMOfferDAO_Accept(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantErr error
	}{
		{
			name: "接单并拒绝其他申请",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `offers` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `offer_applicants` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `offer_applicants` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectCommit()
				return mockDB
			},
		},
		{
			name: "需求已经被接单",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `offers` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: ErrInvalidTransition,
		},
		{
			name: "申请已经撤回",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `offers` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `offer_applicants` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: ErrInvalidTransition,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDAO(t, tc.mock(t))
			err := d.Accept(context.Background(), 1, 5, 20, 77)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestGORMOfferDAO_CreateApplicant(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantID  int64
		wantErr error
	}{
		{
			name: "申请成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `offer_applicants` .*").
					WillReturnResult(sqlmock.NewResult(5, 1))
				return mockDB
			},
			wantID: 5,
		},
		{
			name: "重复申请",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `offer_applicants` .*").
					WillReturnError(&mysql.MySQLError{Number: 1062})
				return mockDB
			},
			wantErr: ErrAlreadyApplied,
		},
		{
			name: "其他错误",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `offer_applicants` .*").
					WillReturnError(errors.New("mock db error"))
				return mockDB
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDAO(t, tc.mock(t))
			id, err := d.CreateApplicant(context.Background(), Applicant{OfferID: 1, CompanionID: 20, Status: 1})
			if tc.wantErr != nil {
				assert.ErrorContains(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestGORMOfferDAO_UpdateStatus(t *testing.T) {
	t.Run("状态已变化", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		mock.ExpectExec("UPDATE `offers` SET .*").
			WillReturnResult(sqlmock.NewResult(0, 0))
		err = newTestDAO(t, mockDB).UpdateStatus(context.Background(), 1, 2, 4)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("关闭并拒绝待处理申请", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `offers` SET .*").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE `offer_applicants` SET .*").
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectCommit()
		err = newTestDAO(t, mockDB).Close(context.Background(), 1, 1, 5)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
