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
	snowflakemocks "github.com/robertobolla/talkme-sub001/internal/pkg/snowflake/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserInsertCallBackBuilder_Build(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	idMaker := snowflakemocks.NewMockIDGenerator(ctrl)
	idMaker.EXPECT().Generate().Return(int64(1789))

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := newTestDB(t, mockDB)
	err = db.Callback().Create().Before("gorm:create").
		Register("user_create_id", NewUserInsertCallBackBuilder(idMaker).Build())
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO `users` .*").WillReturnResult(sqlmock.NewResult(1789, 1))
	id, err := NewGORMUserDAO(db).Insert(context.Background(), User{ExternalID: "idp|1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1789), id)
}
