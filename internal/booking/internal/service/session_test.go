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
	"context"
	"errors"
	"testing"
	"time"

	"github.com/robertobolla/talkme-sub001/internal/availability"
	availabilitymocks "github.com/robertobolla/talkme-sub001/internal/availability/mocks"
	"github.com/robertobolla/talkme-sub001/internal/booking/internal/domain"
	"github.com/robertobolla/talkme-sub001/internal/booking/internal/event"
	evtmocks "github.com/robertobolla/talkme-sub001/internal/booking/internal/event/mocks"
	"github.com/robertobolla/talkme-sub001/internal/booking/internal/repository"
	repomocks "github.com/robertobolla/talkme-sub001/internal/booking/internal/repository/mocks"
	"github.com/robertobolla/talkme-sub001/internal/pkg/sequencenumber"
	"github.com/robertobolla/talkme-sub001/internal/user"
	usermocks "github.com/robertobolla/talkme-sub001/internal/user/mocks"
	"github.com/robertobolla/talkme-sub001/internal/wallet"
	walletmocks "github.com/robertobolla/talkme-sub001/internal/wallet/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	clientID    = int64(10)
	companionID = int64(20)
)

var (
	testNow       = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	errMockWallet = errors.New("mock wallet error")
)

type testDeps struct {
	repo     *repomocks.MockSessionRepository
	avail    *availabilitymocks.MockService
	users    *usermocks.MockUserService
	wallet   *walletmocks.MockService
	producer *evtmocks.MockBookingEventProducer
}

func newTestService(ctrl *gomock.Controller) (*service, testDeps) {
	deps := testDeps{
		repo:     repomocks.NewMockSessionRepository(ctrl),
		avail:    availabilitymocks.NewMockService(ctrl),
		users:    usermocks.NewMockUserService(ctrl),
		wallet:   walletmocks.NewMockService(ctrl),
		producer: evtmocks.NewMockBookingEventProducer(ctrl),
	}
	snGen := sequencenumber.NewGeneratorWith(func(t time.Time) int64 {
		return 1772438400000
	}, func() string {
		return "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	})
	svc := NewService(deps.repo, deps.avail, deps.users, deps.wallet, deps.producer,
		NewJWTRoomProvider("https://meet.talkme.test", "secret"), snGen).(*service)
	svc.now = func() time.Time { return testNow }
	return svc, deps
}

func companion() user.User {
	return user.User{Id: companionID, Role: user.RoleCompanion, Timezone: "Europe/Madrid", HourlyRate: 3000}
}

func confirmedSession() domain.Session {
	return domain.Session{
		ID:          1,
		SN:          "SS1",
		ClientID:    clientID,
		CompanionID: companionID,
		StartAt:     testNow.Add(2 * time.Hour).UnixMilli(),
		EndAt:       testNow.Add(3 * time.Hour).UnixMilli(),
		Price:       3000,
		LockID:      77,
		Status:      domain.SessionStatusConfirmed,
	}
}

func TestService_Book(t *testing.T) {
	start := time.UnixMilli(testNow.Add(24 * time.Hour).UnixMilli())
	testCases := []struct {
		name     string
		startAt  int64
		duration int
		before   func(deps testDeps)
		wantErr  error
	}{
		{
			name:     "预约成功",
			startAt:  start.UnixMilli(),
			duration: 90,
			before: func(deps testDeps) {
				deps.users.EXPECT().CompanionDetail(gomock.Any(), companionID).Return(companion(), nil)
				deps.avail.EXPECT().Covers(gomock.Any(), companionID, "Europe/Madrid", start, start.Add(90*time.Minute)).Return(true, nil)
				deps.wallet.EXPECT().TryDeduct(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, f wallet.Funds) (int64, error) {
					assert.Equal(t, clientID, f.Uid)
					assert.Equal(t, int64(4500), f.Amount)
					assert.Equal(t, "booking:SS1772438400000", f.Key[:len("booking:SS1772438400000")])
					return 77, nil
				})
				deps.repo.EXPECT().CreateExclusive(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, s domain.Session) (int64, error) {
					assert.Equal(t, domain.SessionStatusPending, s.Status)
					assert.Equal(t, int64(77), s.LockID)
					assert.Equal(t, start.Add(90*time.Minute).UnixMilli(), s.EndAt)
					assert.Contains(t, s.RoomName, "talkme-ss1772438400000")
					return 1, nil
				})
				deps.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, evt event.BookingEvent) error {
					assert.Equal(t, event.ActionBooked, evt.Action)
					return nil
				})
				deps.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Session{ID: 1, Status: domain.SessionStatusPending}, nil)
			},
		},
		{
			name:     "时间冲突释放预扣",
			startAt:  start.UnixMilli(),
			duration: 60,
			before: func(deps testDeps) {
				deps.users.EXPECT().CompanionDetail(gomock.Any(), companionID).Return(companion(), nil)
				deps.avail.EXPECT().Covers(gomock.Any(), companionID, "Europe/Madrid", gomock.Any(), gomock.Any()).Return(true, nil)
				deps.wallet.EXPECT().TryDeduct(gomock.Any(), gomock.Any()).Return(int64(77), nil)
				deps.repo.EXPECT().CreateExclusive(gomock.Any(), gomock.Any()).Return(int64(0), repository.ErrSlotConflict)
				deps.wallet.EXPECT().CancelDeduct(gomock.Any(), clientID, int64(77)).Return(nil)
			},
			wantErr: ErrSlotConflict,
		},
		{
			name:     "不在可预约时间内",
			startAt:  start.UnixMilli(),
			duration: 60,
			before: func(deps testDeps) {
				deps.users.EXPECT().CompanionDetail(gomock.Any(), companionID).Return(companion(), nil)
				deps.avail.EXPECT().Covers(gomock.Any(), companionID, "Europe/Madrid", gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: ErrOutsideAvailability,
		},
		{
			name:     "余额不足",
			startAt:  start.UnixMilli(),
			duration: 60,
			before: func(deps testDeps) {
				deps.users.EXPECT().CompanionDetail(gomock.Any(), companionID).Return(companion(), nil)
				deps.avail.EXPECT().Covers(gomock.Any(), companionID, "Europe/Madrid", gomock.Any(), gomock.Any()).Return(true, nil)
				deps.wallet.EXPECT().TryDeduct(gomock.Any(), gomock.Any()).Return(int64(0), wallet.ErrInsufficientFunds)
			},
			wantErr: ErrInsufficientFunds,
		},
		{
			name:     "陪护者不存在",
			startAt:  start.UnixMilli(),
			duration: 60,
			before: func(deps testDeps) {
				deps.users.EXPECT().CompanionDetail(gomock.Any(), companionID).Return(user.User{}, user.ErrCompanionNotFound)
			},
			wantErr: ErrCompanionNotFound,
		},
		{
			name:     "时长超过上限",
			startAt:  start.UnixMilli(),
			duration: 300,
			before:   func(deps testDeps) {},
			wantErr:  ErrInvalidBooking,
		},
		{
			name:     "开始时间已过",
			startAt:  testNow.Add(-time.Hour).UnixMilli(),
			duration: 60,
			before:   func(deps testDeps) {},
			wantErr:  ErrInvalidBooking,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, deps := newTestService(ctrl)
			tc.before(deps)
			_, err := svc.Book(context.Background(), clientID, companionID, tc.startAt, tc.duration, "")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_Slots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, deps := newTestService(ctrl)
	from := testNow
	to := from.Add(7 * 24 * time.Hour)
	busy := confirmedSession()
	deps.users.EXPECT().CompanionDetail(gomock.Any(), companionID).Return(companion(), nil)
	deps.repo.EXPECT().FindBusy(gomock.Any(), companionID, from.UnixMilli(), to.UnixMilli()).Return([]domain.Session{busy}, nil)
	want := []availability.Window{{Start: testNow.Add(4 * time.Hour), End: testNow.Add(5 * time.Hour)}}
	deps.avail.EXPECT().Windows(gomock.Any(), companionID, "Europe/Madrid", from, to, time.Hour,
		[]availability.Window{{Start: busy.StartTime(), End: busy.EndTime()}}).Return(want, nil)
	got, err := svc.Slots(context.Background(), companionID, from, 7, 60)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.Slots(context.Background(), companionID, from, 40, 60)
	assert.ErrorIs(t, err, ErrInvalidBooking)
}

func TestService_ConfirmAndReject(t *testing.T) {
	pending := confirmedSession()
	pending.Status = domain.SessionStatusPending

	t.Run("陪护者确认", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		deps.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(pending, nil)
		deps.repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), []domain.SessionStatus{domain.SessionStatusPending}, domain.SessionStatusConfirmed).Return(nil)
		deps.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
		require.NoError(t, svc.Confirm(context.Background(), companionID, 1))
	})

	t.Run("开始之后不能确认", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		svc.now = func() time.Time { return testNow.Add(2 * time.Hour) }
		deps.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(pending, nil)
		assert.ErrorIs(t, svc.Confirm(context.Background(), companionID, 1), ErrTooLate)
	})

	t.Run("客户不能确认", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		deps.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(pending, nil)
		assert.ErrorIs(t, svc.Confirm(context.Background(), clientID, 1), ErrPermissionDenied)
	})

	t.Run("拒绝并释放预扣", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		deps.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(pending, nil)
		gomock.InOrder(
			deps.wallet.EXPECT().CancelDeduct(gomock.Any(), clientID, int64(77)).Return(nil),
			deps.repo.EXPECT().Reject(gomock.Any(), int64(1), "没空").Return(nil),
			deps.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, evt event.BookingEvent) error {
				assert.Equal(t, event.ActionRejected, evt.Action)
				assert.Equal(t, "没空", evt.Reason)
				return nil
			}),
		)
		require.NoError(t, svc.Reject(context.Background(), companionID, 1, "没空"))
	})

	t.Run("释放失败不拒绝", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		deps.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(pending, nil)
		deps.wallet.EXPECT().CancelDeduct(gomock.Any(), clientID, int64(77)).Return(errMockWallet)
		assert.ErrorIs(t, svc.Reject(context.Background(), companionID, 1, "没空"), errMockWallet)
	})

	t.Run("已经确认的不能拒绝", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		deps.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(confirmedSession(), nil)
		assert.ErrorIs(t, svc.Reject(context.Background(), companionID, 1, ""), ErrInvalidTransition)
	})
}

func TestService_Cancel(t *testing.T) {
	testCases := []struct {
		name    string
		uid     int64
		sess    domain.Session
		before  func(deps testDeps)
		wantErr error
	}{
		{
			name: "客户取消",
			uid:  clientID,
			sess: confirmedSession(),
			before: func(deps testDeps) {
				gomock.InOrder(
					deps.wallet.EXPECT().CancelDeduct(gomock.Any(), clientID, int64(77)).Return(nil),
					deps.repo.EXPECT().UpdateStatus(gomock.Any(), int64(1),
						[]domain.SessionStatus{domain.SessionStatusPending, domain.SessionStatusConfirmed},
						domain.SessionStatusCancelled).Return(nil),
					deps.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil),
				)
			},
		},
		{
			name: "释放失败不改状态",
			uid:  companionID,
			sess: confirmedSession(),
			before: func(deps testDeps) {
				deps.wallet.EXPECT().CancelDeduct(gomock.Any(), clientID, int64(77)).Return(errMockWallet)
			},
			wantErr: errMockWallet,
		},
		{
			name: "已经取消",
			uid:  clientID,
			sess: func() domain.Session {
				s := confirmedSession()
				s.Status = domain.SessionStatusCancelled
				return s
			}(),
			before:  func(deps testDeps) {},
			wantErr: ErrInvalidTransition,
		},
		{
			name: "已经开始",
			uid:  clientID,
			sess: func() domain.Session {
				s := confirmedSession()
				s.StartAt = testNow.Add(-time.Minute).UnixMilli()
				return s
			}(),
			before:  func(deps testDeps) {},
			wantErr: ErrTooLate,
		},
		{
			name:    "不是参与者",
			uid:     99,
			sess:    confirmedSession(),
			before:  func(deps testDeps) {},
			wantErr: ErrPermissionDenied,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, deps := newTestService(ctrl)
			deps.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(tc.sess, nil)
			tc.before(deps)
			err := svc.Cancel(context.Background(), tc.uid, 1)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_Complete(t *testing.T) {
	t.Run("还没开始", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		deps.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(confirmedSession(), nil)
		assert.ErrorIs(t, svc.Complete(context.Background(), clientID, 1), ErrTooEarly)
	})

	t.Run("完成并付款", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		svc.now = func() time.Time { return testNow.Add(150 * time.Minute) }
		deps.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(confirmedSession(), nil)
		gomock.InOrder(
			deps.wallet.EXPECT().ConfirmDeduct(gomock.Any(), clientID, int64(77), companionID).Return(nil),
			deps.repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), []domain.SessionStatus{domain.SessionStatusConfirmed}, domain.SessionStatusCompleted).Return(nil),
			deps.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, evt event.BookingEvent) error {
				assert.Equal(t, event.ActionCompleted, evt.Action)
				return nil
			}),
		)
		require.NoError(t, svc.Complete(context.Background(), companionID, 1))
	})

	t.Run("付款失败会话保持已确认", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		svc.now = func() time.Time { return testNow.Add(150 * time.Minute) }
		deps.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(confirmedSession(), nil)
		deps.wallet.EXPECT().ConfirmDeduct(gomock.Any(), clientID, int64(77), companionID).Return(wallet.ErrRecordChangedConcurrently)
		err := svc.Complete(context.Background(), companionID, 1)
		assert.ErrorIs(t, err, wallet.ErrRecordChangedConcurrently)
	})

	t.Run("已经完成", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		svc.now = func() time.Time { return testNow.Add(150 * time.Minute) }
		sess := confirmedSession()
		sess.Status = domain.SessionStatusCompleted
		deps.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(sess, nil)
		assert.ErrorIs(t, svc.Complete(context.Background(), companionID, 1), ErrInvalidTransition)
	})
}

func TestService_JoinRoom(t *testing.T) {
	testCases := []struct {
		name    string
		now     time.Time
		sess    func() domain.Session
		wantErr error
	}{
		{
			name: "开始前十分钟可以进入",
			now:  testNow.Add(110 * time.Minute),
			sess: confirmedSession,
		},
		{
			name:    "太早",
			now:     testNow.Add(100 * time.Minute),
			sess:    confirmedSession,
			wantErr: ErrRoomUnavailable,
		},
		{
			name:    "已经结束",
			now:     testNow.Add(3 * time.Hour),
			sess:    confirmedSession,
			wantErr: ErrRoomUnavailable,
		},
		{
			name: "未确认",
			now:  testNow.Add(2 * time.Hour),
			sess: func() domain.Session {
				s := confirmedSession()
				s.Status = domain.SessionStatusPending
				return s
			},
			wantErr: ErrRoomUnavailable,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, deps := newTestService(ctrl)
			svc.now = func() time.Time { return tc.now }
			deps.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(tc.sess(), nil)
			room, err := svc.JoinRoom(context.Background(), clientID, 1)
			assert.ErrorIs(t, err, tc.wantErr)
			if err == nil {
				assert.Equal(t, "talkme-ss1", room.Name)
				assert.NotEmpty(t, room.Token)
				assert.Equal(t, confirmedSession().EndAt, room.ExpiresAt)
			}
		})
	}
}

func TestService_HandleOfferEvent(t *testing.T) {
	start := testNow.Add(24 * time.Hour)
	linked := confirmedSession()
	linked.OfferID = 5
	testCases := []struct {
		name    string
		now     time.Time
		evt     event.OfferEvent
		before  func(deps testDeps)
		wantErr error
	}{
		{
			name: "接单后创建已确认的会话",
			evt: event.OfferEvent{
				Action: event.OfferActionAccepted, OfferID: 5, ClientID: clientID, CompanionID: companionID,
				StartAt: start.UnixMilli(), DurationMinutes: 60, Budget: 3000, LockID: 88,
			},
			before: func(deps testDeps) {
				deps.repo.EXPECT().FindByOfferID(gomock.Any(), int64(5)).Return(domain.Session{}, repository.ErrRecordNotFound)
				deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, s domain.Session) (int64, error) {
					assert.Equal(t, domain.SessionStatusConfirmed, s.Status)
					assert.Equal(t, int64(88), s.LockID)
					assert.Equal(t, int64(3000), s.Price)
					assert.Equal(t, start.Add(time.Hour).UnixMilli(), s.EndAt)
					return 2, nil
				})
				deps.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "重复的接单事件",
			evt:  event.OfferEvent{Action: event.OfferActionAccepted, OfferID: 5},
			before: func(deps testDeps) {
				deps.repo.EXPECT().FindByOfferID(gomock.Any(), int64(5)).Return(linked, nil)
			},
		},
		{
			name: "需求取消",
			evt:  event.OfferEvent{Action: event.OfferActionCancelled, OfferID: 5},
			before: func(deps testDeps) {
				deps.repo.EXPECT().FindByOfferID(gomock.Any(), int64(5)).Return(linked, nil)
				deps.repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), gomock.Any(), domain.SessionStatusCancelled).Return(nil)
				deps.wallet.EXPECT().CancelDeduct(gomock.Any(), clientID, int64(77)).Return(nil)
				deps.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "会话开始后才取消需求",
			now:  testNow.Add(150 * time.Minute),
			evt:  event.OfferEvent{Action: event.OfferActionCancelled, OfferID: 5},
			before: func(deps testDeps) {
				deps.repo.EXPECT().FindByOfferID(gomock.Any(), int64(5)).Return(linked, nil)
			},
		},
		{
			name: "开始前取消的事件延迟送达",
			now:  testNow.Add(150 * time.Minute),
			evt:  event.OfferEvent{Action: event.OfferActionCancelled, OfferID: 5, OccurredAt: testNow.UnixMilli()},
			before: func(deps testDeps) {
				deps.repo.EXPECT().FindByOfferID(gomock.Any(), int64(5)).Return(linked, nil)
				deps.wallet.EXPECT().CancelDeduct(gomock.Any(), clientID, int64(77)).Return(nil)
				deps.repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), gomock.Any(), domain.SessionStatusCancelled).Return(nil)
				deps.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "会话已经取消",
			evt:  event.OfferEvent{Action: event.OfferActionCancelled, OfferID: 5},
			before: func(deps testDeps) {
				s := linked
				s.Status = domain.SessionStatusCancelled
				deps.repo.EXPECT().FindByOfferID(gomock.Any(), int64(5)).Return(s, nil)
			},
		},
		{
			name: "需求完成时付款",
			evt:  event.OfferEvent{Action: event.OfferActionCompleted, OfferID: 5},
			before: func(deps testDeps) {
				deps.repo.EXPECT().FindByOfferID(gomock.Any(), int64(5)).Return(linked, nil)
				deps.repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), gomock.Any(), domain.SessionStatusCompleted).Return(nil)
				deps.wallet.EXPECT().ConfirmDeduct(gomock.Any(), clientID, int64(77), companionID).Return(nil)
				deps.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "需求完成但付款失败",
			evt:  event.OfferEvent{Action: event.OfferActionCompleted, OfferID: 5},
			before: func(deps testDeps) {
				deps.repo.EXPECT().FindByOfferID(gomock.Any(), int64(5)).Return(linked, nil)
				deps.wallet.EXPECT().ConfirmDeduct(gomock.Any(), clientID, int64(77), companionID).Return(errMockWallet)
			},
			wantErr: errMockWallet,
		},
		{
			name: "没有关联会话",
			evt:  event.OfferEvent{Action: event.OfferActionCompleted, OfferID: 6},
			before: func(deps testDeps) {
				deps.repo.EXPECT().FindByOfferID(gomock.Any(), int64(6)).Return(domain.Session{}, repository.ErrRecordNotFound)
			},
		},
		{
			name:   "其他动作忽略",
			evt:    event.OfferEvent{Action: "applied", OfferID: 5},
			before: func(deps testDeps) {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, deps := newTestService(ctrl)
			if !tc.now.IsZero() {
				svc.now = func() time.Time { return tc.now }
			}
			tc.before(deps)
			err := svc.HandleOfferEvent(context.Background(), tc.evt)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_Jobs(t *testing.T) {
	pending := confirmedSession()
	pending.Status = domain.SessionStatusPending

	t.Run("过期", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		other := pending
		other.ID = 2
		other.LockID = 78
		deps.repo.EXPECT().FindPendingStarted(gomock.Any(), testNow.UnixMilli(), 10).Return([]domain.Session{pending, other}, nil)
		deps.wallet.EXPECT().CancelDeduct(gomock.Any(), clientID, int64(77)).Return(nil)
		deps.repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), []domain.SessionStatus{domain.SessionStatusPending}, domain.SessionStatusExpired).Return(nil)
		deps.wallet.EXPECT().CancelDeduct(gomock.Any(), clientID, int64(78)).Return(nil)
		deps.repo.EXPECT().UpdateStatus(gomock.Any(), int64(2), []domain.SessionStatus{domain.SessionStatusPending}, domain.SessionStatusExpired).Return(repository.ErrInvalidTransition)
		deps.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
		cnt, err := svc.ExpirePending(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, 1, cnt)
	})

	t.Run("过期时释放失败不改状态", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		deps.repo.EXPECT().FindPendingStarted(gomock.Any(), testNow.UnixMilli(), 10).Return([]domain.Session{pending}, nil)
		deps.wallet.EXPECT().CancelDeduct(gomock.Any(), clientID, int64(77)).Return(errMockWallet)
		cnt, err := svc.ExpirePending(context.Background(), 10)
		assert.ErrorIs(t, err, errMockWallet)
		assert.Equal(t, 0, cnt)
	})

	t.Run("自动完成", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		before := testNow.Add(-15 * time.Minute)
		deps.repo.EXPECT().FindConfirmedEnded(gomock.Any(), before.UnixMilli(), 10).Return([]domain.Session{confirmedSession()}, nil)
		gomock.InOrder(
			deps.wallet.EXPECT().ConfirmDeduct(gomock.Any(), clientID, int64(77), companionID).Return(nil),
			deps.repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), []domain.SessionStatus{domain.SessionStatusConfirmed}, domain.SessionStatusCompleted).Return(nil),
		)
		deps.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
		cnt, err := svc.CompleteFinished(context.Background(), before, 10)
		require.NoError(t, err)
		assert.Equal(t, 1, cnt)
	})

	t.Run("付款失败的会话留给下一轮", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		before := testNow.Add(-15 * time.Minute)
		failing := confirmedSession()
		paid := confirmedSession()
		paid.ID, paid.LockID = 2, 78
		deps.repo.EXPECT().FindConfirmedEnded(gomock.Any(), before.UnixMilli(), 10).Return([]domain.Session{failing, paid}, nil)
		deps.wallet.EXPECT().ConfirmDeduct(gomock.Any(), clientID, int64(77), companionID).Return(errMockWallet)
		deps.wallet.EXPECT().ConfirmDeduct(gomock.Any(), clientID, int64(78), companionID).Return(nil)
		deps.repo.EXPECT().UpdateStatus(gomock.Any(), int64(2), []domain.SessionStatus{domain.SessionStatusConfirmed}, domain.SessionStatusCompleted).Return(nil)
		deps.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
		cnt, err := svc.CompleteFinished(context.Background(), before, 10)
		assert.ErrorIs(t, err, errMockWallet)
		assert.Equal(t, 1, cnt)
	})
}
