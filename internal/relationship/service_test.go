package relationship

import (
	"context"
	"testing"

	"friendgraph/internal/common"
	"friendgraph/internal/dbmysql"
	"friendgraph/internal/events"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// newTestDB returns a gorm DB backed by sqlmock, used wherever the service
// opens transactions or the repositories hit SQL directly.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	t.Cleanup(func() { sqlDB.Close() })
	return db, mock
}

type serviceFixture struct {
	svc         Service
	requests    *MockFriendRequestRepository
	friendships *MockFriendshipRepository
	notifier    *MockNotifier
	publisher   *MockEventPublisher
	sqlmock     sqlmock.Sqlmock
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	db, mock := newTestDB(t)
	requests := NewMockFriendRequestRepository(ctrl)
	friendships := NewMockFriendshipRepository(ctrl)
	notifier := NewMockNotifier(ctrl)
	publisher := NewMockEventPublisher(ctrl)

	requests.EXPECT().WithTx(gomock.Any()).Return(requests).AnyTimes()
	friendships.EXPECT().WithTx(gomock.Any()).Return(friendships).AnyTimes()

	return &serviceFixture{
		svc:         NewService(db, requests, friendships, notifier, publisher, zap.NewNop()),
		requests:    requests,
		friendships: friendships,
		notifier:    notifier,
		publisher:   publisher,
		sqlmock:     mock,
	}
}

func notFound(msg string) error { return common.NotFoundf("%s", msg) }

func TestSendValidation(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	_, err := fx.svc.Send(ctx, "", "u2")
	assert.True(t, common.IsValidation(err))

	_, err = fx.svc.Send(ctx, "u1", "")
	assert.True(t, common.IsValidation(err))

	_, err = fx.svc.Send(ctx, "u1", "u1")
	assert.True(t, common.IsValidation(err))
}

func TestSendAlreadyFriends(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	fx.sqlmock.ExpectBegin()
	fx.friendships.EXPECT().Exists(gomock.Any(), "u1", "u2").Return(true, nil)
	fx.sqlmock.ExpectRollback()

	_, err := fx.svc.Send(ctx, "u1", "u2")
	assert.True(t, common.IsConflict(err))
	assert.NoError(t, fx.sqlmock.ExpectationsWereMet())
}

func TestSendDuplicatePending(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	fx.sqlmock.ExpectBegin()
	fx.friendships.EXPECT().Exists(gomock.Any(), "u1", "u2").Return(false, nil)
	fx.requests.EXPECT().PendingByPair(gomock.Any(), "u2", "u1").Return(nil, notFound("no pending"))
	fx.requests.EXPECT().PendingByPair(gomock.Any(), "u1", "u2").
		Return(&dbmysql.FriendRequest{ID: "req-1", SenderID: "u1", ReceiverID: "u2", Status: dbmysql.RequestStatusPending}, nil)
	fx.sqlmock.ExpectRollback()

	_, err := fx.svc.Send(ctx, "u1", "u2")
	assert.True(t, common.IsConflict(err))
}

func TestSendCreatesPendingRequest(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	fx.sqlmock.ExpectBegin()
	fx.friendships.EXPECT().Exists(gomock.Any(), "u1", "u2").Return(false, nil)
	fx.requests.EXPECT().PendingByPair(gomock.Any(), "u2", "u1").Return(nil, notFound("no pending"))
	fx.requests.EXPECT().PendingByPair(gomock.Any(), "u1", "u2").Return(nil, notFound("no pending"))
	fx.requests.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	fx.sqlmock.ExpectCommit()

	fx.publisher.EXPECT().Publish(gomock.Any(), "u1", "u2").Do(func(ev events.Event, _ ...string) {
		assert.Equal(t, events.TableRequests, ev.Table)
		assert.Equal(t, events.OpInsert, ev.Op)
	})

	req, err := fx.svc.Send(ctx, "u1", "u2")
	require.NoError(t, err)
	assert.Equal(t, "u1", req.SenderID)
	assert.Equal(t, "u2", req.ReceiverID)
	assert.Equal(t, dbmysql.RequestStatusPending, req.Status)
	require.NotNil(t, req.PendingPair)
	assert.Equal(t, "u1:u2", *req.PendingPair)
	assert.NotEmpty(t, req.ID)
}

func TestSendCollapsesMutualRequests(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	pair := dbmysql.PendingPairKey("u2", "u1")
	reverse := &dbmysql.FriendRequest{
		ID: "req-rev", SenderID: "u2", ReceiverID: "u1",
		Status: dbmysql.RequestStatusPending, PendingPair: &pair,
	}

	fx.sqlmock.ExpectBegin()
	fx.friendships.EXPECT().Exists(gomock.Any(), "u1", "u2").Return(false, nil)
	fx.requests.EXPECT().PendingByPair(gomock.Any(), "u2", "u1").Return(reverse, nil)
	fx.requests.EXPECT().MarkResolved(gomock.Any(), "req-rev", dbmysql.RequestStatusAccepted).Return(int64(1), nil)
	fx.friendships.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	// counter-direction check inside friendship materialization
	fx.requests.EXPECT().PendingByPair(gomock.Any(), "u1", "u2").Return(nil, notFound("no pending"))
	fx.sqlmock.ExpectCommit()

	fx.publisher.EXPECT().Publish(gomock.Any(), "u1", "u2").Do(func(ev events.Event, _ ...string) {
		assert.Equal(t, events.TableRequests, ev.Table)
		assert.Equal(t, events.OpUpdate, ev.Op)
		assert.Equal(t, "req-rev", ev.RowID)
	})
	fx.publisher.EXPECT().Publish(gomock.Any(), "u1", "u2").Do(func(ev events.Event, _ ...string) {
		assert.Equal(t, events.TableFriendships, ev.Table)
		assert.Equal(t, events.OpInsert, ev.Op)
		assert.NotEmpty(t, ev.RowID)
	})
	fx.notifier.EXPECT().NotifyAccepted("u2", "u1")

	req, err := fx.svc.Send(ctx, "u1", "u2")
	require.NoError(t, err)
	assert.Equal(t, "req-rev", req.ID)
	assert.Equal(t, dbmysql.RequestStatusAccepted, req.Status)
	assert.Nil(t, req.PendingPair)
}

func TestSendPendingPairKeyCanonical(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	fx.sqlmock.ExpectBegin()
	fx.friendships.EXPECT().Exists(gomock.Any(), "u2", "u1").Return(false, nil)
	fx.requests.EXPECT().PendingByPair(gomock.Any(), "u1", "u2").Return(nil, notFound("no pending"))
	fx.requests.EXPECT().PendingByPair(gomock.Any(), "u2", "u1").Return(nil, notFound("no pending"))
	fx.requests.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	fx.sqlmock.ExpectCommit()
	fx.publisher.EXPECT().Publish(gomock.Any(), "u2", "u1")

	req, err := fx.svc.Send(ctx, "u2", "u1")
	require.NoError(t, err)
	require.NotNil(t, req.PendingPair)
	// both directions key to the same value so opposite-direction pendings
	// collide on the unique index
	assert.Equal(t, "u1:u2", *req.PendingPair)
}

func TestSendRacingMutualSendsCollide(t *testing.T) {
	// Two users send to each other at the same time: each transaction's
	// reads run before the other commits, so both reverse-pending checks
	// miss. The second insert must fail on the canonical pending-pair index
	// rather than commit a second pending row.
	fx := newServiceFixture(t)
	ctx := context.Background()

	fx.sqlmock.ExpectBegin()
	fx.friendships.EXPECT().Exists(gomock.Any(), "u2", "u1").Return(false, nil)
	fx.requests.EXPECT().PendingByPair(gomock.Any(), "u1", "u2").Return(nil, notFound("no pending"))
	fx.requests.EXPECT().PendingByPair(gomock.Any(), "u2", "u1").Return(nil, notFound("no pending"))
	fx.requests.EXPECT().Insert(gomock.Any(), gomock.Any()).
		Return(common.Conflictf("friend request already pending for this pair"))
	fx.sqlmock.ExpectRollback()

	_, err := fx.svc.Send(ctx, "u2", "u1")
	assert.True(t, common.IsConflict(err))
	assert.NoError(t, fx.sqlmock.ExpectationsWereMet())
}

func TestSendCollapseLosesRace(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	reverse := &dbmysql.FriendRequest{ID: "req-rev", SenderID: "u2", ReceiverID: "u1", Status: dbmysql.RequestStatusPending}

	fx.sqlmock.ExpectBegin()
	fx.friendships.EXPECT().Exists(gomock.Any(), "u1", "u2").Return(false, nil)
	fx.requests.EXPECT().PendingByPair(gomock.Any(), "u2", "u1").Return(reverse, nil)
	fx.requests.EXPECT().MarkResolved(gomock.Any(), "req-rev", dbmysql.RequestStatusAccepted).Return(int64(0), nil)
	fx.sqlmock.ExpectRollback()

	_, err := fx.svc.Send(ctx, "u1", "u2")
	assert.True(t, common.IsConflict(err))
}

func TestAcceptResolvesRequest(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	pair := dbmysql.PendingPairKey("u1", "u2")
	req := &dbmysql.FriendRequest{
		ID: "req-1", SenderID: "u1", ReceiverID: "u2",
		Status: dbmysql.RequestStatusPending, PendingPair: &pair,
	}

	fx.requests.EXPECT().ByID(gomock.Any(), "req-1").Return(req, nil)
	fx.sqlmock.ExpectBegin()
	fx.requests.EXPECT().MarkResolved(gomock.Any(), "req-1", dbmysql.RequestStatusAccepted).Return(int64(1), nil)
	fx.friendships.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	fx.requests.EXPECT().PendingByPair(gomock.Any(), "u2", "u1").Return(nil, notFound("no pending"))
	fx.sqlmock.ExpectCommit()

	fx.publisher.EXPECT().Publish(gomock.Any(), "u1", "u2").Times(2)
	fx.notifier.EXPECT().NotifyAccepted("u1", "u2")

	got, err := fx.svc.Accept(ctx, "req-1", "u2")
	require.NoError(t, err)
	assert.Equal(t, dbmysql.RequestStatusAccepted, got.Status)
	assert.Nil(t, got.PendingPair)
}

func TestAcceptRequiresReceiver(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	req := &dbmysql.FriendRequest{ID: "req-1", SenderID: "u1", ReceiverID: "u2", Status: dbmysql.RequestStatusPending}
	fx.requests.EXPECT().ByID(gomock.Any(), "req-1").Return(req, nil).Times(2)

	_, err := fx.svc.Accept(ctx, "req-1", "u1")
	assert.True(t, common.IsUnauthorized(err))

	_, err = fx.svc.Accept(ctx, "req-1", "u3")
	assert.True(t, common.IsUnauthorized(err))
}

func TestAcceptAlreadyResolved(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	req := &dbmysql.FriendRequest{ID: "req-1", SenderID: "u1", ReceiverID: "u2", Status: dbmysql.RequestStatusRejected}
	fx.requests.EXPECT().ByID(gomock.Any(), "req-1").Return(req, nil)

	_, err := fx.svc.Accept(ctx, "req-1", "u2")
	assert.True(t, common.IsConflict(err))
}

func TestAcceptLosesRace(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	req := &dbmysql.FriendRequest{ID: "req-1", SenderID: "u1", ReceiverID: "u2", Status: dbmysql.RequestStatusPending}
	fx.requests.EXPECT().ByID(gomock.Any(), "req-1").Return(req, nil)
	fx.sqlmock.ExpectBegin()
	fx.requests.EXPECT().MarkResolved(gomock.Any(), "req-1", dbmysql.RequestStatusAccepted).Return(int64(0), nil)
	fx.sqlmock.ExpectRollback()

	_, err := fx.svc.Accept(ctx, "req-1", "u2")
	assert.True(t, common.IsConflict(err))
}

func TestAcceptUnknownRequest(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	fx.requests.EXPECT().ByID(gomock.Any(), "missing").Return(nil, notFound("not found"))

	_, err := fx.svc.Accept(ctx, "missing", "u2")
	assert.True(t, common.IsNotFound(err))
}

func TestAcceptReusesExistingFriendship(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	req := &dbmysql.FriendRequest{ID: "req-1", SenderID: "u1", ReceiverID: "u2", Status: dbmysql.RequestStatusPending}
	existing := &dbmysql.Friendship{ID: "fr-9", UserA: "u1", UserB: "u2"}

	fx.requests.EXPECT().ByID(gomock.Any(), "req-1").Return(req, nil)
	fx.sqlmock.ExpectBegin()
	fx.requests.EXPECT().MarkResolved(gomock.Any(), "req-1", dbmysql.RequestStatusAccepted).Return(int64(1), nil)
	fx.friendships.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(common.Conflictf("friendship already exists"))
	fx.friendships.EXPECT().ByPair(gomock.Any(), "u1", "u2").Return(existing, nil)
	fx.requests.EXPECT().PendingByPair(gomock.Any(), "u2", "u1").Return(nil, notFound("no pending"))
	fx.sqlmock.ExpectCommit()

	fx.publisher.EXPECT().Publish(gomock.Any(), "u1", "u2")
	fx.publisher.EXPECT().Publish(gomock.Any(), "u1", "u2").Do(func(ev events.Event, _ ...string) {
		assert.Equal(t, events.TableFriendships, ev.Table)
		assert.Equal(t, "fr-9", ev.RowID)
	})
	fx.notifier.EXPECT().NotifyAccepted("u1", "u2")

	_, err := fx.svc.Accept(ctx, "req-1", "u2")
	require.NoError(t, err)
}

func TestRejectResolvesRequest(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	req := &dbmysql.FriendRequest{ID: "req-1", SenderID: "u1", ReceiverID: "u2", Status: dbmysql.RequestStatusPending}
	fx.requests.EXPECT().ByID(gomock.Any(), "req-1").Return(req, nil)
	fx.requests.EXPECT().MarkResolved(gomock.Any(), "req-1", dbmysql.RequestStatusRejected).Return(int64(1), nil)
	fx.publisher.EXPECT().Publish(gomock.Any(), "u1", "u2").Do(func(ev events.Event, _ ...string) {
		assert.Equal(t, events.TableRequests, ev.Table)
		assert.Equal(t, events.OpUpdate, ev.Op)
	})

	got, err := fx.svc.Reject(ctx, "req-1", "u2")
	require.NoError(t, err)
	assert.Equal(t, dbmysql.RequestStatusRejected, got.Status)
}

func TestRejectRequiresReceiver(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	req := &dbmysql.FriendRequest{ID: "req-1", SenderID: "u1", ReceiverID: "u2", Status: dbmysql.RequestStatusPending}
	fx.requests.EXPECT().ByID(gomock.Any(), "req-1").Return(req, nil)

	_, err := fx.svc.Reject(ctx, "req-1", "u1")
	assert.True(t, common.IsUnauthorized(err))
}

func TestCancelDeletesPending(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	req := &dbmysql.FriendRequest{ID: "req-1", SenderID: "u1", ReceiverID: "u2", Status: dbmysql.RequestStatusPending}
	fx.requests.EXPECT().ByID(gomock.Any(), "req-1").Return(req, nil)
	fx.requests.EXPECT().DeletePending(gomock.Any(), "req-1").Return(int64(1), nil)
	fx.publisher.EXPECT().Publish(gomock.Any(), "u1", "u2").Do(func(ev events.Event, _ ...string) {
		assert.Equal(t, events.OpDelete, ev.Op)
	})

	assert.NoError(t, fx.svc.Cancel(ctx, "req-1", "u1"))
}

func TestCancelRequiresSender(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	req := &dbmysql.FriendRequest{ID: "req-1", SenderID: "u1", ReceiverID: "u2", Status: dbmysql.RequestStatusPending}
	fx.requests.EXPECT().ByID(gomock.Any(), "req-1").Return(req, nil)

	err := fx.svc.Cancel(ctx, "req-1", "u2")
	assert.True(t, common.IsUnauthorized(err))
}

func TestCancelAlreadyResolved(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	req := &dbmysql.FriendRequest{ID: "req-1", SenderID: "u1", ReceiverID: "u2", Status: dbmysql.RequestStatusAccepted}
	fx.requests.EXPECT().ByID(gomock.Any(), "req-1").Return(req, nil)
	fx.requests.EXPECT().DeletePending(gomock.Any(), "req-1").Return(int64(0), nil)

	err := fx.svc.Cancel(ctx, "req-1", "u1")
	assert.True(t, common.IsConflict(err))
}

func TestRemoveDeletesFriendship(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	f := &dbmysql.Friendship{ID: "fr-1", UserA: "u1", UserB: "u2"}
	fx.friendships.EXPECT().ByPair(gomock.Any(), "u2", "u1").Return(f, nil)
	fx.friendships.EXPECT().DeleteByPair(gomock.Any(), "u2", "u1").Return(int64(1), nil)
	fx.publisher.EXPECT().Publish(gomock.Any(), "u1", "u2").Do(func(ev events.Event, _ ...string) {
		assert.Equal(t, events.TableFriendships, ev.Table)
		assert.Equal(t, events.OpDelete, ev.Op)
		assert.Equal(t, "fr-1", ev.RowID)
	})

	assert.NoError(t, fx.svc.Remove(ctx, "u2", "u1"))
}

func TestRemoveLostRaceSkipsPublish(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	f := &dbmysql.Friendship{ID: "fr-1", UserA: "u1", UserB: "u2"}
	fx.friendships.EXPECT().ByPair(gomock.Any(), "u1", "u2").Return(f, nil)
	// a concurrent remove got there first: zero rows deleted, no event
	fx.friendships.EXPECT().DeleteByPair(gomock.Any(), "u1", "u2").Return(int64(0), nil)

	assert.NoError(t, fx.svc.Remove(ctx, "u1", "u2"))
}

func TestRemoveMissingFriendshipIsNoop(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	fx.friendships.EXPECT().ByPair(gomock.Any(), "u1", "u2").Return(nil, notFound("no friendship"))

	assert.NoError(t, fx.svc.Remove(ctx, "u1", "u2"))
}

func TestRemoveValidation(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	assert.True(t, common.IsValidation(fx.svc.Remove(ctx, "", "u2")))
	assert.True(t, common.IsValidation(fx.svc.Remove(ctx, "u1", "u1")))
}

func TestSnapshotBuildsSets(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	fx.friendships.EXPECT().ListByUser(gomock.Any(), "u1").Return([]*dbmysql.Friendship{
		{ID: "fr-1", UserA: "u1", UserB: "u5"},
		{ID: "fr-2", UserA: "u0", UserB: "u1"},
	}, nil)
	fx.requests.EXPECT().ListPendingSent(gomock.Any(), "u1").Return([]*dbmysql.FriendRequest{
		{ID: "req-1", SenderID: "u1", ReceiverID: "u7"},
	}, nil)
	fx.requests.EXPECT().ListPendingReceived(gomock.Any(), "u1").Return([]*dbmysql.FriendRequest{
		{ID: "req-2", SenderID: "u9", ReceiverID: "u1"},
	}, nil)

	snap, err := fx.svc.Snapshot(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"u5": true, "u0": true}, snap.Friends)
	assert.Equal(t, map[string]bool{"u7": true}, snap.PendingSent)
	assert.Equal(t, map[string]bool{"u9": true}, snap.PendingReceived)
}

func TestRejectThenResendCreatesFreshRequest(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	pair := dbmysql.PendingPairKey("u1", "u2")
	req := &dbmysql.FriendRequest{
		ID: "req-1", SenderID: "u1", ReceiverID: "u2",
		Status: dbmysql.RequestStatusPending, PendingPair: &pair,
	}

	fx.requests.EXPECT().ByID(gomock.Any(), "req-1").Return(req, nil)
	fx.requests.EXPECT().MarkResolved(gomock.Any(), "req-1", dbmysql.RequestStatusRejected).Return(int64(1), nil)
	fx.publisher.EXPECT().Publish(gomock.Any(), "u1", "u2")

	rejected, err := fx.svc.Reject(ctx, "req-1", "u2")
	require.NoError(t, err)
	require.Equal(t, dbmysql.RequestStatusRejected, rejected.Status)

	// the rejected row is terminal history; a re-send starts over with a
	// fresh pending row instead of resurrecting it
	fx.sqlmock.ExpectBegin()
	fx.friendships.EXPECT().Exists(gomock.Any(), "u1", "u2").Return(false, nil)
	fx.requests.EXPECT().PendingByPair(gomock.Any(), "u2", "u1").Return(nil, notFound("no pending"))
	fx.requests.EXPECT().PendingByPair(gomock.Any(), "u1", "u2").Return(nil, notFound("no pending"))
	fx.requests.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	fx.sqlmock.ExpectCommit()
	fx.publisher.EXPECT().Publish(gomock.Any(), "u1", "u2")

	fresh, err := fx.svc.Send(ctx, "u1", "u2")
	require.NoError(t, err)
	assert.NotEqual(t, "req-1", fresh.ID)
	assert.Equal(t, dbmysql.RequestStatusPending, fresh.Status)
	require.NotNil(t, fresh.PendingPair)
	assert.Equal(t, "u1:u2", *fresh.PendingPair)
}

func TestSnapshotRequiresUser(t *testing.T) {
	fx := newServiceFixture(t)

	_, err := fx.svc.Snapshot(context.Background(), "")
	assert.True(t, common.IsValidation(err))
}
