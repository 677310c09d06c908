package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"friendgraph/internal/common"
	"friendgraph/internal/dbmysql"
	"friendgraph/internal/events"
	"friendgraph/internal/realtime"
	"friendgraph/internal/relationship"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubService lets each test plug in just the operations it exercises.
type stubService struct {
	send     func(ctx context.Context, senderID, receiverID string) (*dbmysql.FriendRequest, error)
	accept   func(ctx context.Context, requestID, actingUserID string) (*dbmysql.FriendRequest, error)
	reject   func(ctx context.Context, requestID, actingUserID string) (*dbmysql.FriendRequest, error)
	cancel   func(ctx context.Context, requestID, actingUserID string) error
	remove   func(ctx context.Context, userID, friendID string) error
	friends  func(ctx context.Context, userID string) ([]*dbmysql.Friendship, error)
	sent     func(ctx context.Context, userID string) ([]*dbmysql.FriendRequest, error)
	received func(ctx context.Context, userID string) ([]*dbmysql.FriendRequest, error)
	snapshot func(ctx context.Context, userID string) (*relationship.Snapshot, error)
}

func (s *stubService) Send(ctx context.Context, senderID, receiverID string) (*dbmysql.FriendRequest, error) {
	return s.send(ctx, senderID, receiverID)
}

func (s *stubService) Accept(ctx context.Context, requestID, actingUserID string) (*dbmysql.FriendRequest, error) {
	return s.accept(ctx, requestID, actingUserID)
}

func (s *stubService) Reject(ctx context.Context, requestID, actingUserID string) (*dbmysql.FriendRequest, error) {
	return s.reject(ctx, requestID, actingUserID)
}

func (s *stubService) Cancel(ctx context.Context, requestID, actingUserID string) error {
	return s.cancel(ctx, requestID, actingUserID)
}

func (s *stubService) Remove(ctx context.Context, userID, friendID string) error {
	return s.remove(ctx, userID, friendID)
}

func (s *stubService) Request(ctx context.Context, requestID string) (*dbmysql.FriendRequest, error) {
	return nil, common.NotFoundf("not implemented")
}

func (s *stubService) Friends(ctx context.Context, userID string) ([]*dbmysql.Friendship, error) {
	return s.friends(ctx, userID)
}

func (s *stubService) PendingSent(ctx context.Context, userID string) ([]*dbmysql.FriendRequest, error) {
	return s.sent(ctx, userID)
}

func (s *stubService) PendingReceived(ctx context.Context, userID string) ([]*dbmysql.FriendRequest, error) {
	return s.received(ctx, userID)
}

func (s *stubService) Snapshot(ctx context.Context, userID string) (*relationship.Snapshot, error) {
	return s.snapshot(ctx, userID)
}

func testServer(t *testing.T, svc relationship.Service) (*httptest.Server, *events.Hub) {
	t.Helper()
	hub := events.NewHub(16, zap.NewNop())
	t.Cleanup(hub.Close)

	opts := realtime.Options{FetchRetries: 3, RetryDelay: time.Millisecond}
	srv := NewServer(svc, hub, nil, opts, zap.NewNop())
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts, hub
}

func authedRequest(t *testing.T, method, url, userID string, body []byte) *http.Request {
	t.Helper()
	token, err := common.GenerateToken(userID)
	require.NoError(t, err)

	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestHealthNeedsNoAuth(t *testing.T) {
	ts, _ := testServer(t, &stubService{})

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware(t *testing.T) {
	ts, _ := testServer(t, &stubService{
		friends: func(ctx context.Context, userID string) ([]*dbmysql.Friendship, error) {
			return nil, nil
		},
	})

	resp, err := http.Get(ts.URL + "/v1/friends")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err := http.NewRequest("GET", ts.URL+"/v1/friends", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// websocket clients pass the token as a query parameter instead
	token, err := common.GenerateToken("u1")
	require.NoError(t, err)
	resp, err = http.Get(ts.URL + "/v1/friends?token=" + token)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSendRequest(t *testing.T) {
	ts, _ := testServer(t, &stubService{
		send: func(ctx context.Context, senderID, receiverID string) (*dbmysql.FriendRequest, error) {
			assert.Equal(t, "u1", senderID)
			assert.Equal(t, "u2", receiverID)
			return &dbmysql.FriendRequest{
				ID: "req-1", SenderID: senderID, ReceiverID: receiverID,
				Status: dbmysql.RequestStatusPending,
			}, nil
		},
	})

	body, _ := json.Marshal(map[string]string{"receiver_id": "u2"})
	resp, err := http.DefaultClient.Do(authedRequest(t, "POST", ts.URL+"/v1/friends/requests", "u1", body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var got requestResponse
	decodeBody(t, resp, &got)
	assert.Equal(t, "req-1", got.ID)
	assert.Equal(t, dbmysql.RequestStatusPending, got.Status)
	assert.False(t, got.FriendshipCreated)
}

func TestSendRequestMutualCollapse(t *testing.T) {
	ts, _ := testServer(t, &stubService{
		send: func(ctx context.Context, senderID, receiverID string) (*dbmysql.FriendRequest, error) {
			return &dbmysql.FriendRequest{
				ID: "req-rev", SenderID: receiverID, ReceiverID: senderID,
				Status: dbmysql.RequestStatusAccepted,
			}, nil
		},
	})

	body, _ := json.Marshal(map[string]string{"receiver_id": "u2"})
	resp, err := http.DefaultClient.Do(authedRequest(t, "POST", ts.URL+"/v1/friends/requests", "u1", body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var got requestResponse
	decodeBody(t, resp, &got)
	assert.True(t, got.FriendshipCreated)
}

func TestSendRequestConflict(t *testing.T) {
	ts, _ := testServer(t, &stubService{
		send: func(ctx context.Context, senderID, receiverID string) (*dbmysql.FriendRequest, error) {
			return nil, common.Conflictf("already friends")
		},
	})

	body, _ := json.Marshal(map[string]string{"receiver_id": "u2"})
	resp, err := http.DefaultClient.Do(authedRequest(t, "POST", ts.URL+"/v1/friends/requests", "u1", body))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAcceptRequest(t *testing.T) {
	ts, _ := testServer(t, &stubService{
		accept: func(ctx context.Context, requestID, actingUserID string) (*dbmysql.FriendRequest, error) {
			assert.Equal(t, "req-1", requestID)
			assert.Equal(t, "u2", actingUserID)
			return &dbmysql.FriendRequest{ID: requestID, SenderID: "u1", ReceiverID: "u2",
				Status: dbmysql.RequestStatusAccepted}, nil
		},
	})

	resp, err := http.DefaultClient.Do(authedRequest(t, "POST", ts.URL+"/v1/friends/requests/req-1/accept", "u2", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got requestResponse
	decodeBody(t, resp, &got)
	assert.Equal(t, dbmysql.RequestStatusAccepted, got.Status)
}

func TestCancelRequestUnauthorized(t *testing.T) {
	ts, _ := testServer(t, &stubService{
		cancel: func(ctx context.Context, requestID, actingUserID string) error {
			return common.Unauthorizedf("only the sender can cancel a friend request")
		},
	})

	resp, err := http.DefaultClient.Do(authedRequest(t, "DELETE", ts.URL+"/v1/friends/requests/req-1", "u2", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRemoveFriend(t *testing.T) {
	ts, _ := testServer(t, &stubService{
		remove: func(ctx context.Context, userID, friendID string) error {
			assert.Equal(t, "u1", userID)
			assert.Equal(t, "u2", friendID)
			return nil
		},
	})

	resp, err := http.DefaultClient.Do(authedRequest(t, "DELETE", ts.URL+"/v1/friends/u2", "u1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got map[string]bool
	decodeBody(t, resp, &got)
	assert.True(t, got["removed"])
}

func TestListFriends(t *testing.T) {
	ts, _ := testServer(t, &stubService{
		friends: func(ctx context.Context, userID string) ([]*dbmysql.Friendship, error) {
			return []*dbmysql.Friendship{
				{ID: "fr-1", UserA: "u1", UserB: "u5"},
				{ID: "fr-2", UserA: "u0", UserB: "u1"},
			}, nil
		},
	})

	resp, err := http.DefaultClient.Do(authedRequest(t, "GET", ts.URL+"/v1/friends", "u1", nil))
	require.NoError(t, err)

	var got struct {
		Friends []struct {
			ID       string `json:"id"`
			FriendID string `json:"friend_id"`
		} `json:"friends"`
	}
	decodeBody(t, resp, &got)
	require.Len(t, got.Friends, 2)
	assert.Equal(t, "u5", got.Friends[0].FriendID)
	assert.Equal(t, "u0", got.Friends[1].FriendID)
}

func TestListPendingDirections(t *testing.T) {
	ts, _ := testServer(t, &stubService{
		sent: func(ctx context.Context, userID string) ([]*dbmysql.FriendRequest, error) {
			return []*dbmysql.FriendRequest{{ID: "req-s", SenderID: userID, ReceiverID: "u2"}}, nil
		},
		received: func(ctx context.Context, userID string) ([]*dbmysql.FriendRequest, error) {
			return []*dbmysql.FriendRequest{{ID: "req-r", SenderID: "u3", ReceiverID: userID}}, nil
		},
	})

	var got struct {
		Requests []requestResponse `json:"requests"`
	}

	resp, err := http.DefaultClient.Do(authedRequest(t, "GET", ts.URL+"/v1/friends/requests?direction=sent", "u1", nil))
	require.NoError(t, err)
	decodeBody(t, resp, &got)
	require.Len(t, got.Requests, 1)
	assert.Equal(t, "req-s", got.Requests[0].ID)

	resp, err = http.DefaultClient.Do(authedRequest(t, "GET", ts.URL+"/v1/friends/requests", "u1", nil))
	require.NoError(t, err)
	decodeBody(t, resp, &got)
	require.Len(t, got.Requests, 1)
	assert.Equal(t, "req-r", got.Requests[0].ID)
}

func TestListFriendsRetriesStoreErrors(t *testing.T) {
	var calls atomic.Int32
	ts, _ := testServer(t, &stubService{
		friends: func(ctx context.Context, userID string) ([]*dbmysql.Friendship, error) {
			if calls.Add(1) == 1 {
				return nil, common.StoreError("list friendships", errors.New("timeout"))
			}
			return []*dbmysql.Friendship{{ID: "fr-1", UserA: "u1", UserB: "u2"}}, nil
		},
	})

	resp, err := http.DefaultClient.Do(authedRequest(t, "GET", ts.URL+"/v1/friends", "u1", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(2), calls.Load())
}

func TestListPendingRetriesStoreErrors(t *testing.T) {
	var calls atomic.Int32
	ts, _ := testServer(t, &stubService{
		received: func(ctx context.Context, userID string) ([]*dbmysql.FriendRequest, error) {
			if calls.Add(1) == 1 {
				return nil, common.StoreError("list pending received", errors.New("timeout"))
			}
			return nil, nil
		},
	})

	resp, err := http.DefaultClient.Do(authedRequest(t, "GET", ts.URL+"/v1/friends/requests", "u1", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(2), calls.Load())
}

func TestListPendingDoesNotRetryTerminalErrors(t *testing.T) {
	var calls atomic.Int32
	ts, _ := testServer(t, &stubService{
		received: func(ctx context.Context, userID string) ([]*dbmysql.FriendRequest, error) {
			calls.Add(1)
			return nil, common.Validationf("bad input")
		},
	})

	resp, err := http.DefaultClient.Do(authedRequest(t, "GET", ts.URL+"/v1/friends/requests", "u1", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestListNotificationsEmptyWithoutHistory(t *testing.T) {
	ts, _ := testServer(t, &stubService{})

	resp, err := http.DefaultClient.Do(authedRequest(t, "GET", ts.URL+"/v1/notifications", "u1", nil))
	require.NoError(t, err)

	var got struct {
		Notifications []notificationEntry `json:"notifications"`
	}
	decodeBody(t, resp, &got)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, got.Notifications)
}

func TestGetStatusRetriesStoreErrors(t *testing.T) {
	var calls atomic.Int32
	ts, _ := testServer(t, &stubService{
		snapshot: func(ctx context.Context, userID string) (*relationship.Snapshot, error) {
			if calls.Add(1) == 1 {
				return nil, common.StoreError("snapshot", errors.New("timeout"))
			}
			return &relationship.Snapshot{Friends: map[string]bool{"u2": true}}, nil
		},
	})

	resp, err := http.DefaultClient.Do(authedRequest(t, "GET", ts.URL+"/v1/relationships/u2", "u1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got map[string]string
	decodeBody(t, resp, &got)
	assert.Equal(t, "friend", got["status"])
	assert.Equal(t, "u2", got["target_id"])
	assert.Equal(t, int32(2), calls.Load())
}

func TestGetStatusSelf(t *testing.T) {
	ts, _ := testServer(t, &stubService{
		snapshot: func(ctx context.Context, userID string) (*relationship.Snapshot, error) {
			return &relationship.Snapshot{}, nil
		},
	})

	resp, err := http.DefaultClient.Do(authedRequest(t, "GET", ts.URL+"/v1/relationships/u1", "u1", nil))
	require.NoError(t, err)

	var got map[string]string
	decodeBody(t, resp, &got)
	assert.Equal(t, "self", got["status"])
}

func TestStreamEventsPushesSnapshots(t *testing.T) {
	var mu sync.Mutex
	snaps := map[string]*relationship.Snapshot{
		"u1": {Friends: map[string]bool{"u2": true}},
	}
	ts, hub := testServer(t, &stubService{
		snapshot: func(ctx context.Context, userID string) (*relationship.Snapshot, error) {
			mu.Lock()
			defer mu.Unlock()
			return snaps[userID], nil
		},
	})

	token, err := common.GenerateToken("u1")
	require.NoError(t, err)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/v1/relationships/events?token=" + token
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg snapshotMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "snapshot", msg.Type)
	assert.Equal(t, []string{"u2"}, msg.Friends)

	// a store change invalidates the session and pushes a fresh snapshot
	mu.Lock()
	snaps["u1"] = &relationship.Snapshot{
		Friends:     map[string]bool{"u2": true},
		PendingSent: map[string]bool{"u3": true},
	}
	mu.Unlock()
	hub.Publish(events.Event{Table: events.TableRequests, Op: events.OpInsert, RowID: "req-1"}, "u1")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, []string{"u3"}, msg.PendingSent)
}
