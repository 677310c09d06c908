// Package gateway exposes the relationship service over HTTP JSON plus a
// websocket change-event feed.
package gateway

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"friendgraph/internal/common"
	"friendgraph/internal/dbmongo"
	"friendgraph/internal/dbmysql"
	"friendgraph/internal/events"
	"friendgraph/internal/realtime"
	"friendgraph/internal/relationship"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Server struct {
	service  relationship.Service
	source   events.Source
	history  *dbmongo.NotificationStore // nil when history is not configured
	syncOpts realtime.Options
	logger   *zap.Logger
}

func NewServer(service relationship.Service, source events.Source,
	history *dbmongo.NotificationStore, syncOpts realtime.Options, logger *zap.Logger) *Server {
	return &Server{
		service:  service,
		source:   source,
		history:  history,
		syncOpts: syncOpts,
		logger:   logger,
	}
}

// Router builds the route table. All /v1 routes require a bearer token.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.health).Methods("GET")

	api := r.PathPrefix("/v1").Subrouter()
	api.Use(s.authMiddleware)
	api.HandleFunc("/friends/requests", s.sendRequest).Methods("POST")
	api.HandleFunc("/friends/requests", s.listPending).Methods("GET")
	api.HandleFunc("/friends/requests/{id}/accept", s.acceptRequest).Methods("POST")
	api.HandleFunc("/friends/requests/{id}/reject", s.rejectRequest).Methods("POST")
	api.HandleFunc("/friends/requests/{id}", s.cancelRequest).Methods("DELETE")
	api.HandleFunc("/friends", s.listFriends).Methods("GET")
	api.HandleFunc("/friends/{friendId}", s.removeFriend).Methods("DELETE")
	api.HandleFunc("/relationships/events", s.streamEvents).Methods("GET")
	api.HandleFunc("/relationships/{targetId}", s.getStatus).Methods("GET")
	api.HandleFunc("/notifications", s.listNotifications).Methods("GET")

	return r
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// authMiddleware accepts the token from the Authorization header or, for
// websocket clients that cannot set headers, a token query parameter.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if auth := r.Header.Get("Authorization"); auth != "" {
			parts := strings.Fields(auth)
			if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				token = parts[1]
			}
		}
		if token == "" {
			token = r.URL.Query().Get("token")
		}
		if token == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "authorization required"})
			return
		}

		claims, err := common.ValidToken(token)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			return
		}

		next.ServeHTTP(w, r.WithContext(common.WithUserID(r.Context(), claims.UserID)))
	})
}

type sendRequestBody struct {
	ReceiverID string `json:"receiver_id"`
}

type requestResponse struct {
	ID                string `json:"id"`
	SenderID          string `json:"sender_id"`
	ReceiverID        string `json:"receiver_id"`
	Status            string `json:"status"`
	FriendshipCreated bool   `json:"friendship_created,omitempty"`
}

func toRequestResponse(req *dbmysql.FriendRequest) requestResponse {
	return requestResponse{
		ID:         req.ID,
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Status:     req.Status,
	}
}

func (s *Server) sendRequest(w http.ResponseWriter, r *http.Request) {
	userID, _ := common.UserIDFromContext(r.Context())

	var body sendRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	created, err := s.service.Send(r.Context(), userID, body.ReceiverID)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := toRequestResponse(created)
	resp.FriendshipCreated = created.Status == dbmysql.RequestStatusAccepted
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) acceptRequest(w http.ResponseWriter, r *http.Request) {
	userID, _ := common.UserIDFromContext(r.Context())
	requestID := mux.Vars(r)["id"]

	accepted, err := s.service.Accept(r.Context(), requestID, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRequestResponse(accepted))
}

func (s *Server) rejectRequest(w http.ResponseWriter, r *http.Request) {
	userID, _ := common.UserIDFromContext(r.Context())
	requestID := mux.Vars(r)["id"]

	rejected, err := s.service.Reject(r.Context(), requestID, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRequestResponse(rejected))
}

func (s *Server) cancelRequest(w http.ResponseWriter, r *http.Request) {
	userID, _ := common.UserIDFromContext(r.Context())
	requestID := mux.Vars(r)["id"]

	if err := s.service.Cancel(r.Context(), requestID, userID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"cancelled": true})
}

func (s *Server) removeFriend(w http.ResponseWriter, r *http.Request) {
	userID, _ := common.UserIDFromContext(r.Context())
	friendID := mux.Vars(r)["friendId"]

	if err := s.service.Remove(r.Context(), userID, friendID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"removed": true})
}

func (s *Server) listFriends(w http.ResponseWriter, r *http.Request) {
	userID, _ := common.UserIDFromContext(r.Context())

	var friendships []*dbmysql.Friendship
	err := common.Retry(r.Context(), s.syncOpts.FetchRetries, s.retryDelay(), func() error {
		var ferr error
		friendships, ferr = s.service.Friends(r.Context(), userID)
		return ferr
	})
	if err != nil {
		writeError(w, err)
		return
	}

	type friendEntry struct {
		ID       string `json:"id"`
		FriendID string `json:"friend_id"`
	}
	entries := make([]friendEntry, 0, len(friendships))
	for _, f := range friendships {
		entries = append(entries, friendEntry{ID: f.ID, FriendID: f.Other(userID)})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"friends": entries})
}

func (s *Server) listPending(w http.ResponseWriter, r *http.Request) {
	userID, _ := common.UserIDFromContext(r.Context())

	var requests []*dbmysql.FriendRequest
	err := common.Retry(r.Context(), s.syncOpts.FetchRetries, s.retryDelay(), func() error {
		var ferr error
		if r.URL.Query().Get("direction") == "sent" {
			requests, ferr = s.service.PendingSent(r.Context(), userID)
		} else {
			requests, ferr = s.service.PendingReceived(r.Context(), userID)
		}
		return ferr
	})
	if err != nil {
		writeError(w, err)
		return
	}

	entries := make([]requestResponse, 0, len(requests))
	for _, req := range requests {
		entries = append(entries, toRequestResponse(req))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"requests": entries})
}

type notificationEntry struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	SenderID  string    `json:"sender_id"`
	CreatedAt time.Time `json:"created_at"`
}

const notificationPageSize = 50

// listNotifications returns the user's recent acceptance notifications,
// newest first. Without a configured history store the list is empty.
func (s *Server) listNotifications(w http.ResponseWriter, r *http.Request) {
	userID, _ := common.UserIDFromContext(r.Context())

	entries := make([]notificationEntry, 0, notificationPageSize)
	if s.history != nil {
		records, err := s.history.ByUser(r.Context(), userID, notificationPageSize)
		if err != nil {
			writeError(w, err)
			return
		}
		for _, rec := range records {
			entries = append(entries, notificationEntry{
				ID:        rec.ID,
				Type:      rec.Type,
				SenderID:  rec.SenderID,
				CreatedAt: rec.CreatedAt,
			})
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"notifications": entries})
}

// getStatus is a read-through status query; transient store failures are
// retried with bounded backoff before surfacing.
func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	userID, _ := common.UserIDFromContext(r.Context())
	targetID := mux.Vars(r)["targetId"]

	var snap *relationship.Snapshot
	err := common.Retry(r.Context(), s.syncOpts.FetchRetries, s.retryDelay(), func() error {
		var ferr error
		snap, ferr = s.service.Snapshot(r.Context(), userID)
		return ferr
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"target_id": targetID,
		"status":    string(realtime.DeriveStatus(userID, targetID, snap)),
	})
}

func (s *Server) retryDelay() time.Duration {
	if s.syncOpts.RetryDelay > 0 {
		return s.syncOpts.RetryDelay
	}
	return 200 * time.Millisecond
}

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, common.HTTPStatus(err), map[string]string{"error": err.Error()})
}
