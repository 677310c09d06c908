// Package handler wires the relationship proto service to the lifecycle
// manager.
package handler

import (
	"context"
	"time"

	pb "friendgraph/api/v1/relationship"

	"friendgraph/internal/common"
	"friendgraph/internal/dbmysql"
	"friendgraph/internal/events"
	"friendgraph/internal/realtime"
	"friendgraph/internal/relationship"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type Handler struct {
	pb.UnimplementedRelationshipServiceServer
	service  relationship.Service
	source   events.Source
	syncOpts realtime.Options
}

func NewHandler(service relationship.Service, source events.Source, syncOpts realtime.Options) *Handler {
	return &Handler{service: service, source: source, syncOpts: syncOpts}
}

// retryRead wraps the read-only service calls. Transient store failures are
// retried with bounded backoff; mutations never go through here.
func (h *Handler) retryRead(ctx context.Context, fn func() error) error {
	delay := h.syncOpts.RetryDelay
	if delay <= 0 {
		delay = 200 * time.Millisecond
	}
	return common.Retry(ctx, h.syncOpts.FetchRetries, delay, fn)
}

func actingUser(ctx context.Context) (string, error) {
	userID, ok := common.UserIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "user not authenticated")
	}
	return userID, nil
}

func toError(err error) error {
	return status.Error(common.GRPCCode(err), err.Error())
}

func toRequestRecord(req *dbmysql.FriendRequest) *pb.FriendRequestRecord {
	return &pb.FriendRequestRecord{
		Id:         req.ID,
		SenderId:   req.SenderID,
		ReceiverId: req.ReceiverID,
		Status:     req.Status,
		CreatedAt:  timestamppb.New(req.CreatedAt),
	}
}

func (h *Handler) SendFriendRequest(ctx context.Context, req *pb.SendFriendRequestRequest) (*pb.FriendRequestResponse, error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}

	created, err := h.service.Send(ctx, userID, req.ReceiverId)
	if err != nil {
		return nil, toError(err)
	}
	return &pb.FriendRequestResponse{
		Request:           toRequestRecord(created),
		FriendshipCreated: created.Status == dbmysql.RequestStatusAccepted,
	}, nil
}

func (h *Handler) AcceptFriendRequest(ctx context.Context, req *pb.AcceptFriendRequestRequest) (*pb.FriendRequestResponse, error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}

	accepted, err := h.service.Accept(ctx, req.RequestId, userID)
	if err != nil {
		return nil, toError(err)
	}
	return &pb.FriendRequestResponse{
		Request:           toRequestRecord(accepted),
		FriendshipCreated: true,
	}, nil
}

func (h *Handler) RejectFriendRequest(ctx context.Context, req *pb.RejectFriendRequestRequest) (*pb.FriendRequestResponse, error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}

	rejected, err := h.service.Reject(ctx, req.RequestId, userID)
	if err != nil {
		return nil, toError(err)
	}
	return &pb.FriendRequestResponse{Request: toRequestRecord(rejected)}, nil
}

func (h *Handler) CancelFriendRequest(ctx context.Context, req *pb.CancelFriendRequestRequest) (*pb.StatusResponse, error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.service.Cancel(ctx, req.RequestId, userID); err != nil {
		return nil, toError(err)
	}
	return &pb.StatusResponse{Success: true, Message: "friend request cancelled"}, nil
}

func (h *Handler) RemoveFriend(ctx context.Context, req *pb.RemoveFriendRequest) (*pb.StatusResponse, error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.service.Remove(ctx, userID, req.FriendId); err != nil {
		return nil, toError(err)
	}
	return &pb.StatusResponse{Success: true, Message: "friend removed"}, nil
}

func (h *Handler) GetRelationship(ctx context.Context, req *pb.GetRelationshipRequest) (*pb.RelationshipStatusResponse, error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}

	var snap *relationship.Snapshot
	err = h.retryRead(ctx, func() error {
		var ferr error
		snap, ferr = h.service.Snapshot(ctx, userID)
		return ferr
	})
	if err != nil {
		return nil, toError(err)
	}
	return &pb.RelationshipStatusResponse{
		TargetId: req.TargetId,
		Status:   string(realtime.DeriveStatus(userID, req.TargetId, snap)),
	}, nil
}

func (h *Handler) ListFriends(ctx context.Context, _ *pb.ListFriendsRequest) (*pb.ListFriendsResponse, error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}

	var friendships []*dbmysql.Friendship
	err = h.retryRead(ctx, func() error {
		var ferr error
		friendships, ferr = h.service.Friends(ctx, userID)
		return ferr
	})
	if err != nil {
		return nil, toError(err)
	}

	resp := &pb.ListFriendsResponse{Friends: make([]*pb.FriendshipRecord, 0, len(friendships))}
	for _, f := range friendships {
		resp.Friends = append(resp.Friends, &pb.FriendshipRecord{
			Id:        f.ID,
			FriendId:  f.Other(userID),
			CreatedAt: timestamppb.New(f.CreatedAt),
		})
	}
	return resp, nil
}

func (h *Handler) ListPendingRequests(ctx context.Context, req *pb.ListPendingRequestsRequest) (*pb.ListPendingRequestsResponse, error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}

	var requests []*dbmysql.FriendRequest
	err = h.retryRead(ctx, func() error {
		var ferr error
		if req.Direction == "sent" {
			requests, ferr = h.service.PendingSent(ctx, userID)
		} else {
			requests, ferr = h.service.PendingReceived(ctx, userID)
		}
		return ferr
	})
	if err != nil {
		return nil, toError(err)
	}

	resp := &pb.ListPendingRequestsResponse{Requests: make([]*pb.FriendRequestRecord, 0, len(requests))}
	for _, r := range requests {
		resp.Requests = append(resp.Requests, toRequestRecord(r))
	}
	return resp, nil
}

// StreamEvents forwards the user's change events until the client goes
// away. The subscription is released on every exit path.
func (h *Handler) StreamEvents(_ *pb.StreamEventsRequest, stream pb.RelationshipService_StreamEventsServer) error {
	userID, err := actingUser(stream.Context())
	if err != nil {
		return err
	}

	sub, err := h.source.Subscribe(userID)
	if err != nil {
		return status.Error(codes.Unavailable, "event source unavailable")
	}
	defer h.source.Unsubscribe(sub)

	for {
		select {
		case <-stream.Context().Done():
			return nil
		case ev, ok := <-sub.Events():
			if !ok {
				return status.Error(codes.Unavailable, "event stream closed")
			}
			if err := stream.Send(&pb.ChangeEvent{
				Table:     string(ev.Table),
				Operation: string(ev.Op),
				RowId:     ev.RowID,
			}); err != nil {
				return err
			}
		}
	}
}
