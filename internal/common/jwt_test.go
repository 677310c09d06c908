package common

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestTokenRoundtrip(t *testing.T) {
	token, err := GenerateToken("u1")
	require.NoError(t, err)

	claims, err := ValidToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "friendgraph", claims.Issuer)
}

func TestValidTokenRejectsGarbage(t *testing.T) {
	_, err := ValidToken("not-a-token")
	assert.Error(t, err)

	_, err = ValidToken("")
	assert.Error(t, err)
}

func TestUserIDContextRoundtrip(t *testing.T) {
	ctx := WithUserID(context.Background(), "u1")
	id, ok := UserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u1", id)

	_, ok = UserIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = UserIDFromContext(WithUserID(context.Background(), ""))
	assert.False(t, ok)
}

func TestAuthInterceptorInjectsUser(t *testing.T) {
	token, err := GenerateToken("u1")
	require.NoError(t, err)

	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("authorization", "Bearer "+token))

	var gotUser string
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		gotUser, _ = UserIDFromContext(ctx)
		return "ok", nil
	}

	resp, err := AuthInterceptor()(ctx, nil, &grpc.UnaryServerInfo{}, handler)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.Equal(t, "u1", gotUser)
}

func TestAuthInterceptorRejectsBadCalls(t *testing.T) {
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler must not run")
		return nil, nil
	}

	tests := []struct {
		name string
		ctx  context.Context
	}{
		{"no metadata", context.Background()},
		{"no header", metadata.NewIncomingContext(context.Background(), metadata.MD{})},
		{"malformed header", metadata.NewIncomingContext(context.Background(),
			metadata.Pairs("authorization", "Token abc"))},
		{"bad token", metadata.NewIncomingContext(context.Background(),
			metadata.Pairs("authorization", "Bearer abc"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AuthInterceptor()(tt.ctx, nil, &grpc.UnaryServerInfo{}, handler)
			require.Error(t, err)
			assert.Equal(t, codes.Unauthenticated, status.Code(err))
		})
	}
}
