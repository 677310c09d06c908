package relationship

import (
	"context"
	"testing"

	"friendgraph/internal/common"
	"friendgraph/internal/dbmysql"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFriendshipRepositoryInsertCanonicalizes(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFriendshipRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `friendships`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	f := &dbmysql.Friendship{ID: "fr-1", UserA: "zeta", UserB: "alpha"}
	require.NoError(t, repo.Insert(context.Background(), f))
	assert.Equal(t, "alpha", f.UserA)
	assert.Equal(t, "zeta", f.UserB)
}

func TestFriendshipRepositoryInsertDuplicate(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFriendshipRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `friendships`").WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	err := repo.Insert(context.Background(), &dbmysql.Friendship{ID: "fr-1", UserA: "u1", UserB: "u2"})
	assert.True(t, common.IsConflict(err))
}

func TestFriendshipRepositoryExists(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFriendshipRepository(db)

	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	ok, err := repo.Exists(context.Background(), "u2", "u1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFriendshipRepositoryByPairNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFriendshipRepository(db)

	mock.ExpectQuery("SELECT .* FROM `friendships`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.ByPair(context.Background(), "u1", "u2")
	assert.True(t, common.IsNotFound(err))
}

func TestFriendshipRepositoryDeleteByPair(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFriendshipRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `friendships`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	n, err := repo.DeleteByPair(context.Background(), "u2", "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestFriendshipRepositoryListByUser(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFriendshipRepository(db)

	rows := sqlmock.NewRows([]string{"id", "user_a", "user_b"}).
		AddRow("fr-1", "u1", "u5").
		AddRow("fr-2", "u0", "u1")
	mock.ExpectQuery("SELECT .* FROM `friendships`").WillReturnRows(rows)

	friendships, err := repo.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, friendships, 2)
	assert.Equal(t, "u5", friendships[0].Other("u1"))
	assert.Equal(t, "u0", friendships[1].Other("u1"))
}
