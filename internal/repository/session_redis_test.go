package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTTL = time.Minute

func TestSessionRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	sessionRepo := NewSessionRepository(st.Storage, testTTL)

	// Given: a session with one move
	session := entity.NewSession("123")
	_, err := session.ApplyMove(4)
	require.NoError(t, err)

	// When: CreateOrUpdate is called
	err = sessionRepo.CreateOrUpdate(ctx, session)

	// Then: the session is stored with an expiry
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, sessionKeyPrefix+session.ID).Result()
	require.NoError(t, err)
	assert.True(t, ttl > 0, "ttl %s", ttl)
}

func TestSessionRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, testTTL)

		// Given: a stored session that jumped back in its history
		session := entity.NewSession("123")
		_, err := session.ApplyMove(0)
		require.NoError(t, err)
		_, err = session.ApplyMove(4)
		require.NoError(t, err)
		require.NoError(t, session.JumpTo(1))

		err = sessionRepo.CreateOrUpdate(ctx, session)
		require.NoError(t, err)

		// When: GetByID is called with the existing ID
		retrieved, err := sessionRepo.GetByID(ctx, session.ID)

		// Then: history and current move survive the round trip
		require.NoError(t, err)
		assert.Equal(t, session, retrieved)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, testTTL)

		// When: GetByID is called with a missing ID
		retrieved, err := sessionRepo.GetByID(ctx, "9999999")

		// Then: ErrSessionNotFound is returned
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
		assert.Nil(t, retrieved)
	})

	t.Run("GetByID_Corrupted", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, testTTL)

		// Given: a stored session without history
		err := st.Storage.Set(ctx, sessionKeyPrefix+"bad", `{"id":"bad","history":[],"current_move":0}`, 0).Err()
		require.NoError(t, err)

		// When: GetByID is called
		_, err = sessionRepo.GetByID(ctx, "bad")

		// Then: the session is rejected
		require.ErrorIs(t, err, apperror.ErrInvalidSession)
	})
}

func TestSessionRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, 0)

		// Given: a stored session
		session := entity.NewSession("123")
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, session))

		// When: DeleteByID is called
		err := sessionRepo.DeleteByID(ctx, session.ID)

		// Then: the session is gone
		require.NoError(t, err)

		_, err = sessionRepo.GetByID(ctx, session.ID)
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, 0)

		// When: DeleteByID is called with a missing ID
		err := sessionRepo.DeleteByID(ctx, "9999999")

		// Then: ErrSessionNotFound is returned
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})
}
