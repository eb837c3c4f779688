package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenMaker_RoundTrip(t *testing.T) {
	tm := NewTokenMaker(testSecret)

	u := User{ID: "u_1", Email: "june@example.com", DisplayName: "June"}
	tok, err := tm.New(u, time.Minute)
	require.NoError(t, err)

	claims, err := tm.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "u_1", claims.UserID)
	assert.Equal(t, "june@example.com", claims.Email)
	assert.Equal(t, "June", claims.DisplayName)
}

func TestTokenMaker_RejectsBadTokens(t *testing.T) {
	tm := NewTokenMaker(testSecret)

	u := User{ID: "u_1", Email: "june@example.com"}
	tok, err := tm.New(u, time.Minute)
	require.NoError(t, err)

	_, err = tm.Parse(tok + "x")
	assert.Error(t, err)

	other := NewTokenMaker("another-secret-another-secret-32")
	_, err = other.Parse(tok)
	assert.Error(t, err)

	expired, err := tm.New(u, -time.Minute)
	require.NoError(t, err)
	_, err = tm.Parse(expired)
	assert.Error(t, err)
}

func TestMemStore_CreateAndVerify(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "u_1", "june@example.com", "June", "sourdough-rules"))

	err := s.Create(ctx, "u_2", "June@Example.com", "Other June", "whatever123")
	assert.ErrorIs(t, err, ErrEmailExists)

	u, err := s.Verify(ctx, "JUNE@example.com", "sourdough-rules")
	require.NoError(t, err)
	assert.Equal(t, "u_1", u.ID)
	assert.Equal(t, "June", u.DisplayName)

	_, err = s.Verify(ctx, "june@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Verify(ctx, "nobody@example.com", "sourdough-rules")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
