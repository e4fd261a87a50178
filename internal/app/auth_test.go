package app

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuth() *Auth {
	config := &Config{}
	config.Admin.Password = "correct horse"
	config.Admin.Secret = "test-secret"
	return NewAuth(config)
}

func TestAuthenticate(t *testing.T) {
	auth := testAuth()

	t.Run("right password issues a token", func(t *testing.T) {
		token, ok := auth.Authenticate("correct horse")
		require.True(t, ok)
		assert.True(t, auth.Verify(token))
	})

	t.Run("wrong password issues nothing", func(t *testing.T) {
		token, ok := auth.Authenticate("battery staple")
		assert.False(t, ok)
		assert.Empty(t, token)
	})

	t.Run("unset secret rejects everything", func(t *testing.T) {
		config := &Config{}
		config.Admin.Password = "correct horse"
		bare := NewAuth(config)

		_, ok := bare.Authenticate("correct horse")
		assert.False(t, ok)
		assert.False(t, bare.Verify("1234:abcd"))
	})
}

func TestVerifyFailsClosed(t *testing.T) {
	auth := testAuth()
	issued := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	auth.now = func() time.Time { return issued }
	token, ok := auth.Authenticate("correct horse")
	require.True(t, ok)

	testCases := []struct {
		name  string
		token string
		want  bool
	}{
		{"valid token", token, true},
		{"empty token", "", false},
		{"no separator", "123456789", false},
		{"garbage timestamp", "abc:def", false},
		{"tampered signature", fmt.Sprintf("%d:%s", issued.UnixMilli(), "deadbeef"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, auth.Verify(tc.token))
		})
	}
}

func TestVerifyExpiryBoundary(t *testing.T) {
	auth := testAuth()
	issued := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	auth.now = func() time.Time { return issued }
	token, ok := auth.Authenticate("correct horse")
	require.True(t, ok)

	testCases := []struct {
		name    string
		elapsed time.Duration
		want    bool
	}{
		{"fresh", 0, true},
		{"one millisecond before the window closes", time.Hour - time.Millisecond, true},
		{"exactly at the window edge", time.Hour, true},
		{"one millisecond past the window", time.Hour + time.Millisecond, false},
		{"long expired", 25 * time.Hour, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			auth.now = func() time.Time { return issued.Add(tc.elapsed) }
			assert.Equal(t, tc.want, auth.Verify(token))
		})
	}
}
