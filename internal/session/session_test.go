package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginIdentity(t *testing.T) {
	t.Run("Defaults to demo user", func(t *testing.T) {
		id, err := LoginIdentity(LoginInput{Email: "Jane@Example.com", Password: "anything"})
		require.NoError(t, err)
		assert.Equal(t, Identity{ID: 1, Name: "John Doe", Email: "jane@example.com"}, id)
	})

	t.Run("Uses provided name", func(t *testing.T) {
		id, err := LoginIdentity(LoginInput{Email: "jane@example.com", Name: " Jane "})
		require.NoError(t, err)
		assert.Equal(t, "Jane", id.Name)
	})

	t.Run("Invalid email", func(t *testing.T) {
		for _, email := range []string{"", "not-an-email", "Jane <jane@example.com>"} {
			_, err := LoginIdentity(LoginInput{Email: email})
			assert.ErrorIs(t, err, ErrInvalidEmail, email)
		}
	})
}

func TestRegisterIdentity(t *testing.T) {
	now := time.UnixMilli(1700000000999)

	id, err := RegisterIdentity(RegisterInput{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}, now)
	require.NoError(t, err)
	assert.Equal(t, Identity{ID: 1700000000999, Name: "Ada Lovelace", Email: "ada@example.com"}, id)

	id, err = RegisterIdentity(RegisterInput{FirstName: "Ada", Email: "ada@example.com"}, now)
	require.NoError(t, err)
	assert.Equal(t, "Ada", id.Name)

	_, err = RegisterIdentity(RegisterInput{Email: "ada@example.com"}, now)
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = RegisterIdentity(RegisterInput{FirstName: "Ada", Email: "nope"}, now)
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestTokens(t *testing.T) {
	identity := Identity{ID: 42, Name: "Ada Lovelace", Email: "ada@example.com"}

	t.Run("Issue and parse", func(t *testing.T) {
		tokens := NewTokens("secret", time.Hour)
		tok, err := tokens.Issue(identity)
		require.NoError(t, err)

		got, err := tokens.Parse(tok)
		require.NoError(t, err)
		assert.Equal(t, identity, got)
	})

	t.Run("Missing secret", func(t *testing.T) {
		tokens := NewTokens("", 0)
		_, err := tokens.Issue(identity)
		assert.ErrorIs(t, err, ErrSecretNotSet)
		_, err = tokens.Parse("x")
		assert.ErrorIs(t, err, ErrSecretNotSet)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		tok, err := NewTokens("secret", time.Hour).Issue(identity)
		require.NoError(t, err)
		_, err = NewTokens("other", time.Hour).Parse(tok)
		assert.Error(t, err)
	})

	t.Run("Expired", func(t *testing.T) {
		tokens := NewTokens("secret", time.Minute)
		tokens.now = func() time.Time { return time.Now().Add(-time.Hour) }
		tok, err := tokens.Issue(identity)
		require.NoError(t, err)

		_, err = NewTokens("secret", time.Minute).Parse(tok)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("Non numeric subject", func(t *testing.T) {
		claims := Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "abc"}}
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = NewTokens("secret", time.Hour).Parse(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestExtractToken(t *testing.T) {
	t.Run("Cookie Preferred", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "cookie_token"})
		req.Header.Set("Authorization", "Bearer header_token")
		assert.Equal(t, "cookie_token", ExtractToken(req))
	})

	t.Run("Header Fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer header_token")
		assert.Equal(t, "header_token", ExtractToken(req))
	})

	t.Run("Malformed Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic user:pass")
		assert.Empty(t, ExtractToken(req))
	})
}

func TestContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	id := Identity{ID: 1, Name: "John Doe"}
	got, ok := FromContext(WithIdentity(context.Background(), id))
	assert.True(t, ok)
	assert.Equal(t, id, got)
}
