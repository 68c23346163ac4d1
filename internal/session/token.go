package session

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Tokens signs and parses session tokens. Tokens only carry the identity
// for display; they are not an authorization mechanism.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (t *Tokens) Issue(id Identity) (string, error) {
	if len(t.secret) == 0 {
		return "", ErrSecretNotSet
	}

	now := t.now()
	claims := Claims{
		Name:  id.Name,
		Email: id.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(id.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *Tokens) Parse(tokenStr string) (Identity, error) {
	if len(t.secret) == 0 {
		return Identity{}, ErrSecretNotSet
	}

	token, err := jwt.ParseWithClaims(
		tokenStr,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrUnexpectedMethod
			}
			return t.secret, nil
		},
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return Identity{}, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	return Identity{ID: id, Name: claims.Name, Email: claims.Email}, nil
}

// ExtractToken prefers the session cookie and falls back to a bearer header.
func ExtractToken(r *http.Request) string {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

const CookieName = "session_token"
