// Package auth issues and verifies bearer tokens and guards routes by role.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/MikeMC777/ropa-market/internal/apperr"
	"github.com/MikeMC777/ropa-market/internal/httpx"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Identity is the authenticated caller.
type Identity struct {
	UserID string
	Role   Role
}

func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }

type claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (t *Tokens) Issue(userID string, role Role) (string, error) {
	now := t.now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	})
	return tok.SignedString(t.secret)
}

func (t *Tokens) Parse(raw string) (Identity, error) {
	var cl claims
	_, err := jwt.ParseWithClaims(raw, &cl, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, apperr.Unauthorizedf("token has expired")
		}
		return Identity{}, apperr.Unauthorizedf("token is invalid")
	}
	if cl.Subject == "" {
		return Identity{}, apperr.Unauthorizedf("invalid token claims")
	}
	role := cl.Role
	if role == "" {
		role = RoleUser
	}
	return Identity{UserID: cl.Subject, Role: role}, nil
}

const identityKey = "identity"

// tokenFrom reads the bearer header. With allowQuery it falls back to the
// token query param used by EventSource clients that cannot set headers.
func tokenFrom(c *gin.Context, allowQuery bool) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if after, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(after)
		}
		return ""
	}
	if allowQuery {
		return c.Query("token")
	}
	return ""
}

// Middleware authenticates the request from the Authorization header. With
// required=false a missing token is allowed through anonymously, but a present
// and invalid one is still rejected.
func (t *Tokens) Middleware(required bool) gin.HandlerFunc {
	return t.authenticate(required, false)
}

// StreamMiddleware is Middleware(true) that also accepts ?token=. Mount it only
// on event-stream routes so tokens stay out of other URLs.
func (t *Tokens) StreamMiddleware() gin.HandlerFunc {
	return t.authenticate(true, true)
}

func (t *Tokens) authenticate(required, allowQuery bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := tokenFrom(c, allowQuery)
		if raw == "" {
			if required {
				httpx.Error(c, apperr.Unauthorizedf("no token provided"))
				return
			}
			c.Next()
			return
		}
		id, err := t.Parse(raw)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.Set(identityKey, id)
		c.Next()
	}
}

// RequireAdmin must run after Middleware(true).
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := FromContext(c)
		if !ok {
			httpx.Error(c, apperr.Unauthorizedf("no token provided"))
			return
		}
		if !id.IsAdmin() {
			httpx.Error(c, apperr.Forbiddenf("admin only"))
			return
		}
		c.Next()
	}
}

func FromContext(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

// MustIdentity is for handlers mounted behind Middleware(true).
func MustIdentity(c *gin.Context) Identity {
	id, _ := FromContext(c)
	return id
}
