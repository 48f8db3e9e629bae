package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	XUserNameHeader = "X-User-Name"
	XUserRoleHeader = "X-User-Role"
)

// JWTKey signs session tokens. Overridden from config at startup.
var JWTKey = []byte("kidlit-library-secret")

func SetKey(key string) {
	JWTKey = []byte(key)
}

type Claims struct {
	Profile struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	} `json:"profile"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// NewToken issues an HS256 token for the given profile. The subject
// carries the profile id so handlers can attribute writes to it.
func NewToken(id, email, role string, ttl time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(ttl)
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	claims.Profile.Username = email
	claims.Profile.Role = role

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(JWTKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

type ctxKey int

const (
	userIDKey ctxKey = iota
	userNameKey
	userRoleKey
)

func SetAuthContext(ctx context.Context, id, username, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, id)
	ctx = context.WithValue(ctx, userNameKey, username)
	return context.WithValue(ctx, userRoleKey, role)
}

func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

func UserName(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(userNameKey).(string)
	return name, ok
}

func UserRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(userRoleKey).(string)
	return role, ok
}
