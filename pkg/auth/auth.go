package auth

import (
	"context"
	"os"

	"github.com/golang-jwt/jwt/v4"
)

var JWTKey = jwtKeyFromEnv()

func jwtKeyFromEnv() []byte {
	if v := os.Getenv("JWT_KEY"); v != "" {
		return []byte(v)
	}
	return []byte("dev-secret")
}

type Claims struct {
	Profile struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	} `json:"profile"`
	jwt.RegisteredClaims
}

type ctxKey int

const (
	userNameKey ctxKey = iota
	userRoleKey
)

func SetAuthContext(ctx context.Context, username, role string) context.Context {
	ctx = context.WithValue(ctx, userNameKey, username)
	return context.WithValue(ctx, userRoleKey, role)
}

func Username(ctx context.Context) string {
	v, _ := ctx.Value(userNameKey).(string)
	return v
}

func Role(ctx context.Context) string {
	v, _ := ctx.Value(userRoleKey).(string)
	return v
}
