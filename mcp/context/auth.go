package context

import (
	"context"
	"strings"

	"github.com/viant/mcp-protocol/authorization"
)

const bearerPrefix = "Bearer "

// WithAuthToken returns ctx carrying token under authorization.TokenKey.
// A "Bearer " prefix is accepted and dropped; a blank token leaves ctx as is.
func WithAuthToken(ctx context.Context, token string) context.Context {
	token = strings.TrimSpace(token)
	if len(token) > len(bearerPrefix) && strings.EqualFold(token[:len(bearerPrefix)], bearerPrefix) {
		token = strings.TrimSpace(token[len(bearerPrefix):])
	}
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, authorization.TokenKey, &authorization.Token{Token: token})
}

// AuthToken returns the token attached with WithAuthToken.
func AuthToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(authorization.TokenKey).(*authorization.Token)
	if !ok || token == nil || token.Token == "" {
		return "", false
	}
	return token.Token, true
}
