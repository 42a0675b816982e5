package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/mcp-protocol/authorization"
)

func TestAuthToken(t *testing.T) {
	ctx := context.Background()
	_, ok := AuthToken(ctx)
	assert.False(t, ok)

	assert.Equal(t, ctx, WithAuthToken(ctx, ""))
	assert.Equal(t, ctx, WithAuthToken(ctx, "   "))

	testCases := []struct {
		in     string
		expect string
	}{
		{in: "secret", expect: "secret"},
		{in: " secret\n", expect: "secret"},
		{in: "Bearer secret", expect: "secret"},
		{in: "bearer  secret", expect: "secret"},
	}
	for _, tc := range testCases {
		token, ok := AuthToken(WithAuthToken(ctx, tc.in))
		assert.True(t, ok, tc.in)
		assert.Equal(t, tc.expect, token, tc.in)
	}
}

func TestAuthToken_ProtocolKey(t *testing.T) {
	ctx := WithAuthToken(context.Background(), "secret")
	token, ok := ctx.Value(authorization.TokenKey).(*authorization.Token)
	if assert.True(t, ok) {
		assert.Equal(t, "secret", token.Token)
	}

	_, ok = AuthToken(context.WithValue(context.Background(), authorization.TokenKey, "raw"))
	assert.False(t, ok)
}
