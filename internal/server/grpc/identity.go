package grpc

import (
	"context"

	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/server/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

func withClaims(ctx context.Context, c *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func claimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*auth.Claims)
	return c, ok && c != nil
}

// UserIDFromContext returns the id of the caller verified by the access
// token interceptor.
func UserIDFromContext(ctx context.Context) (string, bool) {
	c, ok := claimsFromContext(ctx)
	if !ok || c.UserID == "" {
		return "", false
	}
	return c.UserID, true
}

// RolesFromContext returns the caller's roles, nil for anonymous calls.
func RolesFromContext(ctx context.Context) []string {
	c, ok := claimsFromContext(ctx)
	if !ok {
		return nil
	}
	return c.Roles
}

func isAdmin(ctx context.Context) bool {
	c, ok := claimsFromContext(ctx)
	return ok && c.HasRole(common.RoleAdmin)
}
