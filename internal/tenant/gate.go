package tenant

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/MikeMC777/erp-lite/internal/apperr"
	"github.com/MikeMC777/erp-lite/internal/auth"
)

const StepVerifyTenant = "verify_tenant"

// Gate resolves the caller behind a credential and checks that the caller
// belongs to the business being touched.
type Gate struct {
	identities auth.Resolver
	directory  Directory
	log        *zap.Logger
}

func NewGate(identities auth.Resolver, directory Directory, log *zap.Logger) *Gate {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gate{identities: identities, directory: directory, log: log}
}

// Caller resolves the identity only.
func (g *Gate) Caller(ctx context.Context, credential string) (auth.Identity, error) {
	id, err := g.identities.Resolve(ctx, credential)
	if err != nil {
		g.log.Warn("identity not resolved", zap.Error(err))
		return auth.Identity{}, apperr.Unauthorized(err)
	}
	return id, nil
}

// Enter resolves the caller and checks membership of businessID.
func (g *Gate) Enter(ctx context.Context, credential, businessID string) (auth.Identity, error) {
	id, err := g.Caller(ctx, credential)
	if err != nil {
		return auth.Identity{}, err
	}
	ok, err := g.directory.IsMember(ctx, strings.TrimSpace(businessID), id.UserID)
	if err != nil {
		g.log.Error("membership lookup failed",
			zap.String("business_id", businessID), zap.String("user_id", id.UserID), zap.Error(err))
		return auth.Identity{}, apperr.Persistence(StepVerifyTenant, "Failed to verify business access", err)
	}
	if !ok {
		g.log.Warn("cross-tenant access rejected",
			zap.String("business_id", businessID), zap.String("user_id", id.UserID))
		return auth.Identity{}, apperr.Forbidden("Access to this business is not allowed")
	}
	return id, nil
}
