package app

import (
	"context"
	"fmt"

	"github.com/MetaFrench/atlas-web-graphql/internal/adapters/outbound/mongo"
	"github.com/MetaFrench/atlas-web-graphql/internal/adapters/outbound/postgres"
)

// InitStoreBackend rejects a STORE_BACKEND that no store initializer answers to.
// It runs before the stores, which silently skip backends that are not theirs.
type InitStoreBackend struct {
	StoreBackend string `config:"STORE_BACKEND" default:"mongo"`
}

// Initialize fails start-up for unknown backends.
func (i InitStoreBackend) Initialize(ctx context.Context) (context.Context, error) {
	switch i.StoreBackend {
	case mongo.Backend, postgres.Backend:
		return ctx, nil
	default:
		return ctx, fmt.Errorf("unknown STORE_BACKEND %q: expected %q or %q", i.StoreBackend, mongo.Backend, postgres.Backend)
	}
}
