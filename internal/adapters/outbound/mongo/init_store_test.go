package mongo

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/MetaFrench/atlas-web-graphql/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestInitStore_Initialize(t *testing.T) {
	logger := log.New(io.Discard, "", 0)

	tests := map[string]struct {
		init      *InitStore
		expectErr bool
	}{
		"other-backend-selected": {
			init: &InitStore{
				Logger:       logger,
				StoreBackend: "postgres",
				URI:          "mongodb://unused:27017",
			},
		},
		"invalid-uri": {
			init: &InitStore{
				Logger:         logger,
				StoreBackend:   Backend,
				URI:            "not-a-mongo-uri",
				Database:       "atlas",
				ConnectTimeout: time.Second,
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			depend.ClearContainer()

			_, err := tt.init.Initialize(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Nil(t, tt.init.client)

			_, err = depend.Resolve[domain.ProjectRepository]()
			assert.Error(t, err)
		})
	}
}

func TestInitStore_Close_WithoutClient(t *testing.T) {
	is := &InitStore{Logger: log.New(io.Discard, "", 0)}
	assert.NotPanics(t, is.Close)
}
