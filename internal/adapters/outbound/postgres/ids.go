package postgres

import (
	"github.com/MetaFrench/atlas-web-graphql/internal/domain"
	"github.com/google/uuid"
)

// parseID validates a textual identifier before it reaches a uuid column.
func parseID(entity, id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, domain.NewInvalidIDErr(entity, id)
	}
	return uid, nil
}
