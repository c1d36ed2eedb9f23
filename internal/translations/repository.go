package translations

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func NewRevisionRepository(db *bun.DB) repository.Repository[*Revision] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Revision]{
		NewRecord: func() *Revision { return &Revision{} },
		GetID: func(r *Revision) uuid.UUID {
			return r.ID
		},
		SetID: func(r *Revision, id uuid.UUID) {
			r.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(r *Revision) string {
			return r.Slug
		},
	})
}
