package languages

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func NewLanguageRepository(db *bun.DB) repository.Repository[*Language] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Language]{
		NewRecord: func() *Language { return &Language{} },
		GetID: func(l *Language) uuid.UUID {
			return l.ID
		},
		SetID: func(l *Language, id uuid.UUID) {
			l.ID = id
		},
		GetIdentifier: func() string {
			return "code"
		},
		GetIdentifierValue: func(l *Language) string {
			return l.Code
		},
	})
}

func NewTreeNodeRepository(db *bun.DB) repository.Repository[*TreeNode] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*TreeNode]{
		NewRecord: func() *TreeNode { return &TreeNode{} },
		GetID: func(n *TreeNode) uuid.UUID {
			return n.ID
		},
		SetID: func(n *TreeNode, id uuid.UUID) {
			n.ID = id
		},
		GetIdentifier: func() string {
			return ""
		},
		GetIdentifierValue: func(*TreeNode) string {
			return ""
		},
	})
}
