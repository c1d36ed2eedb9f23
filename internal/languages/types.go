package languages

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Language represents a globally known language. Regions reference languages
// through tree nodes; the language record itself carries no region state.
type Language struct {
	bun.BaseModel `bun:"table:languages,alias:lang"`

	ID         uuid.UUID `bun:",pk,type:uuid"        json:"id"`
	Code       string    `bun:"code,notnull"         json:"code"`
	Display    string    `bun:"display_name,notnull" json:"display_name"`
	NativeName *string   `bun:"native_name"          json:"native_name,omitempty"`
	CreatedAt  time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}

// TreeNode places one language inside one region's language tree. The node
// without a parent is the region's default language and the root of the tree.
type TreeNode struct {
	bun.BaseModel `bun:"table:language_tree_nodes,alias:ltn"`

	ID           uuid.UUID  `bun:",pk,type:uuid"            json:"id"`
	RegionID     uuid.UUID  `bun:"region_id,notnull,type:uuid" json:"region_id"`
	LanguageID   uuid.UUID  `bun:"language_id,notnull,type:uuid" json:"language_id"`
	LanguageCode string     `bun:"language_code,notnull"    json:"language_code"`
	ParentID     *uuid.UUID `bun:"parent_id,type:uuid,nullzero" json:"parent_id,omitempty"`
	Visible      bool       `bun:"visible,notnull,default:true" json:"visible"`
	Active       bool       `bun:"active,notnull,default:true"  json:"active"`
	CreatedAt    time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Language *Language `bun:"rel:belongs-to,join:language_id=id" json:"language,omitempty"`
	Parent   *TreeNode `bun:"rel:belongs-to,join:parent_id=id"   json:"parent,omitempty"`
}

// IsRoot reports whether the node is the region's default language.
func (n *TreeNode) IsRoot() bool {
	return n != nil && n.ParentID == nil
}
