package domain

import (
	"fmt"
	"time"
)

type RefKind string

const (
	RefCatalog RefKind = "catalog"
	RefCustom  RefKind = "custom"
)

// OptionRef identifies the chosen option for a category. Catalog options and
// custom options share no identifier space, so the reference carries an
// explicit discriminator instead of a bare id.
type OptionRef struct {
	Kind RefKind `json:"type"`
	ID   int64   `json:"id"`
}

func CatalogRef(id int64) OptionRef { return OptionRef{Kind: RefCatalog, ID: id} }
func CustomRef(id int64) OptionRef  { return OptionRef{Kind: RefCustom, ID: id} }

func (r OptionRef) Valid() bool {
	return r.ID > 0 && (r.Kind == RefCatalog || r.Kind == RefCustom)
}

func (r OptionRef) String() string {
	return fmt.Sprintf("%s:%d", r.Kind, r.ID)
}

// Selection is the recorded choice for one category on one apartment. At
// most one selection exists per (apartment, category); a new choice replaces
// the prior one. Price is nil while the apartment is still editable and is
// snapshotted from the referenced option when the apartment is committed.
type Selection struct {
	ID          int64     `json:"id"`
	ApartmentID int64     `json:"apartment_id"`
	CategoryID  int64     `json:"category_id"`
	Ref         OptionRef `json:"ref"`
	Price       *float64  `json:"price,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
