// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// now is swapped in tests that need a fixed clock.
var now = time.Now

// Audit carries creation and modification stamps.
type Audit struct {
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `json:"updated_by,omitempty"`
}

func newAudit(actor string) Audit {
	ts := now()

	return Audit{CreatedAt: ts, CreatedBy: actor, UpdatedAt: ts, UpdatedBy: actor}
}

func (a *Audit) touch(actor string) {
	a.UpdatedAt = now()
	a.UpdatedBy = actor
}

// SoftDelete carries the soft-delete flags. Records are never physically removed.
type SoftDelete struct {
	IsDeleted bool       `json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	DeletedBy string     `json:"deleted_by,omitempty"`
}

func (s *SoftDelete) markDeleted(actor string) {
	ts := now()
	s.IsDeleted = true
	s.DeletedAt = &ts
	s.DeletedBy = actor
}

func (s *SoftDelete) clearDeleted() {
	s.IsDeleted = false
	s.DeletedAt = nil
	s.DeletedBy = ""
}

// ID prefixes for generated identifiers.
const (
	RestaurantIDPrefix         = "REST-"
	MenuIDPrefix               = "MENU-"
	MenuCategoryIDPrefix       = "CAT-"
	OptionGroupIDPrefix        = "OPTG-"
	OptionIDPrefix             = "OPT-"
	RestaurantCategoryIDPrefix = "RCAT-"
)

// NewID returns prefix followed by the first 8 uppercase characters of a random UUID.
func NewID(prefix string) string {
	return prefix + strings.ToUpper(uuid.NewString()[:8])
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
