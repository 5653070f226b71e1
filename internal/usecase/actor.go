// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"slices"

	"catalog/internal/domain/entity"
)

// Actor is the authenticated caller of a command.
type Actor struct {
	ID    string
	Roles []string
}

// HasRole reports whether the actor carries role.
func (a Actor) HasRole(role entity.Role) bool {
	return slices.Contains(a.Roles, role.String())
}

// IsAdmin reports whether the actor may bypass ownership checks.
func (a Actor) IsAdmin() bool {
	return a.HasRole(entity.RoleAdmin)
}

// AuditName is the value written to created_by / updated_by / deleted_by.
func (a Actor) AuditName() string {
	switch {
	case a.ID == "":
		return "SYSTEM"
	case a.IsAdmin():
		return "ADMIN_" + a.ID
	default:
		return "OWNER_" + a.ID
	}
}

// PageRequest is a zero-based page request coming from the delivery layer.
type PageRequest struct {
	Page int
	Size int
}

// PageResult is one page of items with the total count.
type PageResult[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// NewPageResult computes the page count for total items.
func NewPageResult[T any](items []T, page PageRequest, total int64) *PageResult[T] {
	totalPages := 0
	if page.Size > 0 {
		totalPages = int((total + int64(page.Size) - 1) / int64(page.Size))
	}
	if items == nil {
		items = []T{}
	}

	return &PageResult[T]{
		Items:      items,
		Page:       page.Page,
		Size:       page.Size,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
