// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"sort"
)

// MaxCategoryDepth is the deepest level a category tree may reach.
const MaxCategoryDepth = 3

// MenuCategory is a node of a restaurant-scoped category tree.
// The tree is stored flat on the restaurant; parents are referenced by id.
type MenuCategory struct {
	ID               string   `json:"id"`
	RestaurantID     string   `json:"restaurant_id"`
	CategoryName     string   `json:"category_name"`
	Description      string   `json:"description,omitempty"`
	ParentCategoryID *string  `json:"parent_category_id,omitempty"` // nil for a root
	Depth            int      `json:"depth"`                        // 1 ~ 3
	DisplayOrder     int      `json:"display_order"`
	IsActive         bool     `json:"is_active"`
	MenuIDs          []string `json:"menu_ids"`
	Audit
	SoftDelete
}

// AddMenu records menuID as a member. Duplicates and empty ids are ignored.
func (c *MenuCategory) AddMenu(menuID string) {
	if menuID == "" || slices.Contains(c.MenuIDs, menuID) {
		return
	}
	c.MenuIDs = append(c.MenuIDs, menuID)
}

// RemoveMenu drops menuID from the members.
func (c *MenuCategory) RemoveMenu(menuID string) {
	c.MenuIDs = slices.DeleteFunc(c.MenuIDs, func(id string) bool { return id == menuID })
}

// HasMenu reports whether menuID is a member.
func (c *MenuCategory) HasMenu(menuID string) bool {
	return slices.Contains(c.MenuIDs, menuID)
}

// Update changes the descriptive fields.
func (c *MenuCategory) Update(name, description string, displayOrder int, actor string) {
	c.CategoryName = name
	c.Description = description
	c.DisplayOrder = displayOrder
	c.touch(actor)
}

// SetActive toggles visibility.
func (c *MenuCategory) SetActive(active bool, actor string) {
	c.IsActive = active
	c.touch(actor)
}

// Delete soft-deletes the category and deactivates it.
func (c *MenuCategory) Delete(actor string) {
	c.markDeleted(actor)
	c.IsActive = false
}

// IsRoot reports whether the category is at the top of its tree.
func (c *MenuCategory) IsRoot() bool {
	return c.ParentCategoryID == nil || c.Depth == 1
}

// IsAvailable is active and not deleted.
func (c *MenuCategory) IsAvailable() bool {
	return c.IsActive && !c.IsDeleted
}

// MenuCategoryNode is a MenuCategory with its children resolved, for display.
type MenuCategoryNode struct {
	*MenuCategory
	Children []*MenuCategoryNode `json:"children,omitempty"`
}

// buildMenuCategoryTree nests the available categories by parent id, ordered by display order.
// A category whose parent is missing or unavailable is shown at the top level.
func buildMenuCategoryTree(categories []*MenuCategory) []*MenuCategoryNode {
	nodes := make(map[string]*MenuCategoryNode, len(categories))
	available := make([]*MenuCategory, 0, len(categories))
	for _, c := range categories {
		if !c.IsAvailable() {
			continue
		}
		available = append(available, c)
		nodes[c.ID] = &MenuCategoryNode{MenuCategory: c}
	}
	sort.SliceStable(available, func(i, j int) bool {
		return available[i].DisplayOrder < available[j].DisplayOrder
	})

	roots := make([]*MenuCategoryNode, 0)
	for _, c := range available {
		node := nodes[c.ID]
		if c.ParentCategoryID != nil {
			if parent, ok := nodes[*c.ParentCategoryID]; ok {
				parent.Children = append(parent.Children, node)

				continue
			}
		}
		roots = append(roots, node)
	}

	return roots
}
