// Package entity contains the core business objects of the project.
package entity

// CategoryLink is the state shared by every membership relation between an owner
// (a menu or a restaurant) and a category. A relation has its own soft-delete lifecycle;
// deleting it never touches either endpoint.
type CategoryLink struct {
	CategoryID string `json:"category_id"`
	IsPrimary  bool   `json:"is_primary"`
	Audit
	SoftDelete
}

func newCategoryLink(categoryID string, isPrimary bool, actor string) CategoryLink {
	return CategoryLink{CategoryID: categoryID, IsPrimary: isPrimary, Audit: newAudit(actor)}
}

func (l *CategoryLink) link() *CategoryLink {
	return l
}

// IsActive reports whether the relation is not soft-deleted.
func (l *CategoryLink) IsActive() bool {
	return !l.IsDeleted
}

// UpdatePrimary changes the primary flag.
func (l *CategoryLink) UpdatePrimary(isPrimary bool, actor string) {
	l.IsPrimary = isPrimary
	l.touch(actor)
}

// Delete soft-deletes the relation.
func (l *CategoryLink) Delete(actor string) {
	l.markDeleted(actor)
	l.touch(actor)
}

// Restore reactivates a soft-deleted relation.
func (l *CategoryLink) Restore(actor string) {
	l.clearDeleted()
	l.touch(actor)
}

// MenuCategoryRelationKey is the identity of a menu relation.
type MenuCategoryRelationKey struct {
	MenuID     string
	CategoryID string
}

// MenuCategoryRelation links a menu to one of its restaurant's menu categories.
type MenuCategoryRelation struct {
	MenuID       string `json:"menu_id"`
	RestaurantID string `json:"restaurant_id"`
	CategoryLink
}

// Key returns the (menu, category) identity.
func (r *MenuCategoryRelation) Key() MenuCategoryRelationKey {
	return MenuCategoryRelationKey{MenuID: r.MenuID, CategoryID: r.CategoryID}
}

// RestaurantCategoryRelationKey is the identity of a restaurant relation.
type RestaurantCategoryRelationKey struct {
	RestaurantID string
	CategoryID   string
}

// RestaurantCategoryRelation links a restaurant to a shared restaurant category.
type RestaurantCategoryRelation struct {
	RestaurantID string `json:"restaurant_id"`
	CategoryLink
}

// Key returns the (restaurant, category) identity.
func (r *RestaurantCategoryRelation) Key() RestaurantCategoryRelationKey {
	return RestaurantCategoryRelationKey{RestaurantID: r.RestaurantID, CategoryID: r.CategoryID}
}

type categoryLinker interface {
	link() *CategoryLink
}

// addCategoryLink updates an active relation to categoryID in place, or reactivates a
// soft-deleted one, or creates a new one. Promoting to primary demotes every other
// active primary first, so at most one active relation is primary.
func addCategoryLink[R categoryLinker](relations []R, categoryID string, isPrimary bool, actor string, create func() R) (R, []R) {
	var active, deleted R
	var hasActive, hasDeleted bool
	for _, rel := range relations {
		l := rel.link()
		if l.CategoryID != categoryID {
			continue
		}
		if l.IsActive() && !hasActive {
			active, hasActive = rel, true
		} else if !l.IsActive() && !hasDeleted {
			deleted, hasDeleted = rel, true
		}
	}

	if isPrimary {
		demotePrimaries(relations, categoryID, actor)
	}

	switch {
	case hasActive:
		active.link().UpdatePrimary(isPrimary, actor)

		return active, relations
	case hasDeleted:
		deleted.link().Restore(actor)
		deleted.link().UpdatePrimary(isPrimary, actor)

		return deleted, relations
	default:
		created := create()

		return created, append(relations, created)
	}
}

func demotePrimaries[R categoryLinker](relations []R, exceptCategoryID string, actor string) {
	for _, rel := range relations {
		l := rel.link()
		if l.IsActive() && l.IsPrimary && l.CategoryID != exceptCategoryID {
			l.UpdatePrimary(false, actor)
		}
	}
}

// removeCategoryLink soft-deletes every active relation to categoryID and reports whether any existed.
func removeCategoryLink[R categoryLinker](relations []R, categoryID string, actor string) bool {
	removed := false
	for _, rel := range relations {
		l := rel.link()
		if l.CategoryID == categoryID && l.IsActive() {
			l.Delete(actor)
			removed = true
		}
	}

	return removed
}

// reconcileCategoryLinks makes the active relation set equal to targetIDs.
// Unwanted relations are soft-deleted; wanted ones are reactivated when a deleted
// relation exists and created otherwise. When primaryID is part of the target it
// becomes the only active primary. Running it twice with the same input is a no-op
// the second time.
func reconcileCategoryLinks[R categoryLinker](relations []R, targetIDs []string, primaryID string, actor string, create func(categoryID string) R) []R {
	wanted := make(map[string]struct{}, len(targetIDs))
	ordered := make([]string, 0, len(targetIDs))
	for _, id := range targetIDs {
		if id == "" {
			continue
		}
		if _, dup := wanted[id]; dup {
			continue
		}
		wanted[id] = struct{}{}
		ordered = append(ordered, id)
	}

	active := make(map[string]struct{})
	for _, rel := range relations {
		l := rel.link()
		if !l.IsActive() {
			continue
		}
		if _, keep := wanted[l.CategoryID]; !keep {
			l.Delete(actor)

			continue
		}
		active[l.CategoryID] = struct{}{}
	}

	for _, id := range ordered {
		if _, ok := active[id]; ok {
			continue
		}
		reactivated := false
		for _, rel := range relations {
			l := rel.link()
			if l.CategoryID == id && !l.IsActive() {
				l.Restore(actor)
				l.UpdatePrimary(false, actor)
				reactivated = true

				break
			}
		}
		if !reactivated {
			relations = append(relations, create(id))
		}
	}

	if _, ok := wanted[primaryID]; ok {
		for _, rel := range relations {
			l := rel.link()
			if !l.IsActive() {
				continue
			}
			shouldBePrimary := l.CategoryID == primaryID
			if l.IsPrimary != shouldBePrimary {
				l.UpdatePrimary(shouldBePrimary, actor)
			}
		}
	}

	return relations
}

func activeCategoryIDs[R categoryLinker](relations []R) []string {
	ids := make([]string, 0, len(relations))
	for _, rel := range relations {
		if l := rel.link(); l.IsActive() {
			ids = append(ids, l.CategoryID)
		}
	}

	return ids
}

func primaryCategoryID[R categoryLinker](relations []R) string {
	for _, rel := range relations {
		if l := rel.link(); l.IsActive() && l.IsPrimary {
			return l.CategoryID
		}
	}

	return ""
}
