// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"slices"
	"strings"

	domainerrors "catalog/internal/domain/errors"
)

// Menu is a sellable item of a restaurant. It owns its option groups and category relations.
type Menu struct {
	ID                string                  `json:"id"`
	RestaurantID      string                  `json:"restaurant_id"`
	MenuName          string                  `json:"menu_name"`
	Description       string                  `json:"description,omitempty"`
	Ingredients       *string                 `json:"ingredients,omitempty"`
	Price             int64                   `json:"price"` // won
	Calorie           *int                    `json:"calorie,omitempty"`
	IsAvailable       bool                    `json:"is_available"`
	IsMain            bool                    `json:"is_main"`
	IsPopular         bool                    `json:"is_popular"`
	IsNew             bool                    `json:"is_new"`
	PurchaseCount     int64                   `json:"purchase_count"`
	WishlistCount     int64                   `json:"wishlist_count"`
	ReviewCount       int64                   `json:"review_count"`
	ReviewRating      float64                 `json:"review_rating"`
	CategoryRelations []*MenuCategoryRelation `json:"category_relations"`
	OptionGroups      []*MenuOptionGroup      `json:"option_groups"`
	Audit
	SoftDelete
}

// MenuParams holds the input for creating a menu.
type MenuParams struct {
	MenuName    string
	Description string
	Price       *int64
	Ingredients *string
	Calorie     *int
}

// MenuUpdate holds the full set of editable menu details.
type MenuUpdate struct {
	MenuName    string
	Description string
	Ingredients *string
	Price       int64
	Calorie     *int
}

func newMenu(restaurantID string, params MenuParams, actor string) (*Menu, error) {
	if isBlank(params.MenuName) {
		return nil, domainerrors.ErrMenuNameRequired
	}
	if params.Price == nil {
		return nil, domainerrors.ErrMenuPriceRequired
	}

	menu := &Menu{
		ID:           NewID(MenuIDPrefix),
		RestaurantID: restaurantID,
		MenuName:     params.MenuName,
		Description:  params.Description,
		Ingredients:  params.Ingredients,
		Price:        *params.Price,
		Calorie:      params.Calorie,
		IsAvailable:  true,
		Audit:        newAudit(actor),
	}
	if err := menu.Validate(); err != nil {
		return nil, err
	}

	return menu, nil
}

// Validate checks the name and price.
func (m *Menu) Validate() error {
	if isBlank(m.MenuName) {
		return domainerrors.ErrMenuNameRequired
	}
	if m.Price < 0 {
		return domainerrors.ErrInvalidMenuPrice
	}

	return nil
}

// SetPrice rejects a negative price before assigning.
func (m *Menu) SetPrice(price int64) error {
	if price < 0 {
		return domainerrors.ErrInvalidMenuPrice
	}
	m.Price = price

	return nil
}

// Update replaces the menu details. Nothing changes when validation fails.
func (m *Menu) Update(update MenuUpdate, actor string) error {
	if isBlank(update.MenuName) {
		return domainerrors.ErrMenuNameRequired
	}
	if err := m.SetPrice(update.Price); err != nil {
		return err
	}
	m.MenuName = update.MenuName
	m.Description = update.Description
	m.Ingredients = update.Ingredients
	m.Calorie = update.Calorie
	m.touch(actor)

	return nil
}

// SetAvailable toggles whether the menu can be sold.
func (m *Menu) SetAvailable(available bool, actor string) {
	m.IsAvailable = available
	m.touch(actor)
}

// SetMain flags the menu as a signature dish.
func (m *Menu) SetMain(isMain bool, actor string) {
	m.IsMain = isMain
	m.touch(actor)
}

// SetPopular flags the menu as popular.
func (m *Menu) SetPopular(isPopular bool, actor string) {
	m.IsPopular = isPopular
	m.touch(actor)
}

// SetNew flags the menu as new.
func (m *Menu) SetNew(isNew bool, actor string) {
	m.IsNew = isNew
	m.touch(actor)
}

// AddCategory links the menu to categoryID. An active link is updated in place;
// promoting to primary demotes the previous primary.
func (m *Menu) AddCategory(categoryID string, isPrimary bool, actor string) *MenuCategoryRelation {
	relation, relations := addCategoryLink(m.CategoryRelations, categoryID, isPrimary, actor, func() *MenuCategoryRelation {
		return &MenuCategoryRelation{
			MenuID:       m.ID,
			RestaurantID: m.RestaurantID,
			CategoryLink: newCategoryLink(categoryID, isPrimary, actor),
		}
	})
	m.CategoryRelations = relations

	return relation
}

// RemoveCategory soft-deletes the link to categoryID.
func (m *Menu) RemoveCategory(categoryID, actor string) bool {
	return removeCategoryLink(m.CategoryRelations, categoryID, actor)
}

// ReconcileCategories makes the active links equal to categoryIDs, with primaryID as primary.
func (m *Menu) ReconcileCategories(categoryIDs []string, primaryID, actor string) {
	m.CategoryRelations = reconcileCategoryLinks(m.CategoryRelations, categoryIDs, primaryID, actor, func(categoryID string) *MenuCategoryRelation {
		return &MenuCategoryRelation{
			MenuID:       m.ID,
			RestaurantID: m.RestaurantID,
			CategoryLink: newCategoryLink(categoryID, false, actor),
		}
	})
}

// PrimaryCategoryID returns the active primary category, or "".
func (m *Menu) PrimaryCategoryID() string {
	return primaryCategoryID(m.CategoryRelations)
}

// ActiveCategoryIDs lists the categories the menu currently belongs to.
func (m *Menu) ActiveCategoryIDs() []string {
	return activeCategoryIDs(m.CategoryRelations)
}

// ActiveCategoryCount counts the active links.
func (m *Menu) ActiveCategoryCount() int {
	return len(m.ActiveCategoryIDs())
}

// BelongsToCategory reports whether an active link to categoryID exists.
func (m *Menu) BelongsToCategory(categoryID string) bool {
	return slices.Contains(m.ActiveCategoryIDs(), categoryID)
}

// AddOptionGroup validates the selection rule and appends a new group.
func (m *Menu) AddOptionGroup(params OptionGroupParams, actor string) (*MenuOptionGroup, error) {
	if isBlank(params.GroupName) {
		return nil, domainerrors.ErrOptionGroupNameRequired
	}

	group := &MenuOptionGroup{
		ID:           NewID(OptionGroupIDPrefix),
		MenuID:       m.ID,
		RestaurantID: m.RestaurantID,
		GroupName:    params.GroupName,
		Description:  params.Description,
		IsRequired:   params.IsRequired,
		MinSelection: params.MinSelection,
		MaxSelection: params.MaxSelection,
		DisplayOrder: len(m.OptionGroups),
		IsActive:     true,
		Audit:        newAudit(actor),
	}
	if err := group.ValidateSelectionRule(); err != nil {
		return nil, err
	}
	m.OptionGroups = append(m.OptionGroups, group)

	return group, nil
}

// FindOptionGroup returns the group with id, deleted or not.
func (m *Menu) FindOptionGroup(groupID string) (*MenuOptionGroup, error) {
	for _, g := range m.OptionGroups {
		if g.ID == groupID {
			return g, nil
		}
	}

	return nil, domainerrors.ErrOptionGroupNotFound.WithDetails(groupID)
}

// RemoveOptionGroup soft-deletes a group and its options.
func (m *Menu) RemoveOptionGroup(groupID, actor string) error {
	group, err := m.FindOptionGroup(groupID)
	if err != nil {
		return err
	}
	group.Delete(actor)

	return nil
}

// ActiveOptionGroups lists the groups shown to customers.
func (m *Menu) ActiveOptionGroups() []*MenuOptionGroup {
	result := make([]*MenuOptionGroup, 0, len(m.OptionGroups))
	for _, g := range m.OptionGroups {
		if g.IsAvailable() {
			result = append(result, g)
		}
	}

	return result
}

// HasRequiredOptions reports whether an available group must be chosen from.
func (m *Menu) HasRequiredOptions() bool {
	for _, g := range m.OptionGroups {
		if g.IsRequired && g.IsAvailable() {
			return true
		}
	}

	return false
}

// ValidateSelection checks a full set of chosen option ids against every active group.
func (m *Menu) ValidateSelection(optionIDs []string) error {
	known := make(map[string]struct{})
	for _, g := range m.ActiveOptionGroups() {
		for _, o := range g.Options {
			known[o.ID] = struct{}{}
		}
		if err := g.ValidateSelection(optionIDs); err != nil {
			return err
		}
	}
	for _, id := range optionIDs {
		if _, ok := known[id]; !ok {
			return domainerrors.ErrOptionNotFound.WithDetails(id)
		}
	}

	return nil
}

// IsOrderable is available and not deleted.
func (m *Menu) IsOrderable() bool {
	return m.IsAvailable && !m.IsDeleted
}

// MatchesKeyword does a case-insensitive search on name and description.
func (m *Menu) MatchesKeyword(keyword string) bool {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return true
	}

	return strings.Contains(strings.ToLower(m.MenuName), keyword) ||
		strings.Contains(strings.ToLower(m.Description), keyword)
}

// Delete soft-deletes the menu, takes it off sale and cascades to its option groups,
// their options and its category relations.
func (m *Menu) Delete(actor string) error {
	if m.IsDeleted {
		return domainerrors.ErrMenuAlreadyDeleted.WithDetails(m.ID)
	}

	m.markDeleted(actor)
	m.IsAvailable = false
	for _, g := range m.OptionGroups {
		if !g.IsDeleted {
			g.Delete(actor)
		}
	}
	for _, r := range m.CategoryRelations {
		if r.IsActive() {
			r.Delete(actor)
		}
	}

	return nil
}

// Restore clears the deleted flags of the menu itself. Children stay deleted.
func (m *Menu) Restore(actor string) {
	m.clearDeleted()
	m.touch(actor)
}

// IncrementPurchaseCount adds quantity sales.
func (m *Menu) IncrementPurchaseCount(quantity int64) {
	if quantity > 0 {
		m.PurchaseCount += quantity
	}
}

// IncrementWishlistCount counts one wishlist add.
func (m *Menu) IncrementWishlistCount() {
	m.WishlistCount++
}

// DecrementWishlistCount counts one wishlist removal, never below zero.
func (m *Menu) DecrementWishlistCount() {
	if m.WishlistCount > 0 {
		m.WishlistCount--
	}
}

// UpdateReviewStats overwrites the review aggregates.
func (m *Menu) UpdateReviewStats(reviewCount int64, rating float64) {
	m.ReviewCount = reviewCount
	m.ReviewRating = rating
}

// AddReview folds a new rating into the running average.
func (m *Menu) AddReview(rating float64) error {
	next, err := nextReviewAverage(m.ReviewRating, m.ReviewCount, rating)
	if err != nil {
		return err
	}
	m.UpdateReviewStats(m.ReviewCount+1, next)

	return nil
}

// nextReviewAverage computes (avg*n + r)/(n+1) rounded half-up to two decimals.
func nextReviewAverage(average float64, count int64, rating float64) (float64, error) {
	if math.IsNaN(rating) || rating < 0 || rating > 5 {
		return 0, domainerrors.ErrInvalidReviewRating
	}
	if count <= 0 {
		return roundRating(rating), nil
	}
	total := average*float64(count) + rating

	return roundRating(total / float64(count+1)), nil
}

func roundRating(v float64) float64 {
	return math.Floor(v*100+0.5+1e-9) / 100
}
