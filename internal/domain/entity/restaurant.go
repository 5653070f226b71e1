// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
	"time"

	domainerrors "catalog/internal/domain/errors"
)

// Restaurant is the aggregate root of the catalog. Menus, menu categories, operating
// days and restaurant-category relations are owned exclusively by one restaurant and
// reference it only by id.
type Restaurant struct {
	ID             string           `json:"id"`
	OwnerID        string           `json:"owner_id"`
	OwnerName      string           `json:"owner_name"`
	RestaurantName string           `json:"restaurant_name"`
	Status         RestaurantStatus `json:"status"`
	Address        *PostalAddress   `json:"address,omitempty"`
	Coordinate     *GeoCoordinate   `json:"coordinate,omitempty"`
	ContactNumber  string           `json:"contact_number,omitempty"`
	Tags           []string         `json:"tags"`
	IsActive       bool             `json:"is_active"`

	ViewCount     int64   `json:"view_count"`
	WishlistCount int64   `json:"wishlist_count"`
	ReviewCount   int64   `json:"review_count"`
	ReviewRating  float64 `json:"review_rating"`
	PurchaseCount int64   `json:"purchase_count"`

	Menus             []*Menu                       `json:"menus"`
	MenuCategories    []*MenuCategory               `json:"menu_categories"`
	OperatingDays     []*OperatingDay               `json:"operating_days"`
	CategoryRelations []*RestaurantCategoryRelation `json:"category_relations"`
	Audit
	SoftDelete
}

// RestaurantParams holds the input of NewRestaurant.
type RestaurantParams struct {
	OwnerID        string
	OwnerName      string
	RestaurantName string
	ContactNumber  string
	Address        *PostalAddress
	Coordinate     *GeoCoordinate
	Status         RestaurantStatus // defaults to OPEN
	Tags           []string
}

// NewRestaurant creates an active restaurant with a generated id.
func NewRestaurant(params RestaurantParams, actor string) (*Restaurant, error) {
	status := params.Status
	if status == "" {
		status = RestaurantStatusOpen
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidRestaurantStatus.WithDetails(string(status))
	}

	r := &Restaurant{
		ID:             NewID(RestaurantIDPrefix),
		OwnerID:        params.OwnerID,
		OwnerName:      params.OwnerName,
		RestaurantName: params.RestaurantName,
		Status:         status,
		Address:        params.Address,
		Coordinate:     params.Coordinate,
		ContactNumber:  params.ContactNumber,
		Tags:           []string{},
		IsActive:       true,
		Audit:          newAudit(actor),
	}
	for _, tag := range params.Tags {
		r.AddTag(tag)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate checks the mandatory fields of the aggregate.
func (r *Restaurant) Validate() error {
	if isBlank(r.RestaurantName) {
		return domainerrors.ErrRestaurantNameRequired
	}
	if isBlank(r.OwnerID) {
		return domainerrors.ErrOwnerRequired
	}
	if r.Address != nil && !r.Address.IsValid() {
		return domainerrors.ErrInvalidAddress
	}

	return nil
}

// IsOwnedBy reports whether ownerID owns the restaurant.
func (r *Restaurant) IsOwnedBy(ownerID string) bool {
	return ownerID != "" && r.OwnerID == ownerID
}

// ==================== basic info ====================

// UpdateBasicInfo changes the name and contact number.
func (r *Restaurant) UpdateBasicInfo(name, contactNumber, actor string) error {
	if isBlank(name) {
		return domainerrors.ErrRestaurantNameRequired
	}
	r.RestaurantName = name
	r.ContactNumber = contactNumber
	r.touch(actor)

	return nil
}

// UpdateAddress replaces the address. A nil address clears it.
func (r *Restaurant) UpdateAddress(address *PostalAddress, actor string) error {
	if address != nil && !address.IsValid() {
		return domainerrors.ErrInvalidAddress
	}
	r.Address = address
	r.touch(actor)

	return nil
}

// UpdateCoordinate replaces the coordinate. A nil coordinate clears it.
func (r *Restaurant) UpdateCoordinate(coordinate *GeoCoordinate, actor string) {
	r.Coordinate = coordinate
	r.touch(actor)
}

// ChangeStatus moves to any valid status.
func (r *Restaurant) ChangeStatus(status RestaurantStatus, actor string) error {
	if !status.IsValid() {
		return domainerrors.ErrInvalidRestaurantStatus.WithDetails(string(status))
	}
	r.Status = status
	r.touch(actor)

	return nil
}

// SetActive toggles the restaurant.
func (r *Restaurant) SetActive(active bool, actor string) {
	r.IsActive = active
	r.touch(actor)
}

// AddTag appends a non-blank tag that is not already present.
func (r *Restaurant) AddTag(tag string) {
	if isBlank(tag) || slices.Contains(r.Tags, tag) {
		return
	}
	r.Tags = append(r.Tags, tag)
}

// RemoveTag drops tag.
func (r *Restaurant) RemoveTag(tag string) {
	r.Tags = slices.DeleteFunc(r.Tags, func(t string) bool { return t == tag })
}

// ClearTags removes every tag.
func (r *Restaurant) ClearTags() {
	r.Tags = []string{}
}

// DistanceTo returns the distance in kilometers from the restaurant to point.
func (r *Restaurant) DistanceTo(point *GeoCoordinate) (float64, error) {
	return r.Coordinate.DistanceTo(point)
}

// MatchesKeyword does a case-insensitive search on name and tags.
func (r *Restaurant) MatchesKeyword(keyword string) bool {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.RestaurantName), keyword) {
		return true
	}

	return slices.ContainsFunc(r.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), keyword)
	})
}

// ==================== menu categories ====================

// MenuCategoryParams holds the input for adding a menu category.
type MenuCategoryParams struct {
	Name         string
	Description  string
	ParentID     *string
	DisplayOrder *int // defaults to the current category count
}

// AddMenuCategory adds a category to the restaurant tree. A parent id that matches no
// category creates a root without a parent. The resulting depth may not exceed MaxCategoryDepth.
func (r *Restaurant) AddMenuCategory(params MenuCategoryParams, actor string) (*MenuCategory, error) {
	if isBlank(params.Name) {
		return nil, domainerrors.ErrCategoryNameRequired
	}

	depth := 1
	var parentID *string
	if params.ParentID != nil {
		if parent := r.findMenuCategory(*params.ParentID); parent != nil {
			depth = parent.Depth + 1
			if depth > MaxCategoryDepth {
				return nil, domainerrors.ErrInvalidCategoryDepth
			}
			id := parent.ID
			parentID = &id
		}
	}

	order := len(r.MenuCategories)
	if params.DisplayOrder != nil {
		order = *params.DisplayOrder
	}
	category := &MenuCategory{
		ID:               NewID(MenuCategoryIDPrefix),
		RestaurantID:     r.ID,
		CategoryName:     params.Name,
		Description:      params.Description,
		ParentCategoryID: parentID,
		Depth:            depth,
		DisplayOrder:     order,
		IsActive:         true,
		MenuIDs:          []string{},
		Audit:            newAudit(actor),
	}
	r.MenuCategories = append(r.MenuCategories, category)

	return category, nil
}

func (r *Restaurant) findMenuCategory(categoryID string) *MenuCategory {
	for _, c := range r.MenuCategories {
		if c.ID == categoryID {
			return c
		}
	}

	return nil
}

// FindMenuCategory returns the category with id, deleted or not.
func (r *Restaurant) FindMenuCategory(categoryID string) (*MenuCategory, error) {
	if c := r.findMenuCategory(categoryID); c != nil {
		return c, nil
	}

	return nil, domainerrors.ErrCategoryNotFound.WithDetails(categoryID)
}

// findLiveMenuCategory is FindMenuCategory without soft-deleted categories.
func (r *Restaurant) findLiveMenuCategory(categoryID string) (*MenuCategory, error) {
	if c := r.findMenuCategory(categoryID); c != nil && !c.IsDeleted {
		return c, nil
	}

	return nil, domainerrors.ErrCategoryNotFound.WithDetails(categoryID)
}

// ActiveMenuCategories lists the available categories.
func (r *Restaurant) ActiveMenuCategories() []*MenuCategory {
	result := make([]*MenuCategory, 0, len(r.MenuCategories))
	for _, c := range r.MenuCategories {
		if c.IsAvailable() {
			result = append(result, c)
		}
	}

	return result
}

// MenuCategoryTree nests the available categories for display.
func (r *Restaurant) MenuCategoryTree() []*MenuCategoryNode {
	return buildMenuCategoryTree(r.MenuCategories)
}

// DeleteMenuCategory soft-deletes a category and every menu relation pointing at it.
func (r *Restaurant) DeleteMenuCategory(categoryID, actor string) error {
	category, err := r.FindMenuCategory(categoryID)
	if err != nil {
		return err
	}
	if category.IsDeleted {
		return nil
	}

	category.Delete(actor)
	for _, m := range r.Menus {
		m.RemoveCategory(categoryID, actor)
	}

	return nil
}

// ==================== menus ====================

// CanModifyMenu reports whether the current status allows menu changes.
func (r *Restaurant) CanModifyMenu() bool {
	return r.Status.CanModifyMenu()
}

// EnsureMenuModifiable fails while the restaurant is open.
func (r *Restaurant) EnsureMenuModifiable() error {
	if !r.CanModifyMenu() {
		return domainerrors.ErrCannotModifyMenuWhileOpen
	}

	return nil
}

// AddMenu creates a menu. Menus cannot be added while the restaurant is open.
func (r *Restaurant) AddMenu(params MenuParams, actor string) (*Menu, error) {
	if err := r.EnsureMenuModifiable(); err != nil {
		return nil, err
	}

	menu, err := newMenu(r.ID, params, actor)
	if err != nil {
		return nil, err
	}
	r.Menus = append(r.Menus, menu)

	return menu, nil
}

// FindMenuByID returns the menu with id, deleted or not.
func (r *Restaurant) FindMenuByID(menuID string) (*Menu, error) {
	for _, m := range r.Menus {
		if m.ID == menuID {
			return m, nil
		}
	}

	return nil, domainerrors.ErrMenuNotFound.WithDetails(menuID)
}

// RemoveMenu soft-deletes a menu and removes it from every menu category.
func (r *Restaurant) RemoveMenu(menuID, actor string) error {
	menu, err := r.FindMenuByID(menuID)
	if err != nil {
		return err
	}
	if err := menu.Delete(actor); err != nil {
		return err
	}
	for _, c := range r.MenuCategories {
		c.RemoveMenu(menuID)
	}

	return nil
}

// AddMenuToCategory links a menu to one of the restaurant's menu categories.
func (r *Restaurant) AddMenuToCategory(menuID, categoryID string, isPrimary bool, actor string) (*MenuCategoryRelation, error) {
	menu, err := r.FindMenuByID(menuID)
	if err != nil {
		return nil, err
	}
	category, err := r.findLiveMenuCategory(categoryID)
	if err != nil {
		return nil, err
	}

	relation := menu.AddCategory(categoryID, isPrimary, actor)
	category.AddMenu(menuID)

	return relation, nil
}

// ReconcileMenuCategories sets the categories of a menu to categoryIDs and keeps the
// category member lists in step. Every id must name a category of this restaurant.
func (r *Restaurant) ReconcileMenuCategories(menuID string, categoryIDs []string, primaryID, actor string) error {
	menu, err := r.FindMenuByID(menuID)
	if err != nil {
		return err
	}
	for _, id := range categoryIDs {
		if _, err := r.findLiveMenuCategory(id); err != nil {
			return err
		}
	}

	menu.ReconcileCategories(categoryIDs, primaryID, actor)
	for _, c := range r.MenuCategories {
		if menu.BelongsToCategory(c.ID) {
			c.AddMenu(menuID)
		} else {
			c.RemoveMenu(menuID)
		}
	}

	return nil
}

// AddOptionGroupToMenu adds an option group to a menu.
func (r *Restaurant) AddOptionGroupToMenu(menuID string, params OptionGroupParams, actor string) (*MenuOptionGroup, error) {
	menu, err := r.FindMenuByID(menuID)
	if err != nil {
		return nil, err
	}

	return menu.AddOptionGroup(params, actor)
}

// AddOptionToGroup adds an option to a group of a menu.
func (r *Restaurant) AddOptionToGroup(menuID, groupID string, params OptionParams, actor string) (*MenuOption, error) {
	menu, err := r.FindMenuByID(menuID)
	if err != nil {
		return nil, err
	}
	group, err := menu.FindOptionGroup(groupID)
	if err != nil {
		return nil, err
	}

	return group.AddOption(params, actor)
}

func (r *Restaurant) filterMenus(keep func(*Menu) bool) []*Menu {
	result := make([]*Menu, 0, len(r.Menus))
	for _, m := range r.Menus {
		if m.IsOrderable() && keep(m) {
			result = append(result, m)
		}
	}

	return result
}

// ActiveMenus lists the orderable menus.
func (r *Restaurant) ActiveMenus() []*Menu {
	return r.filterMenus(func(*Menu) bool { return true })
}

// ActiveMenuCount counts the orderable menus.
func (r *Restaurant) ActiveMenuCount() int {
	return len(r.ActiveMenus())
}

// MainMenus lists the orderable signature menus.
func (r *Restaurant) MainMenus() []*Menu {
	return r.filterMenus(func(m *Menu) bool { return m.IsMain })
}

// PopularMenus lists the orderable popular menus.
func (r *Restaurant) PopularMenus() []*Menu {
	return r.filterMenus(func(m *Menu) bool { return m.IsPopular })
}

// NewMenus lists the orderable new menus.
func (r *Restaurant) NewMenus() []*Menu {
	return r.filterMenus(func(m *Menu) bool { return m.IsNew })
}

// MenusByCategory lists the orderable menus linked to categoryID.
func (r *Restaurant) MenusByCategory(categoryID string) []*Menu {
	return r.filterMenus(func(m *Menu) bool { return m.BelongsToCategory(categoryID) })
}

// ==================== operating hours ====================

// SetOperatingDay stores a window, replacing any window with the same day and time type.
func (r *Restaurant) SetOperatingDay(params OperatingDayParams) (*OperatingDay, error) {
	day, err := NewOperatingDay(r.ID, params)
	if err != nil {
		return nil, err
	}
	r.replaceOperatingDay(day)

	return day, nil
}

func (r *Restaurant) replaceOperatingDay(day *OperatingDay) {
	key := day.Key()
	r.OperatingDays = slices.DeleteFunc(r.OperatingDays, func(d *OperatingDay) bool { return d.Key() == key })
	r.OperatingDays = append(r.OperatingDays, day)
}

// RemoveOperatingDay drops the window for the given day and time type.
func (r *Restaurant) RemoveOperatingDay(dayType DayType, timeType OperatingTimeType) error {
	if r.OperatingDayFor(dayType, timeType) == nil {
		return domainerrors.ErrOperatingDayNotFound
	}
	key := OperatingDayKey{DayType: dayType, TimeType: timeType}
	r.OperatingDays = slices.DeleteFunc(r.OperatingDays, func(d *OperatingDay) bool { return d.Key() == key })

	return nil
}

// SetBreakTime sets the break of the regular window of dayType.
func (r *Restaurant) SetBreakTime(dayType DayType, start, end TimeOfDay) error {
	day := r.OperatingDayFor(dayType, TimeTypeRegular)
	if day == nil {
		return domainerrors.ErrOperatingDayNotFound
	}
	updated, err := day.withBreak(start, end)
	if err != nil {
		return err
	}
	r.replaceOperatingDay(updated)

	return nil
}

// OperatingDayFor returns the window for the given day and time type, or nil.
func (r *Restaurant) OperatingDayFor(dayType DayType, timeType OperatingTimeType) *OperatingDay {
	for _, d := range r.OperatingDays {
		if d.DayType == dayType && d.TimeType == timeType {
			return d
		}
	}

	return nil
}

// IsOpenAt is true when the status is OPEN and any window is open at t.
func (r *Restaurant) IsOpenAt(t time.Time) bool {
	if r.Status != RestaurantStatusOpen {
		return false
	}

	return slices.ContainsFunc(r.OperatingDays, func(d *OperatingDay) bool { return d.IsOpenAt(t) })
}

// IsOpenNow evaluates IsOpenAt with the local clock.
func (r *Restaurant) IsOpenNow() bool {
	return r.IsOpenAt(now())
}

// CanAcceptOrderAt is true for an active, undeleted restaurant that is open at t.
func (r *Restaurant) CanAcceptOrderAt(t time.Time) bool {
	return r.IsActive && !r.IsDeleted && r.Status.CanAcceptOrder() && r.IsOpenAt(t)
}

// CanAcceptOrder evaluates CanAcceptOrderAt with the local clock.
func (r *Restaurant) CanAcceptOrder() bool {
	return r.CanAcceptOrderAt(now())
}

// ==================== restaurant categories ====================

// AddCategory links the restaurant to a shared category.
func (r *Restaurant) AddCategory(categoryID string, isPrimary bool, actor string) *RestaurantCategoryRelation {
	relation, relations := addCategoryLink(r.CategoryRelations, categoryID, isPrimary, actor, func() *RestaurantCategoryRelation {
		return &RestaurantCategoryRelation{
			RestaurantID: r.ID,
			CategoryLink: newCategoryLink(categoryID, isPrimary, actor),
		}
	})
	r.CategoryRelations = relations

	return relation
}

// RemoveCategory soft-deletes the link to categoryID.
func (r *Restaurant) RemoveCategory(categoryID, actor string) bool {
	return removeCategoryLink(r.CategoryRelations, categoryID, actor)
}

// ReconcileCategories makes the active links equal to categoryIDs, with primaryID as primary.
func (r *Restaurant) ReconcileCategories(categoryIDs []string, primaryID, actor string) {
	r.CategoryRelations = reconcileCategoryLinks(r.CategoryRelations, categoryIDs, primaryID, actor, func(categoryID string) *RestaurantCategoryRelation {
		return &RestaurantCategoryRelation{
			RestaurantID: r.ID,
			CategoryLink: newCategoryLink(categoryID, false, actor),
		}
	})
}

// ActiveCategoryIDs lists the shared categories the restaurant belongs to.
func (r *Restaurant) ActiveCategoryIDs() []string {
	return activeCategoryIDs(r.CategoryRelations)
}

// PrimaryCategoryID returns the active primary category, or "".
func (r *Restaurant) PrimaryCategoryID() string {
	return primaryCategoryID(r.CategoryRelations)
}

// ==================== statistics ====================

// IncrementViewCount counts one detail view.
func (r *Restaurant) IncrementViewCount() {
	r.ViewCount++
}

// IncrementWishlistCount counts one wishlist add.
func (r *Restaurant) IncrementWishlistCount() {
	r.WishlistCount++
}

// DecrementWishlistCount counts one wishlist removal, never below zero.
func (r *Restaurant) DecrementWishlistCount() {
	if r.WishlistCount > 0 {
		r.WishlistCount--
	}
}

// IncrementPurchaseCount counts one completed order.
func (r *Restaurant) IncrementPurchaseCount() {
	r.PurchaseCount++
}

// UpdateReviewStats overwrites the review aggregates.
func (r *Restaurant) UpdateReviewStats(reviewCount int64, rating float64) {
	r.ReviewCount = reviewCount
	r.ReviewRating = rating
}

// AddReview folds a new rating into the running average.
func (r *Restaurant) AddReview(rating float64) error {
	next, err := nextReviewAverage(r.ReviewRating, r.ReviewCount, rating)
	if err != nil {
		return err
	}
	r.UpdateReviewStats(r.ReviewCount+1, next)

	return nil
}

// ==================== lifecycle ====================

// Delete soft-deletes the restaurant, deactivates and closes it, and cascades the delete
// to every menu not yet deleted, every menu category and every category relation.
func (r *Restaurant) Delete(actor string) error {
	if r.IsDeleted {
		return domainerrors.ErrRestaurantAlreadyDeleted.WithDetails(r.ID)
	}

	r.markDeleted(actor)
	r.IsActive = false
	r.Status = RestaurantStatusClosed
	for _, m := range r.Menus {
		if m.IsDeleted {
			continue
		}
		if err := m.Delete(actor); err != nil {
			return err
		}
	}
	for _, c := range r.MenuCategories {
		if !c.IsDeleted {
			c.Delete(actor)
		}
	}
	for _, rel := range r.CategoryRelations {
		if rel.IsActive() {
			rel.Delete(actor)
		}
	}

	return nil
}

// Restore clears the deleted flags and reactivates the restaurant.
// Children deleted by the cascade stay deleted; they are restored one by one.
func (r *Restaurant) Restore(actor string) {
	r.clearDeleted()
	r.IsActive = true
	r.touch(actor)
}
