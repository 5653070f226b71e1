// Package entity contains the core business objects of the project.
package entity

import domainerrors "catalog/internal/domain/errors"

// RestaurantCategory is the shared business-type taxonomy (한식, 중식, 일식 ...).
// It is not owned by any restaurant.
type RestaurantCategory struct {
	ID               string  `json:"id"`
	CategoryCode     string  `json:"category_code"` // KOREAN, CHINESE ...
	CategoryName     string  `json:"category_name"`
	Description      string  `json:"description,omitempty"`
	IconURL          string  `json:"icon_url,omitempty"`
	ColorCode        string  `json:"color_code,omitempty"` // #FF5733
	ParentCategoryID *string `json:"parent_category_id,omitempty"`
	Depth            int     `json:"depth"`
	DisplayOrder     int     `json:"display_order"`
	IsActive         bool    `json:"is_active"`
	IsPopular        bool    `json:"is_popular"`
	IsNew            bool    `json:"is_new"`

	DefaultMinimumOrderAmount *int64   `json:"default_minimum_order_amount,omitempty"` // won
	AverageDeliveryTime       *int     `json:"average_delivery_time,omitempty"`        // minutes
	PlatformCommissionRate    *float64 `json:"platform_commission_rate,omitempty"`     // percent

	ActiveRestaurantCount int   `json:"active_restaurant_count"`
	TotalOrderCount       int64 `json:"total_order_count"`
	Audit
	SoftDelete
}

// RestaurantCategoryParams holds the input of NewRestaurantCategory.
type RestaurantCategoryParams struct {
	Code         string
	Name         string
	Description  string
	IconURL      string
	ColorCode    string
	DisplayOrder int
	IsNew        bool
}

// NewRestaurantCategory creates a category under parent, or a root when parent is nil.
func NewRestaurantCategory(params RestaurantCategoryParams, parent *RestaurantCategory, actor string) (*RestaurantCategory, error) {
	if isBlank(params.Name) || isBlank(params.Code) {
		return nil, domainerrors.ErrCategoryNameRequired
	}

	depth := 1
	var parentID *string
	if parent != nil {
		depth = parent.Depth + 1
		if depth > MaxCategoryDepth {
			return nil, domainerrors.ErrInvalidCategoryDepth
		}
		id := parent.ID
		parentID = &id
	}

	return &RestaurantCategory{
		ID:               NewID(RestaurantCategoryIDPrefix),
		CategoryCode:     params.Code,
		CategoryName:     params.Name,
		Description:      params.Description,
		IconURL:          params.IconURL,
		ColorCode:        params.ColorCode,
		ParentCategoryID: parentID,
		Depth:            depth,
		DisplayOrder:     params.DisplayOrder,
		IsActive:         true,
		IsNew:            params.IsNew,
		Audit:            newAudit(actor),
	}, nil
}

// Update changes the descriptive fields.
func (c *RestaurantCategory) Update(name, description, iconURL, colorCode string, displayOrder int, actor string) error {
	if isBlank(name) {
		return domainerrors.ErrCategoryNameRequired
	}
	c.CategoryName = name
	c.Description = description
	c.IconURL = iconURL
	c.ColorCode = colorCode
	c.DisplayOrder = displayOrder
	c.touch(actor)

	return nil
}

// SetPolicyInfo sets the commercial defaults of the category.
func (c *RestaurantCategory) SetPolicyInfo(minimumOrderAmount *int64, deliveryTime *int, commissionRate *float64, actor string) {
	c.DefaultMinimumOrderAmount = minimumOrderAmount
	c.AverageDeliveryTime = deliveryTime
	c.PlatformCommissionRate = commissionRate
	c.touch(actor)
}

// SetActive toggles visibility.
func (c *RestaurantCategory) SetActive(active bool, actor string) {
	c.IsActive = active
	c.touch(actor)
}

// SetPopular flags the category as popular.
func (c *RestaurantCategory) SetPopular(popular bool, actor string) {
	c.IsPopular = popular
	c.touch(actor)
}

// SetNew flags the category as new.
func (c *RestaurantCategory) SetNew(isNew bool, actor string) {
	c.IsNew = isNew
	c.touch(actor)
}

// Delete soft-deletes and deactivates the category.
func (c *RestaurantCategory) Delete(actor string) {
	c.markDeleted(actor)
	c.IsActive = false
}

// Restore undoes Delete.
func (c *RestaurantCategory) Restore(actor string) {
	c.clearDeleted()
	c.IsActive = true
	c.touch(actor)
}

// IsRoot reports whether the category is at the top of the taxonomy.
func (c *RestaurantCategory) IsRoot() bool {
	return c.ParentCategoryID == nil || c.Depth == 1
}

// IsAvailable is active and not deleted.
func (c *RestaurantCategory) IsAvailable() bool {
	return c.IsActive && !c.IsDeleted
}

// UpdateStatistics adds orderCount to the running order total.
func (c *RestaurantCategory) UpdateStatistics(orderCount int64) {
	c.TotalOrderCount += orderCount
}

// IncrementRestaurantCount counts a newly linked restaurant.
func (c *RestaurantCategory) IncrementRestaurantCount() {
	c.ActiveRestaurantCount++
}

// DecrementRestaurantCount counts an unlinked restaurant, never below zero.
func (c *RestaurantCategory) DecrementRestaurantCount() {
	if c.ActiveRestaurantCount > 0 {
		c.ActiveRestaurantCount--
	}
}
