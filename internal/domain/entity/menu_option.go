// Package entity contains the core business objects of the project.
package entity

import (
	"slices"

	domainerrors "catalog/internal/domain/errors"
)

// MenuOption is a single selectable choice inside an option group ("Large", "매운맛").
type MenuOption struct {
	ID              string `json:"id"`
	OptionGroupID   string `json:"option_group_id"`
	MenuID          string `json:"menu_id"`
	RestaurantID    string `json:"restaurant_id"`
	OptionName      string `json:"option_name"`
	Description     string `json:"description,omitempty"`
	AdditionalPrice int64  `json:"additional_price"` // won, >= 0
	IsAvailable     bool   `json:"is_available"`
	IsDefault       bool   `json:"is_default"`
	DisplayOrder    int    `json:"display_order"`
	PurchaseCount   int64  `json:"purchase_count"`
	Audit
	SoftDelete
}

// SetAdditionalPrice rejects negative prices before assigning.
func (o *MenuOption) SetAdditionalPrice(price int64) error {
	if price < 0 {
		return domainerrors.ErrInvalidOptionPrice
	}
	o.AdditionalPrice = price

	return nil
}

// Update changes the option details. Nothing is modified when validation fails.
func (o *MenuOption) Update(name, description string, additionalPrice int64, displayOrder int, actor string) error {
	if isBlank(name) {
		return domainerrors.ErrOptionNameRequired
	}
	if err := o.SetAdditionalPrice(additionalPrice); err != nil {
		return err
	}
	o.OptionName = name
	o.Description = description
	o.DisplayOrder = displayOrder
	o.touch(actor)

	return nil
}

// SetDefault marks the option as pre-selected.
func (o *MenuOption) SetDefault(isDefault bool, actor string) {
	o.IsDefault = isDefault
	o.touch(actor)
}

// SetAvailable toggles whether the option can be sold.
func (o *MenuOption) SetAvailable(available bool, actor string) {
	o.IsAvailable = available
	o.touch(actor)
}

// IncrementPurchaseCount counts one sale.
func (o *MenuOption) IncrementPurchaseCount() {
	o.PurchaseCount++
}

// Delete soft-deletes the option and takes it off sale.
func (o *MenuOption) Delete(actor string) {
	o.markDeleted(actor)
	o.IsAvailable = false
}

// IsSelectable is available and not deleted.
func (o *MenuOption) IsSelectable() bool {
	return o.IsAvailable && !o.IsDeleted
}

// MenuOptionGroup groups the options of one choice ("사이즈 선택").
type MenuOptionGroup struct {
	ID           string        `json:"id"`
	MenuID       string        `json:"menu_id"`
	RestaurantID string        `json:"restaurant_id"`
	GroupName    string        `json:"group_name"`
	Description  string        `json:"description,omitempty"`
	MinSelection int           `json:"min_selection"`
	MaxSelection int           `json:"max_selection"`
	IsRequired   bool          `json:"is_required"`
	DisplayOrder int           `json:"display_order"`
	IsActive     bool          `json:"is_active"`
	Options      []*MenuOption `json:"options"`
	Audit
	SoftDelete
}

// OptionGroupParams holds the input for adding an option group to a menu.
type OptionGroupParams struct {
	GroupName    string
	Description  string
	IsRequired   bool
	MinSelection int
	MaxSelection int
}

// OptionParams holds the input for adding an option to a group.
type OptionParams struct {
	OptionName      string
	Description     string
	AdditionalPrice int64
	DisplayOrder    *int // defaults to the current option count
	IsDefault       bool
}

// ValidateSelectionRule checks the selection bounds, then normalizes a required group
// with a zero minimum to a minimum of one. The normalization never fails.
func (g *MenuOptionGroup) ValidateSelectionRule() error {
	if g.MinSelection < 0 {
		return domainerrors.ErrInvalidMaxSelection.WithDetails("최소 선택 개수는 0 이상이어야 합니다.")
	}
	if g.MaxSelection < g.MinSelection {
		return domainerrors.ErrInvalidMaxSelection
	}

	if g.IsRequired && g.MinSelection == 0 {
		g.MinSelection = 1
	}

	return nil
}

// Update changes the group and revalidates its selection rule.
// The previous values are kept when the new rule is invalid.
func (g *MenuOptionGroup) Update(params OptionGroupParams, actor string) error {
	if isBlank(params.GroupName) {
		return domainerrors.ErrOptionGroupNameRequired
	}
	candidate := *g
	candidate.IsRequired = params.IsRequired
	candidate.MinSelection = params.MinSelection
	candidate.MaxSelection = params.MaxSelection
	if err := candidate.ValidateSelectionRule(); err != nil {
		return err
	}

	g.GroupName = params.GroupName
	g.Description = params.Description
	g.IsRequired = candidate.IsRequired
	g.MinSelection = candidate.MinSelection
	g.MaxSelection = candidate.MaxSelection
	g.touch(actor)

	return nil
}

// AddOption appends a new option to the group.
func (g *MenuOptionGroup) AddOption(params OptionParams, actor string) (*MenuOption, error) {
	if isBlank(params.OptionName) {
		return nil, domainerrors.ErrOptionNameRequired
	}
	if params.AdditionalPrice < 0 {
		return nil, domainerrors.ErrInvalidOptionPrice
	}

	order := len(g.Options)
	if params.DisplayOrder != nil {
		order = *params.DisplayOrder
	}
	option := &MenuOption{
		ID:              NewID(OptionIDPrefix),
		OptionGroupID:   g.ID,
		MenuID:          g.MenuID,
		RestaurantID:    g.RestaurantID,
		OptionName:      params.OptionName,
		Description:     params.Description,
		AdditionalPrice: params.AdditionalPrice,
		IsAvailable:     true,
		IsDefault:       params.IsDefault,
		DisplayOrder:    order,
		Audit:           newAudit(actor),
	}
	g.Options = append(g.Options, option)

	return option, nil
}

// FindOption returns the option with id, deleted or not.
func (g *MenuOptionGroup) FindOption(optionID string) (*MenuOption, error) {
	for _, o := range g.Options {
		if o.ID == optionID {
			return o, nil
		}
	}

	return nil, domainerrors.ErrOptionNotFound.WithDetails(optionID)
}

// RemoveOption soft-deletes an option of the group.
func (g *MenuOptionGroup) RemoveOption(optionID, actor string) error {
	option, err := g.FindOption(optionID)
	if err != nil {
		return err
	}
	option.Delete(actor)

	return nil
}

// SetActive toggles the group.
func (g *MenuOptionGroup) SetActive(active bool, actor string) {
	g.IsActive = active
	g.touch(actor)
}

// Delete soft-deletes the group and every option in it.
func (g *MenuOptionGroup) Delete(actor string) {
	g.markDeleted(actor)
	g.IsActive = false
	for _, o := range g.Options {
		if !o.IsDeleted {
			o.Delete(actor)
		}
	}
}

// IsAvailable is active and not deleted.
func (g *MenuOptionGroup) IsAvailable() bool {
	return g.IsActive && !g.IsDeleted
}

// AvailableOptions lists the options a customer can pick.
func (g *MenuOptionGroup) AvailableOptions() []*MenuOption {
	result := make([]*MenuOption, 0, len(g.Options))
	for _, o := range g.Options {
		if o.IsSelectable() {
			result = append(result, o)
		}
	}

	return result
}

// ValidateSelection checks a customer's choice of option ids against the group rule.
func (g *MenuOptionGroup) ValidateSelection(optionIDs []string) error {
	picked := 0
	for _, o := range g.Options {
		if slices.Contains(optionIDs, o.ID) {
			if !o.IsSelectable() {
				return domainerrors.ErrOptionNotFound.WithDetails(o.ID)
			}
			picked++
		}
	}
	if (g.IsRequired || picked > 0) && picked < g.MinSelection {
		return domainerrors.ErrRequiredOptionNotSelected.WithDetails(g.GroupName)
	}
	if picked > g.MaxSelection {
		return domainerrors.ErrInvalidMaxSelection.WithDetails(g.GroupName)
	}

	return nil
}
