package postgres

import (
	"catalog/internal/domain/entity"
	"catalog/internal/infra/persistence/model"
)

// restaurantRows is a flattened restaurant aggregate, one slice per table.
type restaurantRows struct {
	restaurant        *model.RestaurantModel
	menus             []*model.MenuModel
	optionGroups      []*model.MenuOptionGroupModel
	options           []*model.MenuOptionModel
	menuRelations     []*model.MenuCategoryRelationModel
	menuCategories    []*model.MenuCategoryModel
	operatingDays     []*model.OperatingDayModel
	categoryRelations []*model.RestaurantCategoryRelationModel
}

// --- Mapper Functions ---

func toAuditColumns(audit entity.Audit, soft entity.SoftDelete) model.AuditColumns {
	return model.AuditColumns{
		CreatedAt: audit.CreatedAt,
		CreatedBy: audit.CreatedBy,
		UpdatedAt: audit.UpdatedAt,
		UpdatedBy: audit.UpdatedBy,
		IsDeleted: soft.IsDeleted,
		DeletedAt: soft.DeletedAt,
		DeletedBy: soft.DeletedBy,
	}
}

func fromAuditColumns(cols model.AuditColumns) (entity.Audit, entity.SoftDelete) {
	return entity.Audit{
			CreatedAt: cols.CreatedAt,
			CreatedBy: cols.CreatedBy,
			UpdatedAt: cols.UpdatedAt,
			UpdatedBy: cols.UpdatedBy,
		}, entity.SoftDelete{
			IsDeleted: cols.IsDeleted,
			DeletedAt: cols.DeletedAt,
			DeletedBy: cols.DeletedBy,
		}
}

// fromRestaurantDomain flattens the aggregate into table rows.
func fromRestaurantDomain(r *entity.Restaurant) *restaurantRows {
	rows := &restaurantRows{
		restaurant: &model.RestaurantModel{
			ID:             r.ID,
			OwnerID:        r.OwnerID,
			OwnerName:      r.OwnerName,
			RestaurantName: r.RestaurantName,
			Status:         string(r.Status),
			ContactNumber:  r.ContactNumber,
			Tags:           append([]string{}, r.Tags...),
			IsActive:       r.IsActive,
			ViewCount:      r.ViewCount,
			WishlistCount:  r.WishlistCount,
			ReviewCount:    r.ReviewCount,
			ReviewRating:   r.ReviewRating,
			PurchaseCount:  r.PurchaseCount,
			AuditColumns:   toAuditColumns(r.Audit, r.SoftDelete),
		},
	}
	if r.Address != nil {
		rows.restaurant.Province = &r.Address.Province
		rows.restaurant.City = &r.Address.City
		rows.restaurant.District = &r.Address.District
		rows.restaurant.DetailAddress = &r.Address.DetailAddress
	}
	if r.Coordinate != nil {
		rows.restaurant.Latitude = &r.Coordinate.Latitude
		rows.restaurant.Longitude = &r.Coordinate.Longitude
	}

	for _, m := range r.Menus {
		rows.menus = append(rows.menus, fromMenuDomain(m))
		for _, g := range m.OptionGroups {
			rows.optionGroups = append(rows.optionGroups, fromOptionGroupDomain(g))
			for _, o := range g.Options {
				rows.options = append(rows.options, fromOptionDomain(o))
			}
		}
		for _, rel := range m.CategoryRelations {
			rows.menuRelations = append(rows.menuRelations, &model.MenuCategoryRelationModel{
				MenuID:       rel.MenuID,
				CategoryID:   rel.CategoryID,
				RestaurantID: rel.RestaurantID,
				IsPrimary:    rel.IsPrimary,
				AuditColumns: toAuditColumns(rel.Audit, rel.SoftDelete),
			})
		}
	}
	for _, c := range r.MenuCategories {
		rows.menuCategories = append(rows.menuCategories, &model.MenuCategoryModel{
			ID:               c.ID,
			RestaurantID:     c.RestaurantID,
			CategoryName:     c.CategoryName,
			Description:      c.Description,
			ParentCategoryID: c.ParentCategoryID,
			Depth:            c.Depth,
			DisplayOrder:     c.DisplayOrder,
			IsActive:         c.IsActive,
			MenuIDs:          append([]string{}, c.MenuIDs...),
			AuditColumns:     toAuditColumns(c.Audit, c.SoftDelete),
		})
	}
	for _, d := range r.OperatingDays {
		rows.operatingDays = append(rows.operatingDays, &model.OperatingDayModel{
			RestaurantID: r.ID,
			DayType:      string(d.DayType),
			TimeType:     string(d.TimeType),
			StartTime:    fromTimeOfDay(d.StartTime),
			EndTime:      fromTimeOfDay(d.EndTime),
			IsHoliday:    d.IsHoliday,
			BreakStart:   fromTimeOfDay(d.BreakStart),
			BreakEnd:     fromTimeOfDay(d.BreakEnd),
			Note:         d.Note,
		})
	}
	for _, rel := range r.CategoryRelations {
		rows.categoryRelations = append(rows.categoryRelations, &model.RestaurantCategoryRelationModel{
			RestaurantID: rel.RestaurantID,
			CategoryID:   rel.CategoryID,
			IsPrimary:    rel.IsPrimary,
			AuditColumns: toAuditColumns(rel.Audit, rel.SoftDelete),
		})
	}

	return rows
}

func fromMenuDomain(m *entity.Menu) *model.MenuModel {
	return &model.MenuModel{
		ID:            m.ID,
		RestaurantID:  m.RestaurantID,
		MenuName:      m.MenuName,
		Description:   m.Description,
		Ingredients:   m.Ingredients,
		Price:         m.Price,
		Calorie:       m.Calorie,
		IsAvailable:   m.IsAvailable,
		IsMain:        m.IsMain,
		IsPopular:     m.IsPopular,
		IsNew:         m.IsNew,
		PurchaseCount: m.PurchaseCount,
		WishlistCount: m.WishlistCount,
		ReviewCount:   m.ReviewCount,
		ReviewRating:  m.ReviewRating,
		AuditColumns:  toAuditColumns(m.Audit, m.SoftDelete),
	}
}

func fromOptionGroupDomain(g *entity.MenuOptionGroup) *model.MenuOptionGroupModel {
	return &model.MenuOptionGroupModel{
		ID:           g.ID,
		MenuID:       g.MenuID,
		RestaurantID: g.RestaurantID,
		GroupName:    g.GroupName,
		Description:  g.Description,
		MinSelection: g.MinSelection,
		MaxSelection: g.MaxSelection,
		IsRequired:   g.IsRequired,
		DisplayOrder: g.DisplayOrder,
		IsActive:     g.IsActive,
		AuditColumns: toAuditColumns(g.Audit, g.SoftDelete),
	}
}

func fromOptionDomain(o *entity.MenuOption) *model.MenuOptionModel {
	return &model.MenuOptionModel{
		ID:              o.ID,
		OptionGroupID:   o.OptionGroupID,
		MenuID:          o.MenuID,
		RestaurantID:    o.RestaurantID,
		OptionName:      o.OptionName,
		Description:     o.Description,
		AdditionalPrice: o.AdditionalPrice,
		IsAvailable:     o.IsAvailable,
		IsDefault:       o.IsDefault,
		DisplayOrder:    o.DisplayOrder,
		PurchaseCount:   o.PurchaseCount,
		AuditColumns:    toAuditColumns(o.Audit, o.SoftDelete),
	}
}

// toRestaurantDomain rebuilds the aggregate from a model with every association preloaded.
func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	if data == nil {
		return nil
	}

	audit, soft := fromAuditColumns(data.AuditColumns)
	r := &entity.Restaurant{
		ID:             data.ID,
		OwnerID:        data.OwnerID,
		OwnerName:      data.OwnerName,
		RestaurantName: data.RestaurantName,
		Status:         entity.RestaurantStatus(data.Status),
		ContactNumber:  data.ContactNumber,
		Tags:           append([]string{}, data.Tags...),
		IsActive:       data.IsActive,
		ViewCount:      data.ViewCount,
		WishlistCount:  data.WishlistCount,
		ReviewCount:    data.ReviewCount,
		ReviewRating:   data.ReviewRating,
		PurchaseCount:  data.PurchaseCount,
		Audit:          audit,
		SoftDelete:     soft,
	}
	if data.Province != nil || data.City != nil || data.District != nil {
		r.Address = &entity.PostalAddress{
			Province:      deref(data.Province),
			City:          deref(data.City),
			District:      deref(data.District),
			DetailAddress: deref(data.DetailAddress),
		}
	}
	if data.Latitude != nil && data.Longitude != nil {
		r.Coordinate = &entity.GeoCoordinate{Latitude: *data.Latitude, Longitude: *data.Longitude}
	}

	for _, m := range data.Menus {
		r.Menus = append(r.Menus, toMenuDomain(m))
	}
	for _, c := range data.MenuCategories {
		cAudit, cSoft := fromAuditColumns(c.AuditColumns)
		r.MenuCategories = append(r.MenuCategories, &entity.MenuCategory{
			ID:               c.ID,
			RestaurantID:     c.RestaurantID,
			CategoryName:     c.CategoryName,
			Description:      c.Description,
			ParentCategoryID: c.ParentCategoryID,
			Depth:            c.Depth,
			DisplayOrder:     c.DisplayOrder,
			IsActive:         c.IsActive,
			MenuIDs:          append([]string{}, c.MenuIDs...),
			Audit:            cAudit,
			SoftDelete:       cSoft,
		})
	}
	for _, d := range data.OperatingDays {
		r.OperatingDays = append(r.OperatingDays, &entity.OperatingDay{
			RestaurantID: d.RestaurantID,
			DayType:      entity.DayType(d.DayType),
			TimeType:     entity.OperatingTimeType(d.TimeType),
			StartTime:    toTimeOfDay(d.StartTime),
			EndTime:      toTimeOfDay(d.EndTime),
			IsHoliday:    d.IsHoliday,
			BreakStart:   toTimeOfDay(d.BreakStart),
			BreakEnd:     toTimeOfDay(d.BreakEnd),
			Note:         d.Note,
		})
	}
	for _, rel := range data.CategoryRelations {
		relAudit, relSoft := fromAuditColumns(rel.AuditColumns)
		r.CategoryRelations = append(r.CategoryRelations, &entity.RestaurantCategoryRelation{
			RestaurantID: rel.RestaurantID,
			CategoryLink: entity.CategoryLink{
				CategoryID: rel.CategoryID,
				IsPrimary:  rel.IsPrimary,
				Audit:      relAudit,
				SoftDelete: relSoft,
			},
		})
	}

	return r
}

func toMenuDomain(data *model.MenuModel) *entity.Menu {
	audit, soft := fromAuditColumns(data.AuditColumns)
	m := &entity.Menu{
		ID:            data.ID,
		RestaurantID:  data.RestaurantID,
		MenuName:      data.MenuName,
		Description:   data.Description,
		Ingredients:   data.Ingredients,
		Price:         data.Price,
		Calorie:       data.Calorie,
		IsAvailable:   data.IsAvailable,
		IsMain:        data.IsMain,
		IsPopular:     data.IsPopular,
		IsNew:         data.IsNew,
		PurchaseCount: data.PurchaseCount,
		WishlistCount: data.WishlistCount,
		ReviewCount:   data.ReviewCount,
		ReviewRating:  data.ReviewRating,
		Audit:         audit,
		SoftDelete:    soft,
	}
	for _, g := range data.OptionGroups {
		m.OptionGroups = append(m.OptionGroups, toOptionGroupDomain(g))
	}
	for _, rel := range data.CategoryRelations {
		relAudit, relSoft := fromAuditColumns(rel.AuditColumns)
		m.CategoryRelations = append(m.CategoryRelations, &entity.MenuCategoryRelation{
			MenuID:       rel.MenuID,
			RestaurantID: rel.RestaurantID,
			CategoryLink: entity.CategoryLink{
				CategoryID: rel.CategoryID,
				IsPrimary:  rel.IsPrimary,
				Audit:      relAudit,
				SoftDelete: relSoft,
			},
		})
	}

	return m
}

func toOptionGroupDomain(data *model.MenuOptionGroupModel) *entity.MenuOptionGroup {
	audit, soft := fromAuditColumns(data.AuditColumns)
	g := &entity.MenuOptionGroup{
		ID:           data.ID,
		MenuID:       data.MenuID,
		RestaurantID: data.RestaurantID,
		GroupName:    data.GroupName,
		Description:  data.Description,
		MinSelection: data.MinSelection,
		MaxSelection: data.MaxSelection,
		IsRequired:   data.IsRequired,
		DisplayOrder: data.DisplayOrder,
		IsActive:     data.IsActive,
		Audit:        audit,
		SoftDelete:   soft,
	}
	for _, o := range data.Options {
		oAudit, oSoft := fromAuditColumns(o.AuditColumns)
		g.Options = append(g.Options, &entity.MenuOption{
			ID:              o.ID,
			OptionGroupID:   o.OptionGroupID,
			MenuID:          o.MenuID,
			RestaurantID:    o.RestaurantID,
			OptionName:      o.OptionName,
			Description:     o.Description,
			AdditionalPrice: o.AdditionalPrice,
			IsAvailable:     o.IsAvailable,
			IsDefault:       o.IsDefault,
			DisplayOrder:    o.DisplayOrder,
			PurchaseCount:   o.PurchaseCount,
			Audit:           oAudit,
			SoftDelete:      oSoft,
		})
	}

	return g
}

func toRestaurantCategoryDomain(data *model.RestaurantCategoryModel) *entity.RestaurantCategory {
	if data == nil {
		return nil
	}

	audit, soft := fromAuditColumns(data.AuditColumns)

	return &entity.RestaurantCategory{
		ID:                        data.ID,
		CategoryCode:              data.CategoryCode,
		CategoryName:              data.CategoryName,
		Description:               data.Description,
		IconURL:                   data.IconURL,
		ColorCode:                 data.ColorCode,
		ParentCategoryID:          data.ParentCategoryID,
		Depth:                     data.Depth,
		DisplayOrder:              data.DisplayOrder,
		IsActive:                  data.IsActive,
		IsPopular:                 data.IsPopular,
		IsNew:                     data.IsNew,
		DefaultMinimumOrderAmount: data.DefaultMinimumOrderAmount,
		AverageDeliveryTime:       data.AverageDeliveryTime,
		PlatformCommissionRate:    data.PlatformCommissionRate,
		ActiveRestaurantCount:     data.ActiveRestaurantCount,
		TotalOrderCount:           data.TotalOrderCount,
		Audit:                     audit,
		SoftDelete:                soft,
	}
}

func fromRestaurantCategoryDomain(c *entity.RestaurantCategory) *model.RestaurantCategoryModel {
	return &model.RestaurantCategoryModel{
		ID:                        c.ID,
		CategoryCode:              c.CategoryCode,
		CategoryName:              c.CategoryName,
		Description:               c.Description,
		IconURL:                   c.IconURL,
		ColorCode:                 c.ColorCode,
		ParentCategoryID:          c.ParentCategoryID,
		Depth:                     c.Depth,
		DisplayOrder:              c.DisplayOrder,
		IsActive:                  c.IsActive,
		IsPopular:                 c.IsPopular,
		IsNew:                     c.IsNew,
		DefaultMinimumOrderAmount: c.DefaultMinimumOrderAmount,
		AverageDeliveryTime:       c.AverageDeliveryTime,
		PlatformCommissionRate:    c.PlatformCommissionRate,
		ActiveRestaurantCount:     c.ActiveRestaurantCount,
		TotalOrderCount:           c.TotalOrderCount,
		AuditColumns:              toAuditColumns(c.Audit, c.SoftDelete),
	}
}

func fromTimeOfDay(t *entity.TimeOfDay) *int {
	if t == nil {
		return nil
	}
	v := int(*t)

	return &v
}

func toTimeOfDay(v *int) *entity.TimeOfDay {
	if v == nil {
		return nil
	}
	t := entity.TimeOfDay(*v)

	return &t
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
