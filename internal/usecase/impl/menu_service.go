package impl

import (
	"context"
	"log/slog"

	"catalog/config"
	"catalog/internal/domain/constants"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
)

// menuService implements the MenuUsecase interface. Menus live inside the restaurant
// aggregate, so every change loads and saves the whole restaurant.
type menuService struct {
	catalogSupport

	restaurantRepo repository.RestaurantRepository
}

// NewMenuService is the constructor for menuService.
func NewMenuService(
	txManager repository.TransactionManager,
	restaurantRepo repository.RestaurantRepository,
	categoryRepo repository.RestaurantCategoryRepository,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.MenuUsecase {
	return &menuService{
		catalogSupport: newCatalogSupport(txManager, categoryRepo, publisher, cfg, logger),
		restaurantRepo: restaurantRepo,
	}
}

// menuChange describes one change of a restaurant's menus made inside a transaction.
type menuChange struct {
	restaurantID   string
	menuID         string
	includeDeleted bool
	requireClosed  bool
	eventType      string
	apply          func(restaurant *entity.Restaurant) error
}

// change loads the restaurant, checks ownership and the status gate, applies, saves and publishes.
func (srv *menuService) change(ctx context.Context, actor usecase.Actor, c menuChange) (*entity.Restaurant, error) {
	var changed *entity.Restaurant

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		restaurantRepo := repoFactory.NewRestaurantRepository()

		var (
			restaurant *entity.Restaurant
			err        error
		)
		if c.includeDeleted {
			restaurant, err = restaurantRepo.FindByIDIncludingDeleted(ctx, c.restaurantID)
		} else {
			restaurant, err = restaurantRepo.FindByID(ctx, c.restaurantID)
		}
		if err != nil {
			return translateRestaurantErr(err, c.restaurantID)
		}
		if err := ensureOwner(actor, restaurant); err != nil {
			return err
		}
		if c.requireClosed {
			if err := restaurant.EnsureMenuModifiable(); err != nil {
				return err
			}
		}

		if err := c.apply(restaurant); err != nil {
			return err
		}
		if err := restaurantRepo.Save(ctx, restaurant); err != nil {
			return errors.Wrap(err, "failed to save restaurant")
		}
		changed = restaurant

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, actor, service.CatalogEvent{
		Type:         c.eventType,
		RestaurantID: changed.ID,
		MenuID:       c.menuID,
		Status:       changed.Status.String(),
	})

	return changed, nil
}

// liveMenu finds a menu that is not deleted.
func liveMenu(restaurant *entity.Restaurant, menuID string) (*entity.Menu, error) {
	menu, err := restaurant.FindMenuByID(menuID)
	if err != nil {
		return nil, err
	}
	if menu.IsDeleted {
		return nil, domainerrors.ErrMenuNotFound.WithDetails(menuID)
	}

	return menu, nil
}

// CreateMenu adds a menu with its categories and option groups. The restaurant must not be open.
func (srv *menuService) CreateMenu(ctx context.Context, actor usecase.Actor, restaurantID string, input usecase.CreateMenuInput) (*entity.Menu, error) {
	srv.log(ctx).Info("Creating menu", slog.String("restaurant_id", restaurantID), slog.String("name", input.MenuName))

	var menu *entity.Menu

	_, err := srv.change(ctx, actor, menuChange{
		restaurantID:  restaurantID,
		requireClosed: true,
		eventType:     constants.EventMenuCreated,
		apply: func(restaurant *entity.Restaurant) error {
			auditName := actor.AuditName()

			created, err := restaurant.AddMenu(entity.MenuParams{
				MenuName:    input.MenuName,
				Description: input.Description,
				Price:       input.Price,
				Ingredients: input.Ingredients,
				Calorie:     input.Calorie,
			}, auditName)
			if err != nil {
				return err
			}
			created.SetMain(input.IsMain, auditName)
			created.SetPopular(input.IsPopular, auditName)
			created.SetNew(input.IsNew, auditName)

			categoryIDs := uniqueNonBlank(input.CategoryIDs)
			if err := restaurant.ReconcileMenuCategories(created.ID, categoryIDs, primaryOrFirst(categoryIDs, input.PrimaryCategoryID), auditName); err != nil {
				return err
			}
			for _, groupInput := range input.OptionGroups {
				if err := addOptionGroup(restaurant, created.ID, groupInput, auditName); err != nil {
					return err
				}
			}
			menu = created

			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create menu")
	}

	return menu, nil
}

func addOptionGroup(restaurant *entity.Restaurant, menuID string, input usecase.OptionGroupInput, actor string) error {
	group, err := restaurant.AddOptionGroupToMenu(menuID, entity.OptionGroupParams{
		GroupName:    input.GroupName,
		Description:  input.Description,
		IsRequired:   input.IsRequired,
		MinSelection: input.MinSelection,
		MaxSelection: input.MaxSelection,
	}, actor)
	if err != nil {
		return err
	}
	for _, optionInput := range input.Options {
		if _, err := group.AddOption(toOptionParams(optionInput), actor); err != nil {
			return err
		}
	}

	return nil
}

func toOptionParams(input usecase.OptionInput) entity.OptionParams {
	return entity.OptionParams{
		OptionName:      input.OptionName,
		Description:     input.Description,
		AdditionalPrice: input.AdditionalPrice,
		DisplayOrder:    input.DisplayOrder,
		IsDefault:       input.IsDefault,
	}
}

// loadVisibleRestaurant finds a restaurant customers may browse.
func (srv *menuService) loadVisibleRestaurant(ctx context.Context, restaurantID string) (*entity.Restaurant, error) {
	restaurant, err := srv.restaurantRepo.FindByID(ctx, restaurantID)
	if err != nil {
		return nil, translateRestaurantErr(err, restaurantID)
	}
	if !restaurant.IsActive {
		return nil, domainerrors.ErrRestaurantNotFound.WithDetails(restaurantID)
	}

	return restaurant, nil
}

// GetMenu returns an orderable menu of a visible restaurant.
func (srv *menuService) GetMenu(ctx context.Context, restaurantID, menuID string) (*entity.Menu, error) {
	restaurant, err := srv.loadVisibleRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	menu, err := restaurant.FindMenuByID(menuID)
	if err != nil {
		return nil, err
	}
	if !menu.IsOrderable() {
		return nil, domainerrors.ErrMenuNotFound.WithDetails(menuID)
	}

	return menu, nil
}

// ListMenus lists the orderable menus of a visible restaurant, optionally narrowed by category and keyword.
func (srv *menuService) ListMenus(ctx context.Context, restaurantID string, input usecase.ListMenusInput) (*usecase.PageResult[*entity.Menu], error) {
	restaurant, err := srv.loadVisibleRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	candidates := restaurant.ActiveMenus()
	if input.CategoryID != "" {
		candidates = restaurant.MenusByCategory(input.CategoryID)
	}
	matched := make([]*entity.Menu, 0, len(candidates))
	for _, menu := range candidates {
		if menu.MatchesKeyword(input.Keyword) {
			matched = append(matched, menu)
		}
	}

	page, pageReq := srv.page(input.Page)
	start := min(page.Offset(), len(matched))
	end := min(start+page.Size, len(matched))

	return usecase.NewPageResult(matched[start:end], pageReq, int64(len(matched))), nil
}

// ListMenusForOwner lists every undeleted menu, hidden ones included.
func (srv *menuService) ListMenusForOwner(ctx context.Context, actor usecase.Actor, restaurantID string) ([]*entity.Menu, error) {
	restaurant, err := loadOwnedRestaurant(ctx, srv.restaurantRepo, actor, restaurantID)
	if err != nil {
		return nil, err
	}

	menus := make([]*entity.Menu, 0, len(restaurant.Menus))
	for _, menu := range restaurant.Menus {
		if !menu.IsDeleted {
			menus = append(menus, menu)
		}
	}

	return menus, nil
}

// UpdateMenu replaces the editable details of a menu. The restaurant must not be open.
func (srv *menuService) UpdateMenu(ctx context.Context, actor usecase.Actor, restaurantID, menuID string, input usecase.UpdateMenuInput) (*entity.Menu, error) {
	if input.Price == nil {
		return nil, domainerrors.ErrMenuPriceRequired
	}

	var menu *entity.Menu

	_, err := srv.change(ctx, actor, menuChange{
		restaurantID:  restaurantID,
		menuID:        menuID,
		requireClosed: true,
		eventType:     constants.EventMenuUpdated,
		apply: func(restaurant *entity.Restaurant) error {
			auditName := actor.AuditName()

			found, err := liveMenu(restaurant, menuID)
			if err != nil {
				return err
			}
			if err := found.Update(entity.MenuUpdate{
				MenuName:    input.MenuName,
				Description: input.Description,
				Ingredients: input.Ingredients,
				Price:       *input.Price,
				Calorie:     input.Calorie,
			}, auditName); err != nil {
				return err
			}
			found.SetAvailable(input.IsAvailable, auditName)
			found.SetMain(input.IsMain, auditName)
			found.SetPopular(input.IsPopular, auditName)
			found.SetNew(input.IsNew, auditName)

			categoryIDs := uniqueNonBlank(input.CategoryIDs)
			if err := restaurant.ReconcileMenuCategories(menuID, categoryIDs, primaryOrFirst(categoryIDs, input.PrimaryCategoryID), auditName); err != nil {
				return err
			}
			menu = found

			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update menu")
	}

	return menu, nil
}

// applyMenuPatch overlays the non-nil fields of input on menu.
func applyMenuPatch(restaurant *entity.Restaurant, menu *entity.Menu, input usecase.PatchMenuInput, actor string) error {
	if input.MenuName != nil || input.Description != nil || input.Price != nil || input.Ingredients != nil || input.Calorie != nil {
		update := entity.MenuUpdate{
			MenuName:    menu.MenuName,
			Description: menu.Description,
			Ingredients: menu.Ingredients,
			Price:       menu.Price,
			Calorie:     menu.Calorie,
		}
		if input.MenuName != nil {
			update.MenuName = *input.MenuName
		}
		if input.Description != nil {
			update.Description = *input.Description
		}
		if input.Price != nil {
			update.Price = *input.Price
		}
		if input.Ingredients != nil {
			update.Ingredients = input.Ingredients
		}
		if input.Calorie != nil {
			update.Calorie = input.Calorie
		}
		if err := menu.Update(update, actor); err != nil {
			return err
		}
	}
	if input.IsAvailable != nil {
		menu.SetAvailable(*input.IsAvailable, actor)
	}
	if input.IsMain != nil {
		menu.SetMain(*input.IsMain, actor)
	}
	if input.IsPopular != nil {
		menu.SetPopular(*input.IsPopular, actor)
	}
	if input.IsNew != nil {
		menu.SetNew(*input.IsNew, actor)
	}
	if input.CategoryIDs != nil || input.PrimaryCategoryID != nil {
		ids := input.CategoryIDs
		if ids == nil {
			ids = menu.ActiveCategoryIDs()
		}
		ids = uniqueNonBlank(ids)
		primaryID := menu.PrimaryCategoryID()
		if input.PrimaryCategoryID != nil {
			primaryID = *input.PrimaryCategoryID
		}

		return restaurant.ReconcileMenuCategories(menu.ID, ids, primaryOrFirst(ids, primaryID), actor)
	}

	return nil
}

// PatchMenu changes only the given fields. The restaurant must not be open.
func (srv *menuService) PatchMenu(ctx context.Context, actor usecase.Actor, restaurantID, menuID string, input usecase.PatchMenuInput) (*entity.Menu, error) {
	var menu *entity.Menu

	_, err := srv.change(ctx, actor, menuChange{
		restaurantID:  restaurantID,
		menuID:        menuID,
		requireClosed: true,
		eventType:     constants.EventMenuUpdated,
		apply: func(restaurant *entity.Restaurant) error {
			found, err := liveMenu(restaurant, menuID)
			if err != nil {
				return err
			}
			menu = found

			return applyMenuPatch(restaurant, found, input, actor.AuditName())
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to patch menu")
	}

	return menu, nil
}

// ToggleMenuVisibility hides or shows a menu. Allowed in any status.
func (srv *menuService) ToggleMenuVisibility(ctx context.Context, actor usecase.Actor, restaurantID, menuID string, hidden bool) (*entity.Menu, error) {
	var menu *entity.Menu

	_, err := srv.change(ctx, actor, menuChange{
		restaurantID: restaurantID,
		menuID:       menuID,
		eventType:    constants.EventMenuUpdated,
		apply: func(restaurant *entity.Restaurant) error {
			found, err := liveMenu(restaurant, menuID)
			if err != nil {
				return err
			}
			found.SetAvailable(!hidden, actor.AuditName())
			menu = found

			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to change menu visibility")
	}

	return menu, nil
}

// DeleteMenu soft-deletes a menu with its option groups and category links.
func (srv *menuService) DeleteMenu(ctx context.Context, actor usecase.Actor, restaurantID, menuID string) error {
	srv.log(ctx).Info("Deleting menu", slog.String("restaurant_id", restaurantID), slog.String("menu_id", menuID))

	_, err := srv.change(ctx, actor, menuChange{
		restaurantID: restaurantID,
		menuID:       menuID,
		eventType:    constants.EventMenuDeleted,
		apply: func(restaurant *entity.Restaurant) error {
			return restaurant.RemoveMenu(menuID, actor.AuditName())
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete menu")
	}

	return nil
}

// RestoreMenu clears the deleted flags of the menu. Its children stay deleted.
func (srv *menuService) RestoreMenu(ctx context.Context, actor usecase.Actor, restaurantID, menuID string) (*entity.Menu, error) {
	var menu *entity.Menu

	_, err := srv.change(ctx, actor, menuChange{
		restaurantID: restaurantID,
		menuID:       menuID,
		eventType:    constants.EventMenuRestored,
		apply: func(restaurant *entity.Restaurant) error {
			found, err := restaurant.FindMenuByID(menuID)
			if err != nil {
				return err
			}
			found.Restore(actor.AuditName())
			menu = found

			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to restore menu")
	}

	return menu, nil
}

// AdminUpdateMenu applies a moderation patch in any restaurant status.
func (srv *menuService) AdminUpdateMenu(ctx context.Context, actor usecase.Actor, restaurantID, menuID string, input usecase.PatchMenuInput) (*entity.Menu, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WithDetails("administrator role required")
	}

	var menu *entity.Menu

	_, err := srv.change(ctx, actor, menuChange{
		restaurantID:   restaurantID,
		menuID:         menuID,
		includeDeleted: true,
		eventType:      constants.EventMenuUpdated,
		apply: func(restaurant *entity.Restaurant) error {
			found, err := restaurant.FindMenuByID(menuID)
			if err != nil {
				return err
			}
			menu = found

			return applyMenuPatch(restaurant, found, input, actor.AuditName())
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update menu")
	}

	return menu, nil
}

// AddOptionGroup adds an option group with its options. The restaurant must not be open.
func (srv *menuService) AddOptionGroup(ctx context.Context, actor usecase.Actor, restaurantID, menuID string, input usecase.OptionGroupInput) (*entity.MenuOptionGroup, error) {
	var group *entity.MenuOptionGroup

	_, err := srv.change(ctx, actor, menuChange{
		restaurantID:  restaurantID,
		menuID:        menuID,
		requireClosed: true,
		eventType:     constants.EventMenuUpdated,
		apply: func(restaurant *entity.Restaurant) error {
			menu, err := liveMenu(restaurant, menuID)
			if err != nil {
				return err
			}
			if err := addOptionGroup(restaurant, menuID, input, actor.AuditName()); err != nil {
				return err
			}
			group = menu.OptionGroups[len(menu.OptionGroups)-1]

			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add option group")
	}

	return group, nil
}

// AddOption adds an option to a group. The restaurant must not be open.
func (srv *menuService) AddOption(ctx context.Context, actor usecase.Actor, restaurantID, menuID, groupID string, input usecase.OptionInput) (*entity.MenuOption, error) {
	var option *entity.MenuOption

	_, err := srv.change(ctx, actor, menuChange{
		restaurantID:  restaurantID,
		menuID:        menuID,
		requireClosed: true,
		eventType:     constants.EventMenuUpdated,
		apply: func(restaurant *entity.Restaurant) error {
			if _, err := liveMenu(restaurant, menuID); err != nil {
				return err
			}
			added, err := restaurant.AddOptionToGroup(menuID, groupID, toOptionParams(input), actor.AuditName())
			if err != nil {
				return err
			}
			option = added

			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add option")
	}

	return option, nil
}

// CreateMenuCategory adds a restaurant-scoped menu category.
func (srv *menuService) CreateMenuCategory(ctx context.Context, actor usecase.Actor, restaurantID string, input usecase.CreateMenuCategoryInput) (*entity.MenuCategory, error) {
	var category *entity.MenuCategory

	_, err := srv.change(ctx, actor, menuChange{
		restaurantID: restaurantID,
		eventType:    constants.EventMenuCategoryChanged,
		apply: func(restaurant *entity.Restaurant) error {
			added, err := restaurant.AddMenuCategory(entity.MenuCategoryParams{
				Name:         input.Name,
				Description:  input.Description,
				ParentID:     input.ParentID,
				DisplayOrder: input.DisplayOrder,
			}, actor.AuditName())
			if err != nil {
				return err
			}
			category = added

			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create menu category")
	}

	return category, nil
}

// ListMenuCategories returns the nested menu categories of a visible restaurant.
func (srv *menuService) ListMenuCategories(ctx context.Context, restaurantID string) ([]*entity.MenuCategoryNode, error) {
	restaurant, err := srv.loadVisibleRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	return restaurant.MenuCategoryTree(), nil
}

// DeleteMenuCategory soft-deletes a menu category and unlinks its menus.
func (srv *menuService) DeleteMenuCategory(ctx context.Context, actor usecase.Actor, restaurantID, categoryID string) error {
	_, err := srv.change(ctx, actor, menuChange{
		restaurantID: restaurantID,
		eventType:    constants.EventMenuCategoryChanged,
		apply: func(restaurant *entity.Restaurant) error {
			return restaurant.DeleteMenuCategory(categoryID, actor.AuditName())
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete menu category")
	}

	return nil
}
