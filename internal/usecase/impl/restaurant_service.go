// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"catalog/config"
	"catalog/internal/domain/constants"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
)

const defaultNearbyRadiusKm = 3.0

// restaurantService implements the RestaurantUsecase interface.
type restaurantService struct {
	catalogSupport

	restaurantRepo repository.RestaurantRepository
}

// NewRestaurantService is the constructor for restaurantService.
func NewRestaurantService(
	txManager repository.TransactionManager,
	restaurantRepo repository.RestaurantRepository,
	categoryRepo repository.RestaurantCategoryRepository,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.RestaurantUsecase {
	return &restaurantService{
		catalogSupport: newCatalogSupport(txManager, categoryRepo, publisher, cfg, logger),
		restaurantRepo: restaurantRepo,
	}
}

// view pairs a restaurant with its resolved categories. Deleted links are listed only for administrators.
func (srv *restaurantService) view(restaurant *entity.Restaurant, categories map[string]*entity.RestaurantCategory, includeDeleted bool) *usecase.RestaurantView {
	resolved := make([]*entity.RestaurantCategory, 0, len(restaurant.CategoryRelations))
	for _, rel := range restaurant.CategoryRelations {
		if !includeDeleted && !rel.IsActive() {
			continue
		}
		if category, ok := categories[rel.CategoryID]; ok {
			resolved = append(resolved, category)
		}
	}

	return &usecase.RestaurantView{
		Restaurant: restaurant,
		Categories: resolved,
		IsOpenNow:  restaurant.IsOpenAt(srv.localNow()),
	}
}

func (srv *restaurantService) views(ctx context.Context, restaurants []*entity.Restaurant, includeDeleted bool) ([]*usecase.RestaurantView, error) {
	categories, err := resolveCategories(ctx, srv.categoryRepo, includeDeleted, restaurants...)
	if err != nil {
		return nil, err
	}

	views := make([]*usecase.RestaurantView, 0, len(restaurants))
	for _, restaurant := range restaurants {
		views = append(views, srv.view(restaurant, categories, includeDeleted))
	}

	return views, nil
}

// CreateRestaurant registers a new restaurant owned by the actor.
func (srv *restaurantService) CreateRestaurant(ctx context.Context, actor usecase.Actor, input usecase.CreateRestaurantInput) (*usecase.RestaurantView, error) {
	srv.log(ctx).Info("Creating restaurant", slog.String("owner_id", actor.ID), slog.String("name", input.RestaurantName))

	var result *usecase.RestaurantView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		restaurantRepo := repoFactory.NewRestaurantRepository()
		categoryRepo := repoFactory.NewRestaurantCategoryRepository()

		exists, err := restaurantRepo.ExistsByOwnerIDAndName(ctx, actor.ID, input.RestaurantName)
		if err != nil {
			return errors.Wrap(err, "failed to check restaurant name")
		}
		if exists {
			return domainerrors.ErrDuplicateRestaurantName.WithDetails(input.RestaurantName)
		}

		coordinate, err := toCoordinate(input.Coordinate)
		if err != nil {
			return err
		}
		categoryIDs := uniqueNonBlank(input.CategoryIDs)
		categories, err := requireCategories(ctx, categoryRepo, categoryIDs)
		if err != nil {
			return err
		}

		auditName := actor.AuditName()
		restaurant, err := entity.NewRestaurant(entity.RestaurantParams{
			OwnerID:        actor.ID,
			OwnerName:      input.OwnerName,
			RestaurantName: input.RestaurantName,
			ContactNumber:  input.ContactNumber,
			Address:        toAddress(input.Address),
			Coordinate:     coordinate,
			Tags:           input.Tags,
		}, auditName)
		if err != nil {
			return err
		}

		primaryID := primaryOrFirst(categoryIDs, input.PrimaryCategoryID)
		for _, id := range categoryIDs {
			restaurant.AddCategory(id, id == primaryID, auditName)
		}
		if err := applyOperatingDays(restaurant, input.OperatingDays); err != nil {
			return err
		}

		if err := restaurantRepo.Save(ctx, restaurant); err != nil {
			return errors.Wrap(err, "failed to save restaurant")
		}
		if err := adjustRestaurantCounts(ctx, categoryRepo, nil, restaurant.ActiveCategoryIDs()); err != nil {
			return err
		}

		byID := make(map[string]*entity.RestaurantCategory, len(categories))
		for _, category := range categories {
			byID[category.ID] = category
		}
		result = srv.view(restaurant, byID, false)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create restaurant")
	}

	srv.publish(ctx, actor, service.CatalogEvent{
		Type:         constants.EventRestaurantCreated,
		RestaurantID: result.Restaurant.ID,
		Status:       result.Restaurant.Status.String(),
	})

	return result, nil
}

// GetRestaurant returns the customer view of an active restaurant and counts the view.
func (srv *restaurantService) GetRestaurant(ctx context.Context, restaurantID string) (*usecase.RestaurantView, error) {
	var restaurant *entity.Restaurant

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		restaurantRepo := repoFactory.NewRestaurantRepository()

		found, err := restaurantRepo.FindByID(ctx, restaurantID)
		if err != nil {
			return translateRestaurantErr(err, restaurantID)
		}
		if !found.IsActive {
			return domainerrors.ErrRestaurantNotFound.WithDetails(restaurantID)
		}

		found.IncrementViewCount()
		if err := restaurantRepo.Save(ctx, found); err != nil {
			return errors.Wrap(err, "failed to count restaurant view")
		}
		restaurant = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get restaurant")
	}

	views, err := srv.views(ctx, []*entity.Restaurant{restaurant}, false)
	if err != nil {
		return nil, err
	}

	return views[0], nil
}

// GetRestaurantForOwner returns an undeleted restaurant the actor owns.
func (srv *restaurantService) GetRestaurantForOwner(ctx context.Context, actor usecase.Actor, restaurantID string) (*usecase.RestaurantView, error) {
	restaurant, err := loadOwnedRestaurant(ctx, srv.restaurantRepo, actor, restaurantID)
	if err != nil {
		return nil, err
	}

	views, err := srv.views(ctx, []*entity.Restaurant{restaurant}, false)
	if err != nil {
		return nil, err
	}

	return views[0], nil
}

// GetRestaurantForAdmin returns any restaurant, deleted ones included.
func (srv *restaurantService) GetRestaurantForAdmin(ctx context.Context, restaurantID string) (*usecase.RestaurantView, error) {
	restaurant, err := srv.restaurantRepo.FindByIDIncludingDeleted(ctx, restaurantID)
	if err != nil {
		return nil, translateRestaurantErr(err, restaurantID)
	}

	views, err := srv.views(ctx, []*entity.Restaurant{restaurant}, true)
	if err != nil {
		return nil, err
	}

	return views[0], nil
}

// SearchRestaurants lists active restaurants matching the filter.
func (srv *restaurantService) SearchRestaurants(ctx context.Context, input usecase.SearchRestaurantsInput) (*usecase.PageResult[*usecase.RestaurantView], error) {
	page, pageReq := srv.page(input.Page)

	restaurants, total, err := srv.restaurantRepo.Search(ctx, repository.RestaurantFilter{
		Keyword:    strings.TrimSpace(input.Keyword),
		CategoryID: strings.TrimSpace(input.CategoryID),
		Province:   strings.TrimSpace(input.Province),
		City:       strings.TrimSpace(input.City),
		District:   strings.TrimSpace(input.District),
	}, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search restaurants")
	}

	views, err := srv.views(ctx, restaurants, false)
	if err != nil {
		return nil, err
	}

	return usecase.NewPageResult(views, pageReq, total), nil
}

// ListOwnerRestaurants lists the undeleted restaurants of the actor.
func (srv *restaurantService) ListOwnerRestaurants(ctx context.Context, actor usecase.Actor, pageReq usecase.PageRequest) (*usecase.PageResult[*usecase.RestaurantView], error) {
	page, pageReq := srv.page(pageReq)

	restaurants, total, err := srv.restaurantRepo.FindByOwnerID(ctx, actor.ID, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owner restaurants")
	}

	views, err := srv.views(ctx, restaurants, false)
	if err != nil {
		return nil, err
	}

	return usecase.NewPageResult(views, pageReq, total), nil
}

// ListAllForAdmin lists every restaurant, deleted ones included.
func (srv *restaurantService) ListAllForAdmin(ctx context.Context, pageReq usecase.PageRequest) (*usecase.PageResult[*usecase.RestaurantView], error) {
	page, pageReq := srv.page(pageReq)

	restaurants, total, err := srv.restaurantRepo.FindAllIncludingDeleted(ctx, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	views, err := srv.views(ctx, restaurants, true)
	if err != nil {
		return nil, err
	}

	return usecase.NewPageResult(views, pageReq, total), nil
}

// FindNearby lists active restaurants around a point, nearest first.
func (srv *restaurantService) FindNearby(ctx context.Context, input usecase.NearbyInput) ([]*usecase.RestaurantView, error) {
	center, err := entity.ParseGeoCoordinate(input.Latitude, input.Longitude)
	if err != nil {
		return nil, err
	}

	radius := input.RadiusKm
	if radius <= 0 {
		radius = defaultNearbyRadiusKm
	}
	if srv.cfg.NearbyMaxRadiusKm > 0 && radius > srv.cfg.NearbyMaxRadiusKm {
		radius = srv.cfg.NearbyMaxRadiusKm
	}
	page, _ := srv.page(usecase.PageRequest{Size: input.Limit})

	restaurants, err := srv.restaurantRepo.FindNearby(ctx, *center, radius, page.Size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find nearby restaurants")
	}

	views, err := srv.views(ctx, restaurants, false)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		if distance, err := v.Restaurant.DistanceTo(center); err == nil {
			v.DistanceKm = &distance
		}
	}

	return views, nil
}

// mutation describes one change of the aggregate made inside a transaction.
type mutation struct {
	restaurantID   string
	includeDeleted bool
	eventType      string
	apply          func(ctx context.Context, restaurant *entity.Restaurant, categoryRepo repository.RestaurantCategoryRepository) error
}

// mutate loads, checks ownership, applies, saves and publishes.
func (srv *restaurantService) mutate(ctx context.Context, actor usecase.Actor, m mutation) (*usecase.RestaurantView, error) {
	var result *usecase.RestaurantView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		restaurantRepo := repoFactory.NewRestaurantRepository()
		categoryRepo := repoFactory.NewRestaurantCategoryRepository()

		var (
			restaurant *entity.Restaurant
			err        error
		)
		if m.includeDeleted {
			restaurant, err = restaurantRepo.FindByIDIncludingDeleted(ctx, m.restaurantID)
		} else {
			restaurant, err = restaurantRepo.FindByID(ctx, m.restaurantID)
		}
		if err != nil {
			return translateRestaurantErr(err, m.restaurantID)
		}
		if err := ensureOwner(actor, restaurant); err != nil {
			return err
		}

		before := restaurant.ActiveCategoryIDs()
		if err := m.apply(ctx, restaurant, categoryRepo); err != nil {
			return err
		}
		if err := restaurantRepo.Save(ctx, restaurant); err != nil {
			return errors.Wrap(err, "failed to save restaurant")
		}
		if err := adjustRestaurantCounts(ctx, categoryRepo, before, restaurant.ActiveCategoryIDs()); err != nil {
			return err
		}

		categories, err := resolveCategories(ctx, categoryRepo, m.includeDeleted, restaurant)
		if err != nil {
			return err
		}
		result = srv.view(restaurant, categories, m.includeDeleted)

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, actor, service.CatalogEvent{
		Type:         m.eventType,
		RestaurantID: result.Restaurant.ID,
		Status:       result.Restaurant.Status.String(),
	})

	return result, nil
}

// reconcileCategories validates ids against the shared taxonomy and sets them as the active links.
func reconcileCategories(ctx context.Context, restaurant *entity.Restaurant, categoryRepo repository.RestaurantCategoryRepository, ids []string, primaryID, actor string) error {
	ids = uniqueNonBlank(ids)
	if _, err := requireCategories(ctx, categoryRepo, ids); err != nil {
		return err
	}
	restaurant.ReconcileCategories(ids, primaryOrFirst(ids, primaryID), actor)

	return nil
}

// UpdateRestaurant replaces the editable details of the restaurant.
func (srv *restaurantService) UpdateRestaurant(ctx context.Context, actor usecase.Actor, restaurantID string, input usecase.UpdateRestaurantInput) (*usecase.RestaurantView, error) {
	srv.log(ctx).Info("Updating restaurant", slog.String("restaurant_id", restaurantID))

	view, err := srv.mutate(ctx, actor, mutation{
		restaurantID: restaurantID,
		eventType:    constants.EventRestaurantUpdated,
		apply: func(ctx context.Context, restaurant *entity.Restaurant, categoryRepo repository.RestaurantCategoryRepository) error {
			auditName := actor.AuditName()

			coordinate, err := toCoordinate(input.Coordinate)
			if err != nil {
				return err
			}
			if err := restaurant.UpdateBasicInfo(input.RestaurantName, input.ContactNumber, auditName); err != nil {
				return err
			}
			if err := restaurant.UpdateAddress(toAddress(input.Address), auditName); err != nil {
				return err
			}
			restaurant.UpdateCoordinate(coordinate, auditName)

			restaurant.ClearTags()
			for _, tag := range input.Tags {
				restaurant.AddTag(tag)
			}
			if err := reconcileCategories(ctx, restaurant, categoryRepo, input.CategoryIDs, input.PrimaryCategoryID, auditName); err != nil {
				return err
			}

			return applyOperatingDays(restaurant, input.OperatingDays)
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update restaurant")
	}

	return view, nil
}

// PatchRestaurant changes only the given fields.
func (srv *restaurantService) PatchRestaurant(ctx context.Context, actor usecase.Actor, restaurantID string, input usecase.PatchRestaurantInput) (*usecase.RestaurantView, error) {
	view, err := srv.mutate(ctx, actor, mutation{
		restaurantID: restaurantID,
		eventType:    constants.EventRestaurantUpdated,
		apply: func(ctx context.Context, restaurant *entity.Restaurant, categoryRepo repository.RestaurantCategoryRepository) error {
			auditName := actor.AuditName()

			if input.RestaurantName != nil || input.ContactNumber != nil {
				name, contact := restaurant.RestaurantName, restaurant.ContactNumber
				if input.RestaurantName != nil {
					name = *input.RestaurantName
				}
				if input.ContactNumber != nil {
					contact = *input.ContactNumber
				}
				if err := restaurant.UpdateBasicInfo(name, contact, auditName); err != nil {
					return err
				}
			}
			if input.Address != nil {
				if err := restaurant.UpdateAddress(patchAddress(restaurant.Address, input.Address), auditName); err != nil {
					return err
				}
			}
			if input.Coordinate != nil {
				coordinate, err := toCoordinate(input.Coordinate)
				if err != nil {
					return err
				}
				restaurant.UpdateCoordinate(coordinate, auditName)
			}
			if input.Status != nil {
				status, err := entity.ParseRestaurantStatus(*input.Status)
				if err != nil {
					return err
				}
				if err := restaurant.ChangeStatus(status, auditName); err != nil {
					return err
				}
			}
			if input.Tags != nil {
				restaurant.ClearTags()
				for _, tag := range input.Tags {
					restaurant.AddTag(tag)
				}
			}
			if input.CategoryIDs != nil || input.PrimaryCategoryID != nil {
				ids := input.CategoryIDs
				if ids == nil {
					ids = restaurant.ActiveCategoryIDs()
				}
				primaryID := restaurant.PrimaryCategoryID()
				if input.PrimaryCategoryID != nil {
					primaryID = *input.PrimaryCategoryID
				}

				return reconcileCategories(ctx, restaurant, categoryRepo, ids, primaryID, auditName)
			}

			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to patch restaurant")
	}

	return view, nil
}

// ChangeStatus moves the restaurant to another status.
func (srv *restaurantService) ChangeStatus(ctx context.Context, actor usecase.Actor, restaurantID, status string) (*usecase.RestaurantView, error) {
	next, err := entity.ParseRestaurantStatus(status)
	if err != nil {
		return nil, err
	}

	view, err := srv.mutate(ctx, actor, mutation{
		restaurantID: restaurantID,
		eventType:    constants.EventRestaurantStatusChanged,
		apply: func(_ context.Context, restaurant *entity.Restaurant, _ repository.RestaurantCategoryRepository) error {
			return restaurant.ChangeStatus(next, actor.AuditName())
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to change restaurant status")
	}

	return view, nil
}

// SetOperatingDay stores one window, replacing the window with the same day and time type.
func (srv *restaurantService) SetOperatingDay(ctx context.Context, actor usecase.Actor, restaurantID string, input usecase.OperatingDayInput) (*usecase.RestaurantView, error) {
	params, err := toOperatingDayParams(input)
	if err != nil {
		return nil, err
	}

	view, err := srv.mutate(ctx, actor, mutation{
		restaurantID: restaurantID,
		eventType:    constants.EventRestaurantUpdated,
		apply: func(_ context.Context, restaurant *entity.Restaurant, _ repository.RestaurantCategoryRepository) error {
			_, err := restaurant.SetOperatingDay(params)

			return err
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to set operating day")
	}

	return view, nil
}

// RemoveOperatingDay drops one window.
func (srv *restaurantService) RemoveOperatingDay(ctx context.Context, actor usecase.Actor, restaurantID, dayType, timeType string) (*usecase.RestaurantView, error) {
	day, err := entity.ParseDayType(dayType)
	if err != nil {
		return nil, err
	}
	kind := entity.TimeTypeRegular
	if strings.TrimSpace(timeType) != "" {
		if kind, err = entity.ParseOperatingTimeType(timeType); err != nil {
			return nil, err
		}
	}

	view, err := srv.mutate(ctx, actor, mutation{
		restaurantID: restaurantID,
		eventType:    constants.EventRestaurantUpdated,
		apply: func(_ context.Context, restaurant *entity.Restaurant, _ repository.RestaurantCategoryRepository) error {
			return restaurant.RemoveOperatingDay(day, kind)
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to remove operating day")
	}

	return view, nil
}

// SetBreakTime sets the break of the regular window of a day.
func (srv *restaurantService) SetBreakTime(ctx context.Context, actor usecase.Actor, restaurantID, dayType, start, end string) (*usecase.RestaurantView, error) {
	day, err := entity.ParseDayType(dayType)
	if err != nil {
		return nil, err
	}
	breakStart, err := entity.ParseTimeOfDay(start)
	if err != nil {
		return nil, err
	}
	breakEnd, err := entity.ParseTimeOfDay(end)
	if err != nil {
		return nil, err
	}

	view, err := srv.mutate(ctx, actor, mutation{
		restaurantID: restaurantID,
		eventType:    constants.EventRestaurantUpdated,
		apply: func(_ context.Context, restaurant *entity.Restaurant, _ repository.RestaurantCategoryRepository) error {
			return restaurant.SetBreakTime(day, breakStart, breakEnd)
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to set break time")
	}

	return view, nil
}

// DeleteRestaurant soft-deletes the restaurant and cascades to its children.
func (srv *restaurantService) DeleteRestaurant(ctx context.Context, actor usecase.Actor, restaurantID string) error {
	srv.log(ctx).Info("Deleting restaurant", slog.String("restaurant_id", restaurantID))

	_, err := srv.mutate(ctx, actor, mutation{
		restaurantID:   restaurantID,
		includeDeleted: true,
		eventType:      constants.EventRestaurantDeleted,
		apply: func(_ context.Context, restaurant *entity.Restaurant, _ repository.RestaurantCategoryRepository) error {
			return restaurant.Delete(actor.AuditName())
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete restaurant")
	}

	return nil
}

// RestoreRestaurant clears the deleted flags of the restaurant. Children stay deleted.
func (srv *restaurantService) RestoreRestaurant(ctx context.Context, actor usecase.Actor, restaurantID string) (*usecase.RestaurantView, error) {
	srv.log(ctx).Info("Restoring restaurant", slog.String("restaurant_id", restaurantID))

	view, err := srv.mutate(ctx, actor, mutation{
		restaurantID:   restaurantID,
		includeDeleted: true,
		eventType:      constants.EventRestaurantRestored,
		apply: func(_ context.Context, restaurant *entity.Restaurant, _ repository.RestaurantCategoryRepository) error {
			restaurant.Restore(actor.AuditName())

			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to restore restaurant")
	}

	return view, nil
}

// AdminUpdateRestaurant applies a moderation update, deleted restaurants included.
func (srv *restaurantService) AdminUpdateRestaurant(ctx context.Context, actor usecase.Actor, restaurantID string, input usecase.AdminUpdateRestaurantInput) (*usecase.RestaurantView, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WithDetails("administrator role required")
	}

	view, err := srv.mutate(ctx, actor, mutation{
		restaurantID:   restaurantID,
		includeDeleted: true,
		eventType:      constants.EventRestaurantUpdated,
		apply: func(_ context.Context, restaurant *entity.Restaurant, _ repository.RestaurantCategoryRepository) error {
			auditName := actor.AuditName()

			if input.RestaurantName != nil || input.ContactNumber != nil {
				name, contact := restaurant.RestaurantName, restaurant.ContactNumber
				if input.RestaurantName != nil {
					name = *input.RestaurantName
				}
				if input.ContactNumber != nil {
					contact = *input.ContactNumber
				}
				if err := restaurant.UpdateBasicInfo(name, contact, auditName); err != nil {
					return err
				}
			}
			if input.Status != nil {
				status, err := entity.ParseRestaurantStatus(*input.Status)
				if err != nil {
					return err
				}
				if err := restaurant.ChangeStatus(status, auditName); err != nil {
					return err
				}
			}
			if input.IsActive != nil {
				restaurant.SetActive(*input.IsActive, auditName)
			}

			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update restaurant")
	}

	return view, nil
}
