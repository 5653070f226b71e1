package impl

import (
	"context"
	"log/slog"

	"catalog/config"
	"catalog/internal/domain/constants"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
)

// statsService implements the StatsUsecase interface.
type statsService struct {
	catalogSupport
}

// NewStatsService is the constructor for statsService. Counter updates publish no catalog events.
func NewStatsService(
	txManager repository.TransactionManager,
	categoryRepo repository.RestaurantCategoryRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.StatsUsecase {
	return &statsService{
		catalogSupport: newCatalogSupport(txManager, categoryRepo, nil, cfg, logger),
	}
}

// updateRestaurant loads the restaurant, applies fn and saves inside a transaction.
func (srv *statsService) updateRestaurant(ctx context.Context, restaurantID string, fn func(restaurant *entity.Restaurant, categoryRepo repository.RestaurantCategoryRepository) error) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		restaurantRepo := repoFactory.NewRestaurantRepository()

		restaurant, err := restaurantRepo.FindByIDIncludingDeleted(ctx, restaurantID)
		if err != nil {
			return translateRestaurantErr(err, restaurantID)
		}
		if err := fn(restaurant, repoFactory.NewRestaurantCategoryRepository()); err != nil {
			return err
		}
		if err := restaurantRepo.Save(ctx, restaurant); err != nil {
			return errors.Wrap(err, "failed to save statistics")
		}

		return nil
	})
}

// HandleOrderCompleted counts the order on the restaurant, its menus, the chosen options and its shared categories.
// Unknown menus and options are skipped.
func (srv *statsService) HandleOrderCompleted(ctx context.Context, event usecase.OrderCompletedEvent) error {
	logger := srv.log(ctx).With(slog.String("order_id", event.OrderID), slog.String("restaurant_id", event.RestaurantID))

	err := srv.updateRestaurant(ctx, event.RestaurantID, func(restaurant *entity.Restaurant, categoryRepo repository.RestaurantCategoryRepository) error {
		restaurant.IncrementPurchaseCount()

		for _, item := range event.Items {
			menu, err := restaurant.FindMenuByID(item.MenuID)
			if err != nil {
				logger.Warn("Skipping unknown menu in order", slog.String("menu_id", item.MenuID))

				continue
			}
			menu.IncrementPurchaseCount(max(item.Quantity, 1))
			for _, optionID := range item.OptionIDs {
				if option := findOption(menu, optionID); option != nil {
					option.IncrementPurchaseCount()
				}
			}
		}

		categoryIDs := restaurant.ActiveCategoryIDs()
		if len(categoryIDs) == 0 {
			return nil
		}
		categories, err := categoryRepo.FindAllByIDs(ctx, categoryIDs)
		if err != nil {
			return errors.Wrap(err, "failed to load restaurant categories")
		}
		for _, category := range categories {
			category.UpdateStatistics(1)
			if err := categoryRepo.Save(ctx, category); err != nil {
				return errors.Wrap(err, "failed to save statistics")
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to apply order statistics")
	}

	logger.Debug("Order statistics applied", slog.Int("items", len(event.Items)))

	return nil
}

func findOption(menu *entity.Menu, optionID string) *entity.MenuOption {
	for _, group := range menu.OptionGroups {
		if option, err := group.FindOption(optionID); err == nil {
			return option
		}
	}

	return nil
}

// HandleReviewCreated folds the rating into the menu average, or the restaurant average when no menu is named.
func (srv *statsService) HandleReviewCreated(ctx context.Context, event usecase.ReviewCreatedEvent) error {
	err := srv.updateRestaurant(ctx, event.RestaurantID, func(restaurant *entity.Restaurant, _ repository.RestaurantCategoryRepository) error {
		if event.MenuID == "" {
			return restaurant.AddReview(event.Rating)
		}

		menu, err := restaurant.FindMenuByID(event.MenuID)
		if err != nil {
			return err
		}

		return menu.AddReview(event.Rating)
	})
	if err != nil {
		return errors.Wrap(err, "failed to apply review statistics")
	}

	return nil
}

// HandleWishlistChanged adjusts the wishlist counter of the menu, or of the restaurant when no menu is named.
func (srv *statsService) HandleWishlistChanged(ctx context.Context, event usecase.WishlistChangedEvent) error {
	if event.Action != constants.WishlistAdded && event.Action != constants.WishlistRemoved {
		return domainerrors.ErrValidationFailed.WithDetails("unknown wishlist action: " + event.Action)
	}
	added := event.Action == constants.WishlistAdded

	err := srv.updateRestaurant(ctx, event.RestaurantID, func(restaurant *entity.Restaurant, _ repository.RestaurantCategoryRepository) error {
		if event.MenuID == "" {
			if added {
				restaurant.IncrementWishlistCount()
			} else {
				restaurant.DecrementWishlistCount()
			}

			return nil
		}

		menu, err := restaurant.FindMenuByID(event.MenuID)
		if err != nil {
			return err
		}
		if added {
			menu.IncrementWishlistCount()
		} else {
			menu.DecrementWishlistCount()
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to apply wishlist statistics")
	}

	return nil
}
