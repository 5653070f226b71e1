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

// restaurantCategoryService implements the RestaurantCategoryUsecase interface.
type restaurantCategoryService struct {
	catalogSupport
}

// NewRestaurantCategoryService is the constructor for restaurantCategoryService.
func NewRestaurantCategoryService(
	txManager repository.TransactionManager,
	categoryRepo repository.RestaurantCategoryRepository,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.RestaurantCategoryUsecase {
	return &restaurantCategoryService{
		catalogSupport: newCatalogSupport(txManager, categoryRepo, publisher, cfg, logger),
	}
}

func requireAdmin(actor usecase.Actor) error {
	if !actor.IsAdmin() {
		return domainerrors.ErrForbidden.WithDetails("administrator role required")
	}

	return nil
}

// CreateCategory adds a shared category. A parent id that matches no category creates a root.
func (srv *restaurantCategoryService) CreateCategory(ctx context.Context, actor usecase.Actor, input usecase.CreateCategoryInput) (*entity.RestaurantCategory, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	srv.log(ctx).Info("Creating restaurant category", slog.String("code", code))

	var category *entity.RestaurantCategory

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.NewRestaurantCategoryRepository()

		exists, err := categoryRepo.ExistsByCode(ctx, code)
		if err != nil {
			return errors.Wrap(err, "failed to check category code")
		}
		if exists {
			return domainerrors.ErrDuplicateCategoryCode.WithDetails(code)
		}

		var parent *entity.RestaurantCategory
		if input.ParentID != nil && strings.TrimSpace(*input.ParentID) != "" {
			parent, err = categoryRepo.FindByID(ctx, *input.ParentID)
			if err != nil && !errors.Is(err, repository.ErrRestaurantCategoryNotFound) {
				return errors.Wrap(err, "failed to find parent category")
			}
		}

		auditName := actor.AuditName()
		created, err := entity.NewRestaurantCategory(entity.RestaurantCategoryParams{
			Code:         code,
			Name:         input.Name,
			Description:  input.Description,
			IconURL:      input.IconURL,
			ColorCode:    input.ColorCode,
			DisplayOrder: input.DisplayOrder,
			IsNew:        input.IsNew,
		}, parent, auditName)
		if err != nil {
			return err
		}
		if input.IsPopular {
			created.SetPopular(true, auditName)
		}
		if input.DefaultMinimumOrderAmount != nil || input.AverageDeliveryTime != nil || input.PlatformCommissionRate != nil {
			created.SetPolicyInfo(input.DefaultMinimumOrderAmount, input.AverageDeliveryTime, input.PlatformCommissionRate, auditName)
		}

		if err := categoryRepo.Save(ctx, created); err != nil {
			return err
		}
		category = created

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create restaurant category")
	}

	srv.publishCategory(ctx, actor, category.ID)

	return category, nil
}

func (srv *restaurantCategoryService) publishCategory(ctx context.Context, actor usecase.Actor, categoryID string) {
	srv.publish(ctx, actor, service.CatalogEvent{
		Type:       constants.EventCategoryChanged,
		CategoryID: categoryID,
	})
}

// GetCategory returns an undeleted category.
func (srv *restaurantCategoryService) GetCategory(ctx context.Context, categoryID string) (*entity.RestaurantCategory, error) {
	category, err := srv.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, translateCategoryErr(err, categoryID)
	}

	return category, nil
}

// ListRoots lists the active top-level categories.
func (srv *restaurantCategoryService) ListRoots(ctx context.Context) ([]*entity.RestaurantCategory, error) {
	categories, err := srv.categoryRepo.FindRoots(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list root categories")
	}

	return categories, nil
}

// ListChildren lists the active children of a category.
func (srv *restaurantCategoryService) ListChildren(ctx context.Context, parentID string) ([]*entity.RestaurantCategory, error) {
	categories, err := srv.categoryRepo.FindByParentID(ctx, parentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list child categories")
	}

	return categories, nil
}

// Hierarchy nests every active category under its parent. Orphans become roots.
func (srv *restaurantCategoryService) Hierarchy(ctx context.Context) ([]*usecase.CategoryNode, error) {
	categories, err := srv.categoryRepo.FindAll(ctx, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return buildCategoryTree(categories), nil
}

// buildCategoryTree keeps the input order among siblings.
func buildCategoryTree(categories []*entity.RestaurantCategory) []*usecase.CategoryNode {
	nodes := make(map[string]*usecase.CategoryNode, len(categories))
	for _, category := range categories {
		nodes[category.ID] = &usecase.CategoryNode{RestaurantCategory: category}
	}

	roots := make([]*usecase.CategoryNode, 0)
	for _, category := range categories {
		node := nodes[category.ID]
		if category.ParentCategoryID != nil {
			if parent, ok := nodes[*category.ParentCategoryID]; ok {
				parent.Children = append(parent.Children, node)

				continue
			}
		}
		roots = append(roots, node)
	}

	return roots
}

// ListPopular lists the active categories flagged popular.
func (srv *restaurantCategoryService) ListPopular(ctx context.Context) ([]*entity.RestaurantCategory, error) {
	categories, err := srv.categoryRepo.FindPopular(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list popular categories")
	}

	return categories, nil
}

// changeCategory loads, applies and saves one category inside a transaction.
func (srv *restaurantCategoryService) changeCategory(ctx context.Context, actor usecase.Actor, categoryID string, includeDeleted bool, apply func(category *entity.RestaurantCategory) error) (*entity.RestaurantCategory, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	var category *entity.RestaurantCategory

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.NewRestaurantCategoryRepository()

		var (
			found *entity.RestaurantCategory
			err   error
		)
		if includeDeleted {
			found, err = categoryRepo.FindByIDIncludingDeleted(ctx, categoryID)
		} else {
			found, err = categoryRepo.FindByID(ctx, categoryID)
		}
		if err != nil {
			return translateCategoryErr(err, categoryID)
		}
		if err := apply(found); err != nil {
			return err
		}
		if err := categoryRepo.Save(ctx, found); err != nil {
			return err
		}
		category = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.publishCategory(ctx, actor, category.ID)

	return category, nil
}

// UpdateCategory changes the given fields of a category.
func (srv *restaurantCategoryService) UpdateCategory(ctx context.Context, actor usecase.Actor, categoryID string, input usecase.UpdateCategoryInput) (*entity.RestaurantCategory, error) {
	category, err := srv.changeCategory(ctx, actor, categoryID, false, func(category *entity.RestaurantCategory) error {
		auditName := actor.AuditName()

		name, description, iconURL, colorCode, order := category.CategoryName, category.Description, category.IconURL, category.ColorCode, category.DisplayOrder
		if input.Name != nil {
			name = *input.Name
		}
		if input.Description != nil {
			description = *input.Description
		}
		if input.IconURL != nil {
			iconURL = *input.IconURL
		}
		if input.ColorCode != nil {
			colorCode = *input.ColorCode
		}
		if input.DisplayOrder != nil {
			order = *input.DisplayOrder
		}
		if err := category.Update(name, description, iconURL, colorCode, order, auditName); err != nil {
			return err
		}

		if input.IsActive != nil {
			category.SetActive(*input.IsActive, auditName)
		}
		if input.IsPopular != nil {
			category.SetPopular(*input.IsPopular, auditName)
		}
		if input.IsNew != nil {
			category.SetNew(*input.IsNew, auditName)
		}
		if input.DefaultMinimumOrderAmount != nil || input.AverageDeliveryTime != nil || input.PlatformCommissionRate != nil {
			minimum, delivery, commission := category.DefaultMinimumOrderAmount, category.AverageDeliveryTime, category.PlatformCommissionRate
			if input.DefaultMinimumOrderAmount != nil {
				minimum = input.DefaultMinimumOrderAmount
			}
			if input.AverageDeliveryTime != nil {
				delivery = input.AverageDeliveryTime
			}
			if input.PlatformCommissionRate != nil {
				commission = input.PlatformCommissionRate
			}
			category.SetPolicyInfo(minimum, delivery, commission, auditName)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update restaurant category")
	}

	return category, nil
}

// DeleteCategory soft-deletes and deactivates a category. Restaurant links are left as they are.
func (srv *restaurantCategoryService) DeleteCategory(ctx context.Context, actor usecase.Actor, categoryID string) error {
	srv.log(ctx).Info("Deleting restaurant category", slog.String("category_id", categoryID))

	_, err := srv.changeCategory(ctx, actor, categoryID, false, func(category *entity.RestaurantCategory) error {
		category.Delete(actor.AuditName())

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete restaurant category")
	}

	return nil
}

// RestoreCategory undoes DeleteCategory.
func (srv *restaurantCategoryService) RestoreCategory(ctx context.Context, actor usecase.Actor, categoryID string) (*entity.RestaurantCategory, error) {
	category, err := srv.changeCategory(ctx, actor, categoryID, true, func(category *entity.RestaurantCategory) error {
		category.Restore(actor.AuditName())

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to restore restaurant category")
	}

	return category, nil
}
