package postgres

import (
	"context"

	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager runs a usecase command as one gorm transaction.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one open transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

// NewRestaurantRepository creates a restaurant repository bound to the transaction.
func (f *gormRepositoryFactory) NewRestaurantRepository() repository.RestaurantRepository {
	return NewRestaurantRepository(f.tx)
}

// NewRestaurantCategoryRepository creates a restaurant category repository bound to the transaction.
func (f *gormRepositoryFactory) NewRestaurantCategoryRepository() repository.RestaurantCategoryRepository {
	return NewRestaurantCategoryRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute commits when fn succeeds and rolls back when it fails or panics. The error of fn is
// returned unchanged; begin and commit failures become ErrTransactionFailed.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&gormRepositoryFactory{tx: tx})

		return fnErr
	})

	switch {
	case fnErr != nil:
		return fnErr
	case err != nil:
		return domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
	default:
		return nil
	}
}
