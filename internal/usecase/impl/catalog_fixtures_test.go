package impl

import (
	"context"
	"log/slog"
	"testing"

	"catalog/config"
	"catalog/internal/domain/entity"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	mockRepo "catalog/internal/mocks/repository"
	mockSvc "catalog/internal/mocks/service"
	"catalog/internal/usecase"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	ownerActor = usecase.Actor{ID: "owner-1", Roles: []string{entity.RoleOwner.String()}}
	otherActor = usecase.Actor{ID: "owner-2", Roles: []string{entity.RoleOwner.String()}}
	adminActor = usecase.Actor{ID: "admin-1", Roles: []string{entity.RoleAdmin.String()}}
)

// catalogFixtures holds the mocked collaborators shared by the catalog service tests.
type catalogFixtures struct {
	txManager      *mockRepo.MockTransactionManager
	factory        *mockRepo.MockRepositoryFactory
	restaurantRepo *mockRepo.MockRestaurantRepository
	categoryRepo   *mockRepo.MockRestaurantCategoryRepository
	publisher      *mockSvc.MockEventPublisher
	cfg            *config.Config
	logger         *slog.Logger
}

func newCatalogFixtures(t *testing.T) *catalogFixtures {
	t.Helper()

	return &catalogFixtures{
		txManager:      mockRepo.NewMockTransactionManager(t),
		factory:        mockRepo.NewMockRepositoryFactory(t),
		restaurantRepo: mockRepo.NewMockRestaurantRepository(t),
		categoryRepo:   mockRepo.NewMockRestaurantCategoryRepository(t),
		publisher:      mockSvc.NewMockEventPublisher(t),
		cfg: &config.Config{Catalog: &config.CatalogConfig{
			TimeZone:          "Asia/Seoul",
			DefaultPageSize:   20,
			MaxPageSize:       100,
			NearbyMaxRadiusKm: 10,
		}},
		logger: slog.New(slog.DiscardHandler),
	}
}

// expectTx runs the transactional callback against the mocked factory.
func (f *catalogFixtures) expectTx() {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
	f.factory.EXPECT().NewRestaurantRepository().Return(f.restaurantRepo).Maybe()
	f.factory.EXPECT().NewRestaurantCategoryRepository().Return(f.categoryRepo).Maybe()
}

// expectEvent expects one published event of eventType.
func (f *catalogFixtures) expectEvent(eventType string) *mockSvc.MockEventPublisher_PublishCatalogEvent_Call {
	return f.publisher.EXPECT().
		PublishCatalogEvent(mock.Anything, mock.MatchedBy(func(event *service.CatalogEvent) bool {
			return event.Type == eventType && event.EventID != "" && !event.OccurredAt.IsZero()
		})).
		Return(nil)
}

func newOwnedRestaurant(t *testing.T, status entity.RestaurantStatus) *entity.Restaurant {
	t.Helper()

	restaurant, err := entity.NewRestaurant(entity.RestaurantParams{
		OwnerID:        ownerActor.ID,
		OwnerName:      "김사장",
		RestaurantName: "광화문 국밥",
		Status:         status,
		Address:        &entity.PostalAddress{Province: "서울특별시", City: "종로구", District: "광화문동"},
	}, ownerActor.AuditName())
	require.NoError(t, err)

	return restaurant
}

func newSharedCategory(t *testing.T, code string) *entity.RestaurantCategory {
	t.Helper()

	category, err := entity.NewRestaurantCategory(entity.RestaurantCategoryParams{
		Code: code,
		Name: code + " 음식",
	}, nil, "SYSTEM")
	require.NoError(t, err)

	return category
}

func ptr[T any](v T) *T {
	return &v
}
