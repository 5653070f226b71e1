package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"catalog/config"
	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// catalogSupport holds the collaborators every catalog service shares.
type catalogSupport struct {
	txManager    repository.TransactionManager
	categoryRepo repository.RestaurantCategoryRepository
	publisher    service.EventPublisher
	cfg          *config.CatalogConfig
	logger       *slog.Logger
	clock        func() time.Time
}

func newCatalogSupport(
	txManager repository.TransactionManager,
	categoryRepo repository.RestaurantCategoryRepository,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) catalogSupport {
	catalogCfg := &config.CatalogConfig{}
	if cfg != nil && cfg.Catalog != nil {
		catalogCfg = cfg.Catalog
	}

	return catalogSupport{
		txManager:    txManager,
		categoryRepo: categoryRepo,
		publisher:    publisher,
		cfg:          catalogCfg,
		logger:       logger,
		clock:        time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *catalogSupport) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// localNow is the current instant in the zone opening hours are written in.
func (s *catalogSupport) localNow() time.Time {
	return s.clock().In(s.cfg.Location())
}

// page clamps a page request to the configured sizes.
func (s *catalogSupport) page(req usecase.PageRequest) (repository.Page, usecase.PageRequest) {
	size := req.Size
	if size <= 0 {
		size = s.cfg.DefaultPageSize
	}
	if s.cfg.MaxPageSize > 0 && size > s.cfg.MaxPageSize {
		size = s.cfg.MaxPageSize
	}
	if size <= 0 {
		size = 20
	}
	number := max(req.Page, 0)

	return repository.Page{Number: number, Size: size}, usecase.PageRequest{Page: number, Size: size}
}

// publish emits a catalog event after a committed change. Failures are logged, never returned.
func (s *catalogSupport) publish(ctx context.Context, actor usecase.Actor, event service.CatalogEvent) {
	if s.publisher == nil {
		return
	}

	event.EventID = uuid.NewString()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.ActorID = actor.ID
	event.OccurredAt = s.clock().UTC()

	if err := s.publisher.PublishCatalogEvent(ctx, &event); err != nil {
		s.log(ctx).Warn("Failed to publish catalog event",
			slog.String("type", event.Type),
			slog.String("restaurant_id", event.RestaurantID),
			slog.Any("error", err),
		)
	}
}

// ensureOwner lets administrators through and requires owners to own restaurant.
func ensureOwner(actor usecase.Actor, restaurant *entity.Restaurant) error {
	if actor.IsAdmin() || restaurant.IsOwnedBy(actor.ID) {
		return nil
	}

	return domainerrors.ErrRestaurantOwnershipViolation.WithDetails(restaurant.ID)
}

// translateRestaurantErr maps repository sentinels to domain errors.
func translateRestaurantErr(err error, restaurantID string) error {
	if errors.Is(err, repository.ErrRestaurantNotFound) {
		return domainerrors.ErrRestaurantNotFound.WithDetails(restaurantID)
	}

	return errors.Wrap(err, "failed to find restaurant")
}

// translateCategoryErr maps repository sentinels to domain errors.
func translateCategoryErr(err error, categoryID string) error {
	if errors.Is(err, repository.ErrRestaurantCategoryNotFound) {
		return domainerrors.ErrRestaurantCategoryNotFound.WithDetails(categoryID)
	}

	return errors.Wrap(err, "failed to find restaurant category")
}

// loadOwnedRestaurant finds an undeleted restaurant and checks the actor may change it.
func loadOwnedRestaurant(ctx context.Context, repo repository.RestaurantRepository, actor usecase.Actor, restaurantID string) (*entity.Restaurant, error) {
	restaurant, err := repo.FindByID(ctx, restaurantID)
	if err != nil {
		return nil, translateRestaurantErr(err, restaurantID)
	}
	if err := ensureOwner(actor, restaurant); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// resolveCategories loads the shared categories of every restaurant in one batch.
func resolveCategories(ctx context.Context, repo repository.RestaurantCategoryRepository, includeDeleted bool, restaurants ...*entity.Restaurant) (map[string]*entity.RestaurantCategory, error) {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, restaurant := range restaurants {
		for _, rel := range restaurant.CategoryRelations {
			if !includeDeleted && !rel.IsActive() {
				continue
			}
			if _, ok := seen[rel.CategoryID]; ok {
				continue
			}
			seen[rel.CategoryID] = struct{}{}
			ids = append(ids, rel.CategoryID)
		}
	}
	if len(ids) == 0 {
		return map[string]*entity.RestaurantCategory{}, nil
	}
	sort.Strings(ids)

	categories, err := repo.FindAllByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load restaurant categories")
	}

	byID := make(map[string]*entity.RestaurantCategory, len(categories))
	for _, category := range categories {
		byID[category.ID] = category
	}

	return byID, nil
}

// requireCategories fails when any id names no undeleted shared category.
func requireCategories(ctx context.Context, repo repository.RestaurantCategoryRepository, ids []string) ([]*entity.RestaurantCategory, error) {
	ids = uniqueNonBlank(ids)
	if len(ids) == 0 {
		return nil, nil
	}

	categories, err := repo.FindAllByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load restaurant categories")
	}

	found := make(map[string]struct{}, len(categories))
	for _, category := range categories {
		found[category.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return nil, domainerrors.ErrRestaurantCategoryNotFound.WithDetails(id)
		}
	}

	return categories, nil
}

func uniqueNonBlank(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}

	return result
}

// primaryOrFirst keeps primaryID when it is one of ids, else falls back to the first id.
func primaryOrFirst(ids []string, primaryID string) string {
	for _, id := range ids {
		if id == primaryID {
			return primaryID
		}
	}
	if len(ids) > 0 {
		return ids[0]
	}

	return ""
}

// toAddress converts an address input, nil when every field is blank. Validation is done by the aggregate.
func toAddress(in usecase.AddressInput) *entity.PostalAddress {
	if strings.TrimSpace(in.Province+in.City+in.District+in.DetailAddress) == "" {
		return nil
	}

	return &entity.PostalAddress{
		Province:      strings.TrimSpace(in.Province),
		City:          strings.TrimSpace(in.City),
		District:      strings.TrimSpace(in.District),
		DetailAddress: strings.TrimSpace(in.DetailAddress),
	}
}

// patchAddress overlays the non-nil fields of patch on current.
func patchAddress(current *entity.PostalAddress, patch *usecase.AddressPatch) *entity.PostalAddress {
	next := entity.PostalAddress{}
	if current != nil {
		next = *current
	}
	if patch.Province != nil {
		next.Province = strings.TrimSpace(*patch.Province)
	}
	if patch.City != nil {
		next.City = strings.TrimSpace(*patch.City)
	}
	if patch.District != nil {
		next.District = strings.TrimSpace(*patch.District)
	}
	if patch.DetailAddress != nil {
		next.DetailAddress = strings.TrimSpace(*patch.DetailAddress)
	}

	return &next
}

// toCoordinate requires both components when a coordinate is given at all.
func toCoordinate(in *usecase.CoordinateInput) (*entity.GeoCoordinate, error) {
	if in == nil {
		return nil, nil
	}

	return entity.ParseGeoCoordinate(in.Latitude, in.Longitude)
}

func parseOptionalTime(raw *string) (*entity.TimeOfDay, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := entity.ParseTimeOfDay(*raw)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// toOperatingDayParams parses the textual window of in.
func toOperatingDayParams(in usecase.OperatingDayInput) (entity.OperatingDayParams, error) {
	dayType, err := entity.ParseDayType(in.DayType)
	if err != nil {
		return entity.OperatingDayParams{}, err
	}

	timeType := entity.TimeTypeRegular
	if strings.TrimSpace(in.TimeType) != "" {
		if timeType, err = entity.ParseOperatingTimeType(in.TimeType); err != nil {
			return entity.OperatingDayParams{}, err
		}
	}

	params := entity.OperatingDayParams{
		DayType:   dayType,
		TimeType:  timeType,
		IsHoliday: in.IsHoliday,
		Note:      in.Note,
	}
	for _, field := range []struct {
		raw *string
		dst **entity.TimeOfDay
	}{
		{in.StartTime, &params.StartTime},
		{in.EndTime, &params.EndTime},
		{in.BreakStart, &params.BreakStart},
		{in.BreakEnd, &params.BreakEnd},
	} {
		if *field.dst, err = parseOptionalTime(field.raw); err != nil {
			return entity.OperatingDayParams{}, err
		}
	}

	return params, nil
}

// applyOperatingDays replaces each given window by key. Windows not mentioned stay.
func applyOperatingDays(restaurant *entity.Restaurant, days []usecase.OperatingDayInput) error {
	for _, in := range days {
		params, err := toOperatingDayParams(in)
		if err != nil {
			return err
		}
		if _, err := restaurant.SetOperatingDay(params); err != nil {
			return err
		}
	}

	return nil
}

// adjustRestaurantCounts keeps the linked-restaurant counter of shared categories in step with a relation change.
func adjustRestaurantCounts(ctx context.Context, repo repository.RestaurantCategoryRepository, before, after []string) error {
	beforeSet := make(map[string]struct{}, len(before))
	for _, id := range before {
		beforeSet[id] = struct{}{}
	}
	afterSet := make(map[string]struct{}, len(after))
	for _, id := range after {
		afterSet[id] = struct{}{}
	}

	changed := make([]string, 0)
	for id := range afterSet {
		if _, ok := beforeSet[id]; !ok {
			changed = append(changed, id)
		}
	}
	for id := range beforeSet {
		if _, ok := afterSet[id]; !ok {
			changed = append(changed, id)
		}
	}
	if len(changed) == 0 {
		return nil
	}
	sort.Strings(changed)

	categories, err := repo.FindAllByIDs(ctx, changed)
	if err != nil {
		return errors.Wrap(err, "failed to load restaurant categories")
	}
	for _, category := range categories {
		if _, added := afterSet[category.ID]; added {
			category.IncrementRestaurantCount()
		} else {
			category.DecrementRestaurantCount()
		}
		if err := repo.Save(ctx, category); err != nil {
			return errors.Wrap(err, "failed to update restaurant category statistics")
		}
	}

	return nil
}
