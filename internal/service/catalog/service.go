package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/SC-BookingService/internal/domain"
	"github.com/m04kA/SC-BookingService/internal/service/catalog/models"
)

// Service сервис каталога: поиск кортов и справочные данные
type Service struct {
	courts     CourtDirectory
	masterData MasterDataRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(courts CourtDirectory, masterData MasterDataRepository, logger Logger) *Service {
	return &Service{
		courts:     courts,
		masterData: masterData,
		logger:     logger,
	}
}

// SearchCourts ищет корты по опциональным фильтрам
func (s *Service) SearchCourts(ctx context.Context, filter domain.CourtSearchFilter) (*models.CourtSearchResponse, error) {
	s.logger.Info("SearchCourts: province=%v, locality=%v, sport=%v",
		filter.ProvinceID, filter.LocalityID, filter.SportID)

	results, err := s.courts.Search(ctx, filter)
	if err != nil {
		s.logger.Error("SearchCourts: repository error: %v", err)
		return nil, fmt.Errorf("%w: SearchCourts - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SearchCourts: found %d courts", len(results))
	return models.FromDomainSearchResults(results), nil
}

// ListSports возвращает все виды спорта
func (s *Service) ListSports(ctx context.Context) ([]models.NamedItem, error) {
	sports, err := s.masterData.ListSports(ctx)
	if err != nil {
		s.logger.Error("ListSports: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSports - repository error: %v", ErrInternal, err)
	}

	items := make([]models.NamedItem, len(sports))
	for i, sport := range sports {
		items[i] = models.NamedItem{ID: sport.ID, Name: sport.Name}
	}
	return items, nil
}

// ListProvinces возвращает все провинции
func (s *Service) ListProvinces(ctx context.Context) ([]models.NamedItem, error) {
	provinces, err := s.masterData.ListProvinces(ctx)
	if err != nil {
		s.logger.Error("ListProvinces: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListProvinces - repository error: %v", ErrInternal, err)
	}

	items := make([]models.NamedItem, len(provinces))
	for i, p := range provinces {
		items[i] = models.NamedItem{ID: p.ID, Name: p.Name}
	}
	return items, nil
}

// ListLocalities возвращает населённые пункты провинции
func (s *Service) ListLocalities(ctx context.Context, provinceID int64) ([]models.LocalityItem, error) {
	if provinceID <= 0 {
		return nil, fmt.Errorf("%w: provinceID must be positive", ErrInvalidInput)
	}

	localities, err := s.masterData.ListLocalitiesByProvince(ctx, provinceID)
	if err != nil {
		s.logger.Error("ListLocalities: repository error for province=%d: %v", provinceID, err)
		return nil, fmt.Errorf("%w: ListLocalities - repository error: %v", ErrInternal, err)
	}

	items := make([]models.LocalityItem, len(localities))
	for i, l := range localities {
		items[i] = models.LocalityItem{ID: l.ID, ProvinceID: l.ProvinceID, Name: l.Name}
	}
	return items, nil
}
