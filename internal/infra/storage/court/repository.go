package court

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SC-BookingService/internal/domain"
	"github.com/m04kA/SC-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SC-BookingService/pkg/psqlbuilder"
)

// Repository справочник кортов и комплексов: читающие запросы для
// валидации бронирований, проверки владения и поиска.
// Мутации кортов/комплексов выполняет внешний CRUD контур.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория кортов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает корт по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"complex_id",
		"sport_id",
		"name",
		"surface_type",
		"price_per_hour",
		"created_at",
		"updated_at",
	).
		From("courts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var court domain.Court
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&court.ID,
		&court.ComplexID,
		&court.SportID,
		&court.Name,
		&court.SurfaceType,
		&court.PricePerHour,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan court: %v", ErrScanRow, err)
	}

	court.CreatedAt = createdAt.Time
	court.UpdatedAt = updatedAt.Time

	return &court, nil
}

// OwnerOf возвращает ID владельца комплекса
func (r *Repository) OwnerOf(ctx context.Context, complexID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("owner_id").
		From("complexes").
		Where(squirrel.Eq{"id": complexID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: OwnerOf - build select query: %v", ErrBuildQuery, err)
	}

	var ownerID int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&ownerID)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrComplexNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: OwnerOf - scan owner_id: %v", ErrScanRow, err)
	}

	return ownerID, nil
}

// Search ищет корты с опциональной фильтрацией по провинции,
// населённому пункту и виду спорта
func (r *Repository) Search(ctx context.Context, filter domain.CourtSearchFilter) ([]*domain.CourtSearchResult, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"c.id",
		"c.complex_id",
		"c.sport_id",
		"c.name",
		"c.surface_type",
		"c.price_per_hour",
		"cx.name AS complex_name",
		"cx.address",
		"l.name AS locality_name",
		"p.name AS province_name",
		"s.name AS sport_name",
	).
		From("courts c").
		Join("complexes cx ON cx.id = c.complex_id").
		Join("localities l ON l.id = cx.locality_id").
		Join("provinces p ON p.id = l.province_id").
		Join("sports s ON s.id = c.sport_id").
		OrderBy("c.id ASC")

	if filter.ProvinceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"l.province_id": *filter.ProvinceID})
	}
	if filter.LocalityID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"cx.locality_id": *filter.LocalityID})
	}
	if filter.SportID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"c.sport_id": *filter.SportID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Search - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Search - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	results := make([]*domain.CourtSearchResult, 0)
	for rows.Next() {
		var res domain.CourtSearchResult

		err := rows.Scan(
			&res.Court.ID,
			&res.Court.ComplexID,
			&res.Court.SportID,
			&res.Court.Name,
			&res.Court.SurfaceType,
			&res.Court.PricePerHour,
			&res.ComplexName,
			&res.Address,
			&res.LocalityName,
			&res.ProvinceName,
			&res.SportName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: Search - scan row: %v", ErrScanRow, err)
		}

		results = append(results, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Search - rows error: %v", ErrScanRow, err)
	}

	return results, nil
}
