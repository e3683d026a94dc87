package masterdata

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SC-BookingService/internal/domain"
	"github.com/m04kA/SC-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SC-BookingService/pkg/psqlbuilder"
)

// Repository читающий репозиторий справочных данных
// (виды спорта, провинции, населённые пункты)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочников
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListSports возвращает все виды спорта
func (r *Repository) ListSports(ctx context.Context) ([]*domain.Sport, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("sports").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListSports - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSports - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sports := make([]*domain.Sport, 0)
	for rows.Next() {
		var s domain.Sport
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("%w: ListSports - scan row: %v", ErrScanRow, err)
		}
		sports = append(sports, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSports - rows error: %v", ErrScanRow, err)
	}

	return sports, nil
}

// ListProvinces возвращает все провинции
func (r *Repository) ListProvinces(ctx context.Context) ([]*domain.Province, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("provinces").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListProvinces - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListProvinces - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	provinces := make([]*domain.Province, 0)
	for rows.Next() {
		var p domain.Province
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("%w: ListProvinces - scan row: %v", ErrScanRow, err)
		}
		provinces = append(provinces, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListProvinces - rows error: %v", ErrScanRow, err)
	}

	return provinces, nil
}

// ListLocalitiesByProvince возвращает населённые пункты провинции
func (r *Repository) ListLocalitiesByProvince(ctx context.Context, provinceID int64) ([]*domain.Locality, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "province_id", "name").
		From("localities").
		Where(squirrel.Eq{"province_id": provinceID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListLocalitiesByProvince - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListLocalitiesByProvince - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	localities := make([]*domain.Locality, 0)
	for rows.Next() {
		var l domain.Locality
		if err := rows.Scan(&l.ID, &l.ProvinceID, &l.Name); err != nil {
			return nil, fmt.Errorf("%w: ListLocalitiesByProvince - scan row: %v", ErrScanRow, err)
		}
		localities = append(localities, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListLocalitiesByProvince - rows error: %v", ErrScanRow, err)
	}

	return localities, nil
}
