package domain

import "time"

// Court identifies a bookable resource owned by a complex.
// Immutable during slot computation.
type Court struct {
	ID           int64
	ComplexID    int64
	SportID      int64
	Name         string
	SurfaceType  *string
	PricePerHour float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Complex группа кортов одного владельца по одному адресу
type Complex struct {
	ID          int64
	OwnerID     int64
	LocalityID  int64
	Name        string
	Address     string
	Description *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CourtSearchFilter фильтр для поиска кортов.
// Все поля опциональны, nil - без ограничения.
type CourtSearchFilter struct {
	ProvinceID *int64
	LocalityID *int64
	SportID    *int64
}

// CourtSearchResult корт с данными комплекса и вида спорта для выдачи поиска
type CourtSearchResult struct {
	Court        Court
	ComplexName  string
	Address      string
	LocalityName string
	ProvinceName string
	SportName    string
}
