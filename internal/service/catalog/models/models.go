package models

import "github.com/m04kA/SC-BookingService/internal/domain"

// CourtResult корт в выдаче поиска с данными комплекса и вида спорта
type CourtResult struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	SurfaceType  *string `json:"surfaceType,omitempty"`
	PricePerHour float64 `json:"pricePerHour"`
	ComplexID    int64   `json:"complexId"`
	ComplexName  string  `json:"complexName"`
	Address      string  `json:"address"`
	LocalityName string  `json:"localityName"`
	ProvinceName string  `json:"provinceName"`
	SportID      int64   `json:"sportId"`
	SportName    string  `json:"sportName"`
}

// CourtSearchResponse результат поиска кортов
type CourtSearchResponse struct {
	Courts []CourtResult `json:"courts"`
	Total  int           `json:"total"`
}

// NamedItem элемент справочника (вид спорта, провинция)
type NamedItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LocalityItem населённый пункт
type LocalityItem struct {
	ID         int64  `json:"id"`
	ProvinceID int64  `json:"provinceId"`
	Name       string `json:"name"`
}

// FromDomainSearchResults конвертирует результаты поиска кортов
func FromDomainSearchResults(results []*domain.CourtSearchResult) *CourtSearchResponse {
	courts := make([]CourtResult, len(results))
	for i, res := range results {
		courts[i] = CourtResult{
			ID:           res.Court.ID,
			Name:         res.Court.Name,
			SurfaceType:  res.Court.SurfaceType,
			PricePerHour: res.Court.PricePerHour,
			ComplexID:    res.Court.ComplexID,
			ComplexName:  res.ComplexName,
			Address:      res.Address,
			LocalityName: res.LocalityName,
			ProvinceName: res.ProvinceName,
			SportID:      res.Court.SportID,
			SportName:    res.SportName,
		}
	}
	return &CourtSearchResponse{Courts: courts, Total: len(courts)}
}
