package upstream

import (
	"fmt"

	"github.com/gocarina/gocsv"

	"github.com/carloworks/covid-data-api/internal/domain"
)

// CSV parsing boundary: delimited text into ordered slices of typed rows.
// Row order is preserved exactly as given by the source, which the
// normalizer depends on for increment computation.

// ParseWorldRows parses the worldwide-aggregate CSV.
func ParseWorldRows(text string) ([]domain.WorldRow, error) {
	var rows []domain.WorldRow
	if err := gocsv.UnmarshalString(text, &rows); err != nil {
		return nil, fmt.Errorf("world csv: %w: %w", domain.ErrParse, err)
	}
	return rows, nil
}

// ParseCountryRows parses the countries-aggregated CSV.
func ParseCountryRows(text string) ([]domain.CountryRow, error) {
	var rows []domain.CountryRow
	if err := gocsv.UnmarshalString(text, &rows); err != nil {
		return nil, fmt.Errorf("countries csv: %w: %w", domain.ErrParse, err)
	}
	return rows, nil
}

// ParseProvinceRows parses the combined per-province time-series CSV.
func ParseProvinceRows(text string) ([]domain.ProvinceRow, error) {
	var rows []domain.ProvinceRow
	if err := gocsv.UnmarshalString(text, &rows); err != nil {
		return nil, fmt.Errorf("time series csv: %w: %w", domain.ErrParse, err)
	}
	return rows, nil
}

// ParseVaccineRows parses the vaccinations CSV. Unreported numeric cells
// come back as nil pointers so normalization can forward-fill them.
func ParseVaccineRows(text string) ([]domain.VaccineRow, error) {
	var rows []domain.VaccineRow
	if err := gocsv.UnmarshalString(text, &rows); err != nil {
		return nil, fmt.Errorf("vaccinations csv: %w: %w", domain.ErrParse, err)
	}
	return rows, nil
}
