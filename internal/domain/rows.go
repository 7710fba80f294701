package domain

// Raw CSV row types. The csv tags name the upstream columns; the parser in
// the upstream adapter fills them with typed values.

// WorldRow is one row of the worldwide-aggregate source: one date, no
// entity key.
type WorldRow struct {
	Date      string `csv:"Date"`
	Confirmed int64  `csv:"Confirmed"`
	Recovered int64  `csv:"Recovered"`
	Deaths    int64  `csv:"Deaths"`
}

// CountryRow is one row of the countries-aggregated source.
type CountryRow struct {
	Date      string `csv:"Date"`
	Country   string `csv:"Country"`
	Confirmed int64  `csv:"Confirmed"`
	Recovered int64  `csv:"Recovered"`
	Deaths    int64  `csv:"Deaths"`
}

// ProvinceRow is one row of the combined per-province time-series source.
// Province is empty for country-aggregate rows, which the normalizer skips.
type ProvinceRow struct {
	Date      string `csv:"Date"`
	Country   string `csv:"Country/Region"`
	Province  string `csv:"Province/State"`
	Confirmed int64  `csv:"Confirmed"`
	Recovered int64  `csv:"Recovered"`
	Deaths    int64  `csv:"Deaths"`
}

// VaccineRow is one row of the vaccinations source. Pointer fields
// distinguish "not reported" from zero; forward-filling depends on that.
type VaccineRow struct {
	ISOCode         string   `csv:"iso_code"`
	Location        string   `csv:"location"`
	Date            string   `csv:"date"`
	Total           *float64 `csv:"total_vaccinations"`
	TotalPerHundred *float64 `csv:"total_vaccinations_per_hundred"`
	Daily           *float64 `csv:"daily_vaccinations"`
	DailyPerMillion *float64 `csv:"daily_vaccinations_per_million"`
}
