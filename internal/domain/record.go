package domain

// DayRecord is one calendar day of case data for one entity. JSON field
// names match the files any existing consumer already reads.
//
// The vaccination pointer fields stay nil until the vaccine merger splices
// values in; omitempty keeps them out of files written before that.
type DayRecord struct {
	Date             string `json:"Date"`
	Confirmed        int64  `json:"Confirmed"`
	Recovered        int64  `json:"Recovered"`
	Deaths           int64  `json:"Deaths"`
	CurrentConfirmed int64  `json:"CurrentConfirmed"`

	ConfirmedIncr        int64 `json:"ConfirmedIncr"`
	CurrentConfirmedIncr int64 `json:"CurrentConfirmedIncr"`
	RecoveredIncr        int64 `json:"RecoveredIncr"`
	DeathsIncr           int64 `json:"DeathsIncr"`

	// UpdateTime is the normalization wall-clock stamp in Unix milliseconds.
	UpdateTime int64 `json:"updateTime"`

	Total           *float64 `json:"total,omitempty"`
	TotalPerHundred *float64 `json:"totalPerHundred,omitempty"`
	Daily           *float64 `json:"daily,omitempty"`
	DailyPerMillion *float64 `json:"dailyPerMillion,omitempty"`
}

// ProvinceSeries is a child entity: a province under a country, or a country
// under the synthetic World entity.
type ProvinceSeries struct {
	Province string       `json:"province"`
	ISO      string       `json:"iso"`
	Data     []*DayRecord `json:"data"`
}

// EntitySeries is a top-level entity (World or a country) with its own day
// sequence and child series. Within one in-memory snapshot, World's children
// share the Data slices of the corresponding country entities.
type EntitySeries struct {
	Country   string            `json:"country"`
	ISO       string            `json:"iso"`
	Data      []*DayRecord      `json:"data"`
	Provinces []*ProvinceSeries `json:"provinces"`
}

// Snapshot is the complete result of one normalization pass, ordered by
// first appearance in the source (World first). It is frozen by convention:
// once Normalize returns it, no component mutates it. The next cycle builds
// a brand-new snapshot instead.
type Snapshot []*EntitySeries

// Entity returns the series with the given country key, or nil.
func (s Snapshot) Entity(country string) *EntitySeries {
	for _, e := range s {
		if e.Country == country {
			return e
		}
	}
	return nil
}

// LatestProvince is a child's most recent day, used in the aggregated
// latest file.
type LatestProvince struct {
	Province string     `json:"province"`
	ISO      string     `json:"iso"`
	Data     *DayRecord `json:"data"`
}

// LatestEntry is one entity's most recent day plus a shallow per-child
// snapshot. World carries no children here, matching the original files.
type LatestEntry struct {
	Country   string            `json:"country"`
	ISO       string            `json:"iso"`
	Data      *DayRecord        `json:"data"`
	Provinces []*LatestProvince `json:"provinces"`
}

// Latest reduces a snapshot to its aggregated latest-day form.
func (s Snapshot) Latest() []*LatestEntry {
	out := make([]*LatestEntry, 0, len(s))
	for _, e := range s {
		entry := &LatestEntry{
			Country:   e.Country,
			ISO:       e.ISO,
			Provinces: []*LatestProvince{},
		}
		if len(e.Data) > 0 {
			entry.Data = e.Data[len(e.Data)-1]
		}
		if e.Country != worldKey {
			for _, p := range e.Provinces {
				lp := &LatestProvince{Province: p.Province, ISO: p.ISO}
				if len(p.Data) > 0 {
					lp.Data = p.Data[len(p.Data)-1]
				}
				entry.Provinces = append(entry.Provinces, lp)
			}
		}
		out = append(out, entry)
	}
	return out
}

// VaccineDayRecord is one day of vaccination data for one entity, after
// forward-filling. Values the source never reported remain zero.
type VaccineDayRecord struct {
	Date            string  `json:"date"`
	Total           float64 `json:"total"`
	TotalPerHundred float64 `json:"totalPerHundred"`
	Daily           float64 `json:"daily"`
	DailyPerMillion float64 `json:"dailyPerMillion"`
}

// VaccineSeries is one entity's vaccination day sequence, keyed by the
// 2-letter code used for file naming.
type VaccineSeries struct {
	ISO     string              `json:"iso"`
	Country string              `json:"country"`
	Data    []*VaccineDayRecord `json:"data"`
}

// VaccineLatestEntry is one entity's most recent vaccination day.
type VaccineLatestEntry struct {
	Country string            `json:"country"`
	ISO     string            `json:"iso"`
	Data    *VaccineDayRecord `json:"data"`
}

// VaccineLatest reduces vaccine series to their latest-day form.
func VaccineLatest(series []*VaccineSeries) []*VaccineLatestEntry {
	out := make([]*VaccineLatestEntry, 0, len(series))
	for _, s := range series {
		entry := &VaccineLatestEntry{Country: s.Country, ISO: s.ISO}
		if len(s.Data) > 0 {
			entry.Data = s.Data[len(s.Data)-1]
		}
		out = append(out, entry)
	}
	return out
}

// NewsItem is one syndicated news entry, a pass-through conversion of an
// RSS channel item.
type NewsItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	GUID        string `json:"guid"`
	PubDate     string `json:"pubDate"`
}
