package domain

// Series normalization: fold raw rows from the three case sources into the
// hierarchical snapshot. Row order within one entity must match source order
// (date-ascending); every increment is computed against the immediately
// preceding record of the same entity.

const (
	worldKey      = "World"
	taiwanSource  = "Taiwan*"
	taiwanCountry = "China"
	taiwanName    = "Taiwan"
)

// entityAccum is the mutable working form of one country during the fold.
type entityAccum struct {
	iso           string
	data          []*DayRecord
	provinceOrder []string
	provinces     map[string]*ProvinceSeries
}

// snapshotBuilder accumulates entities in first-seen order so the output is
// deterministic for identical inputs.
type snapshotBuilder struct {
	order    []string
	entities map[string]*entityAccum
}

func newSnapshotBuilder() *snapshotBuilder {
	return &snapshotBuilder{entities: make(map[string]*entityAccum)}
}

func (b *snapshotBuilder) entity(country string) *entityAccum {
	if e, ok := b.entities[country]; ok {
		return e
	}
	e := &entityAccum{
		iso:       CountryCode[country],
		provinces: make(map[string]*ProvinceSeries),
	}
	b.entities[country] = e
	b.order = append(b.order, country)
	return e
}

func (b *snapshotBuilder) province(country, province string) *ProvinceSeries {
	e := b.entity(country)
	if p, ok := e.provinces[province]; ok {
		return p
	}
	p := &ProvinceSeries{
		Province: province,
		ISO:      ProvinceCode[province],
	}
	e.provinces[province] = p
	e.provinceOrder = append(e.provinceOrder, province)
	return p
}

// Normalize folds the three case sources into a fresh snapshot. The returned
// snapshot is frozen: callers must not mutate it.
func Normalize(world []WorldRow, countries []CountryRow, provinces []ProvinceRow) Snapshot {
	b := newSnapshotBuilder()
	updateTime := clock.Now().UnixMilli()

	// Synthetic root. Its children are filled from the country fold below.
	w := b.entity(worldKey)
	for _, row := range world {
		w.data = append(w.data, newDayRecord(row.Date, row.Confirmed, row.Recovered, row.Deaths, w.data, updateTime))
	}

	for _, row := range countries {
		if row.Country == taiwanSource {
			// Absorbed into China via the province fold.
			continue
		}
		e := b.entity(row.Country)
		e.data = append(e.data, newDayRecord(row.Date, row.Confirmed, row.Recovered, row.Deaths, e.data, updateTime))
	}

	// World's per-country breakdown shares the country's own day slice.
	// Registered after the country fold so each child sees the full series.
	for _, country := range b.order {
		if country == worldKey {
			continue
		}
		e := b.entities[country]
		w.provinces[country] = &ProvinceSeries{
			Province: country,
			ISO:      e.iso,
			Data:     e.data,
		}
		w.provinceOrder = append(w.provinceOrder, country)
	}

	for _, row := range provinces {
		country, province := row.Country, row.Province
		if country == taiwanSource {
			country, province = taiwanCountry, taiwanName
		} else if province == "" {
			// Country-aggregate rows duplicate the countries source.
			continue
		}
		p := b.province(country, province)
		p.Data = append(p.Data, newDayRecord(row.Date, row.Confirmed, row.Recovered, row.Deaths, p.Data, updateTime))
	}

	return b.build()
}

// newDayRecord derives CurrentConfirmed and the increment fields against the
// last record of prev. A first day keeps its absolute values as increments.
func newDayRecord(date string, confirmed, recovered, deaths int64, prev []*DayRecord, updateTime int64) *DayRecord {
	current := confirmed - deaths - recovered
	rec := &DayRecord{
		Date:                 date,
		Confirmed:            confirmed,
		Recovered:            recovered,
		Deaths:               deaths,
		CurrentConfirmed:     current,
		ConfirmedIncr:        confirmed,
		CurrentConfirmedIncr: current,
		RecoveredIncr:        recovered,
		DeathsIncr:           deaths,
		UpdateTime:           updateTime,
	}
	if len(prev) > 0 {
		last := prev[len(prev)-1]
		rec.ConfirmedIncr = confirmed - last.Confirmed
		rec.CurrentConfirmedIncr = current - last.CurrentConfirmed
		rec.RecoveredIncr = recovered - last.Recovered
		rec.DeathsIncr = deaths - last.Deaths
	}
	return rec
}

func (b *snapshotBuilder) build() Snapshot {
	snap := make(Snapshot, 0, len(b.order))
	for _, country := range b.order {
		e := b.entities[country]
		series := &EntitySeries{
			Country:   country,
			ISO:       e.iso,
			Data:      e.data,
			Provinces: make([]*ProvinceSeries, 0, len(e.provinceOrder)),
		}
		for _, name := range e.provinceOrder {
			series.Provinces = append(series.Provinces, e.provinces[name])
		}
		snap = append(snap, series)
	}
	return snap
}
