package domain

// Vaccination normalization and the date-aligned splice into case records.

// NormalizeVaccine groups vaccination rows by ISO-3 code into per-entity day
// sequences, forward-fills sparse cumulative fields, and keeps only entities
// with a 2-letter code mapping (continent and income-group aggregates have
// none). Row order within one entity must be date-ascending.
func NormalizeVaccine(rows []VaccineRow) []*VaccineSeries {
	type accum struct {
		country string
		rows    []VaccineRow
	}
	var order []string
	groups := make(map[string]*accum)

	for _, row := range rows {
		g, ok := groups[row.ISOCode]
		if !ok {
			g = &accum{country: row.Location}
			groups[row.ISOCode] = g
			order = append(order, row.ISOCode)
		}
		g.rows = append(g.rows, row)
	}

	out := make([]*VaccineSeries, 0, len(order))
	for _, iso3 := range order {
		iso2, ok := ISO3To2[iso3]
		if !ok {
			continue
		}
		g := groups[iso3]
		series := &VaccineSeries{
			ISO:     iso2,
			Country: g.country,
			Data:    make([]*VaccineDayRecord, 0, len(g.rows)),
		}
		var prev *VaccineDayRecord
		for _, row := range g.rows {
			rec := &VaccineDayRecord{Date: row.Date}
			// A gap in cumulative reporting means "unchanged", never zero.
			rec.Total = fillForward(row.Total, prev, func(p *VaccineDayRecord) float64 { return p.Total })
			rec.TotalPerHundred = fillForward(row.TotalPerHundred, prev, func(p *VaccineDayRecord) float64 { return p.TotalPerHundred })
			if row.Daily != nil {
				rec.Daily = *row.Daily
			}
			if row.DailyPerMillion != nil {
				rec.DailyPerMillion = *row.DailyPerMillion
			}
			series.Data = append(series.Data, rec)
			prev = rec
		}
		out = append(out, series)
	}
	return out
}

func fillForward(v *float64, prev *VaccineDayRecord, get func(*VaccineDayRecord) float64) float64 {
	if v != nil {
		return *v
	}
	if prev != nil {
		return get(prev)
	}
	return 0
}

// SpliceVaccine merges vaccination fields into case day records by date
// alignment. Both sequences must be date-ascending: once the first matching
// date is found, fields are copied in lockstep until the vaccination
// sequence is exhausted. Days outside that window are left untouched.
//
// This mutates days in place. It is only ever applied to records re-read
// from disk, never to a frozen in-memory snapshot.
func SpliceVaccine(days []*DayRecord, vaccine []*VaccineDayRecord) {
	if len(vaccine) == 0 {
		return
	}
	idx := -1
	for _, day := range days {
		if day.Date == vaccine[0].Date {
			idx = 0
		}
		if idx >= 0 && idx < len(vaccine) && day.Date == vaccine[idx].Date {
			v := vaccine[idx]
			day.Total = ptr(v.Total)
			day.TotalPerHundred = ptr(v.TotalPerHundred)
			day.Daily = ptr(v.Daily)
			day.DailyPerMillion = ptr(v.DailyPerMillion)
			idx++
		}
	}
}

func ptr(v float64) *float64 { return &v }
