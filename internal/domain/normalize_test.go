package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frozenClock(t *testing.T) clockwork.Clock {
	t.Helper()
	clk := clockwork.NewFakeClockAt(time.Date(2021, 3, 1, 12, 0, 0, 0, time.UTC))
	SetClock(clk)
	t.Cleanup(func() { SetClock(nil) })
	return clk
}

func TestNormalize_WorldSeries(t *testing.T) {
	frozenClock(t)

	world := []WorldRow{
		{Date: "2021-01-01", Confirmed: 100, Recovered: 20, Deaths: 5},
		{Date: "2021-01-02", Confirmed: 150, Recovered: 30, Deaths: 8},
	}

	snap := Normalize(world, nil, nil)
	require.Len(t, snap, 1)

	w := snap[0]
	assert.Equal(t, "World", w.Country)
	assert.Equal(t, "World", w.ISO)
	require.Len(t, w.Data, 2)

	first := w.Data[0]
	assert.Equal(t, int64(75), first.CurrentConfirmed)
	// A first day keeps its absolute values as increments.
	assert.Equal(t, int64(100), first.ConfirmedIncr)
	assert.Equal(t, int64(75), first.CurrentConfirmedIncr)
	assert.Equal(t, int64(20), first.RecoveredIncr)
	assert.Equal(t, int64(5), first.DeathsIncr)

	second := w.Data[1]
	assert.Equal(t, int64(112), second.CurrentConfirmed)
	assert.Equal(t, int64(50), second.ConfirmedIncr)
	assert.Equal(t, int64(37), second.CurrentConfirmedIncr)
	assert.Equal(t, int64(10), second.RecoveredIncr)
	assert.Equal(t, int64(3), second.DeathsIncr)
}

func TestNormalize_IncrementLaw(t *testing.T) {
	frozenClock(t)

	countries := []CountryRow{
		{Date: "2021-01-01", Country: "Italy", Confirmed: 10, Recovered: 1, Deaths: 0},
		{Date: "2021-01-02", Country: "Italy", Confirmed: 25, Recovered: 4, Deaths: 2},
		{Date: "2021-01-03", Country: "Italy", Confirmed: 60, Recovered: 9, Deaths: 5},
	}

	snap := Normalize(nil, countries, nil)
	italy := snap.Entity("Italy")
	require.NotNil(t, italy)
	require.Len(t, italy.Data, 3)

	for i := 1; i < len(italy.Data); i++ {
		cur, prev := italy.Data[i], italy.Data[i-1]
		assert.Equal(t, cur.Confirmed-prev.Confirmed, cur.ConfirmedIncr, "index %d", i)
		assert.Equal(t, cur.Recovered-prev.Recovered, cur.RecoveredIncr, "index %d", i)
		assert.Equal(t, cur.Deaths-prev.Deaths, cur.DeathsIncr, "index %d", i)
		assert.Equal(t, cur.CurrentConfirmed-prev.CurrentConfirmed, cur.CurrentConfirmedIncr, "index %d", i)
	}
}

func TestNormalize_TaiwanFolding(t *testing.T) {
	frozenClock(t)

	countries := []CountryRow{
		{Date: "2021-01-01", Country: "Taiwan*", Confirmed: 5, Recovered: 0, Deaths: 0},
		{Date: "2021-01-01", Country: "China", Confirmed: 500, Recovered: 100, Deaths: 10},
	}
	provinces := []ProvinceRow{
		{Date: "2021-01-01", Country: "Taiwan*", Confirmed: 5, Recovered: 0, Deaths: 0},
		{Date: "2021-01-01", Country: "China", Province: "Hubei", Confirmed: 400, Recovered: 90, Deaths: 9},
	}

	snap := Normalize(nil, countries, provinces)

	assert.Nil(t, snap.Entity("Taiwan*"), "Taiwan* must never surface as a top-level entity")

	china := snap.Entity("China")
	require.NotNil(t, china)
	names := make([]string, 0, len(china.Provinces))
	var taiwan *ProvinceSeries
	for _, p := range china.Provinces {
		names = append(names, p.Province)
		if p.Province == "Taiwan" {
			taiwan = p
		}
	}
	assert.Contains(t, names, "Hubei")
	require.NotNil(t, taiwan)
	assert.Equal(t, "TW", taiwan.ISO)
	require.Len(t, taiwan.Data, 1)
	assert.Equal(t, int64(5), taiwan.Data[0].Confirmed)
}

func TestNormalize_SkipsRowsWithoutProvince(t *testing.T) {
	frozenClock(t)

	countries := []CountryRow{
		{Date: "2021-01-01", Country: "France", Confirmed: 50, Recovered: 5, Deaths: 1},
	}
	provinces := []ProvinceRow{
		// Country-aggregate duplicate, no province value.
		{Date: "2021-01-01", Country: "France", Confirmed: 50, Recovered: 5, Deaths: 1},
	}

	snap := Normalize(nil, countries, provinces)
	france := snap.Entity("France")
	require.NotNil(t, france)
	assert.Empty(t, france.Provinces)
}

func TestNormalize_WorldChildrenShareCountryData(t *testing.T) {
	frozenClock(t)

	countries := []CountryRow{
		{Date: "2021-01-01", Country: "Germany", Confirmed: 30, Recovered: 2, Deaths: 1},
	}

	snap := Normalize(nil, countries, nil)
	world := snap.Entity("World")
	germany := snap.Entity("Germany")
	require.NotNil(t, world)
	require.NotNil(t, germany)

	require.Len(t, world.Provinces, 1)
	child := world.Provinces[0]
	assert.Equal(t, "Germany", child.Province)
	assert.Equal(t, "DE", child.ISO)
	// Shared handle, not a copy.
	require.Len(t, child.Data, 1)
	assert.Same(t, germany.Data[0], child.Data[0])
}

func TestNormalize_EntityWithoutISOIsRetained(t *testing.T) {
	frozenClock(t)

	countries := []CountryRow{
		{Date: "2021-01-01", Country: "Diamond Princess", Confirmed: 10, Recovered: 0, Deaths: 0},
	}

	snap := Normalize(nil, countries, nil)
	cruise := snap.Entity("Diamond Princess")
	require.NotNil(t, cruise)
	assert.Empty(t, cruise.ISO)
}

func TestNormalize_Deterministic(t *testing.T) {
	frozenClock(t)

	world := []WorldRow{{Date: "2021-01-01", Confirmed: 100, Recovered: 10, Deaths: 1}}
	countries := []CountryRow{
		{Date: "2021-01-01", Country: "Spain", Confirmed: 40, Recovered: 4, Deaths: 1},
		{Date: "2021-01-01", Country: "Italy", Confirmed: 60, Recovered: 6, Deaths: 0},
	}
	provinces := []ProvinceRow{
		{Date: "2021-01-01", Country: "Australia", Province: "Victoria", Confirmed: 3, Recovered: 0, Deaths: 0},
	}

	a, err := json.Marshal(Normalize(world, countries, provinces))
	require.NoError(t, err)
	b, err := json.Marshal(Normalize(world, countries, provinces))
	require.NoError(t, err)

	assert.Equal(t, string(a), string(b))
}

func TestLatest(t *testing.T) {
	frozenClock(t)

	world := []WorldRow{
		{Date: "2021-01-01", Confirmed: 100, Recovered: 10, Deaths: 1},
		{Date: "2021-01-02", Confirmed: 120, Recovered: 15, Deaths: 2},
	}
	countries := []CountryRow{
		{Date: "2021-01-01", Country: "Canada", Confirmed: 8, Recovered: 1, Deaths: 0},
		{Date: "2021-01-02", Country: "Canada", Confirmed: 9, Recovered: 1, Deaths: 0},
	}
	provinces := []ProvinceRow{
		{Date: "2021-01-01", Country: "Canada", Province: "Ontario", Confirmed: 5, Recovered: 1, Deaths: 0},
		{Date: "2021-01-02", Country: "Canada", Province: "Ontario", Confirmed: 6, Recovered: 1, Deaths: 0},
	}

	latest := Normalize(world, countries, provinces).Latest()
	require.Len(t, latest, 2)

	w := latest[0]
	assert.Equal(t, "World", w.Country)
	assert.Equal(t, "2021-01-02", w.Data.Date)
	// World's per-country breakdown is omitted from the latest file.
	assert.Empty(t, w.Provinces)

	ca := latest[1]
	assert.Equal(t, "Canada", ca.Country)
	assert.Equal(t, "2021-01-02", ca.Data.Date)
	require.Len(t, ca.Provinces, 1)
	assert.Equal(t, "Ontario", ca.Provinces[0].Province)
	assert.Equal(t, int64(6), ca.Provinces[0].Data.Confirmed)
}
