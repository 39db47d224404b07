package plot

import (
	"slices"
	"time"

	"fueltrack/internal/model"
)

// Options controls how observations are folded into chart series.
type Options struct {
	MaxPrice     int            // Outlier cutoff, tenths of a cent per litre; 0 disables
	ExcludeFuels []string       // Fuel names dropped from the chart
	Location     *time.Location // Timezone for day bucketing; nil means UTC
}

// DailyStat summarizes the price distribution across stations for one
// local day. Prices are in $/L.
type DailyStat struct {
	Day      time.Time // Midnight, local
	Min      float64
	Mean     float64
	Max      float64
	Stations int // Stations with a known price that day
}

// FuelSeries is the daily trend of one fuel type.
type FuelSeries struct {
	Fuel string
	Days []DailyStat
}

// BuildSeries folds window observations into per-fuel daily series.
//
// Stations do not report every day, so the replay carries each station's
// last-known price forward: for every local day the day's readings are
// applied first, then the min/mean/max across all known station prices is
// recorded. Input must be ordered by observation time, as QueryWindow
// returns it. Output series are sorted by fuel name.
func BuildSeries(points []model.PricePoint, opts Options) []FuelSeries {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	excluded := make(map[string]bool, len(opts.ExcludeFuels))
	for _, name := range opts.ExcludeFuels {
		excluded[name] = true
	}

	kept := points[:0:0]
	for _, pt := range points {
		if excluded[pt.FuelName] {
			continue
		}
		if opts.MaxPrice > 0 && pt.Price > opts.MaxPrice {
			continue
		}
		kept = append(kept, pt)
	}
	if len(kept) == 0 {
		return nil
	}

	firstDay := localDay(kept[0].ObservedAt, loc)
	lastDay := localDay(kept[len(kept)-1].ObservedAt, loc)

	// Last-known price per station, per fuel.
	state := make(map[string]map[int64]int)
	byFuel := make(map[string][]DailyStat)

	i := 0
	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		next := day.AddDate(0, 0, 1)

		// Apply this day's readings.
		for i < len(kept) && kept[i].ObservedAt.In(loc).Before(next) {
			pt := kept[i]
			prices := state[pt.FuelName]
			if prices == nil {
				prices = make(map[int64]int)
				state[pt.FuelName] = prices
			}
			prices[pt.StationID] = pt.Price
			i++
		}

		// Snapshot the distribution of known prices.
		for fuel, prices := range state {
			if len(prices) == 0 {
				continue
			}
			byFuel[fuel] = append(byFuel[fuel], summarize(day, prices))
		}
	}

	fuels := make([]string, 0, len(byFuel))
	for fuel := range byFuel {
		fuels = append(fuels, fuel)
	}
	slices.Sort(fuels)

	series := make([]FuelSeries, 0, len(fuels))
	for _, fuel := range fuels {
		series = append(series, FuelSeries{Fuel: fuel, Days: byFuel[fuel]})
	}
	return series
}

func summarize(day time.Time, prices map[int64]int) DailyStat {
	stat := DailyStat{Day: day, Stations: len(prices)}

	minP, maxP, sum := 0, 0, 0
	first := true
	for _, p := range prices {
		if first {
			minP, maxP = p, p
			first = false
		} else {
			minP = min(minP, p)
			maxP = max(maxP, p)
		}
		sum += p
	}

	stat.Min = float64(minP) / model.PriceDivisor
	stat.Max = float64(maxP) / model.PriceDivisor
	stat.Mean = float64(sum) / float64(len(prices)) / model.PriceDivisor
	return stat
}

// localDay truncates a timestamp to midnight in the given location.
func localDay(ts time.Time, loc *time.Location) time.Time {
	local := ts.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
