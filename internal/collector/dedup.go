package collector

import "fueltrack/internal/model"

type obsKey struct {
	station int64
	fuel    int
	unix    int64
}

// dedupObservations drops duplicate (station, fuel, observed_at) readings
// within a single run, keeping the last occurrence. Order of first
// appearance is preserved.
func dedupObservations(obs []model.PriceObservation) []model.PriceObservation {
	if len(obs) < 2 {
		return obs
	}

	out := make([]model.PriceObservation, 0, len(obs))
	index := make(map[obsKey]int, len(obs))

	for _, o := range obs {
		k := obsKey{station: o.StationID, fuel: o.FuelID, unix: o.ObservedAt.UnixMicro()}
		if i, seen := index[k]; seen {
			out[i] = o
			continue
		}
		index[k] = len(out)
		out = append(out, o)
	}

	return out
}
