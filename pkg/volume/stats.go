package volume

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"volumegrid/internal/monitoring"
	"volumegrid/pkg/iterators"
)

// ParcelStat summarises the samples of one parcel
type ParcelStat[L iterators.Label] struct {
	Label  iterators.Key[L]
	Count  int
	Sum    float64
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// ParcelStats walks the parcels of labels and summarises the image samples
// in each. labels must hold one label per sample (or one row per label map
// for compound keys). A nil keys visits every distinct label.
func ParcelStats[L iterators.Label](im *Image, labels iterators.LabelArray[L], keys []iterators.Key[L]) ([]ParcelStat[L], error) {
	it, err := iterators.NewParcelIterator(labels, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to create parcel iterator: %w", err)
	}

	var out []ParcelStat[L]
	for {
		rec, ok := it.NextParcel()
		if !ok {
			break
		}
		values, err := im.Select(rec.Where)
		if err != nil {
			return nil, fmt.Errorf("parcel %v: %w", rec.Label, err)
		}
		out = append(out, summarise(rec.Label, values))
	}

	monitoring.Logf("summarised %d parcels over %d samples", len(out), len(im.vol.Data))
	return out, nil
}

func summarise[L iterators.Label](label iterators.Key[L], values []float64) ParcelStat[L] {
	s := ParcelStat[L]{Label: label, Count: len(values)}
	if len(values) == 0 {
		s.Mean, s.StdDev, s.Min, s.Max = math.NaN(), math.NaN(), math.NaN(), math.NaN()
		return s
	}

	s.Sum = floats.Sum(values)
	s.Min = floats.Min(values)
	s.Max = floats.Max(values)
	if len(values) == 1 {
		s.Mean = values[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
	return s
}
