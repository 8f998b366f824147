package surface

import (
	"math"

	"github.com/Hem810/Option-Price-Visualiser/bs"
	"github.com/Hem810/Option-Price-Visualiser/option"
)

// DeltaByVol samples delta across the volatility axis, everything else
// fixed from base. Invalid points are NaN.
func DeltaByVol(base bs.Params, t option.Type, sigmas []float64) ([]float64, error) {
	if err := checkAxes(t, sigmas); err != nil {
		return nil, err
	}
	out := make([]float64, len(sigmas))
	for i, v := range sigmas {
		p := base
		p.Sigma = v
		out[i] = delta(p, t)
	}
	return out, nil
}

// DeltaByMaturity samples delta across the maturity axis.
func DeltaByMaturity(base bs.Params, t option.Type, maturities []float64) ([]float64, error) {
	if err := checkAxes(t, maturities); err != nil {
		return nil, err
	}
	out := make([]float64, len(maturities))
	for i, m := range maturities {
		p := base
		p.T = m
		out[i] = delta(p, t)
	}
	return out, nil
}

func delta(p bs.Params, t option.Type) float64 {
	b, err := bs.New(p)
	if err != nil {
		return math.NaN()
	}
	d, err := b.Delta(t)
	if err != nil {
		return math.NaN()
	}
	return d
}
