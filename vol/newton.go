package vol

import (
	"fmt"
	"math"

	"github.com/Hem810/Option-Price-Visualiser/bs"
)

// Newton iterates sigma <- sigma - (price - observed)/vega from Guess,
// using the raw per-unit vega as the derivative. It stops once the price
// error is inside Tol, or after MaxIter sweeps, returning the last iterate
// either way. Iterates pushed to zero or below restart from Floor. A
// numerically zero vega ends the iteration at once; the last iterate comes
// back together with ErrVanishingVega.
//
// Near-zero vega regions (deep in or out of the money, very short
// maturities) can make this method and Solve disagree; that is a property
// of the objective, not a defect of either method.
func (s *Solver) Newton(q Query) (float64, error) {
	if err := q.validate(); err != nil {
		return math.NaN(), err
	}
	sigma := s.Guess
	for i := 0; i < s.MaxIter; i++ {
		b, err := bs.New(bs.Params{S: q.S, K: q.K, T: q.T, R: q.R, Sigma: sigma, Q: q.Q})
		if err != nil {
			return math.NaN(), err
		}
		price, err := b.Price(q.Type)
		if err != nil {
			return math.NaN(), err
		}
		diff := price - q.Price
		if math.Abs(diff) < s.Tol {
			return sigma, nil
		}
		vega := b.VegaRaw()
		if vega == 0 {
			return sigma, fmt.Errorf("sigma=%v after %d iterations: %w", sigma, i, ErrVanishingVega)
		}
		sigma -= diff / vega
		if sigma <= 0 {
			sigma = s.Floor
		}
	}
	return sigma, nil
}
