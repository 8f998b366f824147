package vol

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// Fit recovers the volatility by minimizing the squared price error with
// Nelder-Mead, searching in log space so the volatility stays positive
// without constraints. It needs no derivative and no bracket, making it a
// fallback for objectives too flat for Newton steps, at the cost of weaker
// precision guarantees than Solve.
func (s *Solver) Fit(q Query) (float64, error) {
	if err := q.validate(); err != nil {
		return math.NaN(), err
	}
	par := []float64{math.Log(s.Guess)}
	problem := optimize.Problem{
		Func: func(par []float64) float64 {
			diff := q.priceAt(math.Exp(par[0])) - q.Price
			return diff * diff
		},
	}
	res, err := optimize.Minimize(problem, par, nil, &optimize.NelderMead{})
	if err != nil {
		return math.NaN(), fmt.Errorf("least-squares fit: %w", err)
	}
	return math.Exp(res.X[0]), nil
}
