// Package surface sweeps the pricing and implied-volatility functions over
// parameter axes, producing the grids behind sensitivity and volatility
// surfaces. Every cell is computed independently; cells whose inputs fail
// validation or whose solve finds no answer are marked NaN and never abort
// the rest of the grid.
package surface

import (
	"fmt"
	"math"

	"github.com/Hem810/Option-Price-Visualiser/bs"
	"github.com/Hem810/Option-Price-Visualiser/option"
	"github.com/Hem810/Option-Price-Visualiser/vol"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// Axis spaces n values linearly from lo to hi inclusive.
func Axis(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// Grid is a dense surface sample: Z[i][j] holds the value at Y[i], X[j].
type Grid struct {
	X []float64
	Y []float64
	Z [][]float64
}

type rowResult struct {
	i      int
	vals   []float64
	failed int
}

// evaluate fans one goroutine out per Y row and collects rows back into a
// pre-sized grid. cell computes a single entry and reports NaN for failures.
func evaluate(x, y []float64, name string, cell func(i, j int) float64) *Grid {
	g := &Grid{X: x, Y: y, Z: make([][]float64, len(y))}
	ch := make(chan rowResult, len(y))
	defer close(ch)

	for i := range y {
		go func(i int, ch chan rowResult) {
			row := make([]float64, len(x))
			var failed int
			for j := range x {
				row[j] = cell(i, j)
				if math.IsNaN(row[j]) {
					failed++
				}
			}
			ch <- rowResult{i: i, vals: row, failed: failed}
		}(i, ch)
	}

	var failed int
	for range y {
		res := <-ch
		g.Z[res.i] = res.vals
		failed += res.failed
	}
	log.WithFields(log.Fields{
		"surface": name,
		"rows":    len(y),
		"cols":    len(x),
		"failed":  failed,
	}).Debug("grid complete")
	return g
}

func checkAxes(t option.Type, axes ...[]float64) error {
	if err := t.Validate(); err != nil {
		return err
	}
	for _, a := range axes {
		if len(a) == 0 {
			return fmt.Errorf("empty axis: %w", option.ErrInvalidParam)
		}
	}
	return nil
}

// Price computes the premium over strike (X) by volatility (Y) with spot,
// maturity, rates and yield fixed from base.
func Price(base bs.Params, t option.Type, strikes, sigmas []float64) (*Grid, error) {
	if err := checkAxes(t, strikes, sigmas); err != nil {
		return nil, err
	}
	return evaluate(strikes, sigmas, "price", func(i, j int) float64 {
		p := base
		p.K = strikes[j]
		p.Sigma = sigmas[i]
		return price(p, t)
	}), nil
}

// SpotVol computes the premium over spot (X) by volatility (Y) with the
// strike fixed from base.
func SpotVol(base bs.Params, t option.Type, spots, sigmas []float64) (*Grid, error) {
	if err := checkAxes(t, spots, sigmas); err != nil {
		return nil, err
	}
	return evaluate(spots, sigmas, "spot-vol", func(i, j int) float64 {
		p := base
		p.S = spots[j]
		p.Sigma = sigmas[i]
		return price(p, t)
	}), nil
}

// ImpliedVol solves the volatility over strike (X) by expiry (Y) for a
// fixed observed price. Cells where the solver finds no volatility are NaN.
// A nil solver uses the defaults.
func ImpliedVol(base bs.Params, t option.Type, market float64, strikes, expiries []float64, s *vol.Solver) (*Grid, error) {
	if err := checkAxes(t, strikes, expiries); err != nil {
		return nil, err
	}
	if s == nil {
		s = vol.NewSolver()
	}
	return evaluate(strikes, expiries, "implied-vol", func(i, j int) float64 {
		q := vol.Query{
			S:     base.S,
			K:     strikes[j],
			T:     expiries[i],
			R:     base.R,
			Q:     base.Q,
			Price: market,
			Type:  t,
		}
		iv, err := s.Solve(q)
		if err != nil {
			return math.NaN()
		}
		return iv
	}), nil
}

func price(p bs.Params, t option.Type) float64 {
	b, err := bs.New(p)
	if err != nil {
		return math.NaN()
	}
	v, err := b.Price(t)
	if err != nil {
		return math.NaN()
	}
	return v
}
