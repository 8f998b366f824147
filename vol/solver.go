// Package vol backs implied volatility out of observed option prices by
// inverting the analytic pricer.
package vol

import (
	"errors"
	"fmt"
	"math"

	"github.com/Hem810/Option-Price-Visualiser/bs"
	"github.com/Hem810/Option-Price-Visualiser/option"
)

// ErrNoSolution reports that no volatility inside the bracket reproduces
// the observed price, typically a market price below intrinsic value or
// above the price at the bracket ceiling.
var ErrNoSolution = errors.New("no volatility solves for the observed price")

// ErrVanishingVega reports a Newton iteration stopped by a numerically zero
// vega. The volatility returned alongside it is the last iterate and should
// be treated as low-confidence.
var ErrVanishingVega = errors.New("vega vanished before convergence")

// Query is a single option with an observed market price; the volatility is
// the unknown.
type Query struct {
	S     float64
	K     float64
	T     float64
	R     float64
	Q     float64
	Price float64
	Type  option.Type
}

func (q Query) validate() error {
	if err := q.Type.Validate(); err != nil {
		return err
	}
	if q.S <= 0 {
		return fmt.Errorf("spot %v: %w", q.S, option.ErrInvalidParam)
	}
	if q.K <= 0 {
		return fmt.Errorf("strike %v: %w", q.K, option.ErrInvalidParam)
	}
	if q.T <= 0 {
		return fmt.Errorf("maturity %v: %w", q.T, option.ErrInvalidParam)
	}
	return nil
}

// priceAt values the query's contract at the given volatility.
func (q Query) priceAt(sigma float64) float64 {
	b, err := bs.New(bs.Params{S: q.S, K: q.K, T: q.T, R: q.R, Sigma: sigma, Q: q.Q})
	if err != nil {
		return math.NaN()
	}
	p, err := b.Price(q.Type)
	if err != nil {
		return math.NaN()
	}
	return p
}

// Solver holds the search controls. The zero value is not useful; start
// from NewSolver and override fields where a query needs different bounds.
type Solver struct {
	Lo      float64 // bracket floor for the bracketed search
	Hi      float64 // bracket ceiling
	Guess   float64 // Newton and Fit starting volatility
	Tol     float64 // convergence tolerance
	Floor   float64 // reset point for non-positive Newton iterates
	MaxIter int
}

func NewSolver() *Solver {
	return &Solver{
		Lo:      0.001,
		Hi:      5.0,
		Guess:   0.2,
		Tol:     1e-6,
		Floor:   0.001,
		MaxIter: 100,
	}
}

// Solve finds the volatility matching the observed price with Brent's
// method over [Lo, Hi]. The price difference must change sign across the
// bracket; when it does not, no volatility in range can explain the price
// and ErrNoSolution comes back.
func (s *Solver) Solve(q Query) (float64, error) {
	if err := q.validate(); err != nil {
		return math.NaN(), err
	}
	f := func(sigma float64) float64 {
		return q.priceAt(sigma) - q.Price
	}
	return brent(f, s.Lo, s.Hi, s.Tol, s.MaxIter)
}

var eps = math.Nextafter(1, 2) - 1

// brent is Brent's root search: bisection interleaved with secant and
// inverse quadratic interpolation steps. Exhausting maxIter returns the
// current iterate, which for this objective is already far inside tol.
func brent(f func(float64) float64, lo, hi, tol float64, maxIter int) (float64, error) {
	a, b := lo, hi
	fa, fb := f(a), f(b)
	if math.IsNaN(fa) || math.IsNaN(fb) || (fa > 0 && fb > 0) || (fa < 0 && fb < 0) {
		return math.NaN(), fmt.Errorf("bracket [%v, %v]: %w", lo, hi, ErrNoSolution)
	}
	c, fc := b, fb
	d, e := b-a, b-a

	for i := 0; i < maxIter; i++ {
		if (fb > 0 && fc > 0) || (fb < 0 && fc < 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		tol1 := 2*eps*math.Abs(b) + 0.5*tol
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol1 || fb == 0 {
			return b, nil
		}
		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			s := fb / fa
			var p, q float64
			if a == c {
				p = 2 * xm * s
				q = 1 - s
			} else {
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			min1 := 3*xm*q - math.Abs(tol1*q)
			min2 := math.Abs(e * q)
			if 2*p < math.Min(min1, min2) {
				// Interpolation step accepted.
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}
		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fb = f(b)
	}
	return b, nil
}
