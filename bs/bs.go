// Package bs prices European options and their sensitivities under the
// Black-Scholes-Merton model with a continuous dividend yield.
package bs

import (
	"fmt"
	"math"

	"github.com/Hem810/Option-Price-Visualiser/option"
	"gonum.org/v1/gonum/stat/distuv"
)

// Params is a single option contract. T is in years, R and Q are
// continuously compounded annual rates.
type Params struct {
	S     float64
	K     float64
	T     float64
	R     float64
	Sigma float64
	Q     float64
}

// Validate rejects parameters outside the model domain. S, K, T and Sigma
// must be strictly positive; R and Q are unrestricted.
func (p Params) Validate() error {
	if p.S <= 0 {
		return fmt.Errorf("spot %v: %w", p.S, option.ErrInvalidParam)
	}
	if p.K <= 0 {
		return fmt.Errorf("strike %v: %w", p.K, option.ErrInvalidParam)
	}
	if p.T <= 0 {
		return fmt.Errorf("maturity %v: %w", p.T, option.ErrInvalidParam)
	}
	if p.Sigma <= 0 {
		return fmt.Errorf("volatility %v: %w", p.Sigma, option.ErrInvalidParam)
	}
	return nil
}

// Pricer holds a contract with d1 and d2 fixed at construction. Build a new
// Pricer for changed parameters, there is no mutation path.
type Pricer struct {
	p     Params
	sqrtT float64
	d1    float64
	d2    float64
	norm  distuv.Normal
}

func New(p Params) (*Pricer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	sqrtT := math.Sqrt(p.T)
	x := p.Sigma * sqrtT
	d1 := (math.Log(p.S/p.K) + (p.R-p.Q+0.5*p.Sigma*p.Sigma)*p.T) / x
	return &Pricer{
		p:     p,
		sqrtT: sqrtT,
		d1:    d1,
		d2:    d1 - x,
		norm:  distuv.Normal{Mu: 0.0, Sigma: 1.0},
	}, nil
}

// Params returns the contract the pricer was built from.
func (b *Pricer) Params() Params { return b.p }

// D1 and D2 expose the precomputed probability arguments.
func (b *Pricer) D1() float64 { return b.d1 }

func (b *Pricer) D2() float64 { return b.d2 }

// CallPrice is S*exp(-qT)*N(d1) - K*exp(-rT)*N(d2).
func (b *Pricer) CallPrice() float64 {
	p := b.p
	return p.S*math.Exp(-p.Q*p.T)*b.norm.CDF(b.d1) - p.K*math.Exp(-p.R*p.T)*b.norm.CDF(b.d2)
}

// PutPrice is K*exp(-rT)*N(-d2) - S*exp(-qT)*N(-d1).
func (b *Pricer) PutPrice() float64 {
	p := b.p
	return p.K*math.Exp(-p.R*p.T)*b.norm.CDF(-b.d2) - p.S*math.Exp(-p.Q*p.T)*b.norm.CDF(-b.d1)
}

// Price dispatches on the option kind.
func (b *Pricer) Price(t option.Type) (float64, error) {
	if err := t.Validate(); err != nil {
		return math.NaN(), err
	}
	if t == option.Put {
		return b.PutPrice(), nil
	}
	return b.CallPrice(), nil
}
