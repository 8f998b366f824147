// Package binomial values options on a recombining Cox-Ross-Rubinstein tree
// with European or American exercise.
package binomial

import (
	"errors"
	"fmt"
	"math"

	"github.com/Hem810/Option-Price-Visualiser/bs"
	"github.com/Hem810/Option-Price-Visualiser/option"
	"gonum.org/v1/gonum/mat"
)

// ErrInconsistent reports tree parameters whose risk-neutral probability
// falls outside [0,1]; the discrete model admits arbitrage for such inputs
// and any price it produced would be meaningless.
var ErrInconsistent = errors.New("risk-neutral probability outside [0,1]")

// Lattice is a CRR tree for a single contract. Tree parameters are derived
// once at construction.
type Lattice struct {
	p     bs.Params
	kind  option.Type
	style option.Style
	steps int

	dt   float64
	u    float64
	d    float64
	prob float64
	disc float64
}

// New validates the contract and derives dt, the up/down factors, the
// risk-neutral probability and the per-step discount. A step count of zero
// is accepted and degenerates to the immediate exercise payoff.
func New(p bs.Params, kind option.Type, style option.Style, steps int) (*Lattice, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	if err := style.Validate(); err != nil {
		return nil, err
	}
	if steps < 0 {
		return nil, fmt.Errorf("steps %d: %w", steps, option.ErrInvalidParam)
	}
	l := &Lattice{p: p, kind: kind, style: style, steps: steps}
	if steps == 0 {
		return l, nil
	}
	l.dt = p.T / float64(steps)
	l.u = math.Exp(p.Sigma * math.Sqrt(l.dt))
	l.d = 1 / l.u
	l.prob = (math.Exp((p.R-p.Q)*l.dt) - l.d) / (l.u - l.d)
	l.disc = math.Exp(-p.R * l.dt)
	if l.prob < 0 || l.prob > 1 {
		return nil, fmt.Errorf("p=%v for dt=%v: %w", l.prob, l.dt, ErrInconsistent)
	}
	return l, nil
}

// Steps returns the tree depth.
func (l *Lattice) Steps() int { return l.steps }

// Prob returns the risk-neutral up-move probability.
func (l *Lattice) Prob() float64 { return l.prob }

// Price values the contract by backward induction over a working slice of
// length steps+1. American nodes take the larger of continuation and
// immediate exercise.
func (l *Lattice) Price() float64 {
	if l.steps == 0 {
		return option.Intrinsic(l.kind, l.p.S, l.p.K)
	}
	n := l.steps
	v := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		st := l.p.S * math.Pow(l.u, float64(n-i)) * math.Pow(l.d, float64(i))
		v[i] = option.Intrinsic(l.kind, st, l.p.K)
	}
	for j := n - 1; j >= 0; j-- {
		for i := 0; i <= j; i++ {
			v[i] = l.disc * (l.prob*v[i] + (1-l.prob)*v[i+1])
			if l.style == option.American {
				st := l.p.S * math.Pow(l.u, float64(j-i)) * math.Pow(l.d, float64(i))
				v[i] = math.Max(v[i], option.Intrinsic(l.kind, st, l.p.K))
			}
		}
	}
	return v[0]
}

/*
Tree lays out the underlying price at every node for visualization.

returns:
1. (steps+1)x(steps+1) matrix, entry (i, j) with i <= j holding the node
   price S*u^(j-i)*d^i; entries below the diagonal are zero
*/
func (l *Lattice) Tree() *mat.Dense {
	n := l.steps
	tree := mat.NewDense(n+1, n+1, nil)
	for j := 0; j <= n; j++ {
		for i := 0; i <= j; i++ {
			tree.Set(i, j, l.p.S*math.Pow(l.u, float64(j-i))*math.Pow(l.d, float64(i)))
		}
	}
	return tree
}
