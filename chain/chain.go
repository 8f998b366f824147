// Package chain compares provider option-chain quotes with model values and
// backs implied volatility out of traded prices.
package chain

import (
	"fmt"
	"math"

	"github.com/Hem810/Option-Price-Visualiser/bs"
	"github.com/Hem810/Option-Price-Visualiser/option"
	"github.com/Hem810/Option-Price-Visualiser/vol"
	"github.com/montanaflynn/stats"
	log "github.com/sirupsen/logrus"
)

// Quote is one row of a provider chain, taken exactly as supplied: strike,
// last traded price and the vendor's quoted implied volatility.
type Quote struct {
	Strike   float64
	Last     float64
	MarketIV float64
}

// Row pairs a quote with the model's view of it.
type Row struct {
	Quote
	Theoretical float64 // model price at the chain's shared volatility
	Implied     float64 // volatility backed out of Last; NaN when unsolvable
}

// Evaluate prices every quote at the chain's shared spot, maturity, rates
// and volatility, then solves each Last price for its implied volatility.
// Rows that cannot be priced or solved keep NaN in the affected fields and
// stay in the output; one bad strike never drops the rest of the chain. A
// nil solver uses the defaults.
func Evaluate(base bs.Params, t option.Type, quotes []Quote, s *vol.Solver) ([]Row, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if s == nil {
		s = vol.NewSolver()
	}
	rows := make([]Row, len(quotes))
	for i, q := range quotes {
		rows[i] = Row{Quote: q, Theoretical: math.NaN(), Implied: math.NaN()}

		p := base
		p.K = q.Strike
		b, err := bs.New(p)
		if err != nil {
			log.Warnf("chain row %d strike %v: %v", i, q.Strike, err)
			continue
		}
		theo, err := b.Price(t)
		if err != nil {
			log.Warnf("chain row %d strike %v: %v", i, q.Strike, err)
			continue
		}
		rows[i].Theoretical = theo

		iv, err := s.Solve(vol.Query{
			S:     base.S,
			K:     q.Strike,
			T:     base.T,
			R:     base.R,
			Q:     base.Q,
			Price: q.Last,
			Type:  t,
		})
		if err != nil {
			log.Warnf("chain row %d strike %v: implied vol: %v", i, q.Strike, err)
			continue
		}
		rows[i].Implied = iv
	}
	return rows, nil
}

// Summary describes the distribution of solved implied vols across a chain.
type Summary struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Solved int
	Total  int
}

// Summarize reduces the solved implied vols to summary statistics. Rows
// whose solve failed count toward Total but are excluded from the moments.
func Summarize(rows []Row) (Summary, error) {
	out := Summary{Total: len(rows)}
	var ivs []float64
	for _, r := range rows {
		if !math.IsNaN(r.Implied) {
			ivs = append(ivs, r.Implied)
		}
	}
	out.Solved = len(ivs)
	if out.Solved == 0 {
		return out, fmt.Errorf("no solvable rows: %w", vol.ErrNoSolution)
	}

	mean, err := stats.Mean(ivs)
	if err != nil {
		return out, fmt.Errorf("mean: %w", err)
	}
	sd, err := stats.StandardDeviation(ivs)
	if err != nil {
		return out, fmt.Errorf("stddev: %w", err)
	}
	lo, err := stats.Min(ivs)
	if err != nil {
		return out, fmt.Errorf("min: %w", err)
	}
	hi, err := stats.Max(ivs)
	if err != nil {
		return out, fmt.Errorf("max: %w", err)
	}
	out.Mean = mean
	out.StdDev = sd
	out.Min = lo
	out.Max = hi
	return out, nil
}
