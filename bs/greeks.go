package bs

import (
	"math"

	"github.com/Hem810/Option-Price-Visualiser/option"
)

// Delta is the sensitivity of the premium to the spot price.
func (b *Pricer) Delta(t option.Type) (float64, error) {
	if err := t.Validate(); err != nil {
		return math.NaN(), err
	}
	carry := math.Exp(-b.p.Q * b.p.T)
	if t == option.Put {
		return carry * (b.norm.CDF(b.d1) - 1), nil
	}
	return carry * b.norm.CDF(b.d1), nil
}

// Gamma is the same for calls and puts.
func (b *Pricer) Gamma() float64 {
	p := b.p
	return math.Exp(-p.Q*p.T) * b.norm.Prob(b.d1) / (p.S * p.Sigma * b.sqrtT)
}

// Vega is quoted per one percentage point of volatility.
func (b *Pricer) Vega() float64 {
	return b.VegaRaw() / 100
}

// VegaRaw is the per-unit volatility sensitivity. Newton IV steps divide by
// this, not by the percentage-scaled Vega.
func (b *Pricer) VegaRaw() float64 {
	p := b.p
	return p.S * math.Exp(-p.Q*p.T) * b.norm.Prob(b.d1) * b.sqrtT
}

// Theta is the time decay per calendar day, annualized over 365 days. The
// dividend and rate carry terms flip sign with the option kind.
func (b *Pricer) Theta(t option.Type) (float64, error) {
	if err := t.Validate(); err != nil {
		return math.NaN(), err
	}
	p := b.p
	carry := math.Exp(-p.Q * p.T)
	term1 := -(p.S * carry * b.norm.Prob(b.d1) * p.Sigma) / (2 * b.sqrtT)
	if t == option.Put {
		term2 := p.Q * p.S * carry * b.norm.CDF(-b.d1)
		term3 := p.R * p.K * math.Exp(-p.R*p.T) * b.norm.CDF(-b.d2)
		return (term1 + term2 + term3) / 365, nil
	}
	term2 := p.Q * p.S * carry * b.norm.CDF(b.d1)
	term3 := p.R * p.K * math.Exp(-p.R*p.T) * b.norm.CDF(b.d2)
	return (term1 - term2 - term3) / 365, nil
}

// Rho is the rate sensitivity per one percentage point of r.
func (b *Pricer) Rho(t option.Type) (float64, error) {
	if err := t.Validate(); err != nil {
		return math.NaN(), err
	}
	p := b.p
	if t == option.Put {
		return -p.K * p.T * math.Exp(-p.R*p.T) * b.norm.CDF(-b.d2) / 100, nil
	}
	return p.K * p.T * math.Exp(-p.R*p.T) * b.norm.CDF(b.d2) / 100, nil
}

// Report collects every sensitivity of one contract, with both kinds listed
// wherever the value depends on the kind.
type Report struct {
	DeltaCall float64
	DeltaPut  float64
	Gamma     float64
	Vega      float64
	ThetaCall float64
	ThetaPut  float64
	RhoCall   float64
	RhoPut    float64
}

// Greeks builds the full sensitivity report for the contract.
func (b *Pricer) Greeks() Report {
	dc, _ := b.Delta(option.Call)
	dp, _ := b.Delta(option.Put)
	tc, _ := b.Theta(option.Call)
	tp, _ := b.Theta(option.Put)
	rc, _ := b.Rho(option.Call)
	rp, _ := b.Rho(option.Put)
	return Report{
		DeltaCall: dc,
		DeltaPut:  dp,
		Gamma:     b.Gamma(),
		Vega:      b.Vega(),
		ThetaCall: tc,
		ThetaPut:  tp,
		RhoCall:   rc,
		RhoPut:    rp,
	}
}
