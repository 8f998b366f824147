// Package option holds the contract vocabulary shared by the pricing
// engines: option kind, exercise style and the intrinsic payoff.
package option

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParam reports a contract parameter outside the pricing domain,
// such as a non-positive spot or an unknown kind tag.
var ErrInvalidParam = errors.New("invalid parameter")

// Type is the option kind.
type Type string

const (
	Call Type = "call"
	Put  Type = "put"
)

func (t Type) Validate() error {
	switch t {
	case Call, Put:
		return nil
	}
	return fmt.Errorf("option kind %q: %w", string(t), ErrInvalidParam)
}

// Style is the exercise style.
type Style string

const (
	European Style = "european"
	American Style = "american"
)

func (s Style) Validate() error {
	switch s {
	case European, American:
		return nil
	}
	return fmt.Errorf("exercise style %q: %w", string(s), ErrInvalidParam)
}

// Intrinsic is the immediate exercise payoff for an option struck at k with
// the underlying at s.
func Intrinsic(t Type, s, k float64) float64 {
	if t == Put {
		return math.Max(0, k-s)
	}
	return math.Max(0, s-k)
}
