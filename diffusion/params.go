// SPDX-License-Identifier: MIT

package diffusion

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams is returned by Params.Validate and every entry point that
// receives an inconsistent configuration.
var ErrInvalidParams = errors.New("diffusion: invalid parameters")

// Defaults of the reference model.
const (
	DefaultInf     = 10000.0
	DefaultEpsilon = 0.05
	DefaultDelta   = 0.1
	DefaultMaxIter = 50
	DefaultTol     = 1e-4
	DefaultAnchors = 2
	DefaultClipMin = -1000.0
	DefaultClipMax = 1000.0
)

// Params is the explicit configuration threaded through every call of the
// pipeline. There is no package-level mutable state.
type Params struct {
	// Epsilon is the neighbor-influence gain.
	Epsilon float64 `mapstructure:"epsilon" yaml:"epsilon" toml:"epsilon"`
	// Delta is the anchor-influence gain.
	Delta float64 `mapstructure:"delta" yaml:"delta" toml:"delta"`
	// MaxIter caps the iterations of one round.
	MaxIter int `mapstructure:"max_iter" yaml:"max_iter" toml:"max_iter"`
	// Tol is the Euclidean step norm below which a round stops early.
	Tol float64 `mapstructure:"tol" yaml:"tol" toml:"tol"`
	// Anchors is the requested anchor count k per round.
	Anchors int `mapstructure:"anchors" yaml:"anchors" toml:"anchors"`
	// ClipMin and ClipMax bound every state component after each update.
	ClipMin float64 `mapstructure:"clip_min" yaml:"clip_min" toml:"clip_min"`
	ClipMax float64 `mapstructure:"clip_max" yaml:"clip_max" toml:"clip_max"`
	// Inf is carried for output naming only; no formula reads it.
	Inf float64 `mapstructure:"inf" yaml:"inf" toml:"inf"`
}

// DefaultParams returns the reference configuration
// (EPSILON=0.05, DELTA=0.1, MAX_ITER=50, TOL=1e-4, N_BETA=2, clip ±1000).
func DefaultParams() Params {
	return Params{
		Epsilon: DefaultEpsilon,
		Delta:   DefaultDelta,
		MaxIter: DefaultMaxIter,
		Tol:     DefaultTol,
		Anchors: DefaultAnchors,
		ClipMin: DefaultClipMin,
		ClipMax: DefaultClipMax,
		Inf:     DefaultInf,
	}
}

// Validate reports the first inconsistent field wrapped in ErrInvalidParams.
func (p Params) Validate() error {
	switch {
	case !finite(p.Epsilon):
		return fmt.Errorf("%w: epsilon=%v", ErrInvalidParams, p.Epsilon)
	case !finite(p.Delta):
		return fmt.Errorf("%w: delta=%v", ErrInvalidParams, p.Delta)
	case p.MaxIter < 1:
		return fmt.Errorf("%w: max_iter=%d < 1", ErrInvalidParams, p.MaxIter)
	case !finite(p.Tol) || p.Tol < 0:
		return fmt.Errorf("%w: tol=%v", ErrInvalidParams, p.Tol)
	case p.Anchors < 0:
		return fmt.Errorf("%w: anchors=%d < 0", ErrInvalidParams, p.Anchors)
	case !finite(p.ClipMin) || !finite(p.ClipMax) || p.ClipMin >= p.ClipMax:
		return fmt.Errorf("%w: clip [%v, %v]", ErrInvalidParams, p.ClipMin, p.ClipMax)
	}

	return nil
}

// clip bounds v into [lo, hi]. NaN passes through unchanged so it can be
// detected downstream instead of being folded into a bound.
func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
