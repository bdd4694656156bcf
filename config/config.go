// Package config holds the simulation parameters, their defaults and ranges,
// and loads them from TOML or YAML files.
//
// Params is a plain value: the frame driver receives a copy at construction
// and swaps in a new, validated copy through Driver.SetParams. Invalid values
// never reach live simulation state.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Spanning-tree methods accepted by Params.SpanningMethod.
const (
	MethodKruskal = "kruskal"
	MethodPrim    = "prim"
)

// Defaults (named, no magic numbers).
const (
	DefaultIdealNumNodes     = 70
	DefaultExtraEdgesPercent = 20.0
	DefaultRadiiWeightPower  = 0.5
	DefaultDriftSpeed        = 1.0
	DefaultRepulsionForce    = 1.0
	DefaultForcePasses       = 1
	DefaultSpanningMethod    = MethodKruskal
)

// ErrInvalidParams is returned (wrapped) whenever a parameter is out of range.
var ErrInvalidParams = errors.New("config: invalid simulation parameters")

var validate = validator.New()

// Params are the externally settable simulation parameters.
type Params struct {
	// IdealNumNodes is the target node population.
	IdealNumNodes int `toml:"ideal_num_nodes" yaml:"ideal_num_nodes" validate:"min=1,max=300"`

	// ExtraEdgesPercent is the extra-edge budget as a percentage of IdealNumNodes.
	ExtraEdgesPercent float64 `toml:"extra_edges_percent" yaml:"extra_edges_percent" validate:"min=0,max=1000"`

	// RadiiWeightPower biases edges towards big nodes: 0 mesh, 0.5 balanced, 1 hub-and-spoke.
	RadiiWeightPower float64 `toml:"radii_weight_power" yaml:"radii_weight_power" validate:"min=0,max=1"`

	// DriftSpeed multiplies the per-frame position integration.
	DriftSpeed float64 `toml:"drift_speed" yaml:"drift_speed" validate:"min=0,max=100"`

	// Repulsion enables the pairwise inverse-square force pass.
	Repulsion bool `toml:"repulsion" yaml:"repulsion"`

	// RepulsionForce scales the force pass.
	RepulsionForce float64 `toml:"repulsion_force" yaml:"repulsion_force" validate:"min=0,max=100"`

	// ForcePasses is how many times the force pass runs per step.
	ForcePasses int `toml:"force_passes" yaml:"force_passes" validate:"min=1,max=300"`

	// SpanningMethod selects the spanning-tree algorithm.
	SpanningMethod string `toml:"spanning_method" yaml:"spanning_method" validate:"oneof=kruskal prim"`

	// Seed seeds the node spawner; 0 means seed from the clock.
	Seed int64 `toml:"seed" yaml:"seed"`
}

// Default returns the default parameters.
func Default() Params {
	return Params{
		IdealNumNodes:     DefaultIdealNumNodes,
		ExtraEdgesPercent: DefaultExtraEdgesPercent,
		RadiiWeightPower:  DefaultRadiiWeightPower,
		DriftSpeed:        DefaultDriftSpeed,
		RepulsionForce:    DefaultRepulsionForce,
		ForcePasses:       DefaultForcePasses,
		SpanningMethod:    DefaultSpanningMethod,
	}
}

// MaxExtraEdges converts the percentage budget into an edge count:
// round(ExtraEdgesPercent / 100 * IdealNumNodes).
func (p Params) MaxExtraEdges() int {
	return int(math.Round(p.ExtraEdgesPercent / 100 * float64(p.IdealNumNodes)))
}

// Validate checks every field against its documented range.
// NaN floats are rejected explicitly since they compare false against any bound.
func (p Params) Validate() error {
	for name, f := range map[string]float64{
		"extra_edges_percent": p.ExtraEdgesPercent,
		"radii_weight_power":  p.RadiiWeightPower,
		"drift_speed":         p.DriftSpeed,
		"repulsion_force":     p.RepulsionForce,
	} {
		if math.IsNaN(f) {
			return fmt.Errorf("%w: %s is NaN", ErrInvalidParams, name)
		}
	}
	if err := validate.Struct(p); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// formatValidationError flattens validator output into one readable error
// that still matches ErrInvalidParams with errors.Is.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}

	return fmt.Errorf("%w: %s", ErrInvalidParams, strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s (got %v)", field, e.Param(), e.Value())
	case "max":
		return fmt.Sprintf("%s must be at most %s (got %v)", field, e.Param(), e.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s (got %q)", field, e.Param(), e.Value())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
