// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/relocate/grid"
)

// ErrInvalidParams indicates a parameter outside its domain that is not a
// grid bound (for example a negative delta).
var ErrInvalidParams = errors.New("model: invalid parameters")

// Defaults.
const (
	DefaultDelta    = 1.0
	DefaultNumR     = 100
	DefaultMinR     = -20.0
	DefaultMaxR     = 20.0
	DefaultNumShare = 20
	DefaultMinShare = 0.0
	DefaultMaxShare = 1.0
)

// Params is the immutable configuration of one solve run.
type Params struct {
	// Value of a parent spending time with the child.
	Delta float64 `mapstructure:"delta" yaml:"delta" json:"delta" validate:"finite,gte=0"`

	NumR int     `mapstructure:"num_r" yaml:"num_r" json:"num_r" validate:"gte=1"`
	MinR float64 `mapstructure:"min_r" yaml:"min_r" json:"min_r" validate:"finite"`
	MaxR float64 `mapstructure:"max_r" yaml:"max_r" json:"max_r" validate:"finite,gtefield=MinR"`

	// Mother's share of time with the child.
	NumShare int     `mapstructure:"num_share" yaml:"num_share" json:"num_share" validate:"gte=1"`
	MinShare float64 `mapstructure:"min_share" yaml:"min_share" json:"min_share" validate:"finite"`
	MaxShare float64 `mapstructure:"max_share" yaml:"max_share" json:"max_share" validate:"finite,gtefield=MinShare"`
}

// DefaultParams returns the baseline calibration.
func DefaultParams() Params {
	return Params{
		Delta:    DefaultDelta,
		NumR:     DefaultNumR,
		MinR:     DefaultMinR,
		MaxR:     DefaultMaxR,
		NumShare: DefaultNumShare,
		MinShare: DefaultMinShare,
		MaxShare: DefaultMaxShare,
	}
}

// paramsValidate is the package validator, with the "finite" tag registered.
var paramsValidate *validator.Validate

func init() {
	paramsValidate = validator.New()
	_ = paramsValidate.RegisterValidation("finite", validateFinite)
}

// validateFinite rejects NaN and ±Inf float fields.
func validateFinite(fl validator.FieldLevel) bool {
	v := fl.Field().Float()

	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Validate checks p. Grid field failures wrap grid.ErrInvalidGridSpec,
// everything else wraps ErrInvalidParams.
func (p Params) Validate() error {
	err := paramsValidate.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("Params.Validate: %w", err)
	}

	sentinel := ErrInvalidParams
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value()))
		if fe.Field() != "Delta" {
			sentinel = grid.ErrInvalidGridSpec
		}
	}

	return fmt.Errorf("Params.Validate: %s: %w", strings.Join(msgs, "; "), sentinel)
}

// GridSpec projects the grid-related fields.
func (p Params) GridSpec() grid.Spec {
	return grid.Spec{
		MinR: p.MinR, MaxR: p.MaxR, NumR: p.NumR,
		MinShare: p.MinShare, MaxShare: p.MaxShare, NumShare: p.NumShare,
	}
}
