package matchgen

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"slices"
	"strings"

	"github.com/aretw0/matchgen/internal/codegen"
)

// ErrInvalidConfig is returned by Config.Validate and New.
var ErrInvalidConfig = errors.New("invalid config")

// Input selects how the generated function reads its input.
type Input string

const (
	// InputSlice generates a function over a random-access []byte or string.
	InputSlice Input = "slice"
	// InputCursor generates a function over a forward-only cursor.
	InputCursor Input = "cursor"
)

// Strategy selects the random-access generator.
type Strategy string

const (
	// StrategyTree nests one switch per byte position.
	StrategyTree Strategy = "tree"
	// StrategyFlat tests whole keys in a single switch, longest first.
	StrategyFlat Strategy = "flat"
)

// Result selects what the generated function reports besides the value.
type Result string

const (
	// ResultRemainder returns the unconsumed input.
	ResultRemainder Result = "remainder"
	// ResultCount returns the number of consumed bytes.
	ResultCount Result = "count"
)

// Input types accepted for random-access matchers.
const (
	InputBytes  = "[]byte"
	InputString = "string"
)

// Config describes the function a Matcher emits.
//
// Zero values select the defaults: slice input over []byte, the tree
// strategy and remainder results.
//
// Generated functions declare locals named in, it, v, rest, n, ok and more,
// and cursor matchers add the type parameters C and P plus markN and bN for
// each depth N. Value expressions are evaluated in that scope, so they must
// not refer to package-level names that collide with these. ValueType is
// resolved in the package scope, except that a cursor matcher's ValueType
// must not use C or P.
type Config struct {
	// FuncName is the name of the generated function. Required.
	FuncName string `mapstructure:"func" yaml:"func" toml:"func" json:"func"`
	// ValueType is the Go type of the matched value, e.g. "rune" or
	// "*Token". Entry values must be expressions of this type. Required.
	ValueType string `mapstructure:"type" yaml:"type" toml:"type" json:"type"`

	Input     Input    `mapstructure:"input" yaml:"input" toml:"input" json:"input"`
	InputType string   `mapstructure:"input_type" yaml:"input_type" toml:"input_type" json:"input_type"`
	Strategy  Strategy `mapstructure:"strategy" yaml:"strategy" toml:"strategy" json:"strategy"`
	Result    Result   `mapstructure:"result" yaml:"result" toml:"result" json:"result"`

	// Doc is emitted above the function, one comment line per text line.
	Doc string `mapstructure:"doc" yaml:"doc" toml:"doc" json:"doc"`
	// Nolint emits a //nolint directive for the complexity linters.
	Nolint bool `mapstructure:"nolint" yaml:"nolint" toml:"nolint" json:"nolint"`
	// Package, when set, makes Render emit a whole generated file.
	Package string `mapstructure:"package" yaml:"package" toml:"package" json:"package"`
}

func (c *Config) applyDefaults() {
	if c.Input == "" {
		c.Input = InputSlice
	}
	if c.Strategy == "" {
		c.Strategy = StrategyTree
	}
	if c.Result == "" {
		c.Result = ResultRemainder
	}
	if c.InputType == "" && c.Input == InputSlice {
		c.InputType = InputBytes
	}
}

// Validate fills in defaults and checks that the combination of options
// describes a function that can be generated.
func (c *Config) Validate() error {
	c.applyDefaults()

	var errs []error
	if !token.IsIdentifier(c.FuncName) {
		errs = append(errs, fmt.Errorf("func name %q is not a Go identifier", c.FuncName))
	}
	if strings.TrimSpace(c.ValueType) == "" {
		errs = append(errs, errors.New("value type is required"))
	} else if expr, err := parser.ParseExpr(c.ValueType); err != nil {
		errs = append(errs, fmt.Errorf("value type %q: %w", c.ValueType, err))
	} else if c.Input == InputCursor {
		if name := typeParamIn(expr); name != "" {
			errs = append(errs, fmt.Errorf("value type %q: %s names a type parameter of cursor matchers", c.ValueType, name))
		}
	}
	if c.Package != "" && !token.IsIdentifier(c.Package) {
		errs = append(errs, fmt.Errorf("package name %q is not a Go identifier", c.Package))
	}

	switch c.Input {
	case InputSlice:
		if c.InputType != InputBytes && c.InputType != InputString {
			errs = append(errs, fmt.Errorf("input type %q: want %q or %q", c.InputType, InputBytes, InputString))
		}
	case InputCursor:
		if c.InputType != "" {
			errs = append(errs, fmt.Errorf("input type %q is only valid for %s input", c.InputType, InputSlice))
		}
		if c.Strategy != StrategyTree {
			errs = append(errs, fmt.Errorf("strategy %q is only valid for %s input", c.Strategy, InputSlice))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown input %q", c.Input))
	}

	switch c.Strategy {
	case StrategyTree, StrategyFlat:
	default:
		errs = append(errs, fmt.Errorf("unknown strategy %q", c.Strategy))
	}

	switch c.Result {
	case ResultRemainder:
	case ResultCount:
		if c.Strategy != StrategyFlat {
			errs = append(errs, fmt.Errorf("result %q requires the %s strategy", c.Result, StrategyFlat))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown result %q", c.Result))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// typeParamIn returns the first unqualified identifier in expr that the
// cursor generator declares as a type parameter.
func typeParamIn(expr ast.Expr) string {
	var found string
	ast.Inspect(expr, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.SelectorExpr:
			// pkg.C names another package's declaration.
			return false
		case *ast.Ident:
			if slices.Contains(codegen.CursorTypeParams, n.Name) {
				found = n.Name
			}
		}
		return found == ""
	})
	return found
}
