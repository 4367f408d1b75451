// SPDX-License-Identifier: MIT

package sysfile

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/eqsolve/eqsolver"
	"github.com/katalvlaran/eqsolve/fraction"
)

// Coefficient is one entry of an equation: Num/Den with Den == 1 for integers.
type Coefficient struct {
	Num int16
	Den int16
}

// UnmarshalYAML accepts a YAML integer or a "num/den" string.
func (c *Coefficient) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a scalar", ErrBadCoefficient, value.Line)
	}
	numText, denText, hasDen := strings.Cut(value.Value, "/")
	num, err := strconv.ParseInt(strings.TrimSpace(numText), 10, 16)
	if err != nil {
		return fmt.Errorf("%w: line %d: %q", ErrBadCoefficient, value.Line, value.Value)
	}
	den := int64(1)
	if hasDen {
		if den, err = strconv.ParseInt(strings.TrimSpace(denText), 10, 16); err != nil {
			return fmt.Errorf("%w: line %d: %q", ErrBadCoefficient, value.Line, value.Value)
		}
	}
	*c = Coefficient{Num: int16(num), Den: int16(den)}

	return nil
}

// Fraction returns the coefficient as stored by the solver.
func (c Coefficient) Fraction() fraction.Fraction {
	f, _ := fraction.New(int64(c.Num), int64(c.Den)) // int16 parts always fit

	return f
}

// System is a parsed system file.
type System struct {
	Name      string          `yaml:"name"`
	Equations [][]Coefficient `yaml:"equations"`
}

// Size returns the number of equations N.
func (s *System) Size() int { return len(s.Equations) }

// Parse decodes and validates a YAML system document.
//
// Errors:
//   - ErrBadCoefficient for malformed entries (wrapped with the YAML line).
//   - ErrEmpty when there are no equations.
//   - ErrNotSquare when a row does not have exactly N+1 entries.
func Parse(data []byte) (*System, error) {
	var sys System
	if err := yaml.Unmarshal(data, &sys); err != nil {
		return nil, fmt.Errorf("sysfile: parse: %w", err)
	}
	if err := sys.validate(); err != nil {
		return nil, err
	}

	return &sys, nil
}

// Load reads and parses the system file at path.
func Load(path string) (*System, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sysfile: read %s: %w", path, err)
	}
	sys, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sys, nil
}

func (s *System) validate() error {
	n := len(s.Equations)
	if n == 0 {
		return ErrEmpty
	}
	for i, row := range s.Equations {
		if len(row) != n+1 {
			return fmt.Errorf("%w: equation %d has %d entries, want %d", ErrNotSquare, i+1, len(row), n+1)
		}
	}

	return nil
}

// Apply loads the system into solver, replacing whatever it held.
// Integer entries go through SetCoefficient, the rest through
// SetCoefficientFraction.
func (s *System) Apply(solver *eqsolver.Solver) error {
	if err := solver.SetSystemEqCount(s.Size()); err != nil {
		return err
	}
	for i, row := range s.Equations {
		for j, c := range row {
			var err error
			if c.Den == 1 {
				err = solver.SetCoefficient(i+1, j+1, c.Num)
			} else {
				err = solver.SetCoefficientFraction(i+1, j+1, c.Num, c.Den)
			}
			if err != nil {
				return err
			}
		}
	}

	return nil
}
