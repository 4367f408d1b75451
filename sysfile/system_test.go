// SPDX-License-Identifier: MIT

package sysfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eqsolve/eqsolver"
	"github.com/katalvlaran/eqsolve/fraction"
	"github.com/katalvlaran/eqsolve/sysfile"
)

const twoByTwo = `
name: two-by-two
equations:
  - [1, 1, 3]
  - [1, -1, "1/2"]
`

func TestParse(t *testing.T) {
	sys, err := sysfile.Parse([]byte(twoByTwo))
	require.NoError(t, err)
	require.Equal(t, "two-by-two", sys.Name)
	require.Equal(t, 2, sys.Size())
	require.Equal(t, sysfile.Coefficient{Num: -1, Den: 1}, sys.Equations[1][1])
	require.Equal(t, sysfile.Coefficient{Num: 1, Den: 2}, sys.Equations[1][2])
	require.Equal(t, fraction.MustNew(1, 2), sys.Equations[1][2].Fraction())
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{name: "empty", doc: "name: nothing\n", want: sysfile.ErrEmpty},
		{name: "empty list", doc: "equations: []\n", want: sysfile.ErrEmpty},
		{name: "short row", doc: "equations:\n  - [1, 2]\n  - [3, 4, 5]\n", want: sysfile.ErrNotSquare},
		{name: "long row", doc: "equations:\n  - [1, 2, 3]\n", want: sysfile.ErrNotSquare},
		{name: "out of int16", doc: "equations:\n  - [40000, 1]\n", want: sysfile.ErrBadCoefficient},
		{name: "bad denominator", doc: "equations:\n  - [\"1/x\", 1]\n", want: sysfile.ErrBadCoefficient},
		{name: "float", doc: "equations:\n  - [1.5, 1]\n", want: sysfile.ErrBadCoefficient},
		{name: "nested", doc: "equations:\n  - [[1], 1]\n", want: sysfile.ErrBadCoefficient},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sysfile.Parse([]byte(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestZeroDenominatorIsZero(t *testing.T) {
	sys, err := sysfile.Parse([]byte("equations:\n  - [\"5/0\", 1]\n"))
	require.NoError(t, err)
	require.Equal(t, fraction.Zero, sys.Equations[0][0].Fraction())
}

func TestLoadAndApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system.yaml")
	require.NoError(t, os.WriteFile(path, []byte(twoByTwo), 0o600))

	sys, err := sysfile.Load(path)
	require.NoError(t, err)

	s := eqsolver.New()
	require.NoError(t, sys.Apply(s))
	require.Equal(t, 2, s.EqCount())

	num, den, err := s.OriginalCoefficientFraction(2, 3)
	require.NoError(t, err)
	require.Equal(t, [2]int{1, 2}, [2]int{num, den})

	out, err := s.Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, eqsolver.Solved, out)

	// x + y = 3, x - y = 1/2  ⇒  x = 7/4, y = 5/4
	got := s.Solution()
	require.True(t, fraction.MustNew(7, 4).Equal(got[0]))
	require.True(t, fraction.MustNew(5, 4).Equal(got[1]))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := sysfile.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
