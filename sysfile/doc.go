// SPDX-License-Identifier: MIT

// Package sysfile reads linear systems from YAML documents.
//
// Format:
//
//	name: two-by-two        # optional, used in reports
//	equations:              # N rows of N+1 entries; the last entry is the RHS
//	  - [1, 1, 3]
//	  - [1, -1, "1/2"]
//
// Entries are integers in [-32768, 32767] or "num/den" strings whose parts lie
// in the same range. A zero denominator is accepted and yields zero, as
// eqsolver.Solver.SetCoefficientFraction does.
package sysfile
