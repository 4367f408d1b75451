// SPDX-License-Identifier: MIT

package eqsolver_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/eqsolve/eqsolver"
)

func TestMetricsRecordOutcomes(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	metrics := eqsolver.NewMetrics(reg)
	s := eqsolver.New(eqsolver.WithMetrics(metrics))

	load(t, s, []int16{0, 1, 1}, []int16{1, 0, 2}) // one pivot swap
	_, err := solve(t, s)
	require.NoError(t, err)

	load(t, s, []int16{1, 1, 3}, []int16{1, 1, 3}) // one rank-deficient column
	_, err = solve(t, s)
	require.NoError(t, err)

	load(t, s, []int16{1, 1, 3}, []int16{1, -1, 1})
	_, err = solve(t, s)
	require.NoError(t, err)

	const want = `
# HELP eqsolve_solver_solves_total Total Solve calls by outcome.
# TYPE eqsolve_solver_solves_total counter
eqsolve_solver_solves_total{outcome="infinite_solutions"} 1
eqsolve_solver_solves_total{outcome="solved"} 2
# HELP eqsolve_solver_pivot_swaps_total Total row exchanges made during pivot search.
# TYPE eqsolve_solver_pivot_swaps_total counter
eqsolve_solver_pivot_swaps_total 1
# HELP eqsolve_solver_rank_deficient_columns_total Total pivot columns without a nonzero entry.
# TYPE eqsolve_solver_rank_deficient_columns_total counter
eqsolve_solver_rank_deficient_columns_total 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want),
		"eqsolve_solver_solves_total",
		"eqsolve_solver_pivot_swaps_total",
		"eqsolve_solver_rank_deficient_columns_total",
	))

	count, err := testutil.GatherAndCount(reg, "eqsolve_solver_solve_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 2, count) // one histogram per outcome label
}

func TestMetricsSharedAcrossSolvers(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := eqsolver.NewMetrics(reg)

	for i := 0; i < 3; i++ {
		s := eqsolver.New(eqsolver.WithMetrics(metrics))
		load(t, s, []int16{2, 4})
		_, err := solve(t, s)
		require.NoError(t, err)
	}

	const want = `
# HELP eqsolve_solver_solves_total Total Solve calls by outcome.
# TYPE eqsolve_solver_solves_total counter
eqsolve_solver_solves_total{outcome="solved"} 3
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "eqsolve_solver_solves_total"))
}

// attrValue returns the value of key among attrs.
func attrValue(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}

	return attribute.Value{}, false
}

func TestSolveSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	s := eqsolver.New(
		eqsolver.WithTracerProvider(tp),
		eqsolver.WithStrategy(eqsolver.StrategySignFlip),
	)
	load(t, s, []int16{1, 1, 3}, []int16{1, -1, 1})
	_, err := solve(t, s)
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	require.Equal(t, "eqsolver.Solve", span.Name())
	require.Equal(t, codes.Ok, span.Status().Code)

	v, ok := attrValue(span.Attributes(), "eqsolve.eq_count")
	require.True(t, ok)
	require.Equal(t, int64(2), v.AsInt64())

	v, ok = attrValue(span.Attributes(), "eqsolve.strategy")
	require.True(t, ok)
	require.Equal(t, "signflip", v.AsString())

	v, ok = attrValue(span.Attributes(), "eqsolve.outcome")
	require.True(t, ok)
	require.Equal(t, "solved", v.AsString())
}

func TestSolveSpanRecordsOverflow(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	s := eqsolver.New(eqsolver.WithTracerProvider(tp))
	require.NoError(t, s.SetSystemEqCount(2))
	setOverflowSystem(t, s)
	out, err := solve(t, s)
	require.ErrorIs(t, err, eqsolver.ErrOverflow)
	require.Equal(t, eqsolver.Overflow, out)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, codes.Error, spans[0].Status().Code)
	require.Equal(t, "overflow", spans[0].Status().Description)
	require.NotEmpty(t, spans[0].Events(), "error recorded as a span event")
}

func TestSolveLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := eqsolver.New(eqsolver.WithLogger(logger))

	load(t, s, []int16{0, 1, 1}, []int16{1, 0, 2})
	_, err := solve(t, s)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "eqsolver: pivot swap")
	require.Contains(t, buf.String(), "outcome=solved")

	buf.Reset()
	require.NoError(t, s.SetSystemEqCount(2))
	setOverflowSystem(t, s)
	_, err = solve(t, s)
	require.Error(t, err)
	require.Contains(t, buf.String(), "level=WARN")
	require.Contains(t, buf.String(), "outcome=overflow")
}
