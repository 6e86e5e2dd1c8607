package golox

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// goldenCases are the four output-producing concrete scenarios every Language
// implementation in this family is expected to reproduce exactly: closures,
// inherited `this`, `super` dispatch, and `for` desugaring. The two
// error-producing scenarios (division by zero, arity mismatch) have their own
// tests below.
var goldenCases = []string{
	"closures",
	"inherited_this",
	"super_dispatch",
	"for_desugar",
}

func TestGoldenPrograms(t *testing.T) {
	for _, name := range goldenCases {
		name := name
		t.Run(name, func(t *testing.T) {
			src, err := os.ReadFile("testdata/" + name + ".lox")
			require.NoError(t, err)
			want, err := os.ReadFile("testdata/" + name + ".out")
			require.NoError(t, err)

			var out bytes.Buffer
			runErr := Run(string(src), WithStdout(&out), WithStdin(bytes.NewReader(nil)))
			require.NoError(t, runErr)
			assert.Equal(t, string(want), out.String())
		})
	}
}

func TestGoldenDivisionByZeroIsRuntimeErrorWithNoOutput(t *testing.T) {
	src, err := os.ReadFile("testdata/division_by_zero.lox")
	require.NoError(t, err)

	var out bytes.Buffer
	runErr := Run(string(src), WithStdout(&out), WithStdin(bytes.NewReader(nil)))
	require.Error(t, runErr)
	assert.Empty(t, out.String())
	assert.Contains(t, runErr.Error(), "Division by 0")
}

func TestGoldenArityMismatchNamesBothCounts(t *testing.T) {
	src, err := os.ReadFile("testdata/arity_mismatch.lox")
	require.NoError(t, err)

	var out bytes.Buffer
	runErr := Run(string(src), WithStdout(&out), WithStdin(bytes.NewReader(nil)))
	require.Error(t, runErr)
	assert.Contains(t, runErr.Error(), "Expected 2 arguments but got 1")
}

func TestRunReportsStaticErrorsWithoutEvaluating(t *testing.T) {
	var out bytes.Buffer
	runErr := Run(`fun f() { return 1; return 2; } var = ;`, WithStdout(&out))
	require.Error(t, runErr)
	assert.Same(t, ErrStaticFailure, runErr)
	assert.Empty(t, out.String())
}

func TestRunCheckOnlySkipsEvaluation(t *testing.T) {
	var out bytes.Buffer
	runErr := Run(`print 1 / 0;`, WithStdout(&out), WithCheckOnly(true))
	require.NoError(t, runErr)
	assert.Empty(t, out.String())
}
