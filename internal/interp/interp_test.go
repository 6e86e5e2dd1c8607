package interp

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhammadZohaib07/lox-interpreter/internal/lexer"
	"github.com/MuhammadZohaib07/lox-interpreter/internal/parser"
	"github.com/MuhammadZohaib07/lox-interpreter/internal/resolver"
)

// run lexes, parses, resolves and interprets src, feeding fixed lines of
// input to any `input` statement in program order, and returns everything
// written to stdout.
func run(t *testing.T, src string, inputLines ...string) (string, error) {
	t.Helper()

	tokens, lexErrs := lexer.New(src).ScanTokens()
	require.Empty(t, lexErrs)

	stmts, parseErrs := parser.New(tokens).Parse()
	require.Empty(t, parseErrs)

	locals, resErrs := resolver.Resolve(stmts)
	require.Empty(t, resErrs)

	var out strings.Builder
	feed := bufio.NewScanner(strings.NewReader(strings.Join(inputLines, "\n")))
	it := New(&out, func(prompt string) (string, error) {
		out.WriteString(prompt)
		feed.Scan()
		return feed.Text(), nil
	})

	err := it.Run(stmts, locals)
	return out.String(), err
}

func TestInterpretArithmeticPreservesIntegerKind(t *testing.T) {
	out, err := run(t, `print 1 + 2 * 3;`)
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestInterpretDivisionAlwaysProducesFloat(t *testing.T) {
	out, err := run(t, `print 6 / 2;`)
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestInterpretDivisionByZeroIsRuntimeError(t *testing.T) {
	_, err := run(t, `print 1 / 0;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Division by 0")
}

func TestInterpretStringNumberConcatenation(t *testing.T) {
	out, err := run(t, `print "count: " + 3;`)
	require.NoError(t, err)
	assert.Equal(t, "count: 3\n", out)
}

func TestInterpretForLoopDesugarSum(t *testing.T) {
	out, err := run(t, `
		var s = 0;
		for (var i = 1; i <= 3; i = i + 1) s = s + i;
		print s;
	`)
	require.NoError(t, err)
	assert.Equal(t, "6\n", out)
}

func TestInterpretClosureCapturesEnvironment(t *testing.T) {
	out, err := run(t, `
		fun makeCounter() {
			var count = 0;
			fun counter() {
				count = count + 1;
				return count;
			}
			return counter;
		}
		var c = makeCounter();
		print c();
		print c();
	`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", out)
}

func TestInterpretClassInitAndMethods(t *testing.T) {
	out, err := run(t, `
		class Greeter {
			init(name) { this.name = name; }
			greet() { print "hi " + this.name; }
		}
		var g = Greeter("world");
		g.greet();
	`)
	require.NoError(t, err)
	assert.Equal(t, "hi world\n", out)
}

func TestInterpretSuperDispatch(t *testing.T) {
	out, err := run(t, `
		class A {
			speak() { print "A"; }
		}
		class B < A {
			speak() {
				super.speak();
				print "B";
			}
		}
		B().speak();
	`)
	require.NoError(t, err)
	assert.Equal(t, "A\nB\n", out)
}

func TestInterpretArityMismatchIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		fun f(a, b) { return a + b; }
		f(1);
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected 2 arguments but got 1")
}

func TestInterpretInputStatementBindsResult(t *testing.T) {
	out, err := run(t, `
		input ("name? ") n;
		print "hello " + n;
	`, "Ada")
	require.NoError(t, err)
	assert.Equal(t, "name? hello Ada\n", out)
}

func TestInterpretUndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, `print missing;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable 'missing'")
}
