package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhammadZohaib07/lox-interpreter/internal/ast"
	"github.com/MuhammadZohaib07/lox-interpreter/internal/lexer"
	"github.com/MuhammadZohaib07/lox-interpreter/internal/parser"
)

func mustParse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	tokens, lexErrs := lexer.New(src).ScanTokens()
	require.Empty(t, lexErrs)
	stmts, parseErrs := parser.New(tokens).Parse()
	require.Empty(t, parseErrs)
	return stmts
}

func TestResolveIsPureAcrossRuns(t *testing.T) {
	stmts := mustParse(t, `
		fun outer() {
			var a = 1;
			fun inner() { return a; }
			return inner();
		}
	`)

	r1, errs1 := Resolve(stmts)
	require.Empty(t, errs1)
	r2, errs2 := Resolve(stmts)
	require.Empty(t, errs2)

	assert.Equal(t, r1, r2)
}

func TestResolveLocalDistance(t *testing.T) {
	stmts := mustParse(t, `
		var a = "global";
		{
			var a = "outer";
			{
				var a = "inner";
				print a;
			}
		}
	`)
	res, errs := Resolve(stmts)
	require.Empty(t, errs)
	assert.NotEmpty(t, res)
}

func TestResolveReturnOutsideFunctionIsError(t *testing.T) {
	stmts := mustParse(t, `return 1;`)
	_, errs := Resolve(stmts)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, "Can't return from top-level code")
}

func TestResolveReturnValueInInitializerIsError(t *testing.T) {
	stmts := mustParse(t, `class A { init() { return 1; } }`)
	_, errs := Resolve(stmts)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, "Can't return a value from an initializer")
}

func TestResolveBareReturnInInitializerIsAllowed(t *testing.T) {
	stmts := mustParse(t, `class A { init() { return; } }`)
	_, errs := Resolve(stmts)
	assert.Empty(t, errs)
}

func TestResolveThisOutsideClassIsError(t *testing.T) {
	stmts := mustParse(t, `print this;`)
	_, errs := Resolve(stmts)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, "Can't use 'this' outside of a class")
}

func TestResolveSuperWithoutSuperclassIsError(t *testing.T) {
	stmts := mustParse(t, `class A { m() { super.m(); } }`)
	_, errs := Resolve(stmts)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, "no superclass")
}

func TestResolveSuperOutsideClassIsError(t *testing.T) {
	stmts := mustParse(t, `super.m();`)
	_, errs := Resolve(stmts)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, "Can't use 'super' outside of a class")
}

func TestResolveClassInheritingFromItselfIsError(t *testing.T) {
	stmts := mustParse(t, `class A < A {}`)
	_, errs := Resolve(stmts)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, "can't inherit from itself")
}

func TestResolveDuplicateLocalIsError(t *testing.T) {
	stmts := mustParse(t, `{ var a = 1; var a = 2; }`)
	_, errs := Resolve(stmts)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, "Already a variable with this name")
}

func TestResolveDuplicateGlobalIsAllowed(t *testing.T) {
	stmts := mustParse(t, `var a = 1; var a = 2;`)
	_, errs := Resolve(stmts)
	assert.Empty(t, errs)
}

func TestResolveReadLocalInOwnInitializerIsError(t *testing.T) {
	stmts := mustParse(t, `{ var a = a; }`)
	_, errs := Resolve(stmts)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, "own initializer")
}
