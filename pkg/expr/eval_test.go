// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvalClosed(t *testing.T) {
	tests := []struct {
		expr     Expr
		expected int64
	}{
		{Sum(Const(1), Const(2)), 3},
		{Product(Const(3), Const(4)), 12},
		{PowOf(Const(2), Const(8)), 256},
		{AbsOf(Const(-4)), 4},
		{FloorOf(OrdinalDiv(Const(9), Const(4))), 2},
		{CeilOf(OrdinalDiv(Const(9), Const(4))), 3},
		{LogOf(Const(2), Const(64)), 6},
	}
	//
	for _, tt := range tests {
		v, err := Eval(tt.expr)
		//
		assert.NoError(t, err)
		assert.Equal(t, tt.expected, v, tt.expr.String())
	}
}

func TestEvalFailsOnOpenTerms(t *testing.T) {
	x := NewVar("x")
	//
	for _, e := range []Expr{x, Unknown, PosInf, NegInf, Sum(x, Const(1)),
		NewNamedFunc("f", RangeUnknown{})} {
		_, err := Eval(e)
		//
		assert.ErrorIs(t, err, ErrNotEvaluable, e.String())
		assert.False(t, IsEvaluable(e))
	}
}

func TestEvalDouble(t *testing.T) {
	v, err := EvalDouble(OrdinalDiv(Const(7), Const(2)))
	//
	assert.NoError(t, err)
	assert.Equal(t, 3.5, v)
	//
	_, err = EvalDouble(NewVar("x"))
	assert.ErrorIs(t, err, ErrNotEvaluable)
}

func TestSubstitutionScenarios(t *testing.T) {
	a, b, c, d := NewVar("a"), NewVar("b"), NewVar("c"), NewVar("d")
	//
	bindings := []Binding{
		{a, Const(12)}, {b, Const(57)}, {c, Const(2)}, {d, Const(4)},
	}
	// (a * -1) / c == -6
	e1 := IntDiv(Product(a, Const(-1)), c)
	assert.True(t, Equals(Substitute(e1, bindings...), Const(-6)))
	// ((1 + -1*b) % c) - 1 == -1
	e2 := Sub(Rem(Sum(Const(1), Product(Const(-1), b)), c), Const(1))
	assert.True(t, Equals(Substitute(e2, bindings...), Const(-1)))
	// d participates via its absence: an unused binding changes nothing
	assert.True(t, Equals(Substitute(a, Binding{d, Const(4)}), a))
}

func TestSubstituteCommutesWithEval(t *testing.T) {
	x, y := NewVar("x"), NewVar("y")
	e := Product(Sum(x, y), Const(3))
	//
	closed := Substitute(e, Binding{x, Const(2)}, Binding{y, Const(5)})
	//
	v, err := Eval(closed)
	assert.NoError(t, err)
	assert.Equal(t, int64(21), v)
}

func TestSubstituteInsideRanges(t *testing.T) {
	n := SizeVar("n")
	// x ranges over [0, n); substituting n tightens the range enough to
	// settle comparisons.
	x := VarWithRange("x", RangeAdd{Const(0), Sub(n, Const(1)), Const(1)})
	//
	tightened := Substitute(x, Binding{n, Const(8)})
	assert.True(t, isSmallerTrue(tightened, Const(8)))
}

func TestAtMinAtMax(t *testing.T) {
	x := SizeVar("x")
	//
	assert.True(t, Equals(AtMin(Sum(x, Const(5))), Const(6)))
	// The maximum of a size variable is unbounded
	assert.True(t, Equals(AtMax(x), PosInf))
}

func TestVarList(t *testing.T) {
	x, y, z := NewVar("x"), NewVar("y"), NewVar("z")
	e := Product(Sum(x, y), z, Const(2))
	//
	vars := VarList(e)
	//
	assert.Equal(t, 3, vars.Size())
	assert.True(t, vars.Contains(x.(*Variable)))
	assert.True(t, Contains(e, y))
	assert.False(t, Contains(e, NewVar("w")))
}
