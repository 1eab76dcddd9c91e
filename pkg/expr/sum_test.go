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

func TestSumConstantFolding(t *testing.T) {
	assert.True(t, Equals(Sum(Const(1), Const(2), Const(3)), Const(6)))
	assert.True(t, Equals(Sum(), Const(0)))
	assert.True(t, Equals(Sum(Const(0)), Const(0)))
	// A zero constant is elided from a non-empty sum
	x := NewVar("x")
	assert.True(t, Equals(Sum(x, Const(0)), x))
}

func TestSumCommutes(t *testing.T) {
	x, y := NewVar("x"), NewVar("y")
	//
	assert.True(t, Equals(Sum(x, y), Sum(y, x)))
	assert.True(t, Equals(Sum(x, y, Const(3)), Sum(Const(3), y, x)))
}

func TestSumCombinesLikeTerms(t *testing.T) {
	x := NewVar("x")
	// 3x + (-3)x == 0
	assert.True(t, Equals(Sum(Product(Const(3), x), Product(Const(-3), x)), Const(0)))
	// x + x == 2x
	assert.True(t, Equals(Sum(x, x), Product(Const(2), x)))
	// x - x == 0
	assert.True(t, Equals(Sub(x, x), Const(0)))
}

func TestSumFlattens(t *testing.T) {
	x, y, z := NewVar("x"), NewVar("y"), NewVar("z")
	//
	assert.True(t, Equals(Sum(Sum(x, y), z), Sum(x, Sum(y, z))))
	checkNormal(t, Sum(Sum(x, y), Sum(z, Const(4))))
}

func TestSumLikeProducts(t *testing.T) {
	a, b := NewVar("a"), NewVar("b")
	// a*b*6 + a*b*5 == a*b*11
	lhs := Sum(Product(a, b, Const(6)), Product(a, b, Const(5)))
	assert.True(t, Equals(lhs, Product(a, b, Const(11))))
	// ... but a*b*6 + a*5 does not combine
	rhs := Sum(Product(a, b, Const(6)), Product(a, Const(5)))
	assert.False(t, Equals(rhs, Product(a, b, Const(11))))
}

func TestSumRecombinesDivMod(t *testing.T) {
	a, b := NewVar("a"), NewVar("b")
	y := Product(Const(4), Sum(a, b))
	// 8*(y/16)*16 + 8*(y%16) == 8*y == (a+b)*4*8
	lhs := Sum(
		Product(Const(8), IntDiv(y, Const(16)), Const(16)),
		Product(Const(8), Rem(y, Const(16))),
	)
	//
	assert.True(t, Equals(lhs, Product(Sum(a, b), Const(4), Const(8))))
}

func TestSumInvariants(t *testing.T) {
	x, y := NewVar("x"), NewVar("y")
	//
	exprs := []Expr{
		Sum(x, y, Const(1), Const(2)),
		Sum(Product(Const(2), x), y, x),
		Sum(Sum(x, Const(1)), Sum(y, Const(-1))),
		Sum(x, Neg(x), y),
	}
	//
	for _, e := range exprs {
		checkNormal(t, e)
	}
}

// checkNormal asserts the normal form invariants hold for an expression and
// all of its subexpressions.
func checkNormal(t *testing.T, e Expr) {
	t.Helper()
	//
	Visit(e, func(x Expr) {
		switch n := x.(type) {
		case *Add:
			checkOperands(t, x, n.Terms, SumKind)
		case *Mul:
			checkOperands(t, x, n.Factors, ProdKind)
			// A product constant is never one
			for _, f := range n.Factors {
				if c, ok := f.(*Constant); ok {
					assert.NotEqual(t, int64(0), c.Val, "zero factor in %s", x.String())
					assert.NotEqual(t, int64(1), c.Val, "unit factor in %s", x.String())
				}
			}
		}
	})
}

func checkOperands(t *testing.T, parent Expr, operands []Expr, kind Kind) {
	t.Helper()
	//
	consts := 0
	//
	assert.GreaterOrEqual(t, len(operands), 2, "arity of %s", parent.String())
	//
	for i, op := range operands {
		// No nested node of the same kind
		assert.NotEqual(t, kind, op.Kind(), "nested operand in %s", parent.String())
		// A product never contains a sum... unless distribution was refused,
		// which only leaves non-constant cofactors.
		if op.Kind() == ConstKind {
			consts++
		}
		// Canonical ordering
		if i > 0 {
			assert.LessOrEqual(t, Compare(operands[i-1], op), 0,
				"operands out of order in %s", parent.String())
		}
	}
	//
	assert.LessOrEqual(t, consts, 1, "multiple constants in %s", parent.String())
}
