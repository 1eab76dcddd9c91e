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

func TestPowTrivial(t *testing.T) {
	x := NewVar("x")
	//
	assert.True(t, Equals(PowOf(x, Const(0)), Const(1)))
	assert.True(t, Equals(PowOf(x, Const(1)), x))
	assert.True(t, Equals(PowOf(Const(1), x), Const(1)))
	// 0^0 == 1
	assert.True(t, Equals(PowOf(Const(0), Const(0)), Const(1)))
	// 0^x == 0 for provably positive x
	assert.True(t, Equals(PowOf(Const(0), SizeVar("n")), Const(0)))
}

func TestPowConstantFolding(t *testing.T) {
	assert.True(t, Equals(PowOf(Const(2), Const(10)), Const(1024)))
	assert.True(t, Equals(PowOf(Const(-2), Const(3)), Const(-8)))
	assert.True(t, Equals(PowOf(Const(-1), Const(-3)), Const(-1)))
	// A proper reciprocal stays symbolic
	assert.Equal(t, PowKind, PowOf(Const(2), Const(-1)).Kind())
}

func TestPowMergesNested(t *testing.T) {
	x := NewVar("x")
	// (x^2)^3 == x^6
	assert.True(t, Equals(PowOf(PowOf(x, Const(2)), Const(3)), PowOf(x, Const(6))))
}

func TestPowDistributesProducts(t *testing.T) {
	x, y := NewVar("x"), NewVar("y")
	// (x*y)^2 == x^2 * y^2
	assert.True(t, Equals(
		PowOf(Product(x, y), Const(2)),
		Product(PowOf(x, Const(2)), PowOf(y, Const(2))),
	))
	// (2*x)^3 == 8 * x^3
	assert.True(t, Equals(
		PowOf(Product(Const(2), x), Const(3)),
		Product(Const(8), PowOf(x, Const(3))),
	))
}

func TestFloorCeil(t *testing.T) {
	assert.True(t, Equals(FloorOf(Const(3)), Const(3)))
	assert.True(t, Equals(CeilOf(Const(-3)), Const(-3)))
	// 7/2 == 3.5 floors to 3 and ceils to 4
	assert.True(t, Equals(FloorOf(OrdinalDiv(Const(7), Const(2))), Const(3)))
	assert.True(t, Equals(CeilOf(OrdinalDiv(Const(7), Const(2))), Const(4)))
	// An open expression stays symbolic
	assert.Equal(t, FloorKind, FloorOf(OrdinalDiv(NewVar("x"), Const(2))).Kind())
}

func TestAbs(t *testing.T) {
	x := SizeVar("x")
	//
	assert.True(t, Equals(AbsOf(Const(-5)), Const(5)))
	assert.True(t, Equals(AbsOf(Const(5)), Const(5)))
	// Decidable signs push through
	assert.True(t, Equals(AbsOf(x), x))
	assert.True(t, Equals(AbsOf(Neg(x)), x))
	// Unknown signs stay symbolic
	assert.Equal(t, AbsKind, AbsOf(NewVar("y")).Kind())
}

func TestIte(t *testing.T) {
	x, y := NewVar("x"), NewVar("y")
	// Decidable predicates short-circuit
	assert.True(t, Equals(NewIte(Less(Const(1), Const(2)), x, y), x))
	assert.True(t, Equals(NewIte(GreaterEq(Const(1), Const(2)), x, y), y))
	// Identical branches collapse
	assert.True(t, Equals(NewIte(Less(x, y), x, x), x))
	// Anything else stays conditional
	assert.Equal(t, IteKind, NewIte(Less(x, y), x, y).Kind())
}

func TestLookupCollapse(t *testing.T) {
	x, y := NewVar("x"), NewVar("y")
	table := []Expr{x, y}
	//
	assert.True(t, Equals(NewLookup(table, Const(1), 7), y))
	assert.Equal(t, LookupKind, NewLookup(table, NewVar("i"), 7).Kind())
}

func TestVarCollapse(t *testing.T) {
	// A range pinning a single value collapses the variable
	v := VarWithRange("v", RangeAdd{Const(5), Const(5), Const(1)})
	assert.True(t, Equals(v, Const(5)))
}

func TestMinMaxClamp(t *testing.T) {
	x := SizeVar("x")
	//
	assert.True(t, Equals(MinOf(Const(2), Const(5)), Const(2)))
	assert.True(t, Equals(MaxOf(Const(2), Const(5)), Const(5)))
	assert.True(t, Equals(Clamp(Const(7), Const(0), Const(5)), Const(5)))
	assert.True(t, Equals(Clamp(Const(-3), Const(0), Const(5)), Const(0)))
	// Undecided orderings become conditionals
	assert.Equal(t, IteKind, MinOf(x, NewVar("y")).Kind())
}
