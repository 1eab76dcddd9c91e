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

func TestIsSmallerConstants(t *testing.T) {
	assertSmaller(t, Const(1), Const(2), true)
	assertSmaller(t, Const(2), Const(1), false)
	assertSmaller(t, Const(1), Const(1), false)
}

func TestIsSmallerInfinities(t *testing.T) {
	x := NewVar("x")
	//
	assertSmaller(t, NegInf, x, true)
	assertSmaller(t, x, PosInf, true)
	assertSmaller(t, PosInf, x, false)
	assertSmaller(t, PosInf, PosInf, false)
	assertSmaller(t, NegInf, NegInf, false)
}

func TestIsSmallerUnknownOperand(t *testing.T) {
	assert.True(t, IsSmaller(Unknown, Const(1)).IsEmpty())
	assert.True(t, IsSmaller(Const(1), Sum(Unknown, Const(2))).IsEmpty())
}

func TestIsSmallerByBounds(t *testing.T) {
	small := VarWithRange("s", RangeAdd{Const(0), Const(7), Const(1)})
	//
	assertSmaller(t, small, Const(8), true)
	assertSmaller(t, Const(10), small, false)
	// Overlapping bounds settle nothing
	assert.True(t, IsSmaller(small, Const(5)).IsEmpty())
}

func TestIsSmallerByDifference(t *testing.T) {
	x := NewVar("x")
	// (x + 1) - x is constant even though neither side is closed
	assertSmaller(t, x, Sum(x, Const(1)), true)
	assertSmaller(t, Sum(x, Const(1)), x, false)
}

func TestIsSmallerDivPattern(t *testing.T) {
	x := SizeVar("x")
	// x/2 < x for positive x
	assertSmaller(t, IntDiv(x, Const(2)), x, true)
	// 3*(x/4) < x for positive x
	assertSmaller(t, Product(Const(3), IntDiv(x, Const(4))), x, true)
	// ... but nothing is known for a possibly-zero x
	y := PosVar("y")
	assert.True(t, IsSmaller(IntDiv(y, Const(2)), y).IsEmpty())
}

func TestIsSmallerModPattern(t *testing.T) {
	d := SizeVar("d")
	x := PosVar("x")
	// x % d < d for a positive divisor and non-negative dividend
	assertSmaller(t, Rem(x, d), d, true)
}

func TestIsSmallerUndecided(t *testing.T) {
	assert.True(t, IsSmaller(NewVar("x"), NewVar("y")).IsEmpty())
}

// IsSmaller is sound: a definite answer agrees with evaluation under every
// closing substitution within range.
func TestIsSmallerSoundness(t *testing.T) {
	x := VarWithRange("x", RangeAdd{Const(1), Const(8), Const(1)})
	lhs, rhs := IntDiv(x, Const(2)), x
	//
	r := IsSmaller(lhs, rhs)
	assert.True(t, r.HasValue() && r.Unwrap())
	//
	for v := int64(1); v <= 8; v++ {
		l, err1 := Eval(Substitute(lhs, Binding{x, Const(v)}))
		rr, err2 := Eval(Substitute(rhs, Binding{x, Const(v)}))
		//
		assert.NoError(t, err1)
		assert.NoError(t, err2)
		assert.Less(t, l, rr, "x = %d", v)
	}
}

func TestMightBeNegative(t *testing.T) {
	assert.False(t, MightBeNegative(Const(0)))
	assert.False(t, MightBeNegative(Const(3)))
	assert.True(t, MightBeNegative(Const(-3)))
	assert.False(t, MightBeNegative(PosVar("x")))
	assert.True(t, MightBeNegative(NewVar("y")))
	assert.False(t, MightBeNegative(AbsOf(NewVar("y"))))
}

func TestSigns(t *testing.T) {
	x, y := SizeVar("x"), NewVar("y")
	//
	assert.Equal(t, SignPositive, Const(1).Sign())
	assert.Equal(t, SignNegative, Const(-1).Sign())
	assert.Equal(t, SignPositive, x.Sign())
	assert.Equal(t, SignUnknown, y.Sign())
	// A product of a negative and a positive is negative
	assert.Equal(t, SignNegative, Neg(x).Sign())
	// Squares of knowns are positive, even powers in general
	assert.Equal(t, SignPositive, PowOf(Neg(x), Const(2)).Sign())
	// The remainder takes the dividend's sign
	assert.Equal(t, SignNegative, Rem(Neg(x), SizeVar("d")).Sign())
}

func assertSmaller(t *testing.T, a Expr, b Expr, expected bool) {
	t.Helper()
	//
	r := IsSmaller(a, b)
	//
	if assert.True(t, r.HasValue(), "IsSmaller(%s, %s) undecided", a.String(), b.String()) {
		assert.Equal(t, expected, r.Unwrap(), "IsSmaller(%s, %s)", a.String(), b.String())
	}
}
