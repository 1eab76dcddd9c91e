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

func TestIntDivByZeroPanics(t *testing.T) {
	x := NewVar("x")
	//
	assert.Panics(t, func() { IntDiv(x, Const(0)) })
	assert.Panics(t, func() { Rem(x, Const(0)) })
}

func TestIntDivConstants(t *testing.T) {
	tests := []struct {
		num, den, expected int64
	}{
		{12, 2, 6},
		{-12, 2, -6},
		{7, 2, 3},
		// Floor semantics: negative dividends round down
		{-7, 2, -4},
		{7, -2, -4},
		{-7, -2, 3},
	}
	//
	for _, tt := range tests {
		assert.True(t, Equals(IntDiv(Const(tt.num), Const(tt.den)), Const(tt.expected)),
			"%d / %d", tt.num, tt.den)
	}
}

func TestIntDivIdentities(t *testing.T) {
	x := SizeVar("x")
	//
	assert.True(t, Equals(IntDiv(x, Const(1)), x))
	assert.True(t, Equals(IntDiv(x, Const(-1)), Neg(x)))
	assert.True(t, Equals(IntDiv(Const(0), x), Const(0)))
	// x / x == 1 for a provably non-zero denominator
	assert.True(t, Equals(IntDiv(x, x), Const(1)))
}

func TestIntDivSmallNumerator(t *testing.T) {
	// n / d == 0 whenever 0 <= n < |d|
	n := VarWithRange("n", RangeAdd{Const(0), Const(7), Const(1)})
	//
	assert.True(t, Equals(IntDiv(n, Const(8)), Const(0)))
}

func TestIntDivExactQuotient(t *testing.T) {
	a, b := NewVar("a"), NewVar("b")
	// (a*b) / b == a
	assert.True(t, Equals(IntDiv(Product(a, b), b), a))
	// (6*a) / 2 == 3*a
	assert.True(t, Equals(IntDiv(Product(Const(6), a), Const(2)), Product(Const(3), a)))
	// (2a + 2b) / 2 == a + b
	sum := Sum(Product(Const(2), a), Product(Const(2), b))
	assert.True(t, Equals(IntDiv(sum, Const(2)), Sum(a, b)))
}

func TestRemConstants(t *testing.T) {
	tests := []struct {
		num, den, expected int64
	}{
		{7, 2, 1},
		// C semantics: the result takes the dividend's sign
		{-7, 2, -1},
		{7, -2, 1},
		{-56, 2, 0},
	}
	//
	for _, tt := range tests {
		assert.True(t, Equals(Rem(Const(tt.num), Const(tt.den)), Const(tt.expected)),
			"%d %% %d", tt.num, tt.den)
	}
}

func TestRemIdentities(t *testing.T) {
	x := SizeVar("x")
	//
	assert.True(t, Equals(Rem(x, Const(1)), Const(0)))
	assert.True(t, Equals(Rem(x, x), Const(0)))
	assert.True(t, Equals(Rem(Const(0), x), Const(0)))
	// A remainder is idempotent in its divisor
	m := Rem(PosVar("y"), x)
	assert.True(t, Equals(Rem(m, x), m))
}

func TestRemMultiples(t *testing.T) {
	a := NewVar("a")
	d := SizeVar("d")
	// (a*d) % d == 0
	assert.True(t, Equals(Rem(Product(a, d), d), Const(0)))
	// (k*d + r) % d == r % d for non-negative sums
	k, r := PosVar("k"), PosVar("r")
	lhs := Rem(Sum(Product(k, d), r), d)
	assert.True(t, Equals(lhs, Rem(r, d)))
}

func TestRemSmallDividend(t *testing.T) {
	// n % d == n whenever 0 <= n < |d|
	n := VarWithRange("n", RangeAdd{Const(0), Const(7), Const(1)})
	//
	assert.True(t, Equals(Rem(n, Const(8)), n))
}

func TestMultipleOf(t *testing.T) {
	a, b := NewVar("a"), NewVar("b")
	//
	assert.True(t, MultipleOf(Product(a, b), b))
	assert.True(t, MultipleOf(Product(Const(6), a), Const(3)))
	assert.True(t, MultipleOf(Const(12), Const(4)))
	assert.False(t, MultipleOf(Const(12), Const(5)))
	assert.False(t, MultipleOf(Sum(a, Const(1)), a))
}

func TestGCD(t *testing.T) {
	a, b, c := NewVar("a"), NewVar("b"), NewVar("c")
	//
	assert.True(t, Equals(GCD(Const(12), Const(18)), Const(6)))
	assert.True(t, Equals(GCD(a, a), a))
	// Common factors of products
	assert.True(t, Equals(GCD(Product(a, b), Product(a, c)), a))
	// Nothing to factor out
	assert.True(t, Equals(GCD(a, b), Const(1)))
	// The GCD divides both operands
	g := GCD(Product(Const(4), a), Product(Const(6), a))
	assert.True(t, MultipleOf(Product(Const(4), a), g))
	assert.True(t, MultipleOf(Product(Const(6), a), g))
}
