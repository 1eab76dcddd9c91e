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

func TestProductConstantFolding(t *testing.T) {
	x := NewVar("x")
	//
	assert.True(t, Equals(Product(Const(2), Const(3)), Const(6)))
	assert.True(t, Equals(Product(), Const(1)))
	assert.True(t, Equals(Product(x, Const(1)), x))
}

func TestProductAbsorbsZero(t *testing.T) {
	x, y := NewVar("x"), NewVar("y")
	//
	assert.True(t, Equals(Product(x, Const(0), y), Const(0)))
}

func TestProductCommutes(t *testing.T) {
	x, y := NewVar("x"), NewVar("y")
	//
	assert.True(t, Equals(Product(x, y), Product(y, x)))
	assert.True(t, Equals(Product(Const(2), x, y), Product(y, x, Const(2))))
}

func TestProductMergesBases(t *testing.T) {
	x := NewVar("x")
	// x * x == x^2
	assert.True(t, Equals(Product(x, x), PowOf(x, Const(2))))
	// x^2 * x^3 == x^5
	assert.True(t, Equals(
		Product(PowOf(x, Const(2)), PowOf(x, Const(3))),
		PowOf(x, Const(5)),
	))
	// x * x^-1 == 1
	assert.True(t, Equals(Product(x, PowOf(x, Const(-1))), Const(1)))
}

func TestProductDistributesConstants(t *testing.T) {
	x, y := NewVar("x"), NewVar("y")
	// 3 * (x + y) == 3x + 3y
	lhs := Product(Const(3), Sum(x, y))
	rhs := Sum(Product(Const(3), x), Product(Const(3), y))
	//
	assert.True(t, Equals(lhs, rhs))
	// x * (x + y) is not distributed
	kept := Product(x, Sum(x, y))
	assert.Equal(t, ProdKind, kept.Kind())
}

func TestProductFlattens(t *testing.T) {
	x, y, z := NewVar("x"), NewVar("y"), NewVar("z")
	//
	assert.True(t, Equals(Product(Product(x, y), z), Product(x, Product(y, z))))
	checkNormal(t, Product(Product(x, Const(2)), Product(y, z)))
}

func TestOrdinalDiv(t *testing.T) {
	x := NewVar("x")
	// x /^ x == 1
	assert.True(t, Equals(OrdinalDiv(x, x), Const(1)))
	// 7 /^ 2 evaluates to 3.5
	v, err := EvalDouble(OrdinalDiv(Const(7), Const(2)))
	assert.NoError(t, err)
	assert.Equal(t, 3.5, v)
}

func TestNeg(t *testing.T) {
	x := NewVar("x")
	//
	assert.True(t, Equals(Neg(Const(5)), Const(-5)))
	assert.True(t, Equals(Neg(Neg(x)), x))
}
