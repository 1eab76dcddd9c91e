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
package math

// FloorDiv divides one integer by another, rounding towards negative infinity.
// This differs from Go's native division operator, which rounds towards zero.
// For example, FloorDiv(-3, 2) == -2 whereas -3 / 2 == -1.  This will panic if
// the divisor is zero.
func FloorDiv(num int64, den int64) int64 {
	q := num / den
	// Adjust when rounding occurred against the floor.
	if (num%den != 0) && ((num < 0) != (den < 0)) {
		q--
	}
	//
	return q
}

// CRem determines the remainder of dividing one integer by another, following
// the C semantics where the sign of the result matches the sign of the
// dividend.  This coincides with Go's native remainder operator.  This will
// panic if the divisor is zero.
func CRem(num int64, den int64) int64 {
	return num % den
}

// Gcd64 determines the (non-negative) greatest common divisor of two
// integers.  By convention, Gcd64(0, 0) == 0.
func Gcd64(a int64, b int64) int64 {
	if a < 0 {
		a = -a
	}
	//
	if b < 0 {
		b = -b
	}
	//
	for b != 0 {
		a, b = b, a%b
	}
	//
	return a
}

// PowInt64 raises a given base to a given non-negative power.  Overflow is not
// checked.
func PowInt64(base int64, exp uint64) int64 {
	result := int64(1)
	//
	for {
		if exp&1 == 1 {
			result *= base
		}
		// div 2
		exp >>= 1
		//
		if exp == 0 {
			break
		}
		//
		base *= base
	}

	return result
}

// Abs64 determines the absolute value of an integer.
func Abs64(a int64) int64 {
	if a < 0 {
		return -a
	}
	//
	return a
}

// Min64 determines the least of two integers.
func Min64(a int64, b int64) int64 {
	if a <= b {
		return a
	}
	//
	return b
}

// Max64 determines the greatest of two integers.
func Max64(a int64, b int64) int64 {
	if a >= b {
		return a
	}
	//
	return b
}
