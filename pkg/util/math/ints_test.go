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

import "testing"

func Test_FloorDiv(t *testing.T) {
	checkDiv(t, 7, 2, 3)
	checkDiv(t, -7, 2, -4)
	checkDiv(t, 7, -2, -4)
	checkDiv(t, -7, -2, 3)
	checkDiv(t, 6, 2, 3)
	checkDiv(t, -6, 2, -3)
	checkDiv(t, 0, 5, 0)
	checkDiv(t, -1, 5, -1)
}

func Test_CRem(t *testing.T) {
	checkRem(t, 7, 2, 1)
	checkRem(t, -7, 2, -1)
	checkRem(t, 7, -2, 1)
	checkRem(t, -7, -2, -1)
	checkRem(t, -56, 2, 0)
	checkRem(t, 0, 3, 0)
}

func Test_Gcd64(t *testing.T) {
	checkGcd(t, 12, 18, 6)
	checkGcd(t, 18, 12, 6)
	checkGcd(t, -12, 18, 6)
	checkGcd(t, 7, 13, 1)
	checkGcd(t, 0, 5, 5)
	checkGcd(t, 0, 0, 0)
}

func Test_PowInt64(t *testing.T) {
	for base := int64(-3); base <= 3; base++ {
		for exp := uint64(0); exp < 8; exp++ {
			// Bruteforce solution
			e := int64(1)
			for i := uint64(0); i < exp; i++ {
				e *= base
			}
			// Check for a match
			if x := PowInt64(base, exp); x != e {
				t.Errorf("%d^%d == %d != %d", base, exp, x, e)
			}
		}
	}
}

func checkDiv(t *testing.T, num, den, expected int64) {
	if x := FloorDiv(num, den); x != expected {
		t.Errorf("FloorDiv(%d,%d) == %d != %d", num, den, x, expected)
	}
}

func checkRem(t *testing.T, num, den, expected int64) {
	if x := CRem(num, den); x != expected {
		t.Errorf("CRem(%d,%d) == %d != %d", num, den, x, expected)
	}
	// Remainder sign follows the dividend
	if x := CRem(num, den); x != 0 && (x < 0) != (num < 0) {
		t.Errorf("CRem(%d,%d) == %d has wrong sign", num, den, x)
	}
}

func checkGcd(t *testing.T, a, b, expected int64) {
	if x := Gcd64(a, b); x != expected {
		t.Errorf("Gcd64(%d,%d) == %d != %d", a, b, x, expected)
	}
}
