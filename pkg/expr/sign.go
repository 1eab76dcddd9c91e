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

// Sign is a three-valued lattice approximating the sign of an expression,
// with SignUnknown as top.  SignPositive includes zero.
type Sign uint8

const (
	// SignUnknown indicates the sign could not be determined.
	SignUnknown Sign = iota
	// SignPositive indicates the expression is known non-negative.
	SignPositive
	// SignNegative indicates the expression is known non-positive.
	SignNegative
)

// Negate flips a sign, leaving SignUnknown untouched.
func (s Sign) Negate() Sign {
	switch s {
	case SignPositive:
		return SignNegative
	case SignNegative:
		return SignPositive
	default:
		return SignUnknown
	}
}

func (s Sign) String() string {
	switch s {
	case SignPositive:
		return "+"
	case SignNegative:
		return "-"
	default:
		return "?"
	}
}

// signOfAll determines the shared sign of a set of expressions, or
// SignUnknown when they disagree.
func signOfAll(exprs []Expr) Sign {
	sign := exprs[0].Sign()
	//
	for _, e := range exprs[1:] {
		if e.Sign() != sign {
			return SignUnknown
		}
	}
	//
	return sign
}

// signOfProduct folds factor signs multiplicatively: any unknown factor
// poisons the result, each negative factor flips it.
func signOfProduct(factors []Expr) Sign {
	sign := SignPositive
	//
	for _, f := range factors {
		switch f.Sign() {
		case SignUnknown:
			return SignUnknown
		case SignNegative:
			sign = sign.Negate()
		}
	}
	//
	return sign
}

// signFromBounds derives a sign from symbolic bounds: non-negative lower
// bound means positive, non-positive upper bound means negative.
func signFromBounds(min Expr, max Expr) Sign {
	if v, err := Eval(min); err == nil && v >= 0 {
		return SignPositive
	}
	//
	if min == PosInf {
		return SignPositive
	}
	//
	if v, err := Eval(max); err == nil && v <= 0 {
		return SignNegative
	}
	//
	if max == NegInf {
		return SignNegative
	}
	//
	return SignUnknown
}
