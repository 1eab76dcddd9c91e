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

// Range describes the values a variable can take.  Ranges are immutable;
// substitution produces a new range.
type Range interface {
	// Min returns a symbolic lower bound of this range.
	Min() Expr
	// Max returns a symbolic upper bound of this range.  For stepped ranges
	// the returned maximum is an upper bound, not necessarily attained.
	Max() Expr
	// NumVals returns the cardinality of reachable values, symbolically.
	NumVals() Expr
	// Substitute applies a set of bindings to the bounds of this range.
	Substitute(bindings []Binding) Range
}

// StartFrom is the half-open range [start, +inf).
type StartFrom struct {
	// Start is the inclusive lower bound.
	Start Expr
}

// Min implementation for the Range interface.
func (p StartFrom) Min() Expr { return p.Start }

// Max implementation for the Range interface.
func (p StartFrom) Max() Expr { return PosInf }

// NumVals implementation for the Range interface.
func (p StartFrom) NumVals() Expr { return PosInf }

// Substitute implementation for the Range interface.
func (p StartFrom) Substitute(bindings []Binding) Range {
	return StartFrom{Substitute(p.Start, bindings...)}
}

// GoesTo is the half-open range (-inf, end].
type GoesTo struct {
	// End is the inclusive upper bound.
	End Expr
}

// Min implementation for the Range interface.
func (p GoesTo) Min() Expr { return NegInf }

// Max implementation for the Range interface.
func (p GoesTo) Max() Expr { return p.End }

// NumVals implementation for the Range interface.
func (p GoesTo) NumVals() Expr { return PosInf }

// Substitute implementation for the Range interface.
func (p GoesTo) Substitute(bindings []Binding) Range {
	return GoesTo{Substitute(p.End, bindings...)}
}

// RangeAdd is the stepped range {start, start+step, ...} bounded by stop.
type RangeAdd struct {
	// Start is the first reachable value.
	Start Expr
	// Stop bounds the range in the direction of travel.
	Stop Expr
	// Step is the (non-zero) increment between values.
	Step Expr
}

// Min implementation for the Range interface.
func (p RangeAdd) Min() Expr {
	switch p.Step.Sign() {
	case SignPositive:
		return p.Start
	case SignNegative:
		return p.Stop
	default:
		return Unknown
	}
}

// Max implementation for the Range interface.  Note the returned maximum is
// an upper bound only: for a bounded step the last reachable value can fall
// short of it.
func (p RangeAdd) Max() Expr {
	switch p.Step.Sign() {
	case SignPositive:
		return p.Stop
	case SignNegative:
		return p.Start
	default:
		return Unknown
	}
}

// NumVals implementation for the Range interface, computed as the sign-aware
// ceiling of (stop - start) / step.
func (p RangeAdd) NumVals() Expr {
	return CeilOf(OrdinalDiv(Sub(p.Stop, p.Start), p.Step))
}

// Substitute implementation for the Range interface.
func (p RangeAdd) Substitute(bindings []Binding) Range {
	return RangeAdd{
		Substitute(p.Start, bindings...),
		Substitute(p.Stop, bindings...),
		Substitute(p.Step, bindings...),
	}
}

// RangeMul is the geometric range {start, start*mul, ...} bounded by stop.
type RangeMul struct {
	// Start is the first reachable value.
	Start Expr
	// Stop bounds the range in the direction of travel.
	Stop Expr
	// Mul is the multiplier between values.
	Mul Expr
}

// Min implementation for the Range interface.
func (p RangeMul) Min() Expr {
	if p.Mul.Sign() == SignPositive {
		return p.Start
	}
	//
	return Unknown
}

// Max implementation for the Range interface.
func (p RangeMul) Max() Expr {
	if p.Mul.Sign() == SignPositive {
		return p.Stop
	}
	//
	return Unknown
}

// NumVals implementation for the Range interface.
func (p RangeMul) NumVals() Expr {
	return CeilOf(LogOf(p.Mul, OrdinalDiv(p.Stop, p.Start)))
}

// Substitute implementation for the Range interface.
func (p RangeMul) Substitute(bindings []Binding) Range {
	return RangeMul{
		Substitute(p.Start, bindings...),
		Substitute(p.Stop, bindings...),
		Substitute(p.Mul, bindings...),
	}
}

// RangeUnknown is the range about which nothing is known.
type RangeUnknown struct{}

// Min implementation for the Range interface.
func (p RangeUnknown) Min() Expr { return Unknown }

// Max implementation for the Range interface.
func (p RangeUnknown) Max() Expr { return Unknown }

// NumVals implementation for the Range interface.
func (p RangeUnknown) NumVals() Expr { return PosInf }

// Substitute implementation for the Range interface.
func (p RangeUnknown) Substitute([]Binding) Range { return p }
