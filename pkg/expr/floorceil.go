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
	"fmt"
	gomath "math"
)

// Floor represents the floor of a (possibly fractional) expression.
type Floor struct {
	exprBase
	// Arg is the floored expression.
	Arg Expr
}

// FloorOf takes the floor of an expression.  Constants are fixed points; a
// closed expression evaluates numerically; otherwise the floor collapses to a
// constant when the floors of its bounds agree.
func FloorOf(arg Expr) Expr {
	if _, ok := arg.(*Constant); ok {
		return arg
	}
	//
	if v, err := EvalDouble(arg); err == nil {
		return Const(int64(gomath.Floor(v)))
	}
	//
	if lo, hi, ok := doubleBounds(arg); ok && gomath.Floor(lo) == gomath.Floor(hi) {
		return Const(int64(gomath.Floor(lo)))
	}
	//
	return &Floor{newBase(digestOf(FloorKind, arg.Digest())), arg}
}

// Kind implementation for the Expr interface.
func (p *Floor) Kind() Kind { return FloorKind }

// Children implementation for the Expr interface.
func (p *Floor) Children() []Expr { return []Expr{p.Arg} }

// Sign implementation for the Expr interface.
func (p *Floor) Sign() Sign { return p.Arg.Sign() }

// Min implementation for the Expr interface.
func (p *Floor) Min() Expr { return unaryBound(p.Arg.Min(), FloorOf) }

// Max implementation for the Expr interface.
func (p *Floor) Max() Expr { return unaryBound(p.Arg.Max(), FloorOf) }

func (p *Floor) String() string {
	return fmt.Sprintf("floor(%s)", p.Arg.String())
}

// Ceil represents the ceiling of a (possibly fractional) expression.
type Ceil struct {
	exprBase
	// Arg is the expression being rounded up.
	Arg Expr
}

// CeilOf takes the ceiling of an expression, mirroring FloorOf.
func CeilOf(arg Expr) Expr {
	if _, ok := arg.(*Constant); ok {
		return arg
	}
	//
	if v, err := EvalDouble(arg); err == nil {
		return Const(int64(gomath.Ceil(v)))
	}
	//
	if lo, hi, ok := doubleBounds(arg); ok && gomath.Ceil(lo) == gomath.Ceil(hi) {
		return Const(int64(gomath.Ceil(lo)))
	}
	//
	return &Ceil{newBase(digestOf(CeilKind, arg.Digest())), arg}
}

// Kind implementation for the Expr interface.
func (p *Ceil) Kind() Kind { return CeilKind }

// Children implementation for the Expr interface.
func (p *Ceil) Children() []Expr { return []Expr{p.Arg} }

// Sign implementation for the Expr interface.
func (p *Ceil) Sign() Sign { return p.Arg.Sign() }

// Min implementation for the Expr interface.
func (p *Ceil) Min() Expr { return unaryBound(p.Arg.Min(), CeilOf) }

// Max implementation for the Expr interface.
func (p *Ceil) Max() Expr { return unaryBound(p.Arg.Max(), CeilOf) }

func (p *Ceil) String() string {
	return fmt.Sprintf("ceil(%s)", p.Arg.String())
}

// doubleBounds evaluates the symbolic bounds of an expression numerically,
// when possible.
func doubleBounds(e Expr) (float64, float64, bool) {
	lo, err1 := EvalDouble(e.Min())
	hi, err2 := EvalDouble(e.Max())
	//
	return lo, hi, err1 == nil && err2 == nil
}
