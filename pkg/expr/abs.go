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

	"github.com/rise-lang/arithexpr/pkg/util/math"
)

// Abs represents the absolute value of an expression.
type Abs struct {
	exprBase
	// Arg is the expression whose magnitude is taken.
	Arg Expr
}

// AbsOf takes the absolute value of an expression.  When the sign of the
// argument is decidable, the absolute value pushes through.
func AbsOf(arg Expr) Expr {
	if c, ok := arg.(*Constant); ok {
		return Const(math.Abs64(c.Val))
	}
	//
	switch arg.Sign() {
	case SignPositive:
		return arg
	case SignNegative:
		return Neg(arg)
	}
	//
	return &Abs{newBase(digestOf(AbsKind, arg.Digest())), arg}
}

// Kind implementation for the Expr interface.
func (p *Abs) Kind() Kind { return AbsKind }

// Children implementation for the Expr interface.
func (p *Abs) Children() []Expr { return []Expr{p.Arg} }

// Sign implementation for the Expr interface.
func (p *Abs) Sign() Sign { return SignPositive }

// Min implementation for the Expr interface.
func (p *Abs) Min() Expr { return Const(0) }

// Max implementation for the Expr interface.
func (p *Abs) Max() Expr {
	lo, err1 := Eval(p.Arg.Min())
	hi, err2 := Eval(p.Arg.Max())
	//
	if err1 == nil && err2 == nil {
		return Const(math.Max64(math.Abs64(lo), math.Abs64(hi)))
	}
	//
	return Unknown
}

func (p *Abs) String() string {
	return fmt.Sprintf("abs(%s)", p.Arg.String())
}
