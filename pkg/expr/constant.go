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

import "strconv"

// Constant represents an integer constant.
type Constant struct {
	exprBase
	// Val is the value of this constant.
	Val int64
}

// Const constructs an integer constant.
func Const(val int64) Expr {
	return newConst(val)
}

func newConst(val int64) *Constant {
	return &Constant{newBase(digestOf(ConstKind, uint64(val))), val}
}

// Kind implementation for the Expr interface.
func (p *Constant) Kind() Kind { return ConstKind }

// Children implementation for the Expr interface.
func (p *Constant) Children() []Expr { return nil }

// Sign implementation for the Expr interface.
func (p *Constant) Sign() Sign {
	if p.Val < 0 {
		return SignNegative
	}
	//
	return SignPositive
}

// Min implementation for the Expr interface.
func (p *Constant) Min() Expr { return p }

// Max implementation for the Expr interface.
func (p *Constant) Max() Expr { return p }

func (p *Constant) String() string {
	return strconv.FormatInt(p.Val, 10)
}

// Infinity represents one of the two distinguished infinity singletons.
type Infinity struct {
	exprBase
	positive bool
}

// PosInf is the positive infinity singleton.
var PosInf Expr = &Infinity{newBase(digestOf(PosInfKind)), true}

// NegInf is the negative infinity singleton.
var NegInf Expr = &Infinity{newBase(digestOf(NegInfKind)), false}

// Kind implementation for the Expr interface.
func (p *Infinity) Kind() Kind {
	if p.positive {
		return PosInfKind
	}
	//
	return NegInfKind
}

// Children implementation for the Expr interface.
func (p *Infinity) Children() []Expr { return nil }

// Sign implementation for the Expr interface.
func (p *Infinity) Sign() Sign {
	if p.positive {
		return SignPositive
	}
	//
	return SignNegative
}

// Min implementation for the Expr interface.
func (p *Infinity) Min() Expr { return p }

// Max implementation for the Expr interface.
func (p *Infinity) Max() Expr { return p }

func (p *Infinity) String() string {
	if p.positive {
		return "+inf"
	}
	//
	return "-inf"
}

// UnknownTerm represents the distinguished unknown singleton, rendered as "?".
// Decision procedures collapse to an undecided result whenever it appears.
type UnknownTerm struct {
	exprBase
}

// Unknown is the unknown expression singleton.
var Unknown Expr = &UnknownTerm{newBase(digestOf(UnknownKind))}

// Kind implementation for the Expr interface.
func (p *UnknownTerm) Kind() Kind { return UnknownKind }

// Children implementation for the Expr interface.
func (p *UnknownTerm) Children() []Expr { return nil }

// Sign implementation for the Expr interface.
func (p *UnknownTerm) Sign() Sign { return SignUnknown }

// Min implementation for the Expr interface.
func (p *UnknownTerm) Min() Expr { return p }

// Max implementation for the Expr interface.
func (p *UnknownTerm) Max() Expr { return p }

func (p *UnknownTerm) String() string { return "?" }
