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
	"sync/atomic"
)

// VarID is the opaque, process-unique identity of a variable.  Identity is
// the sole basis of variable equality; the name is decorative.
type VarID uint64

// Variable ids are minted from a process-wide monotone counter.  On
// wrap-around the counter re-seeds at zero.
var varCounter atomic.Uint64

func nextVarID() VarID {
	return VarID(varCounter.Add(1))
}

// Variable represents a symbolic unknown, optionally constrained by a range.
type Variable struct {
	exprBase
	// Id uniquely identifies this variable.
	Id VarID
	// Name is a decorative label used only for rendering and ordering.
	Name string
	// Range constrains the values this variable can take.
	Range Range
}

// NewVar constructs a fresh variable with an unknown range.
func NewVar(name string) Expr {
	return VarWithRange(name, RangeUnknown{})
}

// PosVar constructs a fresh variable ranging over the non-negative integers.
func PosVar(name string) Expr {
	return VarWithRange(name, StartFrom{Const(0)})
}

// SizeVar constructs a fresh variable ranging over the positive integers.
func SizeVar(name string) Expr {
	return VarWithRange(name, StartFrom{Const(1)})
}

// VarWithRange constructs a fresh variable constrained by a given range.  A
// variable whose range pins a single value collapses to that value.
func VarWithRange(name string, rng Range) Expr {
	return simplifyVar(mkVar(nextVarID(), name, rng))
}

// A variable whose range admits exactly one value is that value.
func simplifyVar(v *Variable) Expr {
	min, max := v.Range.Min(), v.Range.Max()
	//
	if min.Kind() != UnknownKind && Equals(min, max) {
		return min
	}
	//
	return v
}

func mkVar(id VarID, name string, rng Range) *Variable {
	return &Variable{newBase(digestOf(VarKind, uint64(id))), id, name, rng}
}

// Kind implementation for the Expr interface.
func (p *Variable) Kind() Kind { return VarKind }

// Children implementation for the Expr interface.  A variable's range is not
// part of its structural children.
func (p *Variable) Children() []Expr { return nil }

// Sign implementation for the Expr interface.
func (p *Variable) Sign() Sign {
	return signFromBounds(p.Range.Min(), p.Range.Max())
}

// Min implementation for the Expr interface.
func (p *Variable) Min() Expr { return p.Range.Min() }

// Max implementation for the Expr interface.
func (p *Variable) Max() Expr { return p.Range.Max() }

// Hash implementation for the go-set Hasher interface, allowing variables to
// be collected into hashsets keyed by identity.
func (p *Variable) Hash() uint64 { return uint64(p.Id) }

func (p *Variable) String() string {
	return fmt.Sprintf("v_%s_%d", p.Name, p.Id)
}

// Opaque wraps a variable so that its min and max are itself.  IsSmaller uses
// this to freeze variables common to both sides of a comparison.
type Opaque struct {
	exprBase
	// V is the frozen variable.
	V *Variable
}

// NewOpaque freezes a given variable.
func NewOpaque(v *Variable) Expr {
	return &Opaque{newBase(digestOf(OpaqueKind, v.Digest())), v}
}

// Kind implementation for the Expr interface.
func (p *Opaque) Kind() Kind { return OpaqueKind }

// Children implementation for the Expr interface.
func (p *Opaque) Children() []Expr { return nil }

// Sign implementation for the Expr interface.
func (p *Opaque) Sign() Sign { return p.V.Sign() }

// Min implementation for the Expr interface.
func (p *Opaque) Min() Expr { return p }

// Max implementation for the Expr interface.
func (p *Opaque) Max() Expr { return p }

func (p *Opaque) String() string {
	return p.V.String()
}

// NamedFunc represents a symbolic uninterpreted function value, known only by
// its name and range.
type NamedFunc struct {
	exprBase
	// Name identifies this function value.
	Name string
	// Range constrains the values this function can produce.
	Range Range
}

// NewNamedFunc constructs a named symbolic function value.
func NewNamedFunc(name string, rng Range) Expr {
	return &NamedFunc{newBase(digestOfString(NamedFuncKind, name)), name, rng}
}

// Kind implementation for the Expr interface.
func (p *NamedFunc) Kind() Kind { return NamedFuncKind }

// Children implementation for the Expr interface.
func (p *NamedFunc) Children() []Expr { return nil }

// Sign implementation for the Expr interface.
func (p *NamedFunc) Sign() Sign {
	return signFromBounds(p.Range.Min(), p.Range.Max())
}

// Min implementation for the Expr interface.
func (p *NamedFunc) Min() Expr { return p.Range.Min() }

// Max implementation for the Expr interface.
func (p *NamedFunc) Max() Expr { return p.Range.Max() }

func (p *NamedFunc) String() string {
	return p.Name
}
