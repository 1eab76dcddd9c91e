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
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Per-kind digest seeds.  Each variant salts its digest with its own seed so
// that, for example, Floor(x) and Ceil(x) cannot collide trivially.  Ordered
// operands (numerator vs denominator, base vs exponent) are distinguished by
// complementing the digest of the second operand before mixing.
var kindSeeds = [...]uint64{
	ConstKind:     0x9e3779b97f4a7c15,
	VarKind:       0xc2b2ae3d27d4eb4f,
	OpaqueKind:    0x165667b19e3779f9,
	NamedFuncKind: 0x27d4eb2f165667c5,
	PosInfKind:    0x85ebca77c2b2ae63,
	NegInfKind:    0xff51afd7ed558ccd,
	UnknownKind:   0xc4ceb9fe1a85ec53,
	LookupKind:    0x2545f4914f6cdd1d,
	SumKind:       0xd6e8feb86659fd93,
	ProdKind:      0xa5a5a5a5a5a5a5a5,
	PowKind:       0x94d049bb133111eb,
	DivKind:       0xbf58476d1ce4e5b9,
	ModKind:       0x4cf5ad432745937f,
	LogKind:       0xe7037ed1a0b428db,
	FloorKind:     0x8ebc6af09c88c6e3,
	CeilKind:      0x589965cc75374cc3,
	AbsKind:       0x1d8e4e27c47d124f,
	IteKind:       0xeb44accab455d165,
	BigSumKind:    0x6c62272e07bb0142,
}

// digestOf mixes a kind's seed with a sequence of child digests.  Callers
// complement the digest of the second operand of ordered variants before
// passing it here.
func digestOf(kind Kind, children ...uint64) uint64 {
	var (
		h   = xxhash.New()
		buf [8]byte
	)
	//
	binary.LittleEndian.PutUint64(buf[:], kindSeeds[kind])
	h.Write(buf[:])
	//
	for _, c := range children {
		binary.LittleEndian.PutUint64(buf[:], c)
		h.Write(buf[:])
	}
	//
	return h.Sum64()
}

// digestOfString mixes a kind's seed with a string, used for named symbols.
func digestOfString(kind Kind, name string) uint64 {
	var (
		h   = xxhash.New()
		buf [8]byte
	)
	//
	binary.LittleEndian.PutUint64(buf[:], kindSeeds[kind])
	h.Write(buf[:])
	h.WriteString(name)
	//
	return h.Sum64()
}

func digestsOf(exprs []Expr) []uint64 {
	ds := make([]uint64, len(exprs))
	for i, e := range exprs {
		ds[i] = e.Digest()
	}
	//
	return ds
}

// Equals determines whether two expressions are structurally identical.  The
// digest provides a fast reject; a digest match is always confirmed by deep
// comparison.  Two variables are equal exactly when their ids match.
func Equals(a Expr, b Expr) bool {
	if a == b {
		return true
	} else if a.Digest() != b.Digest() || a.Kind() != b.Kind() {
		return false
	}
	//
	switch l := a.(type) {
	case *Constant:
		return l.Val == b.(*Constant).Val
	case *Variable:
		return l.Id == b.(*Variable).Id
	case *Opaque:
		return l.V.Id == b.(*Opaque).V.Id
	case *NamedFunc:
		return l.Name == b.(*NamedFunc).Name
	case *Infinity:
		return l.positive == b.(*Infinity).positive
	case *UnknownTerm:
		return true
	case *Lookup:
		r := b.(*Lookup)
		return l.Id == r.Id && Equals(l.Index, r.Index)
	case *Add:
		return equalsAll(l.Terms, b.(*Add).Terms)
	case *Mul:
		return equalsAll(l.Factors, b.(*Mul).Factors)
	case *Pow:
		r := b.(*Pow)
		return Equals(l.Base, r.Base) && Equals(l.Exponent, r.Exponent)
	case *Div:
		r := b.(*Div)
		return Equals(l.Num, r.Num) && Equals(l.Den, r.Den)
	case *Mod:
		r := b.(*Mod)
		return Equals(l.Dividend, r.Dividend) && Equals(l.Divisor, r.Divisor)
	case *Log:
		r := b.(*Log)
		return Equals(l.Base, r.Base) && Equals(l.Arg, r.Arg)
	case *Floor:
		return Equals(l.Arg, b.(*Floor).Arg)
	case *Ceil:
		return Equals(l.Arg, b.(*Ceil).Arg)
	case *Abs:
		return Equals(l.Arg, b.(*Abs).Arg)
	case *Ite:
		r := b.(*Ite)
		return l.Cond.Equals(r.Cond) && Equals(l.Then, r.Then) && Equals(l.Else, r.Else)
	case *BigSum:
		r := b.(*BigSum)
		// Bodies are compared up to renaming of the iteration variable.
		body := Substitute(r.Body, Binding{r.Iter, l.Iter})
		//
		return Equals(l.From, r.From) && Equals(l.UpTo, r.UpTo) && Equals(l.Body, body)
	default:
		panic("unreachable")
	}
}

func equalsAll(as []Expr, bs []Expr) bool {
	if len(as) != len(bs) {
		return false
	}
	//
	for i := range as {
		if !Equals(as[i], bs[i]) {
			return false
		}
	}
	//
	return true
}
