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
	"sort"
	"strings"
)

// Order classes of the canonical term ordering: constants come first, then
// variables, then everything else.
const (
	classConst = iota
	classVar
	classOther
)

func orderClass(e Expr) int {
	switch e.Kind() {
	case ConstKind:
		return classConst
	case VarKind, OpaqueKind:
		return classVar
	default:
		return classOther
	}
}

// Compare implements the canonical total order on expressions: constants
// first (by value); then variables lexicographically by name, then by id;
// then the remaining kinds by (kind seed, digest).  Expressions identical
// under this order are identical under deep equality.
func Compare(a Expr, b Expr) int {
	ca, cb := orderClass(a), orderClass(b)
	//
	if ca != cb {
		return ca - cb
	}
	//
	switch ca {
	case classConst:
		return cmp64(a.(*Constant).Val, b.(*Constant).Val)
	case classVar:
		va, vb := varOf(a), varOf(b)
		//
		if c := strings.Compare(va.Name, vb.Name); c != 0 {
			return c
		}
		//
		if c := cmp64(int64(va.Id), int64(vb.Id)); c != 0 {
			return c
		}
		// A variable and its frozen wrapper share name and id.
		return cmpU64(kindSeeds[a.Kind()], kindSeeds[b.Kind()])
	default:
		if a.Kind() != b.Kind() {
			return cmpU64(kindSeeds[a.Kind()], kindSeeds[b.Kind()])
		}
		//
		return cmpU64(a.Digest(), b.Digest())
	}
}

func varOf(e Expr) *Variable {
	if o, ok := e.(*Opaque); ok {
		return o.V
	}
	//
	return e.(*Variable)
}

func cmp64(a int64, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpU64(a uint64, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// sortExprs sorts a slice of expressions into canonical order, in place.
func sortExprs(exprs []Expr) {
	sort.SliceStable(exprs, func(i, j int) bool {
		return Compare(exprs[i], exprs[j]) < 0
	})
}
