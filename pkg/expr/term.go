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

// Package expr provides a normalizing kernel for symbolic integer arithmetic
// over named variables with optional value ranges.  Expressions are built
// exclusively through smart constructors which rewrite every term into a
// canonical normal form: two expressions are equal exactly when their normal
// forms are structurally identical.  Alongside the term model, the package
// provides the decision procedures a polyhedral client needs to reason about
// index expressions: divisibility, ordering under range information, GCD,
// substitution, and min/max propagation.
package expr

// Kind identifies the variant of an expression.  Kinds also index the digest
// seeds and provide the major key of the canonical term ordering.
type Kind uint8

// The expression kinds.
const (
	// ConstKind tags integer constants.
	ConstKind Kind = iota
	// VarKind tags symbolic variables.
	VarKind
	// OpaqueKind tags frozen variables whose min/max are themselves.
	OpaqueKind
	// NamedFuncKind tags symbolic uninterpreted function values.
	NamedFuncKind
	// PosInfKind tags the positive infinity singleton.
	PosInfKind
	// NegInfKind tags the negative infinity singleton.
	NegInfKind
	// UnknownKind tags the unknown singleton.
	UnknownKind
	// LookupKind tags indexed reads into a literal table.
	LookupKind
	// SumKind tags associative sums.
	SumKind
	// ProdKind tags associative products.
	ProdKind
	// PowKind tags powers.
	PowKind
	// DivKind tags floor integer division.
	DivKind
	// ModKind tags the C-semantics remainder.
	ModKind
	// LogKind tags logarithms.
	LogKind
	// FloorKind tags floors.
	FloorKind
	// CeilKind tags ceilings.
	CeilKind
	// AbsKind tags absolute values.
	AbsKind
	// IteKind tags conditional expressions.
	IteKind
	// BigSumKind tags symbolic closed-form summations.
	BigSumKind
)

// Expr represents a symbolic arithmetic expression in normal form.
// Expressions are immutable and may be shared freely, including across
// threads.  The only way to obtain an Expr is through a smart constructor,
// hence every reachable expression satisfies the normal form invariants:
// sums and products are flat, sorted and of arity at least two; constants
// are folded; trivial powers, divisions and remainders are eliminated.
type Expr interface {
	// Kind returns the variant tag of this expression.
	Kind() Kind
	// Digest returns a seed-salted digest of this expression.  Digests are a
	// filter for equality, not a witness: unequal digests imply unequal
	// expressions, whilst equal digests must be confirmed structurally.
	Digest() uint64
	// Children returns the immediate subexpressions of this expression, in
	// canonical order.  Leaf expressions return nil.
	Children() []Expr
	// Sign returns the best known sign of this expression.
	Sign() Sign
	// Min returns a sound symbolic lower bound of this expression, which may
	// be NegInf or Unknown when nothing better is known.
	Min() Expr
	// Max returns a sound symbolic upper bound of this expression, which may
	// be PosInf or Unknown when nothing better is known.
	Max() Expr
	// String renders this expression in the advisory textual form.
	String() string
	// normalised indicates whether this expression has passed through its
	// smart constructor.
	normalised() bool
}

// exprBase carries the digest and the normal-form tag shared by every
// expression variant.
type exprBase struct {
	digest uint64
	norm   bool
}

// Digest implementation for the Expr interface.
func (p *exprBase) Digest() uint64 {
	return p.digest
}

func (p *exprBase) normalised() bool {
	return p.norm
}

func newBase(digest uint64) exprBase {
	return exprBase{digest, true}
}
