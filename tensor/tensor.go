/*
 * tensor.go, part of angmom.
 *
 * Copyright 2024 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package tensor

import (
	"strconv"

	"github.com/rmera/angmom/coupling"
	"github.com/rmera/angmom/lincomb"
)

//Tensor is an irreducible tensor operator. The set of implementations is closed:
//SphericalTensor, Product and ScalarProduct. All of them are comparable values.
type Tensor interface {
	Rank() int
	//Label is the symbol of the tensor, without the rank.
	Label() string
	String() string
	isTensor()
}

//SphericalTensor is the Racah-normalized spherical harmonic C^(k).
type SphericalTensor struct {
	k int
}

//NewSphericalTensor returns C^(k). It fails for negative k.
func NewSphericalTensor(k int) (SphericalTensor, error) {
	if k < 0 {
		return SphericalTensor{}, newError(ErrInvalidRank, "NewSphericalTensor", "rank must be non-negative, got %d", k)
	}
	return SphericalTensor{k: k}, nil
}

//C returns C^(k). It panics for negative k.
func C(k int) SphericalTensor {
	if k < 0 {
		panic(ErrNegativeRank)
	}
	return SphericalTensor{k: k}
}

func (t SphericalTensor) Rank() int      { return t.k }
func (t SphericalTensor) Label() string  { return "C" }
func (t SphericalTensor) String() string { return "C^(" + strconv.Itoa(t.k) + ")" }
func (SphericalTensor) isTensor()        {}

//Product is the tensor product [T^(k1) × U^(k2)]^(K).
type Product struct {
	rank int
	t, u Tensor
}

//NewProduct couples t and u to rank K. It fails unless K is in the triangle range of
//the ranks of t and u.
func NewProduct(K int, t, u Tensor) (Product, error) {
	if !coupling.Triangle(coupling.Int(t.Rank()), coupling.Int(u.Rank()), coupling.Int(K)) {
		return Product{}, newError(ErrTriangle, "NewProduct", "cannot couple ranks %d and %d to %d", t.Rank(), u.Rank(), K)
	}
	return Product{rank: K, t: t, u: u}, nil
}

//Factors returns the two coupled tensors.
func (p Product) Factors() (Tensor, Tensor) { return p.t, p.u }

func (p Product) Rank() int     { return p.rank }
func (p Product) Label() string { return "[" + p.t.Label() + "×" + p.u.Label() + "]" }
func (p Product) String() string {
	return "[" + p.t.String() + "×" + p.u.String() + "]^(" + strconv.Itoa(p.rank) + ")"
}
func (Product) isTensor() {}

//ScalarProduct is T·U = Σ_q (-1)^q T_q U_{-q}, a rank 0 tensor. When T and U act
//on different coordinates it is the usual scalar product of two-body operators.
type ScalarProduct struct {
	t, u Tensor
}

//Dot returns t·u. It fails if the ranks differ.
func Dot(t, u Tensor) (ScalarProduct, error) {
	if t.Rank() != u.Rank() {
		return ScalarProduct{}, newError(ErrRankMismatch, "Dot", "cannot contract ranks %d and %d", t.Rank(), u.Rank())
	}
	return ScalarProduct{t: t, u: u}, nil
}

//Factors returns the two contracted tensors.
func (s ScalarProduct) Factors() (Tensor, Tensor) { return s.t, s.u }

func (s ScalarProduct) Rank() int      { return 0 }
func (s ScalarProduct) Label() string  { return "(" + s.t.Label() + "·" + s.u.Label() + ")" }
func (s ScalarProduct) String() string { return "(" + s.t.String() + "·" + s.u.String() + ")" }
func (ScalarProduct) isTensor()        {}

//Component is the component q of a tensor, with |q| <= rank.
type Component struct {
	t Tensor
	q int
}

//NewComponent returns the component q of t.
func NewComponent(t Tensor, q int) (Component, error) {
	if q < -t.Rank() || q > t.Rank() {
		return Component{}, newError(ErrInvalidComponent, "NewComponent", "component %d of %v", q, t)
	}
	return Component{t: t, q: q}, nil
}

//Tensor returns the tensor the component belongs to.
func (c Component) Tensor() Tensor { return c.t }

//Q returns the component index.
func (c Component) Q() int { return c.q }

func (c Component) String() string { return c.t.String() + "_" + strconv.Itoa(c.q) }

//Combination is a real linear combination of tensor components.
type Combination = lincomb.LinearCombination[Component, float64]

//Lift returns the combination 1*c.
func Lift(c Component) Combination { return lincomb.Lift[Component, float64](c) }

//ComponentProduct is the formal product of two tensor components, the first
//one acting after the second.
type ComponentProduct struct {
	First, Second Component
}

func (p ComponentProduct) String() string { return p.First.String() + " " + p.Second.String() }

//Expansion is the formal expansion of a composite tensor component.
type Expansion = lincomb.LinearCombination[ComponentProduct, float64]
