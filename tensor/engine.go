/*
 * engine.go, part of angmom.
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
	"math"

	"github.com/rmera/angmom/coupling"
	"github.com/rmera/angmom/lincomb"
	"github.com/rmera/angmom/orbital"
)

//Engine evaluates reduced matrix elements and matrix elements of tensor
//components. It takes its coupling coefficients from a coupling.Kernel, so
//sharing one Engine shares its cache. An Engine is safe for concurrent use.
type Engine struct {
	k *coupling.Kernel
}

//NewEngine returns an engine using k. A nil k gives an engine without memoization.
func NewEngine(k *coupling.Kernel) *Engine {
	if k == nil {
		k = coupling.NewKernel(nil)
	}
	return &Engine{k: k}
}

var plain = NewEngine(nil)

//Kernel returns the coupling kernel of the engine.
func (e *Engine) Kernel() *coupling.Kernel { return e.k }

func phase(n int) float64 {
	if n%2 == 0 {
		return 1
	}
	return -1
}

//prod is ∏ for arguments known to be non-negative.
func prod(js ...coupling.HalfInt) float64 {
	p := 1
	for _, j := range js {
		p *= j.Degeneracy()
	}
	return math.Sqrt(float64(p))
}

//Expand returns the formal expansion of a component of a composite tensor as a
//combination of products of components of its factors:
//[T×U]^K_Q = Σ <k1 q1; k2 q2|K Q> T_q1 U_q2, and T·U = Σ (-1)^q T_q U_-q.
func (e *Engine) Expand(c Component) (Expansion, error) {
	var terms []lincomb.Term[ComponentProduct, float64]
	switch t := c.t.(type) {
	case Product:
		k1, k2 := t.t.Rank(), t.u.Rank()
		for q1 := -k1; q1 <= k1; q1++ {
			q2 := c.q - q1
			if q2 < -k2 || q2 > k2 {
				continue
			}
			cg := e.k.ClebschGordan(coupling.Int(k1), coupling.Int(q1), coupling.Int(k2), coupling.Int(q2), coupling.Int(t.rank), coupling.Int(c.q))
			p := ComponentProduct{First: Component{t: t.t, q: q1}, Second: Component{t: t.u, q: q2}}
			terms = append(terms, lincomb.Term[ComponentProduct, float64]{Atom: p, Coeff: cg})
		}
	case ScalarProduct:
		k := t.t.Rank()
		for q := -k; q <= k; q++ {
			p := ComponentProduct{First: Component{t: t.t, q: q}, Second: Component{t: t.u, q: -q}}
			terms = append(terms, lincomb.Term[ComponentProduct, float64]{Atom: p, Coeff: phase(q)})
		}
	default:
		return Expansion{}, newError(ErrNotComposite, "Expand", "%v", c)
	}
	return lincomb.FromTerms(terms...), nil
}

//RME returns the reduced matrix element <bra||t||ket>, in the convention where
//<j'm'|T^k_q|jm> = (-1)^(j'-m') (j' k j; -m' q m) <j'||T||j>.
//bra and ket must be of the same kind.
func (e *Engine) RME(bra State, t Tensor, ket State) (float64, error) {
	switch t := t.(type) {
	case SphericalTensor:
		return e.sphericalRME(bra, t.k, ket)
	case Product:
		return e.productRME(bra, t, ket)
	case ScalarProduct:
		//T·U = (-1)^k ∏(k) [T×U]^0
		k := t.t.Rank()
		r, err := e.productRME(bra, Product{rank: 0, t: t.t, u: t.u}, ket)
		if err != nil {
			return 0, errDecorate(err, "RME")
		}
		return phase(k) * prod(coupling.Int(k)) * r, nil
	}
	return 0, newError(ErrUnsupportedKind, "RME", "%T", t)
}

//orbitalC returns <ℓ'||C^k||ℓ> = ∏(ℓ) <ℓ 0; k 0|ℓ' 0>.
func (e *Engine) orbitalC(lp, k, l int) float64 {
	cg := e.k.ClebschGordan(coupling.Int(l), 0, coupling.Int(k), 0, coupling.Int(lp), 0)
	if cg == 0 {
		return 0
	}
	return prod(coupling.Int(l)) * cg
}

func (e *Engine) sphericalRME(bra State, k int, ket State) (float64, error) {
	switch b := bra.(type) {
	case OrbitalState:
		if kt, ok := ket.(OrbitalState); ok {
			return e.orbitalC(b.l, k, kt.l), nil
		}
	case CoupledState:
		kt, ok := ket.(CoupledState)
		if !ok {
			break
		}
		if b.s != kt.s {
			return 0, nil
		}
		r := e.orbitalC(b.l, k, kt.l)
		if r == 0 {
			return 0, nil
		}
		//<(ℓ's)j'||C^k||(ℓs)j> = (-1)^(ℓ'+s+j+k) ∏(j,j') {ℓ' j' s; j ℓ k} <ℓ'||C^k||ℓ>
		six := e.k.Wigner6j(coupling.Int(b.l), b.j, kt.s, kt.j, coupling.Int(kt.l), coupling.Int(k))
		ph := phase(int(coupling.Int(b.l)+kt.s+kt.j+coupling.Int(k)) / 2)
		return ph * prod(b.j, kt.j) * six * r, nil
	}
	return 0, newError(ErrBasisMismatch, "RME", "%v and %v", bra, ket)
}

//productRME computes <a||[T×U]^K||b> for T and U acting on the same coordinate,
//by inserting a complete set of intermediate states c:
//(-1)^(K+ja+jb) ∏(K) Σ_c {k1 k2 K; jb ja jc} <a||T||c><c||U||b>
func (e *Engine) productRME(bra State, p Product, ket State) (float64, error) {
	ja, jb := bra.J(), ket.J()
	k1, k2, K := coupling.Int(p.t.Rank()), coupling.Int(p.u.Rank()), coupling.Int(p.rank)
	mids, err := intermediates(bra, ket, k1, k2)
	if err != nil {
		return 0, errDecorate(err, "RME")
	}
	if !coupling.Triangle(ja, jb, K) {
		return 0, nil
	}
	var sum float64
	for _, c := range mids {
		six := e.k.Wigner6j(k1, k2, K, jb, ja, c.J())
		if six == 0 {
			continue
		}
		r1, err := e.RME(bra, p.t, c)
		if err != nil {
			return 0, err
		}
		if r1 == 0 {
			continue
		}
		r2, err := e.RME(c, p.u, ket)
		if err != nil {
			return 0, err
		}
		sum += six * r1 * r2
	}
	return phase(int(K+ja+jb)/2) * prod(K) * sum, nil
}

func intersect(a, b []coupling.HalfInt) []coupling.HalfInt {
	var ret []coupling.HalfInt
	for _, x := range a {
		for _, y := range b {
			if x == y {
				ret = append(ret, x)
				break
			}
		}
	}
	return ret
}

//intermediates returns the states c, in the basis of bra and ket, that can
//contribute to <bra||T^k1||c><c||U^k2||ket>.
func intermediates(bra, ket State, k1, k2 coupling.HalfInt) ([]State, error) {
	var ret []State
	switch b := bra.(type) {
	case OrbitalState:
		kt, ok := ket.(OrbitalState)
		if !ok {
			break
		}
		for _, l := range intersect(coupling.TriangleRange(coupling.Int(b.l), k1), coupling.TriangleRange(coupling.Int(kt.l), k2)) {
			ret = append(ret, Ell(l.Int()))
		}
		return ret, nil
	case CoupledState:
		kt, ok := ket.(CoupledState)
		if !ok {
			break
		}
		if b.s != kt.s {
			return nil, nil
		}
		js := intersect(coupling.TriangleRange(b.j, k1), coupling.TriangleRange(kt.j, k2))
		for _, l := range intersect(coupling.TriangleRange(coupling.Int(b.l), k1), coupling.TriangleRange(coupling.Int(kt.l), k2)) {
			for _, j := range intersect(coupling.TriangleRange(l, b.s), js) {
				ret = append(ret, CoupledState{l: l.Int(), s: b.s, j: j})
			}
		}
		return ret, nil
	}
	return nil, newError(ErrBasisMismatch, "intermediates", "%v and %v", bra, ket)
}

//WignerEckart returns <bra mb|c|ket mk> = (-1)^(j'-m') (j' k j; -m' q m) <bra||T||ket>.
//It is 0 unless mk+q = mb and the triangle condition holds.
func (e *Engine) WignerEckart(bra State, mb coupling.HalfInt, c Component, ket State, mk coupling.HalfInt) (float64, error) {
	jb, jk := bra.J(), ket.J()
	if !coupling.ValidPair(jb, mb) || !coupling.ValidPair(jk, mk) {
		return 0, newError(ErrInvalidProjection, "WignerEckart", "(%v,%v) or (%v,%v)", jb, mb, jk, mk)
	}
	w := e.k.Wigner3j(jb, coupling.Int(c.t.Rank()), jk, -mb, coupling.Int(c.q), mk)
	if w == 0 {
		return 0, nil
	}
	r, err := e.RME(bra, c.t, ket)
	if err != nil {
		return 0, errDecorate(err, "WignerEckart")
	}
	return phase(int(jb-mb)/2) * w * r, nil
}

//OrbitalRME returns the reduced matrix element of t between the spin-angular
//parts of a and b. For non-relativistic orbitals it includes the spin overlap.
func (e *Engine) OrbitalRME(a orbital.SpinOrbital, t Tensor, b orbital.SpinOrbital) (float64, error) {
	sa, sb, f, err := states(a, b)
	if err != nil {
		return 0, errDecorate(err, "OrbitalRME")
	}
	if f == 0 {
		return 0, nil
	}
	r, err := e.RME(sa, t, sb)
	if err != nil {
		return 0, errDecorate(err, "OrbitalRME")
	}
	return f * r, nil
}

//OrbitalWignerEckart returns the matrix element <a|c|b> of a tensor component
//between the spin-angular parts of two orbitals.
func (e *Engine) OrbitalWignerEckart(a orbital.SpinOrbital, c Component, b orbital.SpinOrbital) (float64, error) {
	sa, sb, f, err := states(a, b)
	if err != nil {
		return 0, errDecorate(err, "OrbitalWignerEckart")
	}
	if f == 0 {
		return 0, nil
	}
	_, ma := a.JM()
	_, mb := b.JM()
	v, err := e.WignerEckart(sa, ma, c, sb, mb)
	if err != nil {
		return 0, errDecorate(err, "OrbitalWignerEckart")
	}
	return f * v, nil
}

//RME returns <bra||t||ket> without memoization.
func RME(bra State, t Tensor, ket State) (float64, error) { return plain.RME(bra, t, ket) }

//WignerEckart returns <bra mb|c|ket mk> without memoization.
func WignerEckart(bra State, mb coupling.HalfInt, c Component, ket State, mk coupling.HalfInt) (float64, error) {
	return plain.WignerEckart(bra, mb, c, ket, mk)
}

//Expand returns the formal expansion of c without memoization.
func Expand(c Component) (Expansion, error) { return plain.Expand(c) }
