/*
 * multipole.go, part of angmom.
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

//Package multipole reduces two-body matrix elements of the Coulomb interaction,
//and of scalar products of tensors acting on different electrons, to angular
//coefficients times radial integrals. It uses the multipole expansion
//
//	1/r12 = Σ_k r<^k/r>^(k+1) C^(k)(1)·C^(k)(2)
//
//and leaves the radial integrals R^k(ab;cd) as symbols.
package multipole

import (
	"fmt"
	"math"

	"github.com/rmera/angmom/coupling"
	"github.com/rmera/angmom/orbital"
	"github.com/rmera/angmom/tensor"
	"golang.org/x/exp/slices"
)

//CoulombInteraction is the two-body operator 1/r12.
type CoulombInteraction struct{}

func (CoulombInteraction) String() string { return "g" }

//Bodies returns the number of electrons the operator acts on.
func (CoulombInteraction) Bodies() int { return 2 }

//CoulombInteractionMultipole is the k-th term of the multipole expansion of 1/r12,
//r<^k/r>^(k+1) C^(k)(1)·C^(k)(2).
type CoulombInteractionMultipole struct {
	K int
}

func (g CoulombInteractionMultipole) String() string { return fmt.Sprintf("g^(%d)", g.K) }

//Bodies returns the number of electrons the operator acts on.
func (CoulombInteractionMultipole) Bodies() int { return 2 }

//CoulombPotentialMultipole is the potential Y^k(b,d)/r generated by the
//overlap density of the radial orbitals b and d through the k-th multipole.
type CoulombPotentialMultipole struct {
	K    int
	B, D orbital.Radial
}

func (v CoulombPotentialMultipole) String() string {
	return fmt.Sprintf("Y^%d(%v,%v)", v.K, v.B, v.D)
}

//RadialIntegral is the radial Slater integral
//R^k(ab;cd) = ∫∫ a(r1) b(r2) r<^k/r>^(k+1) c(r1) d(r2) dr1 dr2
//over radial orbitals. It is comparable, so equal integrals merge.
type RadialIntegral struct {
	K          int
	A, B, C, D orbital.Radial
}

func (r RadialIntegral) String() string {
	return fmt.Sprintf("R^%d(%v %v;%v %v)", r.K, r.A, r.B, r.C, r.D)
}

//Potential returns the potential the electron in a sees in r, i.e. R^k(ab;cd) = <a|Y^k(b,d)/r|c>.
func (r RadialIntegral) Potential() CoulombPotentialMultipole {
	return CoulombPotentialMultipole{K: r.K, B: r.B, D: r.D}
}

//Term is an angular coefficient times a radial integral.
type Term struct {
	Coeff    float64
	Integral RadialIntegral
}

func (t Term) String() string { return fmt.Sprintf("%g %v", t.Coeff, t.Integral) }

//Expander reduces two-body matrix elements. It is safe for concurrent use.
type Expander struct {
	e *tensor.Engine
}

//NewExpander returns an expander evaluating reduced matrix elements with e.
//A nil e gives an expander without memoization.
func NewExpander(e *tensor.Engine) *Expander {
	if e == nil {
		e = tensor.NewEngine(nil)
	}
	return &Expander{e: e}
}

//Engine returns the engine of the expander.
func (x *Expander) Engine() *tensor.Engine { return x.e }

func prod(js ...coupling.HalfInt) float64 {
	p := 1
	for _, j := range js {
		p *= j.Degeneracy()
	}
	return math.Sqrt(float64(p))
}

//sameBasis returns true if all the orbitals are relativistic or all are non-relativistic.
func sameBasis(os ...orbital.SpinOrbital) bool {
	rel := 0
	for _, o := range os {
		switch o.(type) {
		case orbital.Relativistic:
			rel++
		case orbital.NonRelativistic:
		default:
			return false
		}
	}
	return rel == 0 || rel == len(os)
}

//ScalarProduct returns the angular coefficient of <a b|P(1)·Q(2)|c d>, with P acting
//on the first electron and Q on the second:
//
//	1/∏(ja,jb) (-1)^α <jc mc; k α|ja ma> <jd md; k -α|jb mb> <a||P||c> <b||Q||d>
//
//where α = ma-mc. Only that α contributes, and the coefficient is 0 unless
//it also equals md-mb. All four orbitals must be of the same kind.
func (x *Expander) ScalarProduct(a, b orbital.SpinOrbital, P, Q tensor.Tensor, c, d orbital.SpinOrbital) (float64, error) {
	if !sameBasis(a, b, c, d) {
		return 0, newError(ErrBasisMismatch, "ScalarProduct", "%T %T %T %T", a, b, c, d)
	}
	if P.Rank() != Q.Rank() {
		return 0, newError(ErrRankMismatch, "ScalarProduct", "ranks %d and %d", P.Rank(), Q.Rank())
	}
	ja, ma := a.JM()
	jb, mb := b.JM()
	jc, mc := c.JM()
	jd, md := d.JM()
	alpha := ma - mc
	if alpha != md-mb {
		return 0, nil
	}
	k := coupling.Int(P.Rank())
	kern := x.e.Kernel()
	c1 := kern.ClebschGordan(jc, mc, k, alpha, ja, ma)
	if c1 == 0 {
		return 0, nil
	}
	c2 := kern.ClebschGordan(jd, md, k, -alpha, jb, mb)
	if c2 == 0 {
		return 0, nil
	}
	r1, err := x.e.OrbitalRME(a, P, c)
	if err != nil {
		return 0, errDecorate(err, "ScalarProduct")
	}
	if r1 == 0 {
		return 0, nil
	}
	r2, err := x.e.OrbitalRME(b, Q, d)
	if err != nil {
		return 0, errDecorate(err, "ScalarProduct")
	}
	ph := 1.0
	if alpha.Int()%2 != 0 {
		ph = -1
	}
	return ph * c1 * c2 * r1 * r2 / prod(ja, jb), nil
}

//Coulomb returns the multipole expansion of <a b|1/r12|c d> as a list of
//coefficients times radial integrals R^k(ab;cd), in increasing k. Multipoles
//with a vanishing coefficient are left out, so the result can be empty.
func (x *Expander) Coulomb(a, b, c, d orbital.SpinOrbital) ([]Term, error) {
	if !sameBasis(a, b, c, d) {
		return nil, newError(ErrBasisMismatch, "Coulomb", "%T %T %T %T", a, b, c, d)
	}
	k1, err := tensor.Ranks(a, tensor.Spherical, c)
	if err != nil {
		return nil, errDecorate(err, "Coulomb")
	}
	k2, err := tensor.Ranks(b, tensor.Spherical, d)
	if err != nil {
		return nil, errDecorate(err, "Coulomb")
	}
	var ret []Term
	for _, k := range k1 {
		if !slices.Contains(k2, k) {
			continue
		}
		ck := tensor.C(k)
		v, err := x.ScalarProduct(a, b, ck, ck, c, d)
		if err != nil {
			return nil, errDecorate(err, "Coulomb")
		}
		if v == 0 {
			continue
		}
		ri := RadialIntegral{K: k, A: a.Radial(), B: b.Radial(), C: c.Radial(), D: d.Radial()}
		ret = append(ret, Term{Coeff: v, Integral: ri})
	}
	return ret, nil
}

//Expand expands the two-body matrix element <bra|op|ket>. Only the Coulomb
//interaction is expanded; for any other operator ok is false and the matrix
//element should be kept as it is.
func (x *Expander) Expand(op fmt.Stringer, bra, ket []orbital.SpinOrbital) (terms []Term, ok bool, err error) {
	switch op := op.(type) {
	case CoulombInteraction:
		if len(bra) != 2 || len(ket) != 2 {
			return nil, false, newError(ErrArity, "Expand", "%v needs two orbitals on each side, got %d and %d", op, len(bra), len(ket))
		}
		terms, err = x.Coulomb(bra[0], bra[1], ket[0], ket[1])
		if err != nil {
			return nil, false, errDecorate(err, "Expand")
		}
		return terms, true, nil
	}
	return nil, false, nil
}
