/*
 * integrate.go, part of angmom.
 *
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
 *
 */

package angmom

import (
	"fmt"
	"strings"

	"github.com/rmera/angmom/coupling"
	"github.com/rmera/angmom/multipole"
	"github.com/rmera/angmom/orbital"
	"github.com/rmera/angmom/tensor"
)

//Weighted is a coefficient times a product of symbols. It is the result of
//integrating out the spin-angular part of a factor or a term.
type Weighted struct {
	Coeff   float64
	Symbols []Symbol
}

func (w Weighted) String() string {
	s := make([]string, 0, len(w.Symbols)+1)
	s = append(s, fmt.Sprintf("%g", w.Coeff))
	for _, v := range w.Symbols {
		s = append(s, v.String())
	}
	return strings.Join(s, " ")
}

//Integrator performs the spin-angular integration of terms.
//It is safe for concurrent use.
type Integrator struct {
	x *multipole.Expander
}

//NewIntegrator returns an integrator taking its coupling coefficients
//from k. A nil k gives an integrator without memoization.
func NewIntegrator(k *coupling.Kernel) *Integrator {
	if k == nil {
		k = coupling.NewKernel(nil)
	}
	return &Integrator{x: multipole.NewExpander(tensor.NewEngine(k))}
}

//Kernel returns the coupling kernel used by the integrator.
func (in *Integrator) Kernel() *coupling.Kernel { return in.x.Engine().Kernel() }

//radialOverlap returns the symbols for <a|b> between radial orbitals, which
//are taken to be normalized.
func radialOverlap(a, b orbital.Radial) []Symbol {
	if a == b {
		return nil
	}
	return []Symbol{RadialOverlap{A: a, B: b}}
}

//angularMatch reports whether the spin-angular parts of a and b are the same.
func angularMatch(a, b orbital.SpinOrbital) bool {
	ja, ma := a.JM()
	jb, mb := b.JM()
	if a.L() != b.L() || ja != jb || ma != mb {
		return false
	}
	switch a := a.(type) {
	case orbital.NonRelativistic:
		b, ok := b.(orbital.NonRelativistic)
		return ok && a.Ms() == b.Ms()
	case orbital.Relativistic:
		_, ok := b.(orbital.Relativistic)
		return ok
	}
	return false
}

//IntegrateSpinor integrates out the spin-angular part of a single factor.
//
//Matrix elements of the Coulomb interaction (and of its multipoles) become
//angular coefficients times radial integrals; one-body tensor elements become
//a Wigner-Eckart coefficient times a radial overlap, two-body tensor elements
//a scalar-product coefficient times two radial overlaps, and overlaps an
//angular delta times a radial overlap. Any other factor is returned unchanged
//with coefficient 1. An empty result means the factor vanishes.
func (in *Integrator) IntegrateSpinor(f Factor) ([]Weighted, error) {
	switch f := f.(type) {
	case Overlap:
		if !angularMatch(f.A, f.B) {
			return nil, nil
		}
		return []Weighted{{Coeff: 1, Symbols: radialOverlap(f.A.Radial(), f.B.Radial())}}, nil
	case OrbitalMatrixElement:
		ret, err := in.matrixElement(f)
		if err != nil {
			return nil, errDecorate(err, "IntegrateSpinor")
		}
		return ret, nil
	}
	return []Weighted{{Coeff: 1, Symbols: []Symbol{f}}}, nil
}

func (in *Integrator) matrixElement(m OrbitalMatrixElement) ([]Weighted, error) {
	if _, ok := m.Op.(OperatorSum); ok {
		return []Weighted{{Coeff: 1, Symbols: []Symbol{m}}}, nil
	}
	n := m.Op.Bodies()
	if len(m.Bra) != n || len(m.Ket) != n {
		return nil, newError(ErrArity, "matrixElement", "%v acts on %d electrons, got %d and %d orbitals", m.Op, n, len(m.Bra), len(m.Ket))
	}
	switch op := m.Op.(type) {
	case CoulombInteraction:
		terms, _, err := in.x.Expand(op, m.Bra, m.Ket)
		if err != nil {
			return nil, err
		}
		ret := make([]Weighted, 0, len(terms))
		for _, t := range terms {
			ret = append(ret, Weighted{Coeff: t.Coeff, Symbols: []Symbol{t.Integral}})
		}
		return ret, nil
	case CoulombInteractionMultipole:
		a, b, c, d := m.Bra[0], m.Bra[1], m.Ket[0], m.Ket[1]
		ck, err := tensor.NewSphericalTensor(op.K)
		if err != nil {
			return nil, err
		}
		v, err := in.x.ScalarProduct(a, b, ck, ck, c, d)
		if err != nil || v == 0 {
			return nil, err
		}
		ri := multipole.RadialIntegral{K: op.K, A: a.Radial(), B: b.Radial(), C: c.Radial(), D: d.Radial()}
		return []Weighted{{Coeff: v, Symbols: []Symbol{ri}}}, nil
	case OneBodyTensor:
		a, c := m.Bra[0], m.Ket[0]
		v, err := in.x.Engine().OrbitalWignerEckart(a, op.C, c)
		if err != nil || v == 0 {
			return nil, err
		}
		return []Weighted{{Coeff: v, Symbols: radialOverlap(a.Radial(), c.Radial())}}, nil
	case TwoBodyTensor:
		a, b, c, d := m.Bra[0], m.Bra[1], m.Ket[0], m.Ket[1]
		P, Q := op.X.Factors()
		v, err := in.x.ScalarProduct(a, b, P, Q, c, d)
		if err != nil || v == 0 {
			return nil, err
		}
		s := append(radialOverlap(a.Radial(), c.Radial()), radialOverlap(b.Radial(), d.Radial())...)
		return []Weighted{{Coeff: v, Symbols: s}}, nil
	}
	return []Weighted{{Coeff: 1, Symbols: []Symbol{m}}}, nil
}

//IntegrateSpinors integrates out the spin-angular part of a whole term. The
//result is the coefficient of the term times the expanded product of the
//integrations of its factors.
func (in *Integrator) IntegrateSpinors(t Term) ([]Weighted, error) {
	ret := []Weighted{{Coeff: t.Coeff}}
	if t.Coeff == 0 {
		return nil, nil
	}
	for _, f := range t.Factors {
		ws, err := in.IntegrateSpinor(f)
		if err != nil {
			return nil, errDecorate(err, "IntegrateSpinors")
		}
		if len(ws) == 0 {
			return nil, nil
		}
		next := make([]Weighted, 0, len(ret)*len(ws))
		for _, r := range ret {
			for _, w := range ws {
				s := make([]Symbol, 0, len(r.Symbols)+len(w.Symbols))
				s = append(append(s, r.Symbols...), w.Symbols...)
				next = append(next, Weighted{Coeff: r.Coeff * w.Coeff, Symbols: s})
			}
		}
		ret = next
	}
	return ret, nil
}

var plainIntegrator = NewIntegrator(nil)

//IntegrateSpinor integrates out the spin-angular part of f without memoization.
func IntegrateSpinor(f Factor) ([]Weighted, error) { return plainIntegrator.IntegrateSpinor(f) }

//IntegrateSpinors integrates out the spin-angular part of t without memoization.
func IntegrateSpinors(t Term) ([]Weighted, error) { return plainIntegrator.IntegrateSpinors(t) }
