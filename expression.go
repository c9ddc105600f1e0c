/*
 * expression.go, part of angmom.
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
	"encoding/json"
	"math"
	"strings"

	"github.com/rmera/angmom/lincomb"
	"golang.org/x/exp/slices"
)

//Tolerance is the magnitude below which a summed coefficient of an energy
//expression is taken to be zero.
const Tolerance = 1e-12

const monomialSep = " · "

//Monomial is a product of symbols, identified by the sorted String forms of
//its symbols. The empty monomial is the number 1.
type Monomial struct {
	key string
}

func monomialOf(s []Symbol) Monomial {
	str := make([]string, len(s))
	for i, v := range s {
		str[i] = v.String()
	}
	slices.Sort(str)
	return Monomial{key: strings.Join(str, monomialSep)}
}

func (m Monomial) String() string {
	if m.key == "" {
		return "1"
	}
	return m.key
}

//Names returns the String forms of the symbols of m, sorted.
func (m Monomial) Names() []string {
	if m.key == "" {
		return nil
	}
	return strings.Split(m.key, monomialSep)
}

//EnergyExpression is a sum of coefficients times monomials of radial
//symbols. Equal monomials are merged and vanishing ones dropped.
//The zero value is the empty expression.
type EnergyExpression struct {
	terms   lincomb.LinearCombination[Monomial, float64]
	symbols map[Monomial][]Symbol
}

//NewExpression sums the given contributions into an expression.
func NewExpression(contribs ...Weighted) EnergyExpression {
	terms := make([]lincomb.Term[Monomial, float64], 0, len(contribs))
	symbols := make(map[Monomial][]Symbol)
	for _, c := range contribs {
		m := monomialOf(c.Symbols)
		terms = append(terms, lincomb.Term[Monomial, float64]{Atom: m, Coeff: c.Coeff})
		if _, ok := symbols[m]; !ok {
			symbols[m] = c.Symbols
		}
	}
	sum := lincomb.FromTerms(terms...)
	kept := make([]lincomb.Term[Monomial, float64], 0, sum.Len())
	for _, t := range sum.Terms() {
		if math.Abs(t.Coeff) >= Tolerance {
			kept = append(kept, t)
		}
	}
	ret := EnergyExpression{terms: lincomb.FromTerms(kept...), symbols: make(map[Monomial][]Symbol, len(kept))}
	for _, t := range kept {
		ret.symbols[t.Atom] = symbols[t.Atom]
	}
	return ret
}

//Terms returns the monomials of e with their coefficients, sorted by monomial.
func (e EnergyExpression) Terms() []lincomb.Term[Monomial, float64] { return e.terms.Terms() }

//Symbols returns the symbols of the monomial m of e.
func (e EnergyExpression) Symbols(m Monomial) []Symbol { return e.symbols[m] }

//Coeff returns the coefficient of the monomial whose String form is key, or 0.
func (e EnergyExpression) Coeff(key string) float64 {
	if key == "1" {
		key = ""
	}
	return e.terms.Coeff(Monomial{key: key})
}

//Len returns the number of monomials in e.
func (e EnergyExpression) Len() int { return e.terms.Len() }

//IsZero returns true if e has no terms.
func (e EnergyExpression) IsZero() bool { return e.terms.IsZero() }

//Add returns e+o.
func (e EnergyExpression) Add(o EnergyExpression) EnergyExpression {
	contribs := make([]Weighted, 0, e.Len()+o.Len())
	for _, x := range []EnergyExpression{e, o} {
		for _, t := range x.Terms() {
			contribs = append(contribs, Weighted{Coeff: t.Coeff, Symbols: x.symbols[t.Atom]})
		}
	}
	return NewExpression(contribs...)
}

func (e EnergyExpression) String() string { return e.terms.String() }

//Evaluate returns the value of e given the values of its symbols, keyed by
//their String form.
func (e EnergyExpression) Evaluate(values map[string]float64) (float64, error) {
	var sum float64
	for _, t := range e.Terms() {
		v := t.Coeff
		for _, name := range t.Atom.Names() {
			x, ok := values[name]
			if !ok {
				return 0, newError(ErrMissingIntegral, "EnergyExpression.Evaluate", "no value for %q", name)
			}
			v *= x
		}
		sum += v
	}
	return sum, nil
}

type jsonTerm struct {
	Coeff   float64  `json:"coeff"`
	Factors []string `json:"factors"`
}

//MarshalJSON encodes e as a list of {"coeff", "factors"} objects.
func (e EnergyExpression) MarshalJSON() ([]byte, error) {
	terms := e.Terms()
	out := make([]jsonTerm, len(terms))
	for i, t := range terms {
		out[i] = jsonTerm{Coeff: t.Coeff, Factors: t.Atom.Names()}
	}
	return json.Marshal(out)
}

//UnmarshalJSON decodes an expression written by MarshalJSON. The symbols
//read back are Labels.
func (e *EnergyExpression) UnmarshalJSON(b []byte) error {
	var in []jsonTerm
	if err := json.Unmarshal(b, &in); err != nil {
		return newError(ErrShape, "EnergyExpression.UnmarshalJSON", "%v", err)
	}
	contribs := make([]Weighted, len(in))
	for i, t := range in {
		s := make([]Symbol, len(t.Factors))
		for j, f := range t.Factors {
			s[j] = Label(f)
		}
		contribs[i] = Weighted{Coeff: t.Coeff, Symbols: s}
	}
	*e = NewExpression(contribs...)
	return nil
}
