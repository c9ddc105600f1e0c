/*
 * orbital_test.go, part of angmom.
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

package orbital

import (
	"errors"
	"testing"

	"github.com/rmera/angmom/coupling"
)

func TestNonRelativistic(Te *testing.T) {
	o, err := NewNonRelativistic(2, 1, -1, coupling.Half(1))
	if err != nil {
		Te.Fatal(err)
	}
	if s := o.String(); s != "2p₋₁α" {
		Te.Errorf("String()=%q", s)
	}
	j, m := o.JM()
	if j != coupling.Int(1) || m != coupling.Int(-1) {
		Te.Errorf("JM()=(%v,%v)", j, m)
	}
	if o.Radial() != (Radial{N: 2, L: 1}) {
		Te.Errorf("Radial()=%v", o.Radial())
	}
	for _, bad := range [][3]int{{1, 1, 0}, {2, 1, 2}, {0, 0, 0}} {
		if _, err := NewNonRelativistic(bad[0], bad[1], bad[2], coupling.Half(1)); !errors.Is(err, ErrInvalidOrbital) {
			Te.Errorf("NewNonRelativistic%v should fail, got %v", bad, err)
		}
	}
	if _, err := NewNonRelativistic(1, 0, 0, coupling.Half(3)); !errors.Is(err, ErrInvalidOrbital) {
		Te.Errorf("ms=3/2 accepted")
	}
}

func TestRelativistic(Te *testing.T) {
	o, err := NewRelativistic(2, 1, coupling.Half(1), coupling.Half(-1))
	if err != nil {
		Te.Fatal(err)
	}
	if s := o.String(); s != "2p-(-1/2)" {
		Te.Errorf("String()=%q", s)
	}
	p, err := NewRelativistic(3, 2, coupling.Half(5), coupling.Half(3))
	if err != nil {
		Te.Fatal(err)
	}
	if s := p.Radial().String(); s != "3d" {
		Te.Errorf("Radial().String()=%q", s)
	}
	if _, err := NewRelativistic(2, 1, coupling.Half(5), coupling.Half(1)); !errors.Is(err, ErrInvalidOrbital) {
		Te.Errorf("j=5/2 accepted for l=1")
	}
	if _, err := NewRelativistic(2, 1, coupling.Half(3), coupling.Int(1)); !errors.Is(err, ErrInvalidOrbital) {
		Te.Errorf("integer mj accepted")
	}
}

func TestConfiguration(Te *testing.T) {
	a, _ := NewNonRelativistic(1, 0, 0, coupling.Half(1))
	b, _ := NewNonRelativistic(1, 0, 0, coupling.Half(-1))
	c := Configuration{a, b}
	if err := c.Validate(); err != nil {
		Te.Error(err)
	}
	if c.Index(b) != 1 || c.String() != "1s₀α 1s₀β" {
		Te.Errorf("unexpected configuration %v", c)
	}
	if err := (Configuration{a, a}).Validate(); !errors.Is(err, ErrInvalidConfiguration) {
		Te.Errorf("doubly occupied orbital accepted: %v", err)
	}
	if Letter(20) != "[20]" || Letter(3) != "f" {
		Te.Error("wrong spectroscopic letters")
	}
}
