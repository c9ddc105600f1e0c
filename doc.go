/*
 * doc.go, part of angmom.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package angmom is the main package of the angmom library. It turns matrix elements
of quantum-mechanical operators between configurations of spin orbitals into energy
expressions: sums of angular coefficients times radial integrals, which are left
as symbols.



	**angmom Capabilities**


    Clebsch-Gordan coefficients, 3j and 6j symbols, exact (with big rationals) for
	moderate angular momenta and in the log domain above that, memoized in a
	concurrency-safe cache (package coupling).

    Linear combinations of tensors, tensor products and scalar products, and
	linear combinations of arbitrary symbols (packages lincomb and tensor).

    Reduced matrix elements of tensor operators in the orbital and the coupled
	(ℓ s j) bases, and the Wigner-Eckart theorem (package tensor).

    The multipole expansion of the Coulomb interaction between electrons
	(package multipole).

    Spin-angular integration of orbital matrix elements, the Slater-Condon
	rules, and energy matrices over lists of configurations, which are built
	concurrently. Energy matrices can be evaluated for given values of the radial
	integrals and diagonalized.

    Energy matrices can be JSON encoded, optionally compressed with zstd or gzip
	(package exprio).


Configurations are given as lists of spin orbitals, either relativistic (n ℓ j m_j)
or non-relativistic (n ℓ m_ℓ m_s), see package orbital. A typical use is

	m, err := angmom.NewMatrix(angmom.Sum(angmom.OneBodyHamiltonian{}, angmom.CoulombInteraction{}), cfgs, nil)

after which m.At(i, j) holds the energy expression of <cfgs[i]|h+g|cfgs[j]>.*/
package angmom
