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

/*
Package tensor is a small algebra of irreducible tensor operators: spherical
tensors C^(k), their tensor products [T×U]^(K) and scalar products T·U, and
their components.

The Engine evaluates reduced matrix elements between orbital states |ℓ> and
coupled states |(ℓ s) j>, and, through the Wigner-Eckart theorem, matrix
elements of components. Reduced matrix elements follow the convention

	<j'm'|T^k_q|jm> = (-1)^(j'-m') (j' k j; -m' q m) <j'||T||j>

so that, e.g., <ℓ'||C^k||ℓ> = ∏(ℓ) <ℓ0;k0|ℓ'0>. Tensor products of operators acting
on the same coordinate are reduced by summing over intermediate states.
*/
package tensor
