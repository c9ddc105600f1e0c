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
Package coupling evaluates the angular momentum coupling coefficients:
Clebsch-Gordan coefficients, Wigner 3j and 6j symbols, plus the small
helpers (-1)^k, ∏(j) and the triangle range that every formula in the
other angmom packages needs.

Angular momenta are HalfInt values, which store 2j, so integer and
half-integer quantum numbers are both exact. Coefficients vanishing by
a selection rule are returned as 0, not as errors.

Coefficients are computed exactly, with math/big, below a crossover
(DefaultExactLimit) and with log-factorials above it. A Kernel memoizes
them in a Cache: MapCache never evicts, BoundedCache keeps a fixed number
of entries. The package-level functions do not memoize.
*/
package coupling
