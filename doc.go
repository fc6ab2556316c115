/*
Copyright © 2026 the aquachem authors.
This file is part of aquachem.

aquachem is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

aquachem is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with aquachem.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package aquachem holds the shared vocabulary for thermodynamic
// calculations on aqueous electrolyte solutions: the physical constants and
// the unit dimensions used by the solvent property provider
// (aquachem/water) and the coefficient models (aquachem/activity).
//
// All physical quantities are passed between packages as
// github.com/ctessum/unit quantities, so that arithmetic between them is
// dimension-checked at run time. Magnitudes are always in SI base units.
package aquachem
