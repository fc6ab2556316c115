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

// Package activity computes molal-scale activity coefficients and osmotic
// coefficients of ions and salts in aqueous solution.
//
// Five model families are provided, each valid in a different ionic
// strength regime: the Debye-Hückel limiting law (I ≤ 0.005 mol/kg), the
// Guntelberg approximation (I ≤ 0.1), the Davies equation
// (0.1 ≤ I ≤ 0.5), the modified TCPC model and the Pitzer ion-interaction
// model (both usable to high concentration given salt-specific fitted
// parameters). Calling a model outside its nominal range is not an error:
// a warning is emitted on Log and a best-effort value is returned, since
// deliberate extrapolation is routine in solution chemistry.
//
// All functions are pure: every call is an independent mapping from its
// arguments to a result, with no shared state, so concurrent use needs no
// synchronization.
package activity
