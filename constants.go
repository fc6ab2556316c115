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

package aquachem

// Fundamental constants, CODATA 2018 (exact since the 2019 SI
// redefinition except for the vacuum permittivity).
const (
	// AvogadroNumber is the number of entities per mole [mol^-1].
	AvogadroNumber = 6.02214076e23
	// ElementaryCharge is the charge of a proton [C].
	ElementaryCharge = 1.602176634e-19
	// BoltzmannConstant relates temperature to energy [J/K].
	BoltzmannConstant = 1.380649e-23
	// VacuumPermittivity is the electric constant ε0 [F/m].
	VacuumPermittivity = 8.8541878128e-12
	// ZeroCelsius is 0 °C expressed in kelvins.
	ZeroCelsius = 273.15
)
