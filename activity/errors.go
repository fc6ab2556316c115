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

package activity

import (
	"errors"

	"github.com/ctessum/unit"

	"aquachem"
)

// Domain errors. These are fatal for the call that triggers them; there
// are no retries because the computations are deterministic.
var (
	// ErrNegativeIonicStrength indicates an ionic strength below zero,
	// whose square root would be complex.
	ErrNegativeIonicStrength = errors.New("activity: ionic strength must be non-negative")

	// ErrNegativeMolality indicates a salt concentration below zero.
	ErrNegativeMolality = errors.New("activity: molality must be non-negative")

	// ErrZeroApproachParameter indicates a TCPC approaching parameter
	// b = 0, which puts a zero in two denominators. Unlike Pitzer's b,
	// TCPC's has no conventional default.
	ErrZeroApproachParameter = errors.New("activity: TCPC approaching parameter b must be nonzero")
)

// checkIonicStrength validates i as a molal-scale ionic strength and returns
// its magnitude in mol/kg.
func checkIonicStrength(i *unit.Unit) (float64, error) {
	if err := i.Check(aquachem.Molal); err != nil {
		return 0, err
	}
	if i.Value() < 0 {
		return 0, ErrNegativeIonicStrength
	}
	return i.Value(), nil
}

// checkMolality validates m as a molal concentration and returns its magnitude
// in mol/kg.
func checkMolality(m *unit.Unit) (float64, error) {
	if err := m.Check(aquachem.Molal); err != nil {
		return 0, err
	}
	if m.Value() < 0 {
		return 0, ErrNegativeMolality
	}
	return m.Value(), nil
}
