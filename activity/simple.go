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
	"math"

	"github.com/ctessum/unit"

	"aquachem"
)

// The three classical single-parameter models. Each returns the mean
// molal-scale ionic activity coefficient γ for an ion of the given formal
// charge (sign included; only z² enters the formulas).
// Stumm and Morgan, Aquatic Chemistry, 3rd ed., p. 103.
// Wiley Interscience, 1996.

// DebyeHuckel returns γ according to the Debye-Hückel limiting law,
//
//	ln γ = -A_γ z² √I.
//
// Valid for I ≤ 0.005 mol/kg; beyond that a warning is emitted and the
// extrapolated value returned.
func DebyeHuckel(ionicStrength *unit.Unit, formalCharge int, temperature *unit.Unit) (float64, error) {
	i, err := checkIonicStrength(ionicStrength)
	if err != nil {
		return 0, err
	}
	if i > 0.005 {
		warnRange("debye-huckel limiting law", i)
	}
	a, err := ParameterActivity(temperature)
	if err != nil {
		return 0, err
	}
	// A_γ [kg½ mol-½] × √I [mol½ kg-½] is dimensionless.
	logf := unit.Mul(a, unit.New(math.Sqrt(i), aquachem.SqrtMolal))
	if err := logf.Check(unit.Dimless); err != nil {
		return 0, err
	}
	return math.Exp(-logf.Value() * float64(formalCharge*formalCharge)), nil
}

// Guntelberg returns γ according to the Guntelberg approximation,
//
//	ln γ = -A_γ z² √I / (1 + √I).
//
// Valid for I ≤ 0.1 mol/kg.
func Guntelberg(ionicStrength *unit.Unit, formalCharge int, temperature *unit.Unit) (float64, error) {
	i, err := checkIonicStrength(ionicStrength)
	if err != nil {
		return 0, err
	}
	if i > 0.1 {
		warnRange("guntelberg", i)
	}
	a, err := ParameterActivity(temperature)
	if err != nil {
		return 0, err
	}
	sqrtI := math.Sqrt(i)
	logf := unit.Mul(a, unit.New(sqrtI, aquachem.SqrtMolal))
	if err := logf.Check(unit.Dimless); err != nil {
		return 0, err
	}
	return math.Exp(-logf.Value() * float64(formalCharge*formalCharge) / (1 + sqrtI)), nil
}

// Davies returns γ according to the Davies equation,
//
//	ln γ = -A_γ z² ( √I/(1+√I) - 0.2 I ).
//
// Valid for 0.1 ≤ I ≤ 0.5 mol/kg. The empirical 0.2 term does not carry a
// unit that cancels against A_γ, so this model is computed on bare
// magnitudes by convention.
func Davies(ionicStrength *unit.Unit, formalCharge int, temperature *unit.Unit) (float64, error) {
	i, err := checkIonicStrength(ionicStrength)
	if err != nil {
		return 0, err
	}
	if i < 0.1 || i > 0.5 {
		warnRange("davies", i)
	}
	a, err := ParameterActivity(temperature)
	if err != nil {
		return 0, err
	}
	sqrtI := math.Sqrt(i)
	logf := -a.Value() * float64(formalCharge*formalCharge) * (sqrtI/(1+sqrtI) - 0.2*i)
	return math.Exp(logf), nil
}
