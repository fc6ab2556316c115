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
	"aquachem/water"
)

// The three Debye-Hückel parameters are pure functions of temperature.
// They depend only on the water property correlations; errors from those
// (temperature outside the fitted range) propagate unchanged.

// ParameterB returns the parameter B of the extended Debye-Hückel
// equation,
//
//	B = ( 8π N_A e² / (1000 ε0 ε_r k T ρ) )^½,
//
// in base SI units (m² kg^-½ mol^-½; 3.6895e5 at 25 °C).
// Bockris and Reddy, Modern Electrochemistry, vol 1. Plenum/Rosetta,
// 1977, p. 210.
func ParameterB(temperature *unit.Unit) (*unit.Unit, error) {
	t, err := aquachem.ResolveTemperature(temperature)
	if err != nil {
		return nil, err
	}
	rho, err := water.Density(t)
	if err != nil {
		return nil, err
	}
	epsr, err := water.DielectricConstant(t)
	if err != nil {
		return nil, err
	}
	b := math.Sqrt(8 * math.Pi * aquachem.AvogadroNumber * aquachem.ElementaryCharge * aquachem.ElementaryCharge /
		(1000 * aquachem.VacuumPermittivity * epsr * aquachem.BoltzmannConstant * t.Value() * rho.Value()))
	return unit.New(b, aquachem.DebyeB), nil
}

// ParameterActivity returns the Debye-Hückel limiting law slope
//
//	A_γ = e³ (2π N_A ρ)^½ / (4π ε0 ε_r k T)^1.5
//
// in kg^½ mol^-½ (≈1.171 at 25 °C). This is the slope for the natural
// logarithm of the activity coefficient; divide by 2.303 for the base-10
// value of ~0.509 given in older textbooks.
// Archer and Wang, "The Dielectric Constant of Water and Debye-Hückel
// Limiting Law Slopes," J. Phys. Chem. Ref. Data 19(2), 1990.
func ParameterActivity(temperature *unit.Unit) (*unit.Unit, error) {
	t, err := aquachem.ResolveTemperature(temperature)
	if err != nil {
		return nil, err
	}
	rho, err := water.Density(t)
	if err != nil {
		return nil, err
	}
	epsr, err := water.DielectricConstant(t)
	if err != nil {
		return nil, err
	}
	e := aquachem.ElementaryCharge
	a := e * e * e * math.Sqrt(2*math.Pi*aquachem.AvogadroNumber*rho.Value()) /
		math.Pow(4*math.Pi*aquachem.VacuumPermittivity*epsr*aquachem.BoltzmannConstant*t.Value(), 1.5)
	return unit.New(a, aquachem.SqrtKilogramPerSqrtMole), nil
}

// ParameterOsmotic returns the Debye-Hückel slope for the osmotic
// coefficient, A_φ = A_γ/3 (≈0.390 at 25 °C). Not to be confused with the
// limiting-law slope itself.
// Kim and Frederick, "Evaluation of Pitzer Ion Interaction Parameters of
// Aqueous Electrolytes at 25 °C. 1. Single Salt Parameters,"
// J. Chem. Eng. Data 33, 1988.
func ParameterOsmotic(temperature *unit.Unit) (*unit.Unit, error) {
	a, err := ParameterActivity(temperature)
	if err != nil {
		return nil, err
	}
	return unit.New(a.Value()/3, aquachem.SqrtKilogramPerSqrtMole), nil
}
