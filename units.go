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

import "github.com/ctessum/unit"

// Debye-Hückel theory is full of square roots: the limiting-law slope
// carries kg^½ mol^-½ and the Pitzer coefficients α and b carry
// kg^½ mol^-½ so that their products with √I are dimensionless. The unit
// library tracks dimensions as integer exponents, so the molal quantity
// system here is built on half-power base dimensions: molality is
// (mol½)² (kg½)⁻², its square root is (mol½) (kg½)⁻¹, and every product
// appearing in the coefficient models cancels to dimensionless with
// integer exponent arithmetic.
var (
	sqrtKilogramDim unit.Dimension // kg½
	sqrtMoleDim     unit.Dimension // mol½
)

func init() {
	sqrtKilogramDim = unit.NewDimension("kg½")
	sqrtMoleDim = unit.NewDimension("mol½")
}

var (
	// Molal is the dimension vector for molality and molal-scale ionic
	// strength (mol solute per kg solvent).
	Molal unit.Dimensions

	// SqrtMolal is the dimension vector for the square root of a molal
	// quantity, (mol/kg)^½.
	SqrtMolal unit.Dimensions

	// SqrtKilogramPerSqrtMole is kg^½ mol^-½, the unit of the
	// Debye-Hückel slopes A_gamma and A_phi and of the Pitzer parameters
	// α1, α2 and b.
	SqrtKilogramPerSqrtMole unit.Dimensions

	// KilogramPerMole is kg/mol, the unit of the Pitzer second virial
	// coefficients B_MX and B_phi.
	KilogramPerMole unit.Dimensions

	// Kilogram2PerMole2 is kg²/mol², the unit of the Pitzer third virial
	// coefficient C_phi.
	Kilogram2PerMole2 unit.Dimensions

	// DebyeB is m² kg^-½ mol^-½, the base-SI unit of the extended
	// Debye-Hückel parameter B as written by Bockris and Reddy.
	DebyeB unit.Dimensions
)

func init() {
	Molal = unit.Dimensions{sqrtMoleDim: 2, sqrtKilogramDim: -2}
	SqrtMolal = unit.Dimensions{sqrtMoleDim: 1, sqrtKilogramDim: -1}
	SqrtKilogramPerSqrtMole = unit.Dimensions{sqrtKilogramDim: 1, sqrtMoleDim: -1}
	KilogramPerMole = unit.Dimensions{sqrtKilogramDim: 2, sqrtMoleDim: -2}
	Kilogram2PerMole2 = unit.Dimensions{sqrtKilogramDim: 4, sqrtMoleDim: -4}
	DebyeB = unit.Dimensions{unit.LengthDim: 2, sqrtKilogramDim: -1, sqrtMoleDim: -1}
}

// Molality returns a molal-scale concentration quantity (mol/kg).
func Molality(v float64) *unit.Unit { return unit.New(v, Molal) }

// Kelvin returns a temperature quantity from a magnitude in kelvins.
func Kelvin(v float64) *unit.Unit { return unit.New(v, unit.Kelvin) }

// Celsius returns a temperature quantity from a magnitude in degrees
// Celsius.
func Celsius(v float64) *unit.Unit { return unit.New(v+ZeroCelsius, unit.Kelvin) }

// DefaultTemperature is the temperature assumed when a caller passes a nil
// temperature: 25 °C.
const DefaultTemperature = 298.15 // K

// ResolveTemperature applies the 25 °C default to a nil temperature and
// checks that a non-nil one is a temperature quantity. The default is
// constructed fresh on every call; there is no shared default object.
func ResolveTemperature(t *unit.Unit) (*unit.Unit, error) {
	if t == nil {
		return unit.New(DefaultTemperature, unit.Kelvin), nil
	}
	if err := t.Check(unit.Kelvin); err != nil {
		return nil, err
	}
	return t, nil
}
