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

// Package water provides temperature-dependent properties of pure liquid
// water at atmospheric pressure, from empirical correlations fitted
// between 0 and 100 °C. Temperatures outside the fitted range are an
// error, not an extrapolation.
package water

import (
	"fmt"
	"math"

	"github.com/ctessum/unit"

	"aquachem"
)

// ErrTemperatureRange indicates a temperature outside the 0-100 °C fitted
// range of the property correlations.
var ErrTemperatureRange = fmt.Errorf("water: temperature outside correlation range (0-100 °C)")

// celsius resolves the temperature argument and converts it to degrees
// Celsius, rejecting temperatures outside the fitted range.
func celsius(temperature *unit.Unit) (float64, error) {
	t, err := aquachem.ResolveTemperature(temperature)
	if err != nil {
		return 0, err
	}
	tC := t.Value() - aquachem.ZeroCelsius
	if tC < 0 || tC > 100 {
		return 0, fmt.Errorf("%w: %g K", ErrTemperatureRange, t.Value())
	}
	return tC, nil
}

// Density returns the density of pure water [kg/m³] at the given
// temperature (nil means 25 °C), from the correlation of
// Sohnel and Novotny, "Densities of Aqueous Solutions of Inorganic
// Substances," Elsevier, 1985.
func Density(temperature *unit.Unit) (*unit.Unit, error) {
	tC, err := celsius(temperature)
	if err != nil {
		return nil, err
	}
	rho := 999.65 + 2.0438e-1*tC - 6.1744e-2*math.Pow(tC, 1.5)
	return unit.New(rho, unit.KilogramPerMeter3), nil
}

// DielectricConstant returns the relative permittivity (dielectric
// constant) of pure water at the given temperature (nil means 25 °C).
// The correlation is the CRC Handbook polynomial centered on 78.54 at
// 25 °C.
func DielectricConstant(temperature *unit.Unit) (float64, error) {
	tC, err := celsius(temperature)
	if err != nil {
		return 0, err
	}
	d := tC - 25.0
	return 78.54 * (1.0 - 4.579e-3*d + 1.19e-5*d*d - 2.8e-8*d*d*d), nil
}
