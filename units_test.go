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

import (
	"testing"

	"github.com/ctessum/unit"
)

// The half-power dimension system must close under the products the
// coefficient models form.
func TestDimensionCancellation(t *testing.T) {
	sqrtI := unit.New(2, SqrtMolal)

	// A_gamma √I is dimensionless.
	slope := unit.New(1.17, SqrtKilogramPerSqrtMole)
	if err := unit.Mul(slope, sqrtI).Check(unit.Dimless); err != nil {
		t.Errorf("A √I: %v", err)
	}

	// √I · √I recovers molality.
	if err := unit.Mul(sqrtI, sqrtI).Check(Molal); err != nil {
		t.Errorf("√I √I: %v", err)
	}

	// m B_MX is dimensionless, as is m² C_phi.
	m := Molality(0.5)
	if err := unit.Mul(m, unit.New(0.1, KilogramPerMole)).Check(unit.Dimless); err != nil {
		t.Errorf("m B: %v", err)
	}
	if err := unit.Mul(m, m, unit.New(0.001, Kilogram2PerMole2)).Check(unit.Dimless); err != nil {
		t.Errorf("m² C: %v", err)
	}
}

func TestCelsius(t *testing.T) {
	c := Celsius(25)
	if err := c.Check(unit.Kelvin); err != nil {
		t.Fatal(err)
	}
	if c.Value() != 298.15 {
		t.Errorf("25 °C = %g K, want 298.15", c.Value())
	}
}

func TestResolveTemperature(t *testing.T) {
	got, err := ResolveTemperature(nil)
	if err != nil {
		t.Fatal(err)
	}
	if got.Value() != DefaultTemperature {
		t.Errorf("nil temperature resolved to %g K, want %g", got.Value(), DefaultTemperature)
	}

	in := Kelvin(310)
	got, err = ResolveTemperature(in)
	if err != nil {
		t.Fatal(err)
	}
	if got != in {
		t.Error("a valid temperature should pass through unchanged")
	}

	if _, err := ResolveTemperature(Molality(1)); err == nil {
		t.Error("a molality is not a temperature and should be rejected")
	}
}
