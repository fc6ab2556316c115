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
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"

	"aquachem"
	"aquachem/water"
)

func TestParameterActivity(t *testing.T) {
	a, err := ParameterActivity(nil)
	if err != nil {
		t.Fatal(err)
	}
	// Natural-log slope at 25 °C; /2.303 gives the textbook base-10
	// value of ~0.509.
	assert.InDelta(t, 1.17085, a.Value(), 1e-4)
	assert.InDelta(t, 0.509, a.Value()/2.303, 1e-3)
	if err := a.Check(aquachem.SqrtKilogramPerSqrtMole); err != nil {
		t.Errorf("A_gamma dimensions: %v", err)
	}
}

func TestParameterOsmoticRatio(t *testing.T) {
	// A_phi must equal A_gamma/3 to float precision at any temperature.
	for _, tempC := range []float64{0, 25, 60.5, 99.9} {
		temp := aquachem.Celsius(tempC)
		ag, err := ParameterActivity(temp)
		if err != nil {
			t.Fatal(err)
		}
		aphi, err := ParameterOsmotic(temp)
		if err != nil {
			t.Fatal(err)
		}
		if aphi.Value() != ag.Value()/3 {
			t.Errorf("at %g °C: A_phi = %v, A_gamma/3 = %v", tempC, aphi.Value(), ag.Value()/3)
		}
	}
}

func TestParameterActivityTemperatureDependence(t *testing.T) {
	tests := []struct {
		tempC float64
		want  float64
	}{
		{0, 1.12442},
		{25, 1.17085},
		{99.9, 1.36515},
	}
	for _, tt := range tests {
		a, err := ParameterActivity(aquachem.Celsius(tt.tempC))
		if err != nil {
			t.Fatal(err)
		}
		if !scalar.EqualWithinAbs(a.Value(), tt.want, 1e-4) {
			t.Errorf("A_gamma(%g °C): want %g, got %g", tt.tempC, tt.want, a.Value())
		}
	}
}

func TestParameterB(t *testing.T) {
	b, err := ParameterB(nil)
	if err != nil {
		t.Fatal(err)
	}
	assert.InDelta(t, 3.6895e5, b.Value(), 1e2)
	if err := b.Check(aquachem.DebyeB); err != nil {
		t.Errorf("B dimensions: %v", err)
	}

	b0, err := ParameterB(aquachem.Celsius(0))
	if err != nil {
		t.Fatal(err)
	}
	assert.InDelta(t, 3.6338e5, b0.Value(), 1e2)
}

func TestParameterSolventRangeErrorPropagates(t *testing.T) {
	hot := aquachem.Celsius(150)
	if _, err := ParameterB(hot); !errors.Is(err, water.ErrTemperatureRange) {
		t.Errorf("ParameterB: want ErrTemperatureRange, got %v", err)
	}
	if _, err := ParameterActivity(hot); !errors.Is(err, water.ErrTemperatureRange) {
		t.Errorf("ParameterActivity: want ErrTemperatureRange, got %v", err)
	}
	if _, err := ParameterOsmotic(hot); !errors.Is(err, water.ErrTemperatureRange) {
		t.Errorf("ParameterOsmotic: want ErrTemperatureRange, got %v", err)
	}
}
