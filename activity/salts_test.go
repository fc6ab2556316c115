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
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupSalt(t *testing.T) {
	s, ok := LookupSalt("NaCl")
	if !ok {
		t.Fatal("NaCl should be compiled in")
	}
	if s.Name != "sodium chloride" {
		t.Errorf("name = %q", s.Name)
	}
	if s.Params.Beta0 != 0.0765 {
		t.Errorf("β0 = %g, want 0.0765", s.Params.Beta0)
	}
	if _, ok := LookupSalt("Na3PO4"); ok {
		t.Error("Na3PO4 has no parameter set and should not resolve")
	}
}

func TestSaltFormulas(t *testing.T) {
	got := SaltFormulas()
	sort.Strings(got)
	want := []string{"KCl", "KHCOO", "NH4NO3", "NaCl", "NaHCOO"}
	assert.Equal(t, want, got)
}

// Pitzer and Mayorga tabulate C_φ; the stored C_MX must invert
// C_φ = C_MX √(2|z+ z-|).
func TestCMXFromCPhi(t *testing.T) {
	got := cMXFromCPhi(0.00127, 1, -1)
	assert.InDelta(t, 0.00127/math.Sqrt2, got, 1e-12)
	if s, _ := LookupSalt("NaCl"); s.Params.CMX != got {
		t.Errorf("stored NaCl C_MX = %g, want %g", s.Params.CMX, got)
	}
}
