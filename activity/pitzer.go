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

// The Pitzer ion-interaction model. References:
//
// Scharge, Munoz and Moog, "Activity Coefficients of Fission Products in
// Highly Salinary Solutions," J. Chem. Eng. Data 57, 2012.
//
// Kim and Frederick, "Evaluation of Pitzer Ion Interaction Parameters of
// Aqueous Electrolytes at 25 °C. 1. Single Salt Parameters,"
// J. Chem. Eng. Data 33, 1988.
//
// May, Rowland, Hefter and Königsberger, "A Generic and Updatable Pitzer
// Characterization of Aqueous Binary Electrolyte Solutions at 1 bar and
// 25 °C," J. Chem. Eng. Data 56, 2011.

// DefaultPitzerB is the conventional value of the Pitzer b coefficient,
// kg½ mol-½, usually considered independent of temperature and pressure.
const DefaultPitzerB = 1.2

// PitzerParameters holds the fitted ion-interaction parameters for a
// single binary salt system.
type PitzerParameters struct {
	// Alpha1 and Alpha2 scale √I inside the second virial coefficient,
	// kg½ mol-½.
	Alpha1, Alpha2 float64
	// Beta0, Beta1 and Beta2 are the second virial coefficient terms,
	// kg/mol.
	Beta0, Beta1, Beta2 float64
	// CMX is the third virial coefficient parameter, kg²/mol².
	CMX float64
	// ZCation and ZAnion are the formal charges, sign included.
	ZCation, ZAnion int
	// NuCation and NuAnion are the stoichiometric coefficients of the
	// ions in the salt.
	NuCation, NuAnion int
	// B is the Debye-Hückel denominator coefficient, kg½ mol-½.
	// Zero means DefaultPitzerB.
	B float64
}

func (p PitzerParameters) b() float64 {
	if p.B == 0 {
		return DefaultPitzerB
	}
	return p.B
}

// pitzerF1 is f(x) = 2[1-(1+x)e^-x]/x², the ionic strength function in
// B_MX. The x → 0 limit is 0, but the ratio itself is 0/0 there, so zero
// argument is special-cased instead of evaluated.
func pitzerF1(x float64) float64 {
	if x == 0 {
		return 0
	}
	return 2 * (1 - (1+x)*math.Exp(-x)) / (x * x)
}

// pitzerF2 is f(x) = -2[1-(1+x+x²/2)e^-x]/x², the ionic strength function
// in the B_γ form of the second virial coefficient. Zero argument is
// special-cased like pitzerF1.
func pitzerF2(x float64) float64 {
	if x == 0 {
		return 0
	}
	return -2 * (1 - (1+x+x*x/2)*math.Exp(-x)) / (x * x)
}

// pitzerBMX returns the second virial coefficient
// B_MX = β0 + β1 f1(α1 √I) + β2 f1(α2 √I), kg/mol.
func pitzerBMX(i float64, p PitzerParameters) *unit.Unit {
	sqrtI := unit.New(math.Sqrt(i), aquachem.SqrtMolal)
	x1 := unit.Mul(unit.New(p.Alpha1, aquachem.SqrtKilogramPerSqrtMole), sqrtI)
	x2 := unit.Mul(unit.New(p.Alpha2, aquachem.SqrtKilogramPerSqrtMole), sqrtI)
	coeff := p.Beta0 + p.Beta1*pitzerF1(x1.Value()) + p.Beta2*pitzerF1(x2.Value())
	return unit.New(coeff, aquachem.KilogramPerMole)
}

// pitzerBPhi returns the osmotic second virial coefficient
// B_φ = β0 + β1 exp(-α1 √I) + β2 exp(-α2 √I), kg/mol.
// Beyer and Steiger, "Vapor Pressure Measurements of NaHCOO + H2O and
// KHCOO + H2O from 278 to 308 K and Representation with an Ion
// Interaction (Pitzer) Model," J. Chem. Eng. Data 55, 2010.
func pitzerBPhi(i float64, p PitzerParameters) *unit.Unit {
	sqrtI := math.Sqrt(i)
	coeff := p.Beta0 + p.Beta1*math.Exp(-p.Alpha1*sqrtI) + p.Beta2*math.Exp(-p.Alpha2*sqrtI)
	return unit.New(coeff, aquachem.KilogramPerMole)
}

// pitzerCPhi returns the third virial coefficient
// C_φ = C_MX √(2|z+ z-|), kg²/mol².
func pitzerCPhi(p PitzerParameters) *unit.Unit {
	coeff := p.CMX * math.Sqrt(2*math.Abs(float64(p.ZCation*p.ZAnion)))
	return unit.New(coeff, aquachem.Kilogram2PerMole2)
}

// pitzerLogGamma assembles the natural logarithm of the binary activity
// coefficient:
//
//	ln γ = -|z+ z-| A_φ ( √I/(1+b√I) + (2/b) ln(1+b√I) )
//	     + 2m ν+ν-/(ν++ν-) (B_MX + B_φ)
//	     + 3m² (ν+ν-)^1.5/(ν++ν-) C_φ
func pitzerLogGamma(i, m float64, bMX, bPhi, cPhi, aphi *unit.Unit, p PitzerParameters) (float64, error) {
	b := unit.New(p.b(), aquachem.SqrtKilogramPerSqrtMole)
	bSqrtI := unit.Mul(b, unit.New(math.Sqrt(i), aquachem.SqrtMolal))
	if err := bSqrtI.Check(unit.Dimless); err != nil {
		return 0, err
	}
	x := bSqrtI.Value()
	first := -math.Abs(float64(p.ZCation*p.ZAnion)) * aphi.Value() *
		(math.Sqrt(i)/(1+x) + 2/p.b()*math.Log(1+x))

	nuProd := float64(p.NuCation * p.NuAnion)
	nuSum := float64(p.NuCation + p.NuAnion)
	mQ := aquachem.Molality(m)
	second := unit.Mul(unit.New(2*nuProd/nuSum, unit.Dimless), mQ, unit.Add(bMX, bPhi))
	third := unit.Mul(unit.New(3*math.Pow(nuProd, 1.5)/nuSum, unit.Dimless), mQ, mQ, cPhi)
	rest := unit.Add(second, third)
	if err := rest.Check(unit.Dimless); err != nil {
		return 0, err
	}
	return first + rest.Value(), nil
}

// Pitzer returns the mean molal-scale activity coefficient of a salt
// according to the Pitzer ion-interaction model. ionicStrength and
// molality are molal quantities (mol/kg); temperature nil means 25 °C.
func Pitzer(ionicStrength, saltMolality *unit.Unit, p PitzerParameters, temperature *unit.Unit) (float64, error) {
	i, err := checkIonicStrength(ionicStrength)
	if err != nil {
		return 0, err
	}
	m, err := checkMolality(saltMolality)
	if err != nil {
		return 0, err
	}
	aphi, err := ParameterOsmotic(temperature)
	if err != nil {
		return 0, err
	}
	lg, err := pitzerLogGamma(i, m, pitzerBMX(i, p), pitzerBPhi(i, p), pitzerCPhi(p), aphi, p)
	if err != nil {
		return 0, err
	}
	return math.Exp(lg), nil
}

// PitzerOsmotic returns the osmotic coefficient of water in a binary
// electrolyte solution:
//
//	φ = 1 - A_φ |z+ z-| √I/(1+b√I)
//	  + 2m ν+ν-/(ν++ν-) B_φ
//	  + 2m² (ν+ν-)^1.5/(ν++ν-) C_φ
//
// The osmotic assembly uses B_φ alone and a different C_φ coefficient
// than the activity form; the two quantities have different derivative
// relationships to the excess Gibbs energy, so the asymmetry is exact.
func PitzerOsmotic(ionicStrength, saltMolality *unit.Unit, p PitzerParameters, temperature *unit.Unit) (float64, error) {
	i, err := checkIonicStrength(ionicStrength)
	if err != nil {
		return 0, err
	}
	m, err := checkMolality(saltMolality)
	if err != nil {
		return 0, err
	}
	aphi, err := ParameterOsmotic(temperature)
	if err != nil {
		return 0, err
	}
	sqrtI := math.Sqrt(i)
	x := p.b() * sqrtI
	first := 1 - aphi.Value()*math.Abs(float64(p.ZCation*p.ZAnion))*sqrtI/(1+x)

	nuProd := float64(p.NuCation * p.NuAnion)
	nuSum := float64(p.NuCation + p.NuAnion)
	mQ := aquachem.Molality(m)
	second := unit.Mul(unit.New(2*nuProd/nuSum, unit.Dimless), mQ, pitzerBPhi(i, p))
	third := unit.Mul(unit.New(2*math.Pow(nuProd, 1.5)/nuSum, unit.Dimless), mQ, mQ, pitzerCPhi(p))
	rest := unit.Add(second, third)
	if err := rest.Check(unit.Dimless); err != nil {
		return 0, err
	}
	return first + rest.Value(), nil
}
