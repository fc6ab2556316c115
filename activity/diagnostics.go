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

import "github.com/sirupsen/logrus"

// Log receives validity-range warnings from the coefficient models.
// Replace it to redirect or silence diagnostics; warnings never block and
// never alter a model's return value.
var Log logrus.FieldLogger = logrus.StandardLogger()

// warnRange emits the single validity warning for a model invoked outside
// its nominal ionic strength range.
func warnRange(model string, ionicStrength float64) {
	Log.WithFields(logrus.Fields{
		"model":          model,
		"ionic_strength": ionicStrength,
	}).Warn("ionic strength exceeds the valid range of the model")
}
