// SPDX-License-Identifier: MIT
package scoreagg

import "errors"

// ErrReadFile indicates a change-score file could not be read or
// parsed; per spec §4.4/§7 this logs and the file is skipped, the run
// continues.
var ErrReadFile = errors.New("scoreagg: unreadable change-score file")

// ErrMethodMissing indicates a probe entry has no array for the
// configured method name; that probe's scores are skipped.
var ErrMethodMissing = errors.New("scoreagg: method series missing")
