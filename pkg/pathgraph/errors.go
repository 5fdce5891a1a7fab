// SPDX-License-Identifier: MIT
package pathgraph

import "errors"

// ErrReadFile indicates the input file could not be read or parsed.
// Per spec §7 this is a file-level failure: the caller logs and
// continues with an empty partial graph rather than aborting the batch.
var ErrReadFile = errors.New("pathgraph: unreadable input file")
