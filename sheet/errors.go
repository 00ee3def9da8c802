package sheet

import (
	"github.com/pkg/errors"

	"github.com/cellgraph/spreadsheet/position"
)

// ErrCircularDependency is returned by SetCell when a candidate
// formula would introduce a cycle (spec.md §4.5/§7). The sheet is left
// exactly as it was before the call.
var ErrCircularDependency = errors.New("circular dependency")

// ErrInvalidPosition is position.ErrInvalidPosition, re-exported for direct
// Sheet position arguments (spec.md §7: malformed or out-of-range
// positions passed to SetCell/GetCell/ClearCell fail immediately,
// unlike an out-of-range CELL token inside a formula which defers to
// ast.ErrRef at evaluation time).
var ErrInvalidPosition = position.ErrInvalidPosition
