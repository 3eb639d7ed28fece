package region

import "errors"

var (
	// ErrEmptyLoop indicates Classify was given no loop cells.
	ErrEmptyLoop = errors.New("region: loop is empty")
	// ErrZeroCurvature indicates a curvature total with no sign.
	ErrZeroCurvature = errors.New("region: curvature total has no sign")
	// ErrLoopMismatch indicates the loop does not lie on the grid's pipes.
	ErrLoopMismatch = errors.New("region: loop does not match grid")
)
