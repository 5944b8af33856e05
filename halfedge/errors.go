package halfedge

import "github.com/cockroachdb/errors"

// Recoverable AddFace failures, test with errors.Is
var (
	ErrComplexVertex  = errors.New("complex vertex")
	ErrComplexEdge    = errors.New("complex edge")
	ErrPatchRelink    = errors.New("patch re-linking failed")
	ErrDegenerateFace = errors.New("face repeats a vertex")
)
