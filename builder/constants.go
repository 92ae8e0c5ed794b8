// Package builder defines shared constants used by the construction
// surface, ensuring consistent error prefixes across all entry points.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the originating method for context.
//-----------------------------------------------------------------------------

const (
	// MethodNewBuilder is the canonical name for the NewBuilder constructor.
	MethodNewBuilder = "NewBuilder"
	// MethodSet is the canonical name for the Set operation.
	MethodSet = "Set"
	// MethodFinalize is the canonical name for the Finalize operation.
	MethodFinalize = "Finalize"
)

//-----------------------------------------------------------------------------
// Strict-mode Minimums
//-----------------------------------------------------------------------------

// MinRequiredFields is the smallest meaningful argument count for
// WithRequired. Declaring strict mode over zero fields is a no-op the
// option constructor rejects as a programmer error.
const MinRequiredFields = 1
