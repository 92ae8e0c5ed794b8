// Package factory defines shared constants for variant construction:
// canonical method tokens for error prefixes and the accepted model-year
// window.
package factory

//-----------------------------------------------------------------------------
// Method Name Constants
//-----------------------------------------------------------------------------

const (
	// MethodCreate is the canonical name for the Create operation.
	MethodCreate = "Create"
	// MethodParseKind is the canonical name for the ParseKind helper.
	MethodParseKind = "ParseKind"
)

//-----------------------------------------------------------------------------
// Model-Year Window
//-----------------------------------------------------------------------------

// MinModelYear is the earliest accepted model year. 1886 is the Benz
// Patent-Motorwagen; nothing street-legal predates it.
const MinModelYear = 1886

// MaxModelYear is the latest accepted model year, held one generous
// model-cycle ahead of the present so next-year models pass.
const MaxModelYear = 2100

//-----------------------------------------------------------------------------
// Door Counts per Kind
//-----------------------------------------------------------------------------

// SedanDoors is the door count assigned to sedan variants.
const SedanDoors = 4

// SUVDoors is the door count assigned to SUV variants (tailgate included).
const SUVDoors = 5

// CoupeDoors is the door count assigned to coupe variants.
const CoupeDoors = 2
