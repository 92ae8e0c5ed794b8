// Package director defines shared constants for the contact-card recipes:
// canonical recipe names for error prefixes and the declared field names
// of the contact schema.
package director

//-----------------------------------------------------------------------------
// Recipe Method Name Constants
//   used to prefix errors with the recipe name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildMinimal is the canonical name for the BuildMinimal recipe.
	MethodBuildMinimal = "BuildMinimal"
	// MethodBuildFull is the canonical name for the BuildFull recipe.
	MethodBuildFull = "BuildFull"
)

//-----------------------------------------------------------------------------
// Contact Schema Field Names
//   shared by recipes, builders, and call sites to avoid literal drift.
//-----------------------------------------------------------------------------

const (
	// FieldFirstName is the contact's given name.
	FieldFirstName = "first_name"
	// FieldLastName is the contact's family name.
	FieldLastName = "last_name"
	// FieldPhone is the contact's phone number; optional in every recipe
	// except BuildFull, defaulting to the empty string.
	FieldPhone = "phone"
	// FieldEmail is the contact's email address.
	FieldEmail = "email"
)
