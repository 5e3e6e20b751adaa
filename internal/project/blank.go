package project

// BlankTemplateID is the fixed identifier of the synthetic blank template.
const BlankTemplateID = "blank"

// NewBlankTemplate constructs the canonical empty template used when the user
// chooses to start from scratch instead of a stored template.
//
// All collections are empty but non-nil, so downstream handling is identical
// whether the template came from a store or from here.
func NewBlankTemplate() Template {
	return Template{
		ID:          BlankTemplateID,
		Name:        "Blank Project",
		Version:     "1.0",
		Description: "Start from an empty project specification",
		Defaults:    Defaults{},
		TechStack:   map[string]string{},
		Data: TemplateData{
			Features: Features{CoreModules: []FeatureModule{}},
			Pages: PageGroups{
				Public:        []Page{},
				Authenticated: []Page{},
				Admin:         []Page{},
			},
			API: APISurface{Endpoints: []Endpoint{}},
		},
	}
}
