package environment

// Source records where a resolved option value came from.
type Source string

const (
	// SourceExplicit means the caller passed the value.
	SourceExplicit Source = "explicit"
	// SourceExisting means the value was read from the persisted document.
	SourceExisting Source = "existing"
	// SourceDefault means neither was available and the default applied.
	SourceDefault Source = "default"
)

// Field names used as keys of Result.Sources.
const (
	FieldLanguage    = "language"
	FieldUserProfile = "user_profile"
	FieldProjectType = "project.type"
	FieldIDEs        = "ide.selected"
	FieldAIOSVersion = "aios_version"
)

// Result describes a successful Configure call.
type Result struct {
	// CoreConfigCreated is true once the document has been written.
	CoreConfigCreated bool

	// ConfigPath is the absolute path of the written document.
	ConfigPath string

	// Replaced is true when a document already existed at ConfigPath.
	Replaced bool

	// Language is the language written to the document.
	Language string

	// Sources maps each field name to the tier its value came from.
	Sources map[string]Source
}
