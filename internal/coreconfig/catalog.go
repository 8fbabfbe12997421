package coreconfig

import "slices"

// Choice is a selectable value with a human-readable label.
type Choice struct {
	Value string
	Label string
}

// Languages are the UI languages the installer ships translations for.
var Languages = []Choice{
	{Value: "en", Label: "English"},
	{Value: "pt", Label: "Português"},
	{Value: "es", Label: "Español"},
}

// UserProfiles are the supported user profiles.
var UserProfiles = []Choice{
	{Value: "bob", Label: "Bob (guided mode)"},
	{Value: "advanced", Label: "Advanced"},
}

// ProjectTypes are the supported project types.
var ProjectTypes = []Choice{
	{Value: "GREENFIELD", Label: "Greenfield (new project)"},
	{Value: "BROWNFIELD", Label: "Brownfield (existing project)"},
}

// IDEs are the IDE integrations the installer knows how to scaffold.
// The order is the order ide.configs keys are presented in prompts.
var IDEs = []Choice{
	{Value: "vscode", Label: "VS Code"},
	{Value: "cursor", Label: "Cursor"},
	{Value: "windsurf", Label: "Windsurf"},
	{Value: "claude-code", Label: "Claude Code"},
	{Value: "gemini", Label: "Gemini CLI"},
	{Value: "github-copilot", Label: "GitHub Copilot"},
	{Value: "trae", Label: "Trae"},
	{Value: "cline", Label: "Cline"},
	{Value: "roo", Label: "Roo Code"},
}

// KnownLanguage reports whether code is in Languages.
func KnownLanguage(code string) bool {
	return contains(Languages, code)
}

// KnownUserProfile reports whether profile is in UserProfiles.
func KnownUserProfile(profile string) bool {
	return contains(UserProfiles, profile)
}

// KnownProjectType reports whether t is in ProjectTypes.
func KnownProjectType(t string) bool {
	return contains(ProjectTypes, t)
}

// KnownIDE reports whether id is in IDEs.
func KnownIDE(id string) bool {
	return contains(IDEs, id)
}

func contains(choices []Choice, value string) bool {
	return slices.ContainsFunc(choices, func(c Choice) bool {
		return c.Value == value
	})
}
