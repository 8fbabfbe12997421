package coreconfig

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/aios/internal/errors"
)

// header is attached to the first key of every generated document.
const header = `# AIOS Core Configuration
# Generated by the aios installer. Re-running the installer keeps the
# language, user profile, project type and IDE selection recorded here.`

// headComments are written above top-level keys.
var headComments = map[string]string{
	"user_profile": "# User profile: bob (guided mode) or advanced",
	"ide":          "# IDE integrations selected at install time",
	"mcp":          "# MCP server integration",
	"prd":          "# Document locations",
	"aios_version": "# Installer version that wrote this file",
}

// lineComments are written at the end of a top-level key's line.
var lineComments = map[string]string{
	"language": "# UI language (en, pt, es)",
}

// Generate renders opts as core-config.yaml text.
// Unset options take the documented defaults. Generate does not modify opts.
// It returns a *ValidationError for malformed options.
func Generate(opts Options) (string, error) {
	if errs := Validate(opts); len(errs) > 0 {
		return "", &ValidationError{Errs: errs}
	}
	return Render(Build(Resolve(opts)))
}

// Render serializes doc as YAML with two-space indentation and the standard
// header and key comments.
func Render(doc Document) (string, error) {
	var root yaml.Node
	if err := root.Encode(doc); err != nil {
		return "", errors.Wrap(err, "encoding core config")
	}
	annotate(&root)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&root); err != nil {
		return "", errors.Wrap(err, "marshaling core config")
	}
	if err := enc.Close(); err != nil {
		return "", errors.Wrap(err, "marshaling core config")
	}

	return buf.String(), nil
}

// annotate attaches comments to the top-level keys of a mapping node.
func annotate(root *yaml.Node) {
	if root.Kind != yaml.MappingNode || len(root.Content) == 0 {
		return
	}

	root.Content[0].HeadComment = header

	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i]
		if c, ok := headComments[key.Value]; ok {
			key.HeadComment = c
		}
		if c, ok := lineComments[key.Value]; ok {
			root.Content[i+1].LineComment = c
		}
	}
}
