package doctor

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/thoreinstein/aios/internal/coreconfig"
)

const categoryCoreConfig = "core-config"

// maxSecureFilePerm is the most permissive expected mode (-rw-r--r--).
const maxSecureFilePerm os.FileMode = 0o644

func skipped(t *Target) *CheckResult {
	return &CheckResult{
		Status:  SeverityInfo,
		Message: "skipped: core config is missing or unreadable",
		Details: map[string]any{"path": t.Path},
	}
}

func installHint(t *Target) string {
	return "aios install --target " + t.Dir
}

// ExistsCheck reports whether the core config file is present and readable.
type ExistsCheck struct {
	target *Target
}

var _ Check = (*ExistsCheck)(nil)

func (c *ExistsCheck) Name() string     { return "core-config-exists" }
func (c *ExistsCheck) Category() string { return categoryCoreConfig }

func (c *ExistsCheck) Run() *CheckResult {
	t := c.target
	t.load()

	switch {
	case t.readErr != nil:
		return &CheckResult{
			Status:  SeverityError,
			Message: fmt.Sprintf("cannot read %s: %v", t.Path, t.readErr),
			FixHint: "check permissions on " + t.Path,
		}
	case !t.exists:
		return &CheckResult{
			Status:  SeverityError,
			Message: "core config not found at " + t.Path,
			FixHint: installHint(t),
		}
	}
	return &CheckResult{
		Status:  SeverityPass,
		Message: "found " + t.Path,
	}
}

// ParseCheck reports whether the core config is valid YAML.
type ParseCheck struct {
	target *Target
}

func (c *ParseCheck) Name() string     { return "core-config-parse" }
func (c *ParseCheck) Category() string { return categoryCoreConfig }

func (c *ParseCheck) Run() *CheckResult {
	t := c.target
	t.load()
	if !t.exists || t.readErr != nil {
		return skipped(t)
	}
	if t.parseErr != nil {
		return &CheckResult{
			Status:  SeverityError,
			Message: fmt.Sprintf("core config is not valid YAML: %v", t.parseErr),
			FixHint: "fix the file by hand or re-run " + installHint(t) + " to rewrite it",
		}
	}
	return &CheckResult{Status: SeverityPass, Message: "core config parses"}
}

// PermissionCheck flags a world-writable or overly permissive core config.
type PermissionCheck struct {
	target *Target
}

func (c *PermissionCheck) Name() string     { return "core-config-permissions" }
func (c *PermissionCheck) Category() string { return "filesystem" }

func (c *PermissionCheck) Run() *CheckResult {
	t := c.target
	t.load()
	if t.info == nil {
		return skipped(t)
	}
	if runtime.GOOS == "windows" {
		return &CheckResult{Status: SeverityPass, Message: "permissions not checked on windows"}
	}

	perm := t.info.Mode().Perm()
	details := map[string]any{"mode": fmt.Sprintf("%04o", perm)}

	switch {
	case perm&0o002 != 0:
		return &CheckResult{
			Status:  SeverityWarning,
			Message: "core config is world-writable",
			Details: details,
			FixHint: "chmod 644 " + t.Path,
		}
	case perm&^maxSecureFilePerm != 0:
		return &CheckResult{
			Status:  SeverityWarning,
			Message: fmt.Sprintf("core config mode %04o is more permissive than %04o", perm, maxSecureFilePerm),
			Details: details,
			FixHint: "chmod 644 " + t.Path,
		}
	case perm&0o400 == 0:
		return &CheckResult{
			Status:  SeverityWarning,
			Message: "core config is not readable by its owner",
			Details: details,
			FixHint: "chmod 644 " + t.Path,
		}
	}
	return &CheckResult{Status: SeverityPass, Message: "permissions ok", Details: details}
}

// RequiredKeysCheck warns about missing keys other than language, which
// re-installing fills in from defaults.
type RequiredKeysCheck struct {
	target *Target
}

func (c *RequiredKeysCheck) Name() string     { return "required-keys" }
func (c *RequiredKeysCheck) Category() string { return categoryCoreConfig }

func (c *RequiredKeysCheck) Run() *CheckResult {
	t := c.target
	if !t.usable() {
		return skipped(t)
	}

	var missing []string
	for _, key := range []string{
		coreconfig.KeyUserProfile,
		coreconfig.KeyProjectType,
		coreconfig.KeyIDESelected,
		coreconfig.KeyAIOSVersion,
	} {
		if !t.state.Has(key) {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return &CheckResult{
			Status:  SeverityWarning,
			Message: "missing keys: " + strings.Join(missing, ", "),
			Details: map[string]any{"missing": missing},
			FixHint: installHint(t),
		}
	}
	return &CheckResult{Status: SeverityPass, Message: "all required keys present"}
}

// LanguagePresentCheck warns about documents written before the language
// key existed. Those still work and are treated as English.
type LanguagePresentCheck struct {
	target *Target
}

func (c *LanguagePresentCheck) Name() string     { return "language-present" }
func (c *LanguagePresentCheck) Category() string { return categoryCoreConfig }

func (c *LanguagePresentCheck) Run() *CheckResult {
	t := c.target
	if !t.usable() {
		return skipped(t)
	}

	lang, ok := coreconfig.ReadExistingLanguage(t.state)
	if !ok || strings.TrimSpace(lang) == "" {
		return &CheckResult{
			Status:  SeverityWarning,
			Message: "no language recorded (legacy configuration); " + coreconfig.DefaultLanguage + " is used",
			FixHint: installHint(t) + " --language <code>",
		}
	}
	return &CheckResult{
		Status:  SeverityPass,
		Message: "language: " + lang,
		Details: map[string]any{"language": lang},
	}
}

// LanguageKnownCheck notes a language the installer has no translations for.
type LanguageKnownCheck struct {
	target *Target
}

func (c *LanguageKnownCheck) Name() string     { return "language-known" }
func (c *LanguageKnownCheck) Category() string { return categoryCoreConfig }

func (c *LanguageKnownCheck) Run() *CheckResult {
	t := c.target
	if !t.usable() {
		return skipped(t)
	}

	lang, ok := coreconfig.ReadExistingLanguage(t.state)
	if !ok || coreconfig.KnownLanguage(lang) {
		return &CheckResult{Status: SeverityPass, Message: "language recognized or not set"}
	}
	return &CheckResult{
		Status:  SeverityInfo,
		Message: fmt.Sprintf("language %q is not one of %s; it is kept as-is", lang, choiceValues(coreconfig.Languages)),
		Details: map[string]any{"language": lang},
	}
}

// IDEsKnownCheck notes selected IDEs the installer does not recognize.
type IDEsKnownCheck struct {
	target *Target
}

func (c *IDEsKnownCheck) Name() string     { return "ide-known" }
func (c *IDEsKnownCheck) Category() string { return categoryCoreConfig }

func (c *IDEsKnownCheck) Run() *CheckResult {
	t := c.target
	if !t.usable() {
		return skipped(t)
	}

	ides, _ := t.state.ExistingIDEs()
	var unknown []string
	for _, id := range ides {
		if !coreconfig.KnownIDE(id) {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		return &CheckResult{
			Status:  SeverityInfo,
			Message: "unrecognized IDEs: " + strings.Join(unknown, ", "),
			Details: map[string]any{"unknown": unknown},
		}
	}
	return &CheckResult{Status: SeverityPass, Message: fmt.Sprintf("%d IDE(s) selected", len(ides))}
}

func choiceValues(choices []coreconfig.Choice) string {
	values := make([]string, len(choices))
	for i, c := range choices {
		values[i] = c.Value
	}
	return strings.Join(values, ", ")
}
