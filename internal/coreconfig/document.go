package coreconfig

// Document is the core configuration as persisted in core-config.yaml.
// Field order is the serialized key order and is part of the file's layout:
// user_profile and language are adjacent.
type Document struct {
	MarkdownExploder   bool                `yaml:"markdownExploder"`
	Project            ProjectSection      `yaml:"project"`
	UserProfile        string              `yaml:"user_profile"`
	Language           string              `yaml:"language"`
	IDE                IDESection          `yaml:"ide"`
	MCP                MCPSection          `yaml:"mcp"`
	QA                 QASection           `yaml:"qa"`
	PRD                PRDSection          `yaml:"prd"`
	Architecture       ArchitectureSection `yaml:"architecture"`
	DevLoadAlwaysFiles []string            `yaml:"devLoadAlwaysFiles"`
	DevDebugLog        string              `yaml:"devDebugLog"`
	DevStoryLocation   string              `yaml:"devStoryLocation"`
	SlashPrefix        string              `yaml:"slashPrefix"`
	AIOSVersion        string              `yaml:"aios_version"`
}

// ProjectSection describes the target project.
type ProjectSection struct {
	Type string `yaml:"type"`
}

// IDESection records the IDE integrations chosen at install time.
type IDESection struct {
	// Selected is set-like: unique entries in selection order.
	Selected []string `yaml:"selected"`

	// Configs has one entry per known IDE plus any selected unknown IDE.
	Configs map[string]bool `yaml:"configs"`
}

// MCPSection toggles MCP server integration.
type MCPSection struct {
	Enabled bool `yaml:"enabled"`
}

// QASection locates QA gate output.
type QASection struct {
	Location string `yaml:"qaLocation"`
}

// PRDSection locates the product requirements document.
type PRDSection struct {
	File            string `yaml:"prdFile"`
	Version         string `yaml:"prdVersion"`
	Sharded         bool   `yaml:"prdSharded"`
	ShardedLocation string `yaml:"prdShardedLocation"`
	EpicFilePattern string `yaml:"epicFilePattern"`
}

// ArchitectureSection locates the architecture document.
type ArchitectureSection struct {
	File            string `yaml:"architectureFile"`
	Version         string `yaml:"architectureVersion"`
	Sharded         bool   `yaml:"architectureSharded"`
	ShardedLocation string `yaml:"architectureShardedLocation"`
}

// Build lays out r as a Document. The fixed sections carry the installer's
// stock project layout.
func Build(r Resolved) Document {
	return Document{
		MarkdownExploder: true,
		Project:          ProjectSection{Type: r.ProjectType},
		UserProfile:      r.UserProfile,
		Language:         r.Language,
		IDE: IDESection{
			Selected: r.SelectedIDEs,
			Configs:  ideConfigs(r.SelectedIDEs),
		},
		MCP: MCPSection{Enabled: false},
		QA:  QASection{Location: "docs/qa"},
		PRD: PRDSection{
			File:            "docs/prd.md",
			Version:         "v4",
			Sharded:         true,
			ShardedLocation: "docs/prd",
			EpicFilePattern: "epic-{n}*.md",
		},
		Architecture: ArchitectureSection{
			File:            "docs/architecture.md",
			Version:         "v4",
			Sharded:         true,
			ShardedLocation: "docs/architecture",
		},
		DevLoadAlwaysFiles: []string{
			"docs/framework/coding-standards.md",
			"docs/framework/tech-stack.md",
			"docs/framework/source-tree.md",
		},
		DevDebugLog:      ".ai/debug-log.md",
		DevStoryLocation: "docs/stories",
		SlashPrefix:      "AIOS",
		AIOSVersion:      r.AIOSVersion,
	}
}

func ideConfigs(selected []string) map[string]bool {
	configs := make(map[string]bool, len(IDEs)+len(selected))
	for _, ide := range IDEs {
		configs[ide.Value] = false
	}
	for _, id := range selected {
		configs[id] = true
	}
	return configs
}
