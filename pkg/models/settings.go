package models

// Settings represents the application configuration
type Settings struct {
	UI     UISettings     `yaml:"ui"`
	Editor EditorSettings `yaml:"editor"`
}

// UISettings controls UI preferences
type UISettings struct {
	ShowCoach bool `yaml:"show_coach"`
}

// EditorSettings controls external editor preferences
type EditorSettings struct {
	Command        string `yaml:"command"`
	PreferInternal bool   `yaml:"prefer_internal"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		UI: UISettings{
			ShowCoach: true,
		},
		Editor: EditorSettings{
			Command:        "",
			PreferInternal: false,
		},
	}
}
