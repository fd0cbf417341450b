package theme

type YAMLFile struct {
	Themes []YAMLTheme `yaml:"themes"`
}

type YAMLTheme struct {
	Name       string `yaml:"name"`
	Background string `yaml:"background"`
	Card       string `yaml:"card"`
	Outline    string `yaml:"outline"`
	Label      string `yaml:"label"`
	Matched    string `yaml:"matched"`
	HUD        string `yaml:"hud"`
	Banner     string `yaml:"banner"`
}
