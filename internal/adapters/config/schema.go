package config

// projectFile represents the structure of the cuforge.yaml configuration file.
type projectFile struct {
	Version       string            `yaml:"version"`
	Project       string            `yaml:"project"`
	Source        string            `yaml:"source"`
	BuildDir      string            `yaml:"buildDir"`
	Architectures []string          `yaml:"architectures"`
	Defines       map[string]string `yaml:"defines"`
	PolicyFloor   string            `yaml:"policyFloor"`
}
