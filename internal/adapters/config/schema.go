package config

// Packagerfile represents the structure of the packager.yaml configuration file.
type Packagerfile struct {
	Options           OptionsDTO `yaml:"options"`
	Scripts           []string   `yaml:"scripts"`
	IgnoredListErrors []string   `yaml:"ignoredListErrors"`
}

// OptionsDTO represents the packager options in the configuration.
type OptionsDTO struct {
	IgnoreScripts bool `yaml:"ignoreScripts"`
	FlatTree      bool `yaml:"flatTree"`
}
