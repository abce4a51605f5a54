// Package config provides YAML-based gameplay configuration loading
// for the popchain arcade game.
package config

// Config contains all tunable gameplay constants.
type Config struct {
	Rules    Rules    `yaml:"rules"`
	Balloons Balloons `yaml:"balloons"`
}

// Rules defines session-level gameplay parameters.
type Rules struct {
	StartingHealth   int     `yaml:"starting_health"`
	SequenceLength   int     `yaml:"sequence_length"`
	CompletionBonus  int     `yaml:"completion_bonus"`
	CountdownSeconds float64 `yaml:"countdown_seconds"`
}

// Balloons defines spawn pacing and movement parameters.
// Durations are in seconds, speeds in cells per second, positions in cells.
type Balloons struct {
	SpawnIntervalMin  float64 `yaml:"spawn_interval_min"`
	SpawnIntervalMax  float64 `yaml:"spawn_interval_max"`
	InitialSpawnDelay float64 `yaml:"initial_spawn_delay"`
	FloatSpeedMin     float64 `yaml:"float_speed_min"`
	FloatSpeedMax     float64 `yaml:"float_speed_max"`
	SpawnXMargin      int     `yaml:"spawn_x_margin"`
	SpawnAltitude     float64 `yaml:"spawn_altitude"`
	DestroyAltitude   float64 `yaml:"destroy_altitude"` // 0 = derive from screen height
	PopLingerSeconds  float64 `yaml:"pop_linger_seconds"`
}
