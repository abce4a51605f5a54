package config

import (
	_ "embed"
)

//go:embed defaults/popchain.yaml
var defaultYAML []byte

// Default returns the default popchain configuration.
func Default() Config {
	return Config{
		Rules: Rules{
			StartingHealth:   3,
			SequenceLength:   3,
			CompletionBonus:  10,
			CountdownSeconds: 10,
		},
		Balloons: Balloons{
			SpawnIntervalMin:  1.0,
			SpawnIntervalMax:  3.0,
			InitialSpawnDelay: 1.0,
			FloatSpeedMin:     2.0,
			FloatSpeedMax:     6.0,
			SpawnXMargin:      2,
			SpawnAltitude:     0,
			DestroyAltitude:   0,
			PopLingerSeconds:  0.3,
		},
	}
}
