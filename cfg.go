package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type Config struct {
	CellSize  int    `yaml:"cellSize"`
	Offset    int    `yaml:"offset"`
	FontFile  string `yaml:"fontFile"`
	BoardFile string `yaml:"boardFile"`
	ServerURL string `yaml:"serverURL"`
	Room      string `yaml:"room"`
}

// LoadConfig reads editor.yaml next to the binary. A missing or broken file
// falls back to the defaults.
func LoadConfig(path string) Config {
	cfg := Config{
		CellSize:  25,
		Offset:    20,
		FontFile:  "Teko-Light.ttf",
		BoardFile: "board.json",
		ServerURL: "ws://localhost:8080",
		Room:      "default",
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("config: %v, using defaults", err)
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Warnf("config: %v, using defaults", err)
	}
	return cfg
}
