package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the export tool's YAML configuration. Every field has a
// usable default so the tool runs without a config file.
type Config struct {
	Output struct {
		Dir        string `yaml:"dir"`
		Workers    int    `yaml:"workers"`
		SampleRate int    `yaml:"sampleRate"`
	} `yaml:"output"`
	Assets struct {
		Dir string `yaml:"dir"`
	} `yaml:"assets"`
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topic    string `yaml:"topic"`
		Width    int    `yaml:"width"`
		Height   int    `yaml:"height"`
	} `yaml:"mqtt"`
	API struct {
		Bind string `yaml:"bind"`
	} `yaml:"api"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

func defaultConfig() Config {
	var c Config
	c.Output.Dir = "out"
	c.Mqtt.Topic = "balagan/promo/preview"
	c.Mqtt.Width = 64
	c.Mqtt.Height = 36
	c.API.Bind = "127.0.0.1:3000"
	return c
}

// readConfig loads the YAML config at path. An empty path returns the
// defaults; a missing explicit path is an error.
func readConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
