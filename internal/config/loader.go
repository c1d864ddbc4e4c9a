package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves a game config with the standard search order:
// customPath -> ~/.eduquest/configs/<name>.yaml -> ./configs/<name>.yaml
// -> embedded default. Only an explicit custom path can fail.
func load(name, customPath string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	if userCfgPath := userConfigPath(name + ".yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", name+".yaml")); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	return yaml.Unmarshal(embedded, out)
}

// LoadFishing loads the Alphabet Fishing configuration.
func LoadFishing(customPath string) (FishingConfig, error) {
	var cfg FishingConfig
	if err := load("fishing", customPath, defaultFishingYAML, &cfg); err != nil {
		return DefaultFishingConfig(), err
	}
	return cfg, nil
}

// LoadShapes loads the Counting Shapes configuration.
func LoadShapes(customPath string) (ShapesConfig, error) {
	var cfg ShapesConfig
	if err := load("shapes", customPath, defaultShapesYAML, &cfg); err != nil {
		return DefaultShapesConfig(), err
	}
	return cfg, nil
}

// LoadQuiz loads the Quiz Player configuration.
func LoadQuiz(customPath string) (QuizConfig, error) {
	var cfg QuizConfig
	if err := load("quiz", customPath, defaultQuizYAML, &cfg); err != nil {
		return DefaultQuizConfig(), err
	}
	return cfg, nil
}

// LoadStocks loads the Stock Market configuration.
func LoadStocks(customPath string) (StocksConfig, error) {
	var cfg StocksConfig
	if err := load("stocks", customPath, defaultStocksYAML, &cfg); err != nil {
		return DefaultStocksConfig(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".eduquest", "configs", filename)
}
