package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and saves the result
// to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Let's configure the train delay dashboard.")
	fmt.Println()

	def := DefaultConfig()

	dataPrompt := promptui.Prompt{
		Label:   "Path to the train rides CSV",
		Default: def.DataPath,
	}
	dataPath, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data path: %w", err)
	}

	figsPrompt := promptui.Prompt{
		Label:   "Directory holding the plot PNGs",
		Default: def.FigsDir,
	}
	figsDir, err := figsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("figs dir: %w", err)
	}

	portPrompt := promptui.Prompt{
		Label:    "Port for the web dashboard",
		Default:  strconv.Itoa(def.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	originPrompt := promptui.Select{
		Label: "Allowed CORS origins",
		Items: []string{
			"localhost only",
			"any origin",
		},
	}
	originIdx, _, err := originPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("cors selection: %w", err)
	}

	cfg := DefaultConfig()
	cfg.DataPath = dataPath
	cfg.FigsDir = figsDir
	cfg.Port = port
	cfg.AllowAllOrigins = originIdx == 1

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(cfg.DataPath); err != nil {
		fmt.Printf("\nNote: %s does not exist yet; the dashboard will not start without it.\n", cfg.DataPath)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	p, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if p <= 0 || p > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}
