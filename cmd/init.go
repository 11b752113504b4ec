package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/plogic/scenario"
)

// initCmd: plogic init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a scenario file with the classic examples",
	Run: func(cmd *cobra.Command, args []string) {
		path, err := initConfigurationFile(cfgFile)
		if err != nil {
			logger.Error("Error initializing scenario file", zap.Error(err))
			return
		}
		fmt.Printf("Scenario file created/updated: %s\n", path)
	},
}

func initConfigurationFile(configurationPath string) (string, error) {
	if configurationPath == "" {
		configurationPath = scenario.DefaultConfigPath
	}
	return configurationPath, scenario.WriteConfigurationFile(configurationPath, scenario.DefaultConfig())
}
