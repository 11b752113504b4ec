package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gnolang/plogic"
)

var condition bool

var decideCmd = &cobra.Command{
	Use:   "decide",
	Short: "Ask the agent for its decision",
	Run: func(cmd *cobra.Command, args []string) {
		agent := plogic.NewAgent()
		agent.Condition = condition
		fmt.Println(agent.MakeDecision())
	},
}

func init() {
	decideCmd.Flags().BoolVar(&condition, "condition", true, "The agent's condition")
}
