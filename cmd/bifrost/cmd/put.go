package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// putCmd represents the put command
var putCmd = &cobra.Command{
	Use:   "put <key> <value>",
	Short: "Put a key-value pair",
	Long: `Put a key-value pair into the Bifrost store. Putting to an
existing key overwrites its value.

Example:
  bifrost put mykey myvalue`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		kv, ok := storeFromContext(cmd)
		if !ok {
			fmt.Printf("Error: store not found in context\n")
			return
		}

		if err := kv.Insert([]byte(args[0]), []byte(args[1])); err != nil {
			fmt.Printf("Error putting value: %v\n", err)
			return
		}

		fmt.Printf("OK\n")
	},
}

func init() {
	rootCmd.AddCommand(putCmd)
}
