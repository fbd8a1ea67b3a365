package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/bifrost/pkg/keyrange"
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan keys in ascending order",
	Long: `Scan the Bifrost store in ascending key order. By default every
key is printed; --prefix limits the scan to keys under a prefix, and
--from/--to bound it by key (both inclusive).

Examples:
  bifrost scan
  bifrost scan --prefix=users:
  bifrost scan --from=users:a --to=users:m`,
	Run: func(cmd *cobra.Command, args []string) {
		prefix, _ := cmd.Flags().GetString("prefix")
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")

		if prefix != "" && (from != "" || to != "") {
			fmt.Printf("Error: --prefix cannot be combined with --from/--to\n")
			return
		}

		kv, ok := storeFromContext(cmd)
		if !ok {
			fmt.Printf("Error: store not found in context\n")
			return
		}

		r := keyrange.All()
		switch {
		case prefix != "":
			r = keyrange.PrefixRange([]byte(prefix))
		case from != "" || to != "":
			if from != "" {
				r.Start = keyrange.Include([]byte(from))
			}
			if to != "" {
				r.End = keyrange.Include([]byte(to))
			}
		}

		seq, err := kv.Range(r)
		if err != nil {
			fmt.Printf("Error scanning: %v\n", err)
			return
		}

		count := 0
		for entry, err := range seq {
			if err != nil {
				fmt.Printf("Error during scan: %v\n", err)
				return
			}
			fmt.Printf("%s=%s\n", string(entry.Key), string(entry.Value))
			count++
		}
		fmt.Printf("(%d keys)\n", count)
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().String("prefix", "", "Only scan keys starting with this prefix")
	scanCmd.Flags().String("from", "", "Inclusive lower key bound")
	scanCmd.Flags().String("to", "", "Inclusive upper key bound")
}
