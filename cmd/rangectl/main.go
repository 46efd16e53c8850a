// Command rangectl inspects byte strings from the command line: encodes them,
// slices them and compares them.
package main

import (
	"log"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd, opts := newRootCmd()
	err := rootCmd.Execute()
	opts.teardown()
	if err != nil {
		log.Fatalln(err)
	}
}

func newRootCmd() (*cobra.Command, *globalOptions) {
	opts := &globalOptions{}
	rootCmd := &cobra.Command{
		Use:           "rangectl",
		Short:         "Inspect, slice and encode byte strings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.inputFormat, "input-format", "f", formatText, "How to read inputs: text, hex or base64")
	flags.BoolVar(&opts.json, "json", false, "Print results as JSON")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&opts.logJSON, "log-json", false, "Log as JSON instead of text")
	flags.BoolVar(&opts.cache, "cache", false, "Memoize encodings of large inputs")

	rootCmd.AddCommand(
		newInfoCmd(opts),
		newHexCmd(opts),
		newBase64Cmd(opts),
		newSliceCmd(opts),
		newCompareCmd(opts),
		newAtCmd(opts),
	)
	return rootCmd, opts
}
