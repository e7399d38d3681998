package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lumen-ai/prism/pkg/registry"
)

var providersFreeOnly bool

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List the provider catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := registry.NewDefault()

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tCATEGORY\tDEFAULT MODEL\tFREE\tPAID\tSTREAMING")
		for _, id := range reg.All() {
			entry, ok := reg.Get(id)
			if !ok {
				continue
			}
			if providersFreeOnly && len(entry.FreeModels) == 0 {
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%v\n",
				id,
				entry.Category,
				entry.DefaultModel,
				len(entry.FreeModels),
				len(entry.PaidModels),
				entry.SupportsStreaming,
			)
		}
		return tw.Flush()
	},
}

var providersLintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check the catalog for authoring defects",
	RunE: func(cmd *cobra.Command, args []string) error {
		problems := registry.NewDefault().Lint()
		if len(problems) == 0 {
			fmt.Println("catalog is clean")
			return nil
		}
		for _, p := range problems {
			fmt.Fprintln(os.Stderr, p)
		}
		return fmt.Errorf("%d catalog problem(s)", len(problems))
	},
}

func init() {
	providersCmd.Flags().BoolVar(&providersFreeOnly, "free-only", false, "only show providers with free models")
	providersCmd.AddCommand(providersLintCmd)
	rootCmd.AddCommand(providersCmd)
}
