package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumen-ai/prism/pkg/registry"
	"github.com/lumen-ai/prism/pkg/routing"
)

var (
	selectCapability string
	selectPreferFree bool
	selectAllowlist  []string
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Pick a provider and model for a capability",
	Long: `Runs the routing selector against the compiled-in catalog and prints
the (provider, model) pair the gateway would choose.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		allowlist := make([]registry.ProviderID, 0, len(selectAllowlist))
		for _, id := range selectAllowlist {
			allowlist = append(allowlist, registry.ProviderID(id))
		}

		selector := routing.NewSelector(registry.NewDefault())
		selection, ok := selector.Select(registry.Capability(selectCapability), routing.Options{
			PreferFree: selectPreferFree,
			Allowlist:  allowlist,
		})
		if !ok {
			return fmt.Errorf("no provider serves capability %q", selectCapability)
		}

		fmt.Printf("%s\t%s\n", selection.Provider, selection.Model)
		return nil
	},
}

func init() {
	selectCmd.Flags().StringVar(&selectCapability, "capability", "text", "required capability (text, code, vision, audio, multimodal, embeddings)")
	selectCmd.Flags().BoolVar(&selectPreferFree, "prefer-free", false, "bias toward free and trial providers")
	selectCmd.Flags().StringSliceVar(&selectAllowlist, "providers", nil, "restrict candidates to these provider IDs")
	rootCmd.AddCommand(selectCmd)
}
