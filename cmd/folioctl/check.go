package main

import (
	"fmt"

	"github.com/ancientlore/folio/content"
	"github.com/spf13/cobra"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report problems with content files",
		Long: `check reads every post and project and reports duplicate slugs, front
matter that does not decode, and missing or unparseable dates. It exits
with an error when any problem is found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var all []content.Problem
			for _, check := range []func() ([]content.Problem, error){a.blog.Check, a.projects.Check} {
				p, err := check()
				if err != nil {
					return err
				}
				all = append(all, p...)
			}
			w := cmd.OutOrStdout()
			if a.asJSON() {
				if all == nil {
					all = []content.Problem{}
				}
				if err := writeJSON(w, all); err != nil {
					return err
				}
			} else {
				for _, p := range all {
					fmt.Fprintln(w, p)
				}
			}
			if len(all) > 0 {
				return fmt.Errorf("%d problem(s) found", len(all))
			}
			if !a.asJSON() {
				fmt.Fprintln(w, "No problems found.")
			}
			return nil
		},
	}
}
