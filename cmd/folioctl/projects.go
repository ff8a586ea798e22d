package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ancientlore/folio/content"
	"github.com/spf13/cobra"
)

func (a *app) projectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List and show projects",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List projects, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.projects.All()
			if err != nil {
				return err
			}
			return a.printProjects(cmd.OutOrStdout(), p)
		},
	}

	featured := &cobra.Command{
		Use:   "featured",
		Short: "List featured projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.projects.Featured()
			if err != nil {
				return err
			}
			return a.printProjects(cmd.OutOrStdout(), p)
		},
	}

	get := &cobra.Command{
		Use:   "get <slug>",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.projects.Get(args[0])
			if err != nil {
				return fmt.Errorf("project %q: %w", args[0], err)
			}
			w := cmd.OutOrStdout()
			if a.asJSON() {
				return writeJSON(w, p)
			}
			fmt.Fprintf(w, "Title:    %s %s\nDate:     %s\nRole:     %s\nFeatured: %t\nTags:     %v\n", p.Image, p.Title, p.Date, p.Role, p.Featured, p.Tags)
			if p.GitHub != "" {
				fmt.Fprintf(w, "GitHub:   %s\n", p.GitHub)
			}
			if p.Live != "" {
				fmt.Fprintf(w, "Live:     %s\n", p.Live)
			}
			fmt.Fprintf(w, "\n%s\n", p.Content)
			return nil
		},
	}

	cmd.AddCommand(list, featured, get)
	return cmd
}

// printProjects writes projects as a table, or as JSON without their bodies.
func (a *app) printProjects(w io.Writer, projects []content.Project) error {
	if a.asJSON() {
		for i := range projects {
			projects[i].Content = ""
		}
		return writeJSON(w, projects)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tSLUG\tFEATURED\tTITLE")
	for _, p := range projects {
		fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", p.Date, p.Slug, p.Featured, p.Title)
	}
	return tw.Flush()
}
