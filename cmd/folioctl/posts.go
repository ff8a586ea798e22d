package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/ancientlore/folio/content"
	"github.com/spf13/cobra"
)

func (a *app) postsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List and show blog posts",
	}

	var category string
	list := &cobra.Command{
		Use:   "list",
		Short: "List posts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			posts, err := a.blog.ByCategory(category)
			if err != nil {
				return err
			}
			return a.printPosts(cmd.OutOrStdout(), posts)
		},
	}
	list.Flags().StringVar(&category, "category", "", "only posts in this category")

	get := &cobra.Command{
		Use:   "get <slug>",
		Short: "Show one post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.blog.Get(args[0])
			if err != nil {
				return fmt.Errorf("post %q: %w", args[0], err)
			}
			w := cmd.OutOrStdout()
			if a.asJSON() {
				return writeJSON(w, p)
			}
			fmt.Fprintf(w, "Title:    %s\nDate:     %s\nAuthor:   %s\nCategory: %s\nRead:     %s\n", p.Title, p.Date, p.Author, p.Category, p.ReadTime)
			if len(p.Tags) > 0 {
				fmt.Fprintf(w, "Tags:     %v\n", p.Tags)
			}
			fmt.Fprintf(w, "\n%s\n", p.Content)
			return nil
		},
	}

	categories := &cobra.Command{
		Use:   "categories",
		Short: "List post categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.blog.Categories()
			if err != nil {
				return err
			}
			if a.asJSON() {
				return writeJSON(cmd.OutOrStdout(), c)
			}
			for _, s := range c {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}

	var size int
	page := &cobra.Command{
		Use:   "page <n>",
		Short: "Show one page of posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("page number: %w", err)
			}
			pg, err := a.blog.Page(n, size, category)
			if err != nil {
				return err
			}
			for i := range pg.Items {
				pg.Items[i] = pg.Items[i].Metadata()
			}
			if a.asJSON() {
				return writeJSON(cmd.OutOrStdout(), pg)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Page %d of %d (%d posts)\n", pg.CurrentPage, pg.TotalPages, pg.TotalItems)
			return a.printPosts(cmd.OutOrStdout(), pg.Items)
		},
	}
	page.Flags().IntVar(&size, "size", 0, "posts per page (default from site.toml)")
	page.Flags().StringVar(&category, "category", "", "only posts in this category")

	recent := &cobra.Command{
		Use:   "recent [n]",
		Short: "List the newest posts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := 3
			if len(args) == 1 {
				var err error
				if n, err = strconv.Atoi(args[0]); err != nil {
					return fmt.Errorf("count: %w", err)
				}
			}
			posts, err := a.blog.Recent(n)
			if err != nil {
				return err
			}
			return a.printPosts(cmd.OutOrStdout(), posts)
		},
	}

	cmd.AddCommand(list, get, categories, page, recent)
	return cmd
}

// printPosts writes posts as a table, or as JSON without their bodies.
func (a *app) printPosts(w io.Writer, posts []content.Post) error {
	if a.asJSON() {
		r := make([]content.Post, len(posts))
		for i := range posts {
			r[i] = posts[i].Metadata()
		}
		return writeJSON(w, r)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tSLUG\tCATEGORY\tTITLE")
	for _, p := range posts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Date, p.Slug, p.Category, p.Title)
	}
	return tw.Flush()
}
