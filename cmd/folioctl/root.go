package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ancientlore/folio/content"
	"github.com/ancientlore/folio/site"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the resolved configuration to the subcommands.
type app struct {
	v        *viper.Viper
	cfgFile  string
	blog     *content.Blog
	projects *content.Projects
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	root := &cobra.Command{
		Use:   "folioctl",
		Short: "Inspect the posts and projects of a folio site",
		Long: `folioctl reads the content folders of a folio site, the same way the
server does, and prints posts and projects or reports problems with them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./folio.yaml)")
	root.PersistentFlags().String("root", ".", "root of the web site")
	root.PersistentFlags().Bool("json", false, "print JSON instead of text")
	a.v.BindPFlag("root", root.PersistentFlags().Lookup("root"))
	a.v.BindPFlag("json", root.PersistentFlags().Lookup("json"))

	root.AddCommand(a.postsCmd(), a.projectsCmd(), a.checkCmd())
	return root
}

// initialize reads folio.yaml and FOLIO_ variables, then opens the site's
// content folders as configured in its site.toml.
func (a *app) initialize(cmd *cobra.Command) error {
	v := a.v
	v.SetDefault("root", ".")
	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("folio")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix("FOLIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || a.cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	fsys := os.DirFS(v.GetString("root"))
	cfg, err := site.LoadConfig(fsys)
	if err != nil {
		return err
	}
	opts := []content.Option{content.WithAuthor(cfg.Author), content.WithPageSize(cfg.PageSize)}
	a.blog = content.NewBlog(fsys, cfg.BlogDir, opts...)
	a.projects = content.NewProjects(fsys, cfg.ProjectsDir, opts...)
	return nil
}

// asJSON reports whether output should be JSON.
func (a *app) asJSON() bool {
	return a.v.GetBool("json")
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
