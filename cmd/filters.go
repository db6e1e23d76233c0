package cmd

import (
	"errors"

	"zoomctl/pkg/config"
	"zoomctl/pkg/directory"
	"zoomctl/pkg/query"
	"zoomctl/pkg/tui"

	"github.com/spf13/cobra"
)

// filterFlags maps each course filter flag to the attribute it filters.
var filterFlags = []struct {
	name      string
	shorthand string
	attr      query.Attribute
	usage     string
}{
	{"major", "m", query.AttrMajor, "Filter by major, e.g. C*** or \"COMP\"|\"MATH\""},
	{"code", "c", query.AttrCode, "Filter by course code, e.g. COMP1***?"},
	{"name", "n", query.AttrName, "Filter by course name, e.g. ~Lab&~Programming"},
	{"time", "t", query.AttrTime, "Filter by start time, e.g. ~10:00 or Webinar"},
	{"zoom-id", "z", query.AttrZoomID, "Filter by Zoom ID (9 or 10 digits)"},
	{"link", "l", query.AttrLink, "Filter by join link"},
}

const filterHelp = `
Filter syntax:
  "..."   literal text, no operators inside
  ~p      p occurs anywhere (ignores case)
  *       exactly one character
  ?       one optional character
  !e      not e
  a&b     a and b
  a|b     a or b (weaker than &)

All given filters must match. Column shorthands for --hide and --sort:
  m major, c code, n name, t time, z zoom id, l link`

func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("all", "a", false, "List all courses. Cannot be used with course filters")
	for _, f := range filterFlags {
		cmd.Flags().StringP(f.name, f.shorthand, "", f.usage)
	}
	cmd.Flags().StringP("hide", "x", "", "Columns to hide, e.g. nl to hide names and links")
	cmd.Flags().StringP("sort", "s", "", "Columns to sort by in priority order, e.g. ct")
	cmd.Flags().StringP("file", "f", "", "Meeting list to search (defaults to the configured path)")
}

// queryFromFlags builds the query described by the flags of cmd.
// Only filters that were given on the command line take part.
func queryFromFlags(cmd *cobra.Command) (*query.Query, error) {
	all, _ := cmd.Flags().GetBool("all")
	hide, _ := cmd.Flags().GetString("hide")
	sortKeys, _ := cmd.Flags().GetString("sort")

	filters := make(map[query.Attribute]string)
	for _, f := range filterFlags {
		if cmd.Flags().Changed(f.name) {
			filters[f.attr], _ = cmd.Flags().GetString(f.name)
		}
	}

	opts, err := query.ParseOptions(all, filters, hide, sortKeys)
	if err != nil {
		return nil, err
	}
	return query.NewQuery(opts)
}

// isQueryError reports whether err should be answered with the command help.
func isQueryError(err error) bool {
	var se *query.SyntaxError
	var ue *query.UsageError
	return errors.As(err, &se) || errors.As(err, &ue)
}

// loadDirectory reads the meeting list named by explicit, the config, or the
// default location, offering a file picker if that fails.
func loadDirectory(explicit string) (directory.Directory, string, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, "", err
	}

	path, err := config.DirectoryPath(cfg, explicit)
	if err != nil {
		return nil, "", err
	}

	var provider directory.PathProvider
	if !noInput {
		provider = tui.PathPrompt{}
	}
	return directory.LoadWithFallback(path, provider)
}

func firstArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
