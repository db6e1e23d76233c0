package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"zoomctl/pkg/config"
	"zoomctl/pkg/directory"
	"zoomctl/pkg/exporter"
	"zoomctl/pkg/query"

	"github.com/charmbracelet/huh"
)

// RunFindTUI asks for course filters, then prints the matching courses or,
// with export set, writes them to an .ics file.
func RunFindTUI(export bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	path, err := config.DirectoryPath(cfg, "")
	if err != nil {
		return err
	}

	dir, usedPath, err := directory.LoadWithFallback(path, PathPrompt{})
	if err != nil {
		return fmt.Errorf("%w\nRun 'zoomctl fetch' first to download the meeting list", err)
	}

	var (
		all                                   bool
		major, code, name, slot, zoomID, link string
		hide, sortKeys                        string
		outputFile                            = "zoom_meetings.ics"
	)

	filterGroup := huh.NewGroup(
		huh.NewConfirm().
			Title("List every course?").
			Description(fmt.Sprintf("%d courses in %s", dir.CourseCount(), usedPath)).
			Value(&all),
	)

	fields := huh.NewGroup(
		huh.NewNote().
			Title("Filters").
			Description("Leave empty to skip. ~ contains, * any character, ? optional character,\n! not, & and, | or, \"...\" literal text."),
		huh.NewInput().Title("Major").Placeholder("C***").Value(&major),
		huh.NewInput().Title("Code").Placeholder("COMP1***?").Value(&code),
		huh.NewInput().Title("Name").Placeholder("~Lab").Value(&name),
		huh.NewInput().Title("Time").Placeholder("~10:00").Value(&slot),
		huh.NewInput().Title("Zoom ID").Value(&zoomID),
		huh.NewInput().Title("Link").Value(&link),
	).WithHideFunc(func() bool { return all })

	display := huh.NewGroup(
		huh.NewInput().
			Title("Hide columns").
			Description("Shorthands: m major, c code, n name, t time, z zoom id, l link").
			Value(&hide).
			Validate(validColumns),
		huh.NewInput().
			Title("Sort by").
			Description("Shorthands in priority order, e.g. ct").
			Value(&sortKeys).
			Validate(validColumns),
	).WithHideFunc(func() bool { return export })

	output := huh.NewGroup(
		huh.NewInput().
			Title("Output file name").
			Value(&outputFile).
			Validate(notEmpty("file name")),
	).WithHideFunc(func() bool { return !export })

	if err := huh.NewForm(filterGroup, fields, display, output).WithTheme(GetTheme()).Run(); err != nil {
		return err
	}

	filters := make(map[query.Attribute]string)
	if !all {
		for attr, value := range map[query.Attribute]string{
			query.AttrMajor:  major,
			query.AttrCode:   code,
			query.AttrName:   name,
			query.AttrTime:   slot,
			query.AttrZoomID: zoomID,
			query.AttrLink:   link,
		} {
			if strings.TrimSpace(value) != "" {
				filters[attr] = value
			}
		}
	}

	opts, err := query.ParseOptions(all, filters, hide, sortKeys)
	if err != nil {
		return err
	}
	q, err := query.NewQuery(opts)
	if err != nil {
		return err
	}

	rows := q.Evaluate(dir)
	if len(rows) == 0 {
		fmt.Println(errorStyle.Render("No courses matched."))
		return nil
	}

	if !export {
		fmt.Println(RenderTable(rows, q.Columns()))
		fmt.Println(accentStyle.Render(fmt.Sprintf("%d course(s) matched.", len(rows))))
		return nil
	}

	if !strings.HasSuffix(outputFile, ".ics") {
		outputFile += ".ics"
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	n, err := exporter.GenerateICS(rows, time.Hour, file)
	if err != nil {
		return fmt.Errorf("failed to generate ICS: %w", err)
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Exported %d meeting events to %s", n, outputFile)))
	return nil
}

func validColumns(s string) error {
	_, err := query.ParseColumns(s)
	return err
}
