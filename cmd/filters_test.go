package cmd

import (
	"testing"

	"zoomctl/pkg/directory"

	"github.com/spf13/cobra"
)

func newQueryCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addQueryFlags(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v): %v", args, err)
	}
	return cmd
}

func TestQueryFromFlags(t *testing.T) {
	dir := directory.Directory{
		{Abbr: "COMP", Courses: []directory.Course{
			{Code: "COMP1021", Name: "Intro", Time: "2024-9-2 09:00", ZoomID: "111", Link: "https://x/1"},
			{Code: "COMP2011", Name: "Lab", Time: "2024-9-2 10:00", ZoomID: "222", Link: "https://x/2"},
		}},
		{Abbr: "MATH", Courses: []directory.Course{
			{Code: "MATH1013", Name: "Calculus", Time: "2024-9-3 11:00", ZoomID: "333", Link: "https://x/3"},
		}},
	}

	tests := []struct {
		name  string
		args  []string
		codes []string
	}{
		{"all", []string{"-a"}, []string{"COMP1021", "COMP2011", "MATH1013"}},
		{"major", []string{"-m", "MATH"}, []string{"MATH1013"}},
		{"code and name", []string{"--code", "COMP****", "-n", "~lab"}, []string{"COMP2011"}},
		{"sort", []string{"-a", "-s", "n"}, []string{"MATH1013", "COMP1021", "COMP2011"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := queryFromFlags(newQueryCmd(t, tt.args...))
			if err != nil {
				t.Fatalf("queryFromFlags: %v", err)
			}
			rows := q.Evaluate(dir)
			if len(rows) != len(tt.codes) {
				t.Fatalf("got %d rows, want %d", len(rows), len(tt.codes))
			}
			for i, r := range rows {
				if r.Code != tt.codes[i] {
					t.Errorf("row %d: got %s, want %s", i, r.Code, tt.codes[i])
				}
			}
		})
	}
}

func TestQueryFromFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"nothing", nil},
		{"all with filter", []string{"-a", "-c", "COMP1021"}},
		{"bad column", []string{"-a", "-x", "q"}},
		{"syntax", []string{"-n", "a&"}},
		{"empty filter", []string{"-n", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := queryFromFlags(newQueryCmd(t, tt.args...))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !isQueryError(err) {
				t.Errorf("isQueryError(%v) = false", err)
			}
		})
	}
}

func TestFirstArg(t *testing.T) {
	if got := firstArg(nil); got != "" {
		t.Errorf("firstArg(nil) = %q", got)
	}
	if got := firstArg([]string{"a.json", "b"}); got != "a.json" {
		t.Errorf("firstArg = %q", got)
	}
}
