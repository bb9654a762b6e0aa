package cmdutil

import (
	"fmt"

	"github.com/expresskit/cli/internal/output"
	"github.com/expresskit/cli/internal/scaffold"
)

// PrintReportFailures logs every failed and skipped write in layout order.
func PrintReportFailures(report *scaffold.Report) {
	failed := report.Failed()
	skipped := report.Skipped()

	output.Error(fmt.Sprintf("%d of %d files could not be written", len(failed)+len(skipped), len(report.Files)))
	for _, f := range report.Files {
		switch f.Status {
		case scaffold.FileFailed:
			output.Error(output.FormatEntryLine(f.Path, false, output.StatusFailed), "error", f.Err)
		case scaffold.FileSkipped:
			output.Warn(output.FormatEntryLine(f.Path, false, output.StatusSkipped))
		}
	}
}

// ReportTreeEntries converts the written part of a report to tree entries.
// describe supplies the per-file description and may be nil.
func ReportTreeEntries(report *scaffold.Report, describe func(path string) string) []output.TreeEntry {
	entries := make([]output.TreeEntry, 0, len(report.Directories)+len(report.Files))
	for _, d := range report.Directories {
		entries = append(entries, output.TreeEntry{Path: d.Path, IsDir: true})
	}
	for _, p := range report.Written() {
		var desc string
		if describe != nil {
			desc = describe(p)
		}
		entries = append(entries, output.TreeEntry{Path: p, Description: desc})
	}
	return entries
}

// ReportSummary returns the completion line for a successful run.
func ReportSummary(report *scaffold.Report) string {
	created := 0
	for _, d := range report.Directories {
		if d.Created {
			created++
		}
	}
	return output.FormatCheckmark(output.StyleSummary.Render(fmt.Sprintf(
		"%d files written, %d directories created (%d already existed)",
		len(report.Written()), created, len(report.Directories)-created,
	)))
}
