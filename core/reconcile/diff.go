package reconcile

import (
	"fmt"
	"sort"
	"strings"
)

// DiffReport summarizes a match for operator inspection. Created per
// invocation and discarded after display; nothing is persisted.
type DiffReport struct {
	// Matched, TagOnly and ExportOnly are the partition sizes.
	Matched    int `json:"matched"`
	TagOnly    int `json:"tag_only"`
	ExportOnly int `json:"export_only"`

	// DuplicateTag and DuplicateExport carry the matcher's duplicate-key
	// counts through to the report.
	DuplicateTag    int `json:"duplicate_tag"`
	DuplicateExport int `json:"duplicate_export"`

	// TagOnlyPaths and ExportOnlyPaths list normalized keys, sorted
	// lexicographically. Populated only for a verbose diff.
	TagOnlyPaths    []string `json:"tag_only_paths,omitempty"`
	ExportOnlyPaths []string `json:"export_only_paths,omitempty"`
}

// Diff produces a report from a match result. Pure: no mutation, no side
// effects beyond the returned report.
func Diff(m *MatchResult, verbose bool) *DiffReport {
	report := &DiffReport{
		Matched:         len(m.Matched),
		TagOnly:         len(m.TagOnly),
		ExportOnly:      len(m.ExportOnly),
		DuplicateTag:    m.DuplicateTag,
		DuplicateExport: m.DuplicateExport,
	}

	if !verbose {
		return report
	}

	for _, rec := range m.TagOnly {
		report.TagOnlyPaths = append(report.TagOnlyPaths, rec.Key())
	}
	for _, rec := range m.ExportOnly {
		report.ExportOnlyPaths = append(report.ExportOnlyPaths, rec.Key())
	}
	sort.Strings(report.TagOnlyPaths)
	sort.Strings(report.ExportOnlyPaths)

	return report
}

// Render formats the report for console display.
func (r *DiffReport) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%6d tracks in rekordbox library\n", r.Matched+r.ExportOnly)
	fmt.Fprintf(&b, "%6d tracks in beets library\n", r.Matched+r.TagOnly)
	fmt.Fprintf(&b, "%6d shared tracks in both\n", r.Matched)

	if r.DuplicateTag > 0 {
		fmt.Fprintf(&b, "%6d beets records excluded (duplicate path keys)\n", r.DuplicateTag)
	}
	if r.DuplicateExport > 0 {
		fmt.Fprintf(&b, "%6d rekordbox records excluded (duplicate path keys)\n", r.DuplicateExport)
	}

	if len(r.TagOnlyPaths) > 0 {
		b.WriteString("Only in beets:\n")
		for _, p := range r.TagOnlyPaths {
			fmt.Fprintf(&b, "    %s\n", p)
		}
	}
	if len(r.ExportOnlyPaths) > 0 {
		b.WriteString("Only in rekordbox:\n")
		for _, p := range r.ExportOnlyPaths {
			fmt.Fprintf(&b, "    %s\n", p)
		}
	}

	return b.String()
}
