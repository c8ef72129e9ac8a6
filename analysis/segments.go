package analysis

import (
	"regexp"
	"strings"

	"github.com/224saisrikanth/Judment-analysis/models"
)

var (
	summaryMarkerRe = regexp.MustCompile(`(?m)^(?:#{1,6}\s*)?(?:\*\*)?(\d+\.\s+(?:\*\*)?[^\n*:]+)(?:\*\*)?:?[ \t]*$`)
	headingShapedRe = regexp.MustCompile(`^\s*(?:#{1,6}\s*)?(?:\*\*)?\d+\.\s+`)
	markerTrimRe    = regexp.MustCompile(`^[*#]+|[*#]+$`)
	numericPrefixRe = regexp.MustCompile(`^\d+\.\s*`)
)

// SegmentLegalSummary splits narrative into titled items on numbered-heading
// markers ("1. Title:", optionally wrapped in heading or bold markup). A
// leading paragraph that is not itself heading-shaped becomes an "Overview"
// item; with no markers at all the whole narrative is a single "Summary".
func SegmentLegalSummary(raw string) []models.LegalSummaryItem {
	if raw == "" {
		return nil
	}

	var items []models.LegalSummaryItem

	matches := summaryMarkerRe.FindAllStringSubmatchIndex(raw, -1)

	preambleEnd := len(raw)
	if len(matches) > 0 {
		preambleEnd = matches[0][0]
	}
	preamble := strings.TrimSpace(raw[:preambleEnd])
	if preamble != "" && !headingShapedRe.MatchString(raw[:preambleEnd]) {
		items = append(items, models.LegalSummaryItem{Title: "Overview", Content: preamble})
	}

	for i, m := range matches {
		title := strings.TrimSpace(raw[m[2]:m[3]])
		title = strings.TrimSpace(markerTrimRe.ReplaceAllString(title, ""))
		title = strings.TrimSpace(numericPrefixRe.ReplaceAllString(title, ""))
		title = strings.TrimSpace(markerTrimRe.ReplaceAllString(title, ""))

		end := len(raw)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		content := strings.TrimSpace(raw[m[1]:end])

		if title != "" {
			items = append(items, models.LegalSummaryItem{Title: title, Content: content})
		}
	}

	if len(items) == 0 {
		items = append(items, models.LegalSummaryItem{Title: "Summary", Content: raw})
	}
	return items
}

var (
	timelineBoldRe       = regexp.MustCompile(`^\*\*([^*]+)\*\*:\s*(.*)`)
	timelineBulletBoldRe = regexp.MustCompile(`^-\s+\*\*([^*]+)\*\*:\s*(.*)`)
)

// ParseTimelineJSON parses a JSON-origin timeline: every non-empty line
// stands alone, with an optional leading "**Label**: detail" bold marker.
func ParseTimelineJSON(content string) []models.TimelineEntry {
	var entries []models.TimelineEntry
	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		line = strings.TrimLeft(strings.TrimSpace(line), "- ")
		if line == "" {
			continue
		}
		if m := timelineBoldRe.FindStringSubmatch(line); m != nil {
			entries = append(entries, models.TimelineEntry{
				Label:  strings.TrimSpace(m[1]),
				Detail: strings.TrimSpace(m[2]),
			})
		} else {
			entries = append(entries, models.TimelineEntry{Detail: line})
		}
	}
	return entries
}

// ParseTimelineMarkdown parses a markdown-origin timeline where a new entry
// starts only on a dash-bulleted line carrying bold markup; non-bulleted
// lines accumulate onto the current entry as continuation detail. This is not
// interchangeable with ParseTimelineJSON: markdown timelines rely on the
// bullet convention that JSON timelines lack.
func ParseTimelineMarkdown(content string) []models.TimelineEntry {
	var entries []models.TimelineEntry
	var label string
	var detail []string
	started := false

	flush := func() {
		if started {
			entries = append(entries, models.TimelineEntry{
				Label:  label,
				Detail: strings.TrimSpace(strings.Join(detail, "\n")),
			})
		}
	}

	for _, original := range strings.Split(strings.TrimSpace(content), "\n") {
		clean := strings.TrimSpace(original)
		if clean == "" || strings.ReplaceAll(clean, "*", "") == "Chronological Event Timeline" {
			continue
		}

		if strings.HasPrefix(original, "- ") && strings.Contains(clean, "**") {
			flush()
			started = true
			if m := timelineBulletBoldRe.FindStringSubmatch(original); m != nil {
				label = strings.TrimSpace(m[1])
				detail = nil
				if d := strings.TrimSpace(m[2]); d != "" {
					detail = []string{d}
				}
			} else {
				label = ""
				detail = []string{original}
			}
		} else {
			if !started {
				started = true
				label = ""
				detail = nil
			}
			detail = append(detail, original)
		}
	}
	flush()
	return entries
}

var (
	auditHeadingRe    = regexp.MustCompile(`^#{2,4}\s+(?:\*\*)?(.*?)(?:\*\*)?:?\s*$`)
	auditAltHeadingRe = regexp.MustCompile(`^\*\*([^*]+)\*\*:?\s*$`)
	auditScoreLineRe  = regexp.MustCompile(`(?i)^\s*(?:\*\*)?Score:`)
	lapseLabelRe      = regexp.MustCompile(`(?i)Lapse Severity Score`)
	bulletBoldRe      = regexp.MustCompile(`^(?:-|\*|\d+\.)\s+\*\*([^*]+)\*\*:?\s*(.*)`)
	numberedLineRe    = regexp.MustCompile(`^(?:\d+\.)\s+(.*)`)
	boldEdgeRe        = regexp.MustCompile(`^\*\*|\*\*$`)
)

// ParseAuditSubsections walks cleaned audit content into a heading/items
// tree. Headings are strict marker lines, or standalone bold-only lines when
// short enough not to be a sentence and not a score/observations/rationale
// label. That disambiguation keeps inline emphasis from opening a new
// subsection. With no heading recognized at all, the raw content lands in a
// single "Audit Summary" catch-all.
func ParseAuditSubsections(content string) []models.AuditSubsection {
	var subsections []models.AuditSubsection
	var heading string
	var items []models.AuditItem

	flush := func() {
		if heading != "" {
			subsections = append(subsections, models.AuditSubsection{Heading: heading, Items: items})
		}
	}

	for _, original := range strings.Split(strings.TrimSpace(content), "\n") {
		line := strings.TrimSpace(original)
		if line == "" || line == "---" {
			continue
		}

		// Residual score labels must not become headings or items.
		if lapseLabelRe.MatchString(line) || auditScoreLineRe.MatchString(line) ||
			strings.Contains(line, "Observations/Lapses") {
			continue
		}

		hm := auditHeadingRe.FindStringSubmatch(line)
		am := auditAltHeadingRe.FindStringSubmatch(line)
		if am != nil && (strings.Contains(line, "Score:") || len(line) > 60 ||
			strings.Contains(line, "Observations") || strings.Contains(line, "Rationale")) {
			am = nil
		}

		if hm != nil || am != nil {
			flush()
			if hm != nil {
				heading = hm[1]
			} else {
				heading = am[1]
			}
			heading = strings.TrimRight(strings.TrimSpace(heading), ":")
			heading = strings.TrimSpace(boldEdgeRe.ReplaceAllString(heading, ""))
			items = nil
			continue
		}

		if m := bulletBoldRe.FindStringSubmatch(line); m != nil {
			items = append(items, models.AuditItem{
				Title:  strings.TrimSpace(m[1]),
				Detail: strings.TrimSpace(m[2]),
			})
			continue
		}

		if m := numberedLineRe.FindStringSubmatch(line); m != nil &&
			!strings.HasPrefix(original, " ") && !strings.HasPrefix(original, "\t") {
			items = append(items, models.AuditItem{Detail: strings.TrimSpace(m[1])})
			continue
		}

		// Continuation of the previous item, or a title-less opener.
		if len(items) > 0 {
			last := &items[len(items)-1]
			if last.Detail != "" {
				last.Detail += "\n" + line
			} else {
				last.Detail = line
			}
		} else {
			items = append(items, models.AuditItem{Detail: line})
		}
	}
	flush()

	if len(subsections) == 0 && strings.TrimSpace(content) != "" {
		subsections = append(subsections, models.AuditSubsection{
			Heading: "Audit Summary",
			Items:   []models.AuditItem{{Detail: strings.TrimSpace(content)}},
		})
	}
	return subsections
}
