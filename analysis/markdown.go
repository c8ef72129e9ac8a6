package analysis

import (
	"regexp"
	"strconv"
	"strings"
)

// Section is one titled chunk of an analysis document. For the audit section
// the splitter also lifts the embedded severity score and justification out
// of the quoted lines, leaving Content clean for the subsection parser.
type Section struct {
	Content            string
	SeverityScore      *int
	ScoreJustification string
}

var (
	sectionHeadingRe = regexp.MustCompile(`(?m)^##\s+(.*)$`)
	trailingRuleRe   = regexp.MustCompile(`\n*---+\s*$`)
	processedOnRe    = regexp.MustCompile(`\*Processed on:\s+(.*?)\*`)

	quotedScoreRe         = regexp.MustCompile(`(?i)>\s*\*\*[a-zA-Z\s]*Score:\s*(\d+)(?:/10)?.*?\*\*`)
	quotedJustificationRe = regexp.MustCompile(`>\s*\*\*Justification:\*\*\s*([^\n]*)`)
	blockquoteLineRe      = regexp.MustCompile(`(?m)^>.*$`)

	codeFenceLineRe = regexp.MustCompile("(?m)^\\s*```\\w*\\s*$")
	headingLineRe   = regexp.MustCompile(`(?m)^\s*#+ .*$`)
	horizontalRe    = regexp.MustCompile(`(?m)^\s*---+\s*$`)

	boldRe = regexp.MustCompile(`\*\*([^*]*?)\*\*`)
)

// ExtractProcessedOn pulls the "*Processed on: ...*" stamp from a report.
func ExtractProcessedOn(md string) string {
	if m := processedOnRe.FindStringSubmatch(md); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// StripBold removes ** markers from text.
func StripBold(text string) string {
	if text == "" {
		return text
	}
	return boldRe.ReplaceAllString(text, "$1")
}

// StripCodeFences removes code fence wrappers, heading lines, and horizontal
// rules so table detection sees only candidate rows.
func StripCodeFences(text string) string {
	if text == "" {
		return text
	}
	text = codeFenceLineRe.ReplaceAllString(text, "")
	text = headingLineRe.ReplaceAllString(text, "")
	text = horizontalRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// SplitSections splits a markdown report on "## <Title>" headings into a map
// keyed by title. Text before the first heading is discarded. Titles are
// unique within one document, so the map loses nothing.
func SplitSections(md string) map[string]Section {
	sections := make(map[string]Section)

	matches := sectionHeadingRe.FindAllStringSubmatchIndex(md, -1)
	for i, m := range matches {
		title := strings.TrimSpace(md[m[2]:m[3]])
		end := len(md)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		content := strings.TrimSpace(md[m[1]:end])
		content = strings.TrimSpace(trailingRuleRe.ReplaceAllString(content, ""))

		sec := Section{Content: content}

		if strings.Contains(title, "Investigation Quality Audit") {
			if sm := quotedScoreRe.FindStringSubmatch(content); sm != nil {
				score, _ := strconv.Atoi(sm[1])
				sec.SeverityScore = &score
			}
			if jm := quotedJustificationRe.FindStringSubmatch(content); jm != nil {
				sec.ScoreJustification = strings.TrimSpace(jm[1])
			}
			// Drop the quoted lines so the subsection parser runs on
			// clean prose.
			sec.Content = strings.TrimSpace(blockquoteLineRe.ReplaceAllString(content, ""))
		}

		sections[title] = sec
	}

	return sections
}

// verticalHeaders flag a table laid out as Field/Value pairs rather than one
// record per row.
var verticalHeaders = map[string]bool{
	"field":          true,
	"metadata field": true,
}

// ParseTable converts a pipe-delimited markdown table into row maps. Rows are
// padded (or truncated) to the header width. When the first header is a
// Field/Value marker the whole table collapses into a single map keyed by
// lower-cased field names. Anything that does not look like a table (fewer
// than header + separator + one row) yields nil.
func ParseTable(content string) []map[string]string {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	cleaned := StripCodeFences(content)
	if cleaned == "" {
		return nil
	}

	var tableLines []string
	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "|") {
			tableLines = append(tableLines, line)
		}
	}
	if len(tableLines) < 3 {
		return nil
	}

	var headers []string
	for _, h := range strings.Split(strings.Trim(tableLines[0], "|"), "|") {
		h = StripBold(strings.TrimSpace(h))
		h = strings.ReplaceAll(h, ":", "")
		headers = append(headers, strings.TrimSpace(h))
	}

	var rows []map[string]string
	// tableLines[1] is the separator row.
	for _, line := range tableLines[2:] {
		cols := strings.Split(strings.Trim(line, "|"), "|")
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			val := ""
			if i < len(cols) {
				// Bold markup on values is kept on purpose; the
				// presentation layer renders it.
				val = strings.TrimSpace(cols[i])
			}
			row[header] = val
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil
	}

	if len(headers) >= 2 && verticalHeaders[strings.ToLower(headers[0])] {
		mapped := make(map[string]string)
		for _, r := range rows {
			name := strings.ToLower(strings.TrimSpace(r[headers[0]]))
			if name != "" {
				mapped[name] = r[headers[1]]
			}
		}
		if len(mapped) > 0 {
			return []map[string]string{mapped}
		}
		return nil
	}

	return rows
}
