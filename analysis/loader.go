package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/224saisrikanth/Judment-analysis/models"
	"github.com/224saisrikanth/Judment-analysis/storage"
)

// ErrNotFound is returned when a slug resolves to no backing document.
var ErrNotFound = errors.New("analysis not found")

const (
	// DefaultAnalysisDir holds markdown reports and standard JSON exports.
	DefaultAnalysisDir = "analysis_documents"
	// DefaultNPADir holds the NPA family of JSON exports.
	DefaultNPADir = "npa_analysis_documents"

	defaultConcurrency = 8

	sourceStandard = "Standard"
	sourceNPA      = "NPA"
)

// Loader discovers analysis documents in storage and parses them into
// canonical list and detail records.
type Loader struct {
	store       storage.Storage
	analysisDir string
	npaDir      string
	concurrency int
}

// NewAnalysisLoader creates a loader over the given document storage.
func NewAnalysisLoader(store storage.Storage, opts ...LoaderOption) *Loader {
	l := &Loader{
		store:       store,
		analysisDir: DefaultAnalysisDir,
		npaDir:      DefaultNPADir,
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoaderOption configures the loader
type LoaderOption func(*Loader)

// WithAnalysisDir overrides the standard document directory
func WithAnalysisDir(dir string) LoaderOption {
	return func(l *Loader) {
		l.analysisDir = dir
	}
}

// WithNPADir overrides the NPA document directory
func WithNPADir(dir string) LoaderOption {
	return func(l *Loader) {
		l.npaDir = dir
	}
}

// WithConcurrency bounds the number of documents parsed in parallel
func WithConcurrency(n int) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.concurrency = n
		}
	}
}

// jsonExport mirrors the JSON analysis export schema.
type jsonExport struct {
	FileName    string                 `json:"file_name"`
	ProcessedOn string                 `json:"processed_on"`
	Sections    map[string]jsonSection `json:"sections"`
}

type jsonSection struct {
	Content            string `json:"content"`
	SeverityScore      *int   `json:"severity_score"`
	ScoreJustification string `json:"score_justification"`
}

func (e *jsonExport) sections() map[string]Section {
	out := make(map[string]Section, len(e.Sections))
	for title, sec := range e.Sections {
		out[title] = Section{
			Content:            sec.Content,
			SeverityScore:      sec.SeverityScore,
			ScoreJustification: sec.ScoreJustification,
		}
	}
	return out
}

// task is one discovered document pending a parse.
type task struct {
	dir    string
	name   string
	kind   docKind
	slug   string
	source string
}

func (l *Loader) discover(ctx context.Context) ([]task, error) {
	var tasks []task

	stdNames, err := l.store.List(ctx, l.analysisDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list analysis documents: %w", err)
	}
	for _, name := range stdNames {
		if strings.HasSuffix(name, "_analysis.md") {
			tasks = append(tasks, task{
				dir:    l.analysisDir,
				name:   name,
				kind:   kindMarkdown,
				slug:   strings.TrimSuffix(name, "_analysis.md"),
				source: sourceStandard,
			})
		}
	}
	for _, name := range stdNames {
		if strings.HasSuffix(name, ".json") {
			tasks = append(tasks, task{
				dir:    l.analysisDir,
				name:   name,
				kind:   kindJSON,
				slug:   "std_" + strings.TrimSuffix(name, ".json"),
				source: sourceStandard,
			})
		}
	}

	npaNames, err := l.store.List(ctx, l.npaDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list NPA documents: %w", err)
	}
	for _, name := range npaNames {
		if strings.HasSuffix(name, ".json") {
			tasks = append(tasks, task{
				dir:    l.npaDir,
				name:   name,
				kind:   kindJSON,
				slug:   "npa_" + strings.TrimSuffix(name, ".json"),
				source: sourceNPA,
			})
		}
	}

	return tasks, nil
}

func (l *Loader) parseSummary(ctx context.Context, t task) (*models.AnalysisSummary, error) {
	data, err := l.store.Read(ctx, t.dir+"/"+t.name)
	if err != nil {
		return nil, err
	}

	var summary models.AnalysisSummary
	if t.kind == kindJSON {
		var export jsonExport
		if err := json.Unmarshal(data, &export); err != nil {
			return nil, err
		}
		filename := export.FileName
		if filename == "" {
			filename = t.name
		}
		summary = assembleSummary(t.slug, filename, export.ProcessedOn, t.source, kindJSON, export.sections())
	} else {
		md := string(data)
		summary = assembleSummary(t.slug, t.name, ExtractProcessedOn(md), t.source, kindMarkdown, SplitSections(md))
	}
	return &summary, nil
}

// List scans both document directories and returns the batch aggregate.
// Documents are parsed concurrently; an unreadable or malformed document is
// skipped and counted, never fatal. Aggregation runs only after every parse
// has completed.
func (l *Loader) List(ctx context.Context) (*models.AnalysisList, error) {
	tasks, err := l.discover(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*models.AnalysisSummary, len(tasks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)
	for i, t := range tasks {
		g.Go(func() error {
			summary, err := l.parseSummary(gctx, t)
			if err != nil {
				// Skipped, counted after the batch completes.
				return nil
			}
			results[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	list := &models.AnalysisList{
		Analyses: make([]models.AnalysisSummary, 0, len(results)),
		Outcomes: map[string]int{"Acquitted": 0, "Convicted": 0, "Unknown": 0},
	}

	var scoreSum, scoreCount int
	for _, summary := range results {
		if summary == nil {
			list.Skipped++
			continue
		}
		list.Analyses = append(list.Analyses, *summary)
		list.Outcomes[summary.Outcome]++
		if summary.SeverityScore != nil {
			scoreSum += *summary.SeverityScore
			scoreCount++
		}
	}
	list.Total = len(list.Analyses)
	if scoreCount > 0 {
		list.AvgSeverity = math.Round(float64(scoreSum)/float64(scoreCount)*10) / 10
	}

	return list, nil
}

// Detail resolves a slug to its backing document and parses the full detail
// record. Prefixed slugs resolve only against their own JSON family; a bare
// slug resolves only against a markdown report.
func (l *Loader) Detail(ctx context.Context, slug string) (*models.AnalysisDetail, error) {
	var t task
	switch {
	case strings.HasPrefix(slug, "npa_"):
		t = task{
			dir:    l.npaDir,
			name:   strings.TrimPrefix(slug, "npa_") + ".json",
			kind:   kindJSON,
			slug:   slug,
			source: sourceNPA,
		}
	case strings.HasPrefix(slug, "std_"):
		t = task{
			dir:    l.analysisDir,
			name:   strings.TrimPrefix(slug, "std_") + ".json",
			kind:   kindJSON,
			slug:   slug,
			source: sourceStandard,
		}
	default:
		t = task{
			dir:    l.analysisDir,
			name:   slug + "_analysis.md",
			kind:   kindMarkdown,
			slug:   slug,
			source: sourceStandard,
		}
	}

	data, err := l.store.Read(ctx, t.dir+"/"+t.name)
	if err != nil {
		return nil, ErrNotFound
	}

	var detail models.AnalysisDetail
	if t.kind == kindJSON {
		var export jsonExport
		if err := json.Unmarshal(data, &export); err != nil {
			return nil, ErrNotFound
		}
		filename := export.FileName
		if filename == "" {
			filename = t.name
		}
		detail = assembleDetail(t.slug, filename, export.ProcessedOn, t.source, kindJSON, export.sections())
	} else {
		md := string(data)
		detail = assembleDetail(t.slug, t.name, ExtractProcessedOn(md), t.source, kindMarkdown, SplitSections(md))
	}
	return &detail, nil
}
