package core

import (
	"context"
	"fmt"
	"log/slog"

	"paramclean/internal/report"
	"paramclean/internal/rewrite"
	"paramclean/pkg/document"
)

// DefaultTarget is the generated service file the cleanup was written for.
const DefaultTarget = "ExamLab/ExamLab/Services/ExcelKnowledgeService.cs"

// Plan is the outcome of running the cleanup in memory, before anything is written.
type Plan struct {
	Path    string
	Result  *document.Document
	Edits   []rewrite.Edit
	Summary report.Summary
}

// Processor reads a document, applies the cleanup rules and writes it back.
type Processor struct {
	store  DocumentStore
	rules  rewrite.Rules
	logger *slog.Logger
}

// NewProcessor creates a Processor using rewrite.DefaultRules.
func NewProcessor(store DocumentStore, logger *slog.Logger) *Processor {
	return &Processor{
		store:  store,
		rules:  rewrite.DefaultRules,
		logger: logger,
	}
}

// Plan loads the document at path and computes the cleaned result without saving it.
func (p *Processor) Plan(ctx context.Context, path string) (*Plan, error) {
	content, err := p.store.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	doc, err := document.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	kept, deleted := rewrite.StripTrailingCommaMarkers(doc.Lines, p.rules.Delete)
	substituted := (&document.Document{Lines: kept}).Count(p.rules.Substitute.From)
	result := &document.Document{
		Lines: rewrite.SubstituteLiteral(kept, p.rules.Substitute.From, p.rules.Substitute.To),
	}

	edits := rewrite.Diff(doc.Lines, p.rules)
	for _, e := range edits {
		p.logger.Debug("edit", "line", e.Line, "kind", e.Kind.String())
	}

	return &Plan{
		Path:   path,
		Result: result,
		Edits:  edits,
		Summary: report.Summary{
			Path:             path,
			OriginalLines:    doc.Len(),
			NewLines:         result.Len(),
			Deleted:          deleted,
			Substituted:      substituted,
			RemainingMarkers: result.Count(p.rules.Delete.Marker),
		},
	}, nil
}

// Apply writes a previously computed plan back to its path.
func (p *Processor) Apply(ctx context.Context, plan *Plan) (*report.Summary, error) {
	if err := p.store.Save(ctx, plan.Path, plan.Result.Bytes()); err != nil {
		return nil, err
	}
	summary := plan.Summary
	p.logger.Info("cleanup completed",
		"path", summary.Path,
		"deleted", summary.Deleted,
		"substituted", summary.Substituted,
		"remaining_markers", summary.RemainingMarkers,
	)
	return &summary, nil
}

// Cleanup rewrites the document at path in place and returns the summary counts.
func (p *Processor) Cleanup(ctx context.Context, path string) (*report.Summary, error) {
	plan, err := p.Plan(ctx, path)
	if err != nil {
		return nil, err
	}
	return p.Apply(ctx, plan)
}

// DryRun reports what Cleanup would do without writing anything.
func (p *Processor) DryRun(ctx context.Context, path string) (*report.Summary, error) {
	plan, err := p.Plan(ctx, path)
	if err != nil {
		return nil, err
	}
	summary := plan.Summary
	summary.DryRun = true
	p.logger.Info("dry run", "path", path, "edits", len(plan.Edits))
	return &summary, nil
}
