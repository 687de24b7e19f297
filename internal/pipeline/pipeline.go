package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"fnolagent/internal/cache"
	"fnolagent/internal/extract"
	"fnolagent/internal/llm"
	"fnolagent/internal/model"
	"fnolagent/internal/route"
	"fnolagent/internal/validate"
)

// FieldExtractor abstracts the LLM extraction step
type FieldExtractor interface {
	Extract(ctx context.Context, documentText string) (*model.StructuredClaimRecord, error)
}

// Pipeline orchestrates the complete claim intake process:
// read, extract, validate, route, persist.
type Pipeline struct {
	extractor FieldExtractor
	validator *validate.Validator
	engine    *route.Engine
	store     *Store
	provider  string
	config    *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(ctx context.Context, cfg *model.Config) (*Pipeline, error) {
	if cfg.LLM.Provider == "" {
		return nil, fmt.Errorf("no LLM provider configured")
	}

	provider, err := llm.NewProvider(ctx, llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return nil, fmt.Errorf("initialize LLM provider: %w", err)
	}

	opts := []extract.Option{}
	if cfg.LLM.MaxTokens > 0 {
		opts = append(opts, extract.WithMaxTokens(cfg.LLM.MaxTokens))
	}
	if cfg.Extraction.MaxDocumentBytes > 0 {
		opts = append(opts, extract.WithMaxDocumentBytes(cfg.Extraction.MaxDocumentBytes))
	}
	if cfg.Cache.Enabled {
		opts = append(opts, extract.WithCache(
			cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)))
	}

	extractor, err := extract.NewExtractor(provider, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize extractor: %w", err)
	}

	return &Pipeline{
		extractor: extractor,
		validator: validate.NewValidator(validate.DefaultChecks()),
		engine:    route.NewEngine(route.PolicyFromConfig(cfg.Routing)),
		store:     NewStore(cfg.Output.Dir),
		provider:  provider.Name(),
		config:    cfg,
	}, nil
}

// ProviderName reports which LLM provider backs the extraction step
func (p *Pipeline) ProviderName() string {
	return p.provider
}

// Store exposes the result store for summary persistence and rendering
func (p *Pipeline) Store() *Store {
	return p.store
}

// ProcessFile processes a single FNOL document end to end and persists the
// per-claim result.
func (p *Pipeline) ProcessFile(ctx context.Context, path string) (*model.ClaimResult, error) {
	text, err := ReadDocument(path)
	if err != nil {
		return nil, err
	}

	record, err := p.extractor.Extract(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("extract fields: %w", err)
	}

	missing := p.validator.Validate(record)
	decision := p.engine.Route(record, missing)

	result := model.NewClaimResult(filepath.Base(path), record, decision)

	savedPath, err := p.store.SaveResult(result)
	if err != nil {
		return nil, fmt.Errorf("save result: %w", err)
	}
	if p.config.Output.Verbose {
		fmt.Printf("✓ Wrote result: %s\n", savedPath)
	}

	return result, nil
}
