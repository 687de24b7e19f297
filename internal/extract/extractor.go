package extract

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"fnolagent/internal/cache"
	"fnolagent/internal/llm"
	"fnolagent/internal/model"
)

// ExtractionError means the provider could not produce a usable structured
// record: the API call failed, no JSON could be recovered from the response,
// or the recovered JSON violated the record schema. Not retried here.
type ExtractionError struct {
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extraction failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("extraction failed: %s", e.Reason)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Extractor turns raw document text into a StructuredClaimRecord via an LLM
// provider. Responses are schema-validated before unmarshalling; valid raw
// responses are cached by document content hash.
type Extractor struct {
	provider llm.Provider
	cache    cache.Cache // nil disables caching
	schema   *jsonschema.Schema

	maxTokens        int
	maxDocumentBytes int
}

// Option configures an Extractor
type Option func(*Extractor)

// WithCache enables extraction caching
func WithCache(c cache.Cache) Option {
	return func(e *Extractor) { e.cache = c }
}

// WithMaxTokens caps the provider response length
func WithMaxTokens(n int) Option {
	return func(e *Extractor) { e.maxTokens = n }
}

// WithMaxDocumentBytes caps how much document text is sent to the provider
func WithMaxDocumentBytes(n int) Option {
	return func(e *Extractor) { e.maxDocumentBytes = n }
}

// NewExtractor creates an extractor backed by the given provider
func NewExtractor(provider llm.Provider, opts ...Option) (*Extractor, error) {
	if provider == nil {
		return nil, fmt.Errorf("extractor requires an LLM provider")
	}

	schema, err := compileRecordSchema()
	if err != nil {
		return nil, fmt.Errorf("record schema: %w", err)
	}

	e := &Extractor{
		provider:         provider,
		schema:           schema,
		maxTokens:        2048,
		maxDocumentBytes: 200_000,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Extract produces a structured record from raw document text, or fails
// with an *ExtractionError.
func (e *Extractor) Extract(ctx context.Context, documentText string) (*model.StructuredClaimRecord, error) {
	if len(documentText) > e.maxDocumentBytes {
		documentText = documentText[:e.maxDocumentBytes]
	}

	key := cache.Key(documentText)
	if e.cache != nil {
		if raw, found := e.cache.Get(key); found {
			if record, err := e.decode(raw); err == nil {
				return record, nil
			}
			// Stale or corrupt entry: drop it and extract fresh
			_ = e.cache.Delete(key)
		}
	}

	resp, err := e.provider.Complete(ctx, llm.CompletionRequest{
		System:      systemPrompt,
		Prompt:      BuildPrompt(documentText),
		MaxTokens:   e.maxTokens,
		Temperature: 0.1,
	})
	if err != nil {
		return nil, &ExtractionError{Reason: "provider call failed", Err: err}
	}

	raw, err := ScrapeJSON(resp.Text)
	if err != nil {
		return nil, &ExtractionError{Reason: "no JSON in response", Err: err}
	}

	record, err := e.decode([]byte(raw))
	if err != nil {
		return nil, &ExtractionError{Reason: "malformed record", Err: err}
	}

	if e.cache != nil {
		_ = e.cache.Set(key, []byte(raw), 0)
	}

	return record, nil
}

// decode validates raw JSON against the record schema and unmarshals it
func (e *Extractor) decode(raw []byte) (*model.StructuredClaimRecord, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	if err := e.schema.Validate(v); err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	var record model.StructuredClaimRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("unmarshal record: %w", err)
	}
	return &record, nil
}
