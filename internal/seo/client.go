package seo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"seo-assistant/internal/models"

	"google.golang.org/genai"
)

// DefaultModelCandidates is the ordered backend list tried by the client,
// most capable free-tier-friendly model first.
var DefaultModelCandidates = []string{
	"gemini-2.5-flash",
	"gemini-2.5-flash-lite",
	"gemini-2.0-flash",
	"gemini-1.5-flash",
	"gemini-1.5-flash-8b",
}

// DefaultAttemptTimeout bounds a single model attempt. Generation is
// allowed to take a while; quality over speed.
const DefaultAttemptTimeout = 60 * time.Second

// Config carries everything the client needs. There is no process-wide
// state: each Client owns its credential and candidate list.
type Config struct {
	APIKey          string
	ModelCandidates []string
	AttemptTimeout  time.Duration
}

// Client orchestrates suggestion generation: it tries the configured model
// candidates in order and falls back to the local heuristic generator when
// no credential is set or every candidate fails. Generate never returns an
// error; the caller always gets a usable bundle.
type Client struct {
	cfg        Config
	backend    textGenerator
	heuristics *Heuristics
}

// textGenerator is the remote capability the client needs: one prompt in,
// free-form text out. Kept narrow so tests can stand in for Gemini.
type textGenerator interface {
	GenerateText(ctx context.Context, model, prompt string) (string, error)
}

// NewClient creates a suggestion client. An empty API key is allowed and
// routes every Generate call straight to the heuristic generator.
func NewClient(cfg Config, heuristics *Heuristics) (*Client, error) {
	if len(cfg.ModelCandidates) == 0 {
		cfg.ModelCandidates = DefaultModelCandidates
	}
	if cfg.AttemptTimeout <= 0 {
		cfg.AttemptTimeout = DefaultAttemptTimeout
	}
	if heuristics == nil {
		heuristics = NewHeuristics(nil)
	}

	c := &Client{cfg: cfg, heuristics: heuristics}
	if cfg.APIKey != "" {
		client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey: cfg.APIKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		c.backend = &genaiBackend{client: client}
	}
	return c, nil
}

// Attempt records the outcome of one model candidate try.
type Attempt struct {
	Model string `json:"model"`
	Error string `json:"error"`
}

// Report makes the generation decision path inspectable: which source
// produced the bundle, which model won, and what each failed attempt hit.
type Report struct {
	Source   string    `json:"source"` // "model" or "heuristic"
	Model    string    `json:"model,omitempty"`
	Reason   string    `json:"reason,omitempty"`
	Attempts []Attempt `json:"attempts,omitempty"`
}

const (
	SourceModel     = "model"
	SourceHeuristic = "heuristic"
)

// Generate produces a Suggestion Bundle for the context. It never fails:
// remote errors, timeouts and unparseable responses all degrade silently
// to heuristic output.
func (c *Client) Generate(ctx context.Context, video *models.VideoContext) *models.SuggestionBundle {
	bundle, _ := c.GenerateWithReport(ctx, video)
	return bundle
}

// GenerateWithReport is Generate with the decision path attached.
func (c *Client) GenerateWithReport(ctx context.Context, video *models.VideoContext) (*models.SuggestionBundle, *Report) {
	report := &Report{Source: SourceHeuristic}

	if c.backend == nil {
		report.Reason = "no API key configured"
		log.Println("Gemini API key missing, using heuristic suggestions")
		return c.heuristics.GenerateFallback(video), report
	}

	prompt := buildPrompt(video)
	for _, model := range c.cfg.ModelCandidates {
		text, err := c.tryModel(ctx, model, prompt)
		if err != nil {
			reason := err.Error()
			if errors.Is(err, context.DeadlineExceeded) {
				reason = fmt.Sprintf("timeout after %s", c.cfg.AttemptTimeout)
			}
			report.Attempts = append(report.Attempts, Attempt{Model: model, Error: reason})
			log.Printf("Model %s failed: %s", model, reason)
			continue
		}

		raw, ok := extractJSONObject(text)
		if !ok {
			report.Attempts = append(report.Attempts, Attempt{Model: model, Error: "no JSON object in response"})
			log.Printf("Model %s returned no JSON object", model)
			continue
		}

		var bundle models.SuggestionBundle
		if err := json.Unmarshal([]byte(raw), &bundle); err != nil {
			report.Attempts = append(report.Attempts, Attempt{Model: model, Error: fmt.Sprintf("malformed JSON: %v", err)})
			log.Printf("Model %s returned malformed JSON: %v", model, err)
			continue
		}

		clampBundle(&bundle)
		report.Source = SourceModel
		report.Model = model
		log.Printf("Model succeeded: %s", model)
		return &bundle, report
	}

	report.Reason = "all model candidates failed"
	log.Printf("All %d model candidates failed, using heuristic suggestions", len(c.cfg.ModelCandidates))
	return c.heuristics.GenerateFallback(video), report
}

func (c *Client) tryModel(ctx context.Context, model, prompt string) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.cfg.AttemptTimeout)
	defer cancel()

	text, err := c.backend.GenerateText(attemptCtx, model, prompt)
	if err != nil {
		if attemptCtx.Err() != nil {
			return "", attemptCtx.Err()
		}
		return "", err
	}
	if text == "" {
		return "", errors.New("empty response")
	}
	return text, nil
}

// RegenerateSection returns a copy of the bundle with exactly the named
// section replaced. The input bundle is never mutated. Unknown section
// names return false.
func (c *Client) RegenerateSection(section string, video *models.VideoContext, bundle *models.SuggestionBundle) (*models.SuggestionBundle, bool) {
	if video == nil {
		video = &models.VideoContext{}
	}
	out := bundle.Clone()
	if out == nil {
		out = &models.SuggestionBundle{}
	}

	switch section {
	case "title":
		out.OptimizedTitle = c.heuristics.RegenerateTitle(video, bundle)
	case "description":
		out.SEODescription = c.heuristics.RegenerateDescription(video, bundle)
	case "tags":
		out.BestTags = c.heuristics.RegenerateTags(video, bundle)
	case "hashtags":
		out.TrendingHashtags = c.heuristics.RegenerateHashtags(video, bundle)
	default:
		return nil, false
	}
	return out, true
}

// clampBundle keeps a model-produced bundle inside contract bounds.
func clampBundle(b *models.SuggestionBundle) {
	if b.SEOScore < 0 {
		b.SEOScore = 0
	} else if b.SEOScore > 100 {
		b.SEOScore = 100
	}
	if len(b.BestTags) > 35 {
		b.BestTags = b.BestTags[:35]
	}
	if len(b.TrendingHashtags) > 12 {
		b.TrendingHashtags = b.TrendingHashtags[:12]
	}
}

type genaiBackend struct {
	client *genai.Client
}

func (g *genaiBackend) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}
