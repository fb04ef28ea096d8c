package seo

import (
	"context"
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"time"

	"seo-assistant/internal/models"
)

// fakeBackend stands in for Gemini: per-model canned responses or errors,
// with an optional delay to exercise the attempt timeout.
type fakeBackend struct {
	responses map[string]string
	errs      map[string]error
	delay     time.Duration
	calls     []string
}

func (f *fakeBackend) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	f.calls = append(f.calls, model)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if err := f.errs[model]; err != nil {
		return "", err
	}
	return f.responses[model], nil
}

func testClient(backend textGenerator, candidates []string, timeout time.Duration) *Client {
	return &Client{
		cfg: Config{
			ModelCandidates: candidates,
			AttemptTimeout:  timeout,
		},
		backend:    backend,
		heuristics: testHeuristics(42),
	}
}

const validResponse = `Here you go:
{
  "optimizedTitle": "Bake Perfect Sourdough at Home - Complete Guide 2025",
  "seoDescription": "A long description.",
  "bestTags": ["sourdough", "baking"],
  "trendingHashtags": ["#Sourdough", "#Baking"],
  "seoScore": 82,
  "improvementTips": ["tip one", "tip two", "tip three", "tip four", "tip five"]
}
Good luck!`

func TestGenerateFirstCandidateWins(t *testing.T) {
	backend := &fakeBackend{responses: map[string]string{
		"model-a": validResponse,
		"model-b": validResponse,
	}}
	c := testClient(backend, []string{"model-a", "model-b"}, time.Second)

	bundle, report := c.GenerateWithReport(context.Background(), sourdoughContext())

	if report.Source != SourceModel {
		t.Fatalf("Source = %s, want %s", report.Source, SourceModel)
	}
	if report.Model != "model-a" {
		t.Errorf("Model = %s, want model-a", report.Model)
	}
	if len(report.Attempts) != 0 {
		t.Errorf("Attempts = %v, want none", report.Attempts)
	}
	if len(backend.calls) != 1 {
		t.Errorf("backend called %d times, want 1 (no quota wasted after success)", len(backend.calls))
	}
	if bundle.SEOScore != 82 {
		t.Errorf("SEOScore = %d, want 82", bundle.SEOScore)
	}
	if bundle.OptimizedTitle != "Bake Perfect Sourdough at Home - Complete Guide 2025" {
		t.Errorf("unexpected title %q", bundle.OptimizedTitle)
	}
}

func TestGenerateAdvancesPastFailures(t *testing.T) {
	backend := &fakeBackend{
		errs: map[string]error{
			"model-a": errors.New("quota exceeded"),
		},
		responses: map[string]string{
			"model-b": "I could not produce JSON, sorry.",
			"model-c": validResponse,
		},
	}
	c := testClient(backend, []string{"model-a", "model-b", "model-c"}, time.Second)

	_, report := c.GenerateWithReport(context.Background(), sourdoughContext())

	if report.Source != SourceModel || report.Model != "model-c" {
		t.Fatalf("winner = %s/%s, want model/model-c", report.Source, report.Model)
	}
	if len(report.Attempts) != 2 {
		t.Fatalf("Attempts = %d, want 2", len(report.Attempts))
	}
	if !strings.Contains(report.Attempts[0].Error, "quota exceeded") {
		t.Errorf("first attempt error = %q, want quota error", report.Attempts[0].Error)
	}
	if report.Attempts[1].Error != "no JSON object in response" {
		t.Errorf("second attempt error = %q", report.Attempts[1].Error)
	}
}

func TestGenerateFallsBackWhenAllCandidatesFail(t *testing.T) {
	backend := &fakeBackend{
		errs: map[string]error{
			"model-a": errors.New("boom"),
			"model-b": errors.New("boom"),
		},
	}
	c := testClient(backend, []string{"model-a", "model-b"}, time.Second)

	ctx := sourdoughContext()
	bundle, report := c.GenerateWithReport(context.Background(), ctx)

	if report.Source != SourceHeuristic {
		t.Fatalf("Source = %s, want %s", report.Source, SourceHeuristic)
	}
	if report.Reason != "all model candidates failed" {
		t.Errorf("Reason = %q", report.Reason)
	}
	if len(report.Attempts) != 2 {
		t.Errorf("Attempts = %d, want 2", len(report.Attempts))
	}

	// The fallback must be exactly what the heuristic generator produces
	// for the same context and seed.
	want := NewHeuristics(rand.New(rand.NewSource(42))).GenerateFallback(ctx)
	if !reflect.DeepEqual(bundle, want) {
		t.Error("fallback bundle differs from direct heuristic output")
	}
}

func TestGenerateMalformedResponsesExhaustAllCandidates(t *testing.T) {
	backend := &fakeBackend{responses: map[string]string{
		"model-a": "plain prose, nothing structured",
		"model-b": `{"optimizedTitle": broken`,
	}}
	c := testClient(backend, []string{"model-a", "model-b"}, time.Second)

	_, report := c.GenerateWithReport(context.Background(), sourdoughContext())

	if report.Source != SourceHeuristic {
		t.Fatalf("Source = %s, want heuristic", report.Source)
	}
	if len(backend.calls) != 2 {
		t.Errorf("backend called %d times, want 2", len(backend.calls))
	}
	if report.Attempts[0].Error != "no JSON object in response" {
		t.Errorf("first attempt error = %q", report.Attempts[0].Error)
	}
}

func TestGenerateAttemptTimeout(t *testing.T) {
	backend := &fakeBackend{
		delay:     200 * time.Millisecond,
		responses: map[string]string{"model-a": validResponse},
	}
	c := testClient(backend, []string{"model-a"}, 10*time.Millisecond)

	bundle, report := c.GenerateWithReport(context.Background(), sourdoughContext())

	if report.Source != SourceHeuristic {
		t.Fatalf("Source = %s, want heuristic after timeout", report.Source)
	}
	if len(report.Attempts) != 1 || !strings.Contains(report.Attempts[0].Error, "timeout") {
		t.Errorf("Attempts = %v, want one timeout", report.Attempts)
	}
	if bundle == nil {
		t.Fatal("bundle is nil")
	}
}

func TestGenerateWithoutCredential(t *testing.T) {
	c, err := NewClient(Config{}, testHeuristics(42))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	bundle, report := c.GenerateWithReport(context.Background(), sourdoughContext())

	if report.Source != SourceHeuristic {
		t.Fatalf("Source = %s, want heuristic", report.Source)
	}
	if report.Reason != "no API key configured" {
		t.Errorf("Reason = %q", report.Reason)
	}
	if len(report.Attempts) != 0 {
		t.Errorf("Attempts = %v, want none (no attempt without credential)", report.Attempts)
	}
	if bundle == nil || bundle.OptimizedTitle == "" {
		t.Error("expected a usable heuristic bundle")
	}
}

func TestGenerateNeverReturnsNil(t *testing.T) {
	backend := &fakeBackend{errs: map[string]error{"model-a": errors.New("down")}}
	c := testClient(backend, []string{"model-a"}, time.Second)

	if bundle := c.Generate(context.Background(), &models.VideoContext{}); bundle == nil {
		t.Fatal("Generate returned nil bundle")
	}
}

func TestClampBundle(t *testing.T) {
	b := &models.SuggestionBundle{
		SEOScore:         150,
		BestTags:         make([]string, 50),
		TrendingHashtags: make([]string, 20),
	}
	clampBundle(b)
	if b.SEOScore != 100 {
		t.Errorf("SEOScore = %d, want 100", b.SEOScore)
	}
	if len(b.BestTags) != 35 || len(b.TrendingHashtags) != 12 {
		t.Errorf("tags/hashtags = %d/%d, want 35/12", len(b.BestTags), len(b.TrendingHashtags))
	}

	b.SEOScore = -5
	clampBundle(b)
	if b.SEOScore != 0 {
		t.Errorf("SEOScore = %d, want 0", b.SEOScore)
	}
}

func TestBuildPromptIncludesContextAndShape(t *testing.T) {
	ctx := sourdoughContext()
	ctx.Description = strings.Repeat("x", 1500)
	ctx.Channel.Title = "Bread Channel"
	prompt := buildPrompt(ctx)

	for _, want := range []string{
		ctx.Title,
		"Bread Channel",
		`"optimizedTitle"`,
		`"seoDescription"`,
		`"bestTags"`,
		`"trendingHashtags"`,
		`"seoScore"`,
		`"improvementTips"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	// Description is truncated to 1000 chars plus ellipsis.
	if strings.Contains(prompt, strings.Repeat("x", 1001)) {
		t.Error("description not truncated")
	}
	if !strings.Contains(prompt, strings.Repeat("x", 1000)+"...") {
		t.Error("truncated description marker missing")
	}
}
