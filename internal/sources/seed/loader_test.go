package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MrSnakeDoc/jumplink/internal/domain"
	"github.com/MrSnakeDoc/jumplink/internal/logger"
	"github.com/MrSnakeDoc/jumplink/internal/registry"
)

type recordingCreator struct {
	created []domain.LinkRecord
}

func (c *recordingCreator) CreateLocalLink(rawURL, code string) (domain.LinkRecord, error) {
	if !domain.ValidLinkURL(rawURL) {
		return domain.LinkRecord{}, domain.ErrInvalidInput
	}
	if code == "" {
		code = "gen001"
	}
	rec := domain.LinkRecord{Code: code, URL: rawURL}
	c.created = append(c.created, rec)
	return rec, nil
}

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "links.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}
	return path
}

func TestLoaderLoad(t *testing.T) {
	path := writeSeed(t, `links:
  - url: https://example.com/docs
    code: docs
  - url: "  https://example.com/blog  "
`)

	file, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(file.Links) != 2 {
		t.Fatalf("Load() returned %d links, want 2", len(file.Links))
	}
	if file.Links[0].Code != "docs" {
		t.Errorf("first code = %q, want docs", file.Links[0].Code)
	}
	if file.Links[1].URL != "https://example.com/blog" {
		t.Errorf("second url = %q, want trimmed url", file.Links[1].URL)
	}
}

func TestLoaderLoadFileNotFound(t *testing.T) {
	_, err := NewLoader("/nonexistent/path/links.yaml").Load()
	if err == nil {
		t.Error("Load() with non-existent file should return error")
	}
}

func TestLoaderLoadInvalidYAML(t *testing.T) {
	path := writeSeed(t, "links: [unclosed")

	_, err := NewLoader(path).Load()
	if err == nil {
		t.Error("Load() with invalid YAML should return error")
	}
}

func TestApplySkipsInvalidEntries(t *testing.T) {
	file := &File{Links: []Entry{
		{URL: "https://example.com/docs", Code: "docs"},
		{URL: "not-a-url"},
		{URL: "https://example.com/blog"},
	}}
	creator := &recordingCreator{}

	created := Apply(context.Background(), file, creator, logger.NewNop())

	if created != 2 {
		t.Errorf("Apply() created %d links, want 2", created)
	}
	if len(creator.created) != 2 {
		t.Errorf("creator saw %d links, want 2", len(creator.created))
	}
}

func TestApplyStopsWhenCancelled(t *testing.T) {
	file := &File{Links: []Entry{
		{URL: "https://example.com/docs"},
		{URL: "https://example.com/blog"},
	}}
	creator := &recordingCreator{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if created := Apply(ctx, file, creator, logger.NewNop()); created != 0 {
		t.Errorf("Apply() with cancelled ctx created %d links, want 0", created)
	}
}

func TestApplyBypassesProvider(t *testing.T) {
	blocking := &blockingShortener{release: make(chan struct{})}
	defer close(blocking.release)

	reg := registry.New(registry.Options{
		BaseURL:         "https://sho.rt",
		Provider:        blocking,
		ProviderTimeout: time.Hour,
	})
	file := &File{Links: []Entry{
		{URL: "https://example.com/docs", Code: "docs"},
		{URL: "https://example.com/blog"},
	}}

	done := make(chan int, 1)
	go func() { done <- Apply(context.Background(), file, reg, logger.NewNop()) }()

	select {
	case created := <-done:
		if created != 2 {
			t.Errorf("Apply() created %d links, want 2", created)
		}
	case <-time.After(time.Second):
		t.Fatal("Apply() waited on the shortening provider")
	}

	rec, err := reg.GetLink("docs")
	if err != nil {
		t.Fatalf("GetLink(docs) error = %v", err)
	}
	if rec.ShortURL != "https://sho.rt/docs" {
		t.Errorf("ShortURL = %q, want https://sho.rt/docs", rec.ShortURL)
	}
}

type blockingShortener struct {
	release chan struct{}
}

func (s *blockingShortener) Shorten(context.Context, string) (string, error) {
	<-s.release
	return "", context.Canceled
}
