package service

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"

	"envrt-site/internal/model"
)

// Average adult reading speed used for the reading-time estimate
const wordsPerMinute = 230

// InsightsService serves the insights blog from a directory of markdown
// files with YAML frontmatter. Posts load once at startup; the content dir
// ships with the binary and never changes at runtime.
type InsightsService struct {
	dir        string
	production bool

	mu    sync.RWMutex
	posts map[string]*model.InsightPost // by slug
	order []string                      // slugs, newest first
}

// NewInsightsService creates a new insights service. In production, draft
// posts are hidden.
func NewInsightsService(dir string, production bool) *InsightsService {
	return &InsightsService{
		dir:        dir,
		production: production,
		posts:      make(map[string]*model.InsightPost),
	}
}

// Load parses every .md file under the content dir. A malformed file fails
// the whole load so a bad deploy is caught at startup, not at request time.
func (s *InsightsService) Load() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("read insights dir: %w", err)
	}

	posts := make(map[string]*model.InsightPost)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		post, err := parsePost(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("parse %s: %w", entry.Name(), err)
		}
		if s.production && post.Draft {
			continue
		}
		if _, exists := posts[post.Slug]; exists {
			return fmt.Errorf("duplicate slug %q", post.Slug)
		}
		posts[post.Slug] = post
	}

	order := make([]string, 0, len(posts))
	for slug := range posts {
		order = append(order, slug)
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := posts[order[i]], posts[order[j]]
		if a.Date != b.Date {
			return a.Date > b.Date
		}
		return a.Slug < b.Slug
	})

	s.mu.Lock()
	s.posts = posts
	s.order = order
	s.mu.Unlock()
	return nil
}

// List returns post metadata newest first, optionally filtered by tag
func (s *InsightsService) List(tag string) []model.InsightMeta {
	s.mu.RLock()
	defer s.mu.RUnlock()

	metas := make([]model.InsightMeta, 0, len(s.order))
	for _, slug := range s.order {
		post := s.posts[slug]
		if tag != "" && !contains(post.Tags, tag) {
			continue
		}
		metas = append(metas, post.InsightMeta)
	}
	return metas
}

// Get returns one full post, or nil when the slug is unknown
func (s *InsightsService) Get(slug string) *model.InsightPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.posts[slug]
}

// Tags returns all tags in use, sorted
func (s *InsightsService) Tags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := map[string]bool{}
	for _, post := range s.posts {
		for _, tag := range post.Tags {
			seen[tag] = true
		}
	}
	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// parsePost splits "---" frontmatter from the body, renders the body and
// derives slug (from filename) and reading time.
func parsePost(path string) (*model.InsightPost, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	front, body, err := splitFrontmatter(raw)
	if err != nil {
		return nil, err
	}

	var meta model.InsightMeta
	if err := yaml.Unmarshal(front, &meta); err != nil {
		return nil, fmt.Errorf("frontmatter: %w", err)
	}
	if meta.Title == "" || meta.Date == "" {
		return nil, fmt.Errorf("frontmatter missing title or date")
	}

	var buf bytes.Buffer
	if err := markdown.Convert(body, &buf); err != nil {
		return nil, fmt.Errorf("markdown: %w", err)
	}

	meta.Slug = strings.TrimSuffix(filepath.Base(path), ".md")
	meta.ReadingTime = readingTime(body)

	return &model.InsightPost{
		InsightMeta: meta,
		HTML:        buf.String(),
	}, nil
}

func splitFrontmatter(raw []byte) (front, body []byte, err error) {
	const delim = "---"
	text := string(raw)
	if !strings.HasPrefix(text, delim) {
		return nil, nil, fmt.Errorf("missing frontmatter")
	}
	rest := text[len(delim):]
	end := strings.Index(rest, "\n"+delim)
	if end < 0 {
		return nil, nil, fmt.Errorf("unterminated frontmatter")
	}
	front = []byte(rest[:end])
	body = []byte(strings.TrimPrefix(rest[end+1+len(delim):], "\n"))
	return front, body, nil
}

func readingTime(body []byte) int {
	words := len(strings.Fields(string(body)))
	minutes := int(math.Ceil(float64(words) / wordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}
