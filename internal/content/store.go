package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jdelacroix/inkwell/internal/logger"
)

const frontMatterDelimiter = "---"

// Post is one blog post. Body text is not held here; it is loaded lazily
// through Store.Body when a post is actually opened.
type Post struct {
	Slug    string
	Title   string
	Summary string
	Date    time.Time
	Path    string
}

type frontMatter struct {
	Title   string `yaml:"title"`
	Date    string `yaml:"date"`
	Summary string `yaml:"summary"`
}

// Store lists and lazily loads markdown posts from a content directory.
type Store struct {
	dir string
	log *logger.Logger

	mu     sync.Mutex
	bodies map[string]string
	paths  map[string]string
}

// NewStore creates a Store over the given directory.
func NewStore(dir string, log *logger.Logger) *Store {
	return &Store{
		dir:    dir,
		log:    log,
		bodies: make(map[string]string),
		paths:  make(map[string]string),
	}
}

// List returns post metadata sorted by date, newest first. A missing content
// directory degrades to an empty list.
func (s *Store) List() []Post {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Error(err, "failed to read content directory")
		}
		return nil
	}

	posts := make([]Post, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		post, err := s.readMeta(path)
		if err != nil {
			s.log.Error(err, "skipping unreadable post")
			continue
		}
		posts = append(posts, post)

		s.mu.Lock()
		s.paths[post.Slug] = path
		s.mu.Unlock()
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})

	return posts
}

// Body returns the body text for a post, reading it from disk on first access
// and caching it afterwards.
func (s *Store) Body(slug string) (string, error) {
	s.mu.Lock()
	if body, ok := s.bodies[slug]; ok {
		s.mu.Unlock()
		return body, nil
	}
	path, ok := s.paths[slug]
	s.mu.Unlock()

	if !ok {
		return "", fmt.Errorf("unknown post %q", slug)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read post %q: %w", slug, err)
	}

	_, body := splitFrontMatter(string(data))

	s.mu.Lock()
	s.bodies[slug] = body
	s.mu.Unlock()

	s.log.WithFields(map[string]any{"slug": slug}).Debug("post body loaded")
	return body, nil
}

func (s *Store) readMeta(path string) (Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Post{}, err
	}

	slug := strings.TrimSuffix(filepath.Base(path), ".md")
	post := Post{Slug: slug, Title: slug, Path: path}

	raw, _ := splitFrontMatter(string(data))
	if raw == "" {
		return post, nil
	}

	var meta frontMatter
	if err := yaml.Unmarshal([]byte(raw), &meta); err != nil {
		return Post{}, fmt.Errorf("invalid front matter in %s: %w", path, err)
	}

	if meta.Title != "" {
		post.Title = meta.Title
	}
	post.Summary = meta.Summary
	if meta.Date != "" {
		if parsed, err := time.Parse("2006-01-02", meta.Date); err == nil {
			post.Date = parsed
		}
	}

	return post, nil
}

// splitFrontMatter separates a leading YAML front matter block from the body.
// Posts without front matter return an empty meta string.
func splitFrontMatter(text string) (meta string, body string) {
	if !strings.HasPrefix(text, frontMatterDelimiter+"\n") {
		return "", text
	}

	rest := text[len(frontMatterDelimiter)+1:]
	end := strings.Index(rest, "\n"+frontMatterDelimiter)
	if end < 0 {
		return "", text
	}

	meta = rest[:end]
	body = rest[end+len(frontMatterDelimiter)+1:]
	body = strings.TrimLeft(body, "\n")
	return meta, body
}
