package model

// InsightMeta is the frontmatter of an insights post, without the body
type InsightMeta struct {
	Slug        string   `json:"slug" yaml:"-"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Date        string   `json:"date" yaml:"date"` // ISO date, e.g. "2026-02-17"
	Updated     string   `json:"updated,omitempty" yaml:"updated"`
	Author      string   `json:"author" yaml:"author"`
	Tags        []string `json:"tags" yaml:"tags"`
	Keywords    []string `json:"keywords,omitempty" yaml:"keywords"`
	Featured    bool     `json:"featured,omitempty" yaml:"featured"`
	Draft       bool     `json:"draft,omitempty" yaml:"draft"`
	ReadingTime int      `json:"readingTime" yaml:"-"` // minutes
}

// InsightPost is a full post: metadata plus rendered HTML body
type InsightPost struct {
	InsightMeta
	HTML string `json:"html"`
}
