package generator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/rpggio/proyek-akademik/internal/domain/project"
)

type generatedChapter struct {
	Title    string   `json:"title"`
	Sections []string `json:"sections"`
	Content  string   `json:"content"`
}

type generatedProject struct {
	Outline      []string            `json:"outline"`
	Chapters     []generatedChapter  `json:"chapters"`
	Preface      string              `json:"preface"`
	Abstract     string              `json:"abstract"`
	Bibliography []map[string]string `json:"bibliography"`
}

// PostProcess turns the model reply into a Document. Markdown bodies are
// rendered to HTML; title and author data always come from the request.
func PostProcess(raw string, author project.Record, title string) (*project.Document, error) {
	body := stripFences(raw)
	if body == "" {
		return nil, errors.New("model returned an empty reply")
	}

	var gen generatedProject
	if err := json.Unmarshal([]byte(body), &gen); err != nil {
		return nil, fmt.Errorf("model reply is not a project: %w", err)
	}
	if len(gen.Chapters) == 0 {
		return nil, errors.New("model reply has no chapters")
	}

	outline := make([]any, 0, len(gen.Outline))
	for _, item := range gen.Outline {
		outline = append(outline, item)
	}

	chapters := make([]any, 0, len(gen.Chapters))
	for i, ch := range gen.Chapters {
		content, err := renderMarkdown(ch.Content)
		if err != nil {
			return nil, fmt.Errorf("rendering chapter %d: %w", i+1, err)
		}
		sections := make([]any, 0, len(ch.Sections))
		for _, s := range ch.Sections {
			sections = append(sections, s)
		}
		chapters = append(chapters, project.Record{
			"id":       float64(i + 1),
			"title":    ch.Title,
			"sections": sections,
			"content":  content,
		})
		if len(gen.Outline) == 0 {
			outline = append(outline, ch.Title)
		}
	}

	bibliography := make([]any, 0, len(gen.Bibliography))
	for _, entry := range gen.Bibliography {
		rec := make(project.Record, len(entry))
		for k, v := range entry {
			rec[k] = v
		}
		bibliography = append(bibliography, rec)
	}

	preface, err := renderMarkdown(gen.Preface)
	if err != nil {
		return nil, fmt.Errorf("rendering preface: %w", err)
	}
	abstract, err := renderMarkdown(gen.Abstract)
	if err != nil {
		return nil, fmt.Errorf("rendering abstract: %w", err)
	}

	if author == nil {
		author = project.Record{}
	}

	return project.Backfill(&project.Document{
		Title:        title,
		AuthorInfo:   author,
		Outline:      outline,
		Chapters:     chapters,
		Bibliography: bibliography,
		Preface:      preface,
		Abstract:     abstract,
	}), nil
}

// stripFences removes a surrounding ``` or ```json block, if any.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = ""
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func renderMarkdown(md string) (string, error) {
	md = strings.TrimSpace(md)
	if md == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
