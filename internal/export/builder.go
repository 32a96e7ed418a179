package export

import (
	"fmt"
	"io"
	"strings"

	md "github.com/nao1215/markdown"
)

// Builder wraps the markdown package with the blocks catalog documents use.
type Builder struct {
	md     *md.Markdown
	writer io.Writer
}

// NewBuilder creates a builder writing to w.
func NewBuilder(w io.Writer) *Builder {
	return &Builder{
		md:     md.NewMarkdown(w),
		writer: w,
	}
}

// FrontMatter writes a YAML front matter block. It must be called before
// any other block.
func (b *Builder) FrontMatter(title, description string) *Builder {
	fmt.Fprintln(b.writer, "---")
	fmt.Fprintf(b.writer, "title: %q\n", title)
	if description != "" {
		fmt.Fprintf(b.writer, "description: %q\n", description)
	}
	fmt.Fprintln(b.writer, "---")
	fmt.Fprintln(b.writer)
	return b
}

// H1 creates a level 1 header
func (b *Builder) H1(text string) *Builder {
	b.md.H1(text)
	return b
}

// H2 creates a level 2 header
func (b *Builder) H2(text string) *Builder {
	b.md.H2(text)
	return b
}

// H3 creates a level 3 header
func (b *Builder) H3(text string) *Builder {
	b.md.H3(text)
	return b
}

// PlainText adds plain text
func (b *Builder) PlainText(text string) *Builder {
	b.md.PlainText(text)
	return b
}

// PlainTextf adds formatted plain text
func (b *Builder) PlainTextf(format string, args ...any) *Builder {
	b.md.PlainTextf(format, args...)
	return b
}

// LF adds a line feed
func (b *Builder) LF() *Builder {
	b.md.LF()
	return b
}

// BulletList adds a bullet list
func (b *Builder) BulletList(items ...string) *Builder {
	b.md.BulletList(items...)
	return b
}

// Table adds a markdown table. Pipes inside cells are escaped.
func (b *Builder) Table(headers []string, rows [][]string) *Builder {
	escaped := make([][]string, len(rows))
	for i, row := range rows {
		escaped[i] = make([]string, len(row))
		for j, cell := range row {
			escaped[i][j] = strings.ReplaceAll(cell, "|", `\|`)
		}
	}
	b.md.Table(md.TableSet{
		Header: headers,
		Rows:   escaped,
	})
	return b
}

// Blockquote adds a blockquote
func (b *Builder) Blockquote(text string) *Builder {
	b.md.Blockquote(text)
	return b
}

// HorizontalRule adds a horizontal rule
func (b *Builder) HorizontalRule() *Builder {
	b.md.HorizontalRule()
	return b
}

// Image returns inline image markup.
func Image(alt, url string) string {
	return md.Image(alt, url)
}

// Bold returns inline bold markup.
func Bold(text string) string {
	return md.Bold(text)
}

// Link returns inline link markup.
func Link(text, url string) string {
	return md.Link(text, url)
}

// Build finalizes the markdown document
func (b *Builder) Build() error {
	return b.md.Build()
}
