package excerpt

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// stripScanLimit bounds how much of a note is parsed. The excerpt never needs
// more than a handful of lines, so the tail of large notes is ignored.
const stripScanLimit = 16 * 1024

// Collapsing first keeps the stripped output from reintroducing runs of blank
// space that the parser would otherwise turn into separate blocks.
var whitespaceRun = regexp.MustCompile(`(\s)\s+`)

var parser = goldmark.DefaultParser()

// StripMarkdown removes markdown syntax, keeping the visible text. List
// leaders are kept so bullet lists still read as lists.
func StripMarkdown(content string) string {
	if len(content) > stripScanLimit {
		cut := strings.LastIndexByte(content[:stripScanLimit], '\n')
		if cut <= 0 {
			cut = stripScanLimit
		}
		content = content[:cut]
	}

	source := []byte(whitespaceRun.ReplaceAllString(content, "$1"))
	doc := parser.Parse(text.NewReader(source))

	var buf bytes.Buffer
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Type() == ast.TypeBlock && n.Kind() != ast.KindDocument {
				newline(&buf)
			}
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Text:
			buf.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				buf.WriteByte('\n')
			}
		case *ast.String:
			buf.Write(node.Value)
		case *ast.AutoLink:
			buf.Write(node.Label(source))
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock, *ast.FencedCodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				segment := lines.At(i)
				buf.Write(segment.Value(source))
			}
			return ast.WalkSkipChildren, nil
		case *ast.HTMLBlock, *ast.RawHTML, *ast.ThematicBreak:
			return ast.WalkSkipChildren, nil
		case *ast.ListItem:
			buf.WriteString(listLeader(node))
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimRight(buf.String(), "\n")
}

func listLeader(item *ast.ListItem) string {
	list, ok := item.Parent().(*ast.List)
	if !ok {
		return ""
	}
	if !list.IsOrdered() {
		return string(list.Marker) + " "
	}

	index := list.Start
	for sibling := item.PreviousSibling(); sibling != nil; sibling = sibling.PreviousSibling() {
		index++
	}
	return strconv.Itoa(index) + string(list.Marker) + " "
}

func newline(buf *bytes.Buffer) {
	if buf.Len() == 0 {
		return
	}
	if b := buf.Bytes(); b[len(b)-1] != '\n' {
		buf.WriteByte('\n')
	}
}
