package htmlspan

import (
	"fmt"
	"strings"
	"testing"
)

const samplePage = `<html>
<head><title>Station Handbook</title><style>p { color: red }</style></head>
<body>
<h1>Getting Started</h1>
<p>Some   <b>introductory</b>
text for the handbook.</p>
<script>ignored()</script>
<h2>Sorting Rules</h2>
<ul><li>First rule</li><li>Second rule</li></ul>
</body>
</html>`

func TestParse(t *testing.T) {
	doc, err := Parse(strings.NewReader(samplePage), "handbook.html")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Name != "handbook.html" {
		t.Errorf("name = %q", doc.Name)
	}
	if len(doc.Spans) != 6 {
		t.Fatalf("got %d spans, want 6: %+v", len(doc.Spans), doc.Spans)
	}

	title := doc.Spans[0]
	if title.Text != "Station Handbook" || title.FontSize != 28 || !title.Bold || title.Page != 0 {
		t.Errorf("title span = %+v", title)
	}

	h1 := doc.Spans[1]
	if h1.Text != "Getting Started" || h1.FontSize != 24 || !h1.Bold {
		t.Errorf("h1 span = %+v", h1)
	}

	para := doc.Spans[2]
	if para.Text != "Some introductory text for the handbook." {
		t.Errorf("paragraph text = %q, want whitespace-normalized text", para.Text)
	}
	if para.Bold || para.FontSize != 10 {
		t.Errorf("paragraph style = %+v", para)
	}

	for i, s := range doc.Spans {
		if strings.Contains(s.Text, "ignored") || strings.Contains(s.Text, "color") {
			t.Errorf("span %d leaked script/style content: %q", i, s.Text)
		}
	}

	// Synthetic vertical flow: each span sits below the previous one.
	for i := 1; i < len(doc.Spans); i++ {
		if doc.Spans[i].BBox.Y0 <= doc.Spans[i-1].BBox.Y0 {
			t.Errorf("span %d not below span %d", i, i-1)
		}
	}
}

func TestParsePaginates(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 0; i < 80; i++ {
		fmt.Fprintf(&b, "<p>paragraph number %d of the long form guide</p>", i)
	}
	b.WriteString("</body></html>")

	doc, err := Parse(strings.NewReader(b.String()), "long.html")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Spans) != 80 {
		t.Fatalf("got %d spans, want 80", len(doc.Spans))
	}
	if last := doc.Spans[79]; last.Page == 0 {
		t.Error("long content should flow onto a second synthetic page")
	}
	for i := 1; i < len(doc.Spans); i++ {
		if doc.Spans[i].Page < doc.Spans[i-1].Page {
			t.Errorf("page numbers must not decrease at span %d", i)
		}
	}
}

func TestParseEmptyBody(t *testing.T) {
	doc, err := Parse(strings.NewReader("<html><body></body></html>"), "empty.html")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Spans) != 0 {
		t.Errorf("got %d spans, want 0", len(doc.Spans))
	}
}
