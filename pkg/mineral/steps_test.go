package mineral

import (
	"strings"
	"testing"
)

func TestMinify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"newline after tag", "<p>\nx</p>", "<p>x</p>"},
		{"tab before tag", "<p>x\t</p>", "<p>x</p>"},
		{"space after tag kept", "<p> x</p>", "<p> x</p>"},
		{"mixed run after tag", "<p>\n  x</p>", "<p> x</p>"},
		{"vertical tab and form feed", "<p>\v\fx</p>", "<p>x</p>"},
		{"crlf between tags", "<ul>\r\n<li>a</li>\r\n</ul>", "<ul><li>a</li></ul>"},
		{"text runs", "a \n\t b", "a b"},
		{"multiline comment", "<p>a</p><!--\nline one\nline two\n--><p>b</p>", "<p>a</p><p>b</p>"},
		{"non-greedy comments", "<!-- a -->keep<!-- b -->", "keep"},
		// Whitespace exposed by comment removal is not collapsed again.
		{"comment between spaces", "a <!-- c --> b", "a  b"},
		{"no matches", "<p>x</p>", "<p>x</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Minify(tt.input); got != tt.want {
				t.Errorf("Minify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMinify_Idempotent(t *testing.T) {
	inputs := []string{
		"<div>\n   hello   </div>",
		"<html>\n\t<body>\r\n  <p>a  b</p>\n </body>\n</html>\n",
		"   leading and trailing   ",
		"<pre>\n  keep?\n</pre>",
	}

	for _, input := range inputs {
		once := Minify(input)
		if twice := Minify(once); twice != once {
			t.Errorf("Minify not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

func TestPruneInlineCSS(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"double quoted", `<div style="color:red">x</div>`, "<div>x</div>"},
		{"among attributes", `<p class="a" style="b:c" id="d">`, `<p class="a" id="d">`},
		{"several", `<b style="a">1</b><i style="b">2</i>`, "<b>1</b><i>2</i>"},
		{"empty value", `<p style="">x</p>`, "<p>x</p>"},
		// Known gap: only double-quoted attributes are matched.
		{"single quoted kept", `<p style='color:red'>x</p>`, `<p style='color:red'>x</p>`},
		{"unquoted kept", `<p style=color:red>x</p>`, `<p style=color:red>x</p>`},
		{"uppercase kept", `<p STYLE="a">x</p>`, `<p STYLE="a">x</p>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PruneInlineCSS(tt.input); got != tt.want {
				t.Errorf("PruneInlineCSS(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPruneInlineCSS_Flag(t *testing.T) {
	input := `<div style="color:red">x</div>`

	off, _ := Process(input, Options{})
	if off != input {
		t.Errorf("css=false changed input: %q", off)
	}

	on, _ := Process(input, Options{CSS: true})
	if strings.Contains(on, "style=") {
		t.Errorf("css=true left style attribute: %q", on)
	}
}

func TestPruneStyleTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "<style>a{}</style><p>x</p>", "<p>x</p>"},
		{"attributes", `<style type="text/css" media="print">a{}</style>x`, "x"},
		{"case insensitive", "<STYLE>a{}</Style>x", "x"},
		{"multiline", "<style>\na {\n color: red;\n}\n</style>x", "x"},
		{"several", "<style>a{}</style>x<style>b{}</style>y", "xy"},
		{"none", "<p>x</p>", "<p>x</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PruneStyleTags(tt.input); got != tt.want {
				t.Errorf("PruneStyleTags(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPruneInlineScripts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "<script>alert(1)</script>", "<script></script>"},
		{"keeps attributes", `<script type="module" defer>go()</script>`, `<script type="module" defer></script>`},
		{"external src", `<script src="/app.js"></script>`, `<script src="/app.js"></script>`},
		{"case insensitive", "<SCRIPT>x()</SCRIPT>", "<SCRIPT></SCRIPT>"},
		{"multiline", "<script>\nvar a = 1;\nvar b = 2;\n</script>", "<script></script>"},
		{"several", "<script>a()</script><p>x</p><script>b()</script>", "<script></script><p>x</p><script></script>"},
		{"dollar in body", "<script>$('#x')</script>", "<script></script>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PruneInlineScripts(tt.input); got != tt.want {
				t.Errorf("PruneInlineScripts(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
