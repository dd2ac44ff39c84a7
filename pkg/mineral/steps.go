package mineral

// Minify is the unconditional base step. It strips non-space whitespace
// around tags, collapses every whitespace run to a single space and then
// removes HTML comments. Whitespace left behind by a removed comment is not
// collapsed again.
func Minify(content string) string {
	content = reAfterTag.ReplaceAllLiteralString(content, ">")
	content = reBeforeTag.ReplaceAllLiteralString(content, "<")
	content = reWhitespaceRun.ReplaceAllLiteralString(content, " ")
	return reComment.ReplaceAllLiteralString(content, "")
}

// PruneInlineCSS removes style="..." attributes, e.g. <div style="color:red">.
// Single-quoted and unquoted style attributes are left in place.
func PruneInlineCSS(content string) string {
	return reStyleAttr.ReplaceAllLiteralString(content, "")
}

// PruneStyleTags removes <style> blocks together with their content.
func PruneStyleTags(content string) string {
	return reStyleTag.ReplaceAllLiteralString(content, "")
}

// PruneInlineScripts empties inline script bodies. <script>alert(1)</script>
// becomes <script></script>; attributes on the opening tag are kept.
func PruneInlineScripts(content string) string {
	return reScriptBody.ReplaceAllString(content, "${1}${3}")
}

// countMinify reports how many substitutions Minify would make on content.
// Comment matches are counted on the collapsed text, as Minify sees them.
func countMinify(content string) int {
	n := countMatches(reAfterTag, content)
	content = reAfterTag.ReplaceAllLiteralString(content, ">")
	n += countMatches(reBeforeTag, content)
	content = reBeforeTag.ReplaceAllLiteralString(content, "<")
	n += countMatches(reWhitespaceRun, content)
	content = reWhitespaceRun.ReplaceAllLiteralString(content, " ")
	return n + countMatches(reComment, content)
}
