package mineral

import "regexp"

// The whitespace class used below matches PCRE's \s, which unlike RE2's \s
// includes the vertical tab. The "after tag" and "before tag" patterns leave
// plain spaces alone; those are handled by the run collapse.
var (
	reAfterTag      = regexp.MustCompile(`>[\t\n\v\f\r]+`)
	reBeforeTag     = regexp.MustCompile(`[\t\n\v\f\r]+<`)
	reWhitespaceRun = regexp.MustCompile(`[\t\n\v\f\r ]+`)
	reComment       = regexp.MustCompile(`(?s)<!--.*?-->`)

	// Double-quoted only, case-sensitive, never across a newline. The single
	// space minify leaves in front of the attribute goes with it.
	reStyleAttr = regexp.MustCompile(` ?style=".*?"`)

	reStyleTag   = regexp.MustCompile(`(?is)<style.*?style>`)
	reScriptBody = regexp.MustCompile(`(?is)(<script[^>]*>)(.*?)(</script>)`)
)
