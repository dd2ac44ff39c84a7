package mineral_test

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/mineral/pkg/mineral"
)

func ExampleProcess() {
	out, err := mineral.Process("<div>\n   hello   </div>\n<!-- note -->", mineral.Options{})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%q\n", out)
	// Output: "<div> hello </div>"
}

func ExampleProcess_pruning() {
	html := `<style>p{color:red}</style><p style="margin:0">hi</p><script src="/a.js">init()</script>`

	out, _ := mineral.Process(html, mineral.Options{CSS: true, Style: true, Script: true})
	fmt.Println(out)
	// Output: <p>hi</p><script src="/a.js"></script>
}

func ExamplePruner_Process() {
	p := mineral.New(mineral.Options{
		BeforePruning: func(s string) (string, error) { return strings.ToUpper(s), nil },
	})

	out, _ := p.Process("<b>\n  loud  </b>", mineral.WithScript(true))
	fmt.Println(out)
	// Output: <B> LOUD </B>
}
