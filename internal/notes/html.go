package notes

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// reBoldLine matches a line that is entirely bold-emphasized. The model
// tends to emit such lines as headers without a following blank line,
// which the markdown grammar then folds into the next paragraph.
var reBoldLine = regexp.MustCompile(`(\*\*.*\*\*)\n`)

// page is the standalone HTML document wrapping the rendered note.
const page = `<html>
    <head>
        <style>
            body {
                font-family: Arial, sans-serif;
                line-height: 1.6;
                max-width: 800px;
                margin: 40px auto;
            }
            h1, h2, h3 {
                color: #2c3e50;
                margin-top: 20px;
            }
            p {
                margin-bottom: 15px;
            }
            strong {
                color: #34495e;
            }
        </style>
    </head>
    <body>
%s    </body>
</html>
`

// normalize inserts a blank line after every all-bold line so that the
// converter treats it as its own block.
func normalize(md string) string {
	return reBoldLine.ReplaceAllString(md, "$1\n\n")
}

// RenderHTML converts a markdown study note into a complete, styled,
// self-contained HTML document.
func RenderHTML(md string) ([]byte, error) {
	if strings.TrimSpace(md) == "" {
		return nil, fmt.Errorf("empty markdown input")
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})

	body := markdown.ToHTML([]byte(normalize(md)), p, renderer)

	return []byte(fmt.Sprintf(page, body)), nil
}
