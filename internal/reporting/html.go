package reporting

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
)

const htmlShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 56rem; margin: 2rem auto; padding: 0 1rem; line-height: 1.5; }
h1 { border-bottom: 2px solid #ddd; padding-bottom: .3rem; }
h3 { margin-top: 1.5rem; }
li { margin: .15rem 0; }
</style>
</head>
<body>
%s</body>
</html>
`

// HTML renders the report as a standalone HTML page, converting the markdown
// body with goldmark.
func (r Report) HTML() (string, error) {
	md := goldmark.New()

	var body strings.Builder
	if err := md.Convert([]byte(r.Markdown()), &body); err != nil {
		return "", fmt.Errorf("rendering report HTML: %w", err)
	}

	title := fmt.Sprintf("Packaging Recommendation Report: %s", r.ProductName)
	return fmt.Sprintf(htmlShell, title, body.String()), nil
}
