package layout

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

//go:embed root.html
var rootShell string

//go:embed debug.html
var debugShell string

//go:embed globals.css
var globalStyles string

type Layout int

const (
	// Root wraps pages in the application-wide provider.
	Root Layout = iota
	// Debug applies global styles only, without the provider, so pages render
	// even when provider setup is what's broken.
	Debug
)

func (l Layout) String() string {
	switch l {
	case Root:
		return "root"
	case Debug:
		return "debug"
	}
	return fmt.Sprintf("layout(%d)", int(l))
}

// Options feed the provider; ignored by Debug.
type Options struct {
	BackendOrigin string
}

// Render mounts page into the layout shell and returns the full document.
func Render(l Layout, page string, opts Options) (string, error) {
	var shell string
	switch l {
	case Root:
		shell = rootShell
	case Debug:
		shell = debugShell
	default:
		return "", fmt.Errorf("unknown layout: %s", l)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(shell))
	if err != nil {
		return "", fmt.Errorf("could not parse %s layout: %w", l, err)
	}

	doc.Find("head").AppendHtml(`<style id="global-styles">` + globalStyles + `</style>`)

	if l == Root {
		doc.Find("#app-provider").SetAttr("data-backend-origin", opts.BackendOrigin)
	}

	mount := doc.Find("#root")
	if mount.Length() == 0 {
		return "", fmt.Errorf("%s layout has no mount point", l)
	}
	mount.AppendHtml(page)

	html, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("could not render %s layout: %w", l, err)
	}
	return html, nil
}
