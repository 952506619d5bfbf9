// Package templates renders the snippet page.
package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/louisbranch/snippetpad/internal/services/snippets/snippet"
)

// DefaultTitle is used when a view carries no title.
const DefaultTitle = "Snippet Pad"

// DefaultAssetBase is the path the embedded editor assets are served under.
const DefaultAssetBase = "/static"

// PageView is everything the snippet page needs.
type PageView struct {
	// Title is the document title.
	Title string
	// AssetBase prefixes editor asset URLs, without a trailing slash.
	AssetBase string
	// Snippets are written verbatim into the body, style, and script blocks.
	Snippets snippet.Set
}

type editorPane struct {
	kind  snippet.Kind
	label string
}

var editorPanes = []editorPane{
	{kind: snippet.KindHTML, label: "HTML"},
	{kind: snippet.KindCSS, label: "CSS"},
	{kind: snippet.KindJS, label: "JS"},
}

// Page renders the full snippet document. The resolved snippets land
// unescaped in <main id="snippet-html">, <style id="snippet-css">, and
// <script id="snippet-js">; the editor panel shows the same text escaped.
func Page(view PageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		title := strings.TrimSpace(view.Title)
		if title == "" {
			title = DefaultTitle
		}
		assets := assetBase(view.AssetBase)

		out := &pageWriter{w: w}
		out.raw("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
		out.raw("<meta charset=\"utf-8\">\n")
		out.raw("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
		out.raw("<title>" + templ.EscapeString(title) + "</title>\n")
		out.raw("<link rel=\"stylesheet\" href=\"" + templ.EscapeString(assets+"/editor.css") + "\">\n")
		out.raw("<style id=\"snippet-css\">" + view.Snippets.CSS + "</style>\n")
		out.raw("</head>\n<body>\n")
		out.raw("<main id=\"snippet-html\">" + view.Snippets.HTML + "</main>\n")
		writeEditor(out, view.Snippets)
		out.raw("<script id=\"snippet-js\">" + view.Snippets.JS + "</script>\n")
		out.raw("<script src=\"" + templ.EscapeString(assets+"/editor.js") + "\" defer></script>\n")
		out.raw("</body>\n</html>\n")
		return out.err
	})
}

func writeEditor(out *pageWriter, set snippet.Set) {
	out.raw("<aside id=\"snippet-editor\" class=\"snippet-editor\">\n")
	out.raw("<nav class=\"snippet-editor-toolbar\">")
	out.raw("<button type=\"button\" id=\"save-all\">Save all</button>")
	out.raw("<button type=\"button\" id=\"load-file\">Load</button>")
	out.raw("<button type=\"button\" id=\"clear-all\">Clear</button>")
	out.raw("<button type=\"button\" id=\"close-editor\">Close</button>")
	out.raw("</nav>\n")
	for _, pane := range editorPanes {
		id := pane.kind.Param()
		out.raw("<section class=\"snippet-pane\" data-kind=\"" + id + "\">\n")
		out.raw("<header><span class=\"snippet-pane-label\">" + pane.label + "</span>")
		out.raw("<span id=\"" + id + "-filename\" class=\"snippet-pane-filename\"></span>")
		out.raw("<button type=\"button\" id=\"" + id + "-save\">Save</button>")
		out.raw("<button type=\"button\" id=\"" + id + "-load\">Load</button></header>\n")
		// The parser drops one newline directly after <textarea>; write one so
		// snippets that start with a newline survive.
		out.raw("<textarea id=\"" + id + "-editor\" spellcheck=\"false\">\n")
		out.raw(templ.EscapeString(set.Get(pane.kind)))
		out.raw("</textarea>\n</section>\n")
	}
	out.raw("<iframe id=\"preview\" title=\"Preview\"></iframe>\n")
	out.raw("<div id=\"console\" class=\"snippet-console\" role=\"log\"></div>\n")
	out.raw("</aside>\n")
}

func assetBase(base string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		return DefaultAssetBase
	}
	return base
}

type pageWriter struct {
	w   io.Writer
	err error
}

func (p *pageWriter) raw(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}
