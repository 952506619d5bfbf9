// Package snippet resolves the markup, stylesheet, and script snippets a
// visitor supplies as base64 query values into text ready for rendering.
//
// Resolution never fails: an absent, empty, or undecodable value resolves to
// the fixed default for its kind.
package snippet

import (
	"encoding/base64"
	"errors"
	"net/url"
	"strings"
	"unicode/utf8"

	apperrors "github.com/louisbranch/snippetpad/internal/platform/errors"
)

// Kind names one of the three snippet inputs. The kind name is also the
// query parameter that carries it.
type Kind string

const (
	KindHTML Kind = "html"
	KindCSS  Kind = "css"
	KindJS   Kind = "js"
)

var kinds = []Kind{KindHTML, KindCSS, KindJS}

var (
	errLineBreak   = errors.New("line breaks are outside the base64 alphabet")
	errEmptyText   = errors.New("decoded text is empty")
	errInvalidUTF8 = errors.New("decoded bytes are not valid UTF-8")
)

// Kinds returns every snippet kind in render order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Param returns the query parameter name for the kind.
func (k Kind) Param() string {
	return string(k)
}

// Default returns the literal fallback text for the kind. Unknown kinds have
// no default.
func (k Kind) Default() string {
	switch k {
	case KindHTML:
		return DefaultHTML
	case KindCSS:
		return DefaultCSS
	case KindJS:
		return DefaultJS
	default:
		return ""
	}
}

// Resolve resolves raw against the kind's default.
func (k Kind) Resolve(raw string) string {
	return Resolve(raw, k.Default())
}

// Decode interprets raw as padded standard base64 holding UTF-8 text.
//
// The standard decoder skips carriage returns and newlines, so they are
// rejected up front. Text that decodes to nothing is also an error, which
// keeps a resolved snippet non-empty.
//
// Every failure carries apperrors.CodeSnippetDecode; malformed base64 and
// non-UTF-8 bytes are not distinguished by code.
func Decode(raw string) (string, error) {
	if strings.ContainsAny(raw, "\r\n") {
		return "", apperrors.Wrap(apperrors.CodeSnippetDecode, "decode snippet", errLineBreak)
	}
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeSnippetDecode, "decode snippet", err)
	}
	if len(decoded) == 0 {
		return "", apperrors.Wrap(apperrors.CodeSnippetDecode, "decode snippet", errEmptyText)
	}
	if !utf8.Valid(decoded) {
		return "", apperrors.Wrap(apperrors.CodeSnippetDecode, "decode snippet", errInvalidUTF8)
	}
	return string(decoded), nil
}

// Resolve returns the decoded text of raw, or fallback when raw is empty or
// cannot be decoded.
func Resolve(raw, fallback string) string {
	if raw == "" {
		return fallback
	}
	text, err := Decode(raw)
	if err != nil {
		return fallback
	}
	return text
}

// Set holds the resolved snippets for one page.
type Set struct {
	HTML string
	CSS  string
	JS   string
}

// Get returns the resolved snippet for kind.
func (s Set) Get(kind Kind) string {
	switch kind {
	case KindHTML:
		return s.HTML
	case KindCSS:
		return s.CSS
	case KindJS:
		return s.JS
	default:
		return ""
	}
}

// Defaults returns the set rendered when nothing is supplied.
func Defaults() Set {
	return Set{HTML: DefaultHTML, CSS: DefaultCSS, JS: DefaultJS}
}

// ResolveQuery resolves each kind from its query parameter. A parameter
// given more than once resolves from its first value.
func ResolveQuery(values url.Values) Set {
	return Set{
		HTML: KindHTML.Resolve(values.Get(KindHTML.Param())),
		CSS:  KindCSS.Resolve(values.Get(KindCSS.Param())),
		JS:   KindJS.Resolve(values.Get(KindJS.Param())),
	}
}

// Supplied reports which kinds carried a non-empty value in values. It says
// nothing about whether the value decoded.
func Supplied(values url.Values) []Kind {
	var out []Kind
	for _, kind := range kinds {
		if values.Get(kind.Param()) != "" {
			out = append(out, kind)
		}
	}
	return out
}
