// Package nav renders a pagination control sequence as an accessible
// HTML <nav> element. Markup is built as templ components with Tailwind
// utility classes; callers can override classes (merged with
// tailwind-merge), swap in custom markup per item kind, and enable htmx
// partial navigation the same way the rest of the UI does.
package nav

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/Oudwins/tailwind-merge-go/pkg/twmerge"
	"github.com/a-h/templ"

	"github.com/DukeRupert/pagenav/pagination"
)

// Default Tailwind classes for each part of the control. Overrides from
// Config are merged on top, so a caller can change a single property
// without restating the whole class list.
const (
	defaultNavClass = "isolate inline-flex -space-x-px rounded-md shadow-sm"

	defaultItemClass = "relative inline-flex items-center px-4 py-2 text-sm font-semibold text-gray-900 ring-1 ring-inset ring-gray-300 hover:bg-gray-50 focus:z-20 focus:outline-offset-0"

	defaultCurrentClass = "z-10 bg-indigo-600 text-white ring-indigo-600 hover:bg-indigo-600"

	defaultEllipsisClass = "relative inline-flex items-center px-4 py-2 text-sm font-semibold text-gray-700 ring-1 ring-inset ring-gray-300"

	defaultDisabledClass = "text-gray-400 hover:bg-transparent cursor-not-allowed"
)

// Config controls link building, markup classes and htmx behavior for
// the rendered control.
type Config struct {
	// BaseURL is the link target for page items. A {page} token in it is
	// replaced with the page number; without one, a page query parameter
	// is appended. e.g. "/articles" or "/articles/{page}".
	BaseURL string
	// LinkFunc overrides BaseURL when set.
	LinkFunc func(page int) string

	// htmx partial loading, matching the list pages' content swap.
	UseHtmx  bool
	TargetID string // hx-target element id, e.g. "content-area"
	PushURL  bool   // update the browser URL with hx-push-url

	// Window sizes the generated page run. Nil means
	// pagination.DefaultOptions().
	Window *pagination.Options

	// Class overrides, merged onto the defaults with tailwind-merge.
	NavClass      string
	ItemClass     string
	CurrentClass  string
	EllipsisClass string
	PrevClass     string
	NextClass     string

	// Marker labels. Empty means "Previous" and "Next".
	PrevLabel string
	NextLabel string

	// Slots swap in custom markup per item kind.
	Slots Slots
}

// Slots holds optional per-kind component overrides. A nil slot falls
// back to the default markup for that kind.
type Slots struct {
	Prev     func(pagination.Item) templ.Component
	Next     func(pagination.Item) templ.Component
	Page     func(pagination.Item) templ.Component
	Ellipsis func(pagination.Item) templ.Component
}

func (s Slots) lookup(kind pagination.Kind) func(pagination.Item) templ.Component {
	switch kind {
	case pagination.KindPrev:
		return s.Prev
	case pagination.KindNext:
		return s.Next
	case pagination.KindPage:
		return s.Page
	case pagination.KindEllipsis:
		return s.Ellipsis
	default:
		return nil
	}
}

func (c Config) window() pagination.Options {
	if c.Window != nil {
		return *c.Window
	}
	return pagination.DefaultOptions()
}

func (c Config) prevLabel() string {
	if c.PrevLabel != "" {
		return c.PrevLabel
	}
	return "Previous"
}

func (c Config) nextLabel() string {
	if c.NextLabel != "" {
		return c.NextLabel
	}
	return "Next"
}

// Nav renders the full pagination control for a list page. A range with
// a single page renders nothing, matching how the list templates hide
// the control when it has nowhere to navigate.
func Nav(d pagination.Data, cfg Config) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if d.TotalPages <= 1 {
			return nil
		}
		items := d.Items(cfg.window())
		return Items(items, cfg).Render(ctx, w)
	})
}

// Items renders an already generated control sequence. Most callers
// want Nav; this entry point exists for callers that post-process the
// item list before rendering.
func Items(items []pagination.Item, cfg Config) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		link := Resolver(cfg)

		hw := &htmlWriter{w: w}
		hw.openTag("nav", attrs{
			{"class", twmerge.Merge(defaultNavClass, cfg.NavClass)},
			{"aria-label", "Pagination"},
		})
		for _, it := range items {
			if slot := cfg.Slots.lookup(it.Kind); slot != nil {
				if hw.err != nil {
					return hw.err
				}
				if err := slot(it).Render(ctx, w); err != nil {
					return err
				}
				continue
			}
			renderItem(hw, it, cfg, link)
		}
		hw.closeTag("nav")
		return hw.err
	})
}

func renderItem(hw *htmlWriter, it pagination.Item, cfg Config, link func(int) string) {
	switch it.Kind {
	case pagination.KindPrev:
		renderMarker(hw, it, cfg, link, cfg.prevLabel(), twmerge.Merge(defaultItemClass, "rounded-l-md", cfg.ItemClass, cfg.PrevClass))
	case pagination.KindNext:
		renderMarker(hw, it, cfg, link, cfg.nextLabel(), twmerge.Merge(defaultItemClass, "rounded-r-md", cfg.ItemClass, cfg.NextClass))
	case pagination.KindEllipsis:
		hw.openTag("span", attrs{{"class", twmerge.Merge(defaultEllipsisClass, cfg.EllipsisClass)}})
		hw.raw("&hellip;")
		hw.closeTag("span")
	case pagination.KindPage:
		renderPage(hw, it, cfg, link)
	}
}

func renderMarker(hw *htmlWriter, it pagination.Item, cfg Config, link func(int) string, label, class string) {
	if !it.Enabled {
		hw.openTag("span", attrs{
			{"class", twmerge.Merge(class, defaultDisabledClass)},
			{"aria-disabled", "true"},
		})
		hw.text(label)
		hw.closeTag("span")
		return
	}

	hw.openTag("a", anchorAttrs(cfg, link(it.Number), attrs{{"class", class}}))
	hw.text(label)
	hw.closeTag("a")
}

func renderPage(hw *htmlWriter, it pagination.Item, cfg Config, link func(int) string) {
	class := twmerge.Merge(defaultItemClass, shapeClass(it.Shape()), cfg.ItemClass)

	if it.Current {
		hw.openTag("span", attrs{
			{"class", twmerge.Merge(class, defaultCurrentClass, cfg.CurrentClass)},
			{"aria-current", "page"},
		})
		hw.text(strconv.Itoa(it.Number))
		hw.closeTag("span")
		return
	}

	hw.openTag("a", anchorAttrs(cfg, link(it.Number), attrs{{"class", class}}))
	hw.text(strconv.Itoa(it.Number))
	hw.closeTag("a")
}

// shapeClass maps a page box shape to its corner rounding.
func shapeClass(s pagination.Shape) string {
	switch s {
	case pagination.ShapeSingle:
		return "rounded-md"
	case pagination.ShapeLeft:
		return "rounded-l-md"
	case pagination.ShapeRight:
		return "rounded-r-md"
	default:
		return ""
	}
}

func anchorAttrs(cfg Config, href string, base attrs) attrs {
	out := append(attrs{{"href", href}}, base...)
	if cfg.UseHtmx {
		out = append(out, attr{"hx-get", href})
		if cfg.TargetID != "" {
			out = append(out, attr{"hx-target", "#" + cfg.TargetID}, attr{"hx-swap", "innerHTML"})
		}
		if cfg.PushURL {
			out = append(out, attr{"hx-push-url", "true"})
		}
	}
	return out
}

type attr struct {
	name  string
	value string
}

type attrs []attr

// htmlWriter writes escaped markup, holding the first error so the
// render paths stay linear.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) openTag(name string, as attrs) {
	if hw.err != nil {
		return
	}
	if _, hw.err = io.WriteString(hw.w, "<"+name); hw.err != nil {
		return
	}
	for _, a := range as {
		if a.value == "" {
			continue
		}
		if _, hw.err = fmt.Fprintf(hw.w, ` %s="%s"`, a.name, templ.EscapeString(a.value)); hw.err != nil {
			return
		}
	}
	_, hw.err = io.WriteString(hw.w, ">")
}

func (hw *htmlWriter) closeTag(name string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, "</"+name+">")
}

func (hw *htmlWriter) text(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, templ.EscapeString(s))
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}
