// Package browsertest provides an in-memory browser.Page for tests, so the
// extraction contract can be exercised without launching a browser.
package browsertest

import (
	"fmt"

	"github.com/veridata/factcrawl/browser"
)

// Elem is a scripted element. Children maps a selector to the elements a
// scoped query returns.
type Elem struct {
	TextValue string
	TextErr   error
	Attrs     map[string]string
	Children  map[string][]*Elem
}

// Text returns an element with the given text.
func Text(s string) *Elem { return &Elem{TextValue: s} }

// Link returns an element with an href attribute.
func Link(href string) *Elem {
	return &Elem{Attrs: map[string]string{"href": href}}
}

func (e *Elem) Text() (string, error) {
	return e.TextValue, e.TextErr
}

func (e *Elem) Attr(name string) (string, error) {
	if v, ok := e.Attrs[name]; ok {
		return v, nil
	}
	return "", fmt.Errorf("browsertest: no attribute %q", name)
}

func (e *Elem) Element(sel string) (browser.Element, error) {
	els := e.Children[sel]
	if len(els) == 0 {
		return nil, fmt.Errorf("browsertest: no element for %q", sel)
	}
	return els[0], nil
}

func (e *Elem) Elements(sel string) ([]browser.Element, error) {
	return toInterfaces(e.Children[sel]), nil
}

// Page is a scripted page: a map from selector to the elements that selector
// yields. RemoveAll calls are recorded in Removed.
type Page struct {
	Sel     map[string][]*Elem
	Removed []string
}

// New creates an empty scripted page.
func New() *Page {
	return &Page{Sel: map[string][]*Elem{}}
}

// Set registers the elements a selector returns.
func (p *Page) Set(sel string, els ...*Elem) *Page {
	p.Sel[sel] = els
	return p
}

func (p *Page) Element(sel string) (browser.Element, error) {
	els := p.Sel[sel]
	if len(els) == 0 {
		return nil, fmt.Errorf("browsertest: no element for %q", sel)
	}
	return els[0], nil
}

func (p *Page) Elements(sel string) ([]browser.Element, error) {
	return toInterfaces(p.Sel[sel]), nil
}

func (p *Page) RemoveAll(sel string) error {
	p.Removed = append(p.Removed, sel)
	delete(p.Sel, sel)
	return nil
}

func toInterfaces(els []*Elem) []browser.Element {
	out := make([]browser.Element, len(els))
	for i, el := range els {
		out[i] = el
	}
	return out
}
