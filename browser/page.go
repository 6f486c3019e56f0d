// Package browser defines the narrow page-query contract the extraction
// pipeline depends on. The concrete implementation lives in session/ (rod);
// tests use the in-memory fake from browser/browsertest.
package browser

import "strings"

// Page is a page currently positioned at some URL. Selector expressions are
// plain CSS.
type Page interface {
	// Element returns the first element matching sel, or an error when the
	// page has no match.
	Element(sel string) (Element, error)

	// Elements returns every element matching sel; an empty slice (not an
	// error) when there is no match.
	Elements(sel string) ([]Element, error)

	// RemoveAll removes every element matching sel from the DOM. Used to
	// strip non-content chunks (advertisement blocks) before reading text.
	RemoveAll(sel string) error
}

// Element is a located DOM element handle. Handles become invalid after a
// session restart; callers must re-locate, never cache across restarts.
type Element interface {
	Text() (string, error)
	Attr(name string) (string, error)

	// Element and Elements query within this element's subtree.
	Element(sel string) (Element, error)
	Elements(sel string) ([]Element, error)
}

// FindWithText returns the first element matching sel whose text contains
// substr, or (nil, false) when none does. Elements whose text cannot be read
// are skipped.
func FindWithText(p Page, sel, substr string) (Element, bool) {
	els, err := p.Elements(sel)
	if err != nil {
		return nil, false
	}
	for _, el := range els {
		text, err := el.Text()
		if err != nil {
			continue
		}
		if strings.Contains(text, substr) {
			return el, true
		}
	}
	return nil, false
}

// AllText returns the trimmed text of every element matching sel, skipping
// elements that are empty after trimming.
func AllText(p Page, sel string) ([]string, error) {
	els, err := p.Elements(sel)
	if err != nil {
		return nil, err
	}
	texts := make([]string, 0, len(els))
	for _, el := range els {
		text, err := el.Text()
		if err != nil {
			return nil, err
		}
		if t := strings.TrimSpace(text); t != "" {
			texts = append(texts, t)
		}
	}
	return texts, nil
}
