package session

import (
	"fmt"

	"github.com/go-rod/rod"

	"github.com/veridata/factcrawl/browser"
)

// rodPage adapts *rod.Page to the browser.Page contract.
type rodPage struct {
	p *rod.Page
}

func (r rodPage) Element(sel string) (browser.Element, error) {
	el, err := r.p.Element(sel)
	if err != nil {
		return nil, err
	}
	return rodElement{el: el}, nil
}

func (r rodPage) Elements(sel string) ([]browser.Element, error) {
	els, err := r.p.Elements(sel)
	if err != nil {
		return nil, err
	}
	return wrapElements(els), nil
}

func (r rodPage) RemoveAll(sel string) error {
	_, err := r.p.Eval(`(sel) => {
		document.querySelectorAll(sel).forEach(el => el.remove());
	}`, sel)
	return err
}

// rodElement adapts *rod.Element; queries are scoped to the element subtree.
type rodElement struct {
	el *rod.Element
}

func (r rodElement) Text() (string, error) {
	return r.el.Text()
}

func (r rodElement) Attr(name string) (string, error) {
	v, err := r.el.Attribute(name)
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", fmt.Errorf("element has no attribute %q", name)
	}
	return *v, nil
}

func (r rodElement) Element(sel string) (browser.Element, error) {
	el, err := r.el.Element(sel)
	if err != nil {
		return nil, err
	}
	return rodElement{el: el}, nil
}

func (r rodElement) Elements(sel string) ([]browser.Element, error) {
	els, err := r.el.Elements(sel)
	if err != nil {
		return nil, err
	}
	return wrapElements(els), nil
}

func wrapElements(els rod.Elements) []browser.Element {
	out := make([]browser.Element, len(els))
	for i, el := range els {
		out[i] = rodElement{el: el}
	}
	return out
}
