package main

import (
	"errors"
	"fmt"
)

var ErrUnknownLink = errors.New("unknown link")

// OutboundLink is an external URL reachable through the /go/:code redirect.
type OutboundLink struct {
	Code  string `json:"code"`
	URL   string `json:"url"`
	Label string `json:"label"`
}

// LinkRegistry resolves short codes to the page's outbound links.
type LinkRegistry struct {
	order []string
	links map[string]OutboundLink
}

func NewLinkRegistry(c *Content) *LinkRegistry {
	r := &LinkRegistry{links: make(map[string]OutboundLink)}
	p := c.Profile()
	r.add(OutboundLink{Code: "linkedin", URL: p.LinkedIn, Label: "LinkedIn"})
	r.add(OutboundLink{Code: "github", URL: p.GitHub, Label: "GitHub"})
	for i, proj := range c.Projects() {
		r.add(OutboundLink{Code: projectLinkCode(i), URL: proj.Link, Label: proj.Title})
	}
	return r
}

func (r *LinkRegistry) add(l OutboundLink) {
	if _, ok := r.links[l.Code]; !ok {
		r.order = append(r.order, l.Code)
	}
	r.links[l.Code] = l
}

func (r *LinkRegistry) Resolve(code string) (OutboundLink, error) {
	l, ok := r.links[code]
	if !ok {
		return OutboundLink{}, fmt.Errorf("%w: %q", ErrUnknownLink, code)
	}
	return l, nil
}

// All returns the links in registration order.
func (r *LinkRegistry) All() []OutboundLink {
	out := make([]OutboundLink, 0, len(r.order))
	for _, code := range r.order {
		out = append(out, r.links[code])
	}
	return out
}

func (r *LinkRegistry) Href(code string) string {
	return "/go/" + code
}

// Hrefs maps every code to its redirect path, for templates.
func (r *LinkRegistry) Hrefs() map[string]string {
	out := make(map[string]string, len(r.links))
	for code := range r.links {
		out[code] = r.Href(code)
	}
	return out
}

func projectLinkCode(index int) string {
	return fmt.Sprintf("project-%d", index+1)
}
