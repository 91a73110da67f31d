// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

import "github.com/ericfisherdev/socialroute/internal/motion"

// Page holds the document-level data every page shares.
type Page struct {
	Title        string
	Description  string
	Keywords     string
	ThemeColor   string
	CanonicalURL string
	SiteName     string
	Nav          []Link
	FooterLinks  []Link
	Social       []Link
	Copyright    string

	// MotionCSS is the initial-state stylesheet; empty under reduced motion.
	MotionCSS string
	// Motion is the binding manifest for static/motion.js.
	Motion *motion.Manifest
}

// HasMotion reports whether the page ships any scroll bindings.
func (p Page) HasMotion() bool {
	return p.Motion != nil && !p.Motion.Empty()
}

// Link is an anchor with an optional display value distinct from its label.
type Link struct {
	Href     string
	Label    string
	Value    string
	External bool
}

// Target returns the anchor target attribute value.
func (l Link) Target() string {
	if l.External {
		return "_blank"
	}
	return "_self"
}

// Rel returns the anchor rel attribute value.
func (l Link) Rel() string {
	if l.External {
		return "noopener noreferrer"
	}
	return ""
}

// Home is the single-page site body.
type Home struct {
	Hero         Hero
	Metrics      []Metric
	Trust        []TrustItem
	About        About
	Services     []Service
	Projects     []Project
	Process      []Step
	Clients      []Client
	Reasons      []Reason
	Testimonials []Testimonial
	CTA          CTA
	Contact      Contact
}

// Word is one headline word; highlighted words get the gradient treatment.
type Word struct {
	Text      string
	Highlight bool
}

// Class returns the CSS class for the word.
func (w Word) Class() string {
	if w.Highlight {
		return "hero-word is-highlight"
	}
	return "hero-word"
}

// Hero holds the opening section.
type Hero struct {
	Words        []Word
	Subhead      string
	BadgeText    string
	CyclingFirst string
	CyclingWords string // "|" separated, read by site.js
	Primary      Link
	Secondary    Link
}

// Metric is one animated counter. Value is the final figure as text.
type Metric struct {
	Value  string
	Suffix string
	Label  string
}

// TrustItem is one trust-strip card.
type TrustItem struct {
	Label       string
	Description string
	Image       string
}

// About holds the agency introduction.
type About struct {
	Eyebrow    string
	Heading    string
	Lead       string
	Paragraphs []string
	Philosophy []string
}

// Service is one service card. DescriptionHTML is already sanitized.
type Service struct {
	ID              string
	Number          string
	Title           string
	DescriptionHTML string
	Goals           []string
}

// Project is one portfolio card.
type Project struct {
	Title    string
	Category string
	Image    string
	ImageAlt string
	Link     string
}

// Step is one process stage with its icon markup.
type Step struct {
	Number      string
	Title       string
	Description string
	IconSVG     string
}

// Client is one logo tile. Logo empty means Initials are shown.
type Client struct {
	Name     string
	Logo     string
	Initials string
	Link     string
}

// HasLogo reports whether the client has a logo image.
func (c Client) HasLogo() bool {
	return c.Logo != ""
}

// Reason is one "why us" point with its icon markup.
type Reason struct {
	Title   string
	IconSVG string
}

// Testimonial is one client quote.
type Testimonial struct {
	Quote  string
	Author string
	Role   string
}

// CTA is the closing call to action.
type CTA struct {
	Lead      string
	Highlight string
	Trail     string
	Primary   Link
	Secondary Link
}

// Option is one <select> choice.
type Option struct {
	Value string
	Label string
}

// Contact holds the contact section and its form.
type Contact struct {
	Heading  string
	Links    []Link
	Social   []Link
	Office   string
	Address  []string
	Services []Option
	Endpoint string
}

// Legal is a rendered legal document.
type Legal struct {
	Title string
	HTML  string
}
