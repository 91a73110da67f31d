package model

// Catalog is the site's static content. It is loaded once at startup and
// never modified afterwards.
type Catalog struct {
	Site         Site
	Nav          []NavLink
	Hero         Hero
	Metrics      []Metric
	Trust        []TrustItem
	About        About
	Services     []Service
	Projects     []Project
	Process      []ProcessStep
	Clients      []Client
	Reasons      []Reason
	Testimonials []Testimonial
	CTA          CTA
	Contact      Contact
}

// Site holds page-level metadata.
type Site struct {
	Name        string
	Title       string
	Description string
	Keywords    []string
	ThemeColor  string
	Background  string
	Copyright   string
}

// NavLink is one header navigation entry pointing at a section anchor.
type NavLink struct {
	Href  string
	Label string
}

// Hero is the opening section.
type Hero struct {
	Headline     string
	Highlight    []string // Headline words rendered with the gradient treatment.
	Subhead      string
	BadgeText    string
	CyclingWords []string
	PrimaryCTA   NavLink
	SecondaryCTA NavLink
}

// Metric is one headline figure, shown as Value followed by Suffix.
type Metric struct {
	Value  int
	Suffix string
	Label  string
}

// TrustItem is one card in the trust strip.
type TrustItem struct {
	Label       string
	Description string
	Image       string
}

// About is the agency introduction.
type About struct {
	Eyebrow    string
	Heading    string
	Lead       string
	Paragraphs []string
	Philosophy []string
}

// Service is one offering. DescriptionHTML is sanitized markup rendered from
// the catalog's markdown source.
type Service struct {
	ID              string
	Title           string
	DescriptionHTML string
	Goals           []string
}

// Project is one portfolio entry.
type Project struct {
	ID       string
	Title    string
	Category string
	Image    string
	ImageAlt string
	Link     string
}

// ProcessStep is one stage of the delivery process.
type ProcessStep struct {
	ID          string
	Title       string
	Description string
	Icon        string
}

// Client is a brand the agency has worked with. Logo may be empty, in which
// case the name's initials are shown.
type Client struct {
	ID   string
	Name string
	Logo string
	Link string
}

// Initials returns up to two leading letters of the client's name.
func (c Client) Initials() string {
	var out []rune
	start := true
	for _, r := range c.Name {
		if r == ' ' {
			start = true
			continue
		}
		if start {
			out = append(out, r)
			if len(out) == 2 {
				break
			}
		}
		start = false
	}
	return string(out)
}

// Reason is one "why choose us" point.
type Reason struct {
	Title string
	Icon  string
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
	Primary   NavLink
	Secondary NavLink
}

// ContactLink is one way to reach the agency.
type ContactLink struct {
	Label    string
	Href     string
	Value    string
	External bool
}

// Contact is the contact section content.
type Contact struct {
	Heading string
	Links   []ContactLink
	Social  []ContactLink
	Office  string
	Address []string
}

// LegalPage is a rendered legal document such as the privacy policy.
type LegalPage struct {
	Slug  string
	Title string
	HTML  string
}
