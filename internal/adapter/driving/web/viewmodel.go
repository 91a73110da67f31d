package web

import (
	"fmt"
	"strconv"
	"strings"

	vm "github.com/ericfisherdev/socialroute/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/socialroute/internal/domain/model"
	"github.com/ericfisherdev/socialroute/internal/motion"
)

const contactEndpoint = "/api/contact"

// sectionEntrance is one section's reveal. Every section shares the trigger
// window and only varies travel and scale.
type sectionEntrance struct {
	selector string
	y        float64
	scale    float64
	stagger  string
}

var sectionEntrances = []sectionEntrance{
	{selector: "#metrics-section [data-motion-content]", y: 40, scale: 0.99},
	{selector: "#trust [data-motion-content]", y: 0, scale: 1},
	{selector: "#about [data-motion-content]", y: 48, scale: 0.98},
	{selector: "#services [data-motion-content]", y: 56, scale: 0.98, stagger: "[data-stagger]"},
	{selector: "#work [data-motion-content]", y: 48, scale: 0.98, stagger: "[data-stagger]"},
	{selector: "#process [data-motion-content]", y: 48, scale: 0.98, stagger: "[data-stagger]"},
	{selector: "#clients [data-motion-content]", y: 40, scale: 0.99},
	{selector: "#why-us [data-motion-content]", y: 48, scale: 0.98, stagger: "[data-stagger]"},
	{selector: "#testimonials [data-motion-content]", y: 48, scale: 0.98},
	{selector: "#cta [data-motion-content]", y: 48, scale: 0.98},
	{selector: "#contact [data-motion-content]", y: 48, scale: 0.98},
}

// touchScrub shortens the smoothing lag on touch screens, where native
// momentum scrolling already eases the motion.
const touchScrub = 0.6

func sectionConfig(s sectionEntrance, caps motion.Capabilities) motion.EntranceConfig {
	cfg := motion.DefaultEntrance()
	if caps.Touch {
		cfg.Scrub = touchScrub
	}
	cfg.End = "top 35%"
	cfg.Opacity = 0.92
	cfg.Y = s.y
	cfg.Scale = s.scale
	cfg.Ease = motion.EaseEditorial
	cfg.StaggerSelector = s.stagger
	return cfg
}

// buildManifest registers the home page's scroll bindings for caps.
func buildManifest(caps motion.Capabilities) (*motion.Manifest, error) {
	m := motion.NewManifest(caps)

	for _, s := range sectionEntrances {
		if err := m.AddEntrance(s.selector, sectionConfig(s, caps)); err != nil {
			return nil, err
		}
	}

	shift := 120.0
	if caps.Narrow {
		shift = 60
	}
	if err := m.AddProgress("#hero", motion.DefaultRange(),
		motion.VarBinding{Name: "--hero-shift", Curve: ptr(motion.NewCurve(0, -shift)), Unit: "px"},
		motion.VarBinding{Name: "--hero-cue", Curve: &motion.Curve{Stops: []motion.Stop{{At: 0, Value: 1}, {At: 0.1, Value: 0}}}},
	); err != nil {
		return nil, err
	}

	if err := m.AddProgress("#process", motion.Range{Start: "top bottom", End: "bottom top"},
		motion.VarBinding{Name: "--header-opacity", Curve: &motion.Curve{Stops: []motion.Stop{
			{At: 0, Value: 0}, {At: 0.2, Value: 1}, {At: 0.8, Value: 1}, {At: 1, Value: 0},
		}}},
		motion.VarBinding{Name: "--header-y", Curve: ptr(motion.NewCurve(0, -50)), Unit: "px"},
	); err != nil {
		return nil, err
	}

	if !caps.Narrow {
		if err := m.AddProgress("#main", motion.Range{Start: "top top", End: "bottom bottom"},
			motion.VarBinding{Name: "--morph-rotate", Curve: ptr(motion.NewCurve(0, 360)), Unit: "deg"},
			motion.VarBinding{Name: "--morph-radius", Curve: ptr(motion.NewCurve(50, 10, 50, 0, 50)), Unit: "%"},
			motion.VarBinding{Name: "--morph-color", Colors: ptr(motion.NewColorCurve("#ffffff", "#6366f1", "#ffffff"))},
		); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func ptr[T any](v T) *T {
	return &v
}

// toPage builds the document chrome shared by every page. prefix is
// prepended to section anchors so legal pages link back into the home page.
func toPage(c *model.Catalog, title, canonical, prefix string, m *motion.Manifest) vm.Page {
	page := vm.Page{
		Title:        title,
		Description:  c.Site.Description,
		Keywords:     strings.Join(c.Site.Keywords, ", "),
		ThemeColor:   c.Site.ThemeColor,
		CanonicalURL: canonical,
		SiteName:     c.Site.Name,
		Copyright:    c.Site.Copyright,
		Motion:       m,
		FooterLinks: []vm.Link{
			{Href: "/privacy", Label: "Privacy Policy"},
			{Href: "/terms", Label: "Terms & Conditions"},
		},
	}
	if m != nil {
		page.MotionCSS = m.InitialCSS()
	}

	for _, n := range c.Nav {
		page.Nav = append(page.Nav, vm.Link{Href: prefix + n.Href, Label: n.Label})
	}
	for _, s := range c.Contact.Social {
		page.Social = append(page.Social, toLink(s))
	}
	return page
}

func toLink(l model.ContactLink) vm.Link {
	return vm.Link{Href: l.Href, Label: l.Label, Value: l.Value, External: l.External}
}

func toNavLink(l model.NavLink) vm.Link {
	return vm.Link{Href: l.Href, Label: l.Label}
}

// toHomeViewModel converts the catalog into the home page body.
func toHomeViewModel(c *model.Catalog) vm.Home {
	home := vm.Home{
		Hero: toHeroViewModel(c.Hero),
		About: vm.About{
			Eyebrow:    c.About.Eyebrow,
			Heading:    c.About.Heading,
			Lead:       c.About.Lead,
			Paragraphs: c.About.Paragraphs,
			Philosophy: c.About.Philosophy,
		},
		CTA: vm.CTA{
			Lead:      c.CTA.Lead,
			Highlight: c.CTA.Highlight,
			Trail:     c.CTA.Trail,
			Primary:   toNavLink(c.CTA.Primary),
			Secondary: toNavLink(c.CTA.Secondary),
		},
		Contact: vm.Contact{
			Heading:  c.Contact.Heading,
			Office:   c.Contact.Office,
			Address:  c.Contact.Address,
			Endpoint: contactEndpoint,
		},
	}

	for _, m := range c.Metrics {
		home.Metrics = append(home.Metrics, vm.Metric{
			Value:  strconv.Itoa(m.Value),
			Suffix: m.Suffix,
			Label:  m.Label,
		})
	}
	for _, t := range c.Trust {
		home.Trust = append(home.Trust, vm.TrustItem{Label: t.Label, Description: t.Description, Image: t.Image})
	}
	for i, s := range c.Services {
		home.Services = append(home.Services, vm.Service{
			ID:              s.ID,
			Number:          fmt.Sprintf("%02d", i+1),
			Title:           s.Title,
			DescriptionHTML: s.DescriptionHTML,
			Goals:           s.Goals,
		})
		home.Contact.Services = append(home.Contact.Services, vm.Option{Value: s.ID, Label: s.Title})
	}
	for _, p := range c.Projects {
		alt := p.ImageAlt
		if alt == "" {
			alt = p.Title
		}
		home.Projects = append(home.Projects, vm.Project{
			Title:    p.Title,
			Category: p.Category,
			Image:    p.Image,
			ImageAlt: alt,
			Link:     p.Link,
		})
	}
	for i, s := range c.Process {
		home.Process = append(home.Process, vm.Step{
			Number:      fmt.Sprintf("%02d", i+1),
			Title:       s.Title,
			Description: s.Description,
			IconSVG:     iconSVG(s.Icon),
		})
	}
	for _, cl := range c.Clients {
		home.Clients = append(home.Clients, vm.Client{
			Name:     cl.Name,
			Logo:     cl.Logo,
			Initials: cl.Initials(),
			Link:     cl.Link,
		})
	}
	for _, r := range c.Reasons {
		home.Reasons = append(home.Reasons, vm.Reason{Title: r.Title, IconSVG: iconSVG(r.Icon)})
	}
	for _, t := range c.Testimonials {
		home.Testimonials = append(home.Testimonials, vm.Testimonial{Quote: t.Quote, Author: t.Author, Role: t.Role})
	}
	for _, l := range c.Contact.Links {
		home.Contact.Links = append(home.Contact.Links, toLink(l))
	}
	for _, l := range c.Contact.Social {
		home.Contact.Social = append(home.Contact.Social, toLink(l))
	}
	return home
}

// toHeroViewModel splits the headline into words and flags the highlighted ones.
func toHeroViewModel(h model.Hero) vm.Hero {
	highlight := make(map[string]bool, len(h.Highlight))
	for _, w := range h.Highlight {
		highlight[strings.ToLower(w)] = true
	}

	hero := vm.Hero{
		Subhead:      h.Subhead,
		BadgeText:    h.BadgeText,
		CyclingWords: strings.Join(h.CyclingWords, "|"),
		Primary:      toNavLink(h.PrimaryCTA),
		Secondary:    toNavLink(h.SecondaryCTA),
	}
	if len(h.CyclingWords) > 0 {
		hero.CyclingFirst = h.CyclingWords[0]
	}
	for _, w := range strings.Fields(h.Headline) {
		key := strings.ToLower(strings.Trim(w, ".,!?"))
		hero.Words = append(hero.Words, vm.Word{Text: w, Highlight: highlight[key]})
	}
	return hero
}
