// Package content loads the site's static copy from an embedded YAML
// catalog and markdown legal pages.
package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ericfisherdev/socialroute/internal/domain/model"
	"github.com/ericfisherdev/socialroute/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.CatalogSource = (*Source)(nil)

//go:embed data/catalog.yaml data/legal/*.md
var dataFS embed.FS

const (
	catalogFile = "catalog.yaml"
	legalDir    = "legal"
)

// Source serves a catalog that was parsed and validated once.
type Source struct {
	catalog *model.Catalog
	legal   map[string]model.LegalPage
}

// Load reads the embedded catalog and legal pages.
func Load() (*Source, error) {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		return nil, fmt.Errorf("open embedded content: %w", err)
	}
	return LoadFS(sub)
}

// LoadFS reads catalog.yaml and legal/*.md from fsys.
func LoadFS(fsys fs.FS) (*Source, error) {
	raw, err := fs.ReadFile(fsys, catalogFile)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var doc catalogDoc
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if err := validate(&doc); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}

	legal, err := loadLegal(fsys)
	if err != nil {
		return nil, err
	}

	return &Source{catalog: doc.toModel(), legal: legal}, nil
}

// Catalog returns the shared catalog.
func (s *Source) Catalog() *model.Catalog {
	return s.catalog
}

// LegalPage returns the rendered legal page for slug.
func (s *Source) LegalPage(slug string) (model.LegalPage, bool) {
	p, ok := s.legal[slug]
	return p, ok
}

// ServiceIDs lists the catalog's service identifiers in display order.
func (s *Source) ServiceIDs() []string {
	ids := make([]string, 0, len(s.catalog.Services))
	for _, svc := range s.catalog.Services {
		ids = append(ids, svc.ID)
	}
	return ids
}

func loadLegal(fsys fs.FS) (map[string]model.LegalPage, error) {
	matches, err := fs.Glob(fsys, path.Join(legalDir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("list legal pages: %w", err)
	}

	pages := make(map[string]model.LegalPage, len(matches))
	for _, name := range matches {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read legal page %s: %w", name, err)
		}
		title, body := splitTitle(string(raw))
		if title == "" {
			return nil, fmt.Errorf("legal page %s: missing title heading", name)
		}
		slug := strings.TrimSuffix(path.Base(name), ".md")
		pages[slug] = model.LegalPage{
			Slug:  slug,
			Title: title,
			HTML:  RenderMarkdown(body),
		}
	}
	return pages, nil
}

func validate(doc *catalogDoc) error {
	var errs []error
	require := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, fmt.Errorf("%s is required", field))
		}
	}

	require("site.name", doc.Site.Name)
	require("site.title", doc.Site.Title)
	require("hero.headline", doc.Hero.Headline)

	for i, l := range doc.Nav {
		if !strings.HasPrefix(l.Href, "#") {
			errs = append(errs, fmt.Errorf("nav[%d]: href %q must be a section anchor", i, l.Href))
		}
		require(fmt.Sprintf("nav[%d].label", i), l.Label)
	}

	if len(doc.Services) == 0 {
		errs = append(errs, errors.New("at least one service is required"))
	}
	serviceIDs := make([]string, 0, len(doc.Services))
	for i, s := range doc.Services {
		require(fmt.Sprintf("services[%d].title", i), s.Title)
		serviceIDs = append(serviceIDs, s.ID)
	}
	errs = append(errs, uniqueIDs("services", serviceIDs)...)

	projectIDs := make([]string, 0, len(doc.Projects))
	for i, p := range doc.Projects {
		require(fmt.Sprintf("projects[%d].title", i), p.Title)
		require(fmt.Sprintf("projects[%d].image", i), p.Image)
		projectIDs = append(projectIDs, p.ID)
	}
	errs = append(errs, uniqueIDs("projects", projectIDs)...)

	stepIDs := make([]string, 0, len(doc.Process))
	for _, p := range doc.Process {
		stepIDs = append(stepIDs, p.ID)
	}
	errs = append(errs, uniqueIDs("process", stepIDs)...)

	clientIDs := make([]string, 0, len(doc.Clients))
	for i, c := range doc.Clients {
		require(fmt.Sprintf("clients[%d].name", i), c.Name)
		clientIDs = append(clientIDs, c.ID)
	}
	errs = append(errs, uniqueIDs("clients", clientIDs)...)

	for i, m := range doc.Metrics {
		if m.Value < 0 {
			errs = append(errs, fmt.Errorf("metrics[%d]: value %d is negative", i, m.Value))
		}
	}

	return errors.Join(errs...)
}

func uniqueIDs(section string, ids []string) []error {
	var errs []error
	seen := make(map[string]bool, len(ids))
	for i, id := range ids {
		switch {
		case id == "":
			errs = append(errs, fmt.Errorf("%s[%d]: id is required", section, i))
		case seen[id]:
			errs = append(errs, fmt.Errorf("%s[%d]: duplicate id %q", section, i, id))
		}
		seen[id] = true
	}
	return errs
}

func (d *catalogDoc) toModel() *model.Catalog {
	c := &model.Catalog{
		Site: model.Site{
			Name:        d.Site.Name,
			Title:       d.Site.Title,
			Description: strings.TrimSpace(d.Site.Description),
			Keywords:    d.Site.Keywords,
			ThemeColor:  d.Site.ThemeColor,
			Background:  d.Site.Background,
			Copyright:   d.Site.Copyright,
		},
		Nav: navLinks(d.Nav),
		Hero: model.Hero{
			Headline:     d.Hero.Headline,
			Highlight:    d.Hero.Highlight,
			Subhead:      strings.TrimSpace(d.Hero.Subhead),
			BadgeText:    d.Hero.BadgeText,
			CyclingWords: d.Hero.CyclingWords,
			PrimaryCTA:   d.Hero.PrimaryCTA.navLink(),
			SecondaryCTA: d.Hero.SecondaryCTA.navLink(),
		},
		About: model.About{
			Eyebrow:    d.About.Eyebrow,
			Heading:    d.About.Heading,
			Lead:       strings.TrimSpace(d.About.Lead),
			Paragraphs: d.About.Paragraphs,
			Philosophy: d.About.Philosophy,
		},
		CTA: model.CTA{
			Lead:      d.CTA.Lead,
			Highlight: d.CTA.Highlight,
			Trail:     d.CTA.Trail,
			Primary:   d.CTA.Primary.navLink(),
			Secondary: d.CTA.Secondary.navLink(),
		},
		Contact: model.Contact{
			Heading: d.Contact.Heading,
			Links:   contactLinks(d.Contact.Links),
			Social:  contactLinks(d.Contact.Social),
			Office:  d.Contact.Office,
			Address: d.Contact.Address,
		},
	}

	for _, m := range d.Metrics {
		c.Metrics = append(c.Metrics, model.Metric{Value: m.Value, Suffix: m.Suffix, Label: m.Label})
	}
	for _, t := range d.Trust {
		c.Trust = append(c.Trust, model.TrustItem{Label: t.Label, Description: t.Description, Image: t.Image})
	}
	for _, s := range d.Services {
		c.Services = append(c.Services, model.Service{
			ID:              s.ID,
			Title:           s.Title,
			DescriptionHTML: RenderMarkdown(s.Description),
			Goals:           s.Goals,
		})
	}
	for _, p := range d.Projects {
		c.Projects = append(c.Projects, model.Project{
			ID:       p.ID,
			Title:    p.Title,
			Category: p.Category,
			Image:    p.Image,
			ImageAlt: p.ImageAlt,
			Link:     p.Link,
		})
	}
	for _, p := range d.Process {
		c.Process = append(c.Process, model.ProcessStep{ID: p.ID, Title: p.Title, Description: p.Description, Icon: p.Icon})
	}
	for _, cl := range d.Clients {
		c.Clients = append(c.Clients, model.Client{ID: cl.ID, Name: cl.Name, Logo: cl.Logo, Link: cl.Link})
	}
	for _, r := range d.Reasons {
		c.Reasons = append(c.Reasons, model.Reason{Title: r.Title, Icon: r.Icon})
	}
	for _, t := range d.Testimonials {
		c.Testimonials = append(c.Testimonials, model.Testimonial{
			Quote:  strings.TrimSpace(t.Quote),
			Author: t.Author,
			Role:   t.Role,
		})
	}
	return c
}

func (l linkDoc) navLink() model.NavLink {
	return model.NavLink{Href: l.Href, Label: l.Label}
}

func navLinks(docs []linkDoc) []model.NavLink {
	out := make([]model.NavLink, 0, len(docs))
	for _, l := range docs {
		out = append(out, l.navLink())
	}
	return out
}

func contactLinks(docs []linkDoc) []model.ContactLink {
	out := make([]model.ContactLink, 0, len(docs))
	for _, l := range docs {
		out = append(out, model.ContactLink{Label: l.Label, Href: l.Href, Value: l.Value, External: l.External})
	}
	return out
}
