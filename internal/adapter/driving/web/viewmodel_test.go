package web

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/socialroute/internal/domain/model"
	"github.com/ericfisherdev/socialroute/internal/motion"
)

func TestBuildManifest_ReducedMotionIsEmpty(t *testing.T) {
	m, err := buildManifest(motion.Capabilities{ReducedMotion: true, Touch: true})

	require.NoError(t, err)
	assert.True(t, m.Empty())
	assert.Empty(t, m.InitialCSS())
}

func TestBuildManifest_Desktop(t *testing.T) {
	m, err := buildManifest(motion.Capabilities{})
	require.NoError(t, err)

	require.Len(t, m.Entrances, len(sectionEntrances))
	for _, e := range m.Entrances {
		assert.Equal(t, "top 88%", e.Config.Start, e.Target)
		assert.Equal(t, "top 35%", e.Config.End, e.Target)
		assert.Equal(t, motion.DefaultScrub, e.Config.Scrub, e.Target)
		assert.Equal(t, 0.92, e.Config.Opacity, e.Target)
		assert.Equal(t, motion.EaseEditorial, e.Config.Ease, e.Target)
	}

	targets := make([]string, 0, len(m.Progress))
	for _, p := range m.Progress {
		targets = append(targets, p.Target)
	}
	assert.Equal(t, []string{"#hero", "#process", "#main"}, targets)

	css := m.InitialCSS()
	assert.True(t, strings.HasPrefix(css, "@media (prefers-reduced-motion: no-preference){"))
	assert.Contains(t, css, "html.motion-ready #trust [data-motion-content]{opacity:0.92;transform:translate3d(0,0px,0) scale(1)")
	assert.Contains(t, css, "html.motion-ready #services [data-motion-content] [data-stagger]{opacity:0;transform:translate3d(0,24px,0) scale(1)}")
	assert.Contains(t, css, "html.motion-ready #process{--header-opacity:0;--header-y:0px}")
	assert.Contains(t, css, "html.motion-ready #main{--morph-rotate:0deg;--morph-radius:50%;--morph-color:#ffffff}")
}

func TestBuildManifest_TouchAndNarrow(t *testing.T) {
	m, err := buildManifest(motion.Capabilities{Touch: true, Narrow: true})
	require.NoError(t, err)

	for _, e := range m.Entrances {
		assert.Equal(t, touchScrub, e.Config.Scrub, e.Target)
	}
	for _, p := range m.Progress {
		assert.NotEqual(t, "#main", p.Target, "morpher is desktop only")
		if p.Target == "#hero" {
			assert.Equal(t, "-60px", p.Vars[0].Value(1))
		}
	}
}

func TestToHeroViewModel(t *testing.T) {
	hero := toHeroViewModel(model.Hero{
		Headline:     "Your Route to Digital Growth.",
		Highlight:    []string{"route", "Growth"},
		CyclingWords: []string{"Create", "Engage", "Convert"},
		PrimaryCTA:   model.NavLink{Href: "#contact", Label: "Start"},
	})

	var highlighted []string
	for _, w := range hero.Words {
		if w.Highlight {
			highlighted = append(highlighted, w.Text)
		}
	}
	assert.Equal(t, []string{"Route", "Growth."}, highlighted)
	assert.Len(t, hero.Words, 5)
	assert.Equal(t, "Create", hero.CyclingFirst)
	assert.Equal(t, "Create|Engage|Convert", hero.CyclingWords)
	assert.Equal(t, "#contact", hero.Primary.Href)
}

func TestToHeroViewModel_NoCyclingWords(t *testing.T) {
	hero := toHeroViewModel(model.Hero{Headline: "Hello"})

	assert.Empty(t, hero.CyclingFirst)
	assert.Empty(t, hero.CyclingWords)
}

func TestToHomeViewModel(t *testing.T) {
	c := &model.Catalog{
		Metrics:  []model.Metric{{Value: 50, Suffix: "+", Label: "Projects"}},
		Services: []model.Service{{ID: "seo", Title: "SEO"}, {ID: "smm", Title: "Social"}},
		Projects: []model.Project{{Title: "Lumina", Image: "/x.jpg"}},
		Process:  []model.ProcessStep{{ID: "discover", Title: "Discover", Icon: "target"}, {ID: "ship", Title: "Ship", Icon: "nope"}},
		Clients:  []model.Client{{ID: "1", Name: "Brand One"}},
		Reasons:  []model.Reason{{Title: "Team", Icon: "users"}},
	}

	home := toHomeViewModel(c)

	assert.Equal(t, "50", home.Metrics[0].Value)
	assert.Equal(t, "02", home.Services[1].Number)
	assert.Equal(t, "/api/contact", home.Contact.Endpoint)
	require.Len(t, home.Contact.Services, 2)
	assert.Equal(t, "seo", home.Contact.Services[0].Value)
	assert.Equal(t, "Lumina", home.Projects[0].ImageAlt, "alt falls back to title")
	assert.Contains(t, home.Process[0].IconSVG, `r="6"`)
	assert.Contains(t, home.Process[1].IconSVG, "<polygon", "unknown icon falls back to star")
	assert.Equal(t, "BO", home.Clients[0].Initials)
	assert.False(t, home.Clients[0].HasLogo())
	assert.Contains(t, home.Reasons[0].IconSVG, `cx="9"`)
}

func TestToPage_LegalPrefixesAnchors(t *testing.T) {
	c := &model.Catalog{
		Site: model.Site{Name: "Social Route", Keywords: []string{"SEO", "Branding"}},
		Nav:  []model.NavLink{{Href: "#about", Label: "About"}},
	}

	page := toPage(c, "Privacy", "https://example.com/privacy", "/", nil)

	assert.Equal(t, "/#about", page.Nav[0].Href)
	assert.Equal(t, "SEO, Branding", page.Keywords)
	assert.False(t, page.HasMotion())
	assert.Empty(t, page.MotionCSS)
}
