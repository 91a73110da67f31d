package content

// Intermediate YAML shapes. They mirror model.Catalog but carry yaml tags
// and markdown sources; toModel maps them after validation.

type catalogDoc struct {
	Site         siteDoc          `yaml:"site"`
	Nav          []linkDoc        `yaml:"nav"`
	Hero         heroDoc          `yaml:"hero"`
	Metrics      []metricDoc      `yaml:"metrics"`
	Trust        []trustDoc       `yaml:"trust"`
	About        aboutDoc         `yaml:"about"`
	Services     []serviceDoc     `yaml:"services"`
	Projects     []projectDoc     `yaml:"projects"`
	Process      []processDoc     `yaml:"process"`
	Clients      []clientDoc      `yaml:"clients"`
	Reasons      []reasonDoc      `yaml:"reasons"`
	Testimonials []testimonialDoc `yaml:"testimonials"`
	CTA          ctaDoc           `yaml:"cta"`
	Contact      contactDoc       `yaml:"contact"`
}

type siteDoc struct {
	Name        string   `yaml:"name"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
	ThemeColor  string   `yaml:"theme_color"`
	Background  string   `yaml:"background"`
	Copyright   string   `yaml:"copyright"`
}

type linkDoc struct {
	Href     string `yaml:"href"`
	Label    string `yaml:"label"`
	Value    string `yaml:"value"`
	External bool   `yaml:"external"`
}

type heroDoc struct {
	Headline     string   `yaml:"headline"`
	Highlight    []string `yaml:"highlight"`
	Subhead      string   `yaml:"subhead"`
	BadgeText    string   `yaml:"badge_text"`
	CyclingWords []string `yaml:"cycling_words"`
	PrimaryCTA   linkDoc  `yaml:"primary_cta"`
	SecondaryCTA linkDoc  `yaml:"secondary_cta"`
}

type metricDoc struct {
	Value  int    `yaml:"value"`
	Suffix string `yaml:"suffix"`
	Label  string `yaml:"label"`
}

type trustDoc struct {
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
}

type aboutDoc struct {
	Eyebrow    string   `yaml:"eyebrow"`
	Heading    string   `yaml:"heading"`
	Lead       string   `yaml:"lead"`
	Paragraphs []string `yaml:"paragraphs"`
	Philosophy []string `yaml:"philosophy"`
}

type serviceDoc struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Goals       []string `yaml:"goals"`
}

type projectDoc struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Category string `yaml:"category"`
	Image    string `yaml:"image"`
	ImageAlt string `yaml:"image_alt"`
	Link     string `yaml:"link"`
}

type processDoc struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

type clientDoc struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Logo string `yaml:"logo"`
	Link string `yaml:"link"`
}

type reasonDoc struct {
	Title string `yaml:"title"`
	Icon  string `yaml:"icon"`
}

type testimonialDoc struct {
	Quote  string `yaml:"quote"`
	Author string `yaml:"author"`
	Role   string `yaml:"role"`
}

type ctaDoc struct {
	Lead      string  `yaml:"lead"`
	Highlight string  `yaml:"highlight"`
	Trail     string  `yaml:"trail"`
	Primary   linkDoc `yaml:"primary"`
	Secondary linkDoc `yaml:"secondary"`
}

type contactDoc struct {
	Heading string    `yaml:"heading"`
	Links   []linkDoc `yaml:"links"`
	Social  []linkDoc `yaml:"social"`
	Office  string    `yaml:"office"`
	Address []string  `yaml:"address"`
}
