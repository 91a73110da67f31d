package driven

import "github.com/ericfisherdev/socialroute/internal/domain/model"

// CatalogSource defines the driven port for the site's static content.
type CatalogSource interface {
	// Catalog returns the loaded content. The returned value is shared and
	// must not be modified.
	Catalog() *model.Catalog

	// LegalPage returns the rendered legal document for slug ("privacy",
	// "terms"). The boolean is false for unknown slugs.
	LegalPage(slug string) (model.LegalPage, bool)
}
