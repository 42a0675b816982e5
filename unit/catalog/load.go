package catalog

import (
	"context"
	"fmt"

	"github.com/viant/afs"
)

// Source is a loaded catalog document together with its verbatim bytes.
type Source struct {
	URL      string
	Raw      []byte
	Document *Document
}

// Load reads the catalog from URL; an empty URL selects the embedded
// default. Any scheme registered with afs (file, http, mem, cloud storage)
// is accepted.
func Load(ctx context.Context, URL string) (*Source, error) {
	if URL == "" {
		return Default()
	}
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("download catalog %q: %w", URL, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %q: %w", URL, err)
	}
	return &Source{URL: URL, Raw: data, Document: doc}, nil
}

// Default returns the embedded catalog.
func Default() (*Source, error) {
	doc, err := Parse(embedded)
	if err != nil {
		return nil, fmt.Errorf("parse embedded catalog: %w", err)
	}
	return &Source{URL: DefaultURI, Raw: embedded, Document: doc}, nil
}
