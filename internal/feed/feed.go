// Package feed parses the participating-stores XML feed.
package feed

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	dom "Loyalty/internal/domain"
)

// The feed root is a <department> element whose children are one element per
// store; the child's tag name is the store identifier used by the points
// ledger:
//
//	<department>
//	  <store1>
//	    <depName>...</depName>
//	    <description>...</description>
//	    <webLink>...</webLink>
//	    <promotion>...</promotion>
//	  </store1>
//	</department>
type department struct {
	XMLName xml.Name `xml:"department"`
	Stores  []entry  `xml:",any"`
}

type entry struct {
	XMLName     xml.Name
	Name        string `xml:"depName"`
	Description string `xml:"description"`
	Website     string `xml:"webLink"`
	Promotion   string `xml:"promotion"`
}

// Parse decodes the feed document into stores, in feed order.
func Parse(data []byte) ([]dom.Store, error) {
	var doc department
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse store feed: %w", err)
	}
	stores := make([]dom.Store, 0, len(doc.Stores))
	for _, e := range doc.Stores {
		stores = append(stores, dom.Store{
			ID:          e.XMLName.Local,
			Name:        strings.TrimSpace(e.Name),
			Description: strings.TrimSpace(e.Description),
			Website:     strings.TrimSpace(e.Website),
			Promotion:   strings.TrimSpace(e.Promotion),
		})
	}
	return stores, nil
}

// Load reads and parses the feed file at path.
func Load(path string) ([]dom.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read store feed: %w", err)
	}
	return Parse(data)
}
