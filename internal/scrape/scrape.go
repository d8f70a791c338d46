// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scrape extracts the NIST X-ray mass attenuation tables from their
// reference pages. These are not general HTML parsers: each routine is
// coupled to the exact markup of one specific page and will fail loudly if
// the upstream layout changes.
package scrape

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/nuclide-data/pkg/types"
)

// Page URLs. Declared as vars so tests can substitute httptest servers.
var (
	// MaterialConstantsURL is the NIST table of material constants for the
	// elements (Z, symbol, name, Z/A, mean excitation energy, density).
	MaterialConstantsURL = "https://physics.nist.gov/PhysRefData/XrayMassCoef/tab1.html"

	// ElementURLTemplate is the per-element attenuation page, parameterized
	// by zero-padded two-digit atomic number.
	ElementURLTemplate = "https://physics.nist.gov/PhysRefData/XrayMassCoef/ElemTab/z%02d.html"
)

// Column widths for fixed-width rendering of each table shape.
var (
	MaterialConstantsWidths = []int{4, 8, 18, 10, 10, 10}
	ElementWidths           = []int{12, 12, 12}
)

// triplePattern matches one data row of the per-element attenuation table:
// a run of exactly three scientific-notation numbers (one digit, decimal
// point, digits, E, sign, two digits), each followed by whitespace. The
// trailing whitespace after the third number is required, so a final number
// butted against the closing tag does not start a new row.
var triplePattern = regexp.MustCompile(`(?:\d\.\d+E[+-]\d{2}\s+){3}`)

// Table is a scraped table: literal header and unit label rows followed by
// parsed data rows. It is built once, rendered, and discarded.
type Table struct {
	Header []string
	Units  []string
	Rows   [][]string
}

// Render serializes the table as fixed-width text: every cell left-justified
// and space-padded to the corresponding width, rows joined by newlines with
// no trailing newline.
func (t Table) Render(widths []int) string {
	all := make([][]string, 0, len(t.Rows)+2)
	all = append(all, t.Header, t.Units)
	all = append(all, t.Rows...)

	lines := make([]string, 0, len(all))
	for _, row := range all {
		var b strings.Builder
		for i, cell := range row {
			width := 0
			if i < len(widths) {
				width = widths[i]
			}
			fmt.Fprintf(&b, "%-*s", width, cell)
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// MaterialConstants scrapes the material-constants page: the first table on
// the page, minus its three header rows, one data row per table row. Cells
// holding only a non-breaking-space placeholder are dropped.
func MaterialConstants(client *http.Client, cfg types.HTTPConfig) (Table, error) {
	doc, err := fetchDocument(client, MaterialConstantsURL, cfg)
	if err != nil {
		return Table{}, err
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return Table{}, fmt.Errorf("no <TABLE> block found at %s", MaterialConstantsURL)
	}

	t := Table{
		Header: []string{"Z", "Symbol", "Element", "Z/A", "I", "Density"},
		Units:  []string{"", "", "", "", "(eV)", "(g/cm3)"},
	}

	rows := table.Find("tr")
	rows.Slice(min(3, rows.Length()), rows.Length()).Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			// TrimSpace also trims U+00A0, which is how &nbsp;
			// placeholder cells come out of the parser.
			text := strings.TrimSpace(td.Text())
			if text == "" {
				return
			}
			cells = append(cells, text)
		})
		if len(cells) > 0 {
			t.Rows = append(t.Rows, cells)
		}
	})

	return t, nil
}

// ElementAttenuation scrapes the attenuation table for atomic number z from
// its per-element page: every three-number run inside the page's <PRE> block
// becomes one row of (energy, mu/rho, mu_en/rho).
func ElementAttenuation(client *http.Client, z int, cfg types.HTTPConfig) (Table, error) {
	url := fmt.Sprintf(ElementURLTemplate, z)
	doc, err := fetchDocument(client, url, cfg)
	if err != nil {
		return Table{}, err
	}

	pre := doc.Find("pre")
	if pre.Length() == 0 {
		return Table{}, fmt.Errorf("no <PRE> block found at %s", url)
	}

	var content strings.Builder
	pre.Each(func(_ int, s *goquery.Selection) {
		content.WriteString(s.Text())
	})

	t := Table{
		Header: []string{"Energy", "mu/rho", "mu_en/rho"},
		Units:  []string{"(MeV)", "(cm2/g)", "(cm2/g)"},
	}
	for _, m := range triplePattern.FindAllString(content.String(), -1) {
		t.Rows = append(t.Rows, strings.Fields(m))
	}

	return t, nil
}

// fetchDocument GETs url and parses the body as HTML.
func fetchDocument(client *http.Client, url string, cfg types.HTTPConfig) (*goquery.Document, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", url, err)
	}
	return doc, nil
}
