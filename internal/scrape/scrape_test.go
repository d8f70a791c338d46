// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/nuclide-data/pkg/types"
)

// specimen markup matching the shape of the two NIST pages.
const (
	materialsHTML = `<html><body>
<TABLE BORDER=1>
<TR>h1</TR>
<TR>h2</TR>
<TR>h3</TR>
<TR><TD>1</TD><TD>H</TD><TD>Hydrogen</TD><TD>0.5</TD><TD>19.2</TD><TD>8.4e-5</TD></TR>
</TABLE>
</body></html>`

	elementHTML = `<html><body><PRE>1.000E-03 1.000E+01 2.000E+01 9.999E-04 1.0E+00 1.0E+00</PRE></body></html>`
)

func serveMaterials(t *testing.T, html string) *http.Client {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(html))
	}))
	t.Cleanup(ts.Close)

	orig := MaterialConstantsURL
	MaterialConstantsURL = ts.URL
	t.Cleanup(func() { MaterialConstantsURL = orig })

	return ts.Client()
}

func serveElement(t *testing.T, html string, wantPath *string) *http.Client {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if wantPath != nil {
			*wantPath = r.URL.Path
		}
		w.Write([]byte(html))
	}))
	t.Cleanup(ts.Close)

	orig := ElementURLTemplate
	ElementURLTemplate = ts.URL + "/z%02d.html"
	t.Cleanup(func() { ElementURLTemplate = orig })

	return ts.Client()
}

func TestMaterialConstants(t *testing.T) {
	client := serveMaterials(t, materialsHTML)

	table, err := MaterialConstants(client, types.HTTPConfig{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Z", "Symbol", "Element", "Z/A", "I", "Density"}, table.Header)
	assert.Equal(t, []string{"", "", "", "", "(eV)", "(g/cm3)"}, table.Units)
	// The three header rows are discarded; one data row remains.
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"1", "H", "Hydrogen", "0.5", "19.2", "8.4e-5"}, table.Rows[0])
}

func TestMaterialConstants_RenderedWidths(t *testing.T) {
	client := serveMaterials(t, materialsHTML)

	table, err := MaterialConstants(client, types.HTTPConfig{})
	require.NoError(t, err)

	lines := strings.Split(table.Render(MaterialConstantsWidths), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Z   Symbol  Element           Z/A       I         Density   ", lines[0])
	assert.Equal(t, "1   H       Hydrogen          0.5       19.2      8.4e-5    ", lines[2])
}

func TestMaterialConstants_DropsPlaceholderCells(t *testing.T) {
	html := `<TABLE><TR>a</TR><TR>b</TR><TR>c</TR>
<TR><TD>&nbsp;</TD><TD>6</TD><TD>C</TD><TD>Carbon</TD><TD>0.49955</TD><TD>78.0</TD><TD>1.700E-00</TD></TR>
</TABLE>`
	client := serveMaterials(t, html)

	table, err := MaterialConstants(client, types.HTTPConfig{})
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"6", "C", "Carbon", "0.49955", "78.0", "1.700E-00"}, table.Rows[0])
}

func TestMaterialConstants_NoTable(t *testing.T) {
	client := serveMaterials(t, `<html><body><p>nothing here</p></body></html>`)

	_, err := MaterialConstants(client, types.HTTPConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "<TABLE>")
}

func TestElementAttenuation(t *testing.T) {
	var gotPath string
	client := serveElement(t, elementHTML, &gotPath)

	table, err := ElementAttenuation(client, 1, types.HTTPConfig{})
	require.NoError(t, err)
	assert.Equal(t, "/z01.html", gotPath, "atomic number must be zero-padded to two digits")

	assert.Equal(t, []string{"Energy", "mu/rho", "mu_en/rho"}, table.Header)
	assert.Equal(t, []string{"(MeV)", "(cm2/g)", "(cm2/g)"}, table.Units)

	// Only the first run of three numbers each followed by whitespace forms
	// a row; the trailing pair at the end of the block does not.
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"1.000E-03", "1.000E+01", "2.000E+01"}, table.Rows[0])
}

func TestElementAttenuation_RenderedWidths(t *testing.T) {
	client := serveElement(t, elementHTML, nil)

	table, err := ElementAttenuation(client, 1, types.HTTPConfig{})
	require.NoError(t, err)

	lines := strings.Split(table.Render(ElementWidths), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Energy      mu/rho      mu_en/rho   ", lines[0])
	assert.Equal(t, "(MeV)       (cm2/g)     (cm2/g)     ", lines[1])
	assert.Equal(t, "1.000E-03   1.000E+01   2.000E+01   ", lines[2])
}

func TestElementAttenuation_MultipleRows(t *testing.T) {
	html := `<PRE>
1.000E-03 6.084E+03 6.076E+03
1.500E-03 1.976E+03 1.971E+03
2.000E-03 8.924E+02 8.895E+02
</PRE>`
	client := serveElement(t, html, nil)

	table, err := ElementAttenuation(client, 6, types.HTTPConfig{})
	require.NoError(t, err)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, []string{"1.500E-03", "1.976E+03", "1.971E+03"}, table.Rows[1])
}

func TestElementAttenuation_NoPre(t *testing.T) {
	client := serveElement(t, `<html><body>no data block</body></html>`, nil)

	_, err := ElementAttenuation(client, 1, types.HTTPConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "<PRE>")
}

func TestRender_ShortWidths(t *testing.T) {
	table := Table{
		Header: []string{"A", "B"},
		Units:  []string{"", ""},
		Rows:   [][]string{{"overlong-cell", "x"}},
	}
	// Cells longer than their column are not truncated, matching the
	// reference formatter.
	lines := strings.Split(table.Render([]int{4, 4}), "\n")
	assert.Equal(t, "overlong-cellx   ", lines[2])
}
