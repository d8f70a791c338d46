// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pdiddy/nuclide-data/internal/registry"
	"github.com/pdiddy/nuclide-data/internal/scrape"
	"github.com/pdiddy/nuclide-data/pkg/types"
)

const nistOutputDir = "XrayMassAttenCoef"

// assembleNISTMassAtten produces XrayMassAttenCoef/material_constants plus
// one fixed-width attenuation table per atomic number in [ZMin, ZMax], each
// named by its zero-padded two-digit number. The range defaults to hydrogen
// only; widen it via config or the --z-max flag.
func assembleNISTMassAtten(client *http.Client, cfg types.DatasetConfig, store *registry.Store, w io.Writer) ([]string, error) {
	outDir := filepath.Join(cfg.DataDir, nistOutputDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", outDir, err)
	}

	zMin, zMax := cfg.ZMin, cfg.ZMax
	if zMin <= 0 {
		zMin = 1
	}
	if zMax < zMin {
		zMax = zMin
	}

	constants, err := scrape.MaterialConstants(client, cfg.HTTPConfig)
	if err != nil {
		return nil, err
	}

	files := []string{"material_constants"}
	constantsPath := filepath.Join(outDir, "material_constants")
	if err := os.WriteFile(constantsPath, []byte(constants.Render(scrape.MaterialConstantsWidths)), 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", constantsPath, err)
	}
	fmt.Fprintf(w, "scraped: %s (%d rows)\n", constantsPath, len(constants.Rows))

	sources := []manifestSource{{URL: scrape.MaterialConstantsURL}}
	for z := zMin; z <= zMax; z++ {
		table, err := scrape.ElementAttenuation(client, z, cfg.HTTPConfig)
		if err != nil {
			return nil, err
		}

		name := fmt.Sprintf("%02d", z)
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, []byte(table.Render(scrape.ElementWidths)), 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Fprintf(w, "scraped: %s (%d rows)\n", path, len(table.Rows))

		files = append(files, name)
		sources = append(sources, manifestSource{URL: fmt.Sprintf(scrape.ElementURLTemplate, z)})
	}

	m := manifest{
		Dataset: NameNISTMassAtten,
		Sources: sources,
		Files:   files,
	}
	if err := writeManifest(outDir, m); err != nil {
		return nil, err
	}

	return files, nil
}
