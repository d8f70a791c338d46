// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset assembles named reference datasets from their remote
// sources: fetch, verify, extract or scrape, and write the local file layout
// used by downstream dosimetry calculations.
package dataset

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/nuclide-data/internal/fetch"
	"github.com/pdiddy/nuclide-data/internal/registry"
	"github.com/pdiddy/nuclide-data/pkg/types"
)

// Dataset names form a closed enumeration; requests are validated against it
// before any assembler runs.
const (
	NameICRP107       = "icrp107"
	NameNISTMassAtten = "nist_mass_attenuation_coefficient"

	// NameAll is the sentinel expanding to every known dataset.
	NameAll = "all"
)

// Names returns the known dataset names in their canonical order.
func Names() []string {
	return []string{NameICRP107, NameNISTMassAtten}
}

// Resolve validates a requested list of dataset names and expands the "all"
// sentinel. An empty request means all. Unknown names are rejected before
// anything runs; duplicates are dropped, preserving the requested order.
func Resolve(requested []string) ([]string, error) {
	if len(requested) == 0 {
		return Names(), nil
	}

	known := make(map[string]bool, len(Names()))
	for _, name := range Names() {
		known[name] = true
	}
	for _, name := range requested {
		if name != NameAll && !known[name] {
			return nil, fmt.Errorf("unknown dataset %q (known: %s, %s)",
				name, NameAll, strings.Join(Names(), ", "))
		}
	}
	for _, name := range requested {
		if name == NameAll {
			return Names(), nil
		}
	}

	var out []string
	seen := make(map[string]bool, len(requested))
	for _, name := range requested {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out, nil
}

// RunResult summarizes a completed run.
type RunResult struct {
	Datasets int
	Files    int
}

// Run assembles the named datasets sequentially, in order. The first failure
// aborts the run; there is no partial-success reporting beyond the per-step
// status lines already written to w. A nil store disables registry recording.
func Run(client *http.Client, names []string, cfg types.DatasetConfig, store *registry.Store, w io.Writer) (RunResult, error) {
	var result RunResult
	for _, name := range names {
		fmt.Fprintf(w, "assembling: %s\n", name)

		var files []string
		var err error
		switch name {
		case NameICRP107:
			files, err = assembleICRP107(client, cfg, store, w)
		case NameNISTMassAtten:
			files, err = assembleNISTMassAtten(client, cfg, store, w)
		default:
			err = fmt.Errorf("unknown dataset %q", name)
		}
		if err != nil {
			return result, fmt.Errorf("dataset %s: %w", name, err)
		}

		if store != nil {
			if err := store.RecordDataset(registry.Dataset{
				Name:        name,
				CompletedAt: time.Now(),
				Files:       len(files),
			}); err != nil {
				return result, err
			}
		}

		result.Datasets++
		result.Files += len(files)
	}

	fmt.Fprintf(w, "\nAssembled %d dataset(s): %d file(s) written\n", result.Datasets, result.Files)
	return result, nil
}

// ensureResource fetches url to path unless the checksum already matches,
// prints the outcome, and records it in the registry when one is provided.
func ensureResource(client *http.Client, url, checksum, path string, cfg types.FetchConfig, store *registry.Store, w io.Writer) error {
	skipped, err := fetch.EnsureFetched(client, url, checksum, path, cfg)
	if err != nil {
		return err
	}

	outcome := "downloaded"
	if skipped {
		outcome = "cached"
	}
	fmt.Fprintf(w, "%s: %s\n", outcome, filepath.Base(path))

	if store == nil {
		return nil
	}
	var size int64
	if info, statErr := os.Stat(path); statErr == nil {
		size = info.Size()
	}
	return store.RecordResource(registry.Resource{
		URL:       url,
		Checksum:  checksum,
		Path:      path,
		Size:      size,
		FetchedAt: time.Now(),
		Outcome:   outcome,
	})
}

// manifest describes one assembled dataset. It is written without
// timestamps so repeat runs produce byte-identical output directories.
type manifest struct {
	Dataset string           `yaml:"dataset"`
	Sources []manifestSource `yaml:"sources"`
	Files   []string         `yaml:"files"`
}

type manifestSource struct {
	URL  string `yaml:"url"`
	SHA1 string `yaml:"sha1,omitempty"`
}

// writeManifest serializes m to dir/manifest.yaml.
func writeManifest(dir string, m manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, "manifest.yaml"), data, 0o644)
}
