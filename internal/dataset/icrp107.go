// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pdiddy/nuclide-data/internal/archive"
	"github.com/pdiddy/nuclide-data/internal/registry"
	"github.com/pdiddy/nuclide-data/pkg/types"
)

// ICRP Publication 107 supplementary data and its corrigenda. Declared as
// vars so tests can substitute httptest servers and fixture archives.
var (
	icrp107DataURL      = "https://journals.sagepub.com/doi/suppl/10.1177/ANIB_38_3/suppl_file/P107JAICRP_38_3_Nuclear_Decay_Data_suppl_data.zip"
	icrp107DataChecksum = "7c9dacf10da430228e66777c954885abf4267c71"

	icrp107CorrigendaURL      = "https://www.icrp.org/docs/Corrigenda%20of%20Publication%20107.zip"
	icrp107CorrigendaChecksum = "beede0b46b73b0f1d521383620167368ca0d3a04"
)

const (
	icrp107DataArchive = "P107JAICRP_38_3_Nuclear_Decay_Data_suppl_data.zip"

	// Directory prefix the supplementary-data members live under inside
	// the archive, exactly as published.
	icrp107MemberPrefix = "P 107 JAICRP 38(3) Nuclear Decay Data for Dosimetric Calculations(supplementary data)/"

	icrp107CorrigendaArchive = "Corrigenda of Publication 107.zip"
	icrp107CorrigendaMember  = "Corrigenda of Publication 107/ICRP-07.NDX"

	icrp107OutputDir = "icrp107"
)

// icrp107Members are the decay-data files extracted from the supplementary
// archive, preserving their published names.
var icrp107Members = []string{
	"ICRP-07.NDX", "ICRP-07.RAD", "ICRP-07.BET", "ICRP-07.NSF", "ICRP-07.ACK",
}

// assembleICRP107 produces icrp107/ICRP-07.{NDX,RAD,BET,NSF,ACK}: the five
// members of the Publication 107 supplementary archive, with the index file
// then overwritten by the corrected one from the corrigenda archive. The
// corrigenda extraction must run after the base extraction, since both write
// ICRP-07.NDX and the corrected index supersedes the original.
func assembleICRP107(client *http.Client, cfg types.DatasetConfig, store *registry.Store, w io.Writer) ([]string, error) {
	outDir := filepath.Join(cfg.DataDir, icrp107OutputDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", outDir, err)
	}

	dataArchive := filepath.Join(cfg.DataDir, icrp107DataArchive)
	if err := ensureResource(client, icrp107DataURL, icrp107DataChecksum, dataArchive, cfg.FetchConfig, store, w); err != nil {
		return nil, err
	}

	var files []string
	for _, member := range icrp107Members {
		out := filepath.Join(outDir, member)
		if err := archive.ExtractMember(dataArchive, icrp107MemberPrefix+member, out); err != nil {
			return nil, err
		}
		fmt.Fprintf(w, "extracted: %s\n", out)
		files = append(files, member)
	}

	corrArchive := filepath.Join(cfg.DataDir, icrp107CorrigendaArchive)
	if err := ensureResource(client, icrp107CorrigendaURL, icrp107CorrigendaChecksum, corrArchive, cfg.FetchConfig, store, w); err != nil {
		return nil, err
	}

	ndx := filepath.Join(outDir, "ICRP-07.NDX")
	if err := archive.ExtractMember(corrArchive, icrp107CorrigendaMember, ndx); err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "extracted: %s (corrigenda)\n", ndx)

	m := manifest{
		Dataset: NameICRP107,
		Sources: []manifestSource{
			{URL: icrp107DataURL, SHA1: icrp107DataChecksum},
			{URL: icrp107CorrigendaURL, SHA1: icrp107CorrigendaChecksum},
		},
		Files: files,
	}
	if err := writeManifest(outDir, m); err != nil {
		return nil, err
	}

	return files, nil
}
