// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive extracts individual members from zip archives.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrMemberNotFound indicates the requested member path does not exist in
// the archive. Member lookup is case-sensitive and includes any directory
// components embedded in the member path.
var ErrMemberNotFound = errors.New("member not found in archive")

// ExtractMember copies the uncompressed contents of memberPath inside the
// zip at archivePath to outputPath, creating or overwriting the output file.
// The caller is responsible for the output directory existing.
func ExtractMember(archivePath, memberPath, outputPath string) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("opening archive %s: %w", archivePath, err)
	}
	defer r.Close()

	member, err := r.Open(memberPath)
	if err != nil {
		return fmt.Errorf("%w: %q in %s", ErrMemberNotFound, memberPath, archivePath)
	}
	defer member.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outputPath, err)
	}

	_, copyErr := io.Copy(out, member)
	closeErr := out.Close()
	if copyErr != nil {
		return fmt.Errorf("extracting %q: %w", memberPath, copyErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing %s: %w", outputPath, closeErr)
	}
	return nil
}
