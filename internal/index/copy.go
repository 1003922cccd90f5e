// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// copyName builds the materialized name for the n-th discovered file
// (1-based): a zero-padded sequence number plus the original name with
// spaces replaced by underscores. The prefix keeps names collision-free
// within a run even when two sources share a base name.
func copyName(n int, name string) string {
	return fmt.Sprintf("%03d_%s", n, strings.ReplaceAll(name, " ", "_"))
}

// copyFile duplicates src at dst, carrying over the permission bits and
// the modification time. An existing file at dst is truncated.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	_, copyErr := io.Copy(out, in)
	closeErr := out.Close()
	if copyErr != nil {
		return fmt.Errorf("writing %s: %w", dst, copyErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing %s: %w", dst, closeErr)
	}

	// The open mode above is filtered through the umask; chmod applies the
	// source bits exactly.
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("setting mode on %s: %w", dst, err)
	}
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("setting times on %s: %w", dst, err)
	}
	return nil
}
