package bitumen

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/JM4ier/bitumen/internal/record"
	"github.com/JM4ier/bitumen/internal/walk"
)

// Append encodes the filesystem object at path and appends one entry to w.
//
// The object is classified via stat (symlinks followed) as a file or a
// directory; anything else fails with ErrUnsupportedKind. The path is
// captured byte-for-byte as given, without normalization or validation as
// text. The entry is written in strict order: header record, path bytes,
// file body (files only, one contiguous copy), footer record.
//
// Any I/O failure aborts immediately. There is no partial-entry recovery;
// the caller must treat a short write as an invalid archive. The file handle
// opened for the body is scoped to this call and released on every exit
// path.
func Append(w io.Writer, path string, opts ...ArchiveOption) error {
	cfg := archiveConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return appendEntry(w, path, &cfg)
}

func appendEntry(w io.Writer, path string, cfg *archiveConfig) error {
	pathBytes := []byte(path)
	if len(pathBytes) > math.MaxUint16 {
		return fmt.Errorf("%w: %d bytes", ErrPathTooLong, len(pathBytes))
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	var (
		kind uint32
		size uint64
		body *os.File
	)
	switch {
	case info.Mode().IsRegular():
		kind = record.KindFile
		body, err = os.Open(path)
		if err != nil {
			return err
		}
		defer body.Close()

		// Size from the opened handle, so the header matches the bytes
		// actually copied even if the path was swapped since the stat.
		binfo, err := body.Stat()
		if err != nil {
			return err
		}
		size = uint64(binfo.Size())
	case info.IsDir():
		kind = record.KindDirectory
	default:
		return fmt.Errorf("%w: %s (%s)", ErrUnsupportedKind, path, info.Mode().Type())
	}

	// Whole seconds since the Unix epoch; pre-epoch mtimes clamp to zero
	// because the field is unsigned.
	modified := info.ModTime().Unix()
	if modified < 0 {
		modified = 0
	}

	meta := record.Record{
		ModifiedAt: uint64(modified),
		FileSize:   size,
		PathLen:    uint16(len(pathBytes)),
		Magic:      record.Magic,
		Flags:      kind,
	}

	header := meta
	header.Flags |= record.FlagHeader
	header.Seal()

	footer := meta
	footer.Seal()

	hdr := header.Encode()
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	if _, err := w.Write(pathBytes); err != nil {
		return err
	}
	if body != nil {
		if _, err := io.Copy(w, body); err != nil {
			return err
		}
	}
	ftr := footer.Encode()
	if _, err := w.Write(ftr[:]); err != nil {
		return err
	}

	cfg.log().Debug("entry appended", "path", path, "kind", Kind(kind), "size", size)
	return nil
}

// Archive writes the subtree rooted at root to w as one archive.
//
// The subtree is linearized depth-first pre-order (root included), then
// written in two phases: every directory entry in discovery order, followed
// by every non-directory entry in discovery order. Directory records always
// preceding file records is part of the format contract.
//
// The context is consulted between entries. A failure at any point aborts
// the whole operation, leaving w holding a partial stream the caller must
// treat as invalid.
func Archive(ctx context.Context, w io.Writer, root string, opts ...ArchiveOption) error {
	cfg := archiveConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	paths, err := walk.Linearize(root)
	if err != nil {
		return err
	}

	// Partition on a single stat pass so both phases agree on each path's
	// kind even if the tree changes underneath us.
	dirs := make([]string, 0, len(paths))
	files := make([]string, 0, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		if info.IsDir() {
			dirs = append(dirs, path)
		} else {
			files = append(files, path)
		}
	}

	for _, group := range [][]string{dirs, files} {
		for _, path := range group {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := appendEntry(w, path, &cfg); err != nil {
				return fmt.Errorf("archive %s: %w", path, err)
			}
		}
	}

	cfg.log().Debug("archive complete", "root", root, "dirs", len(dirs), "files", len(files))
	return nil
}
