// Package bitumen implements a flat sequential archive format: a filesystem
// subtree linearized into a single byte stream of self-describing entries.
//
// Each entry is a 40-byte header record, the raw path bytes, the file body
// (files only), and a 40-byte footer record. Header and footer carry the
// same payload fields with independently computed CRC-32 checksums; only the
// header flag bit differs. The stream has no global header, index, or
// trailer — the end of the archive is simply the end of the stream.
//
// Archives are produced with [Archive], which writes all directory entries
// before all file entries, each group in depth-first pre-order of discovery.
// [Append] encodes a single object. Reading is done with [Scanner], which
// reports each entry without materializing file bodies:
//
//	sc := bitumen.NewScanner(f)
//	for sc.Scan() {
//		e := sc.Entry()
//		fmt.Printf("%-9s : %s : %dB\n", e.Kind, e.PathText(), e.Size)
//	}
//	if err := sc.Err(); err != nil {
//		// corrupt or truncated; a nil error means the archive ended cleanly
//	}
//
// All multi-byte record fields are little-endian regardless of platform.
// The format stores no compression, no encryption, and no random-access
// index; the scanner requires a seekable input because file bodies are
// skipped by seeking, never read.
package bitumen
