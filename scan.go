package bitumen

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/JM4ier/bitumen/internal/record"
)

// Scanner reads an archive stream one entry at a time.
//
// The stream must support seeking: file bodies are skipped by seek and never
// read, so forward-only sources are unsupported. The scanner never owns the
// stream; the caller opens it, positions it at the first entry, and closes
// it.
//
// Scan returns false at the first non-success outcome. Err then
// distinguishes a clean end of archive (nil) from corruption or truncation
// (an error wrapping one of the scan sentinels and the offset of the record
// being read). The scanner holds no state besides the stream position, so
// each entry is decoded independently.
type Scanner struct {
	r      io.ReadSeeker
	cfg    scanConfig
	entry  Entry
	err    error
	offset int64
	done   bool
}

// NewScanner creates a Scanner reading from r. Checksum verification is
// enabled unless disabled with ScanWithChecksumVerification.
func NewScanner(r io.ReadSeeker, opts ...ScanOption) *Scanner {
	s := &Scanner{r: r}
	s.cfg.verify = true
	for _, opt := range opts {
		opt(&s.cfg)
	}
	return s
}

// Scan attempts to decode the next entry and reports whether one is
// available via Entry. It returns false at the clean end of the archive and
// at the first anomaly; Err tells the two apart.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}

	entry, err := s.next()
	if err != nil {
		s.done = true
		if !errors.Is(err, io.EOF) {
			s.err = err
			s.cfg.log().Error("decoding stopped", "offset", s.offset, "error", err)
		}
		return false
	}

	s.entry = entry
	s.cfg.log().Debug("entry decoded", "kind", entry.Kind, "path", entry.PathText(), "size", entry.Size)
	return true
}

// Entry returns the entry decoded by the most recent successful Scan.
func (s *Scanner) Entry() Entry {
	return s.entry
}

// Err returns the error that stopped the scan, or nil if the archive ended
// cleanly on an entry boundary.
func (s *Scanner) Err() error {
	return s.err
}

// Offset returns the stream offset of the record that was being read when
// the scan stopped, or of the most recently read record while scanning.
func (s *Scanner) Offset() int64 {
	return s.offset
}

// next runs the per-entry state machine: header, path, body skip, footer.
func (s *Scanner) next() (Entry, error) {
	header, err := s.readRecord("header", ErrHeader)
	if err != nil {
		return Entry{}, err
	}

	path := make([]byte, header.PathLen)
	if _, err := io.ReadFull(s.r, path); err != nil {
		return Entry{}, fmt.Errorf("path after record at offset %d: %w", s.offset, ErrTruncated)
	}

	// File bodies are skipped, never materialized. The seek itself happily
	// lands past the end of a short stream; the footer read below is what
	// catches a body-truncated archive.
	if header.FileSize > math.MaxInt64 {
		return Entry{}, fmt.Errorf("body of %d bytes in record at offset %d: %w", header.FileSize, s.offset, ErrTruncated)
	}
	if header.FileSize > 0 {
		if _, err := s.r.Seek(int64(header.FileSize), io.SeekCurrent); err != nil {
			return Entry{}, fmt.Errorf("body skip after record at offset %d: %w", s.offset, ErrTruncated)
		}
	}

	if _, err := s.readRecord("footer", ErrFooter); err != nil {
		return Entry{}, err
	}

	return Entry{
		Kind:    Kind(header.Kind()),
		Path:    path,
		Size:    header.FileSize,
		ModTime: time.Unix(int64(header.ModifiedAt), 0),
	}, nil
}

// readRecord reads and validates one 40-byte record. A read of zero bytes
// where a header is expected is the clean end of the archive, reported as
// io.EOF; every other short read means the stream ends inside an entry.
func (s *Scanner) readRecord(role string, magicErr error) (record.Record, error) {
	off, err := s.r.Seek(0, io.SeekCurrent)
	if err != nil {
		return record.Record{}, err
	}
	s.offset = off

	var buf [record.Size]byte
	n, err := io.ReadFull(s.r, buf[:])
	if err != nil {
		if role == "header" && n == 0 && errors.Is(err, io.EOF) {
			return record.Record{}, io.EOF
		}
		return record.Record{}, fmt.Errorf("%s at offset %d: %w", role, off, ErrTruncated)
	}

	rec := record.Decode(&buf)
	if !rec.MagicValid() {
		return record.Record{}, fmt.Errorf("magic 0x%08X at offset %d: %w", rec.Magic, off, magicErr)
	}
	if s.cfg.verify && !rec.ChecksumValid() {
		return record.Record{}, fmt.Errorf("%s at offset %d: %w", role, off, ErrChecksum)
	}
	return rec, nil
}

// Entries decodes every entry reachable from the current position of r.
//
// It returns the entries decoded before the first non-success outcome. The
// error is nil only when the archive ended cleanly on an entry boundary, so
// callers can tell a valid archive end from truncation or corruption and
// still know how many entries were decoded before the stop.
func Entries(r io.ReadSeeker, opts ...ScanOption) ([]Entry, error) {
	sc := NewScanner(r, opts...)
	entries := make([]Entry, 0, 16)
	for sc.Scan() {
		entries = append(entries, sc.Entry())
	}
	return entries, sc.Err()
}
