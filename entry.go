package bitumen

import (
	"strings"
	"time"
)

// Kind identifies the filesystem object an archive entry describes.
//
// KindSoftLink and KindHardLink are representable in the record flags and
// decode with their labels, but the encoder never produces them and the
// format stores no link target for them.
type Kind uint8

const (
	KindFile Kind = iota
	KindDirectory
	KindSoftLink
	KindHardLink
)

// String returns the human-readable kind label used in listings.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "File"
	case KindDirectory:
		return "Directory"
	case KindSoftLink:
		return "Soft Link"
	case KindHardLink:
		return "Hard Link"
	}
	return "Unknown"
}

// Entry describes one archived filesystem object as reported by a Scanner.
//
// Path holds the exact bytes stored in the archive: whatever the encoder was
// handed, not normalized and not guaranteed to be valid text.
type Entry struct {
	Kind    Kind
	Path    []byte
	Size    uint64
	ModTime time.Time
}

// PathText renders the path as text for display, substituting the Unicode
// replacement character for byte sequences that are not valid UTF-8.
func (e Entry) PathText() string {
	return strings.ToValidUTF8(string(e.Path), "�")
}
