package bitumen

import "errors"

// Sentinel errors for the encode path.
var (
	// ErrUnsupportedKind is returned by Append for objects that are neither
	// regular files nor directories. This is a deliberate scope limit, not a
	// recoverable condition.
	ErrUnsupportedKind = errors.New("bitumen: only files and directories can be archived")

	// ErrPathTooLong is returned by Append when a path does not fit the
	// 16-bit length field of the metadata record.
	ErrPathTooLong = errors.New("bitumen: path exceeds 65535 bytes")
)

// Sentinel errors for the scan path. Scanner wraps them with the stream
// offset of the failing record; match with [errors.Is].
var (
	// ErrHeader is returned when the record where an entry's header was
	// expected does not carry the format magic.
	ErrHeader = errors.New("bitumen: invalid header record")

	// ErrFooter is returned when the record where an entry's footer was
	// expected does not carry the format magic.
	ErrFooter = errors.New("bitumen: invalid footer record")

	// ErrChecksum is returned when a record's stored checksum does not match
	// the checksum recomputed over its payload bytes.
	ErrChecksum = errors.New("bitumen: record checksum mismatch")

	// ErrTruncated is returned when the stream ends inside an entry: mid
	// header, mid path, mid body, or mid footer. A clean end of archive is
	// not an error; Scanner.Err returns nil for it.
	ErrTruncated = errors.New("bitumen: archive truncated mid-entry")
)
