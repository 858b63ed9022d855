// Package record implements the fixed-layout metadata record that brackets
// every entry of a bitumen archive, and the CRC-32 checksum sealing it.
//
// A record is exactly 40 bytes on the wire. All multi-byte fields are
// little-endian on every platform. The named fields occupy the first 36
// bytes; the final four bytes are reserved, written as zero, and ignored on
// decode.
//
// Wire layout (byte offsets):
//
//	 0  modified_at  uint64  seconds since the Unix epoch
//	 8  file_size    uint64  body length; 0 for non-file kinds
//	16  path_len     uint16  length of the path that follows the header
//	18  perms        uint16  reserved, zero
//	20  owner        uint16  reserved, zero
//	22  group        uint16  reserved, zero
//	24  magic        uint32  format constant
//	28  flags        uint32  kind bits and header/footer discriminator
//	32  checksum     uint32  CRC-32 over bytes 0..32
//	36  reserved     4 bytes, zero
package record

import "encoding/binary"

// Size is the encoded size of a Record in bytes.
const Size = 40

// Magic identifies a well-formed record. All four bytes are distinct, so a
// byte-order mixup or a desynchronized stream cannot produce a false match.
const Magic uint32 = 0x2F968B6A

// checksumOffset is where the checksum field starts. The checksum input is
// every byte before it.
const checksumOffset = 32

// Flag bits carried in Record.Flags.
const (
	// KindMask selects the two kind bits.
	KindMask uint32 = 0x3

	KindFile      uint32 = 0x0
	KindDirectory uint32 = 0x1
	KindSoftLink  uint32 = 0x2
	KindHardLink  uint32 = 0x3

	// FlagHeader is set on the header record of an entry and clear on the
	// footer. All remaining flag bits are reserved and must be zero.
	FlagHeader uint32 = 0x8
)

// Record is the metadata record describing one archived object.
//
// A freshly populated record must be sealed with Seal before encoding;
// encoding an unsealed record produces a checksum-invalid wire record.
type Record struct {
	ModifiedAt uint64
	FileSize   uint64
	PathLen    uint16
	Perms      uint16 // reserved, always zero
	Owner      uint16 // reserved, always zero
	Group      uint16 // reserved, always zero
	Magic      uint32
	Flags      uint32
	Checksum   uint32
}

// Seal computes the checksum over the payload bytes and stores it.
func (r *Record) Seal() {
	r.Checksum = r.payloadChecksum()
}

// Encode serializes the record into its 40-byte wire form.
func (r Record) Encode() [Size]byte {
	var buf [Size]byte
	r.encodePayload(&buf)
	binary.LittleEndian.PutUint32(buf[checksumOffset:], r.Checksum)
	// buf[36:40] stays zero: reserved tail.
	return buf
}

// Decode parses a 40-byte wire record. It performs no validation; see
// MagicValid and ChecksumValid.
func Decode(buf *[Size]byte) Record {
	return Record{
		ModifiedAt: binary.LittleEndian.Uint64(buf[0:]),
		FileSize:   binary.LittleEndian.Uint64(buf[8:]),
		PathLen:    binary.LittleEndian.Uint16(buf[16:]),
		Perms:      binary.LittleEndian.Uint16(buf[18:]),
		Owner:      binary.LittleEndian.Uint16(buf[20:]),
		Group:      binary.LittleEndian.Uint16(buf[22:]),
		Magic:      binary.LittleEndian.Uint32(buf[24:]),
		Flags:      binary.LittleEndian.Uint32(buf[28:]),
		Checksum:   binary.LittleEndian.Uint32(buf[32:]),
	}
}

// MagicValid reports whether the magic field carries the format constant.
func (r Record) MagicValid() bool {
	return r.Magic == Magic
}

// ChecksumValid recomputes the payload checksum and compares it against the
// stored checksum field.
func (r Record) ChecksumValid() bool {
	return r.Checksum == r.payloadChecksum()
}

// Kind returns the two kind bits of the flags field.
func (r Record) Kind() uint32 {
	return r.Flags & KindMask
}

// IsHeader reports whether the record is an entry header rather than a
// footer.
func (r Record) IsHeader() bool {
	return r.Flags&FlagHeader != 0
}

func (r Record) encodePayload(buf *[Size]byte) {
	binary.LittleEndian.PutUint64(buf[0:], r.ModifiedAt)
	binary.LittleEndian.PutUint64(buf[8:], r.FileSize)
	binary.LittleEndian.PutUint16(buf[16:], r.PathLen)
	binary.LittleEndian.PutUint16(buf[18:], r.Perms)
	binary.LittleEndian.PutUint16(buf[20:], r.Owner)
	binary.LittleEndian.PutUint16(buf[22:], r.Group)
	binary.LittleEndian.PutUint32(buf[24:], r.Magic)
	binary.LittleEndian.PutUint32(buf[28:], r.Flags)
}

func (r Record) payloadChecksum() uint32 {
	var buf [Size]byte
	r.encodePayload(&buf)
	return Checksum(buf[:checksumOffset])
}
