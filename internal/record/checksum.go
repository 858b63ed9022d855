package record

import "hash/crc32"

// Checksum digests b with CRC-32: polynomial 0x04C11DB7 in normal form,
// bit-reflected input and output, initial register all ones, final value
// complemented. This is the checksum used by zip, gzip, and png;
// crc32.IEEE is the same algorithm in reflected-table form.
func Checksum(b []byte) uint32 {
	return crc32.ChecksumIEEE(b)
}
