package record

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSize(t *testing.T) {
	t.Parallel()

	r := Record{Magic: Magic}
	r.Seal()
	buf := r.Encode()
	assert.Len(t, buf[:], 40)
}

func TestEncodeLayout(t *testing.T) {
	t.Parallel()

	r := Record{
		ModifiedAt: 0x0102030405060708,
		FileSize:   42,
		PathLen:    7,
		Magic:      Magic,
		Flags:      KindFile | FlagHeader,
	}
	r.Seal()
	buf := r.Encode()

	assert.Equal(t, uint64(0x0102030405060708), binary.LittleEndian.Uint64(buf[0:]))
	assert.Equal(t, uint64(42), binary.LittleEndian.Uint64(buf[8:]))
	assert.Equal(t, uint16(7), binary.LittleEndian.Uint16(buf[16:]))
	assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(buf[18:]), "perms reserved")
	assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(buf[20:]), "owner reserved")
	assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(buf[22:]), "group reserved")
	assert.Equal(t, Magic, binary.LittleEndian.Uint32(buf[24:]))
	assert.Equal(t, KindFile|FlagHeader, binary.LittleEndian.Uint32(buf[28:]))
	assert.Equal(t, r.Checksum, binary.LittleEndian.Uint32(buf[32:]))
	assert.Equal(t, []byte{0, 0, 0, 0}, buf[36:], "reserved tail must be zero")
}

func TestChecksumFieldIsStructurallyExcluded(t *testing.T) {
	t.Parallel()

	r := Record{FileSize: 34343, Flags: 23232, Magic: Magic}
	r.Seal()
	sealed := r.Encode()

	// Overwriting the checksum with a placeholder must not change the bytes
	// the checksum is computed over.
	r.Checksum = 0xAABBAABB
	clobbered := r.Encode()

	assert.Equal(t, sealed[:32], clobbered[:32])
	assert.NotEqual(t, sealed[32:36], clobbered[32:36])
}

func TestHeaderFooterChecksumsDiffer(t *testing.T) {
	t.Parallel()

	payload := Record{
		ModifiedAt: 1700000000,
		FileSize:   1234,
		PathLen:    9,
		Magic:      Magic,
		Flags:      KindFile,
	}

	header := payload
	header.Flags |= FlagHeader
	header.Seal()

	footer := payload
	footer.Seal()

	assert.NotEqual(t, header.Checksum, footer.Checksum, "only the header bit differs, so checksums must too")
	assert.True(t, header.ChecksumValid())
	assert.True(t, footer.ChecksumValid())

	// Everything except flags and checksum matches between the two.
	assert.Equal(t, header.ModifiedAt, footer.ModifiedAt)
	assert.Equal(t, header.FileSize, footer.FileSize)
	assert.Equal(t, header.PathLen, footer.PathLen)
	assert.Equal(t, header.Magic, footer.Magic)
	assert.Equal(t, header.Kind(), footer.Kind())
	assert.True(t, header.IsHeader())
	assert.False(t, footer.IsHeader())
}

func TestDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	r := Record{
		ModifiedAt: 1700000000,
		FileSize:   65536,
		PathLen:    300,
		Magic:      Magic,
		Flags:      KindDirectory | FlagHeader,
	}
	r.Seal()
	buf := r.Encode()

	got := Decode(&buf)
	assert.Equal(t, r, got)
	assert.True(t, got.MagicValid())
	assert.True(t, got.ChecksumValid())
}

func TestValidation(t *testing.T) {
	t.Parallel()

	t.Run("corrupt payload byte fails checksum only", func(t *testing.T) {
		t.Parallel()
		r := Record{ModifiedAt: 1, Magic: Magic, Flags: KindFile}
		r.Seal()
		buf := r.Encode()
		buf[0] ^= 0xFF

		got := Decode(&buf)
		assert.True(t, got.MagicValid())
		assert.False(t, got.ChecksumValid())
	})

	t.Run("corrupt magic", func(t *testing.T) {
		t.Parallel()
		r := Record{Magic: Magic, Flags: KindFile}
		r.Seal()
		buf := r.Encode()
		buf[24] ^= 0xFF

		got := Decode(&buf)
		assert.False(t, got.MagicValid())
	})

	t.Run("unsealed record is checksum-invalid", func(t *testing.T) {
		t.Parallel()
		r := Record{ModifiedAt: 12345, Magic: Magic}
		require.False(t, r.ChecksumValid())
	})
}

func TestKindBits(t *testing.T) {
	t.Parallel()

	for _, kind := range []uint32{KindFile, KindDirectory, KindSoftLink, KindHardLink} {
		r := Record{Magic: Magic, Flags: kind | FlagHeader}
		assert.Equal(t, kind, r.Kind())
	}
}
