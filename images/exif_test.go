package images

import (
	"bytes"
	"context"
	"encoding/binary"
	"math/big"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Init()
	os.Exit(m.Run())
}

const (
	typeASCII    = 2
	typeShort    = 3
	typeLong     = 4
	typeRational = 5
)

type ifdEntry struct {
	id    uint16
	typ   uint16
	count uint32
	data  []byte
}

func asciiEntry(id uint16, s string) ifdEntry {
	b := append([]byte(s), 0)
	return ifdEntry{id: id, typ: typeASCII, count: uint32(len(b)), data: b}
}

func shortEntry(id uint16, v uint16) ifdEntry {
	return ifdEntry{id: id, typ: typeShort, count: 1, data: binary.LittleEndian.AppendUint16(nil, v)}
}

func longEntry(id uint16, v uint32) ifdEntry {
	return ifdEntry{id: id, typ: typeLong, count: 1, data: binary.LittleEndian.AppendUint32(nil, v)}
}

func rationalEntry(id uint16, values ...[2]uint32) ifdEntry {
	var b []byte
	for _, v := range values {
		b = binary.LittleEndian.AppendUint32(b, v[0])
		b = binary.LittleEndian.AppendUint32(b, v[1])
	}
	return ifdEntry{id: id, typ: typeRational, count: uint32(len(values)), data: b}
}

func ifdSize(n int) int {
	return 2 + 12*n + 4
}

func overflowSize(entries []ifdEntry) int {
	size := 0
	for _, e := range entries {
		if len(e.data) > 4 {
			size += len(e.data) + len(e.data)%2
		}
	}
	return size
}

func encodeIFD(entries []ifdEntry, offset int) []byte {
	dataOffset := offset + ifdSize(len(entries))

	var head, tail []byte
	head = binary.LittleEndian.AppendUint16(head, uint16(len(entries)))
	for _, e := range entries {
		head = binary.LittleEndian.AppendUint16(head, e.id)
		head = binary.LittleEndian.AppendUint16(head, e.typ)
		head = binary.LittleEndian.AppendUint32(head, e.count)
		if len(e.data) <= 4 {
			inline := make([]byte, 4)
			copy(inline, e.data)
			head = append(head, inline...)
			continue
		}
		head = binary.LittleEndian.AppendUint32(head, uint32(dataOffset+len(tail)))
		tail = append(tail, e.data...)
		if len(e.data)%2 == 1 {
			tail = append(tail, 0)
		}
	}
	head = binary.LittleEndian.AppendUint32(head, 0)

	return append(head, tail...)
}

// buildTIFF lays out a little endian TIFF with IFD0 and an optional GPS IFD.
func buildTIFF(ifd0 []ifdEntry, gps []ifdEntry) []byte {
	if len(gps) > 0 {
		ifd0 = append(ifd0, longEntry(0x8825, 0))
	}

	ifd0Offset := 8
	gpsOffset := ifd0Offset + ifdSize(len(ifd0)) + overflowSize(ifd0)
	if len(gps) > 0 {
		ifd0[len(ifd0)-1] = longEntry(0x8825, uint32(gpsOffset))
	}

	out := []byte{'I', 'I', 42, 0}
	out = binary.LittleEndian.AppendUint32(out, uint32(ifd0Offset))
	out = append(out, encodeIFD(ifd0, ifd0Offset)...)
	if len(gps) > 0 {
		out = append(out, encodeIFD(gps, gpsOffset)...)
	}

	return out
}

func sampleTIFF() []byte {
	return buildTIFF(
		[]ifdEntry{
			longEntry(0x0100, 640),
			longEntry(0x0101, 480),
			asciiEntry(0x010F, "Acme"),
			asciiEntry(0x0110, "X1"),
			shortEntry(0x0112, 6),
		},
		[]ifdEntry{
			asciiEntry(0x0001, "N"),
			rationalEntry(0x0002, [2]uint32{37, 1}, [2]uint32{30, 1}, [2]uint32{0, 1}),
			asciiEntry(0x0003, "W"),
			rationalEntry(0x0004, [2]uint32{122, 1}, [2]uint32{15, 1}, [2]uint32{0, 1}),
		},
	)
}

func TestEXIFDecoderDecode(t *testing.T) {
	snapshot, err := NewEXIFDecoder().Decode(context.Background(), bytes.NewReader(sampleTIFF()))
	require.NoError(t, err)

	descriptions := map[string]string{
		"Make":         "Acme",
		"Model":        "X1",
		"Orientation":  "right-top",
		"GPSLatitude":  "37.5",
		"GPSLongitude": "-122.25",
		"ImageWidth":   "640px",
		"ImageHeight":  "480px",
	}

	for name, want := range descriptions {
		tag, ok := snapshot.Get(name)
		if assert.True(t, ok, name) {
			assert.Equal(t, want, tag.Description, name)
		}
	}

	makeTag, _ := snapshot.Get("Make")
	assert.Equal(t, "Acme", makeTag.Value)

	orientation, _ := snapshot.Get("Orientation")
	assert.Equal(t, int64(6), orientation.Value)

	lat, _ := snapshot.Get("GPSLatitude")
	if assert.IsType(t, []*big.Rat{}, lat.Value) {
		assert.Len(t, lat.Value, 3)
	}
}

func TestEXIFDecoderOrder(t *testing.T) {
	decoder := NewEXIFDecoder()

	first, err := decoder.Decode(context.Background(), bytes.NewReader(sampleTIFF()))
	require.NoError(t, err)
	second, err := decoder.Decode(context.Background(), bytes.NewReader(sampleTIFF()))
	require.NoError(t, err)

	names := first.Names()
	assert.Equal(t, names, second.Names())
	assert.Equal(t, "GPSLatitudeRef", names[0])
	assert.Equal(t, "ImageHeight", names[len(names)-1])
}

func TestEXIFDecoderFailure(t *testing.T) {
	_, err := NewEXIFDecoder().Decode(context.Background(), bytes.NewReader([]byte("definitely not an image")))
	assert.Error(t, err)
}

func TestEXIFDecoderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEXIFDecoder().Decode(ctx, bytes.NewReader(sampleTIFF()))
	assert.ErrorIs(t, err, context.Canceled)
}
