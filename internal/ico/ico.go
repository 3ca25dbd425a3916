// Package ico writes and inspects Windows icon containers whose frames are
// stored as embedded PNG streams.
package ico

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"sort"
)

const (
	headerSize = 6
	entrySize  = 16
	typeIcon   = 1
	maxFrames  = 0xFFFF
	maxSide    = 256
)

var (
	ErrNoFrames     = errors.New("ico: no frames")
	ErrFrameSize    = errors.New("ico: frame larger than 256px")
	ErrNotIcon      = errors.New("ico: not an icon container")
	ErrShortPayload = errors.New("ico: frame data out of range")
)

type header struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

type dirEntry struct {
	Width      uint8 // 0 means 256
	Height     uint8
	Colors     uint8
	Reserved   uint8
	Planes     uint16
	BitCount   uint16
	BytesInRes uint32
	Offset     uint32
}

// Entry describes one frame listed in the icon directory.
type Entry struct {
	Width, Height int
	BitCount      int
	Size          int
	Offset        int
}

// Encode writes frames as an icon container, smallest first.
// Frames must be at most 256px on each side.
func Encode(w io.Writer, frames []image.Image) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	if len(frames) > maxFrames {
		return fmt.Errorf("ico: %d frames exceeds container limit", len(frames))
	}
	sorted := append([]image.Image(nil), frames...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Bounds().Dx() < sorted[j].Bounds().Dx()
	})

	payloads := make([][]byte, len(sorted))
	for i, frame := range sorted {
		b := frame.Bounds()
		if b.Dx() > maxSide || b.Dy() > maxSide || b.Empty() {
			return fmt.Errorf("%w: %dx%d", ErrFrameSize, b.Dx(), b.Dy())
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, frame); err != nil {
			return fmt.Errorf("ico: encode %dx%d frame: %w", b.Dx(), b.Dy(), err)
		}
		payloads[i] = buf.Bytes()
	}

	var out bytes.Buffer
	_ = binary.Write(&out, binary.LittleEndian, header{Type: typeIcon, Count: uint16(len(sorted))})
	offset := uint32(headerSize + entrySize*len(sorted))
	for i, frame := range sorted {
		b := frame.Bounds()
		_ = binary.Write(&out, binary.LittleEndian, dirEntry{
			Width:      sideByte(b.Dx()),
			Height:     sideByte(b.Dy()),
			Planes:     1,
			BitCount:   32,
			BytesInRes: uint32(len(payloads[i])),
			Offset:     offset,
		})
		offset += uint32(len(payloads[i]))
	}
	for _, p := range payloads {
		out.Write(p)
	}
	_, err := w.Write(out.Bytes())
	return err
}

func sideByte(n int) uint8 {
	if n >= maxSide {
		return 0
	}
	return uint8(n)
}

func sideInt(b uint8) int {
	if b == 0 {
		return maxSide
	}
	return int(b)
}

// ReadDirectory parses the icon header and directory of data.
func ReadDirectory(data []byte) ([]Entry, error) {
	r := bytes.NewReader(data)
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotIcon, err)
	}
	if h.Reserved != 0 || h.Type != typeIcon {
		return nil, ErrNotIcon
	}
	entries := make([]Entry, 0, h.Count)
	for i := 0; i < int(h.Count); i++ {
		var d dirEntry
		if err := binary.Read(r, binary.LittleEndian, &d); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrNotIcon, i, err)
		}
		e := Entry{
			Width:    sideInt(d.Width),
			Height:   sideInt(d.Height),
			BitCount: int(d.BitCount),
			Size:     int(d.BytesInRes),
			Offset:   int(d.Offset),
		}
		if e.Offset < 0 || e.Offset+e.Size > len(data) {
			return nil, fmt.Errorf("%w: entry %d", ErrShortPayload, i)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// DecodeAll returns every frame of a PNG-compressed icon, in directory order.
func DecodeAll(data []byte) ([]image.Image, error) {
	entries, err := ReadDirectory(data)
	if err != nil {
		return nil, err
	}
	frames := make([]image.Image, 0, len(entries))
	for i, e := range entries {
		img, err := png.Decode(bytes.NewReader(data[e.Offset : e.Offset+e.Size]))
		if err != nil {
			return nil, fmt.Errorf("ico: frame %d: %w", i, err)
		}
		frames = append(frames, img)
	}
	return frames, nil
}
