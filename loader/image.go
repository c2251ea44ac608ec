// Package loader loads flat i960 memory images.
//
// i960 boot images are raw binaries placed at a known physical address;
// there is no structured object format to parse at this level.
package loader

import (
	"fmt"
	"os"
)

// Image is a memory image and its placement.
type Image struct {
	// Base is the address the image is loaded at.
	Base uint32

	// Entry is the initial instruction pointer.
	Entry uint32

	// Data is the raw image contents.
	Data []byte
}

// Load reads a flat binary image from path, to be placed at base. The
// entry point defaults to the base address.
func Load(path string, base uint32) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("image %s is empty", path)
	}
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("image %s is not word-aligned (%d bytes)", path, len(data))
	}

	return &Image{
		Base:  base,
		Entry: base,
		Data:  data,
	}, nil
}

// Words returns the image as little-endian 32-bit words.
func (img *Image) Words() []uint32 {
	words := make([]uint32, len(img.Data)/4)
	for i := range words {
		b := img.Data[i*4:]
		words[i] = uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	}
	return words
}
