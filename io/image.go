// Package io reads and writes Y64 binary memory images.
//
// An image is a flat byte array: offset N of the file is loaded at address
// N of simulator memory.
package io

import (
	"errors"
	"io"
	"io/fs"
	"strings"
)

const (
	IMAGE_EXT   = ".bin" // Binary image file extension.
	SOURCE_EXT  = ".ys"  // Assembly source file extension.
	LISTING_EXT = ".yo"  // Listing file extension.
)

// ReadImage reads a binary image of at most limit bytes.
func ReadImage(r io.Reader, limit int) (image []byte, err error) {
	image, err = io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return
	}

	if len(image) > limit {
		image = nil
		err = ErrImageTooLarge
		return
	}

	return
}

// WriteImage writes a binary image.
func WriteImage(w io.Writer, image []byte) (err error) {
	_, err = w.Write(image)
	return
}

// LoadImage reads the named binary image of at most limit bytes from a
// file system.
func LoadImage(filesys fs.FS, name string, limit int) (image []byte, err error) {
	inf, err := filesys.Open(name)
	if err != nil {
		return
	}
	defer inf.Close()

	image, err = ReadImage(inf, limit)
	if err != nil {
		err = &fs.PathError{Op: "load", Path: name, Err: err}
	}

	return
}

// Save creates the named file on a file system and fills it with write.
// A failure to close the file is returned like a write failure.
func Save(filesys CreateFS, name string, write func(w io.Writer) error) (err error) {
	ouf, err := filesys.Create(name)
	if err != nil {
		return
	}
	defer func() {
		err = errors.Join(err, ouf.Close())
	}()

	err = write(ouf)
	return
}

// SaveImage writes the named binary image to a file system.
func SaveImage(filesys CreateFS, name string, image []byte) (err error) {
	return Save(filesys, name, func(w io.Writer) error {
		return WriteImage(w, image)
	})
}

// OutputName returns the name of a file derived from an assembly source
// name, replacing a trailing source extension with ext.
func OutputName(source string, ext string) (name string, err error) {
	base := strings.TrimSuffix(source, SOURCE_EXT)
	if len(base) == 0 || strings.HasSuffix(base, "/") {
		err = ErrImageName
		return
	}

	name = base + ext
	return
}
