package io

import (
	"errors"

	"github.com/ezrec/y64/translate"
)

var f = translate.From

var (
	// Image errors
	ErrImageTooLarge = errors.New(f("image exceeds memory"))
	ErrImageName     = errors.New(f("invalid image name"))
)
