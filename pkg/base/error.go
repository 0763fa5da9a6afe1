// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/srfdec
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package base

import (
	"errors"
	"fmt"
)

// ----- 通用的 ---------------------------------------------------------------------------------------------------------

var (
	ErrShortBuffer  = errors.New("srfdec: buffer too short")
	ErrFileNotExist = errors.New("srfdec: file not exist")
)

func NewErrFileNotExist(file string) error {
	return fmt.Errorf("%w. file=%s", ErrFileNotExist, file)
}

// ----- pkg/aesblock --------------------------------------------------------------------------------------------------

var ErrInvalidKeySize = errors.New("srfdec.aesblock: invalid key size")

func NewErrInvalidKeySize(size int) error {
	return fmt.Errorf("%w. size=%d", ErrInvalidKeySize, size)
}

// ----- pkg/srf -------------------------------------------------------------------------------------------------------

var (
	ErrKeyShortRead = errors.New("srfdec.srf: short read while reading drm key")
	ErrInfShortRead = errors.New("srfdec.srf: short read while reading inf file")
)

// ----- pkg/mpegts ----------------------------------------------------------------------------------------------------

var (
	ErrBadSync     = errors.New("srfdec.mpegts: bad sync byte")
	ErrNoSyncFound = errors.New("srfdec.mpegts: no sync found")
)

func NewErrBadSync(b byte) error {
	return fmt.Errorf("%w. b=0x%02x", ErrBadSync, b)
}
