// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/srfdec
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package mpegts_test

import (
	"bytes"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/q191201771/naza/pkg/assert"
	"github.com/q191201771/srfdec/pkg/aesblock"
	"github.com/q191201771/srfdec/pkg/base"
	"github.com/q191201771/srfdec/pkg/mpegts"
)

var testKey = []byte{0xca, 0x96, 0x0e, 0x1c, 0x8e, 0x82, 0x94, 0xa3, 0x1a, 0xb1, 0xd2, 0x8e, 0x68, 0x48, 0xfc, 0xc5}

func newCtx(t *testing.T) *aesblock.Context {
	ctx, err := aesblock.NewContext(testKey)
	assert.Equal(t, nil, err)
	return ctx
}

// buildPacket 构造一个载荷已加扰的TS包，返回加扰包和明文包
func buildPacket(t *testing.T, ctx *aesblock.Context, byte3 uint8, adaptationLength int) (scrambled []byte, plain []byte) {
	plain = make([]byte, mpegts.PacketSize)
	plain[0] = mpegts.SyncByte
	plain[1] = 0x01
	plain[2] = 0x00
	plain[3] = byte3

	offset := 4
	if byte3&0x20 != 0 {
		plain[4] = byte(adaptationLength)
		for i := 0; i < adaptationLength; i++ {
			plain[5+i] = 0xee
		}
		offset += 1 + adaptationLength
	}
	for i := offset; i < mpegts.PacketSize; i++ {
		plain[i] = byte(i)
	}

	scrambled = make([]byte, mpegts.PacketSize)
	copy(scrambled, plain)
	for i := offset; i+aesblock.BlockSize <= mpegts.PacketSize; i += aesblock.BlockSize {
		ctx.EncryptBlock(scrambled[i:i+aesblock.BlockSize], scrambled[i:i+aesblock.BlockSize])
	}
	return
}

func TestParseTsPacketHeader(t *testing.T) {
	b := []byte{0x47, 0x41, 0x00, 0xd7}
	h := mpegts.ParseTsPacketHeader(b)
	assert.Equal(t, uint8(mpegts.SyncByte), h.Sync)
	assert.Equal(t, uint8(0), h.Err)
	assert.Equal(t, uint8(1), h.PayloadUnitStart)
	assert.Equal(t, uint16(0x100), h.Pid)
	assert.Equal(t, uint8(mpegts.ScrambleControlOdd), h.Scra)
	assert.Equal(t, uint8(mpegts.AdaptationFieldControlNo), h.Adaptation)
	assert.Equal(t, uint8(7), h.Cc)
	assert.Equal(t, true, h.Scrambled())
	assert.Equal(t, false, h.HasAdaptation())
}

func TestDecryptPacketClear(t *testing.T) {
	ctx := newCtx(t)
	defer ctx.Dispose()

	// 未加扰(00)与保留态(01)的包原样返回
	for _, byte3 := range []uint8{0x10, 0x50} {
		packet := make([]byte, mpegts.PacketSize)
		packet[0] = mpegts.SyncByte
		packet[3] = byte3
		for i := 4; i < mpegts.PacketSize; i++ {
			packet[i] = byte(i)
		}
		want := make([]byte, mpegts.PacketSize)
		copy(want, packet)

		err := mpegts.DecryptPacket(packet, ctx)
		assert.Equal(t, nil, err)
		assert.Equal(t, want, packet)

		// 幂等
		err = mpegts.DecryptPacket(packet, ctx)
		assert.Equal(t, nil, err)
		assert.Equal(t, want, packet)
	}
}

func TestDecryptPacketBadSync(t *testing.T) {
	ctx := newCtx(t)
	defer ctx.Dispose()

	packet := make([]byte, mpegts.PacketSize)
	packet[0] = 0x48
	err := mpegts.DecryptPacket(packet, ctx)
	assert.Equal(t, true, errors.Is(err, base.ErrBadSync))
}

func TestDecryptPacketShortBuffer(t *testing.T) {
	ctx := newCtx(t)
	defer ctx.Dispose()

	packet := make([]byte, mpegts.PacketSize-1)
	packet[0] = mpegts.SyncByte
	err := mpegts.DecryptPacket(packet, ctx)
	assert.Equal(t, true, errors.Is(err, base.ErrShortBuffer))

	err = mpegts.DecryptPacket(nil, ctx)
	assert.Equal(t, true, errors.Is(err, base.ErrShortBuffer))
}

func TestDecryptPacketNoAdaptation(t *testing.T) {
	ctx := newCtx(t)
	defer ctx.Dispose()

	// scrambling control=11，无adaptation field：
	// 从偏移4开始解11个整块（176字节），尾部8字节保持原样
	scrambled, plain := buildPacket(t, ctx, 0xd0, 0)
	assert.Equal(t, plain[180:], scrambled[180:])

	err := mpegts.DecryptPacket(scrambled, ctx)
	assert.Equal(t, nil, err)

	want := make([]byte, mpegts.PacketSize)
	copy(want, plain)
	want[3] &= 0x3f
	assert.Equal(t, want, scrambled)
}

func TestDecryptPacketWithAdaptation(t *testing.T) {
	ctx := newCtx(t)
	defer ctx.Dispose()

	// scrambling control=10，adaptation field长度10：
	// 载荷从偏移15开始，解10个整块（160字节），尾部13字节保持原样
	scrambled, plain := buildPacket(t, ctx, 0xb0, 10)
	assert.Equal(t, plain[175:], scrambled[175:])

	err := mpegts.DecryptPacket(scrambled, ctx)
	assert.Equal(t, nil, err)

	want := make([]byte, mpegts.PacketSize)
	copy(want, plain)
	want[3] &= 0x3f
	assert.Equal(t, want, scrambled)
}

func TestPacketWindow(t *testing.T) {
	r := rand.New(rand.NewSource(188))
	in := make([]byte, 200*1024+123)
	r.Read(in)

	var out bytes.Buffer
	w := mpegts.NewPacketWindow(bytes.NewReader(in), &out)
	w.Fill()
	assert.Equal(t, len(in), w.Len())
	assert.Equal(t, true, w.Eof())
	assert.Equal(t, in, w.Bytes())

	// 消费一半再全部排出
	half := len(in) / 2
	w.Advance(half)
	assert.Equal(t, half, w.Pending())
	err := w.Drain()
	assert.Equal(t, nil, err)
	assert.Equal(t, in[:half], out.Bytes())
	assert.Equal(t, 0, w.Pending())
	assert.Equal(t, in[half:], w.Bytes())

	w.Advance(w.Len())
	err = w.Drain()
	assert.Equal(t, nil, err)
	assert.Equal(t, in, out.Bytes())
	assert.Equal(t, 0, w.Len())
}

func TestSynchronizerLock(t *testing.T) {
	// 50字节垃圾，后接三个188字节步长的sync字节
	in := bytes.Repeat([]byte{0xaa}, 50)
	for i := 0; i < 3; i++ {
		packet := bytes.Repeat([]byte{0xbb}, mpegts.PacketSize)
		packet[0] = mpegts.SyncByte
		in = append(in, packet...)
	}

	var out bytes.Buffer
	w := mpegts.NewPacketWindow(bytes.NewReader(in), &out)
	s := mpegts.NewSynchronizer()
	assert.Equal(t, mpegts.SyncStateSearching, s.State())

	err := s.Search(w)
	assert.Equal(t, nil, err)
	assert.Equal(t, mpegts.SyncStateLocked, s.State())
	assert.Equal(t, 1, s.Attempts())
	assert.Equal(t, 50, w.Pending())
	assert.Equal(t, uint8(mpegts.SyncByte), w.Bytes()[0])
}

func TestFileWriter(t *testing.T) {
	var fw mpegts.FileWriter
	assert.Equal(t, "", fw.Name())
	assert.Equal(t, nil, fw.Dispose())

	filename := filepath.Join(t.TempDir(), "out.ts")
	err := fw.Create(filename)
	assert.Equal(t, nil, err)
	assert.Equal(t, filename, fw.Name())

	n, err := fw.Write([]byte{0x47, 0x00})
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, nil, fw.Dispose())

	content, err := os.ReadFile(filename)
	assert.Equal(t, nil, err)
	assert.Equal(t, []byte{0x47, 0x00}, content)
}

func TestSynchronizerNoSyncFound(t *testing.T) {
	in := make([]byte, 2048)

	var out bytes.Buffer
	w := mpegts.NewPacketWindow(bytes.NewReader(in), &out)
	s := mpegts.NewSynchronizer()

	err := s.Search(w)
	assert.Equal(t, true, errors.Is(err, base.ErrNoSyncFound))
	assert.Equal(t, base.SyncSearchMaxRetry, s.Attempts())
	assert.Equal(t, mpegts.SyncStateSearching, s.State())
}
