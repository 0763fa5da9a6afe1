// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/srfdec
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package mpegts

import (
	"github.com/q191201771/srfdec/pkg/aesblock"
	"github.com/q191201771/srfdec/pkg/base"
)

// DecryptPacket 原地解密一个188字节TS包的载荷
//
// - 长度不足188字节时返回 base.ErrShortBuffer
// - sync字节非法时返回 base.ErrBadSync，调用方将其视为失去帧同步的信号
// - 未加扰的包原样返回
// - 载荷从偏移4开始，有adaptation field时跳过1+length字节
// - 只解完整的16字节块，尾部不足一块的字节保持原样（源格式保证载荷块对齐，不做padding）
// - 解密后清掉scrambling control两个bit，下游按普通TS流处理
//
// 每个块独立解密，块间无链接关系，与源设备的加扰方式保持一致。
func DecryptPacket(packet []byte, ctx *aesblock.Context) error {
	if len(packet) < PacketSize {
		return base.ErrShortBuffer
	}
	h := ParseTsPacketHeader(packet)
	if h.Sync != SyncByte {
		return base.NewErrBadSync(packet[0])
	}

	// 只处理加扰包
	if !h.Scrambled() {
		return nil
	}

	offset := 4
	if h.HasAdaptation() {
		offset += 1 + int(packet[4])
	}

	for i := offset; i+aesblock.BlockSize <= PacketSize; i += aesblock.BlockSize {
		ctx.DecryptBlock(packet[i:i+aesblock.BlockSize], packet[i:i+aesblock.BlockSize])
	}

	packet[3] &= 0x3f
	return nil
}
