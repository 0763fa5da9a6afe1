// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/srfdec
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package mpegts

import (
	"github.com/q191201771/naza/pkg/nazabits"
)

const (
	PacketSize = 188
	SyncByte   = 0x47
)

// transport_scrambling_control
//
// 00 未加扰
// 01 保留
// 10 偶密钥加扰
// 11 奇密钥加扰
//
// 注意，源格式不区分奇偶密钥，两者都用mdb中的同一把密钥解
const (
	ScrambleControlNo       = 0
	ScrambleControlReserved = 1
	ScrambleControlEven     = 2
	ScrambleControlOdd      = 3
)

// adaptation_field_control
const (
	AdaptationFieldControlReserved = 0
	AdaptationFieldControlNo       = 1
	AdaptationFieldControlOnly     = 2
	AdaptationFieldControlFollowed = 3
)

// ------------------------------------------------
// <iso13818-1.pdf> <2.4.3.2> <page 36/174>
// sync_byte                    [8b]  * always 0x47
// transport_error_indicator    [1b]
// payload_unit_start_indicator [1b]
// transport_priority           [1b]
// PID                          [13b] **
// transport_scrambling_control [2b]
// adaptation_field_control     [2b]
// continuity_counter           [4b]  *
// ------------------------------------------------
type TsPacketHeader struct {
	Sync             uint8
	Err              uint8
	PayloadUnitStart uint8
	Prio             uint8
	Pid              uint16
	Scra             uint8
	Adaptation       uint8
	Cc               uint8
}

// HasAdaptation adaptation_field_control的高位，即byte 3的0x20位
func (h TsPacketHeader) HasAdaptation() bool {
	return h.Adaptation&0x2 != 0
}

// Scrambled 是否为加扰包，奇偶两种密钥状态都算
func (h TsPacketHeader) Scrambled() bool {
	return h.Scra == ScrambleControlEven || h.Scra == ScrambleControlOdd
}

// ParseTsPacketHeader 解析4字节TS Packet header
func ParseTsPacketHeader(b []byte) (h TsPacketHeader) {
	br := nazabits.NewBitReader(b)
	h.Sync, _ = br.ReadBits8(8)
	h.Err, _ = br.ReadBits8(1)
	h.PayloadUnitStart, _ = br.ReadBits8(1)
	h.Prio, _ = br.ReadBits8(1)
	h.Pid, _ = br.ReadBits16(13)
	h.Scra, _ = br.ReadBits8(2)
	h.Adaptation, _ = br.ReadBits8(2)
	h.Cc, _ = br.ReadBits8(4)
	return
}
