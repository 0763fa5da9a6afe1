// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/srfdec
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package aesblock

import (
	"github.com/q191201771/naza/pkg/bele"
)

// 轮密钥扩展，见 <FIPS-197> <5.2> <Key Expansion>
//
// 轮密钥按32bit字保存，一个字对应状态矩阵的一列，字内字节序为大端。

var rcon = [10]byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}

// expandKeyEnc 由密钥扩展出加密方向的轮密钥，共4*(rounds+1)个字
//
// 调用方保证密钥长度合法
func expandKeyEnc(key []byte) []uint32 {
	nk := len(key) / 4
	rounds := keyRounds(len(key))
	n := 4 * (rounds + 1)

	ek := make([]uint32, n)
	for i := 0; i < nk; i++ {
		ek[i] = bele.BeUint32(key[4*i:])
	}
	for i := nk; i < n; i++ {
		t := ek[i-1]
		if i%nk == 0 {
			t = subWord(rotWord(t)) ^ uint32(rcon[i/nk-1])<<24
		} else if nk > 6 && i%nk == 4 {
			// AES-256多一次SubWord，见 <FIPS-197> <Figure 11>
			t = subWord(t)
		}
		ek[i] = ek[i-nk] ^ t
	}
	return ek
}

// expandKeyDec 由加密轮密钥导出解密方向的轮密钥
//
// 轮序整体倒置，首尾两轮直接拷贝，中间各轮对每个字做一次InvMixColumns。
// 与硬件指令aesimc的用法一致，解出的轮密钥配合等价逆序密码结构使用，
// 见 <FIPS-197> <5.3.5> <Equivalent Inverse Cipher>
func expandKeyDec(ek []uint32, rounds int) []uint32 {
	dk := make([]uint32, len(ek))
	for r := 0; r <= rounds; r++ {
		copy(dk[4*r:4*r+4], ek[4*(rounds-r):4*(rounds-r)+4])
	}
	for r := 1; r < rounds; r++ {
		for c := 0; c < 4; c++ {
			dk[4*r+c] = invMixColumnsWord(dk[4*r+c])
		}
	}
	return dk
}

func rotWord(w uint32) uint32 {
	return w<<8 | w>>24
}

func subWord(w uint32) uint32 {
	return uint32(sbox[byte(w>>24)])<<24 |
		uint32(sbox[byte(w>>16)])<<16 |
		uint32(sbox[byte(w>>8)])<<8 |
		uint32(sbox[byte(w)])
}

func invMixColumnsWord(w uint32) uint32 {
	a0 := byte(w >> 24)
	a1 := byte(w >> 16)
	a2 := byte(w >> 8)
	a3 := byte(w)
	b0 := gmul(a0, 14) ^ gmul(a1, 11) ^ gmul(a2, 13) ^ gmul(a3, 9)
	b1 := gmul(a0, 9) ^ gmul(a1, 14) ^ gmul(a2, 11) ^ gmul(a3, 13)
	b2 := gmul(a0, 13) ^ gmul(a1, 9) ^ gmul(a2, 14) ^ gmul(a3, 11)
	b3 := gmul(a0, 11) ^ gmul(a1, 13) ^ gmul(a2, 9) ^ gmul(a3, 14)
	return uint32(b0)<<24 | uint32(b1)<<16 | uint32(b2)<<8 | uint32(b3)
}

// ----- GF(2^8)运算与S盒 -----------------------------------------------------------------------------------------------

var sbox [256]byte
var invSbox [256]byte

// gmul GF(2^8)乘法，模多项式x^8+x^4+x^3+x+1
func gmul(a, b byte) byte {
	var p byte
	for b > 0 {
		if b&1 != 0 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= 0x1b
		}
		b >>= 1
	}
	return p
}

func gfInv(a byte) byte {
	if a == 0 {
		return 0
	}
	for x := 1; x < 256; x++ {
		if gmul(a, byte(x)) == 1 {
			return byte(x)
		}
	}
	return 0
}

func rotl8(b byte, n uint) byte {
	return b<<n | b>>(8-n)
}

// S盒在init时按定义生成：乘法逆元接仿射变换，见 <FIPS-197> <5.1.1>
func init() {
	for i := 0; i < 256; i++ {
		b := gfInv(byte(i))
		s := b ^ rotl8(b, 1) ^ rotl8(b, 2) ^ rotl8(b, 3) ^ rotl8(b, 4) ^ 0x63
		sbox[i] = s
		invSbox[s] = byte(i)
	}
}
