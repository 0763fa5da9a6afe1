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

// 纯Go后端。状态按输入字节序平铺保存，s[4c+r]即状态矩阵第r行第c列，
// 一个轮密钥字对应一列。

type portableBackend struct {
	ek     []uint32
	dk     []uint32
	rounds int
}

func newPortableBackend(key []byte) (*portableBackend, error) {
	rounds := keyRounds(len(key))
	ek := expandKeyEnc(key)
	return &portableBackend{
		ek:     ek,
		dk:     expandKeyDec(ek, rounds),
		rounds: rounds,
	}, nil
}

func (b *portableBackend) encryptBlock(dst, src []byte) {
	var s [16]byte
	copy(s[:], src)

	addRoundKey(&s, b.ek[0:4])
	for r := 1; r < b.rounds; r++ {
		subBytes(&s)
		shiftRows(&s)
		mixColumns(&s)
		addRoundKey(&s, b.ek[4*r:4*r+4])
	}
	// 末轮无MixColumns
	subBytes(&s)
	shiftRows(&s)
	addRoundKey(&s, b.ek[4*b.rounds:4*b.rounds+4])

	copy(dst, s[:])
}

// decryptBlock 等价逆序密码结构，与硬件指令aesdec的轮操作一致
func (b *portableBackend) decryptBlock(dst, src []byte) {
	var s [16]byte
	copy(s[:], src)

	addRoundKey(&s, b.dk[0:4])
	for r := 1; r < b.rounds; r++ {
		invShiftRows(&s)
		invSubBytes(&s)
		invMixColumns(&s)
		addRoundKey(&s, b.dk[4*r:4*r+4])
	}
	invShiftRows(&s)
	invSubBytes(&s)
	addRoundKey(&s, b.dk[4*b.rounds:4*b.rounds+4])

	copy(dst, s[:])
}

func (b *portableBackend) dispose() {
	for i := range b.ek {
		b.ek[i] = 0
	}
	for i := range b.dk {
		b.dk[i] = 0
	}
	b.ek = nil
	b.dk = nil
}

// ---------------------------------------------------------------------------------------------------------------------

func addRoundKey(s *[16]byte, rk []uint32) {
	var w [4]byte
	for c := 0; c < 4; c++ {
		bele.BePutUint32(w[:], rk[c])
		s[4*c] ^= w[0]
		s[4*c+1] ^= w[1]
		s[4*c+2] ^= w[2]
		s[4*c+3] ^= w[3]
	}
}

func subBytes(s *[16]byte) {
	for i := 0; i < 16; i++ {
		s[i] = sbox[s[i]]
	}
}

func invSubBytes(s *[16]byte) {
	for i := 0; i < 16; i++ {
		s[i] = invSbox[s[i]]
	}
}

// shiftRows 第r行循环左移r个位置
func shiftRows(s *[16]byte) {
	t := *s
	s[1], s[5], s[9], s[13] = t[5], t[9], t[13], t[1]
	s[2], s[6], s[10], s[14] = t[10], t[14], t[2], t[6]
	s[3], s[7], s[11], s[15] = t[15], t[3], t[7], t[11]
}

func invShiftRows(s *[16]byte) {
	t := *s
	s[1], s[5], s[9], s[13] = t[13], t[1], t[5], t[9]
	s[2], s[6], s[10], s[14] = t[10], t[14], t[2], t[6]
	s[3], s[7], s[11], s[15] = t[7], t[11], t[15], t[3]
}

func mixColumns(s *[16]byte) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[4*c], s[4*c+1], s[4*c+2], s[4*c+3]
		s[4*c] = gmul(a0, 2) ^ gmul(a1, 3) ^ a2 ^ a3
		s[4*c+1] = a0 ^ gmul(a1, 2) ^ gmul(a2, 3) ^ a3
		s[4*c+2] = a0 ^ a1 ^ gmul(a2, 2) ^ gmul(a3, 3)
		s[4*c+3] = gmul(a0, 3) ^ a1 ^ a2 ^ gmul(a3, 2)
	}
}

func invMixColumns(s *[16]byte) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[4*c], s[4*c+1], s[4*c+2], s[4*c+3]
		s[4*c] = gmul(a0, 14) ^ gmul(a1, 11) ^ gmul(a2, 13) ^ gmul(a3, 9)
		s[4*c+1] = gmul(a0, 9) ^ gmul(a1, 14) ^ gmul(a2, 11) ^ gmul(a3, 13)
		s[4*c+2] = gmul(a0, 13) ^ gmul(a1, 9) ^ gmul(a2, 14) ^ gmul(a3, 11)
		s[4*c+3] = gmul(a0, 11) ^ gmul(a1, 13) ^ gmul(a2, 9) ^ gmul(a3, 14)
	}
}
