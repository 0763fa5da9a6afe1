// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/srfdec
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package aesblock

import (
	"crypto/aes"
	"crypto/cipher"
)

// 硬件后端。块操作委托给crypto/aes，CPU支持时标准库内部直接走AES指令
// （含aeskeygenassist的轮密钥扩展和aesenc/aesdec的轮函数）。
//
// 轮密钥由标准库持有，无法主动清零，这里只负责清零自己保留的密钥副本。
type hardwareBackend struct {
	block cipher.Block
	key   []byte
}

func newHardwareBackend(key []byte) (*hardwareBackend, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &hardwareBackend{
		block: block,
		key:   k,
	}, nil
}

func (b *hardwareBackend) encryptBlock(dst, src []byte) {
	b.block.Encrypt(dst, src)
}

func (b *hardwareBackend) decryptBlock(dst, src []byte) {
	b.block.Decrypt(dst, src)
}

func (b *hardwareBackend) dispose() {
	for i := range b.key {
		b.key[i] = 0
	}
	b.key = nil
	b.block = nil
}
