// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/srfdec
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

// Package aesblock AES单块加解密
//
// 提供两个等价的执行后端：
// - BackendHardware 走 crypto/aes，CPU支持AES指令集时由标准库内部使用硬件指令
// - BackendPortable 纯Go的查表/字节实现，任意平台可用
//
// 两个后端对任意输入的输出逐比特一致。后端在进程启动后第一次创建 Context 前确定，
// 之后不再变更。
package aesblock

import (
	"github.com/q191201771/srfdec/pkg/base"
)

const BlockSize = 16

type Backend int

const (
	BackendHardware Backend = iota + 1
	BackendPortable
)

func (b Backend) String() string {
	switch b {
	case BackendHardware:
		return "hardware"
	case BackendPortable:
		return "portable"
	}
	return "unknown"
}

// processBackend 进程级别的后端选择，只在首次使用前允许修改
var processBackend Backend

func init() {
	if hardwareSupported() {
		processBackend = BackendHardware
	} else {
		processBackend = BackendPortable
	}
}

// HardwareSupported 当前CPU是否支持AES指令集
func HardwareSupported() bool {
	return hardwareSupported()
}

// DisableHardware 强制使用纯Go后端
//
// 注意，需在首次创建 Context 之前调用
func DisableHardware() {
	processBackend = BackendPortable
	base.Log.Debugf("aesblock: hardware backend disabled.")
}

// CurrentBackend 当前进程选择的后端
func CurrentBackend() Backend {
	return processBackend
}

// ---------------------------------------------------------------------------------------------------------------------

type blockBackend interface {
	encryptBlock(dst, src []byte)
	decryptBlock(dst, src []byte)
	// dispose 清零内部保存的密钥材料
	dispose()
}

// Context 一次录像处理期间的加解密上下文
//
// 绑定一份轮密钥和一个后端。使用完毕后调用 Dispose 清除密钥材料。
type Context struct {
	backend blockBackend
	kind    Backend
	rounds  int
}

// NewContext 使用进程级后端创建上下文
//
// 密钥长度必须为16、24或32字节，否则返回 base.ErrInvalidKeySize
func NewContext(key []byte) (*Context, error) {
	return NewContextWithBackend(key, processBackend)
}

func NewContextWithBackend(key []byte, kind Backend) (*Context, error) {
	rounds := keyRounds(len(key))
	if rounds == 0 {
		return nil, base.NewErrInvalidKeySize(len(key))
	}

	var bb blockBackend
	var err error
	switch kind {
	case BackendHardware:
		bb, err = newHardwareBackend(key)
	default:
		kind = BackendPortable
		bb, err = newPortableBackend(key)
	}
	if err != nil {
		return nil, err
	}

	return &Context{
		backend: bb,
		kind:    kind,
		rounds:  rounds,
	}, nil
}

// EncryptBlock 加密一个16字节块，dst和src可为同一块内存
func (ctx *Context) EncryptBlock(dst, src []byte) {
	ctx.backend.encryptBlock(dst, src)
}

// DecryptBlock 解密一个16字节块，dst和src可为同一块内存
func (ctx *Context) DecryptBlock(dst, src []byte) {
	ctx.backend.decryptBlock(dst, src)
}

func (ctx *Context) Backend() Backend {
	return ctx.kind
}

func (ctx *Context) Rounds() int {
	return ctx.rounds
}

// Dispose 清零并释放轮密钥
func (ctx *Context) Dispose() {
	if ctx.backend != nil {
		ctx.backend.dispose()
		ctx.backend = nil
	}
}

// keyRounds 由密钥长度得到轮数，非法长度返回0
func keyRounds(keyLen int) int {
	switch keyLen {
	case 16:
		return 10
	case 24:
		return 12
	case 32:
		return 14
	}
	return 0
}
