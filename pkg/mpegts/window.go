// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/srfdec
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package mpegts

import (
	"fmt"
	"io"

	"github.com/q191201771/srfdec/pkg/base"
)

const (
	windowSize     = 1024 * 1024
	readChunkSize  = 64 * 1024
	writeChunkSize = 64 * 1024
)

// PacketWindow 在输入流上滑动的有界字节窗口
//
// 三个位置把窗口分成两段：
//
//	core[spos:cpos) 已消费、等待写出的数据
//	core[cpos:epos) 已读入、尚未消费的数据
//
// Fill 从输入读满窗口尾部，Drain 把已消费数据按块写出并将剩余数据搬到窗口头部。
// 窗口不拥有输入输出流，只通过io.Reader/io.Writer访问。
type PacketWindow struct {
	r io.Reader
	w io.Writer

	core []byte
	spos int
	cpos int
	epos int
	eof  bool
}

func NewPacketWindow(r io.Reader, w io.Writer) *PacketWindow {
	return &PacketWindow{
		r:    r,
		w:    w,
		core: make([]byte, windowSize),
	}
}

// Fill 以readChunkSize为单位读入数据，直到窗口尾部放不下一个chunk或输入结束
func (p *PacketWindow) Fill() {
	for len(p.core)-p.epos >= readChunkSize && !p.eof {
		n, err := io.ReadFull(p.r, p.core[p.epos:p.epos+readChunkSize])
		p.epos += n
		if err != nil {
			p.eof = true
		}
	}
}

// Bytes 未消费的数据，不拷贝
func (p *PacketWindow) Bytes() []byte {
	return p.core[p.cpos:p.epos]
}

// Advance 将前n个未消费字节标记为已消费
func (p *PacketWindow) Advance(n int) {
	if n > p.epos-p.cpos {
		base.Log.Warnf("[%p] PacketWindow::Advance too large. n=%d, %s", p, n, p.DebugString())
		p.cpos = p.epos
		return
	}
	p.cpos += n
}

// Len 未消费数据的长度
func (p *PacketWindow) Len() int {
	return p.epos - p.cpos
}

// Pending 已消费、尚未写出的数据长度
func (p *PacketWindow) Pending() int {
	return p.cpos - p.spos
}

// Eof 输入是否已经读完
func (p *PacketWindow) Eof() bool {
	return p.eof
}

// Drain 写出已消费数据并压缩窗口
//
// 平时只按writeChunkSize整块写出，输入结束后把尾巴也写掉。
// 未消费的数据搬到窗口头部，腾出尾部空间给下一次 Fill。
func (p *PacketWindow) Drain() error {
	for p.cpos-p.spos >= writeChunkSize {
		n, err := p.w.Write(p.core[p.spos : p.spos+writeChunkSize])
		p.spos += n
		if err != nil {
			return err
		}
	}
	for p.cpos-p.spos > 0 && p.eof {
		n, err := p.w.Write(p.core[p.spos:p.cpos])
		p.spos += n
		if err != nil {
			return err
		}
	}

	if p.epos-p.spos > 0 {
		copy(p.core, p.core[p.spos:p.epos])
	}
	p.epos -= p.spos
	p.cpos -= p.spos
	p.spos = 0

	return nil
}

func (p *PacketWindow) DebugString() string {
	return fmt.Sprintf("len(core)=%d, spos=%d, cpos=%d, epos=%d, eof=%t", len(p.core), p.spos, p.cpos, p.epos, p.eof)
}
