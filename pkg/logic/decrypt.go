// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/srfdec
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

// Package logic 驱动单份以及批量录像的解密流程
package logic

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/q191201771/srfdec/pkg/aesblock"
	"github.com/q191201771/srfdec/pkg/base"
	"github.com/q191201771/srfdec/pkg/mpegts"
	"github.com/q191201771/srfdec/pkg/srf"
)

// Entry 批量处理入口
//
// 单份录像失败只记日志并跳过，批次继续
func Entry(srfFiles []string, outDir string) {
	for _, f := range srfFiles {
		if err := DecryptRecording(f, outDir); err != nil {
			base.Log.Errorf("decrypt recording failed. srf=%s, err=%+v", f, err)
		}
	}
}

// DecryptRecording 解密一份录像
//
// 流程：
// 1. 从伴随的mdb文件读DRM密钥，初始化加解密上下文
// 2. 根据inf文件生成输出文件名，inf不可用时退化为srf同名.ts
// 3. 建立包同步后逐包解密写出；中途丢失同步则刷出已有数据重新搜索；
//    同步搜索耗尽重试次数时该录像终止，已写出的数据保留
func DecryptRecording(srfFile string, outDir string) error {
	mdbFile := srf.ReplaceExt(srfFile, ".mdb")
	infFile := srf.ReplaceExt(srfFile, ".inf")

	key, err := srf.ReadDrmKey(mdbFile)
	if err != nil {
		return err
	}
	ctx, err := aesblock.NewContext(key)
	if err != nil {
		return err
	}
	defer ctx.Dispose()

	outFile, err := srf.GenOutFilename(infFile, outDir)
	if err != nil {
		base.Log.Warnf("gen out filename from inf failed, use srf name instead. inf=%s, err=%+v", infFile, err)
		outFile = filepath.Join(outDir, srf.ReplaceExt(filepath.Base(srfFile), ".ts"))
	}

	fp, err := os.Open(srfFile)
	if err != nil {
		return err
	}
	defer fp.Close()

	if fi, e := fp.Stat(); e == nil {
		base.Log.Infof("decrypting %s. filesize=%d, backend=%s, rounds=%d", srfFile, fi.Size(), ctx.Backend(), ctx.Rounds())
	}

	var fw mpegts.FileWriter
	if err = fw.Create(outFile); err != nil {
		return err
	}
	defer fw.Dispose()
	base.Log.Infof("writing to %s", fw.Name())

	w := mpegts.NewPacketWindow(fp, &fw)
	s := mpegts.NewSynchronizer()

	// 日志最低级别为debug时，打印前若干个包的头部字段
	ld := base.NewLogDump(base.Log, 16)

	var packetCount, scrambledCount, resyncCount int

	for {
		if err = s.Search(w); err != nil {
			// 没法继续往前推进了，已写出的数据保留
			return err
		}

		lost := false
		for !lost {
			w.Fill()

			for w.Len() >= mpegts.PacketSize {
				packet := w.Bytes()[:mpegts.PacketSize]
				scra := packet[3] >> 6
				if ld.ShouldDump() {
					ld.Outf("packet. %+v", mpegts.ParseTsPacketHeader(packet))
				}
				if err = mpegts.DecryptPacket(packet, ctx); err != nil {
					if errors.Is(err, base.ErrBadSync) {
						// 丢同步，从当前位置重新搜索
						base.Log.Debugf("sync lost. packets=%d, err=%+v", packetCount, err)
						s.LoseSync()
						resyncCount++
						lost = true
						break
					}
					return err
				}
				packetCount++
				if scra >= mpegts.ScrambleControlEven {
					scrambledCount++
				}
				w.Advance(mpegts.PacketSize)
			}

			if err = w.Drain(); err != nil {
				return err
			}

			if lost {
				break
			}
			if w.Eof() && w.Len() < mpegts.PacketSize {
				// 尾部不足一个包的字节丢弃
				base.Log.Infof("done. packets=%d, scrambled=%d, resync=%d, remain=%d",
					packetCount, scrambledCount, resyncCount, w.Len())
				return nil
			}
		}
	}
}
