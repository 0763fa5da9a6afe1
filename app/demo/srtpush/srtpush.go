// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/srfdec
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package main

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/haivision/srtgo"
	"github.com/q191201771/naza/pkg/nazalog"
	"github.com/q191201771/srfdec/pkg/mpegts"
)

// 临时小工具，把解密后的TS文件按SRT协议推出去，便于用播放器验证内容
//
// 一次发7个TS包（1316字节，不超过一个MTU），按码率参数定速

const packetsPerChunk = 7

func main() {
	filename, host, port, bitrateKbps := parseFlag()

	fp, err := os.Open(filename)
	nazalog.Assert(nil, err)
	defer fp.Close()

	options := map[string]string{
		"transtype": "live",
	}
	socket := srtgo.NewSrtSocket(host, uint16(port), options)
	defer socket.Close()

	err = socket.Connect()
	nazalog.Assert(nil, err)
	nazalog.Infof("connected. %s:%d", host, port)

	chunkSize := packetsPerChunk * mpegts.PacketSize
	interval := time.Duration(float64(chunkSize*8) / float64(bitrateKbps*1000) * float64(time.Second))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	buf := make([]byte, chunkSize)
	var sent int
	for range ticker.C {
		n, err := io.ReadFull(fp, buf)
		if n > 0 {
			if _, werr := socket.Write(buf[:n]); werr != nil {
				nazalog.Errorf("write failed. err=%+v", werr)
				return
			}
			sent += n
		}
		if err != nil {
			break
		}
	}

	nazalog.Infof("done. sent=%d", sent)
}

func parseFlag() (string, string, int, int) {
	i := flag.String("i", "", "specify ts file")
	h := flag.String("h", "127.0.0.1", "specify srt host")
	p := flag.Int("p", 6001, "specify srt port")
	b := flag.Int("b", 8000, "specify send bitrate in kbps")
	flag.Parse()
	if *i == "" {
		flag.Usage()
		os.Exit(1)
	}
	return *i, *h, *p, *b
}
