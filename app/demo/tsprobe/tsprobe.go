// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/srfdec
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"os"

	ts "github.com/asticode/go-astits"
	"github.com/q191201771/naza/pkg/nazalog"
)

// 临时小工具，检查解密产物是否为正常的TS流：
// 打印PAT/PMT内容，统计各PID的包数量

func main() {
	filename := parseFlag()

	fp, err := os.Open(filename)
	nazalog.Assert(nil, err)
	defer fp.Close()

	demuxer := ts.NewDemuxer(context.Background(), bufio.NewReader(fp))

	pidCount := make(map[uint16]int)
	pesCount := 0

	for {
		d, err := demuxer.NextData()
		if err != nil {
			if errors.Is(err, ts.ErrNoMorePackets) {
				break
			}
			nazalog.Errorf("demux failed. err=%+v", err)
			break
		}

		if d.FirstPacket != nil {
			pidCount[d.FirstPacket.Header.PID]++
		}

		if d.PAT != nil {
			for _, pro := range d.PAT.Programs {
				nazalog.Infof("PAT. program=%d, pmt pid=%d", pro.ProgramNumber, pro.ProgramMapID)
			}
			continue
		}
		if d.PMT != nil {
			for _, es := range d.PMT.ElementaryStreams {
				nazalog.Infof("PMT. program=%d, es pid=%d, stream type=%d",
					d.PMT.ProgramNumber, es.ElementaryPID, es.StreamType)
			}
			continue
		}
		if d.PES != nil {
			pesCount++
		}
	}

	nazalog.Infof("num of pes=%d", pesCount)
	for pid, count := range pidCount {
		nazalog.Infof("pid=%d, num of data=%d", pid, count)
	}
}

func parseFlag() string {
	i := flag.String("i", "", "specify ts file")
	flag.Parse()
	if *i == "" {
		flag.Usage()
		os.Exit(1)
	}
	return *i
}
