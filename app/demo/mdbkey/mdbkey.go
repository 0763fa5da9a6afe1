// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/srfdec
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package main

import (
	"encoding/hex"
	"flag"
	"os"

	"github.com/q191201771/naza/pkg/nazalog"
	"github.com/q191201771/srfdec/pkg/srf"
)

// 临时小工具，打印mdb容器文件中的DRM密钥

func main() {
	mdbFile := parseFlag()

	key, err := srf.ReadDrmKey(mdbFile)
	nazalog.Assert(nil, err)

	nazalog.Infof("key=%X", key)
	nazalog.Infof("key=\n%s", hex.Dump(key))
}

func parseFlag() string {
	i := flag.String("i", "", "specify mdb file")
	flag.Parse()
	if *i == "" {
		flag.Usage()
		os.Exit(1)
	}
	return *i
}
