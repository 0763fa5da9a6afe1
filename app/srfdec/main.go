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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/q191201771/naza/pkg/bininfo"
	"github.com/q191201771/naza/pkg/nazalog"
	"github.com/q191201771/srfdec/pkg/aesblock"
	"github.com/q191201771/srfdec/pkg/base"
	"github.com/q191201771/srfdec/pkg/logic"
)

// 解密Samsung机顶盒录像的命令行工具
//
// Usage:
//   ./bin/srfdec [-dqvx] [-o outdir] infile.srf ...
//
// 参数也可以是目录，目录下的全部.srf文件都会被处理

func main() {
	files, outDir := parseFlag()

	base.LogoutStartInfo()
	base.Log.Infof("aes hardware support: %t, backend: %s", aesblock.HardwareSupported(), aesblock.CurrentBackend())

	logic.Entry(files, outDir)
}

func parseFlag() ([]string, string) {
	debugFlag := flag.Bool("d", false, "show debugging output")
	outDirFlag := flag.String("o", "", "specify output directory")
	quietFlag := flag.Bool("q", false, "be quiet, only error output")
	binInfoFlag := flag.Bool("v", false, "show bin info")
	noHwFlag := flag.Bool("x", false, "disable hardware aes support")
	flag.Parse()

	if *binInfoFlag {
		_, _ = fmt.Fprint(os.Stderr, bininfo.StringifyMultiLine())
		_, _ = fmt.Fprintln(os.Stderr, base.SrfdecFullInfo)
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		_, _ = fmt.Fprintf(os.Stderr, `
Example:
  ./bin/srfdec -o /out rec.srf
  ./bin/srfdec -d /pvr/recordings
`)
		base.OsExitAndWaitPressIfWindows(1)
	}

	level := nazalog.LevelInfo
	if *debugFlag {
		level = nazalog.LevelDebug
	}
	if *quietFlag {
		level = nazalog.LevelError
	}
	_ = nazalog.Init(func(option *nazalog.Option) {
		option.Level = level
		option.AssertBehavior = nazalog.AssertFatal
	})

	if *noHwFlag {
		aesblock.DisableHardware()
	}

	var files []string
	for _, arg := range flag.Args() {
		fi, err := os.Stat(arg)
		if err != nil {
			base.Log.Errorf("stat failed. file=%s, err=%+v", arg, err)
			continue
		}
		if !fi.IsDir() {
			files = append(files, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			base.Log.Errorf("read dir failed. dir=%s, err=%+v", arg, err)
			continue
		}
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(strings.ToLower(e.Name()), ".srf") {
				files = append(files, filepath.Join(arg, e.Name()))
			}
		}
	}
	if len(files) == 0 {
		base.Log.Error("no srf file found.")
		base.OsExitAndWaitPressIfWindows(1)
	}

	outDir := *outDirFlag
	if outDir == "" {
		outDir = filepath.Dir(files[0])
	}
	return files, outDir
}
