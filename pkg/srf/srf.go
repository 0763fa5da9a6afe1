// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/srfdec
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

// Package srf Samsung机顶盒录像的伴随文件解析
//
// 一份录像由三个文件组成：
// - .srf 加扰的TS流本体
// - .mdb 含DRM密钥的容器文件
// - .inf 频道名、节目名等元信息
package srf

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/q191201771/srfdec/pkg/base"
)

const (
	drmKeyOffset = 8
	drmKeySize   = 16

	infHeadSize = 0x200
)

// ParseDrmKey 从mdb容器内容中取出16字节DRM密钥
//
// 密钥从偏移8开始，每4字节为一组，组内字节序取反，组间顺序不变：
// 源下标j的字节落在密钥的(j&0xc)+(3-(j&3))位置
func ParseDrmKey(mdb []byte) ([]byte, error) {
	if len(mdb) < drmKeyOffset+drmKeySize {
		return nil, base.ErrKeyShortRead
	}
	key := make([]byte, drmKeySize)
	for j := 0; j < drmKeySize; j++ {
		key[(j&0xc)+(3-(j&3))] = mdb[drmKeyOffset+j]
	}
	return key, nil
}

// ReadDrmKey 从mdb文件中读取DRM密钥
func ReadDrmKey(mdbFile string) ([]byte, error) {
	fp, err := os.Open(mdbFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, base.NewErrFileNotExist(mdbFile)
		}
		return nil, err
	}
	defer fp.Close()

	buf := make([]byte, drmKeyOffset+drmKeySize)
	if _, err = io.ReadFull(fp, buf); err != nil {
		return nil, base.ErrKeyShortRead
	}
	key, err := ParseDrmKey(buf)
	if err != nil {
		return nil, err
	}

	base.Log.Infof("drm key successfully read from %s. key=%X", filepath.Base(mdbFile), key)
	return key, nil
}

// ReplaceExt 替换文件名后缀，例如("a/b.srf", ".mdb")得到"a/b.mdb"
func ReplaceExt(path string, newExt string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + newExt
}

// GenOutFilename 根据inf文件中的频道名和节目名生成输出文件名
//
// inf头部0x200字节中奇数下标是文本内容（UTF-16LE的低位字节），
// 字母数字保留，其余可见字符替换为下划线，频道名与节目名之间以"_-_"分隔。
// 文件结构见 http://code.google.com/p/samy-pvr-manager/wiki/InfFileStructure
func GenOutFilename(infFile string, outDir string) (string, error) {
	fp, err := os.Open(infFile)
	if err != nil {
		if os.IsNotExist(err) {
			return "", base.NewErrFileNotExist(infFile)
		}
		return "", err
	}
	defer fp.Close()

	inf := make([]byte, infHeadSize)
	if _, err = io.ReadFull(fp, inf); err != nil {
		return "", base.ErrInfShortRead
	}

	var sb strings.Builder
	sb.WriteString(strings.TrimSuffix(filepath.Base(infFile), filepath.Ext(infFile)))
	sb.WriteString("-")

	for i := 1; i < infHeadSize; i += 2 {
		if inf[i] != 0 {
			if (inf[i] >= 'A' && inf[i] <= 'z') || (inf[i] >= '0' && inf[i] <= '9') {
				sb.WriteByte(inf[i])
			} else {
				sb.WriteString("_")
			}
		}
		if i == 0xff {
			sb.WriteString("_-_")
		}
	}
	sb.WriteString(".ts")

	return filepath.Join(outDir, sb.String()), nil
}
