// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/srfdec
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package aesblock

import "golang.org/x/sys/cpu"

// CPU能力探测。只在进程初始化时读取一次。
func hardwareSupported() bool {
	return cpu.X86.HasAES || cpu.ARM64.HasAES
}
