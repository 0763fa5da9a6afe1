// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/srfdec
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package base

import "github.com/q191201771/naza/pkg/nazalog"

var Log = nazalog.GetGlobalLogger()

// ----- mpegts --------------------
var (
	// SyncSearchMaxRetry 重新同步时，读取并扫描缓冲区的最大次数
	SyncSearchMaxRetry = 10
)
