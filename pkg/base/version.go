// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/srfdec
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package base

import "strings"

// 版本信息相关
// srfdec的一部分版本信息使用了naza.bininfo
// 另外，我们也在本文件提供另外一些信息

// 版本，该变量由外部脚本修改维护
const SrfdecVersion = "v0.2.0"

var (
	SrfdecLibraryName = "srfdec"
	SrfdecGithubRepo  = "github.com/q191201771/srfdec"
	SrfdecGithubSite  = "https://github.com/q191201771/srfdec"

	// e.g. srfdec v0.2.0 (github.com/q191201771/srfdec)
	SrfdecFullInfo = SrfdecLibraryName + " " + SrfdecVersion + " (" + SrfdecGithubRepo + ")"

	// e.g. 0.2.0
	SrfdecVersionDot string
)

func init() {
	SrfdecVersionDot = strings.TrimPrefix(SrfdecVersion, "v")
}
