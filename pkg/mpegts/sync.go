// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/srfdec
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package mpegts

import (
	"github.com/q191201771/srfdec/pkg/base"
)

type SyncState int

const (
	SyncStateSearching SyncState = iota + 1
	SyncStateLocked
)

// Synchronizer 在字节流中定位TS包边界
//
// 录像文件可能存在损坏区域（丢字节、写入中断），以固定188字节为步长
// 连续命中三个sync字节作为对齐依据，误判概率足够低。
//
// 两个状态：
// - Searching 调用 Search 在窗口内扫描，定位后将窗口游标推进到包边界
// - Locked 同步器不工作，调用方直接按188字节步长消费；发现sync字节
//   对不上时调用 LoseSync 回到Searching
type Synchronizer struct {
	state        SyncState
	lastAttempts int
}

func NewSynchronizer() *Synchronizer {
	return &Synchronizer{
		state: SyncStateSearching,
	}
}

func (s *Synchronizer) State() SyncState {
	return s.state
}

// LoseSync 帧同步丢失，回到Searching状态
func (s *Synchronizer) LoseSync() {
	s.state = SyncStateSearching
}

// Search 扫描窗口，寻找i、i+188、i+376三处都是sync字节的位置
//
// 每轮扫描前向窗口补一次数据，最多尝试 base.SyncSearchMaxRetry 轮，
// 统统失败时返回 base.ErrNoSyncFound
func (s *Synchronizer) Search(w *PacketWindow) error {
	s.state = SyncStateSearching
	s.lastAttempts = 0

	for retry := 0; retry < base.SyncSearchMaxRetry; retry++ {
		s.lastAttempts++
		w.Fill()

		b := w.Bytes()
		for i := 0; i+2*PacketSize < len(b); i++ {
			if b[i] == SyncByte && b[i+PacketSize] == SyncByte && b[i+2*PacketSize] == SyncByte {
				w.Advance(i)
				s.state = SyncStateLocked
				base.Log.Debugf("synced. offset=%d, attempt=%d", i, s.lastAttempts)
				return nil
			}
		}
	}

	return base.ErrNoSyncFound
}

// Attempts 上一次 Search 的扫描轮数
func (s *Synchronizer) Attempts() int {
	return s.lastAttempts
}
