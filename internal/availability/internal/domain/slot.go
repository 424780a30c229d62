// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

const (
	minutesPerDay = 24 * 60
	// MaxRange 一次最多生成一个月的可预约时间段
	MaxRange = 31 * 24 * time.Hour
)

var ErrInvalidSlot = errors.New("invalid availability slot")

// Slot 每周重复的可预约时间段, 分钟数相对陪护者所在时区的零点
type Slot struct {
	ID          int64
	CompanionID int64
	// Weekday 0 是周日
	Weekday     time.Weekday
	StartMinute int
	EndMinute   int
}

func (s Slot) Validate() error {
	if s.Weekday < time.Sunday || s.Weekday > time.Saturday {
		return fmt.Errorf("%w: weekday %d", ErrInvalidSlot, s.Weekday)
	}
	if s.StartMinute < 0 || s.EndMinute > minutesPerDay || s.StartMinute >= s.EndMinute {
		return fmt.Errorf("%w: minutes [%d, %d)", ErrInvalidSlot, s.StartMinute, s.EndMinute)
	}
	return nil
}

// Window 具体的时间区间, 左闭右开
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Overlaps(o Window) bool {
	return w.Start.Before(o.End) && o.Start.Before(w.End)
}

// ValidateWeekly 校验一整周的时间段, 同一天的时间段不能重叠, 首尾相接是允许的
func ValidateWeekly(slots []Slot) error {
	sorted := SortSlots(slots)
	for i, s := range sorted {
		if err := s.Validate(); err != nil {
			return err
		}
		if i == 0 {
			continue
		}
		prev := sorted[i-1]
		if prev.Weekday == s.Weekday && prev.EndMinute > s.StartMinute {
			return fmt.Errorf("%w: overlapping slots on weekday %d", ErrInvalidSlot, s.Weekday)
		}
	}
	return nil
}

// SortSlots 按星期和开始时间排序, 不修改入参
func SortSlots(slots []Slot) []Slot {
	res := make([]Slot, len(slots))
	copy(res, slots)
	sort.Slice(res, func(i, j int) bool {
		if res[i].Weekday != res[j].Weekday {
			return res[i].Weekday < res[j].Weekday
		}
		return res[i].StartMinute < res[j].StartMinute
	})
	return res
}

// Covers [start, end) 是否完整落在 start 当天的某个时间段里, 不支持跨零点
func Covers(slots []Slot, loc *time.Location, start, end time.Time) bool {
	if !start.Before(end) {
		return false
	}
	ls, le := start.In(loc), end.In(loc)
	day := midnight(ls)
	startMin := minutesSince(day, ls)
	endMin := minutesSince(day, le)
	if endMin > minutesPerDay {
		return false
	}
	for _, s := range slots {
		if s.Weekday == ls.Weekday() && s.StartMinute <= startMin && endMin <= s.EndMinute {
			return true
		}
	}
	return false
}

// Generate 生成 [from, to) 之间的可预约窗口.
// 窗口从时间段开始处对齐, 以 duration 为步长, 已经开始的和与 busy 重叠的窗口会被排除
func Generate(slots []Slot, loc *time.Location, from, to time.Time,
	duration time.Duration, busy []Window, now time.Time) []Window {
	if duration <= 0 || !from.Before(to) {
		return nil
	}
	if to.Sub(from) > MaxRange {
		to = from.Add(MaxRange)
	}
	sorted := SortSlots(slots)
	var res []Window
	for day := midnight(from.In(loc)); day.Before(to); day = nextDay(day) {
		for _, s := range sorted {
			if s.Weekday != day.Weekday() {
				continue
			}
			slotEnd := atMinute(day, s.EndMinute)
			for start := atMinute(day, s.StartMinute); !start.Add(duration).After(slotEnd); start = start.Add(duration) {
				w := Window{Start: start, End: start.Add(duration)}
				if w.Start.Before(from) || w.End.After(to) || w.Start.Before(now) {
					continue
				}
				if overlapsAny(w, busy) {
					continue
				}
				res = append(res, w)
			}
		}
	}
	return res
}

func overlapsAny(w Window, busy []Window) bool {
	for _, b := range busy {
		if w.Overlaps(b) {
			return true
		}
	}
	return false
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func nextDay(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, day.Location())
}

// atMinute 用 time.Date 归一化, 夏令时切换当天也能得到正确的墙上时间
func atMinute(day time.Time, minute int) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, 0, minute, 0, 0, day.Location())
}

func minutesSince(day, t time.Time) int {
	if t.Equal(nextDay(day)) {
		return minutesPerDay
	}
	y, m, d := day.Date()
	ty, tm, td := t.Date()
	if ty != y || tm != m || td != d {
		return minutesPerDay + 1
	}
	return t.Hour()*60 + t.Minute()
}
