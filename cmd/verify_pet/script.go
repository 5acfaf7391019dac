package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// ScriptStep 脚本中的一步：在虚拟时间 At 执行 Op
type ScriptStep struct {
	At time.Duration
	Op string
}

// scriptOps 脚本支持的操作
var scriptOps = []string{"click", "dblclick", "drag", "pet", "feed", "play", "scare", "resize"}

// ParseScript 解析脚本，格式为逗号分隔的 "<毫秒>:<操作>"
// 例如 "1000:click,1200:dblclick,5000:feed"，结果按时间排序（同一时间保持原有顺序）
func ParseScript(s string) ([]ScriptStep, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var steps []ScriptStep
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		at, op, ok := strings.Cut(item, ":")
		if !ok {
			return nil, fmt.Errorf("invalid script step %q: expected <ms>:<op>", item)
		}
		ms, err := strconv.Atoi(strings.TrimSpace(at))
		if err != nil || ms < 0 {
			return nil, fmt.Errorf("invalid time in script step %q", item)
		}
		op = strings.ToLower(strings.TrimSpace(op))
		if !slices.Contains(scriptOps, op) {
			return nil, fmt.Errorf("unknown operation %q (supported: %s)", op, strings.Join(scriptOps, ", "))
		}
		steps = append(steps, ScriptStep{At: time.Duration(ms) * time.Millisecond, Op: op})
	}

	slices.SortStableFunc(steps, func(a, b ScriptStep) int {
		switch {
		case a.At < b.At:
			return -1
		case a.At > b.At:
			return 1
		default:
			return 0
		}
	})
	return steps, nil
}
