package util

import (
	"strconv"
	"strings"
)

// ToCount 将存储返回的原始值转换为非负整数，无法解析或为负时取 0
//
// 计数字段在首次自增前不存在，读到空串同样按 0 处理
func ToCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
