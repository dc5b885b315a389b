package utils

import (
	"strconv"
	"strings"
)

func trimZero(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

func formatInt(v float64) string {
	return strconv.FormatInt(int64(v), 10)
}
