package utils

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// MonthKey formats t as "M/YYYY" without a leading zero on the month.
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Year())
}

// ParseMonthKey is the inverse of MonthKey.
func ParseMonthKey(key string) (month, year int, err error) {
	parts := strings.SplitN(key, "/", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid month key %q", key)
	}
	month, err = strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month in key %q", key)
	}
	year, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year in key %q", key)
	}
	return month, year, nil
}

// SortMonthKeys orders keys chronologically. Keys that do not parse are
// placed last in lexical order.
func SortMonthKeys(keys []string) {
	sort.SliceStable(keys, func(i, j int) bool {
		mi, yi, erri := ParseMonthKey(keys[i])
		mj, yj, errj := ParseMonthKey(keys[j])
		switch {
		case erri != nil && errj != nil:
			return keys[i] < keys[j]
		case erri != nil:
			return false
		case errj != nil:
			return true
		case yi != yj:
			return yi < yj
		default:
			return mi < mj
		}
	})
}
