package qgate

import "strconv"

func itoa[T ~int | ~uint64](n T) string {
	return strconv.FormatInt(int64(n), 10)
}
