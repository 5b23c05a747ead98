package main

import (
	"cmp"
	"fmt"
	"time"
)

// compareValues orders decoded TOML values: numbers, then strings, then
// datetimes, then anything else by its printed form.
func compareValues(a, b any) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	switch ra {
	case 0:
		return cmp.Compare(number(a), number(b))
	case 1:
		return cmp.Compare(a.(string), b.(string))
	case 2:
		return a.(time.Time).Compare(b.(time.Time))
	default:
		return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}

func rank(v any) int {
	switch v.(type) {
	case int64, float64:
		return 0
	case string:
		return 1
	case time.Time:
		return 2
	default:
		return 3
	}
}

func number(v any) float64 {
	switch v := v.(type) {
	case int64:
		return float64(v)
	case float64:
		return v
	default:
		return 0
	}
}
