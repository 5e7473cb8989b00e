package utils

import (
	"fmt"
	"strconv"
	"time"
)

// ToString converts a scanned database value to its field representation
// using explicit type switching. Floats render without exponent notation and
// timestamps in a parseable calendar form, so the values survive the trip
// through key normalization and amount/date parsing.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case bool:
		if v {
			return "1"
		}
		return "0"
	case time.Time:
		return v.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprintf("%v", v)
	}
}
