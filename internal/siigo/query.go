package siigo

import (
	"fmt"
	"net/url"
	"siigosync/lib/clock"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// EncodeQuery renders scalar query parameters sorted by key, with spaces
// encoded as '+'. Nil values are skipped.
func EncodeQuery(query map[string]any) string {
	values := url.Values{}
	for key, v := range query {
		if v == nil {
			continue
		}
		values.Set(key, scalar(v))
	}
	return values.Encode()
}

func scalar(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case decimal.Decimal:
		return x.String()
	case time.Time:
		return clock.Date(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// withQuery appends the encoded query to path, leaving path untouched when there is nothing to add
func withQuery(path string, query map[string]any) string {
	q := EncodeQuery(query)
	if q == "" {
		return path
	}
	return path + "?" + q
}
