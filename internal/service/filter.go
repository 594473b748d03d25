package service

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var placeholderPattern = regexp.MustCompile(`\{:(\w+)\}`)

// filterTimeLayout is the datetime format the store uses in filters.
const filterTimeLayout = "2006-01-02 15:04:05.000Z"

// Filter substitutes {:name} placeholders in expr with safely quoted
// params, e.g.
//
//	Filter("title ~ {:q} && status != {:s}", map[string]any{"q": "it's", "s": "archived"})
//	// title ~ 'it\'s' && status != 'archived'
//
// Strings are single-quoted with quotes escaped; numbers and bools are
// written as is; nil becomes null; time.Time becomes a quoted UTC datetime.
// Other values are JSON-encoded and quoted. Placeholders without a param
// are left untouched.
func Filter(expr string, params map[string]any) string {
	if len(params) == 0 {
		return expr
	}

	return placeholderPattern.ReplaceAllStringFunc(expr, func(match string) string {
		name := match[2 : len(match)-1]
		value, ok := params[name]
		if !ok {
			return match
		}
		return filterLiteral(value)
	})
}

func filterLiteral(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return quoteFilterString(v)
	case bool:
		return strconv.FormatBool(v)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(v)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return quoteFilterString(v.UTC().Format(filterTimeLayout))
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return quoteFilterString(fmt.Sprint(v))
		}
		return quoteFilterString(string(b))
	}
}

func quoteFilterString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}
