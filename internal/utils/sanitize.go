package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ProfileFieldMaxLen 单个资料字段的最大长度，超出的字段直接丢弃
const ProfileFieldMaxLen = 500

// ProfileFields 允许从第三方资料中保留的字段
var ProfileFields = []string{"id", "email", "name", "login", "picture", "avatar_url"}

var angleEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// SanitizeProfile 只保留白名单字段并转义尖括号，其余字段一律丢弃
func SanitizeProfile(raw map[string]any) map[string]string {
	out := make(map[string]string, len(ProfileFields))
	for _, key := range ProfileFields {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		s, ok := stringifyProfileValue(v)
		if !ok {
			continue
		}
		if s, ok = SanitizeProfileValue(s); ok {
			out[key] = s
		}
	}
	return out
}

// SanitizeProfileValue 对单个字段做长度限制与尖括号转义，超长返回 false
func SanitizeProfileValue(s string) (string, bool) {
	if utf8.RuneCountInString(s) > ProfileFieldMaxLen {
		return "", false
	}
	return angleEscaper.Replace(s), true
}

func stringifyProfileValue(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case json.Number:
		return val.String(), true
	case bool:
		return strconv.FormatBool(val), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case map[string]any, []any:
		// 嵌套结构不保留
		return "", false
	default:
		return fmt.Sprint(val), true
	}
}
