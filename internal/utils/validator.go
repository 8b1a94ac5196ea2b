package utils

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	UsernameMinLen   = 3
	UsernameMaxLen   = 24
	PasswordMaxBytes = 72
	PresetMaxLen     = 500

	// PresetMaxEncodedLen 预设文本编码进链接后的字节上限，保证二维码在纠错等级 M 下仍能容纳
	PresetMaxEncodedLen = 1800
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{3,24}$`)
	phonePattern    = regexp.MustCompile(`^\+[1-9][0-9]{8,14}$`)
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	usernameInvalid = regexp.MustCompile(`[^A-Za-z0-9_-]+`)
)

// ValidateUsername 用户名为 3-24 位英文字母、数字、下划线或连字符
func ValidateUsername(username string) (bool, string) {
	if !usernamePattern.MatchString(username) {
		return false, "Username must be 3-24 characters: letters, digits, '_' or '-'"
	}
	return true, ""
}

// ValidatePassword bcrypt 只处理前 72 字节，超出部分直接拒绝
func ValidatePassword(password string) (bool, string) {
	if password == "" {
		return false, "Password is required"
	}
	if len(password) > PasswordMaxBytes {
		return false, "Password must be at most 72 bytes"
	}
	return true, ""
}

// ValidatePhoneE164 校验 E.164 格式手机号，例如 +77001234567
func ValidatePhoneE164(phone string) (bool, string) {
	if !phonePattern.MatchString(phone) {
		return false, "Phone must be in E.164 format, e.g. +77001234567"
	}
	return true, ""
}

// ValidatePreset 同时限制字符数与编码后的长度，非 ASCII 文本编码后会膨胀数倍
func ValidatePreset(preset string) (bool, string) {
	if utf8.RuneCountInString(preset) > PresetMaxLen {
		return false, "Preset message must be at most 500 characters"
	}
	if EncodedQueryLen(preset) > PresetMaxEncodedLen {
		return false, "Preset message is too long to fit in a QR code"
	}
	return true, ""
}

// EncodedQueryLen 按链接中的编码方式（空格为 %20）计算长度
func EncodedQueryLen(text string) int {
	escaped := url.QueryEscape(text)
	return len(escaped) + 2*strings.Count(escaped, "+")
}

func ValidateEmail(email string) (bool, string) {
	if len(email) > 254 || !emailPattern.MatchString(email) {
		return false, "Invalid email address"
	}
	return true, ""
}

// NormalizeUsernameCandidate 把第三方资料中的名字整理成合法用户名候选
// 非法字符替换为下划线，过短时补齐，预留后缀空间截断到 20 位
func NormalizeUsernameCandidate(raw string) string {
	s := usernameInvalid.ReplaceAllString(strings.TrimSpace(raw), "_")
	s = strings.Trim(s, "_")
	if len(s) > UsernameMaxLen-4 {
		s = s[:UsernameMaxLen-4]
	}
	if s == "" {
		return "user"
	}
	for len(s) < UsernameMinLen {
		s += "_"
	}
	return s
}
