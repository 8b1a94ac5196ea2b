package service

import (
	"net/url"
	"strings"
)

const DefaultLinkBaseURL = "https://wa.me"

// LinkBuilder 根据手机号与预设文本生成聊天深链
type LinkBuilder struct {
	baseURL string
	promo   string
}

func NewLinkBuilder(baseURL, promo string) *LinkBuilder {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultLinkBaseURL
	}
	return &LinkBuilder{baseURL: baseURL, promo: promo}
}

// Build 生成 <base>/<digits>?text=<message>，空格编码为 %20，消息为空时不带参数
func (b *LinkBuilder) Build(phone, preset string) string {
	digits := strings.TrimPrefix(strings.TrimSpace(phone), "+")
	link := b.baseURL + "/" + digits
	if message := b.Message(preset); message != "" {
		link += "?text=" + encodeText(message)
	}
	return link
}

// Message 预设文本后追加推广文案，没有预设时只有推广文案
func (b *LinkBuilder) Message(preset string) string {
	preset = strings.TrimSpace(preset)
	if preset == "" {
		return b.promo
	}
	if b.promo == "" {
		return preset
	}
	return preset + "\n\n" + b.promo
}

func encodeText(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
