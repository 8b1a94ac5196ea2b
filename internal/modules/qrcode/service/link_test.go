package service

import (
	"net/url"
	"testing"
)

const testPromo = "Sent via ChatCode QR: chatcode.kz"

// 测试内容：验证预设文本与推广文案拼接后按 %20 编码空格。
func TestLinkBuilder_BuildWithPreset(t *testing.T) {
	b := NewLinkBuilder("https://wa.me", testPromo)

	got := b.Build("+77011234567", "Hi")
	want := "https://wa.me/77011234567?text=Hi%0A%0ASent%20via%20ChatCode%20QR%3A%20chatcode.kz"
	if got != want {
		t.Fatalf("期望 %q，实际为 %q", want, got)
	}
	if b.Build("+77011234567", "Hi") != got {
		t.Fatalf("期望相同输入生成相同链接")
	}
}

// 测试内容：验证没有预设文本时只使用推广文案。
func TestLinkBuilder_BuildWithoutPreset(t *testing.T) {
	b := NewLinkBuilder("", testPromo)

	got := b.Build("+14155550100", "   ")
	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("解析链接失败: %v", err)
	}
	if u.Host != "wa.me" || u.Path != "/14155550100" {
		t.Fatalf("链接地址不正确: %s", got)
	}
	if u.Query().Get("text") != testPromo {
		t.Fatalf("期望 text 为推广文案，实际为 %q", u.Query().Get("text"))
	}
}

// 测试内容：验证特殊字符与非 ASCII 文本可以无损往返。
func TestLinkBuilder_EncodesSpecialCharacters(t *testing.T) {
	b := NewLinkBuilder("https://wa.me/", "")

	preset := "Сәлем & hi+there/#1?"
	got := b.Build("+77011234567", preset)
	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("解析链接失败: %v", err)
	}
	if u.Query().Get("text") != preset {
		t.Fatalf("期望 text 往返一致，实际为 %q", u.Query().Get("text"))
	}
	if u.Path != "/77011234567" {
		t.Fatalf("期望去掉多余斜杠，实际为 %q", u.Path)
	}
}

// 测试内容：验证预设文本与推广文案都为空时不带 text 参数。
func TestLinkBuilder_BuildWithoutMessage(t *testing.T) {
	b := NewLinkBuilder("", "")

	got := b.Build("+77011234567", "  ")
	if want := "https://wa.me/77011234567"; got != want {
		t.Fatalf("期望 %q，实际为 %q", want, got)
	}
}
