package service

import (
	"bytes"
	"errors"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

const (
	DefaultQRSize = 320
	MinQRSize     = 128
	MaxQRSize     = 1024
)

// RenderQR 将链接编码为 PNG 二维码，纠错等级 M，容量不足时降为 L
func RenderQR(link string, size int) ([]byte, error) {
	if link == "" {
		return nil, errors.New("qr: empty content")
	}
	if size < MinQRSize || size > MaxQRSize {
		size = DefaultQRSize
	}

	code, err := qr.Encode(link, qr.M, qr.Auto)
	if err != nil {
		if code, err = qr.Encode(link, qr.L, qr.Auto); err != nil {
			return nil, err
		}
	}
	// 模块数超过目标尺寸时无法缩放
	if w := code.Bounds().Dx(); size < w {
		size = w
	}
	scaled, err := barcode.Scale(code, size, size)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
