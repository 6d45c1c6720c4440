package paymentqr

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"strings"

	"github.com/skip2/go-qrcode"
)

var ErrEmptyContent = errors.New("paymentqr: empty content")

// DefaultSize размер PNG в пикселях
const DefaultSize = 256

// Transfer данные банковского перевода для QR-кода
type Transfer struct {
	BankName      string
	AccountNumber string
	AccountName   string
	Amount        int64 // сумма в целых единицах валюты
	Memo          string
}

// Content текстовое содержимое QR-кода.
// Формат: BANK|ACCOUNT|NAME|AMOUNT|MEMO, банковские приложения показывают его как есть.
func (t Transfer) Content() string {
	return strings.Join([]string{
		t.BankName,
		t.AccountNumber,
		t.AccountName,
		fmt.Sprintf("%d", t.Amount),
		t.Memo,
	}, "|")
}

// Generate кодирует content в PNG
func Generate(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = DefaultSize
	}

	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("paymentqr: encode: %w", err)
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, qr.Image(size)); err != nil {
		return nil, fmt.Errorf("paymentqr: png: %w", err)
	}

	return buf.Bytes(), nil
}
