// Package whatsapp собирает ссылки wa.me для передачи текста заказа
package whatsapp

import (
	"net/url"
	"strings"
)

// LinkBuilder собирает ссылки на чат WhatsApp с предзаполненным текстом
type LinkBuilder struct {
	baseURL   string
	recipient string
}

// NewLinkBuilder создает билдер ссылок для заданного получателя
func NewLinkBuilder(baseURL, recipient string) *LinkBuilder {
	return &LinkBuilder{
		baseURL:   strings.TrimRight(baseURL, "/"),
		recipient: recipient,
	}
}

// BookingLink возвращает URL чата с предзаполненным текстом заказа
// Пробелы кодируются как %20, а не +, иначе клиент WhatsApp
// показывает плюсы как текст
func (b *LinkBuilder) BookingLink(text string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return b.baseURL + "/" + b.recipient + "?text=" + encoded
}
