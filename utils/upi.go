package utils

import (
	"net/url"
	"strconv"

	qrcode "github.com/skip2/go-qrcode"
)

// BuildUPIURI formats a upi://pay payment URI. A zero amount means "let
// the payer type it in" and is omitted from the URI rather than encoded
// as 0.
func BuildUPIURI(payeeID, payeeName, note string, amount float64) string {
	uri := "upi://pay?pa=" + payeeID +
		"&pn=" + url.QueryEscape(payeeName) +
		"&cu=INR" +
		"&tn=" + url.QueryEscape(note)
	if amount > 0 {
		uri += "&am=" + strconv.FormatFloat(amount, 'f', 2, 64)
	}
	return uri
}

// GenerateQRCode encodes content as a PNG of size x size pixels.
func GenerateQRCode(content string, size int) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, size)
}
