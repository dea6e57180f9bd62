// Package deeplink builds the outbound WhatsApp link offered on the accepted
// page.
package deeplink

import (
	"net/url"
	"strings"
)

const (
	baseURL = "https://wa.me/"

	// Recipient is the WhatsApp number the news is sent to.
	Recipient = "6285810222179"
	// Message is the pre-filled chat text.
	Message = "Anis said YES"
	// Label is the visible link text.
	Label = "Tell Ari 💬"
	// AriaLabel describes the link for assistive technology.
	AriaLabel = "Tell Ari on WhatsApp"
)

// WhatsApp returns the wa.me link that opens a chat with recipient and text
// pre-filled.
func WhatsApp(recipient, text string) string {
	return baseURL + recipient + "?text=" + encodeComponent(text)
}

// Default is the link for the fixed recipient and message.
func Default() string {
	return WhatsApp(Recipient, Message)
}

// encodeComponent percent-encodes s the way browsers' encodeURIComponent
// does: spaces become %20 and !'()* are left alone.
func encodeComponent(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	return strings.NewReplacer(
		"%21", "!",
		"%27", "'",
		"%28", "(",
		"%29", ")",
		"%2A", "*",
	).Replace(escaped)
}
