/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package notify posts operator messages to a Discord channel webhook.
package notify

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Notifier sends messages to a single webhook. A nil *Notifier is valid and
// discards messages.
type Notifier struct {
	appName   string
	webhookID string
	token     string
	session   *discordgo.Session
}

// New returns a Notifier for webhookURL, which must have the form
// https://discord.com/api/webhooks/<id>/<token>. An empty URL returns a nil
// Notifier and no error.
func New(webhookURL string, appName string) (*Notifier, error) {
	if webhookURL == "" {
		return nil, nil
	}
	id, token, err := parseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("notify.new: failed to initialize discord client: %w",
			err)
	}

	return &Notifier{
		appName:   appName,
		webhookID: id,
		token:     token,
		session:   session,
	}, nil
}

func (n *Notifier) Enabled() bool {
	return n != nil
}

// Notify posts "[appName] msg" to the webhook.
func (n *Notifier) Notify(msg string) error {
	if n == nil {
		log.Printf("notify: no webhook configured; dropping: %v", msg)
		return nil
	}

	content := truncateContent(fmt.Sprintf("[%v] %v", n.appName, msg))
	_, err := n.session.WebhookExecute(n.webhookID, n.token, false,
		&discordgo.WebhookParams{Content: content})
	if err != nil {
		return fmt.Errorf("notify: webhook execute failed: %w", err)
	}
	return nil
}

// Notifyf is Notify with fmt.Sprintf formatting. Failures are logged rather
// than returned.
func (n *Notifier) Notifyf(format string, args ...any) {
	err := n.Notify(fmt.Sprintf(format, args...))
	if err != nil {
		log.Printf("notify: %v", err)
	}
}

func parseWebhookURL(raw string) (string, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("notify: bad webhook url: %w", err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return "", "", fmt.Errorf("notify: bad webhook url scheme %q", u.Scheme)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := 0; i+2 < len(parts); i++ {
		if parts[i] != "webhooks" {
			continue
		}
		id, token := parts[i+1], parts[i+2]
		if id == "" || token == "" {
			break
		}
		return id, token, nil
	}

	return "", "", fmt.Errorf("notify: webhook url %q lacks /webhooks/<id>/<token>",
		raw)
}

// discord limits messages to 2k characters
func truncateContent(s string) string {
	const MsgLimit = 1988 // keep space for the ellipsis
	runes := []rune(s)
	if len(runes) > MsgLimit {
		s = fmt.Sprintf("%v...", string(runes[:MsgLimit]))
	}
	return s
}
