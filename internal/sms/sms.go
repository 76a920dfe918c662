// Package sms delivers one-time codes to company contacts over an HTTP SMS
// gateway. Delivery is best effort; callers treat failures as non-fatal.
package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/michaeltheo/placements-backend/config"
)

const (
	maxAttempts   = 3
	retryInterval = 2 * time.Second
)

// Sender sends SMS messages through the configured gateway.
type Sender struct {
	cfg    *config.SMSConfig
	client *http.Client
	logger *zap.Logger
}

// NewSender creates an SMS sender.
func NewSender(cfg *config.SMSConfig, logger *zap.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

type gatewayRequest struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Message string `json:"message"`
}

// Send delivers a message, retrying transient failures.
func (s *Sender) Send(ctx context.Context, phone, message string) error {
	if !s.cfg.Enabled {
		s.logger.Debug("sms disabled, skipping send", zap.String("to", phone))
		return nil
	}

	to := FormatPhoneNumber(phone)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := s.send(ctx, to, message); err != nil {
			lastErr = err
			s.logger.Warn("sms send failed",
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryInterval):
			}
			continue
		}
		return nil
	}

	return fmt.Errorf("sending sms after %d attempts: %w", maxAttempts, lastErr)
}

func (s *Sender) send(ctx context.Context, to, message string) error {
	body, err := json.Marshal(gatewayRequest{
		To:      to,
		From:    s.cfg.From,
		Message: message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.GatewayURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}
	return nil
}

// FormatPhoneNumber normalizes a Greek phone number to international form.
func FormatPhoneNumber(phone string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '+' {
			return r
		}
		return -1
	}, phone)

	if strings.HasPrefix(cleaned, "+") {
		return cleaned
	}
	if strings.HasPrefix(cleaned, "30") && len(cleaned) == 12 {
		return "+" + cleaned
	}
	return "+30" + cleaned
}
