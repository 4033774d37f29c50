package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
)

// ResendEmailSender delivers transactional mail through the Resend API.
type ResendEmailSender struct {
	client     *resend.Client
	from       string
	appBaseURL string
}

func NewResendEmailSender(apiKey, from, appBaseURL string) *ResendEmailSender {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(from) == "" {
		return &ResendEmailSender{}
	}
	return &ResendEmailSender{
		client:     resend.NewClient(apiKey),
		from:       from,
		appBaseURL: strings.TrimRight(appBaseURL, "/"),
	}
}

func (s *ResendEmailSender) SendWelcomeEmail(ctx context.Context, email, fullName string) error {
	name := displayName(fullName)
	subject := "Welcome to Lofi Night"
	html := fmt.Sprintf("<p>Hi %s,</p><p>Your account is ready. Put something on and relax.</p>", name)
	text := fmt.Sprintf("Hi %s, your Lofi Night account is ready.", name)
	return s.send(ctx, email, subject, html, text)
}

func (s *ResendEmailSender) SendOTPEmail(ctx context.Context, email, otp, fullName string) error {
	name := displayName(fullName)
	subject := "Your verification code"
	html := fmt.Sprintf("<p>Hi %s,</p><p>Your verification code is <strong>%s</strong>. It expires in 5 minutes.</p>", name, otp)
	text := fmt.Sprintf("Hi %s, your verification code is %s. It expires in 5 minutes.", name, otp)
	return s.send(ctx, email, subject, html, text)
}

func (s *ResendEmailSender) SendPasswordResetEmail(ctx context.Context, email, token, fullName string) error {
	name := displayName(fullName)
	link := fmt.Sprintf("%s/reset-password?token=%s", s.appBaseURL, token)
	subject := "Reset your password"
	html := fmt.Sprintf("<p>Hi %s,</p><p><a href=\"%s\">Reset your password</a>. The link expires in 1 hour.</p>", name, link)
	text := fmt.Sprintf("Hi %s, reset your password: %s (expires in 1 hour)", name, link)
	return s.send(ctx, email, subject, html, text)
}

func (s *ResendEmailSender) send(ctx context.Context, to, subject, html, text string) error {
	if s.client == nil {
		return errors.New("email sender not configured")
	}
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
		Text:    text,
	}
	_, err := s.client.Emails.Send(params)
	return err
}

func displayName(fullName string) string {
	if strings.TrimSpace(fullName) == "" {
		return "there"
	}
	return fullName
}
