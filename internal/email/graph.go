package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"wholesale_portal_backend/platform/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	graphBaseURL  = "https://graph.microsoft.com/v1.0"
	graphScope    = "https://graph.microsoft.com/.default"
	graphTokenFmt = "https://login.microsoftonline.com/%s/oauth2/v2.0/token"
)

// GraphSender delivers mail through Microsoft Graph from a fixed mailbox
// identity. Tokens are minted and refreshed by the client-credentials token
// source; the sender itself never touches raw credentials after construction.
type GraphSender struct {
	senderAddress string
	tokenSource   oauth2.TokenSource
	httpClient    *http.Client
}

// NewGraphSender creates a Graph sender for the configured tenant.
func NewGraphSender(cfg config.MailConfig) *GraphSender {
	creds := &clientcredentials.Config{
		ClientID:     cfg.GetMailClientID(),
		ClientSecret: cfg.GetMailClientSecret(),
		TokenURL:     fmt.Sprintf(graphTokenFmt, cfg.GetMailTenantID()),
		Scopes:       []string{graphScope},
	}

	return &GraphSender{
		senderAddress: cfg.GetMailSenderAddress(),
		tokenSource:   creds.TokenSource(context.Background()),
		httpClient:    &http.Client{Timeout: 10 * time.Second},
	}
}

type graphEmailAddress struct {
	Address string `json:"address"`
}

type graphRecipient struct {
	EmailAddress graphEmailAddress `json:"emailAddress"`
}

type graphMessageBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type graphMessage struct {
	Subject      string           `json:"subject"`
	Body         graphMessageBody `json:"body"`
	ToRecipients []graphRecipient `json:"toRecipients"`
}

type graphSendRequest struct {
	Message         graphMessage `json:"message"`
	SaveToSentItems bool         `json:"saveToSentItems"`
}

func (g *GraphSender) send(ctx context.Context, to []string, subject, htmlContent string) error {
	recipients := make([]graphRecipient, 0, len(to))
	for _, addr := range to {
		recipients = append(recipients, graphRecipient{EmailAddress: graphEmailAddress{Address: addr}})
	}

	payload := graphSendRequest{
		Message: graphMessage{
			Subject:      subject,
			Body:         graphMessageBody{ContentType: "HTML", Content: htmlContent},
			ToRecipients: recipients,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("graph: encode message: %w", err)
	}

	token, err := g.tokenSource.Token()
	if err != nil {
		return fmt.Errorf("graph: acquire token: %w", err)
	}

	endpoint := fmt.Sprintf("%s/users/%s/sendMail", graphBaseURL, url.PathEscape(g.senderAddress))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("graph: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	token.SetAuthHeader(req)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("graph: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("graph: sendMail responded %d: %s", resp.StatusCode, raw)
	}

	return nil
}

func (g *GraphSender) SendActivationEmail(ctx context.Context, toEmail, firstName, activationURL string) error {
	content, err := renderEmailTemplate("activation.html", activationEmailData{
		baseEmailData: baseEmailData{
			Title:    "Activate your account",
			Heading:  "Welcome aboard",
			CTALabel: "Activate account",
			CTAURL:   activationURL,
		},
		FirstName: firstName,
	})
	if err != nil {
		return err
	}
	return g.send(ctx, []string{toEmail}, subjectActivation, content)
}

func (g *GraphSender) SendRegistrationNotice(ctx context.Context, to []string, companyName, contactName, contactEmail string) error {
	content, err := renderEmailTemplate("registration_notice.html", registrationNoticeData{
		baseEmailData: baseEmailData{
			Title:   "New wholesale registration",
			Heading: "New wholesale registration",
		},
		CompanyName:  companyName,
		ContactName:  contactName,
		ContactEmail: contactEmail,
	})
	if err != nil {
		return err
	}
	return g.send(ctx, to, fmt.Sprintf(subjectRegistrationNoticeFmt, companyName), content)
}

func (g *GraphSender) SendTaxFormNotice(ctx context.Context, to []string, companyName, customerID string) error {
	content, err := renderEmailTemplate("tax_form_notice.html", taxFormNoticeData{
		baseEmailData: baseEmailData{
			Title:   "Tax exempt form uploaded",
			Heading: "Tax exempt form uploaded",
		},
		CompanyName: companyName,
		CustomerID:  customerID,
	})
	if err != nil {
		return err
	}
	return g.send(ctx, to, fmt.Sprintf(subjectTaxFormNoticeFmt, companyName), content)
}

var _ Sender = (*GraphSender)(nil)
