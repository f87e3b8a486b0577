package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// ContractConfirmation carries the data rendered into the confirmation email
type ContractConfirmation struct {
	CustomerName string
	Reference    string
	Vehicle      string
	FinalPrice   string
	DeliveryDays int
}

// SendContractConfirmation notifies a customer that their quote was converted
// into a purchase contract
func (s *EmailService) SendContractConfirmation(toEmail string, data ContractConfirmation) error {
	htmlContent, err := s.renderContractConfirmation(data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("Your Purchase Contract %s", data.Reference)
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)

	return s.sendEmail(toEmail, message)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// buildHTMLEmail builds an HTML email message
func (s *EmailService) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		to,
		subject,
	)

	return []byte(headers + htmlBody)
}

// renderContractConfirmation renders the contract confirmation email template
func (s *EmailService) renderContractConfirmation(data ContractConfirmation) (string, error) {
	tmpl, err := template.New("contract_confirmation").Parse(contractConfirmationTemplate)
	if err != nil {
		return "", err
	}

	payload := struct {
		ContractConfirmation
		AppName string
	}{
		ContractConfirmation: data,
		AppName:              s.config.FromName,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, payload); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// contractConfirmationTemplate is the HTML template for contract confirmation emails
const contractConfirmationTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Purchase Contract Confirmation</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="width: 100%; border-collapse: collapse;">
        <tr>
            <td style="padding: 40px 0;">
                <table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);">
                    <!-- Header -->
                    <tr>
                        <td style="background: linear-gradient(135deg, #1e3a5f 0%, #2c5f8a 100%); padding: 40px 30px; text-align: center;">
                            <h1 style="color: #ffffff; margin: 0; font-size: 28px; font-weight: 600;">{{.AppName}}</h1>
                        </td>
                    </tr>

                    <!-- Content -->
                    <tr>
                        <td style="padding: 40px 30px;">
                            <h2 style="color: #1a1a2e; margin: 0 0 20px 0; font-size: 24px; font-weight: 600;">Your Contract Is Confirmed</h2>

                            <p style="color: #4a5568; font-size: 16px; line-height: 1.6; margin: 0 0 20px 0;">
                                Hello {{.CustomerName}},
                            </p>

                            <p style="color: #4a5568; font-size: 16px; line-height: 1.6; margin: 0 0 20px 0;">
                                Thank you for your purchase. Your quote has been converted into purchase contract <strong>{{.Reference}}</strong>.
                            </p>

                            <table role="presentation" style="width: 100%; border-collapse: collapse; margin: 0 0 30px 0;">
                                <tr>
                                    <td style="padding: 12px; border-bottom: 1px solid #e2e8f0; color: #718096; font-size: 14px;">Vehicle</td>
                                    <td style="padding: 12px; border-bottom: 1px solid #e2e8f0; color: #1a1a2e; font-size: 14px; text-align: right;"><strong>{{.Vehicle}}</strong></td>
                                </tr>
                                <tr>
                                    <td style="padding: 12px; border-bottom: 1px solid #e2e8f0; color: #718096; font-size: 14px;">Final Price</td>
                                    <td style="padding: 12px; border-bottom: 1px solid #e2e8f0; color: #1a1a2e; font-size: 14px; text-align: right;"><strong>{{.FinalPrice}}</strong></td>
                                </tr>
                                <tr>
                                    <td style="padding: 12px; color: #718096; font-size: 14px;">Expected Delivery</td>
                                    <td style="padding: 12px; color: #1a1a2e; font-size: 14px; text-align: right;"><strong>{{.DeliveryDays}} days</strong></td>
                                </tr>
                            </table>

                            <p style="color: #718096; font-size: 14px; line-height: 1.6; margin: 0;">
                                Your dealer will contact you when the vehicle is ready for collection. If you have any questions, reply to this email.
                            </p>
                        </td>
                    </tr>

                    <!-- Footer -->
                    <tr>
                        <td style="background-color: #f8fafc; padding: 30px; text-align: center; border-top: 1px solid #e2e8f0;">
                            <p style="color: #a0aec0; font-size: 14px; margin: 0 0 10px 0;">
                                This email was sent by {{.AppName}}
                            </p>
                            <p style="color: #cbd5e0; font-size: 12px; margin: 0;">
                                © 2026 {{.AppName}}. All rights reserved.
                            </p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`
