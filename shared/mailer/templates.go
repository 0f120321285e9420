package mailer

import (
	"fmt"
	"time"
)

const templateWrapper = `
<!DOCTYPE html>
<html>
<body style="font-family: serif; background-color: #FBFAF8; margin: 0; padding: 40px 0;">
	<table style="background-color: #ffffff; margin: 0 auto; max-width: 600px; border: 1px solid #E6E1DC;">
		<tr>
			<td style="padding: 40px 20px; text-align: center; background-color: #2C2C2C;">
				<span style="font-size: 28px; color: #ffffff; letter-spacing: 2px; text-transform: uppercase;">Nuraya</span>
			</td>
		</tr>
		<tr>
			<td style="padding: 40px 30px; color: #2C2C2C; line-height: 1.8; font-size: 16px;">
				%s
			</td>
		</tr>
		<tr>
			<td style="padding: 30px; text-align: center; font-size: 12px; color: #8E8E8E;">
				&copy; %d Nuraya. All rights reserved.
			</td>
		</tr>
	</table>
</body>
</html>
`

func wrap(content string) string {
	return fmt.Sprintf(templateWrapper, content, time.Now().Year())
}

// VerificationEmail is the account-verification message carrying the 6-digit
// code emailed on registration.
func VerificationEmail(name, code string) string {
	return wrap(fmt.Sprintf(`
		<h2>Welcome, %s</h2>
		<p>Thank you for creating an account. Use the code below to verify your email address:</p>
		<p style="font-size: 28px; letter-spacing: 6px;"><strong>%s</strong></p>
		<p>The code expires in 24 hours. If you did not create an account, you can safely ignore this email.</p>
	`, name, code))
}

// PasswordResetEmail carries the reset link for a forgotten password.
func PasswordResetEmail(name, resetURL string) string {
	return wrap(fmt.Sprintf(`
		<h2>Hi %s,</h2>
		<p>We received a request to reset the password for your account.</p>
		<p>If you made this request, click the link below to choose a new password:</p>
		<p><a href="%s">%s</a></p>
		<p>This link expires in 10 minutes. If you did not request a password reset, your account remains secure.</p>
	`, name, resetURL, resetURL))
}

// BirthdayEmail is the yearly greeting sent by the birthday worker.
func BirthdayEmail(name string) string {
	return wrap(fmt.Sprintf(`
		<h2>Happy birthday, %s!</h2>
		<p>The whole team wishes you a wonderful day.</p>
		<p>Treat yourself: an exceptional timepiece is waiting for you in our collection.</p>
	`, name))
}

// ContactEmail relays a contact-form submission to the shop inbox.
func ContactEmail(name, email, subject, message string) string {
	return wrap(fmt.Sprintf(`
		<h2>New contact message</h2>
		<p><strong>From:</strong> %s &lt;%s&gt;</p>
		<p><strong>Subject:</strong> %s</p>
		<hr>
		<p>%s</p>
	`, name, email, subject, message))
}
