package utils

import (
	"fmt"
	"time"
)

func (m *Mailer) SendGroupInviteEmail(to, groupName, description string) error {
	subject := fmt.Sprintf("You're invited to join '%s' on PromptPad", groupName)

	body := fmt.Sprintf(`
	<html>
	<body style="font-family: 'Segoe UI', Roboto, Arial, sans-serif; color: #333;">
		<div style="max-width: 480px; margin: 25px auto; border: 1px solid #e5e5e5; border-radius: 12px; overflow: hidden;">
			<div style="background-color: #1f3a5f; color: #ffffff; text-align: center; padding: 18px;">
				<h1 style="margin: 0; font-size: 18px;">You're Invited!</h1>
			</div>
			<div style="padding: 20px;">
				<p>Hello there,</p>
				<p>You've been invited to join the group <b>%s</b> on <b>PromptPad</b> —
				a shared workspace for collecting, organizing and sharing prompts with your team.</p>
				<div style="background: #f6f9fc; border-radius: 8px; padding: 12px 14px; margin: 16px 0;">
					<h3 style="margin: 0; color: #1f3a5f;">%s</h3>
					<p style="margin-top: 4px; font-size: 12px; color: #555;">%s</p>
				</div>
				<p style="font-size: 13px;">Sign in to PromptPad and open your pending invites to accept or decline.</p>
			</div>
			<div style="background: #f0f4f8; text-align: center; padding: 14px; font-size: 12px; color: #777;">
				&copy; %d <span style="color: #1f3a5f; font-weight: bold;">PromptPad</span>
			</div>
		</div>
	</body>
	</html>
	`, groupName, groupName, description, time.Now().Year())

	return m.SendEmail(to, subject, body)
}
