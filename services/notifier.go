package services

import (
	"ondernemercentraal.nl/configs/configslog"
	"ondernemercentraal.nl/models"

	"go.uber.org/zap"
)

// INotifier delivers best-effort messages to the people around a case. A
// failed or skipped notification never fails the business mutation that
// produced it.
type INotifier interface {
	NotifyClient(client *models.Client, subject string, content []string)
	NotifyPartnerOrganization(organization *models.PartnerOrganization, subject string, content []string)
	NotifyUser(user *models.User, subject string, content []string)
}

// Notification is one pending message. Business services collect these while
// mutating inside a transaction and dispatch them only after commit, so a
// rollback never produces mail.
type Notification struct {
	Client              *models.Client
	PartnerOrganization *models.PartnerOrganization
	User                *models.User
	Subject             string
	Content             []string
}

// DispatchNotifications hands every notification to the notifier on its own
// goroutine (fire-and-forget).
func DispatchNotifications(notifier INotifier, notifications []Notification) {
	for _, notification := range notifications {
		go func(n Notification) {
			switch {
			case n.Client != nil:
				notifier.NotifyClient(n.Client, n.Subject, n.Content)
			case n.PartnerOrganization != nil:
				notifier.NotifyPartnerOrganization(n.PartnerOrganization, n.Subject, n.Content)
			case n.User != nil:
				notifier.NotifyUser(n.User, n.Subject, n.Content)
			}
		}(notification)
	}
}

// MailNotifier hands messages to the mail relay. Recipients without a usable
// address are skipped with a warning, matching the relay's own policy.
type MailNotifier struct{}

func NewMailNotifier() INotifier {
	return &MailNotifier{}
}

func (n *MailNotifier) NotifyClient(client *models.Client, subject string, content []string) {
	if !client.EmailConfirmed {
		configslog.SLog.Warnf("Notificatie '%s' niet verzonden aan ondernemer '%s': e-mailadres is niet bevestigd.", subject, client.WrittenName())
		return
	}
	n.send(client.WrittenName(), client.Email, subject, content)
}

func (n *MailNotifier) NotifyPartnerOrganization(organization *models.PartnerOrganization, subject string, content []string) {
	if organization.Email == "" {
		configslog.SLog.Warnf("Notificatie '%s' niet verzonden aan partnerorganisatie '%s': geen e-mailadres bekend.", subject, organization.Name)
		return
	}
	n.send(organization.Name, organization.Email, subject, content)
}

func (n *MailNotifier) NotifyUser(user *models.User, subject string, content []string) {
	if user.Email == "" {
		configslog.SLog.Warnf("Notificatie '%s' niet verzonden aan gebruiker '%s': geen e-mailadres bekend.", subject, user.Name)
		return
	}
	n.send(user.Name, user.Email, subject, content)
}

func (n *MailNotifier) send(name, address, subject string, content []string) {
	configslog.Log.Info("Notificatie overgedragen aan mailrelay",
		zap.String("recipient", name),
		zap.String("address", address),
		zap.String("subject", subject),
		zap.Int("lines", len(content)),
	)
}

var _ INotifier = (*MailNotifier)(nil)
