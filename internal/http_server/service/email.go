// Package service
package service

import (
	"errors"
	"html/template"
	"strings"
	"sync"

	"github.com/open-hangar/aeroledger/internal/interfaces/config"
	"github.com/open-hangar/aeroledger/internal/interfaces/log"
	"github.com/open-hangar/aeroledger/internal/interfaces/operation"
	"gopkg.in/gomail.v2"
)

var (
	emailService *EmailService
	once         sync.Once
)

type EmailService struct {
	logger log.LoggerInterface
	config *config.EmailConfig
}

type EmailMaintenanceReminderData struct {
	Registration string
	MakeModel    string
	Items        []*operation.MaintenanceItem
}

type EmailOrderDeliveredData struct {
	Registration string
	PartName     string
	PartNumber   string
	Tracking     string
}

var maintenanceReminderTemplate = template.Must(template.New("maintenance_reminder").Parse(`
<h3>维修提醒 - {{.Registration}} ({{.MakeModel}})</h3>
<p>以下维修项目已到期或临近到期, 请尽快安排:</p>
<ul>
{{range .Items}}<li>{{.ItemName}} ({{.PartNumber}}) - 预计费用 ${{.EstimatedCost}}, 到期日 {{.NextDue}}</li>
{{end}}</ul>
`))

var orderDeliveredTemplate = template.Must(template.New("order_delivered").Parse(`
<h3>零件订单已送达 - {{.Registration}}</h3>
<p>{{.PartName}} ({{.PartNumber}}) 已送达, 物流单号 {{.Tracking}}</p>
`))

func NewEmailService(logger log.LoggerInterface, config *config.EmailConfig) *EmailService {
	once.Do(func() {
		emailService = &EmailService{
			logger: logger,
			config: config,
		}
	})
	return emailService
}

var (
	ErrRenderingTemplate      = errors.New("error rendering template")
	ErrTemplateNotInitialized = errors.New("error template not initialized")
)

func (emailService *EmailService) RenderTemplate(template *template.Template, data interface{}) (string, error) {
	if template == nil {
		return "", ErrTemplateNotInitialized
	}
	var sb strings.Builder
	if err := template.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (emailService *EmailService) sendHtmlMail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", emailService.config.Sender)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)
	return emailService.config.EmailServer.DialAndSend(m)
}

func (emailService *EmailService) SendMaintenanceReminderEmail(aircraft *operation.Aircraft, items []*operation.MaintenanceItem) error {
	if emailService.config.EmailServer == nil {
		return nil
	}
	email := strings.ToLower(aircraft.OwnerEmail)
	message, err := emailService.RenderTemplate(maintenanceReminderTemplate, &EmailMaintenanceReminderData{
		Registration: aircraft.Registration,
		MakeModel:    aircraft.MakeModel,
		Items:        items,
	})
	if err != nil {
		emailService.logger.WarnF("Error rendering maintenance reminder template: %v", err)
		return ErrRenderingTemplate
	}

	emailService.logger.InfoF("Sending maintenance reminder for %s to %s", aircraft.Registration, email)

	return emailService.sendHtmlMail(email, "维修到期提醒", message)
}

func (emailService *EmailService) SendOrderDeliveredEmail(aircraft *operation.Aircraft, order *operation.PartOrder) error {
	if emailService.config.EmailServer == nil {
		return nil
	}
	email := strings.ToLower(aircraft.OwnerEmail)
	message, err := emailService.RenderTemplate(orderDeliveredTemplate, &EmailOrderDeliveredData{
		Registration: aircraft.Registration,
		PartName:     order.PartName,
		PartNumber:   order.PartNumber,
		Tracking:     order.TrackingNumber,
	})
	if err != nil {
		emailService.logger.WarnF("Error rendering order delivered template: %v", err)
		return ErrRenderingTemplate
	}

	emailService.logger.InfoF("Sending order delivered email for %s to %s", order.ID, email)

	return emailService.sendHtmlMail(email, "零件订单送达通知", message)
}
