// Package service
package service

import (
	"html/template"

	"github.com/open-hangar/aeroledger/internal/interfaces/operation"
)

type EmailServiceInterface interface {
	RenderTemplate(template *template.Template, data interface{}) (string, error)
	SendMaintenanceReminderEmail(aircraft *operation.Aircraft, items []*operation.MaintenanceItem) error
	SendOrderDeliveredEmail(aircraft *operation.Aircraft, order *operation.PartOrder) error
}
