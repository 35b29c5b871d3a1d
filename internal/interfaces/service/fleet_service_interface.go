// Package service
package service

import (
	"github.com/open-hangar/aeroledger/internal/interfaces/operation"
)

type FleetServiceInterface interface {
	GetAircraft(req *RequestAircraftList) *ApiResponse[ResponseAircraftList]
	GetAircraftById(req *RequestAircraftProfile) *ApiResponse[ResponseAircraftProfile]
	AddAircraft(req *RequestAircraftAdd) *ApiResponse[ResponseAircraftAdd]
	UpdateAircraft(req *RequestAircraftUpdate) *ApiResponse[ResponseAircraftUpdate]
	DeleteAircraft(req *RequestAircraftDelete) *ApiResponse[ResponseAircraftDelete]
	GetMaintenanceItems(req *RequestMaintenanceList) *ApiResponse[ResponseMaintenanceList]
	AddMaintenanceItem(req *RequestMaintenanceAdd) *ApiResponse[ResponseMaintenanceAdd]
	UpdateMaintenanceItem(req *RequestMaintenanceUpdate) *ApiResponse[ResponseMaintenanceUpdate]
	DeleteMaintenanceItem(req *RequestMaintenanceDelete) *ApiResponse[ResponseMaintenanceDelete]
	SendMaintenanceReminders(req *RequestMaintenanceRemind) *ApiResponse[ResponseMaintenanceRemind]
	GetPartOrders(req *RequestPartOrderList) *ApiResponse[ResponsePartOrderList]
	AddPartOrder(req *RequestPartOrderAdd) *ApiResponse[ResponsePartOrderAdd]
	UpdatePartOrderStatus(req *RequestPartOrderStatus) *ApiResponse[ResponsePartOrderStatus]
	GetSuppliers(req *RequestSupplierList) *ApiResponse[ResponseSupplierList]
	GetSensorData(req *RequestSensorData) *ApiResponse[ResponseSensorData]
}

type RequestAircraftList struct{}

type ResponseAircraftList struct {
	Items []*operation.Aircraft `json:"items"`
	Total int                   `json:"total"`
}

type RequestAircraftProfile struct {
	ID string `param:"id"`
}

type ResponseAircraftProfile operation.Aircraft

type RequestAircraftAdd struct {
	operation.Aircraft
}

type ResponseAircraftAdd operation.Aircraft

type RequestAircraftUpdate struct {
	ID string `param:"id"`
	operation.Aircraft
}

type ResponseAircraftUpdate operation.Aircraft

type RequestAircraftDelete struct {
	ID string `param:"id"`
}

type ResponseAircraftDelete bool

type RequestMaintenanceList struct {
	AircraftId string `query:"aircraft_id"`
}

type ResponseMaintenanceList struct {
	Items []*operation.MaintenanceItem `json:"items"`
	Total int                          `json:"total"`
}

type RequestMaintenanceAdd struct {
	operation.MaintenanceItem
}

type ResponseMaintenanceAdd operation.MaintenanceItem

type RequestMaintenanceUpdate struct {
	ID string `param:"id"`
	operation.MaintenancePatch
}

type ResponseMaintenanceUpdate operation.MaintenanceItem

type RequestMaintenanceDelete struct {
	ID string `param:"id"`
}

type ResponseMaintenanceDelete bool

type RequestMaintenanceRemind struct {
	AircraftId string `json:"aircraftId"`
}

// ResponseMaintenanceRemind 实际发出的提醒邮件数量
type ResponseMaintenanceRemind struct {
	Sent int `json:"sent"`
}

type RequestPartOrderList struct {
	AircraftId string `query:"aircraft_id"`
}

type ResponsePartOrderList struct {
	Items []*operation.PartOrder `json:"items"`
	Total int                    `json:"total"`
}

type RequestPartOrderAdd struct {
	operation.PartOrder
}

type ResponsePartOrderAdd operation.PartOrder

type RequestPartOrderStatus struct {
	ID     string                `param:"id"`
	Status operation.OrderStatus `json:"status"`
}

type ResponsePartOrderStatus operation.PartOrder

type RequestSupplierList struct{}

type ResponseSupplierList struct {
	Items []*operation.Supplier `json:"items"`
	Total int                   `json:"total"`
}

type RequestSensorData struct {
	FlightId string `query:"flight_id"`
}

type ResponseSensorData struct {
	Items []*operation.FlightSensorData `json:"items"`
	Total int                           `json:"total"`
}
