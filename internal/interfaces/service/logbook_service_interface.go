// Package service
package service

import (
	"github.com/open-hangar/aeroledger/internal/interfaces/operation"
)

type LogbookServiceInterface interface {
	GetEntries(req *RequestLogbookEntries) *ApiResponse[ResponseLogbookEntries]
	GetEntry(req *RequestLogbookEntry) *ApiResponse[ResponseLogbookEntry]
	AddEntry(req *RequestLogbookAdd) *ApiResponse[ResponseLogbookAdd]
	UpdateEntry(req *RequestLogbookUpdate) *ApiResponse[ResponseLogbookUpdate]
	DeleteEntry(req *RequestLogbookDelete) *ApiResponse[ResponseLogbookDelete]
	GetFlightStats(req *RequestFlightStats) *ApiResponse[ResponseFlightStats]
}

type RequestLogbookEntries struct {
	AircraftIdent string `query:"aircraft_ident"`
}

type ResponseLogbookEntries struct {
	Items []*operation.LogbookEntry `json:"items"`
	Total int                       `json:"total"`
}

type RequestLogbookEntry struct {
	ID string `param:"id"`
}

type ResponseLogbookEntry operation.LogbookEntry

type RequestLogbookAdd struct {
	operation.LogbookEntry
}

type ResponseLogbookAdd operation.LogbookEntry

type RequestLogbookUpdate struct {
	ID string `param:"id"`
	operation.LogbookEntryPatch
}

type ResponseLogbookUpdate operation.LogbookEntry

type RequestLogbookDelete struct {
	ID string `param:"id"`
}

type ResponseLogbookDelete bool

type RequestFlightStats struct {
	AircraftIdent string `query:"aircraft_ident"`
}

type ResponseFlightStats operation.FlightStats
