// Package operation
package operation

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrEntryNotFound 指定的飞行记录不存在
	ErrEntryNotFound = errors.New("logbook entry does not exist")
)

// LogbookEntry 一条飞行日志记录, 字段与持久化JSON的形状保持一致
type LogbookEntry struct {
	ID               string  `gorm:"primarykey;size:32" json:"id"`
	Date             string  `gorm:"size:10;index;not null" json:"date"`
	AircraftMakeModel string `gorm:"size:64;not null" json:"aircraftMakeModel"`
	AircraftIdent    string  `gorm:"size:16;index;not null" json:"aircraftIdent"`
	RouteFrom        string  `gorm:"size:8;not null" json:"routeFrom"`
	RouteTo          string  `gorm:"size:8;not null" json:"routeTo"`
	TotalDuration    float64 `gorm:"default:0;not null" json:"totalDuration"`

	AirplaneSingleEngineLand float64 `gorm:"default:0;not null" json:"airplaneSingleEngineLand"`
	AirplaneSingleEngineSea  float64 `gorm:"default:0;not null" json:"airplaneSingleEngineSea"`
	AirplaneMultiEngineLand  float64 `gorm:"default:0;not null" json:"airplaneMultiEngineLand"`
	RotorcraftHelicopter     float64 `gorm:"default:0;not null" json:"rotorcraftHelicopter"`
	Glider                   float64 `gorm:"default:0;not null" json:"glider"`

	LandingsDay   int `gorm:"default:0;not null" json:"landingsDay"`
	LandingsNight int `gorm:"default:0;not null" json:"landingsNight"`

	Night               float64 `gorm:"default:0;not null" json:"night"`
	ActualInstrument    float64 `gorm:"default:0;not null" json:"actualInstrument"`
	SimulatedInstrument float64 `gorm:"default:0;not null" json:"simulatedInstrument"`
	Approaches          int     `gorm:"default:0;not null" json:"approaches"`

	CrossCountry     float64 `gorm:"default:0;not null" json:"crossCountry"`
	Solo             float64 `gorm:"default:0;not null" json:"solo"`
	PilotInCommand   float64 `gorm:"default:0;not null" json:"pilotInCommand"`
	SecondInCommand  float64 `gorm:"default:0;not null" json:"secondInCommand"`
	DualReceived     float64 `gorm:"default:0;not null" json:"dualReceived"`
	FlightInstructor float64 `gorm:"default:0;not null" json:"flightInstructor"`

	FlightSimulator      float64 `gorm:"default:0;not null" json:"flightSimulator"`
	FlightTrainingDevice float64 `gorm:"default:0;not null" json:"flightTrainingDevice"`

	Remarks        string `gorm:"type:text" json:"remarks"`
	PilotSignature string `gorm:"size:64" json:"pilotSignature"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LogbookEntryPatch 飞行记录的增量更新, nil字段表示保持原值
// ID和CreatedAt由存储层负责, 不允许调用方修改
type LogbookEntryPatch struct {
	Date              *string  `json:"date"`
	AircraftMakeModel *string  `json:"aircraftMakeModel"`
	AircraftIdent     *string  `json:"aircraftIdent"`
	RouteFrom         *string  `json:"routeFrom"`
	RouteTo           *string  `json:"routeTo"`
	TotalDuration     *float64 `json:"totalDuration"`

	AirplaneSingleEngineLand *float64 `json:"airplaneSingleEngineLand"`
	AirplaneSingleEngineSea  *float64 `json:"airplaneSingleEngineSea"`
	AirplaneMultiEngineLand  *float64 `json:"airplaneMultiEngineLand"`
	RotorcraftHelicopter     *float64 `json:"rotorcraftHelicopter"`
	Glider                   *float64 `json:"glider"`

	LandingsDay   *int `json:"landingsDay"`
	LandingsNight *int `json:"landingsNight"`

	Night               *float64 `json:"night"`
	ActualInstrument    *float64 `json:"actualInstrument"`
	SimulatedInstrument *float64 `json:"simulatedInstrument"`
	Approaches          *int     `json:"approaches"`

	CrossCountry     *float64 `json:"crossCountry"`
	Solo             *float64 `json:"solo"`
	PilotInCommand   *float64 `json:"pilotInCommand"`
	SecondInCommand  *float64 `json:"secondInCommand"`
	DualReceived     *float64 `json:"dualReceived"`
	FlightInstructor *float64 `json:"flightInstructor"`

	FlightSimulator      *float64 `json:"flightSimulator"`
	FlightTrainingDevice *float64 `json:"flightTrainingDevice"`

	Remarks        *string `json:"remarks"`
	PilotSignature *string `json:"pilotSignature"`
}

// Apply 将补丁合并到现有记录上, 不触碰ID与CreatedAt
func (patch *LogbookEntryPatch) Apply(entry *LogbookEntry) {
	applyString(&entry.Date, patch.Date)
	applyString(&entry.AircraftMakeModel, patch.AircraftMakeModel)
	applyString(&entry.AircraftIdent, patch.AircraftIdent)
	applyString(&entry.RouteFrom, patch.RouteFrom)
	applyString(&entry.RouteTo, patch.RouteTo)
	applyFloat(&entry.TotalDuration, patch.TotalDuration)
	applyFloat(&entry.AirplaneSingleEngineLand, patch.AirplaneSingleEngineLand)
	applyFloat(&entry.AirplaneSingleEngineSea, patch.AirplaneSingleEngineSea)
	applyFloat(&entry.AirplaneMultiEngineLand, patch.AirplaneMultiEngineLand)
	applyFloat(&entry.RotorcraftHelicopter, patch.RotorcraftHelicopter)
	applyFloat(&entry.Glider, patch.Glider)
	applyInt(&entry.LandingsDay, patch.LandingsDay)
	applyInt(&entry.LandingsNight, patch.LandingsNight)
	applyFloat(&entry.Night, patch.Night)
	applyFloat(&entry.ActualInstrument, patch.ActualInstrument)
	applyFloat(&entry.SimulatedInstrument, patch.SimulatedInstrument)
	applyInt(&entry.Approaches, patch.Approaches)
	applyFloat(&entry.CrossCountry, patch.CrossCountry)
	applyFloat(&entry.Solo, patch.Solo)
	applyFloat(&entry.PilotInCommand, patch.PilotInCommand)
	applyFloat(&entry.SecondInCommand, patch.SecondInCommand)
	applyFloat(&entry.DualReceived, patch.DualReceived)
	applyFloat(&entry.FlightInstructor, patch.FlightInstructor)
	applyFloat(&entry.FlightSimulator, patch.FlightSimulator)
	applyFloat(&entry.FlightTrainingDevice, patch.FlightTrainingDevice)
	applyString(&entry.Remarks, patch.Remarks)
	applyString(&entry.PilotSignature, patch.PilotSignature)
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func applyFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func applyInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

// NormalizeEntry 在存储边界统一整理记录, 下游聚合逻辑可以假定记录形状完整
func NormalizeEntry(entry *LogbookEntry) {
	entry.AircraftIdent = strings.ToUpper(strings.TrimSpace(entry.AircraftIdent))
	entry.RouteFrom = strings.ToUpper(strings.TrimSpace(entry.RouteFrom))
	entry.RouteTo = strings.ToUpper(strings.TrimSpace(entry.RouteTo))
	entry.AircraftMakeModel = strings.TrimSpace(entry.AircraftMakeModel)
	if entry.Date == "" {
		entry.Date = time.Now().Format("2006-01-02")
	}
}

// LogbookOperationInterface 飞行日志存储操作接口定义
type LogbookOperationInterface interface {
	// GetEntries 获取全部飞行记录, 按日期倒序排列, 日期相同时保持插入顺序
	GetEntries() (entries []*LogbookEntry, err error)
	// GetEntriesByAircraft 获取指定机尾号的飞行记录, 排序与GetEntries一致
	GetEntriesByAircraft(aircraftIdent string) (entries []*LogbookEntry, err error)
	// GetEntryById 根据ID获取飞行记录, 记录不存在时返回ErrEntryNotFound
	GetEntryById(id string) (entry *LogbookEntry, err error)
	// AddEntry 新增飞行记录, 由存储层分配ID和时间戳, 返回入库后的记录
	AddEntry(entry *LogbookEntry) (saved *LogbookEntry, err error)
	// UpdateEntry 增量更新飞行记录, 记录不存在时返回ErrEntryNotFound
	UpdateEntry(id string, patch *LogbookEntryPatch) (updated *LogbookEntry, err error)
	// DeleteEntry 删除飞行记录, found表示记录是否存在
	DeleteEntry(id string) (found bool, err error)
}
