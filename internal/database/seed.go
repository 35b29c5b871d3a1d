package database

import (
	"time"

	. "github.com/open-hangar/aeroledger/internal/interfaces/operation"
)

// SeedData 演示用样本数据集合, 由-seed启动参数注入内存存储
type SeedData struct {
	Entries          []*LogbookEntry
	Aircraft         []*Aircraft
	MaintenanceItems []*MaintenanceItem
	PartOrders       []*PartOrder
	Suppliers        []*Supplier
	SensorData       []*FlightSensorData
}

// EmptySeed 只保留供应商目录和传感器样本, 业务集合从空开始
func EmptySeed() *SeedData {
	return &SeedData{
		Suppliers:  demoSuppliers(),
		SensorData: demoSensorData(),
	}
}

// DemoSeed 完整的演示数据集
func DemoSeed() *SeedData {
	return &SeedData{
		Entries:          demoEntries(),
		MaintenanceItems: demoMaintenanceItems(),
		PartOrders:       demoPartOrders(),
		Suppliers:        demoSuppliers(),
		SensorData:       demoSensorData(),
	}
}

func demoEntries() []*LogbookEntry {
	return []*LogbookEntry{
		{
			ID:                       "1",
			Date:                     "2025-05-25",
			AircraftMakeModel:        "Cessna 172",
			AircraftIdent:            "N12345",
			RouteFrom:                "KMIA",
			RouteTo:                  "KFLL",
			TotalDuration:            1.2,
			AirplaneSingleEngineLand: 1.2,
			LandingsDay:              2,
			SimulatedInstrument:      0.3,
			Approaches:               2,
			CrossCountry:             1.2,
			PilotInCommand:           1.2,
			Remarks:                  "Practice approaches, good weather",
			PilotSignature:           "Pat Boone",
			CreatedAt:                time.Date(2025, 5, 25, 10, 0, 0, 0, time.UTC),
			UpdatedAt:                time.Date(2025, 5, 25, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:                       "2",
			Date:                     "2025-05-24",
			AircraftMakeModel:        "Cessna 172",
			AircraftIdent:            "N12345",
			RouteFrom:                "KFLL",
			RouteTo:                  "KPBI",
			TotalDuration:            0.8,
			AirplaneSingleEngineLand: 0.8,
			LandingsDay:              1,
			Approaches:               1,
			CrossCountry:             0.8,
			PilotInCommand:           0.8,
			Remarks:                  "Short cross-country flight",
			PilotSignature:           "Pat Boone",
			CreatedAt:                time.Date(2025, 5, 24, 14, 0, 0, 0, time.UTC),
			UpdatedAt:                time.Date(2025, 5, 24, 14, 0, 0, 0, time.UTC),
		},
	}
}

func demoMaintenanceItems() []*MaintenanceItem {
	return []*MaintenanceItem{
		{
			ID:                "1",
			AircraftId:        "1",
			ItemName:          "Oil Change",
			PartNumber:        "OIL-15W50-6QT",
			Description:       "Engine oil change with filter replacement",
			DueHours:          1300,
			CurrentHours:      1247.3,
			Status:            MaintenanceUpcoming,
			Priority:          PriorityMedium,
			EstimatedCost:     125.0,
			Supplier:          "Aircraft Spruce",
			NextDue:           "2025-06-15",
			RecurringInterval: 50,
		},
		{
			ID:            "2",
			AircraftId:    "1",
			ItemName:      "Annual Inspection",
			PartNumber:    "INSP-ANNUAL",
			Description:   "FAA required annual inspection",
			DueHours:      1300,
			CurrentHours:  1247.3,
			Status:        MaintenanceUpcoming,
			Priority:      PriorityCritical,
			EstimatedCost: 2500.0,
			Supplier:      "Certified Maintenance Shop",
			NextDue:       "2025-12-15",
		},
		{
			ID:                "3",
			AircraftId:        "1",
			ItemName:          "Spark Plugs",
			PartNumber:        "SPARK-REM40E",
			Description:       "Replace all 4 spark plugs",
			DueHours:          1400,
			CurrentHours:      1247.3,
			Status:            MaintenanceUpcoming,
			Priority:          PriorityMedium,
			EstimatedCost:     280.0,
			Supplier:          "Champion Aerospace",
			NextDue:           "2025-08-20",
			RecurringInterval: 100,
		},
	}
}

func demoPartOrders() []*PartOrder {
	return []*PartOrder{
		{
			ID:                "1",
			PartNumber:        "OIL-15W50-6QT",
			PartName:          "Phillips 66 X/C 15W-50 Oil (6 Qt)",
			Quantity:          1,
			UnitPrice:         89.95,
			TotalPrice:        89.95,
			Supplier:          "Aircraft Spruce",
			Status:            OrderShipped,
			OrderDate:         "2025-05-20",
			ExpectedDelivery:  "2025-05-27",
			TrackingNumber:    "1Z999AA1234567890",
			AircraftId:        "1",
			MaintenanceItemId: "1",
		},
	}
}

func demoSuppliers() []*Supplier {
	return []*Supplier{
		{
			ID:                  "1",
			Name:                "Aircraft Spruce",
			Rating:              4.8,
			Location:            "Corona, CA",
			Specialties:         []string{"Engine Parts", "Avionics", "Tools"},
			Certifications:      []string{"FAA Approved", "PMA Parts"},
			AverageDeliveryTime: 3,
			ContactEmail:        "orders@aircraftspruce.com",
			ContactPhone:        "877-4-SPRUCE",
			Website:             "https://aircraftspruce.com",
		},
		{
			ID:                  "2",
			Name:                "Champion Aerospace",
			Rating:              4.9,
			Location:            "Liberty, SC",
			Specialties:         []string{"Ignition Systems", "Spark Plugs", "Filters"},
			Certifications:      []string{"FAA PMA", "EASA Approved"},
			AverageDeliveryTime: 2,
			ContactEmail:        "sales@championaerospace.com",
			ContactPhone:        "864-843-7000",
			Website:             "https://championaerospace.com",
		},
	}
}

func demoSensorData() []*FlightSensorData {
	return []*FlightSensorData{
		{
			ID:             "1",
			FlightId:       "flight-1",
			Timestamp:      time.Date(2025, 5, 25, 10, 30, 0, 0, time.UTC),
			Altitude:       3500,
			Airspeed:       120,
			EngineRPM:      2400,
			FuelFlow:       8.5,
			OilPressure:    75,
			OilTemperature: 180,
			EngineHours:    1247.3,
			Latitude:       25.7617,
			Longitude:      -80.1918,
		},
	}
}
