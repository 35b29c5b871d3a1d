// Package service
package service

import (
	"time"

	"github.com/open-hangar/aeroledger/internal/interfaces/operation"
	. "github.com/open-hangar/aeroledger/internal/interfaces/service"
)

// SimulatedMarketService 模拟市场行情实现, 返回静态样本数据
type SimulatedMarketService struct {
	aircraftOperation operation.AircraftOperationInterface
}

func NewSimulatedMarketService(aircraftOperation operation.AircraftOperationInterface) *SimulatedMarketService {
	return &SimulatedMarketService{aircraftOperation: aircraftOperation}
}

var (
	SuccessMarketAnalysis = ApiStatus{StatusName: "GET_MARKET_ANALYSIS_SUCCESS", Description: "获取市场估值成功", HttpCode: Ok}
	SuccessMarketReport   = ApiStatus{StatusName: "GET_MARKET_REPORT_SUCCESS", Description: "获取市场行情成功", HttpCode: Ok}
)

func (marketService *SimulatedMarketService) GetMarketAnalysis(req *RequestMarketAnalysis) *ApiResponse[ResponseMarketAnalysis] {
	if req.AircraftId == "" {
		return NewApiResponse[ResponseMarketAnalysis](&ErrLackParam, Unsatisfied, nil)
	}
	aircraft, res := CallDBFuncAndCheckError[operation.Aircraft, ResponseMarketAnalysis](func() (*operation.Aircraft, error) {
		return marketService.aircraftOperation.GetAircraftById(req.AircraftId)
	})
	if res != nil {
		return res
	}

	analysis := &ResponseMarketAnalysis{
		AircraftId:      aircraft.ID,
		CurrentValue:    aircraft.MarketValue,
		EstimatedValue:  492000,
		MarketTrend:     TrendUp,
		TrendPercentage: 2.3,
		ComparableAircraft: []*ComparableAircraft{
			{ID: "1", MakeModel: "Cessna 172", Year: 2017, Hours: 1150, Price: 465000, Location: "Florida", Condition: "excellent", DaysOnMarket: 45},
			{ID: "2", MakeModel: "Cessna 172", Year: 2019, Hours: 890, Price: 520000, Location: "California", Condition: "excellent", DaysOnMarket: 23},
			{ID: "3", MakeModel: "Cessna 172", Year: 2016, Hours: 1450, Price: 425000, Location: "Texas", Condition: "good", DaysOnMarket: 67},
			{ID: "4", MakeModel: "Cessna 172", Year: 2018, Hours: 1200, Price: 485000, Location: "Arizona", Condition: "excellent", DaysOnMarket: 34},
		},
		ValueHistory: []*ValueHistoryPoint{
			{Date: "2024-01", Value: 465000},
			{Date: "2024-02", Value: 470000},
			{Date: "2024-03", Value: 475000},
			{Date: "2024-04", Value: 480000},
			{Date: "2024-05", Value: 485000},
			{Date: "2024-06", Value: 485000},
		},
		MarketFactors: []*MarketFactor{
			{Factor: "Low Flight Hours", Impact: "positive", Description: "Aircraft has relatively low hours for its age", Weight: 0.8},
			{Factor: "Recent Maintenance", Impact: "positive", Description: "Well-maintained with recent annual inspection", Weight: 0.7},
			{Factor: "Market Demand", Impact: "positive", Description: "High demand for Cessna 172 in current market", Weight: 0.9},
			{Factor: "Age Factor", Impact: "neutral", Description: "Aircraft age is typical for the market segment", Weight: 0.5},
		},
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}
	return NewApiResponse(&SuccessMarketAnalysis, Unsatisfied, analysis)
}

func (marketService *SimulatedMarketService) GetMarketReport(req *RequestMarketReport) *ApiResponse[ResponseMarketReport] {
	if req.AircraftType == "" {
		return NewApiResponse[ResponseMarketReport](&ErrLackParam, Unsatisfied, nil)
	}
	report := &ResponseMarketReport{
		AircraftType:        req.AircraftType,
		AveragePrice:        475000,
		MedianPrice:         485000,
		TotalListings:       127,
		AverageDaysOnMarket: 42,
		PriceRange:          PriceRange{Min: 325000, Max: 650000},
		RegionData: []*RegionData{
			{Region: "Southeast", AveragePrice: 485000, Listings: 34},
			{Region: "Southwest", AveragePrice: 495000, Listings: 28},
			{Region: "Northeast", AveragePrice: 465000, Listings: 22},
			{Region: "Northwest", AveragePrice: 470000, Listings: 18},
			{Region: "Midwest", AveragePrice: 455000, Listings: 25},
		},
	}
	return NewApiResponse(&SuccessMarketReport, Unsatisfied, report)
}
