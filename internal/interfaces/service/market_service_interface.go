// Package service
package service

type MarketTrend string

const (
	TrendUp     MarketTrend = "up"
	TrendDown   MarketTrend = "down"
	TrendStable MarketTrend = "stable"
)

type ComparableAircraft struct {
	ID           string  `json:"id"`
	MakeModel    string  `json:"makeModel"`
	Year         int     `json:"year"`
	Hours        float64 `json:"hours"`
	Price        float64 `json:"price"`
	Location     string  `json:"location"`
	Condition    string  `json:"condition"`
	DaysOnMarket int     `json:"daysOnMarket"`
}

type ValueHistoryPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type MarketFactor struct {
	Factor      string  `json:"factor"`
	Impact      string  `json:"impact"`
	Description string  `json:"description"`
	Weight      float64 `json:"weight"`
}

// MarketAnalysis 某架航空器的市场估值分析
type MarketAnalysis struct {
	AircraftId         string                `json:"aircraftId"`
	CurrentValue       float64               `json:"currentValue"`
	EstimatedValue     float64               `json:"estimatedValue"`
	MarketTrend        MarketTrend           `json:"marketTrend"`
	TrendPercentage    float64               `json:"trendPercentage"`
	ComparableAircraft []*ComparableAircraft `json:"comparableAircraft"`
	ValueHistory       []*ValueHistoryPoint  `json:"valueHistory"`
	MarketFactors      []*MarketFactor       `json:"marketFactors"`
	LastUpdated        string                `json:"lastUpdated"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type RegionData struct {
	Region       string  `json:"region"`
	AveragePrice float64 `json:"averagePrice"`
	Listings     int     `json:"listings"`
}

// MarketReport 某一机型的整体市场行情
type MarketReport struct {
	AircraftType        string        `json:"aircraftType"`
	AveragePrice        float64       `json:"averagePrice"`
	MedianPrice         float64       `json:"medianPrice"`
	TotalListings       int           `json:"totalListings"`
	AverageDaysOnMarket int           `json:"averageDaysOnMarket"`
	PriceRange          PriceRange    `json:"priceRange"`
	RegionData          []*RegionData `json:"regionData"`
}

// MarketServiceInterface 市场估值服务, 当前为模拟实现
type MarketServiceInterface interface {
	GetMarketAnalysis(req *RequestMarketAnalysis) *ApiResponse[ResponseMarketAnalysis]
	GetMarketReport(req *RequestMarketReport) *ApiResponse[ResponseMarketReport]
}

type RequestMarketAnalysis struct {
	AircraftId string `param:"id"`
}

type ResponseMarketAnalysis MarketAnalysis

type RequestMarketReport struct {
	AircraftType string `query:"aircraft_type"`
}

type ResponseMarketReport MarketReport
