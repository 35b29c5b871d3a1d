// Package service
package service

// PartListing 零件目录查询结果中的一条
// Price保留上游原始价格串, UnitPrice是解析后的数值, 解析失败按0处理
type PartListing struct {
	PartNumber   string  `json:"partNumber"`
	Description  string  `json:"description"`
	Manufacturer string  `json:"manufacturer"`
	Price        string  `json:"price"`
	UnitPrice    float64 `json:"unitPrice"`
	Condition    string  `json:"condition"`
}

// PartQuote 上游询价结果中的一条报价
type PartQuote struct {
	PartNumber   string  `json:"partNumber"`
	Supplier     string  `json:"supplier"`
	Price        string  `json:"price"`
	UnitPrice    float64 `json:"unitPrice"`
	DeliveryDays int     `json:"deliveryDays"`
}

// PartsServiceInterface 零件目录与询价服务, 代理上游API
type PartsServiceInterface interface {
	SearchParts(req *RequestPartSearch) *ApiResponse[ResponsePartSearch]
	GetPartQuotes(req *RequestPartQuotes) *ApiResponse[ResponsePartQuotes]
}

type RequestPartSearch struct {
	Query string `query:"query"`
}

type ResponsePartSearch struct {
	Parts []*PartListing `json:"parts"`
}

type RequestPartQuotes struct {
	PartNumber string `query:"part_number"`
}

type ResponsePartQuotes struct {
	Quotes []*PartQuote `json:"quotes"`
}
