// Package service
package service

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	c "github.com/open-hangar/aeroledger/internal/interfaces/config"
	"github.com/open-hangar/aeroledger/internal/interfaces/log"
	. "github.com/open-hangar/aeroledger/internal/interfaces/service"
	"github.com/open-hangar/aeroledger/internal/utils"
)

// PartsService 代理上游零件检索与询价接口
type PartsService struct {
	logger log.LoggerInterface
	config *c.PartsConfig
	client *http.Client
}

func NewPartsService(logger log.LoggerInterface, config *c.PartsConfig) *PartsService {
	return &PartsService{
		logger: logger,
		config: config,
		client: &http.Client{Timeout: config.RequestDuration},
	}
}

var (
	SuccessPartSearch = ApiStatus{StatusName: "PART_SEARCH_SUCCESS", Description: "零件检索成功", HttpCode: Ok}
	SuccessPartQuotes = ApiStatus{StatusName: "PART_QUOTES_SUCCESS", Description: "零件询价成功", HttpCode: Ok}
)

func (partsService *PartsService) fetchJson(requestUrl string, bearerToken string, target any) error {
	request, err := http.NewRequest(http.MethodGet, requestUrl, nil)
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")
	if bearerToken != "" {
		request.Header.Set("Authorization", "Bearer "+bearerToken)
	}
	response, err := partsService.client.Do(request)
	if err != nil {
		return err
	}
	defer func() { _ = response.Body.Close() }()
	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream returned status %d", response.StatusCode)
	}
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, target)
}

func (partsService *PartsService) SearchParts(req *RequestPartSearch) *ApiResponse[ResponsePartSearch] {
	if req.Query == "" {
		return NewApiResponse[ResponsePartSearch](&ErrLackParam, Unsatisfied, nil)
	}
	requestUrl := fmt.Sprintf("%s?query=%s", partsService.config.SearchUrl, url.QueryEscape(req.Query))
	result := &ResponsePartSearch{Parts: make([]*PartListing, 0)}
	if err := partsService.fetchJson(requestUrl, "", result); err != nil {
		partsService.logger.ErrorF("Part search failed for %q: %v", req.Query, err)
		return NewApiResponse[ResponsePartSearch](&ErrUpstreamFail, Unsatisfied, nil)
	}
	// 上游价格是字符串, 解析出数值供订单成本预填
	for _, listing := range result.Parts {
		listing.UnitPrice = utils.StrToFloat(listing.Price, 0)
	}
	return NewApiResponse(&SuccessPartSearch, Unsatisfied, result)
}

func (partsService *PartsService) GetPartQuotes(req *RequestPartQuotes) *ApiResponse[ResponsePartQuotes] {
	if req.PartNumber == "" {
		return NewApiResponse[ResponsePartQuotes](&ErrLackParam, Unsatisfied, nil)
	}
	requestUrl := fmt.Sprintf("%s?partNumber=%s", partsService.config.QuotesUrl, url.QueryEscape(req.PartNumber))
	result := &ResponsePartQuotes{Quotes: make([]*PartQuote, 0)}
	if err := partsService.fetchJson(requestUrl, partsService.config.QuotesApiKey, result); err != nil {
		partsService.logger.ErrorF("Part quote lookup failed for %q: %v", req.PartNumber, err)
		return NewApiResponse[ResponsePartQuotes](&ErrUpstreamFail, Unsatisfied, nil)
	}
	for _, quote := range result.Quotes {
		quote.UnitPrice = utils.StrToFloat(quote.Price, 0)
	}
	return NewApiResponse(&SuccessPartQuotes, Unsatisfied, result)
}
