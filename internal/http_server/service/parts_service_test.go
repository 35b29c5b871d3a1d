// Package service
package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	c "github.com/open-hangar/aeroledger/internal/interfaces/config"
	. "github.com/open-hangar/aeroledger/internal/interfaces/service"
)

func TestPartsServiceSearchParsesPrices(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Query().Get("query") != "spark plug" {
			t.Errorf("unexpected upstream query %q", request.URL.RawQuery)
		}
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"parts":[
			{"partNumber":"SPARK-REM40E","manufacturer":"Champion","price":"129.99","condition":"new"},
			{"partNumber":"SPARK-UREM38S","manufacturer":"Tempest","price":"call for price","condition":"new"}
		]}`))
	}))
	defer upstream.Close()

	partsService := NewPartsService(&testLogger{}, &c.PartsConfig{
		SearchUrl:       upstream.URL,
		RequestDuration: time.Second,
	})
	response := partsService.SearchParts(&RequestPartSearch{Query: "spark plug"})
	if response.Data == nil {
		t.Fatalf("SearchParts: expected parts, got %+v", response)
	}

	pass, fail := 0, 0
	parts := response.Data.Parts
	if len(parts) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(parts))
	}
	if parts[0].UnitPrice != 129.99 {
		t.Errorf("expected parsed unit price 129.99, got %v", parts[0].UnitPrice)
		fail++
	} else {
		pass++
	}
	if parts[0].Price != "129.99" {
		t.Errorf("raw price string should be preserved, got %q", parts[0].Price)
		fail++
	} else {
		pass++
	}
	// 无法解析的价格串回落到0
	if parts[1].UnitPrice != 0 {
		t.Errorf("unparseable price should default to 0, got %v", parts[1].UnitPrice)
		fail++
	} else {
		pass++
	}
	t.Logf("TestPartsServiceSearchParsesPrices: %d pass, %d fail", pass, fail)
}

func TestPartsServiceQuotesAuthAndPrices(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.Header.Get("Authorization") != "Bearer secret-token" {
			writer.WriteHeader(http.StatusUnauthorized)
			return
		}
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"quotes":[
			{"partNumber":"OIL-15W50-6QT","supplier":"Aircraft Spruce","price":"89.50","deliveryDays":3}
		]}`))
	}))
	defer upstream.Close()

	partsService := NewPartsService(&testLogger{}, &c.PartsConfig{
		QuotesUrl:       upstream.URL,
		QuotesApiKey:    "secret-token",
		RequestDuration: time.Second,
	})
	response := partsService.GetPartQuotes(&RequestPartQuotes{PartNumber: "OIL-15W50-6QT"})
	if response.Data == nil {
		t.Fatalf("GetPartQuotes: expected quotes, got %+v", response)
	}
	quotes := response.Data.Quotes
	if len(quotes) != 1 {
		t.Fatalf("expected 1 quote, got %d", len(quotes))
	}
	if quotes[0].UnitPrice != 89.5 {
		t.Errorf("expected parsed unit price 89.5, got %v", quotes[0].UnitPrice)
	}
}

func TestPartsServiceUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	partsService := NewPartsService(&testLogger{}, &c.PartsConfig{
		SearchUrl:       upstream.URL,
		RequestDuration: time.Second,
	})
	response := partsService.SearchParts(&RequestPartSearch{Query: "oil filter"})
	if response.Data != nil {
		t.Errorf("upstream failure should not yield parts, got %+v", response.Data)
	}
}
