package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yeoyeo/realty-api/internal/config"
	"github.com/yeoyeo/realty-api/internal/logger"
)

// Indicator is a single market figure as rendered on the home page.
// Type is "up" or "down" and drives the arrow color client-side.
type Indicator struct {
	Value  string `json:"value"`
	Change string `json:"change"`
	Type   string `json:"type"`
}

// Data aggregates all six indicators served by GET /api/v1/market.
type Data struct {
	InterestRate Indicator `json:"interestRate"`
	ExchangeRate Indicator `json:"exchangeRate"`
	USFedRate    Indicator `json:"usFedRate"`
	Kospi        Indicator `json:"kospi"`
	Kosdaq       Indicator `json:"kosdaq"`
	SP500        Indicator `json:"sp500"`
}

// Hardcoded figures used whenever an upstream source is unreachable,
// misconfigured, or returns an unexpected shape. The endpoint never
// fails; at worst it serves these.
var (
	fallbackKospi        = Indicator{Value: "2,580.45", Change: "+15.32", Type: "up"}
	fallbackKosdaq       = Indicator{Value: "745.28", Change: "-3.15", Type: "down"}
	fallbackSP500        = Indicator{Value: "5,123.50", Change: "+22.10", Type: "up"}
	fallbackExchangeRate = Indicator{Value: "1,380.5원", Change: "-5.2원", Type: "down"}
	fallbackInterestRate = Indicator{Value: "3.50%", Change: "+0.25%p", Type: "up"}
	fallbackUSFedRate    = Indicator{Value: "5.25%", Change: "+0.00%p", Type: "up"}
)

const (
	defaultAlphaURL = "https://www.alphavantage.co"
	defaultEximURL  = "https://www.koreaexim.go.kr"
	defaultBokURL   = "https://ecos.bok.or.kr"
	defaultFredURL  = "https://api.stlouisfed.org"
)

// Service fetches indicators from the four upstream sources and keeps
// the latest aggregate in a process-wide snapshot.
type Service struct {
	cfg    config.MarketConfig
	client *http.Client
	log    *logger.Logger

	// Base URLs are overridable for tests.
	AlphaURL string
	EximURL  string
	BokURL   string
	FredURL  string

	mu       sync.RWMutex
	snapshot Data
}

func NewService(cfg config.MarketConfig, log *logger.Logger) *Service {
	return &Service{
		cfg:      cfg,
		client:   &http.Client{Timeout: 10 * time.Second},
		log:      log.WithComponent("market"),
		AlphaURL: defaultAlphaURL,
		EximURL:  defaultEximURL,
		BokURL:   defaultBokURL,
		FredURL:  defaultFredURL,
		snapshot: fallbackData(),
	}
}

func fallbackData() Data {
	return Data{
		InterestRate: fallbackInterestRate,
		ExchangeRate: fallbackExchangeRate,
		USFedRate:    fallbackUSFedRate,
		Kospi:        fallbackKospi,
		Kosdaq:       fallbackKosdaq,
		SP500:        fallbackSP500,
	}
}

// Current returns the most recently refreshed aggregate. Before the
// first refresh completes it returns the hardcoded fallbacks.
func (s *Service) Current() Data {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Refresh fetches all sources concurrently and swaps the snapshot.
// Individual source failures degrade to that source's fallback, so
// Refresh itself never fails.
func (s *Service) Refresh(ctx context.Context) {
	data := s.fetchAll(ctx)
	s.mu.Lock()
	s.snapshot = data
	s.mu.Unlock()
	s.log.Debug("market snapshot refreshed", nil)
}

func (s *Service) fetchAll(ctx context.Context) Data {
	var data Data
	g, ctx := errgroup.WithContext(ctx)

	// Each goroutine writes a disjoint set of fields.
	g.Go(func() error {
		data.Kospi, data.Kosdaq, data.SP500 = s.fetchStocks(ctx)
		return nil
	})
	g.Go(func() error {
		data.ExchangeRate = s.fetchExchangeRate(ctx)
		return nil
	})
	g.Go(func() error {
		data.InterestRate = s.fetchInterestRate(ctx)
		return nil
	})
	g.Go(func() error {
		data.USFedRate = s.fetchUSFedRate(ctx)
		return nil
	})

	_ = g.Wait()
	return data
}

type globalQuoteResponse struct {
	GlobalQuote struct {
		Price  string `json:"05. price"`
		Change string `json:"09. change"`
	} `json:"Global Quote"`
}

func (s *Service) fetchStocks(ctx context.Context) (kospi, kosdaq, sp500 Indicator) {
	kospi = s.fetchQuote(ctx, "KS11.KRX", fallbackKospi)
	kosdaq = s.fetchQuote(ctx, "KQ11.KRX", fallbackKosdaq)
	sp500 = s.fetchQuote(ctx, "SPY", fallbackSP500)
	return kospi, kosdaq, sp500
}

func (s *Service) fetchQuote(ctx context.Context, symbol string, fallback Indicator) Indicator {
	if s.cfg.AlphaVantageKey == "" {
		return fallback
	}

	url := fmt.Sprintf("%s/query?function=GLOBAL_QUOTE&symbol=%s&apikey=%s", s.AlphaURL, symbol, s.cfg.AlphaVantageKey)
	var resp globalQuoteResponse
	if err := s.getJSON(ctx, url, &resp); err != nil {
		s.log.Warn("quote fetch failed", map[string]interface{}{"symbol": symbol, "error": err.Error()})
		return fallback
	}
	if resp.GlobalQuote.Price == "" {
		return fallback
	}

	change := resp.GlobalQuote.Change
	indicatorType := "up"
	if strings.HasPrefix(change, "-") {
		indicatorType = "down"
	}
	return Indicator{Value: resp.GlobalQuote.Price, Change: change, Type: indicatorType}
}

type eximRate struct {
	CurUnit    string `json:"cur_unit"`
	DealBasR   string `json:"deal_bas_r"`
	ChangeRate string `json:"change_rate"`
}

func (s *Service) fetchExchangeRate(ctx context.Context) Indicator {
	if s.cfg.KoreaeximKey == "" {
		return fallbackExchangeRate
	}

	today := time.Now().Format("20060102")
	url := fmt.Sprintf("%s/site/program/financial/exchangeJSON?authkey=%s&searchdate=%s&data=AP01", s.EximURL, s.cfg.KoreaeximKey, today)
	var rates []eximRate
	if err := s.getJSON(ctx, url, &rates); err != nil {
		s.log.Warn("exchange rate fetch failed", map[string]interface{}{"error": err.Error()})
		return fallbackExchangeRate
	}

	for _, r := range rates {
		if r.CurUnit != "USD" {
			continue
		}
		rate, err := strconv.ParseFloat(strings.ReplaceAll(r.DealBasR, ",", ""), 64)
		if err != nil {
			break
		}
		change, _ := strconv.ParseFloat(r.ChangeRate, 64)
		sign := ""
		indicatorType := "up"
		if change > 0 {
			sign = "+"
		}
		if change < 0 {
			indicatorType = "down"
		}
		return Indicator{
			Value:  fmt.Sprintf("%.1f원", rate),
			Change: fmt.Sprintf("%s%.1f원", sign, change),
			Type:   indicatorType,
		}
	}
	return fallbackExchangeRate
}

type bokResponse struct {
	StatisticSearch struct {
		Row []struct {
			DataValue string `json:"DATA_VALUE"`
		} `json:"row"`
	} `json:"StatisticSearch"`
}

func (s *Service) fetchInterestRate(ctx context.Context) Indicator {
	if s.cfg.BokKey == "" {
		return fallbackInterestRate
	}

	today := time.Now().Format("20060102")
	url := fmt.Sprintf("%s/api/StatisticSearch/%s/json/kr/1/1/722Y001/D/%s/%s/0101000", s.BokURL, s.cfg.BokKey, today, today)
	var resp bokResponse
	if err := s.getJSON(ctx, url, &resp); err != nil {
		s.log.Warn("interest rate fetch failed", map[string]interface{}{"error": err.Error()})
		return fallbackInterestRate
	}
	if len(resp.StatisticSearch.Row) == 0 || resp.StatisticSearch.Row[0].DataValue == "" {
		return fallbackInterestRate
	}
	return Indicator{
		Value:  resp.StatisticSearch.Row[0].DataValue + "%",
		Change: fallbackInterestRate.Change,
		Type:   fallbackInterestRate.Type,
	}
}

type fredResponse struct {
	Observations []struct {
		Value string `json:"value"`
	} `json:"observations"`
}

func (s *Service) fetchUSFedRate(ctx context.Context) Indicator {
	if s.cfg.FredKey == "" {
		return fallbackUSFedRate
	}

	url := fmt.Sprintf("%s/fred/series/observations?series_id=FEDFUNDS&api_key=%s&file_type=json&limit=1&sort_order=desc", s.FredURL, s.cfg.FredKey)
	var resp fredResponse
	if err := s.getJSON(ctx, url, &resp); err != nil {
		s.log.Warn("fed rate fetch failed", map[string]interface{}{"error": err.Error()})
		return fallbackUSFedRate
	}
	if len(resp.Observations) == 0 || resp.Observations[0].Value == "" {
		return fallbackUSFedRate
	}
	return Indicator{
		Value:  resp.Observations[0].Value + "%",
		Change: fallbackUSFedRate.Change,
		Type:   fallbackUSFedRate.Type,
	}
}

func (s *Service) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("upstream responded with status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
