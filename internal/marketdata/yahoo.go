package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/models"
)

const (
	yahooChartURL   = "https://query1.finance.yahoo.com/v8/finance/chart"
	yahooSummaryURL = "https://query2.finance.yahoo.com/v10/finance/quoteSummary"
	yahooUA         = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)"
)

// yahooChartResponse is the top-level v8 chart response.
type yahooChartResponse struct {
	Chart struct {
		Result []yahooChartResult `json:"result"`
		Error  *yahooError        `json:"error"`
	} `json:"chart"`
}

type yahooError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type yahooChartResult struct {
	Meta struct {
		Symbol             string  `json:"symbol"`
		Currency           string  `json:"currency"`
		RegularMarketPrice float64 `json:"regularMarketPrice"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Open   []*float64 `json:"open"`
			High   []*float64 `json:"high"`
			Low    []*float64 `json:"low"`
			Close  []*float64 `json:"close"`
			Volume []*float64 `json:"volume"`
		} `json:"quote"`
		AdjClose []struct {
			AdjClose []*float64 `json:"adjclose"`
		} `json:"adjclose"`
	} `json:"indicators"`
}

// yahooSummaryResponse is the v10 quoteSummary response for the modules we request.
type yahooSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			FinancialData struct {
				RevenueGrowth  yahooRaw `json:"revenueGrowth"`
				EarningsGrowth yahooRaw `json:"earningsGrowth"`
				ReturnOnEquity yahooRaw `json:"returnOnEquity"`
				DebtToEquity   yahooRaw `json:"debtToEquity"`
			} `json:"financialData"`
			DefaultKeyStatistics struct {
				DebtToEquity yahooRaw `json:"debtToEquity"`
			} `json:"defaultKeyStatistics"`
			SummaryDetail struct {
				TrailingPE yahooRaw `json:"trailingPE"`
			} `json:"summaryDetail"`
		} `json:"result"`
		Error *yahooError `json:"error"`
	} `json:"quoteSummary"`
}

// yahooRaw is Yahoo's {"raw": 0.12, "fmt": "12%"} number wrapper.
type yahooRaw struct {
	Raw *float64 `json:"raw"`
}

// YahooProvider fetches history and quotes from the Yahoo Finance chart API
// and fundamentals from quoteSummary.
type YahooProvider struct {
	httpClient *http.Client
	chartURL   string // overridable for tests
	summaryURL string // overridable for tests
}

// NewYahooProvider creates a new Yahoo Finance provider.
func NewYahooProvider(httpClient *http.Client) *YahooProvider {
	return &YahooProvider{httpClient: httpClient, chartURL: yahooChartURL, summaryURL: yahooSummaryURL}
}

// Name returns the provider's display name.
func (p *YahooProvider) Name() string { return "Yahoo Finance" }

// History fetches daily bars between from and to.
func (p *YahooProvider) History(ctx context.Context, symbol string, from, to time.Time) (models.PriceSeries, error) {
	q := url.Values{}
	q.Set("period1", strconv.FormatInt(from.Unix(), 10))
	q.Set("period2", strconv.FormatInt(to.Unix(), 10))
	q.Set("interval", "1d")
	q.Set("includeAdjustedClose", "true")

	result, err := p.fetchChart(ctx, symbol, q)
	if err != nil {
		return models.PriceSeries{}, p.fetchError(symbol, err)
	}

	series := chartToSeries(symbol, result)
	if err := validateSeries(series); err != nil {
		return models.PriceSeries{}, p.fetchError(symbol, err)
	}
	return series, nil
}

// LatestPrice returns the regular market price, or the last close of the past few days.
func (p *YahooProvider) LatestPrice(ctx context.Context, symbol string) (float64, error) {
	q := url.Values{}
	q.Set("range", "5d")
	q.Set("interval", "1d")

	result, err := p.fetchChart(ctx, symbol, q)
	if err != nil {
		return 0, p.fetchError(symbol, err)
	}

	if result.Meta.RegularMarketPrice > 0 {
		return result.Meta.RegularMarketPrice, nil
	}
	series := chartToSeries(symbol, result)
	if last, ok := series.Last(); ok && last.Close > 0 {
		return last.Close, nil
	}
	return 0, p.fetchError(symbol, fmt.Errorf("zero price for %s", symbol))
}

// Fundamentals fetches financial data, key statistics and summary detail.
func (p *YahooProvider) Fundamentals(ctx context.Context, symbol string) (*models.Fundamentals, error) {
	endpoint := p.summaryURL + "/" + url.PathEscape(symbol) +
		"?modules=financialData,defaultKeyStatistics,summaryDetail"

	var resp yahooSummaryResponse
	if err := p.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, p.fetchError(symbol, err)
	}
	if resp.QuoteSummary.Error != nil {
		return nil, p.fetchError(symbol, fmt.Errorf("%s: %s", resp.QuoteSummary.Error.Code, resp.QuoteSummary.Error.Description))
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return nil, p.fetchError(symbol, ErrNoData)
	}

	r := resp.QuoteSummary.Result[0]
	f := &models.Fundamentals{
		Symbol:         symbol,
		RevenueGrowth:  r.FinancialData.RevenueGrowth.Raw,
		EarningsGrowth: r.FinancialData.EarningsGrowth.Raw,
		ReturnOnEquity: r.FinancialData.ReturnOnEquity.Raw,
		TrailingPE:     r.SummaryDetail.TrailingPE.Raw,
	}

	// Yahoo reports debt-to-equity as a percentage (e.g. 150.2 for 1.5x).
	de := r.FinancialData.DebtToEquity.Raw
	if de == nil {
		de = r.DefaultKeyStatistics.DebtToEquity.Raw
	}
	if de != nil {
		ratio := *de / 100
		f.DebtToEquity = &ratio
	}

	return f, nil
}

// fetchChart requests the chart endpoint for one symbol and returns its single result.
func (p *YahooProvider) fetchChart(ctx context.Context, symbol string, q url.Values) (*yahooChartResult, error) {
	endpoint := p.chartURL + "/" + url.PathEscape(symbol) + "?" + q.Encode()

	var resp yahooChartResponse
	if err := p.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("%s: %s", resp.Chart.Error.Code, resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, ErrNoData
	}
	return &resp.Chart.Result[0], nil
}

func (p *YahooProvider) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", yahooUA)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (p *YahooProvider) fetchError(symbol string, err error) error {
	return &FetchError{Provider: p.Name(), Symbol: symbol, Err: err}
}

// chartToSeries flattens the column-oriented chart payload into bars,
// skipping days without a close (exchange holidays show up as nulls).
func chartToSeries(symbol string, r *yahooChartResult) models.PriceSeries {
	series := models.PriceSeries{Symbol: symbol}
	if len(r.Indicators.Quote) == 0 {
		return series
	}
	quote := r.Indicators.Quote[0]
	var adj []*float64
	if len(r.Indicators.AdjClose) > 0 {
		adj = r.Indicators.AdjClose[0].AdjClose
	}

	series.Bars = make([]models.PriceBar, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		closeVal := valueAt(quote.Close, i)
		if closeVal == nil {
			continue
		}
		bar := models.PriceBar{
			Date:  time.Unix(ts, 0).UTC(),
			Close: *closeVal,
		}
		if v := valueAt(quote.Open, i); v != nil {
			bar.Open = *v
		}
		if v := valueAt(quote.High, i); v != nil {
			bar.High = *v
		}
		if v := valueAt(quote.Low, i); v != nil {
			bar.Low = *v
		}
		if v := valueAt(quote.Volume, i); v != nil {
			bar.Volume = *v
		}
		if v := valueAt(adj, i); v != nil {
			bar.AdjClose = *v
		}
		series.Bars = append(series.Bars, bar)
	}
	fillAdjClose(series.Bars)
	return series
}

func valueAt(values []*float64, i int) *float64 {
	if i >= len(values) {
		return nil
	}
	return values[i]
}
