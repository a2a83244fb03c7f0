package folio

import (
	"flag"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
)

// This file contains functions to access the Alpha Vantage API.

const alphavantage_api_key = "ALPHAVANTAGE_API_KEY"

var alphavantageApiFlag = flag.String("alphavantage-api-key", "", "Alpha Vantage API key to use for fetching live quotes.\n If missing it will read the environment variable \""+alphavantage_api_key+"\". You can get one at https://www.alphavantage.co/")

func alphavantageApiKey() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *alphavantageApiFlag == "" {
		*alphavantageApiFlag = os.Getenv(alphavantage_api_key)
	}
	return *alphavantageApiFlag
}

// AlphaVantage fetches latest quotes from the alphavantage.co GLOBAL_QUOTE
// endpoint.
type AlphaVantage struct {
	key    string
	client *http.Client
}

// NewAlphaVantage returns a provider using the configured API key and a
// daily-expiring disk cache for responses.
func NewAlphaVantage() *AlphaVantage {
	return &AlphaVantage{key: alphavantageApiKey(), client: daily()}
}

// Latest fetches the latest price for a symbol and returns it in cents.
//
//	{
//	  "Global Quote": {
//	    "01. symbol": "AAPL",
//	    "05. price": "227.5200",
//	    ...
//	  }
//	}
//
// Alpha Vantage reports quota exhaustion as a 200 response carrying a "Note"
// field, and bad symbols as an "Error Message" field; both become errors here.
func (av *AlphaVantage) Latest(symbol string) (int64, error) {
	addr := fmt.Sprintf("https://www.alphavantage.co/query?function=GLOBAL_QUOTE&symbol=%s&apikey=%s",
		url.QueryEscape(symbol), av.key)

	var jobj any
	if err := jwget(av.client, addr, &jobj); err != nil {
		return 0, fmt.Errorf("error retrieving %q: %w", symbol, err)
	}

	if m, ok := jobj.(map[string]any); ok {
		if note, ok := m["Note"].(string); ok {
			return 0, fmt.Errorf("rate limit hit for %s: %s", symbol, note)
		}
		if msg, ok := m["Error Message"].(string); ok {
			return 0, fmt.Errorf("api error for %s: %s", symbol, msg)
		}
	}

	path := `$["Global Quote"]["05. price"]`
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("no price for %s: %q %w", symbol, path, err)
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	str, ok := jval.(string)
	if !ok {
		return 0, fmt.Errorf("no price for %s: %q not a string %v", symbol, path, jval)
	}
	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q for %s: %w", str, symbol, err)
	}
	return int64(math.Round(val * 100)), nil
}
