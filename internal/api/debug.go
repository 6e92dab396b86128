package api

import (
	"net/http"
	"net/http/httputil"

	"github.com/rs/zerolog/log"
)

// debugTransport dumps every HTTP round trip at debug level. Installed
// by WithDebugLogging; never active by default.
type debugTransport struct {
	base http.RoundTripper
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Str("request_dump", string(reqDump)).
			Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().
			Err(err).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Int("status_code", resp.StatusCode).
			Str("response_dump", string(respDump)).
			Msg("HTTP response")
	}
	return resp, nil
}
