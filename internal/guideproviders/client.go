package guideproviders

import (
	"net/http"
	"time"
)

// Connection limits shared by every provider: at most 10 connections per
// upstream, 5 of them kept alive, 30 seconds per request.
const (
	requestTimeout      = 30 * time.Second
	maxConnections      = 10
	maxKeepAliveConns   = 5
	keepAliveIdlePeriod = 90 * time.Second
)

func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: requestTimeout,
		Transport: &http.Transport{
			MaxConnsPerHost:     maxConnections,
			MaxIdleConns:        maxKeepAliveConns,
			MaxIdleConnsPerHost: maxKeepAliveConns,
			IdleConnTimeout:     keepAliveIdlePeriod,
		},
	}
}
