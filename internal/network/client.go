package network

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/net/proxy"
)

// NewClient создает http.Client для походов к провайдеру.
// If proxyAddr is set, traffic is routed through a SOCKS5 proxy.
// The timeout lives here, at the transport layer, not in the pipeline.
func NewClient(proxyAddr string) (*http.Client, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	if proxyAddr == "" {
		return client, nil
	}

	dialer, err := proxy.SOCKS5("tcp", proxyAddr, nil, proxy.Direct)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к SOCKS5 (%s): %w", proxyAddr, err)
	}

	client.Transport = &http.Transport{
		Dial:              dialer.Dial,
		DisableKeepAlives: true,
	}
	client.Timeout = 2 * time.Minute

	return client, nil
}
