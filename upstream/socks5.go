// ABOUTME: Optional SSH+SOCKS5 tunnel for the relay's HTTP transport
// ABOUTME: Activated by UPSTREAM_ALL_PROXY, e.g. ssh+socks5://user@jump:22?private-key=/path

package upstream

import (
	"context"
	"log"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	proxy "github.com/cloudfoundry/socks5-proxy"
)

// dialContextFromEnv builds a DialContext routed through an SSH+SOCKS5
// proxy when UPSTREAM_ALL_PROXY is set. Returns nil (direct dialing) when
// unset or misconfigured; a broken proxy spec must not take the BFF down.
func dialContextFromEnv() func(ctx context.Context, network, address string) (net.Conn, error) {
	allProxy := os.Getenv("UPSTREAM_ALL_PROXY")
	if allProxy == "" {
		return nil
	}

	allProxy = strings.TrimPrefix(allProxy, "ssh+")

	proxyURL, err := url.Parse(allProxy)
	if err != nil {
		slog.Error("Failed to parse UPSTREAM_ALL_PROXY URL", "error", err)
		return nil
	}

	queryMap, err := url.ParseQuery(proxyURL.RawQuery)
	if err != nil {
		slog.Error("Failed to parse UPSTREAM_ALL_PROXY query params", "error", err)
		return nil
	}

	username := ""
	if proxyURL.User != nil {
		username = proxyURL.User.Username()
	}

	keyPath := queryMap.Get("private-key")
	if keyPath == "" {
		slog.Error("UPSTREAM_ALL_PROXY missing required 'private-key' query param")
		return nil
	}

	sshKey, err := os.ReadFile(keyPath)
	if err != nil {
		slog.Error("Failed to read SSH private key", "path", keyPath, "error", err)
		return nil
	}

	socks5Proxy := proxy.NewSocks5Proxy(proxy.NewHostKey(), log.Default(), 1*time.Minute)

	var (
		dialer proxy.DialFunc
		mut    sync.RWMutex
	)

	return func(ctx context.Context, network, address string) (net.Conn, error) {
		mut.RLock()
		haveDialer := dialer != nil
		mut.RUnlock()

		if haveDialer {
			return dialer(network, address)
		}

		mut.Lock()
		defer mut.Unlock()
		if dialer == nil {
			proxyDialer, err := socks5Proxy.Dialer(username, string(sshKey), proxyURL.Host)
			if err != nil {
				return nil, err
			}
			dialer = proxyDialer
		}
		return dialer(network, address)
	}
}
