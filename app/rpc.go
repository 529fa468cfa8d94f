package app

import "strings"

// NormalizeRPCURL rewrites a CometBFT listen address into a URL that HTTP
// clients accept. tcp:// becomes http://; unix sockets pass through.
func NormalizeRPCURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "tcp://") {
		return "http://" + strings.TrimPrefix(raw, "tcp://")
	}
	return raw
}
