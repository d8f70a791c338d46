// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"crypto/tls"
	"net/http"
	"time"
)

// NewClient builds an *http.Client with the given timeout whose transport
// skips TLS certificate verification for the listed hosts only. An empty
// host list yields a client equivalent to the default, with verification
// on everywhere.
//
// The per-host exemption exists because a couple of the archive servers we
// fetch from present certificate chains that fail default verification.
// It must never be widened to a blanket InsecureSkipVerify.
func NewClient(timeout time.Duration, insecureHosts []string) *http.Client {
	if len(insecureHosts) == 0 {
		return &http.Client{Timeout: timeout}
	}

	hosts := make(map[string]bool, len(insecureHosts))
	for _, h := range insecureHosts {
		hosts[h] = true
	}

	insecure := http.DefaultTransport.(*http.Transport).Clone()
	insecure.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}

	return &http.Client{
		Timeout: timeout,
		Transport: &hostPolicyTransport{
			secure:   http.DefaultTransport,
			insecure: insecure,
			hosts:    hosts,
		},
	}
}

// hostPolicyTransport routes requests to an insecure-TLS transport when the
// target host is on the exemption list, and to the default transport otherwise.
type hostPolicyTransport struct {
	secure   http.RoundTripper
	insecure http.RoundTripper
	hosts    map[string]bool
}

func (t *hostPolicyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.hosts[req.URL.Hostname()] {
		return t.insecure.RoundTrip(req)
	}
	return t.secure.RoundTrip(req)
}
