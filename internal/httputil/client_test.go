// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_DefaultVerification(t *testing.T) {
	// An httptest TLS server presents a self-signed certificate, so a
	// client without an exemption for its host must refuse to connect.
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewClient(5*time.Second, nil)
	_, err := client.Get(ts.URL)
	require.Error(t, err)
}

func TestNewClient_InsecureHostExemption(t *testing.T) {
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewClient(5*time.Second, []string{"127.0.0.1"})
	resp, err := client.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNewClient_ExemptionDoesNotLeakToOtherHosts(t *testing.T) {
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewClient(5*time.Second, []string{"journals.sagepub.com"})
	_, err := client.Get(ts.URL)
	require.Error(t, err, "exemption for one host must not disable verification elsewhere")
}

func TestNewClient_Timeout(t *testing.T) {
	client := NewClient(42*time.Second, nil)
	assert.Equal(t, 42*time.Second, client.Timeout)
}
