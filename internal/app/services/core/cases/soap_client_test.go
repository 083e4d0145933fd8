package cases

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"casepay-service/internal/app/config"
	"casepay-service/internal/pkg/exceptions"
)

func newTestClient(url string) *soapCaseClient {
	return &soapCaseClient{
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
		Logger:     zap.NewNop(),
		InternalConfig: &config.InternalConfig{
			CaseLookup: config.CaseLookup{
				BaseUrl:        url,
				SOAPAction:     "urn:GetCase",
				TimeoutSeconds: 5,
			},
		},
	}
}

const caseResponseXML = `<?xml version="1.0"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <GetCaseResponse>
      <CaseNumber>USA-12345</CaseNumber>
      <CaseManagementSystem>global</CaseManagementSystem>
      <DestinationCountry>United States</DestinationCountry>
      <Clients>
        <Client>
          <ClientId>client-1</ClientId>
          <Name>First Applicant</Name>
          <Age>30</Age>
          <DateOfBirth>1996-03-02</DateOfBirth>
        </Client>
        <Client>
          <ClientId>client-2</ClientId>
          <Name>Second Applicant</Name>
          <Age>1</Age>
          <DateOfBirth>2025-01-15</DateOfBirth>
        </Client>
      </Clients>
    </GetCaseResponse>
  </soap:Body>
</soap:Envelope>`

func TestFindByCaseNumber(t *testing.T) {
	t.Run("maps the case and its clients", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "urn:GetCase", r.Header.Get("SOAPAction"))
			requestBody, _ := io.ReadAll(r.Body)
			assert.Contains(t, string(requestBody), "<CaseNumber>USA-12345</CaseNumber>")

			w.Write([]byte(caseResponseXML))
		}))
		defer server.Close()

		found, err := newTestClient(server.URL).FindByCaseNumber(context.Background(), "USA-12345")
		require.NoError(t, err)

		assert.Equal(t, "USA-12345", found.CaseNumber)
		assert.Equal(t, "United States", found.DestinationCountry)
		require.Len(t, found.Clients, 2)
		assert.Equal(t, "First Applicant", found.Clients[0].Name)
		assert.Equal(t, 30, found.Clients[0].AgeYears)
		assert.Equal(t, 1, found.Clients[1].AgeYears)
	})

	t.Run("case number is XML-escaped in the request", func(t *testing.T) {
		var requestBody string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			requestBody = string(raw)
			w.Write([]byte(caseResponseXML))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).FindByCaseNumber(context.Background(), "USA-1<&>2")
		require.NoError(t, err)
		assert.Contains(t, requestBody, "USA-1&lt;&amp;&gt;2")
	})

	t.Run("empty response means the case does not exist", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"><soap:Body><GetCaseResponse></GetCaseResponse></soap:Body></soap:Envelope>`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).FindByCaseNumber(context.Background(), "USA-404")
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
	})

	t.Run("soap fault surfaces the fault string", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"><soap:Body><soap:Fault><faultcode>soap:Server</faultcode><faultstring>backend offline</faultstring></soap:Fault></soap:Body></soap:Envelope>`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).FindByCaseNumber(context.Background(), "USA-12345")
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Contains(t, customErr.DevMessage, "backend offline")
	})

	t.Run("non-2xx surfaces the backend status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).FindByCaseNumber(context.Background(), "USA-12345")
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Contains(t, customErr.DevMessage, "500")
	})
}
