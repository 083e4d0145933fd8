package cases

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"casepay-service/internal/app/config"
	"casepay-service/internal/app/contracts"
	"casepay-service/internal/app/models"
	"casepay-service/internal/pkg/constvars"
	"casepay-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type soapCaseClient struct {
	HTTPClient     *http.Client
	Logger         *zap.Logger
	InternalConfig *config.InternalConfig
}

var (
	soapCaseClientInstance contracts.CaseLookupClient
	onceSoapCaseClient     sync.Once
)

func NewSoapCaseClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.CaseLookupClient {
	onceSoapCaseClient.Do(func() {
		soapCaseClientInstance = &soapCaseClient{
			HTTPClient: &http.Client{
				Timeout: time.Duration(internalConfig.CaseLookup.TimeoutSeconds) * time.Second,
			},
			Logger:         logger,
			InternalConfig: internalConfig,
		}
	})
	return soapCaseClientInstance
}

type soapEnvelope struct {
	XMLName xml.Name `xml:"http://schemas.xmlsoap.org/soap/envelope/ Envelope"`
	Body    soapBody `xml:"Body"`
}

type soapBody struct {
	GetCaseResponse *getCaseResponse `xml:"GetCaseResponse"`
	Fault           *soapFault       `xml:"Fault"`
}

type soapFault struct {
	Code   string `xml:"faultcode"`
	String string `xml:"faultstring"`
}

type getCaseResponse struct {
	CaseNumber           string       `xml:"CaseNumber"`
	CaseManagementSystem string       `xml:"CaseManagementSystem"`
	DestinationCountry   string       `xml:"DestinationCountry"`
	Clients              []caseClient `xml:"Clients>Client"`
}

type caseClient struct {
	ClientID    string `xml:"ClientId"`
	Name        string `xml:"Name"`
	AgeYears    int    `xml:"Age"`
	DateOfBirth string `xml:"DateOfBirth"`
}

const getCaseRequestTemplate = `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"><soap:Body><GetCaseRequest><CaseNumber>%s</CaseNumber></GetCaseRequest></soap:Body></soap:Envelope>`

func (c *soapCaseClient) FindByCaseNumber(ctx context.Context, caseNumber string) (*models.Case, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Logger.Info("soapCaseClient.FindByCaseNumber called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCaseNumberKey, caseNumber),
	)

	var escapedCaseNumber bytes.Buffer
	if err := xml.EscapeText(&escapedCaseNumber, []byte(caseNumber)); err != nil {
		return nil, exceptions.ErrCaseLookup(err)
	}
	body := fmt.Sprintf(getCaseRequestTemplate, escapedCaseNumber.String())

	request, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.InternalConfig.CaseLookup.BaseUrl, bytes.NewBufferString(body))
	if err != nil {
		return nil, exceptions.ErrCaseLookup(err)
	}
	request.Header.Set(constvars.HeaderContentType, constvars.MIMETextXML)
	request.Header.Set(constvars.HeaderSOAPAction, c.InternalConfig.CaseLookup.SOAPAction)

	response, err := c.HTTPClient.Do(request)
	if err != nil {
		return nil, exceptions.ErrCaseLookup(err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, exceptions.ErrCaseLookup(err)
	}
	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return nil, exceptions.ErrCaseLookup(fmt.Errorf("case backend returned %d: %s", response.StatusCode, string(responseBody)))
	}

	envelope := new(soapEnvelope)
	if err := xml.Unmarshal(responseBody, envelope); err != nil {
		return nil, exceptions.ErrCaseLookup(err)
	}
	if envelope.Body.Fault != nil {
		return nil, exceptions.ErrCaseLookup(fmt.Errorf("soap fault %s: %s", envelope.Body.Fault.Code, envelope.Body.Fault.String))
	}
	if envelope.Body.GetCaseResponse == nil || envelope.Body.GetCaseResponse.CaseNumber == "" {
		return nil, exceptions.ErrCaseNotFound(caseNumber)
	}

	return mapCase(envelope.Body.GetCaseResponse), nil
}

func mapCase(response *getCaseResponse) *models.Case {
	clients := make([]models.CaseClient, 0, len(response.Clients))
	for _, client := range response.Clients {
		clients = append(clients, models.CaseClient{
			ClientID:    client.ClientID,
			Name:        client.Name,
			AgeYears:    client.AgeYears,
			DateOfBirth: client.DateOfBirth,
		})
	}
	return &models.Case{
		CaseNumber:           response.CaseNumber,
		CaseManagementSystem: response.CaseManagementSystem,
		DestinationCountry:   response.DestinationCountry,
		Clients:              clients,
	}
}
