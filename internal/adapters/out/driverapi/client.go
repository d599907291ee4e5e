// Package driverapi implements the DriverRegistry port against the driver
// service's REST API. The driver service owns all driver state; this client
// only reads it and requests availability changes.
package driverapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/pkg/errs"
)

const serviceName = "driver-service"

// Client calls the driver service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a driver service client. baseURL is the service root
// without a trailing slash; timeout bounds every call.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// driverDTO mirrors the driver service's representation. The availability
// flag is named "availability" on the wire.
type driverDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Availability bool   `json:"availability"`
}

func (d driverDTO) toDomain() driver.Driver {
	return driver.Driver{
		ID:        d.ID,
		Name:      d.Name,
		Available: d.Availability,
	}
}

// Get retrieves a driver by its registry id.
func (c *Client) Get(ctx context.Context, id string) (driver.Driver, error) {
	if id == "" {
		return driver.Driver{}, errs.NewValueIsRequiredError("id")
	}

	endpoint := fmt.Sprintf("%s/drivers/%s", c.baseURL, url.PathEscape(id))
	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return driver.Driver{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return decodeDriver(resp)
	case http.StatusNotFound:
		return driver.Driver{}, errs.NewObjectNotFoundError("driverId", id)
	default:
		return driver.Driver{}, unexpectedStatus(resp.StatusCode)
	}
}

// GetAvailableByLicenseClass retrieves one available driver holding the given
// license class. The registry picks the match; no ordering is guaranteed.
func (c *Client) GetAvailableByLicenseClass(ctx context.Context, licenseClass string) (driver.Driver, error) {
	if licenseClass == "" {
		return driver.Driver{}, errs.NewValueIsRequiredError("licenseClass")
	}

	endpoint := fmt.Sprintf("%s/drivers/available?licenseClass=%s",
		c.baseURL, url.QueryEscape(licenseClass))
	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return driver.Driver{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return decodeDriver(resp)
	case http.StatusConflict:
		return driver.Driver{}, errs.NewResourceUnavailableError("driver", licenseClass)
	default:
		return driver.Driver{}, unexpectedStatus(resp.StatusCode)
	}
}

// SetAvailability requests the registry to set the driver's availability flag.
func (c *Client) SetAvailability(ctx context.Context, id string, available bool) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}

	endpoint := fmt.Sprintf("%s/drivers/%s/availability?available=%s",
		c.baseURL, url.PathEscape(id), strconv.FormatBool(available))

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, nil)
	if err != nil {
		return errs.NewUpstreamUnavailableError(serviceName, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewUpstreamUnavailableError(serviceName, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return errs.NewObjectNotFoundError("driverId", id)
	default:
		return unexpectedStatus(resp.StatusCode)
	}
}

func (c *Client) get(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errs.NewUpstreamUnavailableError(serviceName, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.NewUpstreamUnavailableError(serviceName, err)
	}
	return resp, nil
}

func decodeDriver(resp *http.Response) (driver.Driver, error) {
	var dto driverDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return driver.Driver{}, errs.NewUpstreamUnavailableError(serviceName, err)
	}
	return dto.toDomain(), nil
}

func unexpectedStatus(code int) error {
	return errs.NewUpstreamUnavailableError(serviceName,
		fmt.Errorf("unexpected status %d", code))
}
