// Package fleetapi implements the VehicleRegistry port against the fleet
// service's REST API. The fleet service owns all vehicle state; this client
// only reads it and requests status changes.
package fleetapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/pkg/errs"
)

const serviceName = "fleet-service"

// Client calls the fleet service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a fleet service client. baseURL is the service root
// without a trailing slash; timeout bounds every call.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// vehicleDTO mirrors the fleet service's vehicle representation. Unknown
// fields are ignored.
type vehicleDTO struct {
	ID               string `json:"id"`
	Plate            string `json:"plate"`
	Type             string `json:"type"`
	Status           string `json:"status"`
	AssignedDriverID string `json:"assignedDriverId"`
}

func (d vehicleDTO) toDomain() vehicle.Vehicle {
	return vehicle.Vehicle{
		ID:               d.ID,
		Plate:            d.Plate,
		Type:             d.Type,
		Status:           d.Status,
		AssignedDriverID: d.AssignedDriverID,
	}
}

// Get retrieves a vehicle by its registry id.
func (c *Client) Get(ctx context.Context, id string) (vehicle.Vehicle, error) {
	if id == "" {
		return vehicle.Vehicle{}, errs.NewValueIsRequiredError("id")
	}

	endpoint := fmt.Sprintf("%s/vehicles/%s", c.baseURL, url.PathEscape(id))
	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return vehicle.Vehicle{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return decodeVehicle(resp)
	case http.StatusNotFound:
		return vehicle.Vehicle{}, errs.NewObjectNotFoundError("vehicleId", id)
	default:
		return vehicle.Vehicle{}, unexpectedStatus(resp.StatusCode)
	}
}

// GetAvailableByType retrieves one available vehicle of the given type. The
// registry picks the match; no ordering is guaranteed.
func (c *Client) GetAvailableByType(ctx context.Context, vehicleType string) (vehicle.Vehicle, error) {
	if vehicleType == "" {
		return vehicle.Vehicle{}, errs.NewValueIsRequiredError("vehicleType")
	}

	endpoint := fmt.Sprintf("%s/vehicles/available?type=%s", c.baseURL, url.QueryEscape(vehicleType))
	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return vehicle.Vehicle{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return decodeVehicle(resp)
	case http.StatusConflict:
		return vehicle.Vehicle{}, errs.NewResourceUnavailableError("vehicle", vehicleType)
	default:
		return vehicle.Vehicle{}, unexpectedStatus(resp.StatusCode)
	}
}

// SetStatus requests the registry to move the vehicle to the given status.
func (c *Client) SetStatus(ctx context.Context, id, status string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	if status == "" {
		return errs.NewValueIsRequiredError("status")
	}

	endpoint := fmt.Sprintf("%s/vehicles/%s/status?status=%s",
		c.baseURL, url.PathEscape(id), url.QueryEscape(status))

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
		return errs.NewObjectNotFoundError("vehicleId", id)
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

func decodeVehicle(resp *http.Response) (vehicle.Vehicle, error) {
	var dto vehicleDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return vehicle.Vehicle{}, errs.NewUpstreamUnavailableError(serviceName, err)
	}
	return dto.toDomain(), nil
}

func unexpectedStatus(code int) error {
	return errs.NewUpstreamUnavailableError(serviceName,
		fmt.Errorf("unexpected status %d", code))
}
