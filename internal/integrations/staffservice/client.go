package staffservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы со справочником специалистов
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента справочника специалистов
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetSpecialist получает специалиста по ID
func (c *Client) GetSpecialist(ctx context.Context, specialistID int64) (*Specialist, error) {
	url := fmt.Sprintf("%s/internal/specialists/%d", c.baseURL, specialistID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid specialist ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrSpecialistNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var specialist Specialist
	if err := json.NewDecoder(resp.Body).Decode(&specialist); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &specialist, nil
}

// GetSpecialistWithGracefulDegradation получает специалиста с graceful degradation.
// Отсутствие специалиста пробрасывается как есть, любая другая ошибка превращается в ErrServiceDegraded.
func (c *Client) GetSpecialistWithGracefulDegradation(ctx context.Context, specialistID int64) (*Specialist, error) {
	specialist, err := c.GetSpecialist(ctx, specialistID)
	if err != nil {
		if errors.Is(err, ErrSpecialistNotFound) {
			c.log.Info("Specialist not found: specialist_id=%d", specialistID)
			return nil, err
		}

		c.log.Error("StaffService unavailable, applying graceful degradation for specialist_id=%d: %v", specialistID, err)
		return nil, fmt.Errorf("%w: specialist_id=%d, error=%v", ErrServiceDegraded, specialistID, err)
	}

	if !specialist.IsActive {
		c.log.Warn("Specialist is inactive: specialist_id=%d", specialistID)
	}

	return specialist, nil
}
