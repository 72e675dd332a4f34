// Package practicum talks to the Yandex Practicum homework_statuses API.
package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// ClientConfig contains configuration for the Practicum API client.
type ClientConfig struct {
	Endpoint string
	Token    string
	Timeout  time.Duration
	// MinRequestInterval is the minimum spacing between two requests.
	MinRequestInterval time.Duration
	Logger             *logrus.Entry
}

// Client fetches homework statuses.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *logrus.Entry
	now        func() time.Time
}

// NewClient creates a new Practicum API client.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Logger == nil {
		cfg.Logger = logrus.NewEntry(logrus.StandardLogger())
	}

	limit := rate.Inf
	if cfg.MinRequestInterval > 0 {
		limit = rate.Every(cfg.MinRequestInterval)
	}

	return &Client{
		endpoint:   cfg.Endpoint,
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(limit, 1),
		logger:     cfg.Logger,
		now:        time.Now,
	}
}

// Fetch requests homeworks whose status changed since the given unix time.
// A zero timestamp means "now".
func (c *Client) Fetch(ctx context.Context, since int64) (homework.Response, error) {
	if since == 0 {
		since = c.now().Unix()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, homework.Wrap(homework.KindTransport, "ошибка ожидания лимита запросов к API", err)
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", c.endpoint, err)
	}
	q := u.Query()
	q.Set("from_date", strconv.FormatInt(since, 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)
	req.Header.Set("Accept", "application/json")

	c.logger.WithField("from_date", since).Debug("Requesting homework statuses")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, homework.Wrap(homework.KindTransport, "ошибка запроса к API", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, homework.Wrap(homework.KindTransport, "ошибка чтения ответа API", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"from_date":   since,
		}).Error("Unexpected homework API response status")
		return nil, &homework.Error{
			Kind: homework.KindBadStatus,
			Msg:  fmt.Sprintf("ошибочный статус ответа по API: %d", resp.StatusCode),
		}
	}

	if !json.Valid(body) {
		return nil, &homework.Error{Kind: homework.KindType, Msg: "ответ API не является JSON"}
	}
	return homework.Response(body), nil
}
