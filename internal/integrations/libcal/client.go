package libcal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"
	origin    = "https://calendar.lib.usf.edu"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Options параметры запроса сетки доступности
type Options struct {
	LocationID int // lid
	GroupID    int // gid
	PageSize   int
}

// Client клиент публичной сетки доступности LibCal
// Запросы ограничены по частоте: LibCal не рассчитан на частый опрос
type Client struct {
	gridURL    string
	opts       Options
	httpClient *http.Client
	limiter    *rate.Limiter
	log        Logger
}

// NewClient создает новый экземпляр клиента LibCal
func NewClient(gridURL string, opts Options, timeout time.Duration, limiter *rate.Limiter, log Logger) *Client {
	return &Client{
		gridURL: gridURL,
		opts:    opts,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: limiter,
		log:     log,
	}
}

// FetchSlots получает слоты сетки за период [start, end)
func (c *Client) FetchSlots(ctx context.Context, start, end types.Date) ([]Slot, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %v", ErrInternal, err)
	}

	form := url.Values{}
	form.Set("lid", strconv.Itoa(c.opts.LocationID))
	form.Set("gid", strconv.Itoa(c.opts.GroupID))
	form.Set("eid", "-1")
	form.Set("seat", "0")
	form.Set("seatId", "0")
	form.Set("zone", "0")
	form.Set("start", start.String())
	form.Set("end", end.String())
	form.Set("pageIndex", "0")
	form.Set("pageSize", strconv.Itoa(c.opts.PageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gridURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", origin+"/allspaces")
	req.Header.Set("Origin", origin)
	req.Header.Set("Accept", "application/json, text/javascript, */*; q=0.01")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	}

	var grid GridResponse
	if err := json.NewDecoder(resp.Body).Decode(&grid); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("LibCal: fetched %d slot(s) for %s..%s", len(grid.Slots), start, end)
	return grid.Slots, nil
}
