package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"calc/internal/domain"
	"calc/internal/server"
)

// HTTP is a CalculatorService backed by a remote calc server.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for the server at base. A nil hc uses http.DefaultClient.
func NewHTTP(base string, hc *http.Client) *HTTP {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

// Add asks the server for a + b.
func (c *HTTP) Add(ctx context.Context, a, b float64) (domain.Entry, error) {
	req := server.AddRequest{
		A: json.Number(strconv.FormatFloat(a, 'g', -1, 64)),
		B: json.Number(strconv.FormatFloat(b, 'g', -1, 64)),
	}
	var out domain.Entry
	if err := c.do(ctx, http.MethodPost, "/add", req, &out); err != nil {
		return domain.Entry{}, err
	}
	return out, nil
}

// AddInt asks the server for the checked integer sum of a and b.
func (c *HTTP) AddInt(ctx context.Context, a, b int64) (domain.Entry, error) {
	req := server.AddRequest{
		A:       json.Number(strconv.FormatInt(a, 10)),
		B:       json.Number(strconv.FormatInt(b, 10)),
		Integer: true,
	}
	var out domain.Entry
	if err := c.do(ctx, http.MethodPost, "/add", req, &out); err != nil {
		return domain.Entry{}, err
	}
	return out, nil
}

// History returns the server's most recent entries; limit <= 0 means all.
func (c *HTTP) History(ctx context.Context, limit int) ([]domain.Entry, error) {
	path := "/history"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var out []domain.Entry
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ClearHistory drops the server's recorded entries.
func (c *HTTP) ClearHistory(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/history", nil, nil)
}

func (c *HTTP) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return statusError(method, path, resp)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func statusError(method, path string, resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&body)

	var kind error
	switch resp.StatusCode {
	case http.StatusUnprocessableEntity:
		kind = domain.ErrOverflow
	case http.StatusBadRequest:
		kind = domain.ErrInvalidOperand
	}
	prefix := fmt.Sprintf("calc %s %s: %s", strings.ToLower(method), path, resp.Status)
	switch {
	case kind != nil && body.Error != "":
		return fmt.Errorf("%s: %s: %w", prefix, body.Error, kind)
	case kind != nil:
		return fmt.Errorf("%s: %w", prefix, kind)
	case body.Error != "":
		return fmt.Errorf("%s: %s", prefix, body.Error)
	}
	return errors.New(prefix)
}

var _ domain.CalculatorService = (*HTTP)(nil)
