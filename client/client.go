package client

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client talks to the grocery list HTTP API.
type Client struct {
	baseURL string
	http    *resty.Client
}

// New constructs a Client for baseURL. Options are applied in order.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}

	c := &Client{
		baseURL: baseURL,
		http: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Accept", "application/json").
			SetTimeout(30 * time.Second).
			SetRedirectPolicy(resty.NoRedirectPolicy()),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	return c
}

// BaseURL returns the API root the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.http.R().SetContext(ctx).SetError(&errorBody{})
}

// CreateList creates a list and returns its id.
func (c *Client) CreateList(ctx context.Context, title string, items []GroceryItem) (string, error) {
	if items == nil {
		items = []GroceryItem{}
	}
	var out MessageResponse
	resp, err := c.request(ctx).
		SetBody(ListRequest{Title: title, Items: items}).
		SetResult(&out).
		Post("/grocery-lists/")
	if err := check(resp, err, "create list"); err != nil {
		return "", err
	}
	return out.ID, nil
}

// ListLists returns every list.
func (c *Client) ListLists(ctx context.Context) ([]GroceryList, error) {
	var out []GroceryList
	resp, err := c.request(ctx).SetResult(&out).Get("/grocery-lists/")
	if err := check(resp, err, "list lists"); err != nil {
		return nil, err
	}
	if out == nil {
		out = []GroceryList{}
	}
	return out, nil
}

// GetList fetches one list.
func (c *Client) GetList(ctx context.Context, listID string) (*GroceryList, error) {
	var out GroceryList
	resp, err := c.request(ctx).
		SetPathParam("list_id", listID).
		SetResult(&out).
		Get("/grocery-lists/{list_id}")
	if err := check(resp, err, "get list"); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReplaceList overwrites title and items of a list.
func (c *Client) ReplaceList(ctx context.Context, listID, title string, items []GroceryItem) error {
	if items == nil {
		items = []GroceryItem{}
	}
	resp, err := c.request(ctx).
		SetPathParam("list_id", listID).
		SetBody(ListRequest{Title: title, Items: items}).
		Put("/grocery-lists/{list_id}")
	return check(resp, err, "replace list")
}

// DeleteList removes a list.
func (c *Client) DeleteList(ctx context.Context, listID string) error {
	resp, err := c.request(ctx).
		SetPathParam("list_id", listID).
		Delete("/grocery-lists/{list_id}")
	return check(resp, err, "delete list")
}

// AddItem appends an item to a list.
func (c *Client) AddItem(ctx context.Context, listID string, item GroceryItem) error {
	resp, err := c.request(ctx).
		SetPathParam("list_id", listID).
		SetBody(item).
		Post("/grocery-lists/{list_id}/items")
	return check(resp, err, "add item")
}

// SetPurchased updates the purchased flag of the named item.
func (c *Client) SetPurchased(ctx context.Context, listID, itemName string, purchased bool) error {
	resp, err := c.request(ctx).
		SetPathParams(map[string]string{"list_id": listID, "item_name": itemName}).
		SetQueryParam("purchased", strconv.FormatBool(purchased)).
		Put("/grocery-lists/{list_id}/items/{item_name}")
	return check(resp, err, "set purchased")
}

// DeleteItem removes every item with the given name.
func (c *Client) DeleteItem(ctx context.Context, listID, itemName string) error {
	resp, err := c.request(ctx).
		SetPathParams(map[string]string{"list_id": listID, "item_name": itemName}).
		Delete("/grocery-lists/{list_id}/items/{item_name}")
	return check(resp, err, "delete item")
}

// Health returns the service health report.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	resp, err := c.request(ctx).SetResult(&out).Get("/api/health")
	if err := check(resp, err, "health"); err != nil {
		return nil, err
	}
	return &out, nil
}

func check(resp *resty.Response, err error, op string) error {
	if err != nil {
		return err
	}
	if resp.StatusCode() == http.StatusOK {
		return nil
	}
	apiErr := &APIError{Op: op, StatusCode: resp.StatusCode()}
	if body, ok := resp.Error().(*errorBody); ok && body != nil {
		apiErr.Message = body.Message
	}
	if apiErr.Message == "" {
		apiErr.Message = resp.String()
	}
	return apiErr
}
