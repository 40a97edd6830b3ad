// Package client is the Go counterpart of the web frontend's topicService:
// a typed wrapper over the ByteForge REST API, plus the local progress store.
package client

import (
	"byteforge/models"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// Client is a typed HTTP client for the ByteForge content API
type Client struct {
	http *resty.Client
}

// New builds a client against the given base URL, e.g. "http://localhost:5000"
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json"),
	}
}

// APIError is a non-2xx response from the service
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type errorBody struct {
	Error string `json:"error"`
}

func apiError(resp *resty.Response) error {
	body, _ := resp.Error().(*errorBody)
	message := resp.Status()
	if body != nil && body.Error != "" {
		message = body.Error
	}
	return &APIError{StatusCode: resp.StatusCode(), Message: message}
}

// UpsertResult is the response of a subtopic upsert
type UpsertResult struct {
	SubTopic models.SubTopic `json:"subtopic"`
	Message  string          `json:"message"` // "created" or "updated"
}

// DeleteTopicResult is the response of a topic delete
type DeleteTopicResult struct {
	Message      string       `json:"message"`
	DeletedTopic models.Topic `json:"deletedTopic"`
}

// DeleteCategoryResult is the response of a category delete
type DeleteCategoryResult struct {
	Message         string          `json:"message"`
	DeletedCategory models.Category `json:"deletedCategory"`
}

// DeleteSubTopicResult is the response of a subtopic delete
type DeleteSubTopicResult struct {
	Message  string          `json:"message"`
	SubTopic models.SubTopic `json:"subtopic"`
}

// HealthStatus is the response of the health endpoint
type HealthStatus struct {
	Status    string `json:"status"`
	Database  bool   `json:"database"`
	Timestamp string `json:"timestamp"`
}

func (c *Client) ListTopics() ([]models.Topic, error) {
	var topics []models.Topic
	resp, err := c.http.R().SetResult(&topics).SetError(&errorBody{}).Get("/topics")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return topics, nil
}

func (c *Client) GetTopic(id string) (*models.Topic, error) {
	var topic models.Topic
	resp, err := c.http.R().SetResult(&topic).SetError(&errorBody{}).Get("/topics/" + id)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &topic, nil
}

func (c *Client) ListTopicsByCategory(categoryID string) ([]models.Topic, error) {
	var topics []models.Topic
	resp, err := c.http.R().SetResult(&topics).SetError(&errorBody{}).Get("/topics/category/" + categoryID)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return topics, nil
}

func (c *Client) CreateTopic(payload any) (*models.Topic, error) {
	var topic models.Topic
	resp, err := c.http.R().SetBody(payload).SetResult(&topic).SetError(&errorBody{}).Post("/topics")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &topic, nil
}

func (c *Client) UpdateTopic(id string, payload any) (*models.Topic, error) {
	var topic models.Topic
	resp, err := c.http.R().SetBody(payload).SetResult(&topic).SetError(&errorBody{}).Put("/topics/" + id)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &topic, nil
}

func (c *Client) DeleteTopic(id string) (*DeleteTopicResult, error) {
	var result DeleteTopicResult
	resp, err := c.http.R().SetResult(&result).SetError(&errorBody{}).Delete("/topics/" + id)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &result, nil
}

func (c *Client) ListSubTopics(topicID string) ([]models.SubTopic, error) {
	var subtopics []models.SubTopic
	resp, err := c.http.R().SetResult(&subtopics).SetError(&errorBody{}).Get("/topics/" + topicID + "/subtopics")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return subtopics, nil
}

func (c *Client) GetSubTopic(id string) (*models.SubTopic, error) {
	var subtopic models.SubTopic
	resp, err := c.http.R().SetResult(&subtopic).SetError(&errorBody{}).Get("/topics/subtopics/" + id)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &subtopic, nil
}

func (c *Client) UpsertSubTopic(topicID string, payload any) (*UpsertResult, error) {
	var result UpsertResult
	resp, err := c.http.R().SetBody(payload).SetResult(&result).SetError(&errorBody{}).Post("/topics/" + topicID + "/subtopics")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &result, nil
}

func (c *Client) UpdateSubTopic(id string, payload any) (*models.SubTopic, error) {
	var subtopic models.SubTopic
	resp, err := c.http.R().SetBody(payload).SetResult(&subtopic).SetError(&errorBody{}).Put("/topics/subtopics/" + id)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &subtopic, nil
}

func (c *Client) DeleteSubTopic(id string) (*DeleteSubTopicResult, error) {
	var result DeleteSubTopicResult
	resp, err := c.http.R().SetResult(&result).SetError(&errorBody{}).Delete("/topics/subtopics/" + id)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &result, nil
}

func (c *Client) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	resp, err := c.http.R().SetResult(&categories).SetError(&errorBody{}).Get("/categories")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return categories, nil
}

func (c *Client) GetCategory(id string) (*models.Category, error) {
	var category models.Category
	resp, err := c.http.R().SetResult(&category).SetError(&errorBody{}).Get("/categories/" + id)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &category, nil
}

func (c *Client) CreateCategory(payload any) (*models.Category, error) {
	var category models.Category
	resp, err := c.http.R().SetBody(payload).SetResult(&category).SetError(&errorBody{}).Post("/categories")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &category, nil
}

func (c *Client) UpdateCategory(id string, payload any) (*models.Category, error) {
	var category models.Category
	resp, err := c.http.R().SetBody(payload).SetResult(&category).SetError(&errorBody{}).Put("/categories/" + id)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &category, nil
}

func (c *Client) DeleteCategory(id string) (*DeleteCategoryResult, error) {
	var result DeleteCategoryResult
	resp, err := c.http.R().SetResult(&result).SetError(&errorBody{}).Delete("/categories/" + id)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &result, nil
}

func (c *Client) ShortenLink(url string) (*models.ShortLink, error) {
	var link models.ShortLink
	resp, err := c.http.R().
		SetBody(map[string]string{"url": url}).
		SetResult(&link).SetError(&errorBody{}).
		Post("/links")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &link, nil
}

func (c *Client) GetLinkStats(code string) (*models.ShortLink, error) {
	var link models.ShortLink
	resp, err := c.http.R().SetResult(&link).SetError(&errorBody{}).Get("/links/" + code)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &link, nil
}

func (c *Client) Health() (*HealthStatus, error) {
	var health HealthStatus
	resp, err := c.http.R().SetResult(&health).SetError(&errorBody{}).Get("/health")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &health, nil
}
