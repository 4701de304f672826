package client

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client is a small API client for the course platform, meant for scripts
// and integration tests.
type Client struct {
	http *resty.Client
}

// Envelope is the platform's JSON response wrapper
type Envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func New(baseURL string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second).
		SetHeader("Content-Type", "application/json")

	return &Client{http: httpClient}
}

// SetToken attaches a bearer token to every following request
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

// ClearToken removes the bearer token
func (c *Client) ClearToken() {
	c.http.SetAuthToken("")
}

func (c *Client) get(path string, out interface{}) error {
	resp, err := c.http.R().Get(path)
	return unwrap(resp, err, out)
}

func (c *Client) post(path string, body, out interface{}) error {
	req := c.http.R()
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Post(path)
	return unwrap(resp, err, out)
}

func unwrap(resp *resty.Response, err error, out interface{}) error {
	if err != nil {
		return err
	}

	var envelope Envelope
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return fmt.Errorf("malformed response (%d): %w", resp.StatusCode(), err)
	}
	if !envelope.Status {
		return fmt.Errorf("request failed (%d): %s", resp.StatusCode(), envelope.Message)
	}
	if out == nil || len(envelope.Data) == 0 {
		return nil
	}
	return json.Unmarshal(envelope.Data, out)
}

// AuthResponse is the register/login payload
type AuthResponse struct {
	User struct {
		ID        uint   `json:"ID"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Role      string `json:"role"`
	} `json:"user"`
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// Register creates an account and stores the returned token on the client
func (c *Client) Register(firstName, lastName, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.post("/auth/register", map[string]string{
		"first_name": firstName,
		"last_name":  lastName,
		"email":      email,
		"password":   password,
	}, &out)
	if err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

// Login signs in and stores the returned token on the client
func (c *Client) Login(email, password string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.post("/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

// GetCourses fetches one page of the catalog. Zero-valued filters are omitted.
func (c *Client) GetCourses(category, level, search string, page, limit int) (json.RawMessage, error) {
	req := c.http.R()
	if category != "" {
		req.SetQueryParam("category", category)
	}
	if level != "" {
		req.SetQueryParam("level", level)
	}
	if search != "" {
		req.SetQueryParam("search", search)
	}
	if page > 0 {
		req.SetQueryParam("page", fmt.Sprint(page))
	}
	if limit > 0 {
		req.SetQueryParam("limit", fmt.Sprint(limit))
	}

	resp, err := req.Get("/course/list")
	var out json.RawMessage
	if err := unwrap(resp, err, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCourse fetches course details with lessons and instructor
func (c *Client) GetCourse(courseID uint) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.get(fmt.Sprintf("/course/%d", courseID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetLessons fetches a course's lesson list
func (c *Client) GetLessons(courseID uint) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.get(fmt.Sprintf("/course/%d/lessons", courseID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Enroll enrolls the signed-in user in a course
func (c *Client) Enroll(courseID uint) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.post(fmt.Sprintf("/course/%d/enroll", courseID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CompleteLesson marks a lesson as completed
func (c *Client) CompleteLesson(courseID, lessonID uint) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.post(fmt.Sprintf("/course/%d/lesson/%d/complete", courseID, lessonID), nil, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// QuizResult is the graded outcome of a quiz submission
type QuizResult struct {
	Correct bool `json:"correct"`
	Score   int  `json:"score"`
}

// SubmitQuiz submits a zero-based answer index for a lesson's quiz
func (c *Client) SubmitQuiz(courseID, lessonID uint, answer int) (*QuizResult, error) {
	var out QuizResult
	err := c.post(fmt.Sprintf("/course/%d/lesson/%d/quiz", courseID, lessonID), map[string]int{
		"answer": answer,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProgress fetches the signed-in user's progress for a course
func (c *Client) GetProgress(courseID uint) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.get(fmt.Sprintf("/course/%d/progress", courseID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDashboard fetches the signed-in user's dashboard
func (c *Client) GetDashboard() (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.get("/user/dashboard", &out); err != nil {
		return nil, err
	}
	return out, nil
}
