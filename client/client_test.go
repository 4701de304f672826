package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginStoresToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "jane@example.com", body["email"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  true,
			"message": "Login successful!",
			"data": map[string]interface{}{
				"token":      "test-token",
				"expires_in": 86400,
			},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	resp, err := c.Login("jane@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "test-token", resp.Token)
}

func TestTokenSentOnFollowingRequests(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  true,
			"message": "ok",
			"data":    map[string]interface{}{},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetToken("test-token")

	_, err := c.GetDashboard()
	require.NoError(t, err)
}

func TestSubmitQuiz(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/course/1/lesson/3/quiz", r.URL.Path)

		var body map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 1, body["answer"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  true,
			"message": "Answer submitted!",
			"data":    map[string]interface{}{"correct": true, "score": 100},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	result, err := c.SubmitQuiz(1, 3, 1)
	require.NoError(t, err)
	assert.True(t, result.Correct)
	assert.Equal(t, 100, result.Score)
}

func TestErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  false,
			"message": "Please enroll in this course first!",
			"data":    nil,
		})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.GetProgress(42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enroll in this course")
}

func TestCourseListQueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "Programming", query.Get("category"))
		assert.Equal(t, "BEGINNER", query.Get("level"))
		assert.Equal(t, "2", query.Get("page"))
		assert.Empty(t, query.Get("search"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  true,
			"message": "ok",
			"data":    map[string]interface{}{"courses": []interface{}{}},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.GetCourses("Programming", "BEGINNER", "", 2, 0)
	require.NoError(t, err)
}
