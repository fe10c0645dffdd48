package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostSchedulerValues(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody []byte

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	logger, _ := logtest.NewNullLogger()
	client := NewClient(ts.URL, logger)

	report := ValuesReport{
		NodeID:  7,
		Outputs: map[string]WidgetValue{"steps": {Value: 20.0}},
	}
	err := client.PostSchedulerValues(context.Background(), report)
	require.NoError(t, err)

	assert.Equal(t, APIPrefix+SchedulerValuesPath, gotPath)
	assert.Equal(t, "application/json", gotContentType)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(gotBody, &decoded))
	assert.Equal(t, 7.0, decoded["node_id"])
	outputs := decoded["outputs"].(map[string]any)
	steps := outputs["steps"].(map[string]any)
	assert.Equal(t, 20.0, steps["value"])
}

func TestPostSchedulerValuesBackendError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer ts.Close()

	logger, _ := logtest.NewNullLogger()
	client := NewClient(ts.URL, logger)

	err := client.PostSchedulerValues(context.Background(), ValuesReport{NodeID: 1})
	assert.Error(t, err)
}

func TestPostSchedulerValuesConnectionRefused(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	client := NewClient("http://127.0.0.1:1", logger)

	err := client.PostSchedulerValues(context.Background(), ValuesReport{NodeID: 1})
	assert.Error(t, err)
}
