package catalog

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/amonetti/nocwatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRoundTripper is a mock for http.RoundTripper.
type mockRoundTripper struct {
	response *http.Response
	err      error

	gotURL string
}

func (m *mockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	m.gotURL = req.URL.String()
	return m.response, m.err
}

func TestNewClient_HasTimeout(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client := NewClient(logger, "https://shop.example/_Marche.aspx")

	assert.Equal(t, requestTimeout, client.client.Timeout)
	assert.Positive(t, client.client.Timeout)
}

func newTestClient(rt http.RoundTripper, baseURL string) *Client {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := NewClient(logger, baseURL)
	client.client = &http.Client{Transport: rt}
	return client
}

func TestFetchBrands(t *testing.T) {
	brandsHTML := `
	<html>
	<body>
		<a class="txtelenco" href="#">CANON</a>
		<a class="txtelenco" href="#"> LEICA </a>
		<a class="other" href="#">IGNORED</a>
		<a class="txtelenco" href="#">NIKON</a>
	</body>
	</html>`

	t.Run("successful parsing keeps page order", func(t *testing.T) {
		mock := &mockRoundTripper{response: &http.Response{
			StatusCode: http.StatusOK,
			Status:     "200 OK",
			Body:       io.NopCloser(strings.NewReader(brandsHTML)),
		}}
		client := newTestClient(mock, "https://shop.example/_Marche.aspx")

		brands, err := client.FetchBrands(t.Context(), models.CategoryLens)

		require.NoError(t, err)
		assert.Equal(t, []string{"CANON", "LEICA", "NIKON"}, brands)
		assert.Contains(t, mock.gotURL, "Tipo=OB")
		assert.Contains(t, mock.gotURL, "Bottega=Usato")
	})

	t.Run("camera category uses camera code", func(t *testing.T) {
		mock := &mockRoundTripper{response: &http.Response{
			StatusCode: http.StatusOK,
			Status:     "200 OK",
			Body:       io.NopCloser(strings.NewReader("")),
		}}
		client := newTestClient(mock, "https://shop.example/_Marche.aspx")

		brands, err := client.FetchBrands(t.Context(), models.CategoryCamera)

		require.NoError(t, err)
		assert.Empty(t, brands)
		assert.Contains(t, mock.gotURL, "Tipo=CO")
	})

	t.Run("transport error is returned", func(t *testing.T) {
		mock := &mockRoundTripper{err: errors.New("network error")}
		client := newTestClient(mock, "https://shop.example/_Marche.aspx")

		_, err := client.FetchBrands(t.Context(), models.CategoryLens)

		require.Error(t, err)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		mock := &mockRoundTripper{response: &http.Response{
			StatusCode: http.StatusServiceUnavailable,
			Status:     "503 Service Unavailable",
			Body:       io.NopCloser(strings.NewReader("")),
		}}
		client := newTestClient(mock, "https://shop.example/_Marche.aspx")

		_, err := client.FetchBrands(t.Context(), models.CategoryLens)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status code error")
	})
}
