package httplink

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type linkRecorder struct {
	mu    sync.Mutex
	links []string
}

func (r *linkRecorder) record(link string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.links = append(r.links, link)
}

func (r *linkRecorder) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.links...)
}

func startServer(t *testing.T, opts ...Option) *Server {
	t.Helper()

	server, err := Start("127.0.0.1:0", opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = server.Close() })
	return server
}

func get(t *testing.T, target string) (int, string) {
	t.Helper()

	resp, err := http.Get(target)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestServerDeliversPathAsDeepLink(t *testing.T) {
	t.Parallel()

	server := startServer(t)
	recorder := &linkRecorder{}
	sub, err := server.SubscribeURLs(recorder.record)
	require.NoError(t, err)
	defer sub.Remove()

	status, body := get(t, server.BaseURL()+"/oauth2/callback?token=abc123")
	assert.Equal(t, http.StatusAccepted, status)
	assert.Contains(t, body, "Link received")
	assert.Equal(t, []string{"foodorder://oauth2/callback?token=abc123"}, recorder.recorded())
}

func TestServerOpenDeliversURLVerbatim(t *testing.T) {
	t.Parallel()

	server := startServer(t, WithScheme("shop://"))
	recorder := &linkRecorder{}
	_, err := server.SubscribeURLs(recorder.record)
	require.NoError(t, err)

	link := "https://shop.example/vnpay-return?vnp_ResponseCode=00&vnp_TransactionStatus=00"
	status, _ := get(t, server.BaseURL()+"/open?url="+url.QueryEscape(link))
	assert.Equal(t, http.StatusAccepted, status)

	status, _ = get(t, server.BaseURL()+"/payment-success?orderID=1")
	assert.Equal(t, http.StatusAccepted, status)

	assert.Equal(t, []string{link, "shop://payment-success?orderID=1"}, recorder.recorded())
}

func TestServerWithoutSubscribers(t *testing.T) {
	t.Parallel()

	server := startServer(t)
	recorder := &linkRecorder{}
	sub, err := server.SubscribeURLs(recorder.record)
	require.NoError(t, err)
	sub.Remove()

	status, _ := get(t, server.BaseURL()+"/momo-return?resultCode=0")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Empty(t, recorder.recorded())
	assert.ErrorIs(t, server.Deliver("foodorder://x"), ErrNoSubscribers)
}

func TestServerRejectsBadRequests(t *testing.T) {
	t.Parallel()

	server := startServer(t)
	_, err := server.SubscribeURLs(func(string) {})
	require.NoError(t, err)

	status, _ := get(t, server.BaseURL()+"/")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = get(t, server.BaseURL()+"/open")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = get(t, server.BaseURL()+"/healthz")
	assert.Equal(t, http.StatusOK, status)
}

func TestServerInitialURL(t *testing.T) {
	t.Parallel()

	server := startServer(t, WithLaunchURL("foodorder://payment-success?orderID=5"))

	got, err := server.InitialURL(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "foodorder://payment-success?orderID=5", got)
}

func TestServerCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	server, err := Start("")
	require.NoError(t, err)

	require.NoError(t, server.Close())
	require.NoError(t, server.Close())

	_, open := <-server.Errors()
	assert.False(t, open)
}
