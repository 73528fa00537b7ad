package whop

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/IsaacDSC/trendforge/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noSleep(ctx context.Context, d time.Duration) error { return nil }

type recorded struct {
	path        string
	rawPath     string
	rawQuery    string
	contentType string
	body        []byte
	fileName    string
	fileType    string
	fileBody    string
	productID   string
}

func newServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*httptest.Server, *[]recorded) {
	t.Helper()
	var (
		mu    sync.Mutex
		calls []recorded
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer whop-key", r.Header.Get("Authorization"))

		rec := recorded{
			path:        r.URL.Path,
			rawPath:     r.URL.EscapedPath(),
			rawQuery:    r.URL.RawQuery,
			contentType: r.Header.Get("Content-Type"),
		}
		if strings.HasPrefix(rec.contentType, "multipart/form-data") {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			f, fh, err := r.FormFile("file")
			require.NoError(t, err)
			b, _ := io.ReadAll(f)
			rec.fileName = fh.Filename
			rec.fileType = fh.Header.Get("Content-Type")
			rec.fileBody = string(b)
			rec.productID = r.FormValue("product_id")
		} else {
			rec.body, _ = io.ReadAll(r.Body)
		}

		mu.Lock()
		calls = append(calls, rec)
		mu.Unlock()

		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	return srv, &calls
}

func TestClient_CreateProduct(t *testing.T) {
	t.Run("Given a created product, when content exists, then it is inlined and uploaded", func(t *testing.T) {
		srv, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/files") {
				w.WriteHeader(http.StatusCreated)
				return
			}
			w.Write([]byte(`{"data":{"id":"prod_42"}}`))
		})

		content := strings.Repeat("x", 6000)
		res, err := New("whop-key", WithBaseURL(srv.URL)).CreateProduct(context.Background(), "store_1", Product{
			Name:        "Focus OS: 30 Days!",
			Description: "Ship faster",
			Content:     content,
			PriceUSD:    197,
		})
		require.NoError(t, err)

		assert.Equal(t, "prod_42", res.ProductID)
		assert.Equal(t, "https://whop.com/products/prod_42", res.ProductURL)

		require.Len(t, *calls, 2)
		create := (*calls)[0]
		assert.Equal(t, "/api/v2/stores/store_1/products", create.path)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(create.body, &payload))
		assert.Equal(t, "digital", payload["type"])
		assert.Equal(t, float64(197), payload["price"])
		assert.Equal(t, []any{}, payload["tags"])
		assert.Equal(t, "Ship faster\n\n---\n\n"+strings.Repeat("x", 5000), payload["description"])

		upload := (*calls)[1]
		assert.Equal(t, "/api/v2/stores/store_1/products/prod_42/files", upload.path)
		assert.Equal(t, "Focus_OS__30_Days_.md", upload.fileName)
		assert.Equal(t, "text/markdown", upload.fileType)
		assert.Equal(t, content, upload.fileBody)
		assert.Equal(t, "prod_42", upload.productID)
	})

	t.Run("Given a failing upload, when creating, then the product is still returned", func(t *testing.T) {
		srv, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/files") {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.Write([]byte(`{"id":"prod_1","url":"https://whop.com/acme/focus"}`))
		})

		res, err := New("whop-key", WithBaseURL(srv.URL)).CreateProduct(context.Background(), "s", Product{Name: "n", Content: "c"})
		require.NoError(t, err)
		assert.Equal(t, "https://whop.com/acme/focus", res.ProductURL)
	})

	t.Run("Given a 422, when creating, then a non-retried status error", func(t *testing.T) {
		srv, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"error":"name required"}`))
		})

		_, err := New("whop-key", WithBaseURL(srv.URL), WithRetry(retry.WithSleep(noSleep))).
			CreateProduct(context.Background(), "s", Product{})

		var se *retry.StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, http.StatusUnprocessableEntity, se.StatusCode)
		assert.Contains(t, se.Body, "name required")
		assert.Len(t, *calls, 1)
	})

	t.Run("Given a 502 then success, when creating, then the call is retried", func(t *testing.T) {
		var mu sync.Mutex
		n := 0
		srv, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			n++
			first := n == 1
			mu.Unlock()
			if first {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.Write([]byte(`{"id":"prod_9"}`))
		})

		res, err := New("whop-key", WithBaseURL(srv.URL), WithRetry(retry.WithSleep(noSleep))).
			CreateProduct(context.Background(), "s", Product{Name: "n"})
		require.NoError(t, err)
		assert.Equal(t, "prod_9", res.ProductID)
		assert.Len(t, *calls, 2, "no upload without content")
	})
}

func TestClient_CreateDraftPost(t *testing.T) {
	srv, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"post_7"}`))
	})

	res, err := New("whop-key", WithBaseURL(srv.URL)).CreateDraftPost(context.Background(), "comm_1", Post{Title: "Launch", Content: "Now live"})
	require.NoError(t, err)

	assert.Equal(t, "post_7", res.PostID)
	assert.Equal(t, "https://whop.com/communities/comm_1/posts/post_7", res.PostURL)

	require.Len(t, *calls, 1)
	assert.Equal(t, "/api/v2/communities/comm_1/posts", (*calls)[0].path)
	assert.JSONEq(t, `{"title":"Launch","content":"Now live","status":"draft"}`, string((*calls)[0].body))
}

func TestClient_IDsStayInOnePathSegment(t *testing.T) {
	srv, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/files") {
			w.WriteHeader(http.StatusCreated)
			return
		}
		w.Write([]byte(`{"id":"prod/1"}`))
	})
	c := New("whop-key", WithBaseURL(srv.URL))

	res, err := c.CreateProduct(context.Background(), "s/../../companies/x?foo=", Product{Name: "Kit", Content: "# Kit"})
	require.NoError(t, err)
	assert.Equal(t, "https://whop.com/products/prod%2F1", res.ProductURL)

	_, err = c.CreateDraftPost(context.Background(), "c#frag", Post{Title: "Launch"})
	require.NoError(t, err)

	require.Len(t, *calls, 3)
	assert.Equal(t, "/api/v2/stores/s%2F..%2F..%2Fcompanies%2Fx%3Ffoo=/products", (*calls)[0].rawPath)
	assert.Empty(t, (*calls)[0].rawQuery)
	assert.Equal(t, "/api/v2/stores/s%2F..%2F..%2Fcompanies%2Fx%3Ffoo=/products/prod%2F1/files", (*calls)[1].rawPath)
	assert.Equal(t, "/api/v2/communities/c%23frag/posts", (*calls)[2].rawPath)
}

func TestClient_RejectsDotAndEmptyIDs(t *testing.T) {
	srv, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"x"}`))
	})
	c := New("whop-key", WithBaseURL(srv.URL))

	for _, id := range []string{"", " ", ".", ".."} {
		_, err := c.CreateProduct(context.Background(), id, Product{Name: "Kit"})
		assert.ErrorIs(t, err, InvalidID, "store %q", id)

		_, err = c.CreateDraftPost(context.Background(), id, Post{Title: "Launch"})
		assert.ErrorIs(t, err, InvalidID, "community %q", id)
	}

	assert.Empty(t, *calls)
}

func TestSafeFileName(t *testing.T) {
	assert.Equal(t, "AI_Tutor_Kit_v2.md", SafeFileName("AI Tutor Kit v2"))
	assert.Equal(t, "Caf__.md", SafeFileName("Café!"))
}
