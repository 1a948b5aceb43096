package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const addTrendPath = "/functions/v1/add-trending-url"

func TestAddTrendingURL_RejectsUnsupportedPlatforms(t *testing.T) {
	for _, platform := range []string{"myspace", "", "tik tok", "facebook"} {
		t.Run(platform, func(t *testing.T) {
			env := newTestEnv(t)
			status, body := env.post(t, addTrendPath, "", map[string]interface{}{
				"platform":  platform,
				"video_url": "https://www.tiktok.com/@creator/video/123",
			})

			assert.Equal(t, http.StatusBadRequest, status)
			assert.Contains(t, body["error"], "Invalid platform")
			assert.Empty(t, env.store.upserted)
		})
	}
}

func TestAddTrendingURL_RejectsBadVideoURL(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing", `{"platform":"tiktok"}`},
		{"empty", `{"platform":"tiktok","video_url":"  "}`},
		{"number", `{"platform":"tiktok","video_url":42}`},
		{"object", `{"platform":"tiktok","video_url":{"href":"https://x.y"}}`},
		{"not a url", `{"platform":"tiktok","video_url":"just words"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			status, body := env.post(t, addTrendPath, "", tt.body)

			assert.Equal(t, http.StatusBadRequest, status)
			assert.NotEmpty(t, body["error"])
			assert.Empty(t, env.store.upserted)
		})
	}
}

func TestAddTrendingURL_Upserts(t *testing.T) {
	env := newTestEnv(t)
	status, body := env.post(t, addTrendPath, "", map[string]interface{}{
		"platform":    " TikTok ",
		"video_url":   "https://www.tiktok.com/@creator/video/123",
		"view_count":  1500000,
		"brand_notes": "swap the dog for a realtor",
	})

	require.Equal(t, http.StatusOK, status, body)
	require.Len(t, env.store.upserted, 1)
	saved := env.store.upserted[0]
	assert.Equal(t, "tiktok", saved.Platform)
	assert.Equal(t, "general", saved.Category)
	assert.Equal(t, "Untitled trend", saved.Title)
	assert.Equal(t, int64(1500000), saved.ViewCount)
	require.NotNil(t, saved.BrandNotes)
	assert.Nil(t, saved.ThumbnailURL)

	trend, ok := body["trend"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "tiktok", trend["platform"])
	assert.Equal(t, "https://www.tiktok.com/@creator/video/123", trend["source_url"])
	assert.NotEmpty(t, trend["id"])
}

func TestAddTrendingURL_StoreError(t *testing.T) {
	env := newTestEnv(t)
	env.store.upsertErr = errors.New("connection refused")

	status, body := env.post(t, addTrendPath, "", map[string]interface{}{
		"platform":  "youtube",
		"video_url": "https://youtube.com/shorts/abc",
	})

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "connection refused", body["error"])
}

func TestFunctions_PreflightReturnsEmpty200(t *testing.T) {
	env := newTestEnv(t)
	for _, path := range []string{addTrendPath, "/functions/v1/recreate-from-url", "/functions/v1/purchase-credits"} {
		status, body := env.call(t, http.MethodOptions, path, "", nil)
		assert.Equal(t, http.StatusOK, status, path)
		assert.Empty(t, body, path)
	}
}
