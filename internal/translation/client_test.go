package translation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonggx/remword/internal/config"
)

func newTestClient(myMemoryURL, libreURL, dictionaryURL string) *Client {
	return NewClient(config.TranslationConfig{
		MyMemoryURL:   myMemoryURL,
		LibreURL:      libreURL,
		DictionaryURL: dictionaryURL,
		TimeoutSec:    5,
		RetryAttempts: 0,
	})
}

func TestClient_Translate_MyMemory(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "/get", r.URL.Path)
		assert.Equal(t, "hello", r.URL.Query().Get("q"))
		assert.Equal(t, "en|zh", r.URL.Query().Get("langpair"))

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"responseStatus": 200,
			"responseData": map[string]any{
				"translatedText": "你好",
				"match":          0.98,
			},
		}))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "http://unused.invalid", "http://unused.invalid")
	defer client.Close()

	got, err := client.Translate(context.Background(), "hello", "zh", "auto")
	require.NoError(t, err)
	assert.Equal(t, Result{
		TranslatedText: "你好",
		SourceLanguage: "auto",
		Confidence:     0.98,
	}, got)
	assert.Equal(t, 1, requests)
}

func TestClient_Translate_CacheHit(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"responseStatus": 200,
			"responseData": map[string]any{
				"translatedText": "你好",
				"match":          1.0,
			},
		}))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "http://unused.invalid", "http://unused.invalid")
	defer client.Close()
	ctx := context.Background()

	first, err := client.Translate(ctx, "hello", "zh", "auto")
	require.NoError(t, err)
	second, err := client.Translate(ctx, "hello", "zh", "auto")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, requests, "second call must be served from cache")
	assert.Equal(t, 1, client.CacheSize())

	// A different language pair is a different cache key
	_, err = client.Translate(ctx, "hello", "ja", "auto")
	require.NoError(t, err)
	assert.Equal(t, 2, requests)
	assert.Equal(t, 2, client.CacheSize())

	client.ClearCache()
	assert.Equal(t, 0, client.CacheSize())
}

func TestClient_Translate_FallbackToLibre(t *testing.T) {
	// Primary answers 200 but with a failing API status
	myMemory := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"responseStatus": 429,
			"responseData":   map[string]any{"translatedText": ""},
		}))
	}))
	defer myMemory.Close()

	libre := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var body libreRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "hello", body.Query)
		assert.Equal(t, "text", body.Format)

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"translatedText": "你好",
			"detectedLanguage": map[string]any{
				"language":   "en",
				"confidence": 0.92,
			},
		}))
	}))
	defer libre.Close()

	client := newTestClient(myMemory.URL, libre.URL, "http://unused.invalid")
	defer client.Close()

	got, err := client.Translate(context.Background(), "hello", "zh", "auto")
	require.NoError(t, err)
	assert.Equal(t, Result{
		TranslatedText: "你好",
		SourceLanguage: "en",
		Confidence:     0.92,
	}, got)
}

func TestClient_Translate_LibreDefaultConfidence(t *testing.T) {
	myMemory := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer myMemory.Close()

	libre := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"translatedText": "你好",
		}))
	}))
	defer libre.Close()

	client := newTestClient(myMemory.URL, libre.URL, "http://unused.invalid")
	defer client.Close()

	got, err := client.Translate(context.Background(), "hello", "zh", "en")
	require.NoError(t, err)
	assert.Equal(t, Result{
		TranslatedText: "你好",
		SourceLanguage: "en",
		Confidence:     0.8,
	}, got)
}

func TestClient_Translate_SentinelWhenAllFail(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer failing.Close()

	client := newTestClient(failing.URL, failing.URL, "http://unused.invalid")
	defer client.Close()

	got, err := client.Translate(context.Background(), "hello", "zh", "auto")
	require.NoError(t, err)
	assert.Equal(t, Result{
		TranslatedText: "Translation unavailable for: hello",
		SourceLanguage: "auto",
		Confidence:     0,
	}, got)

	// Sentinel results are not cached; a later call may still succeed
	assert.Equal(t, 0, client.CacheSize())
}

func TestClient_Translate_ExplicitSourceLangPair(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ru|en", r.URL.Query().Get("langpair"))
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"responseStatus": 200,
			"responseData": map[string]any{
				"translatedText": "cat",
				"match":          1.0,
			},
		}))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "http://unused.invalid", "http://unused.invalid")
	defer client.Close()

	got, err := client.Translate(context.Background(), "кот", "en", "ru")
	require.NoError(t, err)
	assert.Equal(t, "cat", got.TranslatedText)
	assert.Equal(t, "ru", got.SourceLanguage)
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "chinese", text: "无处不在", want: "zh"},
		{name: "japanese hiragana", text: "ひらがな", want: "ja"},
		{name: "japanese katakana", text: "カタカナ", want: "ja"},
		{name: "korean", text: "안녕하세요", want: "ko"},
		{name: "arabic", text: "مرحبا", want: "ar"},
		{name: "russian", text: "привет", want: "ru"},
		{name: "english", text: "hello world", want: "en"},
		{name: "empty string", text: "", want: "en"},
		{name: "chinese wins over latin", text: "hello 世界", want: "zh"},
		{name: "chinese beats japanese kana in priority", text: "日本語のテキスト", want: "zh"},
		{name: "numbers and punctuation", text: "123 !?", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.text))
		})
	}
}

func TestClient_WordDefinition(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    *WordDefinition
	}{
		{
			name: "normalizes entry and caps definitions at two",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v2/entries/en/ubiquitous", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode([]map[string]any{
					{
						"word":     "ubiquitous",
						"phonetic": "/juːˈbɪk.wɪ.təs/",
						"meanings": []map[string]any{
							{
								"partOfSpeech": "adjective",
								"definitions": []map[string]any{
									{"definition": "Being everywhere at once."},
									{"definition": "Widespread."},
									{"definition": "A third sense that is dropped."},
								},
							},
						},
						"sourceUrls": []string{"https://en.wiktionary.org/wiki/ubiquitous"},
					},
				})
			},
			want: &WordDefinition{
				Word:     "ubiquitous",
				Phonetic: "/juːˈbɪk.wɪ.təs/",
				Definitions: []Definition{
					{
						PartOfSpeech: "adjective",
						Definitions:  []string{"Being everywhere at once.", "Widespread."},
					},
				},
				SourceURLs: []string{"https://en.wiktionary.org/wiki/ubiquitous"},
			},
		},
		{
			name: "not found returns nil without error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			want: nil,
		},
		{
			name: "empty array returns nil",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte("[]"))
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := newTestClient("http://unused.invalid", "http://unused.invalid", server.URL)
			defer client.Close()

			got, err := client.WordDefinition(context.Background(), "ubiquitous")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
