// Package translation resolves free text to a translation via external
// HTTP endpoints with a fallback chain, and detects the source script.
package translation

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/avast/retry-go"
	"github.com/sony/gobreaker"
	"resty.dev/v3"

	"github.com/simonggx/remword/internal/config"
)

// Result is a resolved translation. A Confidence of 0 marks the sentinel
// returned when every endpoint failed; callers display it but must not
// trust it.
type Result struct {
	TranslatedText string  `json:"translatedText"`
	SourceLanguage string  `json:"sourceLanguage"`
	Confidence     float64 `json:"confidence"`
}

// Client calls the translation and dictionary endpoints, caching results
// per (text, source, target) triple for the lifetime of the process.
type Client struct {
	httpClient    *resty.Client
	cfg           config.TranslationConfig
	breaker       *gobreaker.CircuitBreaker
	retryAttempts uint

	mu    sync.Mutex
	cache map[string]Result
}

// NewClient creates a translation client from the endpoint config.
func NewClient(cfg config.TranslationConfig) *Client {
	httpClient := resty.New()
	if cfg.TimeoutSec > 0 {
		httpClient.SetTimeout(time.Duration(cfg.TimeoutSec) * time.Second)
	}

	// MyMemory rate-limits anonymous use aggressively. Tripping open after
	// consecutive failures lets the fallback answer without waiting out
	// timeouts on every call.
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "mymemory",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})

	return &Client{
		httpClient:    httpClient,
		cfg:           cfg,
		breaker:       breaker,
		retryAttempts: cfg.RetryAttempts,
		cache:         make(map[string]Result),
	}
}

func (c *Client) Close() error {
	return c.httpClient.Close()
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string  `json:"translatedText"`
		Match          float64 `json:"match"`
	} `json:"responseData"`
	ResponseStatus int `json:"responseStatus"`
}

type libreRequest struct {
	Query  string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type libreResponse struct {
	TranslatedText   string `json:"translatedText"`
	DetectedLanguage *struct {
		Language   string  `json:"language"`
		Confidence float64 `json:"confidence"`
	} `json:"detectedLanguage"`
}

// Translate resolves text to targetLang. sourceLang may be "auto".
// The primary endpoint is MyMemory, with LibreTranslate as fallback; when
// both fail the sentinel Result with Confidence 0 is returned and the
// error is swallowed.
func (c *Client) Translate(ctx context.Context, text, targetLang, sourceLang string) (Result, error) {
	if sourceLang == "" {
		sourceLang = "auto"
	}
	cacheKey := fmt.Sprintf("%s_%s_%s", text, sourceLang, targetLang)

	c.mu.Lock()
	if cached, ok := c.cache[cacheKey]; ok {
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	result, err := c.translateWithMyMemory(ctx, text, targetLang, sourceLang)
	if err != nil {
		slog.Default().Warn("MyMemory translation failed", "error", err, "text", text)

		result, err = c.translateWithLibre(ctx, text, targetLang, sourceLang)
		if err != nil {
			slog.Default().Warn("LibreTranslate failed", "error", err, "text", text)
			return Result{
				TranslatedText: fmt.Sprintf("Translation unavailable for: %s", text),
				SourceLanguage: sourceLang,
				Confidence:     0,
			}, nil
		}
	}

	c.mu.Lock()
	c.cache[cacheKey] = result
	c.mu.Unlock()
	return result, nil
}

func (c *Client) translateWithMyMemory(ctx context.Context, text, targetLang, sourceLang string) (Result, error) {
	langPair := fmt.Sprintf("%s|%s", sourceLang, targetLang)
	if sourceLang == "auto" {
		langPair = fmt.Sprintf("en|%s", targetLang)
	}

	var result Result
	err := retry.Do(
		func() error {
			out, err := c.breaker.Execute(func() (interface{}, error) {
				response, err := c.httpClient.R().
					SetContext(ctx).
					SetQueryParams(map[string]string{
						"q":        text,
						"langpair": langPair,
					}).
					SetResult(&myMemoryResponse{}).
					Get(c.cfg.MyMemoryURL + "/get")
				if err != nil {
					return nil, fmt.Errorf("httpClient.Get > %w", err)
				}
				if response.IsError() {
					return nil, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
				}

				body := response.Result().(*myMemoryResponse)
				if body.ResponseStatus != 200 {
					return nil, fmt.Errorf("MyMemory API error: status %d", body.ResponseStatus)
				}
				return Result{
					TranslatedText: body.ResponseData.TranslatedText,
					SourceLanguage: sourceLang,
					Confidence:     body.ResponseData.Match,
				}, nil
			})
			if err != nil {
				return err
			}
			result = out.(Result)
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.retryAttempts+1),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return Result{}, err
	}
	return result, nil
}

func (c *Client) translateWithLibre(ctx context.Context, text, targetLang, sourceLang string) (Result, error) {
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(libreRequest{
			Query:  text,
			Source: sourceLang,
			Target: targetLang,
			Format: "text",
		}).
		SetResult(&libreResponse{}).
		Post(c.cfg.LibreURL + "/translate")
	if err != nil {
		return Result{}, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return Result{}, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	body := response.Result().(*libreResponse)
	if body.TranslatedText == "" {
		return Result{}, fmt.Errorf("LibreTranslate API error: empty translation")
	}

	result := Result{
		TranslatedText: body.TranslatedText,
		SourceLanguage: sourceLang,
		Confidence:     0.8,
	}
	if body.DetectedLanguage != nil {
		if body.DetectedLanguage.Language != "" {
			result.SourceLanguage = body.DetectedLanguage.Language
		}
		if body.DetectedLanguage.Confidence > 0 {
			result.Confidence = body.DetectedLanguage.Confidence
		}
	}
	return result, nil
}

// ClearCache drops every cached translation.
func (c *Client) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]Result)
}

// CacheSize returns the number of cached translations.
func (c *Client) CacheSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cache)
}

// escapePathSegment keeps words with slashes or spaces from mangling the
// dictionary URL path.
func escapePathSegment(s string) string {
	return url.PathEscape(strings.TrimSpace(s))
}
