package rest

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ib-77/try/pkg/try"
)

// Argument preconditions, wrapped as the cause of the HTTPError they
// produce so callers can detect them with errors.Is.
var (
	ErrNilClient = errors.New("rest: nil http client")
	ErrNoTarget  = errors.New("rest: no target url")
)

func ok[T any](v T) try.Result[T, *try.HTTPError] {
	return try.Success[T, *try.HTTPError](v)
}

func fail[T any](err *try.HTTPError) try.Result[T, *try.HTTPError] {
	return try.Fail[T, *try.HTTPError](err)
}

func urlString(u *url.URL) string {
	if u == nil {
		return ""
	}
	return u.String()
}

// do performs the single blocking collaborator call every operation in this
// package funnels through. Preconditions fail before any network activity;
// transport failures carry the request URI and distinguish cancellation
// from other causes.
func do(ctx context.Context, client *http.Client, method, rawURL, contentType string, body io.Reader) try.Result[*http.Response, *try.HTTPError] {
	if client == nil {
		return fail[*http.Response](try.NewHTTPError("precondition failed", rawURL, 0, ErrNilClient))
	}
	if strings.TrimSpace(rawURL) == "" {
		return fail[*http.Response](try.NewHTTPError("precondition failed", rawURL, 0, ErrNoTarget))
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return fail[*http.Response](try.NewHTTPError("invalid request", rawURL, 0, err))
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := client.Do(req)
	if err != nil {
		message := "request failed"
		if try.IsCancellationError(err) {
			message = "request canceled"
		}
		return fail[*http.Response](try.NewHTTPError(message, rawURL, 0, err))
	}
	return ok(resp)
}

// Get performs a GET and hands back the raw response. A completed round
// trip is a success whatever the status code; the caller owns the body.
func Get(ctx context.Context, client *http.Client, rawURL string) try.Result[*http.Response, *try.HTTPError] {
	return do(ctx, client, http.MethodGet, rawURL, "", nil)
}

// GetURL is Get for an already-parsed target.
func GetURL(ctx context.Context, client *http.Client, u *url.URL) try.Result[*http.Response, *try.HTTPError] {
	return do(ctx, client, http.MethodGet, urlString(u), "", nil)
}

// Post performs a POST with the given content type and body.
func Post(ctx context.Context, client *http.Client, rawURL, contentType string, body io.Reader) try.Result[*http.Response, *try.HTTPError] {
	return do(ctx, client, http.MethodPost, rawURL, contentType, body)
}

// PostURL is Post for an already-parsed target.
func PostURL(ctx context.Context, client *http.Client, u *url.URL, contentType string, body io.Reader) try.Result[*http.Response, *try.HTTPError] {
	return do(ctx, client, http.MethodPost, urlString(u), contentType, body)
}

// Put performs a PUT with the given content type and body.
func Put(ctx context.Context, client *http.Client, rawURL, contentType string, body io.Reader) try.Result[*http.Response, *try.HTTPError] {
	return do(ctx, client, http.MethodPut, rawURL, contentType, body)
}

// PutURL is Put for an already-parsed target.
func PutURL(ctx context.Context, client *http.Client, u *url.URL, contentType string, body io.Reader) try.Result[*http.Response, *try.HTTPError] {
	return do(ctx, client, http.MethodPut, urlString(u), contentType, body)
}

// Patch performs a PATCH with the given content type and body.
func Patch(ctx context.Context, client *http.Client, rawURL, contentType string, body io.Reader) try.Result[*http.Response, *try.HTTPError] {
	return do(ctx, client, http.MethodPatch, rawURL, contentType, body)
}

// PatchURL is Patch for an already-parsed target.
func PatchURL(ctx context.Context, client *http.Client, u *url.URL, contentType string, body io.Reader) try.Result[*http.Response, *try.HTTPError] {
	return do(ctx, client, http.MethodPatch, urlString(u), contentType, body)
}

// Delete performs a DELETE. The collaborator call carries no body.
func Delete(ctx context.Context, client *http.Client, rawURL string) try.Result[*http.Response, *try.HTTPError] {
	return do(ctx, client, http.MethodDelete, rawURL, "", nil)
}

// DeleteURL is Delete for an already-parsed target.
func DeleteURL(ctx context.Context, client *http.Client, u *url.URL) try.Result[*http.Response, *try.HTTPError] {
	return do(ctx, client, http.MethodDelete, urlString(u), "", nil)
}

func readAll(resp *http.Response, rawURL string) try.Result[[]byte, *try.HTTPError] {
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail[[]byte](try.NewHTTPError("body read failed", rawURL, resp.StatusCode, err))
	}
	return ok(data)
}

// GetBytes performs a GET and returns the response body, read to the end
// and closed.
func GetBytes(ctx context.Context, client *http.Client, rawURL string) try.Result[[]byte, *try.HTTPError] {
	res := Get(ctx, client, rawURL)
	if res.IsFailure() {
		return fail[[]byte](res.Err())
	}
	return readAll(res.Value(), rawURL)
}

// GetBytesURL is GetBytes for an already-parsed target.
func GetBytesURL(ctx context.Context, client *http.Client, u *url.URL) try.Result[[]byte, *try.HTTPError] {
	return GetBytes(ctx, client, urlString(u))
}

// GetString performs a GET and returns the response body as a string.
func GetString(ctx context.Context, client *http.Client, rawURL string) try.Result[string, *try.HTTPError] {
	res := GetBytes(ctx, client, rawURL)
	if res.IsFailure() {
		return fail[string](res.Err())
	}
	return ok(string(res.Value()))
}

// GetStringURL is GetString for an already-parsed target.
func GetStringURL(ctx context.Context, client *http.Client, u *url.URL) try.Result[string, *try.HTTPError] {
	return GetString(ctx, client, urlString(u))
}
