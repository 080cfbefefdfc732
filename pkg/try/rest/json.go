package rest

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/ib-77/try/pkg/try"
	"github.com/ib-77/try/pkg/try/jsonx"
)

const contentTypeJSON = "application/json"

func okc[T any](v T) try.Result[T, *try.CompositeError] {
	return try.Success[T, *try.CompositeError](v)
}

func failc[T any](err *try.CompositeError) try.Result[T, *try.CompositeError] {
	return try.Fail[T, *try.CompositeError](err)
}

// exchange is the two-phase round trip behind the JSON verbs: encode the
// request body, perform the call, then decode the response into a T. The
// failure records which phase broke. A non-2xx status is an HTTP-phase
// failure here: the payload is not a T, so decoding it would be noise.
func exchange[T any](ctx context.Context, client *http.Client, method, rawURL string, body any) try.Result[T, *try.CompositeError] {
	var payload io.Reader
	contentType := ""
	if body != nil {
		encoded := jsonx.Marshal(body)
		if encoded.IsFailure() {
			return failc[T](try.CompositeFromJSON(encoded.Err()))
		}
		payload = bytes.NewReader(encoded.Value())
		contentType = contentTypeJSON
	}

	sent := do(ctx, client, method, rawURL, contentType, payload)
	if sent.IsFailure() {
		return failc[T](try.CompositeFromHTTP(sent.Err()))
	}

	read := readAll(sent.Value(), rawURL)
	if read.IsFailure() {
		return failc[T](try.CompositeFromHTTP(read.Err()))
	}

	status := sent.Value().StatusCode
	if status < 200 || status >= 300 {
		return failc[T](try.CompositeFromHTTP(try.NewHTTPError("unexpected status", rawURL, status, nil)))
	}

	decoded := jsonx.Unmarshal[T](read.Value())
	if decoded.IsFailure() {
		return failc[T](try.CompositeFromJSON(decoded.Err()))
	}
	return okc(decoded.Value())
}

// GetJSON performs a GET and decodes the 2xx response body into a T.
func GetJSON[T any](ctx context.Context, client *http.Client, rawURL string) try.Result[T, *try.CompositeError] {
	return exchange[T](ctx, client, http.MethodGet, rawURL, nil)
}

// GetJSONURL is GetJSON for an already-parsed target.
func GetJSONURL[T any](ctx context.Context, client *http.Client, u *url.URL) try.Result[T, *try.CompositeError] {
	return exchange[T](ctx, client, http.MethodGet, urlString(u), nil)
}

// PostJSON encodes body as JSON, POSTs it and decodes the 2xx response
// into a T. An unencodable body fails without a network call.
func PostJSON[T any](ctx context.Context, client *http.Client, rawURL string, body any) try.Result[T, *try.CompositeError] {
	return exchange[T](ctx, client, http.MethodPost, rawURL, body)
}

// PostJSONURL is PostJSON for an already-parsed target.
func PostJSONURL[T any](ctx context.Context, client *http.Client, u *url.URL, body any) try.Result[T, *try.CompositeError] {
	return exchange[T](ctx, client, http.MethodPost, urlString(u), body)
}

// PutJSON is PostJSON with the PUT method.
func PutJSON[T any](ctx context.Context, client *http.Client, rawURL string, body any) try.Result[T, *try.CompositeError] {
	return exchange[T](ctx, client, http.MethodPut, rawURL, body)
}

// PutJSONURL is PutJSON for an already-parsed target.
func PutJSONURL[T any](ctx context.Context, client *http.Client, u *url.URL, body any) try.Result[T, *try.CompositeError] {
	return exchange[T](ctx, client, http.MethodPut, urlString(u), body)
}

// PatchJSON is PostJSON with the PATCH method.
func PatchJSON[T any](ctx context.Context, client *http.Client, rawURL string, body any) try.Result[T, *try.CompositeError] {
	return exchange[T](ctx, client, http.MethodPatch, rawURL, body)
}

// PatchJSONURL is PatchJSON for an already-parsed target.
func PatchJSONURL[T any](ctx context.Context, client *http.Client, u *url.URL, body any) try.Result[T, *try.CompositeError] {
	return exchange[T](ctx, client, http.MethodPatch, urlString(u), body)
}
