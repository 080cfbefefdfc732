package tests

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/try/pkg/try"
	"github.com/ib-77/try/pkg/try/chain"
	"github.com/ib-77/try/pkg/try/coll"
	"github.com/ib-77/try/pkg/try/file"
	"github.com/ib-77/try/pkg/try/jsonx"
	"github.com/ib-77/try/pkg/try/parse"
	"github.com/ib-77/try/pkg/try/rest"
)

type article struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Price     string `json:"price"`
	UpdatedAt string `json:"updated_at"`
}

const catalogJSON = `[
	{"id":"6ba7b810-9dad-11d1-80b4-00c04fd430c8","title":"wiring go services","price":"19.99","updated_at":"2026-08-21T10:30:00Z"},
	{"id":"6ba7b811-9dad-11d1-80b4-00c04fd430c8","title":"parsing in anger","price":"24.50","updated_at":"2026-08-20T08:00:00Z"}
]`

func newCatalogServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/articles" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, catalogJSON)
	}))
}

// TestFetchDecodeStorePipeline walks one value through every toolkit: fetch
// a catalog over HTTP, pick an entry, parse its fields, then write it to
// disk and read it back unchanged.
func TestFetchDecodeStorePipeline(t *testing.T) {
	srv := newCatalogServer()
	defer srv.Close()

	ctx := context.Background()

	fetched := rest.GetJSON[[]article](ctx, srv.Client(), srv.URL+"/articles")
	require.True(t, fetched.IsSuccess(), "fetch: %v", fetched.Err())
	assert.Len(t, fetched.Value(), 2)

	first := coll.First(fetched.Value())
	require.True(t, first.IsSuccess(), "first: %v", first.Err())

	id := parse.UUID(first.Value().ID)
	require.True(t, id.IsSuccess(), "uuid: %v", id.Err())

	price := parse.Decimal(first.Value().Price)
	require.True(t, price.IsSuccess(), "price: %v", price.Err())
	assert.True(t, price.Value().Equal(decimal.RequireFromString("19.99")))

	updated := parse.Time(first.Value().UpdatedAt)
	require.True(t, updated.IsSuccess(), "time: %v", updated.Err())
	assert.Equal(t, 2026, updated.Value().Year())

	encoded := jsonx.MarshalString(first.Value())
	require.True(t, encoded.IsSuccess(), "encode: %v", encoded.Err())

	path := filepath.Join(t.TempDir(), "article.json")
	stored := file.WriteText(path, encoded.Value())
	require.True(t, stored.IsSuccess(), "write: %v", stored.Err())

	back := file.ReadText(path)
	require.True(t, back.IsSuccess(), "read: %v", back.Err())

	decoded := jsonx.UnmarshalString[article](back.Value())
	require.True(t, decoded.IsSuccess(), "decode: %v", decoded.Err())
	assert.Equal(t, first.Value(), decoded.Value())
}

// TestFailuresStayClassified drives one failure through each toolkit and
// checks the taxonomy code that comes out the other side.
func TestFailuresStayClassified(t *testing.T) {
	srv := newCatalogServer()
	target := srv.URL
	srv.Close()

	var m map[string]int

	failures := []struct {
		name string
		err  try.Error
		code try.Code
	}{
		{"collection", coll.Get(m, "absent").Err(), try.CodeCollection},
		{"file", file.ReadText(filepath.Join(t.TempDir(), "absent.txt")).Err(), try.CodeFile},
		{"json", jsonx.UnmarshalString[article](`{"id":`).Err(), try.CodeJSON},
		{"parse", parse.Int("not a number").Err(), try.CodeParse},
		{"http", rest.Get(context.Background(), nil, target).Err(), try.CodeHTTP},
		{"composite", rest.GetJSON[[]article](context.Background(), http.DefaultClient, target).Err(), try.CodeHTTPJSON},
	}

	for _, f := range failures {
		require.NotNil(t, f.err, f.name)
		assert.Equal(t, f.code, f.err.Code(), f.name)
		assert.NotEmpty(t, f.err.Error(), f.name)
	}
}

// TestChainWithFallback composes parse results fluently: a failed parse
// falls back to zero, a successful one is transformed in place.
func TestChainWithFallback(t *testing.T) {
	zero := chain.FromValue[decimal.Decimal, *try.ParseError](decimal.Zero)

	bad := chain.Start(parse.Decimal("oops")).Or(zero).Result()
	require.True(t, bad.IsSuccess(), "fallback: %v", bad.Err())
	assert.True(t, bad.Value().IsZero())

	doubled := chain.Start(parse.Decimal("10.25")).
		Map(func(d decimal.Decimal) decimal.Decimal { return d.Mul(decimal.NewFromInt(2)) }).
		Result()
	require.True(t, doubled.IsSuccess(), "doubled: %v", doubled.Err())
	assert.True(t, doubled.Value().Equal(decimal.RequireFromString("20.5")))
}

// TestFinallyCollapsesAcrossToolkits reduces both outcomes of a parse to a
// plain string with one call.
func TestFinallyCollapsesAcrossToolkits(t *testing.T) {
	render := func(res try.Result[int, *try.ParseError]) string {
		return try.Finally(res,
			func(v int) string { return fmt.Sprintf("value %d", v) },
			func(err *try.ParseError) string { return "no value" },
		)
	}

	assert.Equal(t, "value 21", render(parse.Int("21")))
	assert.Equal(t, "no value", render(parse.Int("twenty-one")))
}
