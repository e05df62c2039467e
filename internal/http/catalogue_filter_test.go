package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCatalogueNoMatchesRendersEmptyList(t *testing.T) {
	app, db, _ := newTestApp(t)
	// Nothing in the seed set is both unavailable and priced over 1000.
	_, _ = db.Exec(`UPDATE products SET available=1`)

	resp, err := app.Test(httptest.NewRequest("GET", "/catalogue?is_available=false", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "No products match") {
		t.Fatalf("expected empty-list message, got %s", body)
	}
}

func TestCatalogueBlankFiltersAreNoOps(t *testing.T) {
	app, _, _ := newTestApp(t)

	plain, err := app.Test(httptest.NewRequest("GET", "/catalogue", nil))
	if err != nil {
		t.Fatal(err)
	}
	blank, err := app.Test(httptest.NewRequest("GET", "/catalogue?q=&category=+&brand=&price_min=&price_max=&condition=&is_available=", nil))
	if err != nil {
		t.Fatal(err)
	}
	b1, _ := io.ReadAll(plain.Body)
	b2, _ := io.ReadAll(blank.Body)
	count := func(b []byte) int { return strings.Count(string(b), "<li>") }
	if count(b1) == 0 || count(b1) != count(b2) {
		t.Fatalf("blank filters changed the result set: %d vs %d", count(b1), count(b2))
	}
}

func TestCatalogueMalformedPriceFailsClosed(t *testing.T) {
	app, _, _ := newTestApp(t)

	for _, qs := range []string{"price_min=abc", "price_max=12x", "price_min=-5"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/catalogue?"+qs, nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", qs, resp.StatusCode)
		}
	}
}

// A failing read degrades to an empty listing, never a 500.
func TestCatalogueReadFailureDegradesGracefully(t *testing.T) {
	app, db, _ := newTestApp(t)
	if _, err := db.Exec(`DROP TABLE products`); err != nil {
		t.Fatal(err)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/catalogue?q=sac", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected degraded 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "No products match") {
		t.Fatalf("expected empty listing, got %s", body)
	}
}

func TestSitemapListsProducts(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/sitemap.xml", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "xml") {
		t.Fatalf("expected xml content type, got %q", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	s := string(body)
	if !strings.Contains(s, "<urlset") || !strings.Contains(s, "/product/sac-cuir-001") {
		t.Fatalf("sitemap missing product entries: %s", s)
	}
}
