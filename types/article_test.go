package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDecodeFeed(t *testing.T) {
	data := []byte(`{"articles":[{"id":1,"title":"A","summary":"S","content":"C","date":"2024-01-01T00:00:00Z","image":"http://x/i.png"}],"lastUpdate":"2024-01-02T00:00:00Z"}`)

	feed, err := DecodeFeed(data)
	if err != nil {
		t.Fatalf("DecodeFeed error: %v", err)
	}
	if len(feed.Articles) != 1 {
		t.Fatalf("got %d articles; want 1", len(feed.Articles))
	}
	a := feed.Articles[0]
	if a.ID != 1 || a.Title != "A" || a.Summary != "S" || a.Content != "C" || a.Image != "http://x/i.png" {
		t.Fatalf("unexpected article: %+v", a)
	}
	if !a.Date.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date = %v", a.Date)
	}
	if feed.LastUpdate == nil || !feed.LastUpdate.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("lastUpdate = %v", feed.LastUpdate)
	}
}

func TestDecodeFeedTolerance(t *testing.T) {
	cases := []struct {
		name          string
		body          string
		wantArticles  int
		wantLastUpate bool
		wantErr       bool
		wantSkipped   int
	}{
		{"missing articles", `{}`, 0, false, false, 0},
		{"null articles", `{"articles":null}`, 0, false, false, 0},
		{"missing lastUpdate", `{"articles":[{"id":3}]}`, 1, false, false, 0},
		{"unparseable lastUpdate", `{"articles":[],"lastUpdate":"yesterday-ish"}`, 0, false, false, 0},
		{"extra fields", `{"articles":[{"id":1,"author":"x"}],"version":2}`, 1, false, false, 0},
		{"mistyped entries dropped", `{"articles":[{"id":1,"title":"A"},{"id":"2","title":"B"},{"id":3,"title":7}],"lastUpdate":"2024-01-02T00:00:00Z"}`, 1, true, false, 2},
		{"non-object entries dropped", `{"articles":[null,"x",4,{"id":5}]}`, 1, false, false, 3},
		{"not json", `<html>oops</html>`, 0, false, true, 0},
		{"wrong shape", `[1,2,3]`, 0, false, true, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			feed, err := DecodeFeed([]byte(c.body))
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error, got feed %+v", feed)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeFeed error: %v", err)
			}
			if feed.Articles == nil {
				t.Fatalf("Articles must never be nil")
			}
			if len(feed.Articles) != c.wantArticles {
				t.Fatalf("got %d articles; want %d", len(feed.Articles), c.wantArticles)
			}
			if feed.Skipped != c.wantSkipped {
				t.Fatalf("skipped = %d; want %d", feed.Skipped, c.wantSkipped)
			}
			if (feed.LastUpdate != nil) != c.wantLastUpate {
				t.Fatalf("lastUpdate present = %v; want %v", feed.LastUpdate != nil, c.wantLastUpate)
			}
		})
	}
}

func TestTimestampUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"rfc3339", `"2024-03-05T10:20:30Z"`, time.Date(2024, 3, 5, 10, 20, 30, 0, time.UTC)},
		{"offset", `"2024-03-05T12:20:30+02:00"`, time.Date(2024, 3, 5, 10, 20, 30, 0, time.UTC)},
		{"date only", `"2024-03-05"`, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"millis", `1704067200000`, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"null", `null`, time.Time{}},
		{"garbage", `"not a date"`, time.Time{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var ts Timestamp
			if err := json.Unmarshal([]byte(c.raw), &ts); err != nil {
				t.Fatalf("Unmarshal(%s) error: %v", c.raw, err)
			}
			if !ts.Equal(c.want) {
				t.Fatalf("Unmarshal(%s) = %v; want %v", c.raw, ts.Time, c.want)
			}
		})
	}
}

func TestTimestampMarshal(t *testing.T) {
	b, err := json.Marshal(NewTimestamp(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(b) != `"2024-01-02T00:00:00Z"` {
		t.Fatalf("Marshal = %s", b)
	}

	b, _ = json.Marshal(Timestamp{})
	if string(b) != "null" {
		t.Fatalf("Marshal(zero) = %s; want null", b)
	}
}

func TestFindArticle(t *testing.T) {
	list := []Article{{ID: 2, Title: "first"}, {ID: 5}, {ID: 2, Title: "second"}}

	a, ok := FindArticle(list, 2)
	if !ok || a.Title != "first" {
		t.Fatalf("FindArticle(2) = %+v, %v; want first match", a, ok)
	}
	if _, ok := FindArticle(list, 9999); ok {
		t.Fatalf("FindArticle(9999) should not resolve")
	}
}
