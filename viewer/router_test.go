package viewer

import "testing"

func TestParseFragment(t *testing.T) {
	cases := []struct {
		in      string
		wantID  int
		wantHit FragmentMatch
	}{
		{"", 0, FragmentNone},
		{"#", 0, FragmentNone},
		{"about", 0, FragmentNone},
		{"#article-12", 12, FragmentArticle},
		{"article-0", 0, FragmentArticle},
		{"article--3", -3, FragmentArticle},
		{"article-007", 7, FragmentArticle},
		{"article-", 0, FragmentBadArticle},
		{"article-abc", 0, FragmentBadArticle},
		{"article-7abc", 0, FragmentBadArticle},
		{"article-1.5", 0, FragmentBadArticle},
		{"Article-1", 0, FragmentNone},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			id, hit := ParseFragment(c.in)
			if id != c.wantID || hit != c.wantHit {
				t.Fatalf("ParseFragment(%q) = %d, %v; want %d, %v", c.in, id, hit, c.wantID, c.wantHit)
			}
		})
	}
}

func TestRoute(t *testing.T) {
	loaded := State{Articles: articles(3)}
	two := 2
	detail := State{Articles: loaded.Articles, CurrentArticleID: &two}

	cases := []struct {
		name         string
		state        State
		event        Event
		wantView     View
		wantID       int
		wantFragment FragmentAction
		wantValue    string
		wantDiag     bool
	}{
		{"startup empty fragment", loaded, StartupEvent{Fragment: ""}, ViewGrid, 0, FragmentClear, "", false},
		{"startup canonical", loaded, StartupEvent{Fragment: "article-2"}, ViewDetail, 2, FragmentKeep, "", false},
		{"change canonical with hash", loaded, FragmentChangeEvent{Fragment: "#article-3"}, ViewDetail, 3, FragmentKeep, "", false},
		{"non canonical digits", loaded, FragmentChangeEvent{Fragment: "article-01"}, ViewDetail, 1, FragmentAssign, "article-1", false},
		{"plus sign", loaded, FragmentChangeEvent{Fragment: "article-+2"}, ViewDetail, 2, FragmentAssign, "article-2", false},
		{"unknown id", loaded, FragmentChangeEvent{Fragment: "article-9999"}, ViewGrid, 0, FragmentClear, "", true},
		{"non numeric id", loaded, FragmentChangeEvent{Fragment: "article-x"}, ViewGrid, 0, FragmentClear, "", true},
		{"missing id", detail, FragmentChangeEvent{Fragment: "article-"}, ViewGrid, 0, FragmentClear, "", true},
		{"other fragment", detail, FragmentChangeEvent{Fragment: "top"}, ViewGrid, 0, FragmentClear, "", false},
		{"back from detail", detail, BackEvent{}, ViewGrid, 0, FragmentClear, "", false},
		{"back from grid", loaded, BackEvent{}, ViewGrid, 0, FragmentClear, "", false},
		{"nothing loaded", State{}, StartupEvent{Fragment: "article-1"}, ViewGrid, 0, FragmentClear, "", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			next, tr := Route(c.state, c.event)

			if tr.View != c.wantView || next.View() != c.wantView {
				t.Fatalf("view = %v (state %v); want %v", tr.View, next.View(), c.wantView)
			}
			if tr.Fragment != c.wantFragment || tr.Value != c.wantValue {
				t.Fatalf("fragment action = %v %q; want %v %q", tr.Fragment, tr.Value, c.wantFragment, c.wantValue)
			}
			if (tr.Diagnostic != "") != c.wantDiag {
				t.Fatalf("diagnostic = %q; want present=%v", tr.Diagnostic, c.wantDiag)
			}
			if c.wantView == ViewDetail {
				if next.CurrentArticleID == nil || *next.CurrentArticleID != c.wantID || tr.Article.ID != c.wantID {
					t.Fatalf("current = %v, article = %d; want %d", next.CurrentArticleID, tr.Article.ID, c.wantID)
				}
				if a, ok := next.Current(); !ok || a.ID != c.wantID {
					t.Fatalf("Current() = %+v, %v", a, ok)
				}
			} else if next.CurrentArticleID != nil {
				t.Fatalf("grid state must clear the current article, got %d", *next.CurrentArticleID)
			}
			if len(next.Articles) != len(c.state.Articles) {
				t.Fatalf("Route must not change the article list")
			}
		})
	}
}

func TestRouteDoesNotMutateInput(t *testing.T) {
	one := 1
	st := State{Articles: articles(2), CurrentArticleID: &one}

	_, _ = Route(st, BackEvent{})
	_, _ = Route(st, FragmentChangeEvent{Fragment: "article-2"})

	if st.CurrentArticleID == nil || *st.CurrentArticleID != 1 {
		t.Fatalf("input state was mutated: %v", st.CurrentArticleID)
	}
}
