// Package rod provides a headless-Chrome implementation of
// readaloud.PageSource. Unlike the plain HTTP source it executes
// JavaScript, so single-page applications render fully, and it observes
// live navigation and mutation events on the open page.
package rod

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/readaloudhq/readaloud"
	"github.com/ysmood/gson"
)

// Compile-time interface checks.
var (
	_ readaloud.PageSource       = (*Source)(nil)
	_ readaloud.NavigationSource = (*Source)(nil)
	_ readaloud.MutationSource   = (*Source)(nil)
)

// mutationObserverJS installs a MutationObserver on the page's main
// container (or body) and forwards childList and characterData mutations
// to the exposed binding.
const mutationObserverJS = `() => {
	const target = document.querySelector('main, article, [role="main"]') || document.body;
	const report = (kind, tag, text) => {
		window.__readaloudMutation({kind, tag, text});
	};
	const observer = new MutationObserver(records => {
		for (const r of records) {
			if (r.type === 'childList') {
				for (const n of [...r.addedNodes, ...r.removedNodes]) {
					if (n.nodeType === 1) {
						report('childList', n.tagName.toLowerCase(), (n.textContent || '').trim());
					}
				}
			} else if (r.type === 'characterData') {
				report('characterData', '', (r.target.textContent || '').trim());
			}
		}
	});
	observer.observe(target, {childList: true, characterData: true, subtree: true});
}`

// Source observes one page in a headless Chrome tab. It keeps the page
// open for the lifetime of the source so navigation and mutation events
// stream in while the watcher polls.
//
// Source is safe for concurrent use.
type Source struct {
	manager *BrowserManager
	url     string

	mu      sync.Mutex
	page    *rod.Page
	lastURL string
	navFns  []func(readaloud.NavigationEvent)
	mutFns  []func(readaloud.Mutation)
}

// NewSource creates a Source observing the given URL. The browser is
// launched lazily on the first State call. Close must be called when the
// Source is no longer needed.
func NewSource(pageURL string, opts ...ManagerOption) (*Source, error) {
	manager, err := NewBrowserManager(opts...)
	if err != nil {
		return nil, err
	}
	return &Source{manager: manager, url: pageURL}, nil
}

// State implements readaloud.PageSource. It returns the page's current
// URL and fully rendered HTML.
func (s *Source) State(ctx context.Context) (*readaloud.PageState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := s.ensurePage(ctx)
	if err != nil {
		return nil, err
	}
	page = page.Context(ctx)

	info, err := page.Info()
	if err != nil {
		return nil, err
	}
	html, err := page.HTML()
	if err != nil {
		return nil, err
	}

	return &readaloud.PageState{
		URL:       info.URL,
		HTML:      html,
		FetchedAt: time.Now(),
	}, nil
}

// OnNavigate implements readaloud.NavigationSource.
func (s *Source) OnNavigate(fn func(readaloud.NavigationEvent)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.navFns = append(s.navFns, fn)
}

// OnMutation implements readaloud.MutationSource.
func (s *Source) OnMutation(fn func(readaloud.Mutation)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mutFns = append(s.mutFns, fn)
}

// Close releases the page and browser.
func (s *Source) Close() error {
	s.mu.Lock()
	if s.page != nil {
		_ = s.page.Close()
		s.page = nil
	}
	s.mu.Unlock()
	return s.manager.Close()
}

// ensurePage opens and instruments the page on first use.
func (s *Source) ensurePage(ctx context.Context) (*rod.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.page != nil {
		return s.page, nil
	}

	page, err := s.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}

	setup := page.Context(ctx)
	if err := setup.Navigate(s.url); err != nil {
		_ = page.Close()
		return nil, err
	}
	if err := setup.WaitLoad(); err != nil {
		_ = page.Close()
		return nil, err
	}

	if err := s.instrument(page); err != nil {
		_ = page.Close()
		return nil, err
	}

	s.manager.IncrementPageCount()
	s.page = page
	s.lastURL = s.url
	return page, nil
}

// instrument wires navigation events and the mutation observer.
func (s *Source) instrument(page *rod.Page) error {
	go page.EachEvent(
		func(e *proto.PageNavigatedWithinDocument) {
			s.dispatchNavigate(e.URL)
		},
		func(e *proto.PageFrameNavigated) {
			s.dispatchNavigate(e.Frame.URL)
		},
	)()

	_, err := page.Expose("__readaloudMutation", func(j gson.JSON) (interface{}, error) {
		var payload struct {
			Kind string `json:"kind"`
			Tag  string `json:"tag"`
			Text string `json:"text"`
		}
		if err := j.Unmarshal(&payload); err != nil {
			return nil, err
		}
		s.dispatchMutation(payload.Kind, payload.Tag, payload.Text)
		return nil, nil
	})
	if err != nil {
		return err
	}

	_, err = page.Eval(mutationObserverJS)
	return err
}

// dispatchNavigate classifies and fans out a navigation.
func (s *Source) dispatchNavigate(to string) {
	s.mu.Lock()
	kind := classifyNavigation(s.lastURL, to)
	s.lastURL = to
	fns := make([]func(readaloud.NavigationEvent), len(s.navFns))
	copy(fns, s.navFns)
	s.mu.Unlock()

	ev := readaloud.NavigationEvent{Kind: kind, URL: to}
	for _, fn := range fns {
		fn(ev)
	}
}

// dispatchMutation fans out a mutation.
func (s *Source) dispatchMutation(kind, tag, text string) {
	s.mu.Lock()
	fns := make([]func(readaloud.Mutation), len(s.mutFns))
	copy(fns, s.mutFns)
	s.mu.Unlock()

	m := readaloud.Mutation{Tag: tag, Text: text}
	if kind == "characterData" {
		m.Kind = readaloud.MutationCharacterData
	} else {
		m.Kind = readaloud.MutationChildList
	}
	for _, fn := range fns {
		fn(m)
	}
}

// classifyNavigation distinguishes hash-only navigations from URL changes.
// The DevTools protocol does not expose push vs pop, so non-hash
// navigations are reported as pushes.
func classifyNavigation(from, to string) readaloud.NavigationKind {
	if from == "" {
		return readaloud.NavigatePush
	}
	f, errF := url.Parse(from)
	t, errT := url.Parse(to)
	if errF != nil || errT != nil {
		return readaloud.NavigatePush
	}
	if f.Host == t.Host && f.Path == t.Path && f.RawQuery == t.RawQuery && f.Fragment != t.Fragment {
		return readaloud.NavigateHash
	}
	return readaloud.NavigatePush
}
