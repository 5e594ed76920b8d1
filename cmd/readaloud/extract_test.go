package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/readaloudhq/readaloud"
	main "github.com/readaloudhq/readaloud/cmd/readaloud"
	"github.com/readaloudhq/readaloud/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints unit count and unit text", func(t *testing.T) {
		t.Parallel()

		source := &mock.Source{
			StateFn: func(_ context.Context) (*readaloud.PageState, error) {
				return &readaloud.PageState{
					URL:  "https://example.com/docs/install",
					HTML: "<html><body><p>hello</p></body></html>",
				}, nil
			},
		}
		extractor := &mock.Extractor{
			ExtractFn: func(html string) []readaloud.ContentUnit {
				return []readaloud.ContentUnit{
					{Index: 0, Text: "Install Guide", IsHeading: true},
					{Index: 1, Text: "Run the installer and follow the prompts."},
				}
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Source:    source,
			Extractor: extractor,
		}

		cmd := &main.ExtractCmd{URL: "https://example.com/docs/install"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "2 units from https://example.com/docs/install")
		assert.Contains(t, output, "Install Guide")
		assert.Contains(t, output, "Run the installer")
		assert.Empty(t, stderr.String())
	})

	t.Run("warns when extraction degrades to the placeholder", func(t *testing.T) {
		t.Parallel()

		source := &mock.Source{
			StateFn: func(_ context.Context) (*readaloud.PageState, error) {
				return &readaloud.PageState{URL: "https://example.com/empty", HTML: "<html></html>"}, nil
			},
		}
		extractor := &mock.Extractor{
			ExtractFn: func(html string) []readaloud.ContentUnit {
				return []readaloud.ContentUnit{readaloud.FallbackUnit()}
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Source:    source,
			Extractor: extractor,
		}

		cmd := &main.ExtractCmd{URL: "https://example.com/empty"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "No readable content")
		assert.Contains(t, stdout.String(), readaloud.FallbackUnitText)
	})

	t.Run("returns error when the source fails", func(t *testing.T) {
		t.Parallel()

		source := &mock.Source{
			StateFn: func(_ context.Context) (*readaloud.PageState, error) {
				return nil, readaloud.Errorf(readaloud.EUNAVAILABLE, "fetch failed with status 503")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Source: source,
		}

		cmd := &main.ExtractCmd{URL: "https://example.com/docs"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
		assert.Empty(t, stdout.String())
	})
}
