package insight

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeProvider struct {
	out        string
	err        error
	lastSystem string
	lastUser   string
	calls      int
}

func (f *fakeProvider) Complete(_ context.Context, system, user string) (string, error) {
	f.calls++
	f.lastSystem = system
	f.lastUser = user
	return f.out, f.err
}

func TestGenerateSuccessFormatsOutput(t *testing.T) {
	p := &fakeProvider{out: "**Rapport**\r\nAnalyse ~~brouillon~~ finale\n"}
	g := NewGenerator(p)

	res := g.Generate(context.Background(), []QA{{Question: "q", Answer: "a"}})

	assert.True(t, res.Success)
	assert.Empty(t, res.Error)
	assert.Equal(t, "**Rapport**\nAnalyse brouillon finale", res.Content)
	assert.Equal(t, 1, p.calls)
	assert.Equal(t, SystemPrompt, p.lastSystem)
	assert.Contains(t, p.lastUser, "1. Q: q")
}

func TestGenerateProviderErrorNeverRaises(t *testing.T) {
	p := &fakeProvider{err: errors.New("upstream 502")}
	g := NewGenerator(p)

	res := g.Generate(context.Background(), []QA{{Question: "q", Answer: "a"}})

	assert.False(t, res.Success)
	assert.Empty(t, res.Content)
	assert.Equal(t, "upstream 502", res.Error)
}

func TestGenerateWithoutProvider(t *testing.T) {
	g := NewGenerator(nil)

	res := g.Generate(context.Background(), nil)

	assert.False(t, res.Success)
	assert.Equal(t, ErrNotConfigured.Error(), res.Error)
}

func TestUnconfiguredOpenRouterProviderShortCircuits(t *testing.T) {
	p := NewOpenRouterProvider("", "https://openrouter.ai/api/v1", "http://localhost:3000")

	_, err := p.Complete(context.Background(), "s", "u")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
