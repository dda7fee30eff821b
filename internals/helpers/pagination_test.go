package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseQuery(t *testing.T, query string, opt Options) Params {
	t.Helper()
	app := fiber.New()
	var got Params
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ParseFiber(c, opt)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/x"+query, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestParseFiber(t *testing.T) {
	cases := []struct {
		name  string
		query string
		opt   Options
		want  Params
	}{
		{"defaults", "", DefaultOpts, Params{Page: 1, PerPage: 25}},
		{"explicit", "?page=3&per_page=10", DefaultOpts, Params{Page: 3, PerPage: 10}},
		{"limit alias", "?limit=10", DefaultOpts, Params{Page: 1, PerPage: 10}},
		{"per_page wins over limit", "?per_page=5&limit=10", DefaultOpts, Params{Page: 1, PerPage: 5}},
		{"clamped to max", "?per_page=9999", DefaultOpts, Params{Page: 1, PerPage: 200}},
		{"admin max", "?per_page=9999", AdminOpts, Params{Page: 1, PerPage: 500}},
		{"garbage falls back", "?page=abc&per_page=-4", DefaultOpts, Params{Page: 1, PerPage: 25}},
		{"zero page normalized", "?page=0", DefaultOpts, Params{Page: 1, PerPage: 25}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parseQuery(t, tc.query, tc.opt))
		})
	}
}

func TestParamsOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 25}
	assert.Equal(t, 25, p.Limit())
	assert.Equal(t, 50, p.Offset())
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(101, Params{Page: 2, PerPage: 25})
	assert.Equal(t, int64(101), meta.Total)
	assert.Equal(t, 5, meta.TotalPages)
	assert.True(t, meta.HasPrev)
	assert.True(t, meta.HasNext)

	last := BuildMeta(101, Params{Page: 5, PerPage: 25})
	assert.False(t, last.HasNext)

	empty := BuildMeta(0, Params{Page: 1, PerPage: 25})
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasPrev)
	assert.False(t, empty.HasNext)
}
