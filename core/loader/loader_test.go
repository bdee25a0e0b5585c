package loader_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"collection-sync/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (f *stubFeature) Name() string    { return f.name }
func (f *stubFeature) IsEnabled() bool { return f.enabled }
func (f *stubFeature) Load(app fiber.Router) error {
	if f.err != nil {
		return f.err
	}
	f.loaded = true
	app.Get("/"+f.name, func(c *fiber.Ctx) error { return c.SendString(f.name) })
	return nil
}

func TestManagerLoadAll(t *testing.T) {
	t.Run("SkipsDisabled", func(t *testing.T) {
		app := fiber.New()
		on := &stubFeature{name: "feeds", enabled: true}
		off := &stubFeature{name: "legacy", enabled: false}

		mgr := loader.NewManager(nil)
		mgr.Register(on)
		mgr.Register(off)

		require.NoError(t, mgr.LoadAll(app))
		assert.True(t, on.loaded)
		assert.False(t, off.loaded)
		assert.Len(t, mgr.Features(), 2)

		resp, err := app.Test(httptest.NewRequest("GET", "/feeds", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		resp, err = app.Test(httptest.NewRequest("GET", "/legacy", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("StopsOnError", func(t *testing.T) {
		boom := errors.New("boom")
		first := &stubFeature{name: "first", enabled: true, err: boom}
		second := &stubFeature{name: "second", enabled: true}

		mgr := loader.NewManager(nil)
		mgr.Register(first)
		mgr.Register(second)

		err := mgr.LoadAll(fiber.New())
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "first")
		assert.False(t, second.loaded)
	})
}
