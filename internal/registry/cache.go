package registry

import (
	"sync"

	"github.com/weftui/weft/theme"
)

// themeCache memoizes parsed theme files so repeated LoadTheme calls do not
// re-read and re-validate the same file.
type themeCache struct {
	mu     sync.RWMutex
	themes map[string]theme.Theme
}

func newThemeCache() *themeCache {
	return &themeCache{themes: make(map[string]theme.Theme)}
}

func (c *themeCache) get(name string) (theme.Theme, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	t, ok := c.themes[name]
	return t, ok
}

func (c *themeCache) set(name string, t theme.Theme) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.themes[name] = t
}

func (c *themeCache) invalidate(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.themes, name)
}

func (c *themeCache) invalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.themes = make(map[string]theme.Theme)
}
