package routes

import "github.com/labstack/echo/v4"

const (
	themeCookie    = "Theme"
	defaultTheme   = "light"
	maxThemeLength = 10
)

var allowedThemes = map[string]struct{}{
	"light": {},
	"dark":  {},
}

// fetchTheme reads the theme preference cookie. Unknown or oversized values
// fall back to the default so cookie contents never reach a rendered page
// unchecked.
func fetchTheme(c echo.Context) string {
	cookie, err := c.Cookie(themeCookie)
	if err != nil || cookie.Value == "" || len(cookie.Value) > maxThemeLength {
		return defaultTheme
	}
	if _, ok := allowedThemes[cookie.Value]; !ok {
		return defaultTheme
	}
	return cookie.Value
}
