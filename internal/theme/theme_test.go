package theme_test

import (
	"reflect"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"tunisiaguide/internal/theme"
)

var hexColor = regexp.MustCompile(`^#[0-9A-F]{6}$`)

func TestFor(t *testing.T) {
	require.Equal(t, theme.Dark(), theme.For(true))
	require.Equal(t, theme.Light(), theme.For(false))
	require.True(t, theme.For(true).Dark)
	require.False(t, theme.For(false).Dark)
}

func TestPalettesAreComplete(t *testing.T) {
	for _, th := range []theme.Theme{theme.Light(), theme.Dark()} {
		v := reflect.ValueOf(th.Colors)
		for i := range v.NumField() {
			name := v.Type().Field(i).Name
			require.Regexp(t, hexColor, v.Field(i).String(), "dark=%v role %s", th.Dark, name)
		}
	}
}

func TestSharedScales(t *testing.T) {
	light, dark := theme.Light(), theme.Dark()
	require.Equal(t, light.Spacing, dark.Spacing)
	require.Equal(t, light.Radii, dark.Radii)
	require.Less(t, light.Spacing.XS, light.Spacing.XL)
	require.NotEqual(t, light.Colors.Background, dark.Colors.Background)
}
