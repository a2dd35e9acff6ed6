package layout

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// builtinFamily is the font family used when no custom font is loaded.
// Bold and italic text always use the built-in family, since only the
// regular face of a custom font is registered.
const builtinFamily = "Helvetica"

// Assets holds the optional on-disk resources resolved once at
// startup. The value is read-only afterwards and safe to share across
// concurrent renders.
type Assets struct {
	CompanyLogo string // path to the logo image; empty means none
	FontFamily  string // family used for body text
	FontPath    string // TTF file registered per document; empty means built-in
	Letterhead  string // single-page PDF stamped under every page; empty means none
}

// LoadAssets checks the optional resource paths and returns the
// resolved Assets. A missing resource is logged and skipped, never
// fatal. An empty path disables the resource without a log line.
func LoadAssets(logger zerolog.Logger, logoPath, fontPath, letterheadPath string) Assets {
	a := Assets{FontFamily: builtinFamily}

	if logoPath != "" {
		if _, err := os.Stat(logoPath); err != nil {
			logger.Warn().Str("path", logoPath).Msg("company logo not found, reports will omit it")
		} else {
			a.CompanyLogo = logoPath
		}
	}

	if fontPath != "" {
		if _, err := os.Stat(fontPath); err != nil {
			logger.Warn().Str("path", fontPath).Msg("custom font not found, using built-in Helvetica")
		} else {
			a.FontPath = fontPath
			a.FontFamily = strings.TrimSuffix(filepath.Base(fontPath), filepath.Ext(fontPath))
		}
	}

	if letterheadPath != "" {
		if _, err := os.Stat(letterheadPath); err != nil {
			logger.Warn().Str("path", letterheadPath).Msg("letterhead not found, pages will be plain")
		} else {
			a.Letterhead = letterheadPath
		}
	}

	return a
}
