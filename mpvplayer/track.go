// Copyright 2026 The Tempo Authors
// SPDX-License-Identifier: GPL-3.0-only

package mpvplayer

import (
	"path/filepath"
	"strings"

	"github.com/solarwinter/tempo/remote"
)

// Track is one queue entry. Uri is a local path or anything else mpv can
// open; metadata is best-effort and may stay empty for streams.
type Track struct {
	Uri      string
	Title    string
	Artist   string
	Duration int
}

// TrackFromUri builds a queue entry for a path or URL, deriving a title
// from the file name when nothing better is known.
func TrackFromUri(uri string) Track {
	title := uri
	if base := filepath.Base(uri); base != "." && base != string(filepath.Separator) {
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return Track{Uri: uri, Title: title}
}

var _ remote.TrackInterface = (*Track)(nil)

func (t *Track) GetArtist() string {
	if t == nil {
		return ""
	}
	return t.Artist
}

func (t *Track) GetTitle() string {
	if t == nil {
		return ""
	}
	return t.Title
}

func (t *Track) GetDuration() int {
	if t == nil {
		return 0
	}
	return t.Duration
}

func (t *Track) GetUri() string {
	if t == nil {
		return ""
	}
	return t.Uri
}

func (t *Track) IsValid() bool {
	return t != nil && t.Uri != ""
}
