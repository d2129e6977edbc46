// Copyright 2026 The Tempo Authors
// SPDX-License-Identifier: GPL-3.0-only

package remote

import (
	"errors"
	"math"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
	"github.com/godbus/dbus/v5/prop"

	"github.com/solarwinter/tempo/logger"
)

const (
	mprisPath        = "/org/mpris/MediaPlayer2"
	mprisPlayerIface = "org.mpris.MediaPlayer2.Player"
)

type MprisPlayer struct {
	dbus   *dbus.Conn
	props  *prop.Properties
	player ControlledPlayer
	logger logger.LoggerInterface
}

func RegisterMprisPlayer(player ControlledPlayer, logger_ logger.LoggerInterface) (mpp *MprisPlayer, err error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return
	}

	mpp = &MprisPlayer{
		dbus:   conn,
		player: player,
		logger: logger_,
	}

	err = conn.ExportAll(mpp, mprisPath, mprisPlayerIface)
	if err != nil {
		return
	}

	metadata := map[string]interface{}{
		"mpris:trackid":     "",
		"mpris:length":      int64(0),
		"xesam:album":       "",
		"xesam:albumArtist": "",
		"xesam:artist":      []string{},
		"xesam:composer":    []string{},
		"xesam:genre":       []string{},
		"xesam:title":       "",
		"xesam:trackNumber": int(0),
	}

	var mprisPlayer = map[string]*prop.Prop{
		"CanControl":     {Value: true, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"CanGoNext":      {Value: true, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"CanPause":       {Value: true, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"CanPlay":        {Value: true, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"CanSeek":        {Value: true, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"CanGoPrevious":  {Value: false, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"Metadata":       {Value: metadata, Writable: false, Emit: prop.EmitTrue, Callback: nil},
		"Volume":         {Value: float64(0.0), Writable: true, Emit: prop.EmitTrue, Callback: mpp.volumeChange},
		"PlaybackStatus": {Value: "", Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"Position":       {Value: int64(0), Writable: false, Emit: prop.EmitFalse, Callback: nil},
	}

	var mediaPlayer = map[string]*prop.Prop{
		"CanQuit":             {Value: false, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"CanRaise":            {Value: false, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"HasTrackList":        {Value: false, Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"Identity":            {Value: "tempo", Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"SupportedUriSchemes": {Value: "", Writable: false, Emit: prop.EmitFalse, Callback: nil},
		"SupportedMimeTypes":  {Value: "", Writable: false, Emit: prop.EmitFalse, Callback: nil},
	}

	props, err := prop.Export(
		conn,
		mprisPath,
		map[string]map[string]*prop.Prop{
			"org.mpris.MediaPlayer2": mediaPlayer,
			mprisPlayerIface:         mprisPlayer,
		},
	)
	if err != nil {
		return
	}
	mpp.props = props

	n := &introspect.Node{
		Name: mprisPath,
		Interfaces: []introspect.Interface{
			introspect.IntrospectData,
			prop.IntrospectData,
			{
				Name:       mprisPlayerIface,
				Methods:    introspect.Methods(mpp),
				Properties: props.Introspection(mprisPlayerIface), // we implement the standard interface
			},
		},
	}
	err = conn.Export(introspect.NewIntrospectable(n), mprisPath, "org.freedesktop.DBus.Introspectable")
	if err != nil {
		return
	}

	// re-announce the position after every engine seek, regardless of
	// whether the widget, a key binding or a remote client caused it
	player.OnSeek(mpp.seeked)

	// our unique name
	name := "org.mpris.MediaPlayer2.tempo"
	reply, err := conn.RequestName(name, dbus.NameFlagDoNotQueue)
	if err != nil {
		return
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		err = errors.New("name already owned")
		return
	}
	return
}

func (m *MprisPlayer) Close() {
	if err := m.dbus.Close(); err != nil {
		m.logger.PrintError("mpp Close", err)
	}
}

// Mandatory functions
func (m *MprisPlayer) Stop() {
	if err := m.player.Stop(); err != nil {
		m.logger.PrintError("mpp Stop", err)
	}
}

func (m *MprisPlayer) Next() {
	if err := m.player.PlayNextTrack(); err != nil {
		m.logger.PrintError("mpp PlayNextTrack", err)
	}
}

// set paused
func (m *MprisPlayer) Pause() {
	if paused, err := m.player.IsPaused(); err != nil {
		m.logger.PrintError("mpp IsPaused", err)
	} else if !paused {
		if err = m.player.Pause(); err != nil {
			m.logger.PrintError("mpp Pause", err)
		}
	}
}

// set playing
func (m *MprisPlayer) Play() {
	if playing, err := m.player.IsPlaying(); err != nil {
		m.logger.PrintError("mpp IsPlaying", err)
	} else if !playing {
		if err = m.player.Pause(); err != nil {
			m.logger.PrintError("mpp Pause", err)
		}
	}
}

func (m *MprisPlayer) PlayPause() {
	if err := m.player.Pause(); err != nil {
		m.logger.PrintError("mpp Pause", err)
	}
}

// Seek jumps relative by offset microseconds, clamping at the track
// bounds like every other seek path.
func (m *MprisPlayer) Seek(offset int64) {
	if err := m.player.Seek(int(offset / 1e6)); err != nil {
		m.logger.PrintError("mpp Seek", err)
	}
}

// SetPosition jumps to an absolute position given in microseconds. The
// track id is not checked; tempo only ever exposes the current track.
func (m *MprisPlayer) SetPosition(trackId dbus.ObjectPath, position int64) {
	duration := m.player.GetDuration()
	if duration <= 0 {
		return
	}
	seconds := float64(position) / 1e6
	if err := m.player.SeekPercent(seconds / duration * 100); err != nil {
		m.logger.PrintError("mpp SetPosition", err)
	}
}

func (m *MprisPlayer) OpenUri(string) {
	// not supported, queue management stays in the TUI
}

func (m *MprisPlayer) Previous() {
	// not supported, tempo only ever plays forward through the queue
}

// seeked publishes the new position after an engine seek.
func (m *MprisPlayer) seeked() {
	micros := int64(m.player.GetTimePos() * 1e6)
	m.props.SetMust(mprisPlayerIface, "Position", micros)
	if err := m.dbus.Emit(mprisPath, mprisPlayerIface+".Seeked", micros); err != nil {
		m.logger.PrintError("mpris: Emit Seeked", err)
	}
}

func (m *MprisPlayer) volumeChange(c *prop.Change) *dbus.Error {
	fVol := c.Value.(float64)

	// convert to %
	percentVol := int64(math.Round(fVol * 100))
	if err := m.player.SetVolume(percentVol); err != nil {
		m.logger.PrintError("volumeChange", err)
	} else {
		m.logger.Printf("mpris: adjust volume %f -> %d%%", fVol, percentVol)
	}
	return nil
}

// OnSongChange method to be called by the gui event loop
func (m *MprisPlayer) OnSongChange(currentTrack TrackInterface) {
	metadata := map[string]interface{}{
		"mpris:trackid":     "",
		"mpris:length":      int64(currentTrack.GetDuration()) * 1000000, // duration in microseconds
		"xesam:album":       "",
		"xesam:albumArtist": "",
		"xesam:artist":      []string{currentTrack.GetArtist()},
		"xesam:composer":    []string{},
		"xesam:genre":       []string{},
		"xesam:title":       currentTrack.GetTitle(),
		"xesam:trackNumber": 0,
	}

	err := m.dbus.Emit(mprisPath, "org.freedesktop.DBus.Properties.PropertiesChanged",
		mprisPlayerIface, map[string]map[string]interface{}{
			"Metadata": metadata,
		}, []string{})

	if err != nil {
		m.logger.PrintError("mpris: Emit PropertiesChanged", err)
	}
}
