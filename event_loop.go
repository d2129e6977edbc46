// Copyright 2026 The Tempo Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"time"

	"github.com/spf13/viper"

	"github.com/solarwinter/tempo/mpvplayer"
)

// previewTickInterval is the scheduling tick driving the seek bar's
// hover preview recomputation.
const previewTickInterval = 100 * time.Millisecond

// resumeSaveInterval is how often the current playback position is
// checkpointed to the resume store.
const resumeSaveInterval = 10 * time.Second

type eventLoop struct {
	previewTicker *time.Ticker
	resumeTicker  *time.Ticker
}

func (ui *Ui) initEventLoops() {
	ui.eventLoop = &eventLoop{
		previewTicker: time.NewTicker(previewTickInterval),
		resumeTicker:  time.NewTicker(resumeSaveInterval),
	}
}

func (ui *Ui) runEventLoops() {
	go ui.guiEventLoop()
	go ui.backgroundEventLoop()
}

// handle ui updates
func (ui *Ui) guiEventLoop() {
	for {
		select {
		case <-ui.eventLoop.previewTicker.C:
			// explicit per-tick preview poll; Tick reports whether the
			// preview actually changed so unchanged hovers don't redraw
			ui.app.QueueUpdate(func() {
				if ui.seekBar.Tick() {
					ui.app.Draw()
				}
			})

		case msg := <-ui.logger.Prints:
			// handle log page output
			ui.logPage.Print(msg)

		case mpvEvent := <-ui.mpvEvents:
			// handle events from mpv wrapper
			switch mpvEvent.Type {
			case mpvplayer.EventStatus:
				if mpvEvent.Data == nil {
					continue
				}
				statusData := mpvEvent.Data.(mpvplayer.StatusData)

				ui.app.QueueUpdateDraw(func() {
					ui.duration = statusData.Duration
					ui.playerStatus.SetText(formatPlayerStatus(statusData.Volume, statusData.Position, statusData.Duration))
					if statusData.Duration > 0 {
						// programmatic sync, never raises the seek event
						ui.seekBar.SetPosition(float64(statusData.Position) / float64(statusData.Duration))
					}
				})

			case mpvplayer.EventStopped:
				ui.logger.Print("mpvEvent: stopped")
				ui.app.QueueUpdateDraw(func() {
					ui.startStopStatus.SetText("[red::b]Stopped[::-]")
					ui.duration = 0
					ui.seekBar.SetPosition(0)
					ui.queuePage.UpdateQueue()
				})

			case mpvplayer.EventPlaying:
				ui.logger.Print("mpvEvent: playing")
				statusText := "[green::b]Playing[::-]"

				var currentTrack mpvplayer.Track
				if mpvEvent.Data != nil {
					currentTrack = mpvEvent.Data.(mpvplayer.Track)
					statusText += formatTrackForStatusBar(&currentTrack)

					// Update MprisPlayer with new track info
					if ui.mprisPlayer != nil {
						ui.mprisPlayer.OnSongChange(&currentTrack)
					}

					ui.restorePlayPosition(currentTrack)
				}

				ui.app.QueueUpdateDraw(func() {
					ui.startStopStatus.SetText(statusText)
					ui.queuePage.UpdateQueue()
				})

			case mpvplayer.EventPaused:
				ui.logger.Print("mpvEvent: paused")
				statusText := "[yellow::b]Paused[::-]"

				var currentTrack mpvplayer.Track
				if mpvEvent.Data != nil {
					currentTrack = mpvEvent.Data.(mpvplayer.Track)
					statusText += formatTrackForStatusBar(&currentTrack)
				}

				ui.app.QueueUpdateDraw(func() {
					ui.startStopStatus.SetText(statusText)
				})

			case mpvplayer.EventUnpaused:
				ui.logger.Print("mpvEvent: unpaused")
				statusText := "[green::b]Playing[::-]"

				var currentTrack mpvplayer.Track
				if mpvEvent.Data != nil {
					currentTrack = mpvEvent.Data.(mpvplayer.Track)
					statusText += formatTrackForStatusBar(&currentTrack)
				}

				ui.app.QueueUpdateDraw(func() {
					ui.startStopStatus.SetText(statusText)
				})

			default:
				ui.logger.Printf("guiEventLoop: unhandled mpvEvent %v", mpvEvent)
			}
		}
	}
}

// loop for blocking background tasks that would otherwise block the ui
func (ui *Ui) backgroundEventLoop() {
	for range ui.eventLoop.resumeTicker.C {
		ui.saveResumePosition()
	}
}

// restorePlayPosition seeks a freshly started track to its stored
// resume position, if there is one.
func (ui *Ui) restorePlayPosition(track mpvplayer.Track) {
	if ui.resume == nil || !viper.GetBool("client.resume") {
		return
	}
	ratio, found := ui.resume.Position(track.Uri)
	if !found {
		return
	}
	ui.logger.Printf("resuming %s at %s", track.Title, formatRatioTime(ratio, int64(ui.player.GetDuration())))
	if err := ui.player.SeekPercent(ratio * 100); err != nil {
		ui.logger.PrintError("restorePlayPosition", err)
	}
}

// saveResumePosition checkpoints the current position of the playing
// track to the resume store.
func (ui *Ui) saveResumePosition() {
	if ui.resume == nil || !viper.GetBool("client.resume") {
		return
	}
	track, err := ui.player.GetPlayingTrack()
	if err != nil {
		// paused or stopped, nothing to checkpoint
		return
	}
	duration := ui.player.GetDuration()
	if duration <= 0 {
		return
	}
	ratio := ui.player.GetTimePos() / duration
	if err := ui.resume.SavePosition(track.Uri, ratio); err != nil {
		ui.logger.PrintError("saveResumePosition", err)
	}
}
