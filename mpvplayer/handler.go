// Copyright 2026 The Tempo Authors
// SPDX-License-Identifier: GPL-3.0-only

package mpvplayer

import (
	mpv "github.com/supersonic-app/go-mpv"
)

func (p *Player) EventLoop() {
	if err := p.instance.ObserveProperty(0, "playback-time", mpv.FORMAT_INT64); err != nil {
		p.logger.PrintError("Observe1", err)
	}
	if err := p.instance.ObserveProperty(0, "duration", mpv.FORMAT_INT64); err != nil {
		p.logger.PrintError("Observe2", err)
	}
	if err := p.instance.ObserveProperty(0, "volume", mpv.FORMAT_INT64); err != nil {
		p.logger.PrintError("Observe3", err)
	}

	for evt := range p.mpvEvents {
		if evt == nil {
			// quit signal
			break
		} else if evt.Event_Id == mpv.EVENT_PROPERTY_CHANGE {
			// one of our observed properties changed; re-read them all
			position, err := p.getPropertyInt64("playback-time")
			if err != nil {
				p.logger.Printf("mpvplayer.EventLoop (%s): GetProperty playback-time -- %s", evt.Event_Id.String(), err.Error())
			}
			duration, err := p.getPropertyInt64("duration")
			if err != nil {
				p.logger.Printf("mpvplayer.EventLoop (%s): GetProperty duration -- %s", evt.Event_Id.String(), err.Error())
			}
			volume, err := p.getPropertyInt64("volume")
			if err != nil {
				p.logger.Printf("mpvplayer.EventLoop (%s): GetProperty volume -- %s", evt.Event_Id.String(), err.Error())
			}

			statusData := StatusData{
				Volume:   volume,
				Position: position,
				Duration: duration,
			}
			p.timePos = float64(statusData.Position)
			p.duration = float64(statusData.Duration)
			p.sendGuiDataEvent(EventStatus, statusData)
		} else if evt.Event_Id == mpv.EVENT_END_FILE && !p.replaceInProgress {
			// nothing to update while we're replacing the current track

			if p.stopped {
				// feedback for a user-requested stop; keep the first track
				// so play starts it from the beginning
				p.logger.Print("mpvplayer.EventLoop: mpv stopped")
				p.sendGuiEvent(EventStopped)
			} else {
				// advance queue and play next track
				if len(p.queue) > 0 {
					p.queue = p.queue[1:]
				}

				if len(p.queue) > 0 {
					if err := p.instance.Command([]string{"loadfile", p.queue[0].Uri}); err != nil {
						p.logger.PrintError("mpvplayer.EventLoop: load next", err)
					}
				} else {
					p.logger.Print("mpvplayer.EventLoop: stopping (auto)")
					p.stopped = true
					p.sendGuiEvent(EventStopped)
				}
			}
		} else if evt.Event_Id == mpv.EVENT_START_FILE {
			p.replaceInProgress = false
			p.stopped = false

			currentTrack := Track{}
			if len(p.queue) > 0 {
				currentTrack = p.queue[0]
			}

			if paused, err := p.IsPaused(); err != nil {
				p.logger.PrintError("mpvplayer.EventLoop: IsPaused", err)
			} else if !paused {
				p.sendGuiDataEvent(EventPlaying, currentTrack)
			} else {
				p.sendGuiDataEvent(EventPaused, currentTrack)
			}
		} else if evt.Event_Id == mpv.EVENT_IDLE || evt.Event_Id == mpv.EVENT_NONE {
			continue
		} else {
			p.logger.Printf("mpvplayer.EventLoop: unhandled event id %v", evt.Event_Id)
			continue
		}
	}
}

func (p *Player) sendGuiEvent(typ UiEventType) {
	if p.eventConsumer != nil {
		p.eventConsumer.SendEvent(UiEvent{
			Type: typ,
			Data: nil,
		})
	}

	p.sendRemoteEvent(typ, nil)
}

func (p *Player) sendGuiDataEvent(typ UiEventType, data interface{}) {
	if p.eventConsumer != nil {
		p.eventConsumer.SendEvent(UiEvent{
			Type: typ,
			Data: data,
		})
	}

	p.sendRemoteEvent(typ, data)
}

func (p *Player) sendRemoteEvent(typ UiEventType, data interface{}) {
	switch typ {
	case EventStopped:
		for _, cb := range p.cbOnStopped {
			cb()
		}

	case EventUnpaused, EventPlaying:
		if data != nil {
			p.sendSongChange(data.(Track))
		}
		for _, cb := range p.cbOnPlaying {
			cb()
		}

	case EventPaused:
		if data != nil {
			p.sendSongChange(data.(Track))
		}
		for _, cb := range p.cbOnPaused {
			cb()
		}
	}
}

func (p *Player) sendSongChange(track Track) {
	for _, cb := range p.cbOnSongChange {
		cb(&track)
	}
}

func (p *Player) sendSeekEvent() {
	for _, cb := range p.cbOnSeek {
		cb()
	}
}

// callback registration for remote control frontends

func (p *Player) OnPaused(cb func()) {
	p.cbOnPaused = append(p.cbOnPaused, cb)
}

func (p *Player) OnStopped(cb func()) {
	p.cbOnStopped = append(p.cbOnStopped, cb)
}

func (p *Player) OnPlaying(cb func()) {
	p.cbOnPlaying = append(p.cbOnPlaying, cb)
}

func (p *Player) OnSeek(cb func()) {
	p.cbOnSeek = append(p.cbOnSeek, cb)
}

func (p *Player) OnSongChange(cb func(*Track)) {
	p.cbOnSongChange = append(p.cbOnSongChange, cb)
}
