// Copyright 2026 The Tempo Authors
// SPDX-License-Identifier: GPL-3.0-only

package mpvplayer

import (
	"errors"
	"strconv"

	mpv "github.com/supersonic-app/go-mpv"

	"github.com/solarwinter/tempo/logger"
)

type PlayerQueue []Track

type Player struct {
	instance      *mpv.Mpv
	mpvEvents     chan *mpv.Event
	eventConsumer EventConsumer
	queue         PlayerQueue
	logger        logger.LoggerInterface

	replaceInProgress bool
	stopped           bool

	// last observed progress, kept for remote control and resume saving
	timePos  float64
	duration float64

	// remote control callbacks
	cbOnPaused     []func()
	cbOnStopped    []func()
	cbOnPlaying    []func()
	cbOnSeek       []func()
	cbOnSongChange []func(*Track)
}

func NewPlayer(logger logger.LoggerInterface) (player *Player, err error) {
	mpvInstance := mpv.Create()

	if err = mpvInstance.SetOptionString("audio-display", "no"); err != nil {
		mpvInstance.TerminateDestroy()
		return
	}
	if err = mpvInstance.SetOptionString("video", "no"); err != nil {
		mpvInstance.TerminateDestroy()
		return
	}

	if err = mpvInstance.Initialize(); err != nil {
		mpvInstance.TerminateDestroy()
		return
	}

	player = &Player{
		instance:      mpvInstance,
		mpvEvents:     make(chan *mpv.Event),
		eventConsumer: nil, // must be set by calling RegisterEventConsumer()
		queue:         make(PlayerQueue, 0),
		logger:        logger,
		stopped:       true,
	}

	go player.mpvEngineEventHandler(mpvInstance)
	return
}

func (p *Player) mpvEngineEventHandler(instance *mpv.Mpv) {
	for {
		evt := instance.WaitEvent(1)
		p.mpvEvents <- evt
	}
}

func (p *Player) Quit() {
	p.mpvEvents <- nil
	p.instance.TerminateDestroy()
}

func (p *Player) RegisterEventConsumer(consumer EventConsumer) {
	p.eventConsumer = consumer
}

// PlayTrackAt drops the queue entries before index and starts playing
// the track that was at index.
func (p *Player) PlayTrackAt(index int) error {
	if index < 0 || index >= len(p.queue) {
		return errors.New("invalid queue entry")
	}
	p.queue = p.queue[index:]
	p.replaceInProgress = true
	p.stopped = false
	return p.instance.Command([]string{"loadfile", p.queue[0].Uri})
}

func (p *Player) PlayNextTrack() error {
	if len(p.queue) >= 1 {
		// advance queue if any tracks left
		p.queue = p.queue[1:]

		if len(p.queue) > 0 {
			if loaded, err := p.IsSongLoaded(); err != nil {
				p.logger.PrintError("PlayNextTrack", err)
			} else if loaded {
				p.replaceInProgress = true
				if err := p.temporaryStop(); err != nil {
					p.logger.PrintError("temporaryStop", err)
				}
				return p.instance.Command([]string{"loadfile", p.queue[0].Uri})
			}
			return nil
		}
	}
	// queue empty
	return p.Stop()
}

func (p *Player) Stop() error {
	p.logger.Print("stopping (user)")
	p.stopped = true
	return p.instance.Command([]string{"stop"})
}

func (p *Player) temporaryStop() error {
	return p.instance.Command([]string{"stop"})
}

func (p *Player) IsSongLoaded() (bool, error) {
	idle, err := p.getPropertyBool("idle-active")
	return !idle, err
}

func (p *Player) IsPaused() (bool, error) {
	return p.getPropertyBool("pause")
}

func (p *Player) IsPlaying() (playing bool, err error) {
	idle, err := p.getPropertyBool("idle-active")
	if err != nil {
		return
	}
	paused, err := p.getPropertyBool("pause")
	if err != nil {
		return
	}
	return !idle && !paused, nil
}

// Pause toggles playback. A playing track pauses, a paused track
// resumes, and when stopped the front of the queue starts from the
// beginning.
func (p *Player) Pause() (err error) {
	loaded, err := p.IsSongLoaded()
	if err != nil {
		return
	}
	paused, err := p.IsPaused()
	if err != nil {
		return
	}

	if loaded && !p.stopped {
		err = p.instance.Command([]string{"cycle", "pause"})
		if err != nil {
			p.logger.PrintError("cycle pause", err)
			return
		}
		paused = !paused

		currentTrack := Track{}
		if len(p.queue) > 0 {
			currentTrack = p.queue[0]
		}

		if paused {
			p.sendGuiDataEvent(EventPaused, currentTrack)
		} else {
			p.sendGuiDataEvent(EventUnpaused, currentTrack)
		}
		return
	}

	if len(p.queue) > 0 {
		currentTrack := p.queue[0]
		err = p.instance.Command([]string{"loadfile", currentTrack.Uri})
		if err != nil {
			p.logger.PrintError("loadfile", err)
			return
		}

		if p.stopped {
			p.stopped = false
			if err = p.instance.SetProperty("pause", mpv.FORMAT_FLAG, false); err != nil {
				p.logger.PrintError("setprop pause", err)
			}
			// mpv sends a start-file event which raises the gui event
		} else {
			p.sendGuiDataEvent(EventUnpaused, currentTrack)
		}
	} else {
		p.stopped = true
		p.sendGuiEvent(EventStopped)
	}

	return
}

func (p *Player) SetVolume(percentValue int64) error {
	if percentValue > 100 {
		percentValue = 100
	} else if percentValue < 0 {
		percentValue = 0
	}

	return p.instance.SetProperty("volume", mpv.FORMAT_INT64, percentValue)
}

func (p *Player) AdjustVolume(increment int64) error {
	volume, err := p.getPropertyInt64("volume")
	if err != nil {
		return err
	}
	return p.SetVolume(volume + increment)
}

func (p *Player) Volume() (int64, error) {
	return p.getPropertyInt64("volume")
}

// Seek jumps by increment seconds relative to the current position.
func (p *Player) Seek(increment int) error {
	err := p.instance.Command([]string{"seek", strconv.Itoa(increment)})
	if err == nil {
		p.sendSeekEvent()
	}
	return err
}

// SeekPercent jumps to an absolute position given as a percentage of the
// track duration. This is the consumer of the seek bar's commit events.
func (p *Player) SeekPercent(percent float64) error {
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}
	err := p.instance.Command([]string{"seek", strconv.FormatFloat(percent, 'f', 4, 64), "absolute-percent"})
	if err == nil {
		p.sendSeekEvent()
	}
	return err
}

// GetTimePos returns the last observed playback position in seconds.
func (p *Player) GetTimePos() float64 {
	return p.timePos
}

// GetDuration returns the last observed track duration in seconds, or 0
// when nothing is loaded.
func (p *Player) GetDuration() float64 {
	return p.duration
}

// accessed from gui context
func (p *Player) ClearQueue() {
	if err := p.Stop(); err != nil {
		p.logger.PrintError("Stop", err)
	}
	p.queue = make(PlayerQueue, 0)
}

func (p *Player) DeleteQueueItem(index int) {
	if len(p.queue) > 1 {
		if index == 0 {
			if err := p.PlayNextTrack(); err != nil {
				p.logger.PrintError("PlayNextTrack", err)
			}
		} else if index > 0 && index < len(p.queue) {
			p.queue = append(p.queue[:index], p.queue[index+1:]...)
		}
	} else {
		p.ClearQueue()
	}
}

func (p *Player) AddToQueue(track *Track) {
	p.queue = append(p.queue, *track)
}

func (p *Player) GetQueueItem(index int) (Track, error) {
	if index < 0 || index >= len(p.queue) {
		return Track{}, errors.New("invalid queue entry")
	}
	return p.queue[index], nil
}

func (p *Player) GetQueueCopy() PlayerQueue {
	cpy := make(PlayerQueue, len(p.queue))
	copy(cpy, p.queue)
	return cpy
}

// GetPlayingTrack returns the current track if one is actually playing.
func (p *Player) GetPlayingTrack() (Track, error) {
	paused, err := p.IsPaused()
	if err != nil {
		return Track{}, err
	}
	if paused {
		return Track{}, errors.New("not playing")
	}

	if len(p.queue) == 0 {
		return Track{}, errors.New("queue empty")
	}
	return p.queue[0], nil
}
