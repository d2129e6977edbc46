// Copyright 2026 The Tempo Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"fmt"

	"github.com/rivo/tview"
	"github.com/spf13/viper"

	"github.com/solarwinter/tempo/logger"
	"github.com/solarwinter/tempo/mpvplayer"
	"github.com/solarwinter/tempo/remote"
	"github.com/solarwinter/tempo/seekbar"
	"github.com/solarwinter/tempo/state"
)

// struct contains all the updatable elements of the Ui
type Ui struct {
	app   *tview.Application
	pages *tview.Pages

	// top bar
	startStopStatus *tview.TextView
	playerStatus    *tview.TextView

	// seek row below the top bar
	seekBar *seekbar.SeekBar

	// bottom bar
	menuWidget *MenuWidget

	// queue page
	queuePage *QueuePage

	// log page
	logPage *LogPage

	// modals
	helpModal  tview.Primitive
	helpWidget *HelpWidget

	// duration of the current track in seconds, fed by status events;
	// the seek bar tooltip formats ratios against it
	duration int64

	eventLoop   *eventLoop
	mpvEvents   chan mpvplayer.UiEvent
	mprisPlayer *remote.MprisPlayer

	resume *state.Store
	player *mpvplayer.Player
	logger *logger.Logger
}

const (
	// page identifiers (use these instead of hardcoding page names for showing/hiding)
	PageQueue = "queue"
	PageLog   = "log"

	PageHelpBox = "helpBox"
)

func InitGui(player *mpvplayer.Player,
	logger *logger.Logger,
	mprisPlayer *remote.MprisPlayer,
	resume *state.Store) (ui *Ui) {
	ui = &Ui{
		eventLoop: nil, // initialized by initEventLoops()
		mpvEvents: make(chan mpvplayer.UiEvent, 5),

		mprisPlayer: mprisPlayer,
		resume:      resume,
		player:      player,
		logger:      logger,
	}

	ui.initEventLoops()

	ui.app = tview.NewApplication()
	ui.pages = tview.NewPages()

	// status text at the top
	statusLeft := fmt.Sprintf("[::b]%s[::-] v%s", clientName, clientVersion)
	ui.startStopStatus = tview.NewTextView().SetText(statusLeft).
		SetTextAlign(tview.AlignLeft).
		SetDynamicColors(true).
		SetScrollable(false)

	statusRight := formatPlayerStatus(0, 0, 0)
	ui.playerStatus = tview.NewTextView().SetText(statusRight).
		SetTextAlign(tview.AlignRight).
		SetDynamicColors(true).
		SetScrollable(false)

	ui.seekBar = ui.createSeekBar()

	ui.menuWidget = ui.createMenuWidget()
	ui.helpWidget = ui.createHelpWidget()

	// help box modal
	ui.helpModal = makeModal(ui.helpWidget.Root, 80, 30)
	ui.helpWidget.Root.SetInputCapture(ui.helpWidget.handleInput)

	// top bar: status text
	topBarFlex := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(ui.startStopStatus, 0, 1, false).
		AddItem(ui.playerStatus, 24, 0, false)

	// queue page
	ui.queuePage = ui.createQueuePage()

	// log page
	ui.logPage = ui.createLogPage()

	ui.pages.AddPage(PageQueue, ui.queuePage.Root, true, true).
		AddPage(PageLog, ui.logPage.Root, true, false).
		AddPage(PageHelpBox, ui.helpModal, true, false)

	rootFlex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(topBarFlex, 1, 0, false).
		AddItem(ui.seekBar, 1, 0, false).
		AddItem(ui.pages, 0, 1, true).
		AddItem(ui.menuWidget.Root, 1, 0, false)

	// add main input handler
	rootFlex.SetInputCapture(ui.handlePageInput)

	ui.app.SetRoot(rootFlex, true).
		SetFocus(rootFlex).
		EnableMouse(true)

	ui.queuePage.UpdateQueue()

	return ui
}

// createSeekBar wires the scrubber widget into the player: user commits
// become absolute percent seeks, playback progress flows back in
// through programmatic SetPosition calls in the event loop.
func (ui *Ui) createSeekBar() *seekbar.SeekBar {
	s := seekbar.NewSeekBar()
	s.SetSeekedFunc(func(ratio float64) {
		if err := ui.player.SeekPercent(ratio * 100); err != nil {
			ui.logger.PrintError("seekBar: SeekPercent", err)
		}
	})
	s.SetFormatFunc(func(ratio float64) string {
		return formatRatioTime(ratio, ui.duration)
	})
	s.SetNavigationModeFunc(func() seekbar.NavigationMode {
		if viper.GetBool("ui.manual-navigation") {
			return seekbar.NavigationManual
		}
		return seekbar.NavigationAutomatic
	})
	if step := viper.GetFloat64("ui.seek-step"); step > 0 {
		s.SetStep(step)
	}
	return s
}

func (ui *Ui) Run() error {
	// receive events from mpv wrapper
	ui.player.RegisterEventConsumer(ui)

	// run gui/background event handler
	ui.runEventLoops()

	// run mpv event handler
	go ui.player.EventLoop()

	// gui main loop (blocking)
	return ui.app.Run()
}

// SendEvent implements mpvplayer.EventConsumer.
func (ui *Ui) SendEvent(event mpvplayer.UiEvent) {
	ui.mpvEvents <- event
}

func (ui *Ui) ShowHelp() {
	activePage := ui.menuWidget.GetActivePage()
	ui.helpWidget.RenderHelp(activePage)

	ui.pages.ShowPage(PageHelpBox)
	ui.pages.SendToFront(PageHelpBox)
	ui.app.SetFocus(ui.helpModal)
	ui.helpWidget.visible = true
}

func (ui *Ui) CloseHelp() {
	ui.helpWidget.visible = false
	ui.pages.HidePage(PageHelpBox)
}
