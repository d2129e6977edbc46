// Copyright 2026 The Tempo Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"github.com/gdamore/tcell/v2"
)

func (ui *Ui) handlePageInput(event *tcell.EventKey) *tcell.EventKey {
	// leave keys alone while a modal owns the focus
	if ui.helpWidget.visible {
		return event
	}

	switch event.Rune() {
	case '1':
		ui.ShowPage(PageQueue)

	case '2':
		ui.ShowPage(PageLog)

	case '?':
		ui.ShowHelp()

	case 'Q':
		ui.Quit()

	case 's':
		// focus the seek bar so the keyboard stepper applies
		ui.app.SetFocus(ui.seekBar)

	case 'D':
		// clear queue and stop playing
		ui.player.ClearQueue()
		ui.queuePage.UpdateQueue()

	case 'p':
		// toggle playing/pause
		if err := ui.player.Pause(); err != nil {
			ui.logger.PrintError("handlePageInput: Pause", err)
		}

	case 'P':
		// stop playing without changes to queue
		ui.logger.Print("key stop")
		if err := ui.player.Stop(); err != nil {
			ui.logger.PrintError("handlePageInput: Stop", err)
		}

	case '-':
		// volume-
		if err := ui.player.AdjustVolume(-5); err != nil {
			ui.logger.PrintError("handlePageInput: AdjustVolume-", err)
		}

	case '+', '=':
		// volume+
		if err := ui.player.AdjustVolume(5); err != nil {
			ui.logger.PrintError("handlePageInput: AdjustVolume+", err)
		}

	case '.':
		// >>
		if err := ui.player.Seek(10); err != nil {
			ui.logger.PrintError("handlePageInput: Seek+", err)
		}

	case ',':
		// <<
		if err := ui.player.Seek(-10); err != nil {
			ui.logger.PrintError("handlePageInput: Seek-", err)
		}

	case '>':
		// skip to next track
		if err := ui.player.PlayNextTrack(); err != nil {
			ui.logger.PrintError("handlePageInput: Next", err)
		}
		ui.queuePage.UpdateQueue()

	default:
		return event
	}

	return nil
}

func (ui *Ui) ShowPage(name string) {
	ui.pages.SwitchToPage(name)
	ui.menuWidget.SetActivePage(name)
	_, prim := ui.pages.GetFrontPage()
	ui.app.SetFocus(prim)
}

func (ui *Ui) Quit() {
	// last chance to remember where we were
	ui.saveResumePosition()
	if ui.resume != nil {
		if err := ui.resume.Close(); err != nil {
			ui.logger.PrintError("Quit: resume store", err)
		}
	}
	ui.player.Quit()
	ui.app.Stop()
}
