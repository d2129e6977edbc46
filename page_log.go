// Copyright 2026 The Tempo Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"time"

	"github.com/rivo/tview"
)

type LogPage struct {
	Root *tview.Flex

	logList *tview.List

	// external refs
	ui *Ui
}

func (ui *Ui) createLogPage() *LogPage {
	logPage := LogPage{
		ui: ui,
	}

	logPage.logList = tview.NewList().ShowSecondaryText(false)
	logPage.logList.Box.
		SetTitle(" log ").
		SetTitleAlign(tview.AlignLeft).
		SetBorder(true)

	logPage.Root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(logPage.logList, 0, 1, true)

	return &logPage
}

// Print prepends a timestamped line, newest first.
func (l *LogPage) Print(line string) {
	l.ui.app.QueueUpdateDraw(func() {
		line := time.Now().Local().Format("(15:04:05) ") + line
		l.logList.InsertItem(0, line, "", 0, nil)

		// keep the log list from growing forever
		for l.logList.GetItemCount() > logPageMaxLines {
			l.logList.RemoveItem(-1)
		}
	})
}

const logPageMaxLines = 200
