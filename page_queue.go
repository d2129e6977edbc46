// Copyright 2026 The Tempo Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/solarwinter/tempo/logger"
	"github.com/solarwinter/tempo/mpvplayer"
)

// columns: title, artist, duration
const queueDataColumns = 3

// data for rendering queue table
type queueData struct {
	tview.TableContentReadOnly

	// our copy of the queue
	playerQueue mpvplayer.PlayerQueue
}

var _ tview.TableContent = (*queueData)(nil)

type QueuePage struct {
	Root *tview.Flex

	queueList *tview.Table
	queueData queueData

	// external refs
	ui     *Ui
	logger logger.LoggerInterface
}

func (ui *Ui) createQueuePage() *QueuePage {
	queuePage := QueuePage{
		ui:     ui,
		logger: ui.logger,
	}

	// main table
	queuePage.queueList = tview.NewTable().
		SetSelectable(true, false). // rows selectable
		SetSelectedStyle(tcell.StyleDefault.Background(tcell.ColorLightGray).Foreground(tcell.ColorBlack))
	queuePage.queueList.Box.
		SetTitle(" queue ").
		SetTitleAlign(tview.AlignLeft).
		SetBorder(true)

	queuePage.queueList.SetSelectedFunc(func(row, column int) {
		queuePage.handlePlaySelected()
	})
	queuePage.queueList.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyDelete || event.Rune() == 'd' {
			queuePage.handleDeleteFromQueue()
			return nil
		}
		return event
	})

	// flex wrapper
	queuePage.Root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(queuePage.queueList, 0, 1, true)

	// private data
	queuePage.queueData = queueData{}

	return &queuePage
}

func (q *QueuePage) UpdateQueue() {
	q.updateQueue()
}

func (q *QueuePage) getSelectedItem() (index int, err error) {
	index, _ = q.queueList.GetSelection()
	if index < 0 {
		err = errors.New("invalid index")
		return
	}
	return
}

// button handler
func (q *QueuePage) handleDeleteFromQueue() {
	currentIndex, err := q.getSelectedItem()
	if err != nil {
		return
	}

	// remove the item from the queue
	q.ui.player.DeleteQueueItem(currentIndex)
	q.updateQueue()
}

// button handler
func (q *QueuePage) handlePlaySelected() {
	currentIndex, err := q.getSelectedItem()
	if err != nil {
		return
	}

	if err := q.ui.player.PlayTrackAt(currentIndex); err != nil {
		q.logger.PrintError("handlePlaySelected", err)
		return
	}
	q.updateQueue()
}

// re-read queue data from mpvplayer which is the authoritative source for the queue
func (q *QueuePage) updateQueue() {
	queueWasEmpty := len(q.queueData.playerQueue) == 0

	// tell tview table to update its data
	q.queueData.playerQueue = q.ui.player.GetQueueCopy()
	q.queueList.SetContent(&q.queueData)

	// by default we're scrolled down after initially adding rows, fix this
	if queueWasEmpty {
		q.queueList.ScrollToBeginning()
	}
}

// queueData methods, used by tview to lazily render the table
func (q *queueData) GetCell(row, column int) *tview.TableCell {
	if row >= len(q.playerQueue) || column >= queueDataColumns || row < 0 || column < 0 {
		return nil
	}
	track := q.playerQueue[row]

	switch column {
	case 0: // title
		return &tview.TableCell{
			Text:        tview.Escape(track.Title),
			Expansion:   1,
			Transparent: true,
		}
	case 1: // artist
		return &tview.TableCell{
			Text:        tview.Escape(track.Artist),
			Expansion:   1,
			Transparent: true,
		}
	case 2: // duration
		text := fmt.Sprintf("%6s", formatTime(int64(track.Duration)))
		return &tview.TableCell{
			Text:        text,
			Align:       tview.AlignRight,
			Expansion:   0,
			MaxWidth:    8,
			Transparent: true,
		}
	}

	return nil
}

// Return the total number of rows in the table.
func (q *queueData) GetRowCount() int {
	return len(q.playerQueue)
}

// Return the total number of columns in the table.
func (q *queueData) GetColumnCount() int {
	return queueDataColumns
}
