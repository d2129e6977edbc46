package main

const helpPlayback = `
p     play/pause
P     stop
>     next track
-/=   volume down/volume up
,/.   seek -10/+10 seconds
s     focus the seek bar
←/→   step the seek bar (when focused)
`

const helpPageQueue = `
ENTER play the selected track
d/DEL remove currently selected track from the queue
D     remove all tracks from queue
`
