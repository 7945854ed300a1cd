// Package daterange holds the selection rules behind the range picker.
//
// Nothing here knows about terminals. A Range is a plain value owned by
// whoever hosts the picker; Transition computes the next value for an
// event and Classify computes how a day cell should look. Both are pure
// functions of their inputs, so the widget in package calendar never keeps
// a copy of the selection that could drift from the host's.
//
// # Selection rules
//
// A range is picked with two clicks. The first click starts a selection,
// the second click on the same day or later finishes it. Clicking before
// the start restarts the selection at that day instead of swapping the
// ends. Clicking again after a range is complete starts over.
//
// The Phase of a range is derived, never stored:
//
//	{null, null}  Idle
//	{from, null}  Selecting
//	{from, to}    Idle
//
// # Dates
//
// Date is a civil calendar date with no time of day and no zone. The zero
// Date stands for "no date", which is how Range represents a missing end.
package daterange
