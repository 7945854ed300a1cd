// Package calendar implements the range selector widget for Bubble Tea.
//
// The widget is a controlled component. The host owns the selected range
// and hands it in on every call as part of Props, together with the
// callbacks that replace it. Selector keeps only view state: whether the
// popover is open, which month leads the two-month view, the keyboard
// cursor and the day under the pointer.
//
// A host embeds a Selector in its own model and forwards messages:
//
//	func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
//		handled, cmd := m.sel.Update(m.props(), msg)
//		if handled {
//			return m, cmd
//		}
//		// host keys...
//	}
//
// where props builds a Props whose OnChange stores the new range back on
// the host. Callbacks run synchronously inside Update; by the time Update
// returns the host has seen every change the message caused.
package calendar
