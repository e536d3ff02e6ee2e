// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements a text field with a floating label and
// pattern validation. The widgets contain persistent state and
// process user events; package widget/material draws them.
//
// FloatingLabel and Field do not depend on an editor and can be
// driven by any input through their text and focus notifications.
// FloatingEditor drives a Field from a Gio editor:
//
//	var ed widget.FloatingEditor
//	ed.Editor.SingleLine = true
//	ed.Field.Configure(validate.Config{Pattern: `-?\d+`})
//
//	for {
//		e, ok := ed.Update(gtx)
//		if !ok {
//			break
//		}
//		if e, ok := e.(widget.ValidateEvent); ok {
//			fmt.Println(e.Result)
//		}
//	}
package widget
