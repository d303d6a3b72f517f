// Package dialog provides a composable modal dialog for Bubble Tea programs.
//
// A Dialog owns (or forwards) a single open/closed flag and hands it to
// every part rendered beneath it. Parts are plain nodes:
//
//	d := dialog.New(
//	    dialog.WithChildren(
//	        dialog.NewTrigger(dialog.Text("Open")),
//	        dialog.NewContent(
//	            dialog.NewHeader(
//	                dialog.NewTitle(dialog.Text("Delete row?")),
//	                dialog.NewDescription(dialog.Text("This cannot be undone.")),
//	            ),
//	        ),
//	    ),
//	)
//
//	// In Update():
//	cmd := d.Update(msg)
//
//	// In View():
//	return d.View()
//
// # State ownership
//
// Without WithOpen the dialog keeps its own flag, starting closed. With
// WithOpen the caller owns the flag: triggers and the backdrop only call
// the WithOnOpenChange callback, and the caller re-supplies the new value
// through SetControlledOpen.
//
// # Clicks
//
// Rendering records hit regions for every clickable part. A left mouse
// press is routed to the topmost region under the pointer. While the
// content is open a full-screen backdrop region sits above the page and
// closes the dialog; the panel sits above the backdrop.
//
// Trigger and Content look up the dialog on the render context. Rendering
// either outside a Dialog fails with ErrOutsideDialog.
package dialog
