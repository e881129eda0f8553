// Package spinner renders a progress spinner on a background goroutine while
// the caller keeps working.
//
// A Builder starts the render loop and returns a Handle. The Handle never
// touches the terminal itself; it only queues status changes and messages,
// which the loop drains once per frame:
//
//	h, err := spinner.NewBuilder("Downloading").Start()
//	if err != nil {
//		return err
//	}
//	defer h.Close()
//
//	h.Update("Unpacking")
//	h.Message("Fetched 12 files")
//
// Once started, the spinner owns its output stream. Writing to the same
// stream from elsewhere before Close returns will garble the spinner line.
package spinner
