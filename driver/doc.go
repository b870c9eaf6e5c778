// Package driver issues the irmagi device operations (capture, dump,
// play, record, reset) over a serial link and layers a bounded
// retry/reconnect policy on top.
//
// # Overview
//
// Driver is the protocol layer: one method per device operation, each a
// synchronous command/response exchange over an injected Conn. Dump and
// Record embed the signal codec, translating between the device's
// block/offset hex-byte representation and a signal.Waveform.
//
// Session is the resilience layer: it owns the link and wraps every
// operation so that a single transient failure pauses, reopens the link
// wholesale (re-running the banner skip), and retries exactly once. A
// second failure reaches the caller unmasked.
//
// # Basic Usage
//
//	sess, err := driver.Open("/dev/ttyUSB0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer sess.Close()
//
//	res, err := sess.Capture()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !res.OK {
//	    fmt.Println("capture failed:", res.Response)
//	    return
//	}
//
//	w, err := sess.Dump()
//
// # Capture's Two Outcomes
//
// Capture is the one operation with a soft-failure contract: the device
// either reports a size or answers with a diagnostic line. Both are
// normal returns; only link-level problems are errors (and therefore
// the only thing the retry policy acts on).
//
// # Concurrency
//
// The device has no request IDs or multiplexing, so neither Driver nor
// Session serializes anything internally: overlapping operations are a
// caller bug. Put one lock around the Session if it is shared, as the
// web front end does.
//
// # Error Handling
//
// Errors are never swallowed below Session, and Session recovers at
// most one failure per call. The structured classes are
// link.TimeoutError (recoverable), link.OpenError (device gone, not
// recoverable by retry) and protocol.UnexpectedResponseError (response
// shape mismatch, raw payload attached).
package driver
