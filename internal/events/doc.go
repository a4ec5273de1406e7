// Package events runs the container engine's event stream for one container
// and exposes its output as a sequence of lines.
//
// A watch owns exactly one Channel and at most one Process:
//
//	ch, err := events.OpenChannel()
//	if err != nil {
//	    return err
//	}
//	defer ch.Close()
//
//	lines, proc, err := source.Start(ctx, ch, "web1", window)
//	if err != nil {
//	    return err
//	}
//	defer proc.Stop()
//
//	for {
//	    line, ok := lines.Next(ctx)
//	    if !ok {
//	        break
//	    }
//	    ...
//	}
//
// The Channel is an anonymous pipe, so nothing is created on disk and two
// concurrent watches can never collide. Both Channel.Close and Process.Stop
// are idempotent.
package events
