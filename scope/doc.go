// SPDX-License-Identifier: EPL-2.0

// Package scope drives the render loop.
//
// Each Tick of a Loop asks the Clock where playback should be, reads
// that many frames from the source, turns them into XY pairs, fades the
// trace, draws the pairs and presents the frame. The loop ends when the
// source runs out, the user quits, or a step fails:
//
//	loop, err := scope.NewLoop(scope.Options{
//		Source:          src,
//		Clock:           scope.NewClock(),
//		Renderer:        trail,
//		XChannel:        1,
//		YChannel:        0,
//		SamplesPerFrame: 1000,
//		TickRate:        120,
//	})
//	if err != nil {
//		return err
//	}
//	err = scope.WithProcess(player, logger, func() error {
//		return loop.Run(ctx)
//	})
//
// WithProcess guarantees the companion process is terminated exactly
// once however the loop ends.
package scope
