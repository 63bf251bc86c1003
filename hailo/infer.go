package hailo

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// InputFrame pairs an input vstream with the frame to write to it.
type InputFrame struct {
	VStream *InputVStream
	Data    []byte
}

// OutputFrame pairs an output vstream with the buffer to read into.
type OutputFrame struct {
	VStream *OutputVStream
	Data    []byte
}

// Infer writes one frame to every input and reads one frame from every
// output, all concurrently. Calls already handed to the library are not
// interrupted by ctx; it only stops transfers that have not started.
func Infer(ctx context.Context, inputs []InputFrame, outputs []OutputFrame) error {
	if err := validateFrames(inputs, outputs); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, in := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := in.VStream.Write(in.Data); err != nil {
				return fmt.Errorf("write %s: %w", in.VStream.Name(), err)
			}
			return nil
		})
	}
	for _, out := range outputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := out.VStream.Read(out.Data); err != nil {
				return fmt.Errorf("read %s: %w", out.VStream.Name(), err)
			}
			return nil
		})
	}
	return g.Wait()
}

func validateFrames(inputs []InputFrame, outputs []OutputFrame) error {
	if len(inputs) == 0 || len(outputs) == 0 {
		return fmt.Errorf("infer needs at least one input and one output, got %d and %d", len(inputs), len(outputs))
	}
	seen := make(map[any]bool, len(inputs)+len(outputs))
	check := func(kind string, i int, stream any, v *vstreamFrame) error {
		if v == nil {
			return fmt.Errorf("%s %d has no vstream", kind, i)
		}
		if seen[stream] {
			return fmt.Errorf("%s %d: vstream %q is used twice", kind, i, v.name)
		}
		seen[stream] = true
		if len(v.data) == 0 {
			return fmt.Errorf("%s %d: buffer for %q is empty", kind, i, v.name)
		}
		if want, err := v.size(); err == nil && want != len(v.data) {
			return fmt.Errorf("%s %d: buffer for %q is %d bytes, frame is %d", kind, i, v.name, len(v.data), want)
		}
		return nil
	}
	for i, in := range inputs {
		if err := check("input", i, in.VStream, in.frame()); err != nil {
			return err
		}
	}
	for i, out := range outputs {
		if err := check("output", i, out.VStream, out.frame()); err != nil {
			return err
		}
	}
	return nil
}

type vstreamFrame struct {
	name string
	data []byte
	size func() (int, error)
}

func (f InputFrame) frame() *vstreamFrame {
	if f.VStream == nil {
		return nil
	}
	return &vstreamFrame{name: f.VStream.Name(), data: f.Data, size: f.VStream.FrameSize}
}

func (f OutputFrame) frame() *vstreamFrame {
	if f.VStream == nil {
		return nil
	}
	return &vstreamFrame{name: f.VStream.Name(), data: f.Data, size: f.VStream.FrameSize}
}
