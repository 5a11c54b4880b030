package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/periodix/pkg/errors"
	"github.com/matzehuels/periodix/pkg/export"
	"github.com/matzehuels/periodix/pkg/frame"
	"github.com/matzehuels/periodix/pkg/layout"
	"github.com/matzehuels/periodix/pkg/scene"
)

type simulateOptions struct {
	sequence string
	tps      int
	realtime bool
	output   string
	asJSON   bool
}

// simulateCommand creates the simulate command for headless transition runs.
func (c *CLI) simulateCommand() *cobra.Command {
	opts := simulateOptions{sequence: strings.Join(layout.Names(), ",")}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a scripted sequence of transitions without a display",
		Long: `Run a scripted sequence of transitions without a display.

Each layout in --sequence is started once the previous transition has
settled. By default the clock advances in fixed steps of 1/tps seconds as
fast as possible; --realtime paces the frames on the wall clock instead.

The final element transforms are written as a JSON snapshot with -o.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSimulate(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.sequence, "sequence", opts.sequence, "comma-separated layouts to visit in order")
	cmd.Flags().IntVar(&opts.tps, "tps", 0, "frames per simulated second (default from config: 60)")
	cmd.Flags().BoolVar(&opts.realtime, "realtime", false, "pace frames on the wall clock")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the final snapshot to this file")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the final snapshot to stdout")
	_ = cmd.RegisterFlagCompletionFunc("sequence", completeSequence)

	return cmd
}

// simulation counts what a run did.
type simulation struct {
	frames  int
	simTime time.Duration
}

// runSimulate visits every layout of the sequence and reports the result.
func (c *CLI) runSimulate(ctx context.Context, opts simulateOptions) error {
	names, err := parseSequence(opts.sequence)
	if err != nil {
		return err
	}
	tps := opts.tps
	if tps <= 0 {
		tps = c.Config.Frame.TPS
	}
	dt := time.Second / time.Duration(tps)

	s, err := c.newScene()
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	var sim simulation
	loop := frame.NewLoop()
	loop.Subscribe("scene", s.Tick)
	loop.Subscribe("clock", func(dt time.Duration) { sim.simTime += dt })

	base := c.Config.Transition.Duration
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.TransitionTo(name, base); err != nil {
			return err
		}
		if opts.realtime {
			err = runRealtime(ctx, s, dt, &sim)
		} else {
			err = stepUntilSettled(s, loop, dt, base)
		}
		if err != nil {
			return err
		}
	}
	if !opts.realtime {
		sim.frames = loop.Frames()
	}
	prog.done(fmt.Sprintf("Simulated %d transitions", len(names)))

	snap := export.FromScene(s)
	if opts.asJSON {
		data, err := export.MarshalSnapshot(snap)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(os.Stdout, string(data))
		return err
	}

	printSuccess("Simulation complete")
	printKeyValue("sequence", strings.Join(names, " → "))
	printKeyValue("frames", StyleNumber.Render(fmt.Sprint(sim.frames)))
	printKeyValue("sim time", sim.simTime.Round(time.Millisecond).String())
	printStats(s.Len(), s.Current(), s.Settled())
	if opts.output != "" {
		if err := export.WriteSnapshotFile(snap, opts.output); err != nil {
			return fmt.Errorf("write snapshot %s: %w", opts.output, err)
		}
		printFile(opts.output)
	}
	return nil
}

// stepUntilSettled steps the loop in fixed increments until the scene has no
// running animations. Every tween lasts less than twice the base duration,
// so the bound is only hit if that ever stops holding.
func stepUntilSettled(s *scene.Scene, loop *frame.Loop, dt, base time.Duration) error {
	maxFrames := int(2*base/dt) + 2
	for i := 0; !s.Settled(); i++ {
		if i > maxFrames {
			return errors.New(errors.ErrCodeInternal,
				"transition to %s did not settle within %d frames", s.Current(), maxFrames)
		}
		loop.Step(dt)
	}
	return nil
}

// runRealtime ticks s from a frame loop paced at dt until it settles.
func runRealtime(ctx context.Context, s *scene.Scene, dt time.Duration, sim *simulation) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	loop := frame.NewLoop()
	loop.Subscribe("scene", s.Tick)
	loop.Subscribe("clock", func(dt time.Duration) { sim.simTime += dt })
	loop.Subscribe("settle", func(time.Duration) {
		if s.Settled() {
			cancel()
		}
	})

	err := loop.Run(runCtx, dt)
	sim.frames += loop.Frames()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil && runCtx.Err() == nil {
		return err
	}
	return nil
}

// parseSequence splits and validates a comma-separated layout list.
func parseSequence(s string) ([]string, error) {
	var names []string
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !layout.Valid(name) {
			return nil, errors.Configuration("unknown layout %q (want one of %v)", name, layout.Names())
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, errors.Configuration("empty layout sequence")
	}
	return names, nil
}
