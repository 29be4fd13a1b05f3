package main

import (
	"fmt"
	"os"

	"github.com/akmonengine/minkowski"
	"github.com/akmonengine/minkowski/config"
)

// SetupScene turns every outer shape toward its center shape, so that
// driving forward ends in a collision for each pair.
func SetupScene() (*minkowski.Gallery, error) {
	cfg := config.Default()
	facing := config.Vec3{0, 0, -90}
	cfg.Outer.Sphere.Angles = facing
	cfg.Outer.Box.Angles = facing
	cfg.Outer.Capsule.Angles = facing

	gallery, err := minkowski.NewGallery(cfg)
	if err != nil {
		return nil, err
	}

	for _, w := range gallery.Worlds {
		pair := w.Pair
		w.Events.Subscribe(minkowski.COLLISION_ENTER, func(e minkowski.Event) {
			enter := e.(minkowski.CollisionEnterEvent)
			fmt.Printf("  %s: enter, distance %.4f normal %v\n", pair, enter.Manifold.Distance, enter.Manifold.Normal)
		})
	}

	return gallery, nil
}

// DriveForward pushes every outer shape into its center shape and prints
// each scene while it settles.
func DriveForward() error {
	gallery, err := SetupScene()
	if err != nil {
		return err
	}

	const dt float64 = 1.0 / 60.0
	const maxSteps int = 180

	if err := gallery.Apply(minkowski.Press(minkowski.ActionOuterForward)); err != nil {
		return err
	}

	for step := 0; step < maxSteps; step++ {
		gallery.Step(dt)
		if (step+1)%30 != 0 {
			continue
		}

		fmt.Printf("--- step %d ---\n", step+1)
		for _, f := range gallery.Frames() {
			fmt.Printf("  %-15s outer %v  distance %+.4f  colliding %t\n",
				f.Pair, f.Outer.Position, f.Distance, f.Colliding)
			fmt.Printf("  %-15s minkowski %v r=%.3f\n", "", f.Minkowski.HalfExtents, f.Minkowski.Radius)
		}
	}

	return gallery.Apply(minkowski.Release(minkowski.ActionOuterForward))
}

func main() {
	if err := DriveForward(); err != nil {
		fmt.Fprintf(os.Stderr, "simpleScene: %v\n", err)
		os.Exit(1)
	}
}
