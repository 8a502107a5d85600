package main

import (
	"fmt"
	"log"

	"followcam/internal/camera"
	"followcam/internal/config"
	"followcam/internal/vehicle"
)

// leg is one scripted stretch of driving.
type leg struct {
	name     string
	frames   int
	controls vehicle.Controls
}

func main() {
	// Trace the follow camera along a scripted drive
	fmt.Println("Follow Camera Trace")
	fmt.Println("===================")

	cfg, err := config.LoadConfig("../config.yaml")
	if err != nil {
		log.Printf("Warning: Failed to load config: %v (using defaults)", err)
		cfg = config.Default()
	}

	cam, err := camera.NewWithSettings(cfg.GetAspectRatio(), cfg.CameraSettings())
	if err != nil {
		log.Fatalf("Failed to create camera: %v", err)
	}
	car := vehicle.NewCar(cfg.Vehicle)
	dt := cfg.GetTimeStep()

	script := []leg{
		{"straight", 60, vehicle.Controls{Throttle: 1}},
		{"gentle left", 120, vehicle.Controls{Throttle: 1, Steer: 0.3}},
		{"snap", 1, vehicle.Controls{Throttle: 1, SnapTurn: true}},
		{"snap", 1, vehicle.Controls{Throttle: 1, SnapTurn: true}},
		{"recover", 90, vehicle.Controls{Throttle: 1}},
	}

	fmt.Printf("%5s  %-12s %-7s %8s  %-26s %s\n", "frame", "leg", "branch", "interp", "current right", "eye")
	frame := 0
	for _, l := range script {
		for i := 0; i < l.frames; i++ {
			before := cam.Discontinuities()
			car.Update(dt, l.controls)
			cam.Update(dt, car.World())
			frame++

			branch := "smooth"
			if cam.Discontinuities() != before {
				branch = "reset"
			}
			// Every discontinuity, plus a sample every 15 frames.
			if branch == "reset" || frame%15 == 0 {
				r, eye := cam.CurrentRight(), cam.Position()
				fmt.Printf("%5d  %-12s %-7s %8.5f  (%7.3f %7.3f %7.3f)  (%8.1f %7.1f %8.1f)\n",
					frame, l.name, branch, cam.Interpolator(), r.X(), r.Y(), r.Z(), eye.X(), eye.Y(), eye.Z())
			}
		}
	}

	fmt.Printf("\n%d frames, %d discontinuities\n", frame, cam.Discontinuities())
}
